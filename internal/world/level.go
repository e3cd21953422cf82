package world

import (
	"errors"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-raycaster/internal/core"
)

// ErrNoVertices is returned for level files without any vertices.
var ErrNoVertices = errors.New("world: level has no vertices")

// Level is a named geometry with a spawn pose.
type Level struct {
	ID       string
	Name     string
	Spawn    core.Camera
	Geometry *Geometry
	FilePath string // empty for built-in levels
}

// levelFile is the on-disk YAML layout.
type levelFile struct {
	ID       string        `yaml:"id"`
	Name     string        `yaml:"name,omitempty"`
	Spawn    spawnFile     `yaml:"spawn"`
	Vertices [][2]float64  `yaml:"vertices"`
	Segments []segmentFile `yaml:"segments,omitempty"`
	Loop     bool          `yaml:"loop,omitempty"` // connect all vertices in order when segments is empty
}

type spawnFile struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	AngleDeg float64 `yaml:"angle_deg"`
}

type segmentFile struct {
	From int       `yaml:"from"`
	To   int       `yaml:"to"`
	U    []float64 `yaml:"u,omitempty,flow"`
}

// Parse decodes a YAML level. Segments without a u range continue the
// texture from the previous segment, spanning the wall's length.
func Parse(data []byte) (Level, error) {
	var lf levelFile
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return Level{}, fmt.Errorf("world: yaml unmarshal: %w", err)
	}
	if len(lf.Vertices) == 0 {
		return Level{}, ErrNoVertices
	}

	vertices := make([]core.Vec2, len(lf.Vertices))
	for i, v := range lf.Vertices {
		vertices[i] = core.V(v[0], v[1])
	}

	specs := lf.Segments
	if len(specs) == 0 && lf.Loop && len(vertices) > 1 {
		specs = make([]segmentFile, len(vertices))
		for i := range vertices {
			specs[i] = segmentFile{From: i, To: (i + 1) % len(vertices)}
		}
	}

	segments := make([]Segment, len(specs))
	u := 0.0
	for k, sf := range specs {
		s := Segment{I: sf.From, J: sf.To}
		switch len(sf.U) {
		case 2:
			s.U0, s.U1 = sf.U[0], sf.U[1]
		case 0:
			if s.I < 0 || s.I >= len(vertices) || s.J < 0 || s.J >= len(vertices) {
				break // NewGeometry reports it
			}
			s.U0, s.U1 = DeriveU(u, vertices[s.I], vertices[s.J])
		default:
			return Level{}, fmt.Errorf("world: segment %d: u needs 2 values, got %d", k, len(sf.U))
		}
		segments[k] = s
		u = s.U1
	}

	geo, err := NewGeometry(vertices, segments)
	if err != nil {
		return Level{}, err
	}

	name := lf.Name
	if name == "" {
		name = lf.ID
	}
	return Level{
		ID:       lf.ID,
		Name:     name,
		Spawn:    core.NewCamera(core.V(lf.Spawn.X, lf.Spawn.Y), lf.Spawn.AngleDeg*math.Pi/180),
		Geometry: geo,
	}, nil
}

// Encode writes a level in the format Parse reads. Every segment carries
// its explicit u range.
func Encode(l Level) ([]byte, error) {
	lf := levelFile{
		ID:   l.ID,
		Name: l.Name,
		Spawn: spawnFile{
			X:        l.Spawn.Position.X,
			Y:        l.Spawn.Position.Y,
			AngleDeg: l.Spawn.Angle * 180 / math.Pi,
		},
	}
	if l.Geometry != nil {
		for _, v := range l.Geometry.vertices {
			lf.Vertices = append(lf.Vertices, [2]float64{v.X, v.Y})
		}
		for _, s := range l.Geometry.segments {
			lf.Segments = append(lf.Segments, segmentFile{From: s.I, To: s.J, U: []float64{s.U0, s.U1}})
		}
	}

	out, err := yaml.Marshal(&lf)
	if err != nil {
		return nil, fmt.Errorf("world: yaml marshal: %w", err)
	}
	return out, nil
}

// FormatExtensions returns the level file extensions the loader reads.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
