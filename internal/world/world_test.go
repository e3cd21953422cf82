package world

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-raycaster/internal/core"
)

const eps = 1e-9

func TestNewGeometryValidatesIndices(t *testing.T) {
	verts := []core.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}}

	tests := []struct {
		name    string
		seg     Segment
		wantErr bool
	}{
		{"valid", Segment{I: 0, J: 1}, false},
		{"degenerate but valid", Segment{I: 1, J: 1}, false},
		{"J out of range", Segment{I: 0, J: 2}, true},
		{"negative I", Segment{I: -1, J: 0}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewGeometry(verts, []Segment{tc.seg})
			if (err != nil) != tc.wantErr {
				t.Fatalf("NewGeometry() error = %v, wantErr %v", err, tc.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidSegment) {
				t.Errorf("error should wrap ErrInvalidSegment, got %v", err)
			}
		})
	}
}

func TestGeometryIsImmutable(t *testing.T) {
	verts := []core.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}}
	segs := []Segment{{I: 0, J: 1, U0: 0, U1: 1}}
	g, err := NewGeometry(verts, segs)
	if err != nil {
		t.Fatal(err)
	}

	verts[1] = core.V(9, 9)
	segs[0].U1 = 5
	g.Vertices()[0] = core.V(7, 7)

	if g.Vertex(1) != core.V(1, 0) || g.Vertex(0) != core.Zero {
		t.Error("geometry vertices changed through caller slices")
	}
	if g.Segment(0).U1 != 1 {
		t.Error("geometry segments changed through caller slice")
	}
}

func TestReference(t *testing.T) {
	g := Reference()
	if g.Len() != 10 || g.NumVertices() != 10 {
		t.Fatalf("Reference has %d segments, %d vertices", g.Len(), g.NumVertices())
	}

	// Closed loop with continuous texture.
	for k := 0; k < g.Len(); k++ {
		s := g.Segment(k)
		if s.I != k || s.J != (k+1)%10 {
			t.Errorf("segment %d = (%d, %d)", k, s.I, s.J)
		}
		if k > 0 && s.U0 != g.Segment(k-1).U1 {
			t.Errorf("segment %d u0 %v does not continue %v", k, s.U0, g.Segment(k-1).U1)
		}
	}
	if g.Segment(9).U1 != 29.3 {
		t.Errorf("last u1 = %v, expected 29.3", g.Segment(9).U1)
	}

	lo, hi := g.Bounds()
	if lo != core.V(-3, -4) || hi != core.V(5, 4) {
		t.Errorf("Bounds() = %v, %v", lo, hi)
	}
}

func TestEach(t *testing.T) {
	g := Reference()
	count := 0
	g.Each(func(k int, p0, p1 core.Vec2, s Segment) {
		a, b := g.Endpoints(k)
		if p0 != a || p1 != b {
			t.Errorf("Each endpoints for %d disagree with Endpoints", k)
		}
		count++
	})
	if count != g.Len() {
		t.Errorf("Each visited %d segments", count)
	}
}

func TestBuilder(t *testing.T) {
	g, err := NewBuilder().
		Loop(core.V(0, 0), core.V(2, 0), core.V(2, 2), core.V(0, 2)).
		Chain(core.V(5, 5), core.V(5, 6)).
		Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	if g.Len() != 5 {
		t.Fatalf("Len() = %d, expected 4 loop walls + 1 chain wall", g.Len())
	}
	if s := g.Segment(3); s.I != 3 || s.J != 0 {
		t.Errorf("loop should close back to its first vertex, got (%d, %d)", s.I, s.J)
	}
	if s := g.Segment(4); s.I != 4 || s.J != 5 || s.U0 != 8 || s.U1 != 9 {
		t.Errorf("chain segment = %+v, expected (4, 5) u [8, 9]", s)
	}
}

const referenceYAML = `
id: ref-derived
name: Derived reference
spawn: {x: 0, y: 0, angle_deg: 0}
loop: true
vertices:
  - [0, 4]
  - [3, 2]
  - [5, -2]
  - [1, -4]
  - [-3, -2]
  - [-3, 0]
  - [-1, 0]
  - [-1, 2]
  - [-3, 2]
  - [-2, 4]
`

func TestParseDerivesReferenceRanges(t *testing.T) {
	lvl, err := Parse([]byte(referenceYAML))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	ref := Reference()
	if lvl.Geometry.Len() != ref.Len() {
		t.Fatalf("parsed %d segments, expected %d", lvl.Geometry.Len(), ref.Len())
	}
	for k := 0; k < ref.Len(); k++ {
		got, want := lvl.Geometry.Segment(k), ref.Segment(k)
		if got.I != want.I || got.J != want.J ||
			math.Abs(got.U0-want.U0) > eps || math.Abs(got.U1-want.U1) > eps {
			t.Errorf("segment %d = %+v, expected %+v", k, got, want)
		}
	}
}

func TestParseExplicitSegments(t *testing.T) {
	data := `
id: corner
spawn: {x: 1, y: 2, angle_deg: 90}
vertices: [[0, 0], [4, 0], [4, 3]]
segments:
  - {from: 0, to: 1, u: [0.5, 1.5]}
  - {from: 1, to: 2}
`
	lvl, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if lvl.Name != "corner" {
		t.Errorf("Name = %q, expected fallback to id", lvl.Name)
	}
	if !lvl.Spawn.Position.ApproxEqual(core.V(1, 2), eps) || math.Abs(lvl.Spawn.Angle-math.Pi/2) > eps {
		t.Errorf("Spawn = %+v", lvl.Spawn)
	}
	s1 := lvl.Geometry.Segment(1)
	if s1.U0 != 1.5 || s1.U1 != 4.5 {
		t.Errorf("derived u = [%v, %v], expected [1.5, 4.5]", s1.U0, s1.U1)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		err  error
	}{
		{"not yaml", "{{{", nil},
		{"no vertices", "id: x\n", ErrNoVertices},
		{"bad index", "vertices: [[0,0],[1,1]]\nsegments: [{from: 0, to: 3}]\n", ErrInvalidSegment},
		{"bad u", "vertices: [[0,0],[1,1]]\nsegments: [{from: 0, to: 1, u: [1]}]\n", nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if tc.err != nil && !errors.Is(err, tc.err) {
				t.Errorf("error = %v, expected %v", err, tc.err)
			}
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	ref := ReferenceLevel()
	ref.Spawn.Angle = math.Pi / 4

	data, err := Encode(ref)
	if err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}
	got, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Encode()) failed: %v", err)
	}
	if got.ID != ref.ID || got.Name != ref.Name {
		t.Errorf("ID/Name = %q/%q", got.ID, got.Name)
	}
	if math.Abs(got.Spawn.Angle-ref.Spawn.Angle) > eps {
		t.Errorf("Spawn angle = %v, expected %v", got.Spawn.Angle, ref.Spawn.Angle)
	}
	for k := 0; k < ref.Geometry.Len(); k++ {
		if got.Geometry.Segment(k) != ref.Geometry.Segment(k) {
			t.Errorf("segment %d = %+v, expected %+v", k, got.Geometry.Segment(k), ref.Geometry.Segment(k))
		}
	}
}

func writeLevel(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestLoader(t *testing.T) {
	dir := t.TempDir()
	writeLevel(t, dir, "b.yaml", "id: beta\nvertices: [[0,0],[1,0]]\nloop: true\n")
	writeLevel(t, dir, "nested/a.yml", "id: alpha\nvertices: [[0,0],[0,1]]\nloop: true\n")
	writeLevel(t, dir, "unnamed.yaml", "vertices: [[0,0],[2,0]]\nloop: true\n")
	writeLevel(t, dir, "broken.yaml", "vertices: [[0,0]]\nsegments: [{from: 0, to: 5}]\n")
	writeLevel(t, dir, "notes.txt", "ignored")

	loader := NewLoader(dir)
	ids, err := loader.ListIDs()
	if err != nil {
		t.Fatalf("ListIDs() failed: %v", err)
	}
	expected := []string{"alpha", "beta", "unnamed"}
	if len(ids) != len(expected) {
		t.Fatalf("ListIDs() = %v, expected %v", ids, expected)
	}
	for i := range ids {
		if ids[i] != expected[i] {
			t.Errorf("ids[%d] = %q, expected %q", i, ids[i], expected[i])
		}
	}

	lvl, err := loader.LoadByID("alpha")
	if err != nil {
		t.Fatalf("LoadByID() failed: %v", err)
	}
	if filepath.Base(lvl.FilePath) != "a.yml" {
		t.Errorf("FilePath = %q", lvl.FilePath)
	}

	if _, err := loader.LoadByID("missing"); !errors.Is(err, ErrUnknownLevel) {
		t.Errorf("LoadByID(missing) error = %v, expected ErrUnknownLevel", err)
	}
}

func TestLoaderMissingRoot(t *testing.T) {
	levels, err := NewLoader(filepath.Join(t.TempDir(), "nope")).LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() on missing root failed: %v", err)
	}
	if len(levels) != 0 {
		t.Errorf("expected no levels, got %d", len(levels))
	}
}
