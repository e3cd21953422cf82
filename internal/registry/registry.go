// Package registry provides a global registry of built-in level factories.
// Levels register themselves in init() functions, so the CLI can list and
// load them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-raycaster/internal/world"
)

// LevelInfo contains metadata about a level.
type LevelInfo struct {
	ID     string
	Title  string
	Source string // "builtin" or the file path
	Walls  int
}

// Factory builds a fresh level. Geometry is immutable, so factories may
// return shared values.
type Factory func() world.Level

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]LevelInfo)
	mu        sync.RWMutex
)

// Register adds a level factory to the registry.
// Panics if a level with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: level %q already registered", id))
	}

	factories[id] = f

	// Build once for the listing metadata.
	lvl := f()
	infos[id] = LevelInfo{
		ID:     id,
		Title:  lvl.Name,
		Source: "builtin",
		Walls:  lvl.Geometry.Len(),
	}
}

// List returns information about all registered levels, sorted by ID.
func List() []LevelInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]LevelInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create builds a registered level by its ID.
func Create(id string) (world.Level, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return world.Level{}, fmt.Errorf("registry: %w: %s", world.ErrUnknownLevel, id)
	}

	lvl := f()
	lvl.ID = id
	return lvl, nil
}

// Exists checks if a level with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
