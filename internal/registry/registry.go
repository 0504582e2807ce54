// Package registry provides a global registry of named glyph ramps.
// Ramps register themselves in init(), so the CLI and config can refer to
// them by name without hardcoding the list.
package registry

import (
	"fmt"
	"sort"
	"sync"
)

// Ramp is a named glyph ramp, ordered from the darkest glyph to the brightest.
type Ramp struct {
	Name        string
	Description string
	Glyphs      string
}

var (
	ramps = make(map[string]Ramp)
	mu    sync.RWMutex
)

// Register adds a ramp to the registry.
// Panics if a ramp with the same name is already registered.
func Register(r Ramp) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := ramps[r.Name]; exists {
		panic(fmt.Sprintf("registry: ramp %q already registered", r.Name))
	}
	ramps[r.Name] = r
}

// List returns all registered ramps, sorted by name.
func List() []Ramp {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Ramp, 0, len(ramps))
	for _, r := range ramps {
		result = append(result, r)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Lookup returns the ramp registered under name.
// Returns an error if the name is not registered.
func Lookup(name string) (Ramp, error) {
	mu.RLock()
	defer mu.RUnlock()

	r, ok := ramps[name]
	if !ok {
		return Ramp{}, fmt.Errorf("registry: unknown ramp %q", name)
	}
	return r, nil
}

// Exists checks if a ramp with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := ramps[name]
	return ok
}
