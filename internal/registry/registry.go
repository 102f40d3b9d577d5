// Package registry provides a global registry of track segment blueprints.
// Blueprints register themselves in init() functions, so the spawn catalog
// can be assembled from configuration by name.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/lanerunner/internal/config"
	"github.com/vovakirdan/lanerunner/internal/runner"
)

// Blueprint builds a fresh segment kind. The returned value must not share
// slices with earlier calls.
type Blueprint func() runner.SegmentKind

// BlueprintInfo contains metadata about a registered blueprint.
type BlueprintInfo struct {
	Name     string
	Length   float64
	Children int
}

var (
	blueprints = make(map[string]Blueprint)
	infos      = make(map[string]BlueprintInfo)
	mu         sync.RWMutex
)

// Register adds a blueprint under name.
// Panics if the name is already registered.
func Register(name string, b Blueprint) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := blueprints[name]; exists {
		panic(fmt.Sprintf("registry: segment %q already registered", name))
	}

	blueprints[name] = b

	kind := b()
	infos[name] = BlueprintInfo{Name: name, Length: kind.Length, Children: len(kind.Children)}
}

// List returns information about all registered blueprints, sorted by name.
func List() []BlueprintInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]BlueprintInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates the blueprint registered under name.
func Create(name string) (runner.SegmentKind, error) {
	mu.RLock()
	defer mu.RUnlock()

	b, ok := blueprints[name]
	if !ok {
		return runner.SegmentKind{}, fmt.Errorf("registry: unknown segment %q", name)
	}

	kind := b()
	kind.Name = name
	return kind, nil
}

// Exists checks if a blueprint with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := blueprints[name]
	return ok
}

// Catalog builds the spawn catalog described by cfgs, in order.
// Per-entry TTLs override the blueprint's own. Unknown names are skipped
// and reported together in the returned error.
func Catalog(cfgs []config.SegmentKindCfg) ([]runner.SegmentKind, error) {
	catalog := make([]runner.SegmentKind, 0, len(cfgs))
	var errs []error
	for _, c := range cfgs {
		kind, err := Create(c.Name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if c.TTL > 0 {
			kind.TTL = c.TTL
		}
		catalog = append(catalog, kind)
	}
	return catalog, errors.Join(errs...)
}
