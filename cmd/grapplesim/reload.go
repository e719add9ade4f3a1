package main

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/milk9111/grapplerig/prefabs"
)

// reloadGate drops change events that leave a prefab's mtime unchanged, such
// as a chmod or a second event for the same save.
type reloadGate struct {
	loader prefabs.Loader
	seen   map[string]time.Time
}

func newReloadGate(loader prefabs.Loader) *reloadGate {
	return &reloadGate{loader: loader, seen: map[string]time.Time{}}
}

// Changed reports whether the event for path should rebuild the rig. Files
// that vanished always count as changed.
func (g *reloadGate) Changed(path string) bool {
	name := path
	if rel, err := filepath.Rel(g.loader.Dir, path); err == nil && !strings.HasPrefix(rel, "..") {
		name = rel
	}
	mod, ok := g.loader.ModTime(name)
	if !ok {
		delete(g.seen, name)
		return true
	}
	if last, ok := g.seen[name]; ok && last.Equal(mod) {
		return false
	}
	g.seen[name] = mod
	return true
}
