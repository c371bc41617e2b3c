// Package registry manages named, reusable mask definitions. The
// builtin set covers common field formats; configuration files and
// plugins add or replace entries at runtime while the UI reads them,
// so the registry is safe for concurrent use.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/dshills/maskedit/internal/mask"
)

// Definition is a named mask pattern.
type Definition struct {
	// Name is the registry key, unique within a registry.
	Name string

	// Pattern is the mask pattern string.
	Pattern string

	// Prompt is the placeholder character; zero means the default.
	Prompt rune

	// Description is a short human-readable summary.
	Description string
}

// Registry holds mask definitions by name.
type Registry struct {
	mu sync.RWMutex

	defs map[string]Definition

	// compiled caches the compiled mask per definition name,
	// invalidated when the definition changes.
	compiled map[string]*mask.Mask
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		defs:     make(map[string]Definition),
		compiled: make(map[string]*mask.Mask),
	}
}

// NewWithBuiltins creates a registry seeded with the builtin
// definitions.
func NewWithBuiltins() *Registry {
	r := New()
	for _, def := range Builtins() {
		r.defs[def.Name] = def
	}
	return r
}

// Register adds a definition, replacing any existing entry with the
// same name.
func (r *Registry) Register(def Definition) error {
	if def.Name == "" {
		return fmt.Errorf("cannot register definition with empty name")
	}
	if def.Pattern == "" {
		return fmt.Errorf("cannot register definition %q with empty pattern", def.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.defs[def.Name] = def
	delete(r.compiled, def.Name)
	return nil
}

// Lookup returns the definition for a name.
func (r *Registry) Lookup(name string) (Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.defs[name]
	return def, ok
}

// Remove deletes a definition. It returns true when an entry existed.
func (r *Registry) Remove(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.defs[name]
	delete(r.defs, name)
	delete(r.compiled, name)
	return ok
}

// Names returns all definition names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.defs))
	for name := range r.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of definitions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.defs)
}

// Compile returns the compiled mask for a named definition, caching
// the result until the definition changes.
func (r *Registry) Compile(name string) (*mask.Mask, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if m, ok := r.compiled[name]; ok {
		return m, nil
	}
	def, ok := r.defs[name]
	if !ok {
		return nil, fmt.Errorf("unknown mask definition %q", name)
	}

	var opts []mask.Option
	if def.Prompt != 0 {
		opts = append(opts, mask.WithPrompt(def.Prompt))
	}
	m := mask.Compile(def.Pattern, opts...)
	r.compiled[name] = m
	return m, nil
}

// Replace swaps the full definition set, used by configuration
// reload. Builtins are kept unless overridden by the new set.
func (r *Registry) Replace(defs []Definition, keepBuiltins bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.defs = make(map[string]Definition)
	r.compiled = make(map[string]*mask.Mask)
	if keepBuiltins {
		for _, def := range Builtins() {
			r.defs[def.Name] = def
		}
	}
	for _, def := range defs {
		if def.Name == "" || def.Pattern == "" {
			continue
		}
		r.defs[def.Name] = def
	}
}
