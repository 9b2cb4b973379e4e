package core

import (
	"fmt"
	"sort"
	"sync"
)

// Registry holds the registered pages.
type Registry struct {
	mu    sync.RWMutex
	pages map[string]Page
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{pages: make(map[string]Page)}
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry used by the package-level
// functions.
func DefaultRegistry() *Registry { return defaultRegistry }

// Register adds a page to the registry.
// Panics if a page with the same key is already registered.
func (r *Registry) Register(p Page) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := p.Info().Key
	if _, exists := r.pages[key]; exists {
		panic(fmt.Sprintf("page already registered: %s", key))
	}
	r.pages[key] = p
}

// Get returns a page by key.
// Returns false if not found.
func (r *Registry) Get(key string) (Page, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.pages[key]
	return p, ok
}

// All returns all registered pages.
// Sorted by group then by key for consistent ordering.
func (r *Registry) All() []Page {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Page, 0, len(r.pages))
	for _, p := range r.pages {
		result = append(result, p)
	}

	sort.Slice(result, func(i, j int) bool {
		a, b := result[i].Info(), result[j].Info()
		if a.Group != b.Group {
			return a.Group < b.Group
		}
		return a.Key < b.Key
	})

	return result
}

// ByGroup returns all pages for a specific group.
// Sorted by key for consistent ordering.
func (r *Registry) ByGroup(group string) []Page {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []Page
	for _, p := range r.pages {
		if p.Info().Group == group {
			result = append(result, p)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Info().Key < result[j].Info().Key
	})

	return result
}

// Groups returns all unique group names.
// Sorted alphabetically.
func (r *Registry) Groups() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool)
	for _, p := range r.pages {
		seen[p.Info().Group] = true
	}

	groups := make([]string, 0, len(seen))
	for g := range seen {
		groups = append(groups, g)
	}

	sort.Strings(groups)
	return groups
}

// Count returns the number of registered pages.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.pages)
}

// Clear removes all registered pages.
// Primarily useful for testing.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pages = make(map[string]Page)
}

// Register adds a page to the default registry.
func Register(p Page) { defaultRegistry.Register(p) }

// Get returns a page from the default registry.
func Get(key string) (Page, bool) { return defaultRegistry.Get(key) }

// All returns all pages in the default registry.
func All() []Page { return defaultRegistry.All() }

// ByGroup returns the default registry's pages for group.
func ByGroup(group string) []Page { return defaultRegistry.ByGroup(group) }

// Groups returns the default registry's group names.
func Groups() []string { return defaultRegistry.Groups() }

// PageCount returns the number of pages in the default registry.
func PageCount() int { return defaultRegistry.Count() }

// Clear empties the default registry.
func Clear() { defaultRegistry.Clear() }
