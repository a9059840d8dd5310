package di

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ErrCatalogPanic is returned if a catalog lookup panics internally.
var ErrCatalogPanic = errors.New("catalog: panic during Resolve")

// Catalog is the set of components a program can build containers from.
//
// It stands in for package scanning: each package registers its components
// (usually from init) and callers select a subset with Scan or by name.
// Lookups are keyed by Descriptor.Name.
type Catalog struct {
	mu    sync.RWMutex
	items map[string]Descriptor
}

func NewCatalog() *Catalog {
	return &Catalog{items: map[string]Descriptor{}}
}

// Provide stores descriptors under their names and returns the catalog for
// chaining. A later descriptor with the same name replaces the earlier one.
func (c *Catalog) Provide(descs ...Descriptor) *Catalog {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, d := range descs {
		c.items[d.Name()] = d
	}
	return c
}

// Resolve looks up a component and converts panics into errors.
func (c *Catalog) Resolve(name string) (d Descriptor, ok bool, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			d = Descriptor{}
			ok = false
			err = fmt.Errorf("%w: %v", ErrCatalogPanic, rec)
		}
	}()

	c.mu.RLock()
	defer c.mu.RUnlock()
	d, ok = c.items[name]
	return d, ok, nil
}

// Get returns the descriptor if present (no panic).
func (c *Catalog) Get(name string) (Descriptor, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	d, ok := c.items[name]
	return d, ok
}

// MustGet returns the descriptor or panics with a helpful message.
func (c *Catalog) MustGet(name string) Descriptor {
	d, ok := c.Get(name)
	if !ok {
		panic(fmt.Errorf("di: catalog missing component %q", name))
	}
	return d
}

// Scan returns every component whose package is pkgPrefix or below it,
// sorted by name. An empty prefix returns everything.
func (c *Catalog) Scan(pkgPrefix string) []Descriptor {
	pkgPrefix = strings.TrimSuffix(pkgPrefix, "/")

	c.mu.RLock()
	out := make([]Descriptor, 0, len(c.items))
	for _, d := range c.items {
		pkg := d.Package()
		if pkgPrefix == "" || pkg == pkgPrefix || strings.HasPrefix(pkg, pkgPrefix+"/") {
			out = append(out, d)
		}
	}
	c.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// Names returns all component names, sorted.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	out := make([]string, 0, len(c.items))
	for name := range c.items {
		out = append(out, name)
	}
	c.mu.RUnlock()

	sort.Strings(out)
	return out
}

// Len returns the number of registered components.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

var defaultCatalog = NewCatalog()

// Register adds descriptors to the process-wide catalog.
// Component packages call it from init.
func Register(descs ...Descriptor) { defaultCatalog.Provide(descs...) }

// Default returns the process-wide catalog filled by Register.
func Default() *Catalog { return defaultCatalog }
