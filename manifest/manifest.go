// Package manifest selects catalog components from a YAML file.
//
// A manifest is the discovery input of a container: it names the packages to
// scan and any extra components, minus excludes.
//
//	packages:
//	  - github.com/sghaida/beanbox/examples/garage
//	components:
//	  - garage.Radio
//	exclude:
//	  - garage.Siren
//	slotPolicy: warn
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/sghaida/beanbox/di"
	"gopkg.in/yaml.v3"
)

// ErrEmptyManifest is returned by Validate when nothing is selected.
var ErrEmptyManifest = errors.New("manifest: no packages or components")

// UnknownComponentError is returned when a manifest names a component the
// catalog does not have.
type UnknownComponentError struct{ Name string }

// Error implements the error interface.
func (e *UnknownComponentError) Error() string {
	return "manifest: unknown component " + strconv.Quote(e.Name)
}

// Manifest is the parsed YAML document.
type Manifest struct {
	Packages   []string `yaml:"packages"`
	Components []string `yaml:"components"`
	Exclude    []string `yaml:"exclude"`
	SlotPolicy string   `yaml:"slotPolicy"`
}

// Load reads and parses a manifest file.
func Load(path string) (*Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: read %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes a manifest, rejecting unknown keys, and validates it.
func Parse(raw []byte) (*Manifest, error) {
	var m Manifest

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyManifest
		}
		return nil, fmt.Errorf("manifest: decode: %w", err)
	}

	m.normalize()
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Manifest) normalize() {
	m.Packages = trimAll(m.Packages)
	m.Components = trimAll(m.Components)
	m.Exclude = trimAll(m.Exclude)
	m.SlotPolicy = strings.TrimSpace(m.SlotPolicy)
}

func trimAll(in []string) []string {
	out := in[:0]
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Validate checks that something is selected and the policy parses.
func (m *Manifest) Validate() error {
	if len(m.Packages) == 0 && len(m.Components) == 0 {
		return ErrEmptyManifest
	}
	if _, err := di.ParseSlotPolicy(m.SlotPolicy); err != nil {
		return fmt.Errorf("manifest: %w", err)
	}
	return nil
}

// Policy returns the manifest's slot policy (warn when unset).
func (m *Manifest) Policy() (di.SlotPolicy, error) {
	return di.ParseSlotPolicy(m.SlotPolicy)
}

// Descriptors resolves the manifest against cat.
//
// The result is the union of every scanned package and named component,
// minus excludes, deduplicated and sorted by name.
func (m *Manifest) Descriptors(cat *di.Catalog) ([]di.Descriptor, error) {
	picked := make(map[string]di.Descriptor)

	for _, pkg := range m.Packages {
		for _, d := range cat.Scan(pkg) {
			picked[d.Name()] = d
		}
	}
	for _, name := range m.Components {
		d, ok, err := cat.Resolve(name)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, &UnknownComponentError{Name: name}
		}
		picked[name] = d
	}
	for _, name := range m.Exclude {
		delete(picked, name)
	}

	if len(picked) == 0 {
		return nil, di.ErrNoDescriptors
	}

	names := make([]string, 0, len(picked))
	for name := range picked {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]di.Descriptor, 0, len(names))
	for _, name := range names {
		out = append(out, picked[name])
	}
	return out, nil
}
