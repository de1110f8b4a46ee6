package flashstub

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Catalog is a named collection of flash algorithm stubs, typically loaded
// from a YAML file shipped with the flashing tool.
type Catalog struct {
	// Stubs lists the catalog entries in file order
	Stubs []Stub `yaml:"stubs"`
}

// Load reads a stub catalog from the given file path.
//
// Example:
//
//	catalog, err := flashstub.Load("stubs.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	stub, err := catalog.Get("nrf52")
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer func() { _ = f.Close() }()

	return LoadReader(f)
}

// LoadReader reads a stub catalog from any io.Reader.
// This is useful for testing and reading from non-file sources.
func LoadReader(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	if len(catalog.Stubs) == 0 {
		return nil, fmt.Errorf("no stubs found in catalog")
	}

	seen := make(map[string]struct{}, len(catalog.Stubs))
	for i, stub := range catalog.Stubs {
		if stub.Name == "" {
			return nil, fmt.Errorf("stub %d: missing name", i)
		}
		if _, ok := seen[stub.Name]; ok {
			return nil, fmt.Errorf("duplicate stub name %q", stub.Name)
		}
		seen[stub.Name] = struct{}{}
	}

	return &catalog, nil
}

// Get returns the stub with the given name, or a *StubNotFoundError if the
// catalog has no such entry.
func (c *Catalog) Get(name string) (*Stub, error) {
	for i := range c.Stubs {
		if c.Stubs[i].Name == name {
			return &c.Stubs[i], nil
		}
	}
	return nil, &StubNotFoundError{Name: name}
}

// Default returns the first stub marked as the default. The second return
// value is false when the catalog has no default entry.
func (c *Catalog) Default() (*Stub, bool) {
	for i := range c.Stubs {
		if c.Stubs[i].Default {
			return &c.Stubs[i], true
		}
	}
	return nil, false
}
