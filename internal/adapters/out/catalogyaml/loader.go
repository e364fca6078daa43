// Package catalogyaml reads the consumption catalog from YAML. The default
// catalog is embedded in the binary; a file can replace it at startup.
package catalogyaml

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"catering/internal/core/domain/model/catalog"
	"catering/internal/core/domain/model/kernel"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type file struct {
	Items []itemEntry `yaml:"items"`
}

type itemEntry struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	MinimumTier string   `yaml:"minimumTier"`
	Slots       []string `yaml:"slots"`
	Unit        string   `yaml:"unit"`
}

// Default returns the embedded catalog.
func Default() (catalog.Catalog, error) {
	return Parse(defaultCatalog)
}

// Load reads path, or returns the embedded catalog when path is empty.
func Load(path string) (catalog.Catalog, error) {
	if path == "" {
		return Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return catalog.Catalog{}, err
	}
	defer f.Close()

	c, err := Decode(f)
	if err != nil {
		return catalog.Catalog{}, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Decode reads one YAML document from r.
func Decode(r io.Reader) (catalog.Catalog, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return catalog.Catalog{}, err
	}
	return Parse(raw)
}

// Parse builds a catalog from YAML bytes. Unknown keys are rejected.
func Parse(raw []byte) (catalog.Catalog, error) {
	var doc file
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return catalog.Catalog{}, fmt.Errorf("decode catalog: %w", err)
	}

	var problems []error
	items := make([]catalog.Item, 0, len(doc.Items))
	for _, entry := range doc.Items {
		item, err := entry.toItem()
		if err != nil {
			problems = append(problems, err)
			continue
		}
		items = append(items, item)
	}
	if err := errors.Join(problems...); err != nil {
		return catalog.Catalog{}, err
	}

	return catalog.NewCatalog(items)
}

func (e itemEntry) toItem() (catalog.Item, error) {
	var problems []error

	tier, err := kernel.ParseGuestTier(e.MinimumTier)
	if err != nil {
		problems = append(problems, err)
	}

	slots := make([]kernel.TimeSlot, 0, len(e.Slots))
	for _, s := range e.Slots {
		slot, err := kernel.ParseTimeSlot(s)
		if err != nil {
			problems = append(problems, err)
			continue
		}
		slots = append(slots, slot)
	}

	if err := errors.Join(problems...); err != nil {
		return catalog.Item{}, fmt.Errorf("item %q: %w", e.ID, err)
	}

	item, err := catalog.NewItem(e.ID, e.Name, tier, slots, e.Unit)
	if err != nil {
		return catalog.Item{}, fmt.Errorf("item %q: %w", e.ID, err)
	}
	return item, nil
}
