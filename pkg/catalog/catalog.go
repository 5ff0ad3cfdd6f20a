package catalog

import (
	"fmt"
	"os"
	"strings"

	"smart-trolley-be/pkg/store"

	"gopkg.in/yaml.v3"
)

// Entry maps an item name to the section that stocks it. Reference data,
// set once at startup, unique by case-insensitive name.
type Entry struct {
	Name      string  `json:"name" yaml:"name"`
	SectionId string  `json:"section_id" yaml:"section"`
	Aisle     string  `json:"aisle" yaml:"aisle"`
	Price     float64 `json:"price" yaml:"price"`
}

// Catalog is an ordered item table. Iteration order is insertion order and
// is part of the resolver's tie-break contract, so entries live in a slice.
type Catalog struct {
	Entries []Entry `yaml:"items"`
}

// FindByName does a case-insensitive exact lookup.
func (c *Catalog) FindByName(name string) (*Entry, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	for i := range c.Entries {
		if strings.ToLower(c.Entries[i].Name) == needle {
			return &c.Entries[i], true
		}
	}
	return nil, false
}

// Validate checks the catalog against the store layout. A catalog entry
// pointing at a missing section is a data-authoring bug and must abort
// startup; it is never a runtime condition.
func (c *Catalog) Validate(layout *store.Layout) error {
	seen := make(map[string]bool, len(c.Entries))
	for _, e := range c.Entries {
		key := strings.ToLower(strings.TrimSpace(e.Name))
		if key == "" {
			return fmt.Errorf("catalog entry with empty name (section %q)", e.SectionId)
		}
		if seen[key] {
			return fmt.Errorf("duplicate catalog entry %q", e.Name)
		}
		seen[key] = true

		if _, ok := layout.SectionById(e.SectionId); !ok {
			return fmt.Errorf("catalog entry %q references unknown section %q", e.Name, e.SectionId)
		}
	}
	return nil
}

// LoadFile reads a catalog YAML file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}
	return &c, nil
}

// Default is the built-in demo catalog matching DefaultLayout.
func Default() *Catalog {
	return &Catalog{Entries: []Entry{
		{Name: "milk", SectionId: "dairy", Aisle: "Aisle 3", Price: 4.99},
		{Name: "bread", SectionId: "bakery", Aisle: "Aisle 1", Price: 3.50},
		{Name: "apples", SectionId: "produce", Aisle: "Aisle 2", Price: 6.25},
		{Name: "chicken", SectionId: "meat", Aisle: "Aisle 4", Price: 12.99},
		{Name: "eggs", SectionId: "dairy", Aisle: "Aisle 3", Price: 5.49},
		{Name: "bananas", SectionId: "produce", Aisle: "Aisle 2", Price: 2.99},
		{Name: "cheese", SectionId: "dairy", Aisle: "Aisle 3", Price: 7.25},
		{Name: "tomatoes", SectionId: "produce", Aisle: "Aisle 2", Price: 3.75},
		{Name: "ice cream", SectionId: "frozen", Aisle: "Aisle 5", Price: 6.99},
		{Name: "soda", SectionId: "beverages", Aisle: "Aisle 6", Price: 1.99},
	}}
}
