package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"smart-trolley-be/pkg/store"
)

func TestDefaultCatalogValidatesAgainstDefaultLayout(t *testing.T) {
	if err := Default().Validate(store.DefaultLayout()); err != nil {
		t.Fatalf("default data must be internally consistent: %v", err)
	}
}

func TestValidateRejectsUnknownSection(t *testing.T) {
	c := &Catalog{Entries: []Entry{
		{Name: "caviar", SectionId: "luxury", Aisle: "Aisle 9"},
	}}
	if err := c.Validate(store.DefaultLayout()); err == nil {
		t.Fatal("expected error for unknown section id")
	}
}

func TestValidateRejectsDuplicateNames(t *testing.T) {
	c := &Catalog{Entries: []Entry{
		{Name: "Milk", SectionId: "dairy"},
		{Name: "milk", SectionId: "dairy"},
	}}
	if err := c.Validate(store.DefaultLayout()); err == nil {
		t.Fatal("expected error for duplicate case-insensitive name")
	}
}

func TestFindByName(t *testing.T) {
	cat := Default()

	entry, ok := cat.FindByName("Bread")
	if !ok {
		t.Fatal("expected to find bread")
	}
	if entry.SectionId != "bakery" || entry.Aisle != "Aisle 1" {
		t.Errorf("bread = %+v, want bakery / Aisle 1", entry)
	}

	if _, ok := cat.FindByName("caviar"); ok {
		t.Error("caviar should not exist in the default catalog")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	data := []byte(`items:
  - name: bread
    section: bakery
    aisle: Aisle 1
    price: 3.5
  - name: milk
    section: dairy
    aisle: Aisle 3
    price: 4.99
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cat, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(cat.Entries) != 2 {
		t.Fatalf("len(Entries) = %d, want 2", len(cat.Entries))
	}
	if cat.Entries[0].Name != "bread" || cat.Entries[0].SectionId != "bakery" {
		t.Errorf("first entry = %+v, want bread/bakery", cat.Entries[0])
	}
	if err := cat.Validate(store.DefaultLayout()); err != nil {
		t.Errorf("loaded catalog should validate: %v", err)
	}
}
