package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultLayoutValidates(t *testing.T) {
	if err := DefaultLayout().Validate(); err != nil {
		t.Fatalf("default layout must be valid: %v", err)
	}
}

func TestValidateRejectsDuplicateIds(t *testing.T) {
	l := &Layout{Sections: []Section{
		{Id: "dairy", Name: "Dairy"},
		{Id: "dairy", Name: "Dairy Two"},
	}}
	if err := l.Validate(); err == nil {
		t.Fatal("expected duplicate id error")
	}
}

func TestValidateRejectsEmptyId(t *testing.T) {
	l := &Layout{Sections: []Section{{Id: "  ", Name: "Mystery"}}}
	if err := l.Validate(); err == nil {
		t.Fatal("expected empty id error")
	}
}

func TestAnchorIsBoundsCenter(t *testing.T) {
	s := Section{Bounds: Rect{X: 250, Y: 50, W: 120, H: 100}}
	anchor := s.Anchor()
	if anchor.X != 310 || anchor.Y != 100 {
		t.Errorf("Anchor() = %+v, want {310 100}", anchor)
	}
}

func TestLoadLayout(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layout.yaml")
	data := []byte(`entrance:
  x: 10
  y: 20
sections:
  - id: dairy
    name: Dairy
    bounds: { x: 0, y: 0, w: 100, h: 50 }
    items: [milk]
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	layout, err := LoadLayout(path)
	if err != nil {
		t.Fatalf("LoadLayout: %v", err)
	}
	if layout.Entrance.X != 10 || layout.Entrance.Y != 20 {
		t.Errorf("entrance = %+v, want {10 20}", layout.Entrance)
	}
	section, ok := layout.SectionById("dairy")
	if !ok {
		t.Fatal("dairy section missing")
	}
	if section.Bounds.W != 100 {
		t.Errorf("bounds width = %v, want 100", section.Bounds.W)
	}

	if _, err := LoadLayout(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
