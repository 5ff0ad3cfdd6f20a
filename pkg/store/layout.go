package store

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Position is a point in map-space.
type Position struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Rect is an axis-aligned region of the store map.
type Rect struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	W float64 `json:"w" yaml:"w"`
	H float64 `json:"h" yaml:"h"`
}

// Section is a named region of the store associated with a set of item
// keywords. Bounds may overlap; the layout is presentation data, not a
// collision model.
type Section struct {
	Id     string   `json:"id" yaml:"id"`
	Name   string   `json:"name" yaml:"name"`
	Bounds Rect     `json:"bounds" yaml:"bounds"`
	Color  string   `json:"color" yaml:"color"`
	Items  []string `json:"items" yaml:"items"`
}

// Anchor is the navigation target point for the section: its bounds center.
func (s Section) Anchor() Position {
	return Position{
		X: s.Bounds.X + s.Bounds.W/2,
		Y: s.Bounds.Y + s.Bounds.H/2,
	}
}

// Layout is the store topology: the entrance point and every section.
// Loaded once at startup and treated as immutable reference data.
type Layout struct {
	Entrance Position  `json:"entrance" yaml:"entrance"`
	Sections []Section `json:"sections" yaml:"sections"`
}

// SectionById does a linear scan; the section table is small and static.
func (l *Layout) SectionById(id string) (*Section, bool) {
	for i := range l.Sections {
		if l.Sections[i].Id == id {
			return &l.Sections[i], true
		}
	}
	return nil, false
}

// Validate checks section ids are unique and non-empty.
func (l *Layout) Validate() error {
	seen := make(map[string]bool, len(l.Sections))
	for _, s := range l.Sections {
		if strings.TrimSpace(s.Id) == "" {
			return fmt.Errorf("section %q has an empty id", s.Name)
		}
		if seen[s.Id] {
			return fmt.Errorf("duplicate section id %q", s.Id)
		}
		seen[s.Id] = true
	}
	return nil
}

// LoadLayout reads a layout YAML file.
func LoadLayout(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout file: %w", err)
	}
	var layout Layout
	if err := yaml.Unmarshal(data, &layout); err != nil {
		return nil, fmt.Errorf("parse layout file: %w", err)
	}
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	return &layout, nil
}

// DefaultLayout is the built-in demo store: nine sections and an entrance
// near the bottom of a 600x450 map.
func DefaultLayout() *Layout {
	return &Layout{
		Entrance: Position{X: 300, Y: 430},
		Sections: []Section{
			{
				Id: "produce", Name: "Fresh Produce", Color: "success",
				Bounds: Rect{X: 50, Y: 50, W: 150, H: 100},
				Items:  []string{"apples", "bananas", "lettuce", "tomatoes", "carrots"},
			},
			{
				Id: "dairy", Name: "Dairy & Eggs", Color: "accent",
				Bounds: Rect{X: 250, Y: 50, W: 120, H: 100},
				Items:  []string{"milk", "eggs", "cheese", "yogurt", "butter"},
			},
			{
				Id: "meat", Name: "Meat & Seafood", Color: "destructive",
				Bounds: Rect{X: 400, Y: 50, W: 120, H: 100},
				Items:  []string{"chicken", "beef", "fish", "pork", "shrimp"},
			},
			{
				Id: "bakery", Name: "Bakery", Color: "warning",
				Bounds: Rect{X: 50, Y: 200, W: 100, H: 80},
				Items:  []string{"bread", "cake", "cookies", "muffins", "bagels"},
			},
			{
				Id: "frozen", Name: "Frozen Foods", Color: "primary",
				Bounds: Rect{X: 200, Y: 200, W: 150, H: 80},
				Items:  []string{"ice cream", "frozen pizza", "frozen vegetables", "frozen meals"},
			},
			{
				Id: "beverages", Name: "Beverages", Color: "secondary",
				Bounds: Rect{X: 400, Y: 200, W: 120, H: 80},
				Items:  []string{"soda", "juice", "water", "coffee", "tea"},
			},
			{
				Id: "snacks", Name: "Snacks & Candy", Color: "accent",
				Bounds: Rect{X: 50, Y: 320, W: 120, H: 80},
				Items:  []string{"chips", "chocolate", "nuts", "crackers", "popcorn"},
			},
			{
				Id: "household", Name: "Household", Color: "muted",
				Bounds: Rect{X: 220, Y: 320, W: 150, H: 80},
				Items:  []string{"detergent", "paper towels", "toilet paper", "cleaning supplies"},
			},
			{
				Id: "pharmacy", Name: "Pharmacy", Color: "success",
				Bounds: Rect{X: 420, Y: 320, W: 100, H: 80},
				Items:  []string{"medicine", "vitamins", "first aid", "personal care"},
			},
		},
	}
}
