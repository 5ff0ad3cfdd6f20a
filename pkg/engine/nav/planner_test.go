package nav

import (
	"testing"

	"smart-trolley-be/pkg/store"
)

func TestPlanLinearPath(t *testing.T) {
	start := store.Position{X: 0, Y: 0}
	target := store.Section{Id: "s", Bounds: store.Rect{X: 100, Y: 0, W: 0, H: 0}}

	path := Plan(start, target)

	if len(path) != 6 {
		t.Fatalf("len(path) = %d, want 6", len(path))
	}
	if path[0] != (store.Position{X: 0, Y: 0}) {
		t.Errorf("path[0] = %+v, want start", path[0])
	}
	if path[5] != (store.Position{X: 100, Y: 0}) {
		t.Errorf("path[5] = %+v, want anchor {100 0}", path[5])
	}
	for i := 1; i < len(path); i++ {
		wantX := float64(i) * 20
		if path[i].X != wantX || path[i].Y != 0 {
			t.Errorf("path[%d] = %+v, want {%v 0}", i, path[i], wantX)
		}
	}
}

func TestPlanToBakeryFromEntrance(t *testing.T) {
	start := store.Position{X: 300, Y: 430}
	bakery := store.Section{Id: "bakery", Bounds: store.Rect{X: 50, Y: 200, W: 100, H: 80}}

	path := Plan(start, bakery)

	if path[0] != start {
		t.Errorf("path[0] = %+v, want %+v", path[0], start)
	}
	if path[5] != (store.Position{X: 100, Y: 240}) {
		t.Errorf("path[5] = %+v, want bakery center {100 240}", path[5])
	}
}

func TestPlanDegenerateStartAtAnchor(t *testing.T) {
	section := store.Section{Id: "s", Bounds: store.Rect{X: 40, Y: 60, W: 20, H: 20}}
	center := section.Anchor()

	path := Plan(center, section)

	if len(path) != 6 {
		t.Fatalf("len(path) = %d, want 6", len(path))
	}
	for i, p := range path {
		if p != center {
			t.Errorf("path[%d] = %+v, want %+v", i, p, center)
		}
	}
}
