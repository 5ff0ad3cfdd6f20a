package nav

import "smart-trolley-be/pkg/store"

// steps is the number of equal segments in a planned path; the path always
// has steps+1 points, endpoints inclusive.
const steps = 5

// Plan computes the on-screen guide path from start to the section's anchor
// (its bounds center): a straight line sampled at six evenly spaced points.
// There is no obstacle avoidance; the map renders the result as a dashed
// guide line, not a walkable route. A start equal to the anchor yields six
// coincident points, which is valid output. Plan never fails.
func Plan(start store.Position, target store.Section) []store.Position {
	anchor := target.Anchor()
	points := make([]store.Position, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / steps
		points = append(points, store.Position{
			X: start.X + (anchor.X-start.X)*t,
			Y: start.Y + (anchor.Y-start.Y)*t,
		})
	}
	return points
}
