package visibility

import (
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/zyedidia/generic/mapset"
)

// Boundary is the clockwise outline of what the player can see.
type Boundary struct {
	Points     []Point
	Intercepts []Intercept
	// Walls holds every wall segment the sweep stopped on; a renderer can skip
	// walls outside this set.
	Walls mapset.Set[maze.WallRef]
	// Closed is set when the sweep came back round to its starting slope.
	Closed bool
	// Truncated is set when the step cap ran out first.
	Truncated bool
	// LastSlope is the slope the next step would have cast.
	LastSlope Slope
}

// StartSlope aims at the top-left corner of the player's own cell, where its
// top and left walls meet. Because of the clockwise corner rule the first ray
// runs along the top wall side of that corner.
var StartSlope = Slope{DX: -1, DY: -1}

// VisibleBoundary sweeps a ray clockwise around the player, one intercept at a
// time, until it passes its starting slope or the step cap is reached.
func (e *Engine) VisibleBoundary() (*Boundary, error) {
	b := &Boundary{Walls: mapset.New[maze.WallRef]()}

	current := StartSlope
	for i := 0; i < e.maxSteps; i++ {
		in, next, err := e.NearestIntercept(current)
		if err != nil {
			return nil, err
		}
		b.Points = append(b.Points, in.Point)
		b.Intercepts = append(b.Intercepts, in)
		b.Walls.Put(in.Wall)

		passed := sweptPast(current, next, StartSlope)
		current = next
		if passed {
			b.Closed = true
			b.LastSlope = current
			return b, nil
		}
	}

	b.Truncated = true
	b.LastSlope = current
	return b, nil
}

// sweptPast reports whether start lies in the clockwise interval (from, to].
// Every step turns by less than half a turn, which the cross-product test
// relies on.
func sweptPast(from, to, start Slope) bool {
	if cross(from, start) <= 0 {
		return false
	}
	c := cross(start, to)
	return c > 0 || (c == 0 && dot(start, to) > 0)
}

// VisibleWalls returns the walls of b as a slice, in sweep order without
// duplicates.
func (b *Boundary) VisibleWalls() []maze.WallRef {
	seen := mapset.New[maze.WallRef]()
	walls := make([]maze.WallRef, 0, b.Walls.Size())
	for _, in := range b.Intercepts {
		if seen.Has(in.Wall) {
			continue
		}
		seen.Put(in.Wall)
		walls = append(walls, in.Wall)
	}
	return walls
}
