package maze

import (
	"math/rand/v2"
)

// newRand returns the generator used for maze layouts. PCG output is fixed by
// the standard library, so a seed reproduces the same maze on every platform.
func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// Generate creates a width x height perfect maze. The same seed always yields
// the same walls, entrance and exit.
func Generate(width, height int, seed int64) (*Grid, error) {
	g, err := New(width, height)
	if err != nil {
		return nil, err
	}

	rng := newRand(seed)
	g.placeBoundary(rng)
	g.carve(rng)
	return g, nil
}

// placeBoundary closes the outer walls and cuts the entrance and exit gaps.
// Both are drawn from one index space covering the first half of the left
// boundary followed by the first half of the top boundary; the exit index is
// mirrored onto the right and bottom boundaries, so the two never coincide.
func (g *Grid) placeBoundary(rng *rand.Rand) {
	for row := 0; row < g.height; row++ {
		g.vertical[0][row] = Solid
		g.vertical[g.width][row] = Solid
	}
	for col := 0; col < g.width; col++ {
		g.horizontal[col][0] = Solid
		g.horizontal[col][g.height] = Solid
	}

	size := max(1, (g.height+g.width-1)/2)
	halfVert := g.height / 2
	start := rng.IntN(size)
	end := rng.IntN(size)

	if start < halfVert {
		g.vertical[0][start] = EntranceOrExit
		g.entrance = CellPosition{Row: start, Col: 0}
		g.entranceWall = WallRef{Orientation: Vertical, Col: 0, Row: start}
	} else {
		g.horizontal[start-halfVert][0] = EntranceOrExit
		g.entrance = CellPosition{Row: 0, Col: start - halfVert}
		g.entranceWall = WallRef{Orientation: Horizontal, Col: start - halfVert, Row: 0}
	}

	if end < halfVert {
		row := g.height - 1 - end
		g.vertical[g.width][row] = EntranceOrExit
		g.exit = CellPosition{Row: row, Col: g.width - 1}
		g.exitWall = WallRef{Orientation: Vertical, Col: g.width, Row: row}
	} else {
		col := g.width - 1 - (end - halfVert)
		g.horizontal[col][g.height] = EntranceOrExit
		g.exit = CellPosition{Row: g.height - 1, Col: col}
		g.exitWall = WallRef{Orientation: Horizontal, Col: col, Row: g.height}
	}

	g.player = g.entrance
}

// candidateWalls lists every interior wall separating two regions. Interior
// walls that are still undetermined but already have one region on both
// sides can never be opened without a cycle, so they are closed here.
func (g *Grid) candidateWalls() []WallRef {
	walls := make([]WallRef, 0, 2*g.width*g.height)

	for col := 1; col < g.width; col++ {
		for row := 0; row < g.height; row++ {
			w := WallRef{Orientation: Vertical, Col: col, Row: row}
			if !g.sameRegion(w) {
				walls = append(walls, w)
			} else if g.vertical[col][row] == Undetermined {
				g.vertical[col][row] = Solid
			}
		}
	}
	for col := 0; col < g.width; col++ {
		for row := 1; row < g.height; row++ {
			w := WallRef{Orientation: Horizontal, Col: col, Row: row}
			if !g.sameRegion(w) {
				walls = append(walls, w)
			} else if g.horizontal[col][row] == Undetermined {
				g.horizontal[col][row] = Solid
			}
		}
	}

	return walls
}

// carve opens random candidate walls until a single region is left.
func (g *Grid) carve(rng *rand.Rand) {
	walls := g.candidateWalls()
	for len(walls) > 0 {
		index := rng.IntN(len(walls))
		w := walls[index]
		walls = append(walls[:index], walls[index+1:]...)

		if g.sameRegion(w) {
			// Stale candidate: an earlier merge already joined both sides.
			walls = g.candidateWalls()
			continue
		}

		_ = g.SetWall(w, Open)
		a, b := w.sides()
		g.mergeRegions(a, g.regions[b.Col][b.Row])
	}

	g.closeUndetermined()
}

func (g *Grid) closeUndetermined() {
	for _, col := range g.vertical {
		for j := range col {
			if col[j] == Undetermined {
				col[j] = Solid
			}
		}
	}
	for _, col := range g.horizontal {
		for j := range col {
			if col[j] == Undetermined {
				col[j] = Solid
			}
		}
	}
}
