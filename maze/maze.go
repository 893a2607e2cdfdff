/*
Package maze provides tools for creating and walking rectangular perfect mazes.

A Grid holds two wall arrays (vertical and horizontal segments), a region map
used while generating, and the player and exit cells. Generate fills a Grid with
a randomized spanning tree so that every cell is reachable from every other cell
along exactly one path, with one entrance and one exit cut into the boundary.

ComputeDistances derives the per-cell hop count to the exit, which Hint turns
into a direction. Move applies a directional step against the wall state and is
the only way the player position changes after generation.
*/
package maze

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidDimension = errors.New("maze width and height must be at least 1")
	ErrOutOfBounds      = errors.New("coordinate out of maze bounds")
)

// Grid represents a rectangular maze of width x height cells.
type Grid struct {
	width        int
	height       int
	vertical     [][]WallState // (width+1) x height
	horizontal   [][]WallState // width x (height+1)
	regions      [][]int       // width x height
	player       CellPosition
	entrance     CellPosition
	exit         CellPosition
	exitWall     WallRef
	entranceWall WallRef
}

// New allocates a grid with every wall Undetermined and every cell in its own
// region. Use Generate for a playable maze.
func New(width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimension, width, height)
	}
	if width*height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d overflows", ErrInvalidDimension, width, height)
	}

	vertical := make([][]WallState, width+1)
	for i := range vertical {
		vertical[i] = make([]WallState, height)
	}
	horizontal := make([][]WallState, width)
	regions := make([][]int, width)
	for i := range horizontal {
		horizontal[i] = make([]WallState, height+1)
		regions[i] = make([]int, height)
		for j := range regions[i] {
			regions[i][j] = i*height + j + 1
		}
	}

	return &Grid{
		width:      width,
		height:     height,
		vertical:   vertical,
		horizontal: horizontal,
		regions:    regions,
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Player returns the current player cell.
func (g *Grid) Player() CellPosition {
	return g.player
}

// Entrance returns the cell behind the entrance gap.
func (g *Grid) Entrance() CellPosition {
	return g.entrance
}

// Exit returns the cell behind the exit gap.
func (g *Grid) Exit() CellPosition {
	return g.exit
}

// ExitWall returns the boundary gap next to the exit cell.
func (g *Grid) ExitWall() WallRef {
	return g.exitWall
}

// EntranceWall returns the boundary gap next to the entrance cell.
func (g *Grid) EntranceWall() WallRef {
	return g.entranceWall
}

// IsExit reports whether moving in direction d from the player's cell would
// pass through the exit gap. Only that gap finishes a maze; the entrance gap
// gives ExitReached from Move as well.
func (g *Grid) IsExit(d Direction) bool {
	if _, ok := Directions[d]; !ok {
		return false
	}
	return wallToward(g.player, d) == g.exitWall
}

// InBound reports whether (row, col) is a cell of the grid.
func (g *Grid) InBound(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// Region returns the region id of a cell. Regions are only meaningful while
// generating; afterwards every cell carries the same id.
func (g *Grid) Region(col, row int) int {
	return g.regions[col][row]
}

// VerticalWall returns the state of the wall at the left of cell (col, row);
// col == Width() addresses the right boundary.
func (g *Grid) VerticalWall(col, row int) WallState {
	return g.vertical[col][row]
}

// HorizontalWall returns the state of the wall above cell (col, row);
// row == Height() addresses the bottom boundary.
func (g *Grid) HorizontalWall(col, row int) WallState {
	return g.horizontal[col][row]
}

// ValidWall reports whether w addresses an existing wall segment.
func (g *Grid) ValidWall(w WallRef) bool {
	if w.Orientation == Vertical {
		return w.Col >= 0 && w.Col <= g.width && w.Row >= 0 && w.Row < g.height
	}
	return w.Col >= 0 && w.Col < g.width && w.Row >= 0 && w.Row <= g.height
}

// IsBoundary reports whether w lies on the outer edge of the grid.
func (g *Grid) IsBoundary(w WallRef) bool {
	if w.Orientation == Vertical {
		return w.Col == 0 || w.Col == g.width
	}
	return w.Row == 0 || w.Row == g.height
}

// Wall returns the state of w.
func (g *Grid) Wall(w WallRef) (WallState, error) {
	if !g.ValidWall(w) {
		return Undetermined, fmt.Errorf("%w: wall %s", ErrOutOfBounds, w)
	}
	if w.Orientation == Vertical {
		return g.vertical[w.Col][w.Row], nil
	}
	return g.horizontal[w.Col][w.Row], nil
}

// SetWall writes the state of a single wall. It is the only writer of the
// wall arrays.
func (g *Grid) SetWall(w WallRef, s WallState) error {
	if !g.ValidWall(w) {
		return fmt.Errorf("%w: wall %s", ErrOutOfBounds, w)
	}
	if w.Orientation == Vertical {
		g.vertical[w.Col][w.Row] = s
	} else {
		g.horizontal[w.Col][w.Row] = s
	}
	return nil
}

// setPlayer moves the player. Callers check bounds first.
func (g *Grid) setPlayer(pos CellPosition) {
	g.player = pos
}

// CountWalls returns how many walls, boundaries included, are in state s.
func (g *Grid) CountWalls(s WallState) int {
	n := 0
	for _, col := range g.vertical {
		for _, w := range col {
			if w == s {
				n++
			}
		}
	}
	for _, col := range g.horizontal {
		for _, w := range col {
			if w == s {
				n++
			}
		}
	}
	return n
}

// RegionCount returns the number of distinct region ids.
func (g *Grid) RegionCount() int {
	seen := make(map[int]struct{})
	for _, col := range g.regions {
		for _, id := range col {
			seen[id] = struct{}{}
		}
	}
	return len(seen)
}

// String provides a textual representation of the maze. The player is drawn
// as "@", the exit cell as "X" and gaps in the boundary as blanks.
func (g *Grid) String() string {
	var b strings.Builder

	for row := 0; row <= g.height; row++ {
		// Wall row above cell row `row`
		b.WriteString("+")
		for col := 0; col < g.width; col++ {
			if g.horizontal[col][row].Blocks() && g.horizontal[col][row] != EntranceOrExit {
				b.WriteString("---+")
			} else {
				b.WriteString("   +")
			}
		}
		b.WriteString("\n")
		if row == g.height {
			break
		}

		// Cell row
		for col := 0; col <= g.width; col++ {
			w := g.vertical[col][row]
			if w.Blocks() && w != EntranceOrExit {
				b.WriteString("|")
			} else {
				b.WriteString(" ")
			}
			if col == g.width {
				break
			}
			switch (CellPosition{Row: row, Col: col}) {
			case g.player:
				b.WriteString(" @ ")
			case g.exit:
				b.WriteString(" X ")
			default:
				b.WriteString("   ")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
