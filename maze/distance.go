package maze

import (
	"errors"
	"fmt"
)

// Unreachable marks a cell the distance search never visited.
const Unreachable = -1

var ErrGenerationInvariant = errors.New("maze is not fully connected")

// DistanceMap holds, for every cell, the number of open-wall hops to the exit.
type DistanceMap struct {
	width  int
	height int
	dist   [][]int // width x height
}

// At returns the distance of the cell at (col, row).
func (d DistanceMap) At(col, row int) int {
	return d.dist[col][row]
}

// Max returns the largest distance in the map.
func (d DistanceMap) Max() int {
	best := 0
	for _, col := range d.dist {
		for _, v := range col {
			best = max(best, v)
		}
	}
	return best
}

// ComputeDistances runs a breadth-first search from the exit across open walls.
// A cell left unvisited means the grid is not a perfect maze.
func ComputeDistances(g *Grid) (DistanceMap, error) {
	dist := make([][]int, g.width)
	for i := range dist {
		dist[i] = make([]int, g.height)
		for j := range dist[i] {
			dist[i][j] = Unreachable
		}
	}

	dist[g.exit.Col][g.exit.Row] = 0
	queue := []CellPosition{g.exit}
	for len(queue) > 0 {
		cell := queue[0]
		queue = queue[1:]

		for _, d := range directionOrder {
			if state, _ := g.Wall(wallToward(cell, d)); state != Open {
				continue
			}
			nbr := cell.Step(d)
			if !g.InBound(nbr.Row, nbr.Col) || dist[nbr.Col][nbr.Row] != Unreachable {
				continue
			}
			dist[nbr.Col][nbr.Row] = dist[cell.Col][cell.Row] + 1
			queue = append(queue, nbr)
		}
	}

	dm := DistanceMap{width: g.width, height: g.height, dist: dist}
	for col := range dist {
		for row := range dist[col] {
			if dist[col][row] == Unreachable {
				return dm, fmt.Errorf("%w: cell %s unreachable from exit %s",
					ErrGenerationInvariant, CellPosition{Row: row, Col: col}, g.exit)
			}
		}
	}
	return dm, nil
}

// Hint returns the direction the player should take to get closer to the
// exit. On the exit cell it points through the exit gap. The boolean is false
// when no direction improves the distance, which only happens on a broken grid.
func Hint(g *Grid, d DistanceMap) (Direction, bool) {
	pos := g.player
	current := d.At(pos.Col, pos.Row)

	if current == 0 {
		for _, dir := range directionOrder {
			if wallToward(pos, dir) == g.exitWall {
				return dir, true
			}
		}
	}

	for _, dir := range directionOrder {
		if state, _ := g.Wall(wallToward(pos, dir)); state != Open {
			continue
		}
		nbr := pos.Step(dir)
		if !g.InBound(nbr.Row, nbr.Col) {
			continue
		}
		if v := d.At(nbr.Col, nbr.Row); v != Unreachable && v < current {
			return dir, true
		}
	}
	return "", false
}
