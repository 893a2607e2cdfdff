/*
Package visibility casts rays from the player's cell centre against a maze
grid to find the nearest visible wall in every direction.

Coordinates follow the screen: X grows to the right, Y grows downwards, and
lattice point (x, y) is the top-left corner of cell (col=x, row=y). A turn that
increases the angle atan2(dy, dx) is clockwise on screen. All geometry is done
in exact rationals so repeated sweeps do not drift.
*/
package visibility

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/vinom-maze/maze"
)

// DefaultMaxSteps caps the intercepts gathered by one sweep.
const DefaultMaxSteps = 512

var (
	ErrNoIntercept = errors.New("ray left the grid without hitting a wall")
	ErrZeroSlope   = errors.New("ray direction must be non-zero")
)

// Slope is a ray direction stored as an integer vector reduced to lowest
// terms, so vertical rays need no special case.
type Slope struct {
	DX int64
	DY int64
}

// NewSlope reduces (dx, dy) by their greatest common divisor.
func NewSlope(dx, dy int64) Slope {
	if g := gcd(abs(dx), abs(dy)); g > 1 {
		dx /= g
		dy /= g
	}
	return Slope{DX: dx, DY: dy}
}

func (s Slope) String() string {
	return fmt.Sprintf("(%d,%d)", s.DX, s.DY)
}

// cross is positive when b lies clockwise of a (less than half a turn).
func cross(a, b Slope) int64 {
	return a.DX*b.DY - a.DY*b.DX
}

func dot(a, b Slope) int64 {
	return a.DX*b.DX + a.DY*b.DY
}

// Point is an exact position in grid-line coordinates.
type Point struct {
	X Rational
	Y Rational
}

func (p Point) String() string {
	return fmt.Sprintf("(%s,%s)", p.X, p.Y)
}

// Intercept is where a ray stopped and the wall that stopped it.
type Intercept struct {
	Point Point
	Wall  maze.WallRef
}

// Engine answers visibility queries for one grid. It reads the player position
// on every call and never mutates the grid.
type Engine struct {
	grid     *maze.Grid
	maxSteps int
}

// Option configures an Engine.
type Option func(*Engine)

// WithMaxSteps overrides DefaultMaxSteps. Non-positive values are ignored.
func WithMaxSteps(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxSteps = n
		}
	}
}

// NewEngine creates an Engine over g.
func NewEngine(g *maze.Grid, opts ...Option) *Engine {
	e := &Engine{grid: g, maxSteps: DefaultMaxSteps}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NearestIntercept walks the ray with direction s from the player's cell
// centre across grid lines, nearest crossing first, and stops at the first
// wall that is not Open. Boundary walls always stop the ray. It returns the
// intercept and the slope towards the clockwise end of the blocking wall.
//
// When the ray meets a vertical and a horizontal line at the same distance it
// passes exactly through a lattice corner. The crossing order is then taken
// from the ray turned an infinitesimal epsilon clockwise: it reaches the
// vertical line first iff DX*DY < 0.
func (e *Engine) NearestIntercept(s Slope) (Intercept, Slope, error) {
	if s.DX == 0 && s.DY == 0 {
		return Intercept{}, s, ErrZeroSlope
	}

	player := e.grid.Player()
	ox, oy := Half(player.Col), Half(player.Row)

	stepX, nextX := step(s.DX, player.Col)
	stepY, nextY := step(s.DY, player.Row)

	limit := e.grid.Width() + e.grid.Height() + 2
	for i := 0; i < limit; i++ {
		tx, hasX := crossing(nextX, ox, s.DX)
		ty, hasY := crossing(nextY, oy, s.DY)

		var order int
		switch {
		case !hasX:
			order = 1
		case !hasY:
			order = -1
		default:
			order = tx.Cmp(ty)
		}

		switch {
		case order < 0:
			y := oy.Add(tx.Mul(Int(s.DY)))
			wall := maze.WallRef{Orientation: maze.Vertical, Col: nextX, Row: int(y.Floor())}
			if e.blocks(wall) {
				return e.stop(Point{X: Int(int64(nextX)), Y: y}, wall)
			}
			nextX += stepX

		case order > 0:
			x := ox.Add(ty.Mul(Int(s.DX)))
			wall := maze.WallRef{Orientation: maze.Horizontal, Col: int(x.Floor()), Row: nextY}
			if e.blocks(wall) {
				return e.stop(Point{X: x, Y: Int(int64(nextY))}, wall)
			}
			nextY += stepY

		default:
			corner := Point{X: Int(int64(nextX)), Y: Int(int64(nextY))}
			for _, wall := range cornerWalls(s, nextX, nextY) {
				if e.blocks(wall) {
					return e.stop(corner, wall)
				}
			}
			nextX += stepX
			nextY += stepY
		}
	}

	return Intercept{}, s, fmt.Errorf("%w: slope %s from %s", ErrNoIntercept, s, player)
}

// step returns the direction of travel along one axis and the first grid
// line the ray will cross on it.
func step(d int64, cell int) (int, int) {
	switch {
	case d > 0:
		return 1, cell + 1
	case d < 0:
		return -1, cell
	default:
		return 0, 0
	}
}

// crossing returns the ray parameter at which it meets grid line `line`.
func crossing(line int, origin Rational, d int64) (Rational, bool) {
	if d == 0 {
		return Rational{}, false
	}
	return Int(int64(line)).Sub(origin).Div(Int(d)), true
}

// cornerWalls lists, in crossing order, the two walls the epsilon-turned ray
// passes when it goes through lattice point (x, y).
func cornerWalls(s Slope, x, y int) [2]maze.WallRef {
	rowBefore, rowAfter := y, y-1
	if s.DY > 0 {
		rowBefore, rowAfter = y-1, y
	}
	colBefore, colAfter := x, x-1
	if s.DX > 0 {
		colBefore, colAfter = x-1, x
	}

	if s.DX*s.DY < 0 {
		return [2]maze.WallRef{
			{Orientation: maze.Vertical, Col: x, Row: rowBefore},
			{Orientation: maze.Horizontal, Col: colAfter, Row: y},
		}
	}
	return [2]maze.WallRef{
		{Orientation: maze.Horizontal, Col: colBefore, Row: y},
		{Orientation: maze.Vertical, Col: x, Row: rowAfter},
	}
}

func (e *Engine) blocks(w maze.WallRef) bool {
	if e.grid.IsBoundary(w) {
		return true
	}
	state, err := e.grid.Wall(w)
	if err != nil {
		return true
	}
	return state.Blocks()
}

// stop builds the intercept and the slope towards the far end of the wall.
func (e *Engine) stop(p Point, w maze.WallRef) (Intercept, Slope, error) {
	return Intercept{Point: p, Wall: w}, e.farEnd(w), nil
}

// farEnd returns the slope from the player's cell centre to the endpoint of
// w that lies clockwise of the other.
func (e *Engine) farEnd(w maze.WallRef) Slope {
	x1, y1, x2, y2 := w.Endpoints()
	a := e.towards(x1, y1)
	b := e.towards(x2, y2)
	if cross(a, b) > 0 {
		return b
	}
	return a
}

// towards returns the slope from the player's cell centre to lattice point
// (x, y). Both coordinates are doubled to stay in integers.
func (e *Engine) towards(x, y int) Slope {
	p := e.grid.Player()
	return NewSlope(int64(2*x-2*p.Col-1), int64(2*y-2*p.Row-1))
}
