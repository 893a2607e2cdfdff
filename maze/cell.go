package maze

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidDirection = errors.New("invalid direction")

// CellPosition represents the position of a cell in the maze grid.
type CellPosition struct {
	Row int `json:"row"` // Row index of the cell
	Col int `json:"col"` // Column index of the cell
}

func (cp CellPosition) String() string {
	return fmt.Sprintf("(%d,%d)", cp.Col, cp.Row)
}

// Direction names one of the four sides of a cell.
type Direction string

const (
	North Direction = "North" // up, towards row 0
	South Direction = "South" // down
	East  Direction = "East"  // right
	West  Direction = "West"  // left, towards column 0
)

// Directions maps every direction to its row/column delta.
var Directions = map[Direction]CellPosition{
	North: {Row: -1, Col: 0},
	South: {Row: 1, Col: 0},
	East:  {Row: 0, Col: 1},
	West:  {Row: 0, Col: -1},
}

// directionOrder fixes the iteration order wherever the result must be
// deterministic; ranging over Directions is not.
var directionOrder = [4]Direction{North, South, West, East}

// ParseDirection accepts the compass names as well as up/down/left/right,
// ignoring case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "north", "up":
		return North, nil
	case "south", "down":
		return South, nil
	case "east", "right":
		return East, nil
	case "west", "left":
		return West, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// Step returns the neighbouring position in direction d. The result may lie
// outside the grid.
func (cp CellPosition) Step(d Direction) CellPosition {
	delta := Directions[d]
	return CellPosition{Row: cp.Row + delta.Row, Col: cp.Col + delta.Col}
}
