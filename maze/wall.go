package maze

import "fmt"

// WallState is the state of a single wall segment.
type WallState uint8

const (
	Undetermined   WallState = iota // only exists while a maze is being generated
	Solid                           // blocks movement and sight
	Open                            // passage between two cells
	EntranceOrExit                  // boundary gap used as the entrance or the exit
)

func (s WallState) String() string {
	switch s {
	case Undetermined:
		return "undetermined"
	case Solid:
		return "solid"
	case Open:
		return "open"
	case EntranceOrExit:
		return "entrance_or_exit"
	}
	return fmt.Sprintf("WallState(%d)", uint8(s))
}

// MarshalText encodes the state by name.
func (s WallState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Blocks reports whether the wall stops both movement and rays.
func (s WallState) Blocks() bool {
	return s != Open
}

// Orientation tells which wall array a WallRef indexes.
type Orientation uint8

const (
	Vertical   Orientation = iota // separates horizontally adjacent cells
	Horizontal                    // separates vertically adjacent cells
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// WallRef names one wall segment. For a vertical wall Col is in [0, width]
// and Row in [0, height); for a horizontal wall Col is in [0, width) and Row
// in [0, height].
type WallRef struct {
	Orientation Orientation
	Col         int
	Row         int
}

func (w WallRef) String() string {
	return fmt.Sprintf("%s[%d][%d]", w.Orientation, w.Col, w.Row)
}

// Endpoints returns the two lattice points of the segment, ordered by
// increasing coordinate.
func (w WallRef) Endpoints() (x1, y1, x2, y2 int) {
	if w.Orientation == Vertical {
		return w.Col, w.Row, w.Col, w.Row + 1
	}
	return w.Col, w.Row, w.Col + 1, w.Row
}

// wallToward returns the wall on side d of the cell at pos.
func wallToward(pos CellPosition, d Direction) WallRef {
	switch d {
	case North:
		return WallRef{Orientation: Horizontal, Col: pos.Col, Row: pos.Row}
	case South:
		return WallRef{Orientation: Horizontal, Col: pos.Col, Row: pos.Row + 1}
	case West:
		return WallRef{Orientation: Vertical, Col: pos.Col, Row: pos.Row}
	default:
		return WallRef{Orientation: Vertical, Col: pos.Col + 1, Row: pos.Row}
	}
}
