package maze

// MoveResult is the outcome of a move request. None of the outcomes is an
// error; callers branch on them.
type MoveResult uint8

const (
	Blocked     MoveResult = iota // solid wall or grid edge, player unchanged
	Moved                         // player shifted one cell
	ExitReached                   // player pushed through an entrance/exit gap, player unchanged
)

func (r MoveResult) String() string {
	switch r {
	case Moved:
		return "moved"
	case ExitReached:
		return "exit_reached"
	default:
		return "blocked"
	}
}

// MarshalText encodes the result by name.
func (r MoveResult) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Move tries to step the player one cell in direction d.
func (g *Grid) Move(d Direction) MoveResult {
	if _, ok := Directions[d]; !ok {
		return Blocked
	}

	from := g.player
	state, err := g.Wall(wallToward(from, d))
	if err != nil {
		return Blocked
	}

	switch state {
	case EntranceOrExit:
		return ExitReached
	case Open:
		to := from.Step(d)
		if !g.InBound(to.Row, to.Col) {
			return Blocked
		}
		g.setPlayer(to)
		return Moved
	default:
		return Blocked
	}
}

// MoveNorth moves the player up.
func (g *Grid) MoveNorth() MoveResult { return g.Move(North) }

// MoveSouth moves the player down.
func (g *Grid) MoveSouth() MoveResult { return g.Move(South) }

// MoveWest moves the player left.
func (g *Grid) MoveWest() MoveResult { return g.Move(West) }

// MoveEast moves the player right.
func (g *Grid) MoveEast() MoveResult { return g.Move(East) }
