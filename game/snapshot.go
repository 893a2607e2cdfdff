package game

import (
	"github.com/beka-birhanu/vinom-maze/maze"
)

// Snapshot is a read-only copy of a session, safe to hand to encoders after
// the lock is released.
type Snapshot struct {
	Version    int64              `json:"version"`
	Level      int                `json:"level"`
	Size       int                `json:"size"`
	Width      int                `json:"width"`
	Height     int                `json:"height"`
	Seed       int64              `json:"seed"`
	Moves      int                `json:"moves"`
	Culling    bool               `json:"culling"`
	Player     maze.CellPosition  `json:"player"`
	Entrance   maze.CellPosition  `json:"entrance"`
	Exit       maze.CellPosition  `json:"exit"`
	Hint       *maze.Direction    `json:"hint,omitempty"`
	Vertical   [][]maze.WallState `json:"vertical"`   // [col][row], width+1 columns.
	Horizontal [][]maze.WallState `json:"horizontal"` // [col][row], height+1 rows.
	Rendered   string             `json:"rendered"`
}

// Snapshot copies the current state. The hint is only filled in while it is
// visible, meaning Hint was called and no move has happened since.
func (s *Session) Snapshot() (Snapshot, error) {
	s.RLock()
	defer s.RUnlock()

	g := s.grid
	snap := Snapshot{
		Version:    s.version,
		Level:      s.level,
		Size:       s.size,
		Width:      g.Width(),
		Height:     g.Height(),
		Seed:       s.seed,
		Moves:      s.moves,
		Culling:    s.culling,
		Player:     g.Player(),
		Entrance:   g.Entrance(),
		Exit:       g.Exit(),
		Vertical:   make([][]maze.WallState, g.Width()+1),
		Horizontal: make([][]maze.WallState, g.Width()),
		Rendered:   g.String(),
	}

	for c := 0; c <= g.Width(); c++ {
		snap.Vertical[c] = make([]maze.WallState, g.Height())
		for r := 0; r < g.Height(); r++ {
			snap.Vertical[c][r] = g.VerticalWall(c, r)
		}
	}
	for c := 0; c < g.Width(); c++ {
		snap.Horizontal[c] = make([]maze.WallState, g.Height()+1)
		for r := 0; r <= g.Height(); r++ {
			snap.Horizontal[c][r] = g.HorizontalWall(c, r)
		}
	}

	if s.hint {
		dir, _, err := s.hintLocked()
		if err != nil {
			return Snapshot{}, err
		}
		snap.Hint = &dir
	}
	return snap, nil
}
