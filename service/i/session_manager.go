package i

import (
	"context"

	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/visibility"
	"github.com/google/uuid"
)

// MoveOutcome is what a move request returns to the transport layer.
type MoveOutcome struct {
	Result   maze.MoveResult
	Finished *game.LevelSummary // Set when the move left the maze.
	Snapshot game.Snapshot
}

// SessionOptions overrides the defaults of a new session. Zero values keep
// the default.
type SessionOptions struct {
	Size int
	Seed *int64
}

// SessionManager creates and drives maze sessions.
type SessionManager interface {
	// NewSession starts a session and returns its id and first snapshot.
	NewSession(ctx context.Context, opts SessionOptions) (uuid.UUID, game.Snapshot, error)

	Snapshot(id uuid.UUID) (game.Snapshot, error)
	Move(ctx context.Context, id uuid.UUID, d maze.Direction) (MoveOutcome, error)
	Resize(ctx context.Context, id uuid.UUID, larger bool) (game.Snapshot, error)
	Hint(id uuid.UUID) (maze.Direction, int, error)
	SetCulling(id uuid.UUID, enabled bool) error
	Visibility(id uuid.UUID) (*visibility.Boundary, error)

	// LastLevel returns the latest level the session finished. Records outlive
	// the session itself.
	LastLevel(ctx context.Context, id uuid.UUID) (*LevelRecord, error)

	// EndSession forgets the session.
	EndSession(id uuid.UUID) error
}
