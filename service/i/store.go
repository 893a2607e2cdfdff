package i

import (
	"context"
	"errors"
)

var ErrLevelNotFound = errors.New("level record not found")

// SizeStore remembers the maze size the last session ended on.
type SizeStore interface {
	// LastSize returns the saved size, or the store's default when nothing
	// was saved yet.
	LastSize(ctx context.Context) (int, error)

	// SaveSize overwrites the saved size.
	SaveSize(ctx context.Context, size int) error
}

// LevelRecord describes one maze a player walked out of.
type LevelRecord struct {
	SessionID string `bson:"_id" json:"session_id"`
	Level     int    `bson:"level" json:"level"`
	Width     int    `bson:"width" json:"width"`
	Height    int    `bson:"height" json:"height"`
	Seed      int64  `bson:"seed" json:"seed"`
	Moves     int    `bson:"moves" json:"moves"`
}

// LevelRecorder persists completed levels.
type LevelRecorder interface {
	// Record inserts or updates the record of a session's latest level.
	Record(ctx context.Context, r LevelRecord) error

	// BySession returns the latest level record of a session.
	BySession(ctx context.Context, sessionID string) (*LevelRecord, error)
}
