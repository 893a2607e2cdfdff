package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/beka-birhanu/vinom-maze/visibility"
	"github.com/google/uuid"
)

const storeTimeout = 2 * time.Second

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidConfig   = errors.New("invalid session manager config")
	ErrSizeTooSmall    = errors.New("maze size is below the minimum")
)

// SessionManager keeps the live maze sessions keyed by id.
type SessionManager struct {
	sessions           map[uuid.UUID]*game.Session
	sizeStore          i.SizeStore
	levels             i.LevelRecorder
	logger             i.Logger
	minSize            int
	aspectRatio        float64
	culling            bool
	maxVisibilitySteps int
	sync.RWMutex
}

// Config holds the collaborators and session defaults of a SessionManager.
type Config struct {
	SizeStore          i.SizeStore
	LevelRecorder      i.LevelRecorder
	Logger             i.Logger
	MinSize            int
	AspectRatio        float64
	Culling            bool
	MaxVisibilitySteps int
}

// NewSessionManager validates c and creates an empty manager.
func NewSessionManager(c *Config) (*SessionManager, error) {
	if c == nil || c.SizeStore == nil || c.LevelRecorder == nil || c.Logger == nil {
		return nil, fmt.Errorf("%w: size store, level recorder and logger are required", ErrInvalidConfig)
	}
	if c.MinSize <= 0 {
		c.MinSize = game.DefaultMinSize
	}
	return &SessionManager{
		sessions:           make(map[uuid.UUID]*game.Session),
		sizeStore:          c.SizeStore,
		levels:             c.LevelRecorder,
		logger:             c.Logger,
		minSize:            c.MinSize,
		aspectRatio:        c.AspectRatio,
		culling:            c.Culling,
		maxVisibilitySteps: c.MaxVisibilitySteps,
	}, nil
}

// NewSession starts a session and saves its size as the last one used.
// An explicit size below the minimum is rejected with ErrSizeTooSmall.
// Without an explicit size the last saved size is used, raised to the
// minimum if needed; without an explicit seed the clock picks one.
func (m *SessionManager) NewSession(ctx context.Context, opts i.SessionOptions) (uuid.UUID, game.Snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	size := opts.Size
	if size > 0 && size < m.minSize {
		return uuid.Nil, game.Snapshot{}, fmt.Errorf("%w: %d < %d", ErrSizeTooSmall, size, m.minSize)
	}
	if size <= 0 {
		var err error
		size, err = m.sizeStore.LastSize(ctx)
		if err != nil {
			m.logger.Error(fmt.Sprintf("reading last maze size: %s", err))
			size = game.DefaultSize
		}
		size = max(size, m.minSize)
	}

	seed, fixed := time.Now().UnixNano(), false
	if opts.Seed != nil {
		seed, fixed = *opts.Seed, true
	}

	s, err := game.New(game.Config{
		Size:               size,
		MinSize:            m.minSize,
		AspectRatio:        m.aspectRatio,
		Seed:               seed,
		FixedSeed:          fixed,
		Culling:            m.culling,
		MaxVisibilitySteps: m.maxVisibilitySteps,
	})
	if err != nil {
		return uuid.Nil, game.Snapshot{}, fmt.Errorf("creating session: %w", err)
	}

	snap, err := s.Snapshot()
	if err != nil {
		return uuid.Nil, game.Snapshot{}, err
	}

	m.saveSize(ctx, size)
	id := m.saveSession(s)
	m.logger.Info(fmt.Sprintf("started session %s with a %dx%d maze", id, snap.Width, snap.Height))
	return id, snap, nil
}

func (m *SessionManager) saveSession(s *game.Session) uuid.UUID {
	m.Lock()
	defer m.Unlock()

	id := uuid.New()
	for {
		if _, ok := m.sessions[id]; !ok {
			break
		}
		id = uuid.New()
	}
	m.sessions[id] = s
	return id
}

func (m *SessionManager) session(id uuid.UUID) (*game.Session, error) {
	m.RLock()
	defer m.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return s, nil
}

// Snapshot returns the current state of a session.
func (m *SessionManager) Snapshot(id uuid.UUID) (game.Snapshot, error) {
	s, err := m.session(id)
	if err != nil {
		return game.Snapshot{}, err
	}
	return s.Snapshot()
}

// Move applies a move. Leaving the maze records the finished level and saves
// the size of the maze that replaced it; store failures are logged only.
func (m *SessionManager) Move(ctx context.Context, id uuid.UUID, d maze.Direction) (i.MoveOutcome, error) {
	s, err := m.session(id)
	if err != nil {
		return i.MoveOutcome{}, err
	}

	result, summary, err := s.Move(d)
	if err != nil {
		m.logger.Error(fmt.Sprintf("moving %s in session %s: %s", d, id, err))
		return i.MoveOutcome{}, err
	}

	if summary != nil {
		m.levelFinished(ctx, id, summary, s.Size())
	}

	snap, err := s.Snapshot()
	if err != nil {
		return i.MoveOutcome{}, err
	}
	return i.MoveOutcome{Result: result, Finished: summary, Snapshot: snap}, nil
}

func (m *SessionManager) levelFinished(ctx context.Context, id uuid.UUID, summary *game.LevelSummary, nextSize int) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	record := i.LevelRecord{
		SessionID: id.String(),
		Level:     summary.Level,
		Width:     summary.Width,
		Height:    summary.Height,
		Seed:      summary.Seed,
		Moves:     summary.Moves,
	}
	if err := m.levels.Record(ctx, record); err != nil {
		m.logger.Error(fmt.Sprintf("recording level %d of session %s: %s", summary.Level, id, err))
	}
	m.saveSize(ctx, nextSize)
	m.logger.Info(fmt.Sprintf("session %s finished level %d in %d moves", id, summary.Level, summary.Moves))
}

func (m *SessionManager) saveSize(ctx context.Context, size int) {
	if err := m.sizeStore.SaveSize(ctx, size); err != nil {
		m.logger.Error(fmt.Sprintf("saving maze size %d: %s", size, err))
	}
}

// Resize regenerates the session maze one step larger or smaller.
func (m *SessionManager) Resize(ctx context.Context, id uuid.UUID, larger bool) (game.Snapshot, error) {
	s, err := m.session(id)
	if err != nil {
		return game.Snapshot{}, err
	}

	var size int
	if larger {
		size, err = s.Grow()
	} else {
		size, err = s.Shrink()
	}
	if err != nil {
		m.logger.Error(fmt.Sprintf("resizing session %s: %s", id, err))
		return game.Snapshot{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	m.saveSize(ctx, size)

	return s.Snapshot()
}

// Hint returns the direction towards the exit and the remaining distance.
func (m *SessionManager) Hint(id uuid.UUID) (maze.Direction, int, error) {
	s, err := m.session(id)
	if err != nil {
		return "", 0, err
	}
	return s.Hint()
}

// SetCulling toggles occlusion culling for one session.
func (m *SessionManager) SetCulling(id uuid.UUID, enabled bool) error {
	s, err := m.session(id)
	if err != nil {
		return err
	}
	s.SetCulling(enabled)
	return nil
}

// Visibility returns what the player of a session can see.
func (m *SessionManager) Visibility(id uuid.UUID) (*visibility.Boundary, error) {
	s, err := m.session(id)
	if err != nil {
		return nil, err
	}
	b, err := s.Visibility()
	if err != nil && !errors.Is(err, game.ErrCullingDisabled) {
		m.logger.Error(fmt.Sprintf("visibility of session %s: %s", id, err))
	}
	return b, err
}

// LastLevel looks up the latest finished level of a session.
func (m *SessionManager) LastLevel(ctx context.Context, id uuid.UUID) (*i.LevelRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	r, err := m.levels.BySession(ctx, id.String())
	if err != nil && !errors.Is(err, i.ErrLevelNotFound) {
		m.logger.Error(fmt.Sprintf("reading last level of session %s: %s", id, err))
	}
	return r, err
}

// EndSession removes a session.
func (m *SessionManager) EndSession(id uuid.UUID) error {
	m.Lock()
	defer m.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	delete(m.sessions, id)
	m.logger.Info(fmt.Sprintf("ended session %s", id))
	return nil
}
