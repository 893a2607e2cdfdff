package game

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/visibility"
)

var ErrCullingDisabled = errors.New("occlusion culling is disabled for this session")

// Session constants for sizing.
const (
	DefaultSize    = 10  // Size used when nothing was saved yet.
	DefaultMinSize = 10  // Smallest size a shrink can reach.
	growFactor     = 1.1 // Applied on level up and on "larger".
	shrinkFactor   = 0.95
)

// Config holds the settings a new Session starts from.
type Config struct {
	Size               int     // Number of rows; columns follow AspectRatio.
	MinSize            int     // Lower bound for Shrink.
	AspectRatio        float64 // Columns per row, 1 when zero.
	Seed               int64   // Seed of the first maze.
	FixedSeed          bool    // Derive later seeds from Seed instead of the clock.
	Culling            bool    // Start with occlusion culling enabled.
	MaxVisibilitySteps int     // Step cap for the visibility sweep, default when zero.
}

// LevelSummary describes a maze the player walked out of.
type LevelSummary struct {
	Level  int
	Width  int
	Height int
	Seed   int64
	Moves  int
}

// Session represents one player walking through a sequence of mazes.
// It owns the current grid; the grid is replaced, never resized, when the
// player levels up or asks for another size.
type Session struct {
	grid         *maze.Grid // The current maze.
	level        int        // 1-based level counter.
	size         int        // Rows of the current maze.
	seed         int64      // Seed the current maze was built from.
	fixedSeed    bool       // Next seeds are seed+1 instead of clock based.
	minSize      int        // Lower bound for Shrink.
	aspectRatio  float64    // Columns per row.
	moves        int        // Successful moves in the current maze.
	hint         bool       // Show the hint until the next move.
	culling      bool       // Occlusion culling enabled.
	maxSteps     int        // Visibility sweep cap.
	version      int64      // Bumped on every state change.
	sync.RWMutex            // Read-Write lock for synchronizing access.
}

// New creates a Session and generates its first maze.
func New(c Config) (*Session, error) {
	if c.MinSize <= 0 {
		c.MinSize = DefaultMinSize
	}
	if c.Size <= 0 {
		c.Size = DefaultSize
	}
	if c.AspectRatio <= 0 {
		c.AspectRatio = 1
	}

	s := &Session{
		level:       1,
		size:        c.Size,
		seed:        c.Seed,
		fixedSeed:   c.FixedSeed,
		minSize:     c.MinSize,
		aspectRatio: c.AspectRatio,
		culling:     c.Culling,
		maxSteps:    c.MaxVisibilitySteps,
	}
	if err := s.regenerate(c.Size, c.Seed); err != nil {
		return nil, err
	}
	return s, nil
}

// dimensions converts a size into columns and rows.
func (s *Session) dimensions(size int) (int, int) {
	return max(1, int(float64(size)*s.aspectRatio)), size
}

// nextSeed picks the seed of the following maze.
func (s *Session) nextSeed() int64 {
	if s.fixedSeed {
		return s.seed + 1
	}
	return time.Now().UnixNano()
}

// regenerate replaces the grid. Callers hold the write lock or own s.
func (s *Session) regenerate(size int, seed int64) error {
	width, height := s.dimensions(size)
	g, err := maze.Generate(width, height, seed)
	if err != nil {
		return fmt.Errorf("generating %dx%d maze: %w", width, height, err)
	}

	s.grid = g
	s.size = size
	s.seed = seed
	s.moves = 0
	s.hint = false
	s.version++
	return nil
}

// Move applies a move request. When the player walks out of the maze the
// finished level is summarised and a larger maze replaces it.
func (s *Session) Move(d maze.Direction) (maze.MoveResult, *LevelSummary, error) {
	s.Lock()
	defer s.Unlock()

	result := s.grid.Move(d)
	switch result {
	case maze.Moved:
		s.moves++
		s.hint = false
		s.version++
		return result, nil, nil

	case maze.ExitReached:
		if !s.grid.IsExit(d) {
			// Walking back out of the entrance leaves the maze unchanged.
			return maze.Blocked, nil, nil
		}
		summary := &LevelSummary{
			Level:  s.level,
			Width:  s.grid.Width(),
			Height: s.grid.Height(),
			Seed:   s.seed,
			Moves:  s.moves,
		}
		if err := s.regenerate(grow(s.size), s.nextSeed()); err != nil {
			return result, summary, err
		}
		s.level++
		return result, summary, nil
	}

	return result, nil, nil
}

// Grow regenerates a larger maze at the same level and returns its size.
func (s *Session) Grow() (int, error) {
	s.Lock()
	defer s.Unlock()

	if err := s.regenerate(grow(s.size), s.nextSeed()); err != nil {
		return s.size, err
	}
	return s.size, nil
}

// Shrink regenerates a smaller maze, never below the minimum size.
func (s *Session) Shrink() (int, error) {
	s.Lock()
	defer s.Unlock()

	if err := s.regenerate(max(s.minSize, int(float64(s.size)*shrinkFactor)), s.nextSeed()); err != nil {
		return s.size, err
	}
	return s.size, nil
}

func grow(size int) int {
	return 1 + int(float64(size)*growFactor)
}

// Hint returns the direction towards the exit and the remaining distance.
// The hint stays visible in snapshots until the next move.
func (s *Session) Hint() (maze.Direction, int, error) {
	s.Lock()
	defer s.Unlock()

	dir, dist, err := s.hintLocked()
	if err != nil {
		return "", 0, err
	}
	if !s.hint {
		s.hint = true
		s.version++
	}
	return dir, dist, nil
}

func (s *Session) hintLocked() (maze.Direction, int, error) {
	distances, err := maze.ComputeDistances(s.grid)
	if err != nil {
		return "", 0, err
	}
	player := s.grid.Player()
	dir, ok := maze.Hint(s.grid, distances)
	if !ok {
		return "", 0, fmt.Errorf("%w: no hint from %s", maze.ErrGenerationInvariant, player)
	}
	return dir, distances.At(player.Col, player.Row), nil
}

// SetCulling switches occlusion culling on or off.
func (s *Session) SetCulling(enabled bool) {
	s.Lock()
	defer s.Unlock()
	if s.culling != enabled {
		s.culling = enabled
		s.version++
	}
}

// Visibility returns the visible boundary around the player. It fails with
// ErrCullingDisabled unless culling is on.
func (s *Session) Visibility() (*visibility.Boundary, error) {
	s.RLock()
	defer s.RUnlock()

	if !s.culling {
		return nil, ErrCullingDisabled
	}
	return visibility.NewEngine(s.grid, visibility.WithMaxSteps(s.maxSteps)).VisibleBoundary()
}

// Size returns the number of rows of the current maze.
func (s *Session) Size() int {
	s.RLock()
	defer s.RUnlock()
	return s.size
}

// Level returns the current level, starting at 1.
func (s *Session) Level() int {
	s.RLock()
	defer s.RUnlock()
	return s.level
}
