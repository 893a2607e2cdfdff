package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// corridor builds a 1 x width maze whose interior walls are all open, with
// the exit gap on the right of the last cell.
func corridor(t *testing.T, width int) *Grid {
	t.Helper()
	g, err := New(width, 1)
	require.NoError(t, err)

	for col := 0; col <= width; col++ {
		state := Open
		if col == 0 || col == width {
			state = Solid
		}
		require.NoError(t, g.SetWall(WallRef{Orientation: Vertical, Col: col}, state))
	}
	for col := 0; col < width; col++ {
		require.NoError(t, g.SetWall(WallRef{Orientation: Horizontal, Col: col, Row: 0}, Solid))
		require.NoError(t, g.SetWall(WallRef{Orientation: Horizontal, Col: col, Row: 1}, Solid))
	}

	g.exitWall = WallRef{Orientation: Vertical, Col: width}
	require.NoError(t, g.SetWall(g.exitWall, EntranceOrExit))
	g.exit = CellPosition{Col: width - 1}
	return g
}

func TestComputeDistancesCorridor(t *testing.T) {
	g := corridor(t, 5)

	d, err := ComputeDistances(g)
	require.NoError(t, err)
	for col := 0; col < 5; col++ {
		assert.Equal(t, 4-col, d.At(col, 0))
	}
	assert.Equal(t, 4, d.Max())
}

func TestComputeDistancesGenerated(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		g, err := Generate(9, 7, seed)
		require.NoError(t, err)

		d, err := ComputeDistances(g)
		require.NoError(t, err)
		assert.Equal(t, 0, d.At(g.Exit().Col, g.Exit().Row))

		for col := 0; col < g.Width(); col++ {
			for row := 0; row < g.Height(); row++ {
				v := d.At(col, row)
				require.NotEqual(t, Unreachable, v)
				// Cells joined by an open wall differ by exactly one hop.
				if col+1 < g.Width() && g.VerticalWall(col+1, row) == Open {
					diff := v - d.At(col+1, row)
					assert.True(t, diff == 1 || diff == -1)
				}
				if row+1 < g.Height() && g.HorizontalWall(col, row+1) == Open {
					diff := v - d.At(col, row+1)
					assert.True(t, diff == 1 || diff == -1)
				}
			}
		}
	}
}

func TestComputeDistancesUnreachable(t *testing.T) {
	g := corridor(t, 4)
	require.NoError(t, g.SetWall(WallRef{Orientation: Vertical, Col: 2}, Solid))

	d, err := ComputeDistances(g)
	assert.ErrorIs(t, err, ErrGenerationInvariant)
	assert.Equal(t, Unreachable, d.At(0, 0))
	assert.Equal(t, 1, d.At(2, 0))
}

func TestHint(t *testing.T) {
	t.Run("points along the corridor", func(t *testing.T) {
		g := corridor(t, 3)
		d, err := ComputeDistances(g)
		require.NoError(t, err)

		dir, ok := Hint(g, d)
		require.True(t, ok)
		assert.Equal(t, East, dir)
	})

	t.Run("points through the exit gap on the exit cell", func(t *testing.T) {
		g := corridor(t, 2)
		require.Equal(t, Moved, g.MoveEast())
		d, err := ComputeDistances(g)
		require.NoError(t, err)

		dir, ok := Hint(g, d)
		require.True(t, ok)
		assert.Equal(t, East, dir)
	})

	t.Run("following hints reaches the exit", func(t *testing.T) {
		g, err := Generate(15, 11, 99)
		require.NoError(t, err)
		d, err := ComputeDistances(g)
		require.NoError(t, err)

		for steps := 0; steps <= d.Max()+1; steps++ {
			dir, ok := Hint(g, d)
			require.True(t, ok)
			if g.Move(dir) == ExitReached {
				assert.Equal(t, g.Exit(), g.Player())
				return
			}
		}
		t.Fatal("hints did not lead to the exit")
	})
}
