package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLineGamePlay(t *testing.T) {
	t.Run("players alternate starting with player one", func(t *testing.T) {
		g := NewLineGame(5, 4)

		require.Equal(t, PlayerOne, g.Player())
		g.Step(Cell{Row: 2, Col: 2})
		require.Equal(t, PlayerTwo, g.Player())
		require.Equal(t, PlayerOne, g.Board().At(2, 2))
	})

	t.Run("horizontal line wins", func(t *testing.T) {
		g := NewLineGame(5, 3)
		g.Step(Cell{Row: 0, Col: 0}) // P1
		g.Step(Cell{Row: 4, Col: 0}) // P2
		g.Step(Cell{Row: 0, Col: 1}) // P1
		g.Step(Cell{Row: 4, Col: 1}) // P2
		g.Step(Cell{Row: 0, Col: 2}) // P1 completes three in a row

		require.True(t, g.IsTerminal())
		require.Equal(t, PlayerOne, g.Winner())
		require.Empty(t, g.ValidActions(), "terminal game should have no actions")
	})

	t.Run("diagonal line wins", func(t *testing.T) {
		g := NewLineGame(5, 3)
		g.Step(Cell{Row: 0, Col: 0}) // P1
		g.Step(Cell{Row: 0, Col: 4}) // P2
		g.Step(Cell{Row: 1, Col: 1}) // P1
		g.Step(Cell{Row: 1, Col: 4}) // P2
		g.Step(Cell{Row: 2, Col: 2}) // P1 completes the diagonal

		require.Equal(t, PlayerOne, g.Winner())
	})

	t.Run("full board without a line is a draw", func(t *testing.T) {
		g := NewLineGame(3, 3)
		moves := []Cell{
			{0, 0}, {1, 1}, {0, 1}, {0, 2}, {2, 0}, {1, 0}, {1, 2}, {2, 2}, {2, 1},
		}
		for _, m := range moves {
			require.False(t, g.IsTerminal())
			g.Step(m)
		}

		require.True(t, g.IsTerminal())
		require.Equal(t, NoPlayer, g.Winner())
	})

	t.Run("valid actions shrink as stones land", func(t *testing.T) {
		g := NewLineGame(4, 3)
		require.Len(t, g.ValidActions(), 16)
		g.Step(Cell{Row: 1, Col: 1})
		require.Len(t, g.ValidActions(), 15)
		require.NotContains(t, g.ValidActions(), Cell{Row: 1, Col: 1})
	})
}

func TestLineGameClone(t *testing.T) {
	g := NewLineGame(5, 4)
	g.Step(Cell{Row: 2, Col: 2})

	clone := g.Clone()
	clone.Step(Cell{Row: 0, Col: 0})

	require.Equal(t, NoPlayer, g.Board().At(0, 0), "stepping a clone must not mutate the original")
	require.Equal(t, PlayerTwo, g.Player())
	require.Equal(t, PlayerOne, clone.Player())
}

func TestLineGameFromBoard(t *testing.T) {
	t.Run("recounts stones and side to move", func(t *testing.T) {
		board := NewBoard(5)
		board.Set(0, 0, PlayerOne)
		board.Set(1, 1, PlayerTwo)

		g := NewLineGameFromBoard(board, PlayerOne, 4)

		require.False(t, g.IsTerminal())
		require.Equal(t, PlayerOne, g.Player())
		require.Len(t, g.ValidActions(), 23)
	})

	t.Run("detects an existing winning line", func(t *testing.T) {
		board := NewBoard(5)
		for col := 0; col < 4; col++ {
			board.Set(2, col, PlayerTwo)
		}

		g := NewLineGameFromBoard(board, PlayerOne, 4)

		require.True(t, g.IsTerminal())
		require.Equal(t, PlayerTwo, g.Winner())
	})

	t.Run("does not alias the given board", func(t *testing.T) {
		board := NewBoard(4)
		g := NewLineGameFromBoard(board, PlayerOne, 3)
		g.Step(Cell{Row: 0, Col: 0})

		require.Equal(t, NoPlayer, board.At(0, 0))
	})
}

func TestLineGameHash(t *testing.T) {
	t.Run("identical positions hash identically", func(t *testing.T) {
		a := NewLineGame(5, 4)
		b := NewLineGame(5, 4)
		a.Step(Cell{Row: 2, Col: 2})
		b.Step(Cell{Row: 2, Col: 2})

		require.Equal(t, a.Hash(), b.Hash())
	})

	t.Run("hash covers the side to move", func(t *testing.T) {
		board := NewBoard(5)
		board.Set(2, 2, PlayerOne)
		a := NewLineGameFromBoard(board, PlayerOne, 4)
		b := NewLineGameFromBoard(board, PlayerTwo, 4)

		require.NotEqual(t, a.Hash(), b.Hash())
	})

	t.Run("different stones hash differently", func(t *testing.T) {
		a := NewLineGame(5, 4)
		b := NewLineGame(5, 4)
		a.Step(Cell{Row: 0, Col: 0})
		b.Step(Cell{Row: 4, Col: 4})

		require.NotEqual(t, a.Hash(), b.Hash())
	})
}
