package agent

import (
	"testing"
	"time"

	"gomoku/game"
	"gomoku/searcher"

	"github.com/stretchr/testify/require"
)

func TestRandomAgent(t *testing.T) {
	t.Run("plays a legal move", func(t *testing.T) {
		a := NewRandomAgent(1)
		state := game.NewLineGame(5, 4)

		move, _, ok := a.FindMove(state)

		require.True(t, ok)
		require.Equal(t, game.NoPlayer, state.Board().At(move.Row, move.Col))
	})

	t.Run("passes on a terminal position", func(t *testing.T) {
		board := game.NewBoard(5)
		for col := 0; col < 4; col++ {
			board.Set(2, col, game.PlayerOne)
		}
		state := game.NewLineGameFromBoard(board, game.PlayerTwo, 4)

		_, _, ok := NewRandomAgent(1).FindMove(state)

		require.False(t, ok)
	})
}

func TestSearchAgentWrapsEngines(t *testing.T) {
	board := game.NewBoard(9)
	for col := 2; col < 6; col++ {
		board.Set(4, col, game.PlayerOne)
	}
	state := game.NewLineGameFromBoard(board, game.PlayerOne, 5)
	winning := []game.Cell{{Row: 4, Col: 1}, {Row: 4, Col: 6}}

	engines := map[string]Searcher{
		"minimax": searcher.NewMinimax(searcher.WithMaxDepth(1), searcher.WithTimeout(time.Second)),
		"mcts":    searcher.NewMCTS(searcher.WithBudget(10), searcher.WithSeed(1)),
	}
	for name, engine := range engines {
		t.Run(name, func(t *testing.T) {
			move, _, ok := NewSearchAgent(engine).FindMove(state.Clone())

			require.True(t, ok)
			require.Contains(t, winning, move)
		})
	}
}
