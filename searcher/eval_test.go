package searcher

import (
	"math"
	"testing"

	"gomoku/game"

	"github.com/stretchr/testify/require"
)

func TestScorePatternOrdering(t *testing.T) {
	// Canonical (stones, empties) windows in decreasing tactical severity.
	canonical := []struct {
		name        string
		mine, empty int
		want        int
	}{
		{"five", 5, 0, Five},
		{"open four", 4, 1, OpenFour},
		{"rush four", 4, 0, RushFour},
		{"open three", 3, 2, OpenThree},
		{"rush three", 3, 1, RushThree},
		{"open two", 2, 3, OpenTwo},
		{"rush two", 2, 2, RushTwo},
		{"blocked one", 1, 4, BlockedOne},
	}

	previous := math.MaxInt
	for _, c := range canonical {
		t.Run(c.name, func(t *testing.T) {
			got := scorePattern(c.mine, c.empty)
			require.Equal(t, c.want, got)
			require.Greater(t, got, 0)
			require.Less(t, got, previous, "pattern weights must strictly decrease in severity order")
			previous = got
		})
	}
}

func TestEvaluateWindow(t *testing.T) {
	t.Run("window with both players' stones scores zero", func(t *testing.T) {
		b := game.NewBoard(5)
		b.Set(0, 0, game.PlayerOne)
		b.Set(0, 1, game.PlayerOne)
		b.Set(0, 2, game.PlayerOne)
		b.Set(0, 3, game.PlayerOne)
		b.Set(0, 4, game.PlayerTwo)

		require.Zero(t, evaluateWindow(b, 0, 0, 0, 1, game.PlayerOne))
		require.Zero(t, evaluateWindow(b, 0, 0, 0, 1, game.PlayerTwo))
	})

	t.Run("empty window carries latent potential", func(t *testing.T) {
		b := game.NewBoard(5)

		require.Equal(t, emptyWindow, evaluateWindow(b, 0, 0, 0, 1, game.PlayerOne))
	})

	t.Run("opponent-only window scores zero", func(t *testing.T) {
		b := game.NewBoard(5)
		b.Set(0, 0, game.PlayerTwo)
		b.Set(0, 1, game.PlayerTwo)

		require.Zero(t, evaluateWindow(b, 0, 0, 0, 1, game.PlayerOne))
	})

	t.Run("open four in a vertical window", func(t *testing.T) {
		b := game.NewBoard(5)
		for row := 0; row < 4; row++ {
			b.Set(row, 2, game.PlayerOne)
		}

		require.Equal(t, OpenFour, evaluateWindow(b, 0, 2, 1, 0, game.PlayerOne))
	})
}

func TestEvaluatePosition(t *testing.T) {
	t.Run("symmetric for a mirrored position", func(t *testing.T) {
		a := game.NewBoard(9)
		a.Set(4, 3, game.PlayerOne)
		a.Set(4, 4, game.PlayerOne)
		b := game.NewBoard(9)
		b.Set(4, 3, game.PlayerTwo)
		b.Set(4, 4, game.PlayerTwo)

		require.Equal(t, EvaluatePosition(a, game.PlayerOne), EvaluatePosition(b, game.PlayerTwo))
	})

	t.Run("a pair outranks a lone stone", func(t *testing.T) {
		pair := game.NewBoard(9)
		pair.Set(4, 3, game.PlayerOne)
		pair.Set(4, 4, game.PlayerOne)
		lone := game.NewBoard(9)
		lone.Set(4, 4, game.PlayerOne)

		require.Greater(t, EvaluatePosition(pair, game.PlayerOne), EvaluatePosition(lone, game.PlayerOne))
	})

	t.Run("pure function leaves the board untouched", func(t *testing.T) {
		b := game.NewBoard(7)
		b.Set(3, 3, game.PlayerOne)
		snapshot := b.Clone()

		EvaluatePosition(b, game.PlayerOne)
		EvaluatePosition(b, game.PlayerTwo)

		require.Equal(t, snapshot.Cells(), b.Cells())
	})
}

func TestMoveHeuristic(t *testing.T) {
	t.Run("prefers completing a strong line", func(t *testing.T) {
		b := game.NewBoard(9)
		for col := 2; col < 5; col++ {
			b.Set(4, col, game.PlayerOne)
		}

		extend := moveHeuristic(b, game.Cell{Row: 4, Col: 5}, game.PlayerOne)
		corner := moveHeuristic(b, game.Cell{Row: 0, Col: 0}, game.PlayerOne)

		require.Greater(t, extend, corner)
	})

	t.Run("center beats corner on an empty board", func(t *testing.T) {
		b := game.NewBoard(9)

		center := moveHeuristic(b, game.Cell{Row: 4, Col: 4}, game.PlayerOne)
		corner := moveHeuristic(b, game.Cell{Row: 0, Col: 0}, game.PlayerOne)

		require.Greater(t, center, corner)
	})
}

func TestActionWeights(t *testing.T) {
	t.Run("weights form a distribution", func(t *testing.T) {
		b := game.NewBoard(7)
		b.Set(3, 3, game.PlayerOne)
		actions := []game.Cell{{Row: 3, Col: 4}, {Row: 0, Col: 0}, {Row: 6, Col: 6}}

		weights := actionWeights(b, actions, game.PlayerTwo)

		total := 0.0
		for _, w := range weights {
			require.Greater(t, w, 0.0)
			total += w
		}
		require.InDelta(t, 1.0, total, 1e-9)
	})

	t.Run("adjacent cell outweighs a far corner", func(t *testing.T) {
		b := game.NewBoard(9)
		for col := 2; col < 5; col++ {
			b.Set(4, col, game.PlayerOne)
		}
		actions := []game.Cell{{Row: 4, Col: 5}, {Row: 8, Col: 8}}

		weights := actionWeights(b, actions, game.PlayerOne)

		require.Greater(t, weights[0], weights[1])
	})
}
