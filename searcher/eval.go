package searcher

import "gomoku/game"

// Pattern weights, ordered by tactical severity. The ordering is what
// matters: a five always dominates an open four, an open four dominates a
// blocked four, and so on down to a lone stone.
const (
	Five       = 100000
	OpenFour   = 10000
	RushFour   = 5000
	OpenThree  = 2000
	RushThree  = 800
	OpenTwo    = 400
	RushTwo    = 100
	BlockedOne = 5

	emptyWindow = 1
)

const windowSize = 5

var windowDirections = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// EvaluatePosition scores the whole board for one player by sliding a
// five-cell window along every row, column and diagonal and summing the
// window scores. Pure function of the board contents.
func EvaluatePosition(b *game.Board, p game.PlayerID) int {
	size := b.Size()
	total := 0
	for _, d := range windowDirections {
		for row := 0; row < size; row++ {
			for col := 0; col < size; col++ {
				if !windowFits(size, row, col, d[0], d[1]) {
					continue
				}
				total += evaluateWindow(b, row, col, d[0], d[1], p)
			}
		}
	}
	return total
}

func windowFits(size, row, col, dRow, dCol int) bool {
	endRow := row + (windowSize-1)*dRow
	endCol := col + (windowSize-1)*dCol
	return endRow >= 0 && endRow < size && endCol >= 0 && endCol < size
}

// evaluateWindow scores one five-cell window for p. A window holding stones
// of both players is dead and scores 0; a fully empty window carries a token
// score for latent potential.
func evaluateWindow(b *game.Board, row, col, dRow, dCol int, p game.PlayerID) int {
	mine, theirs := 0, 0
	for i := 0; i < windowSize; i++ {
		switch b.At(row+i*dRow, col+i*dCol) {
		case p:
			mine++
		case game.NoPlayer:
		default:
			theirs++
		}
	}
	return scoreCounts(mine, theirs)
}

// scoreCounts classifies a window by stone counts into the pattern table.
func scoreCounts(mine, theirs int) int {
	if mine > 0 && theirs > 0 {
		return 0
	}
	if mine == 0 && theirs == 0 {
		return emptyWindow
	}
	empty := windowSize - mine - theirs
	return scorePattern(mine, empty)
}

// scorePattern maps (own stones, empty cells) in a five-cell window to a
// pattern weight.
func scorePattern(mine, empty int) int {
	switch {
	case mine == 5:
		return Five
	case mine == 4 && empty == 1:
		return OpenFour
	case mine == 4 && empty == 0:
		return RushFour
	case mine == 3 && empty == 2:
		return OpenThree
	case mine == 3 && empty == 1:
		return RushThree
	case mine == 2 && empty == 3:
		return OpenTwo
	case mine == 2 && empty == 2:
		return RushTwo
	case mine == 1 && empty == 4:
		return BlockedOne
	}
	return 0
}

// cellScore sums the scores of every window through cell c with a stone of
// p hypothetically placed there, measuring how much tactical weight the
// cell carries for that player.
func cellScore(b *game.Board, c game.Cell, p game.PlayerID) int {
	size := b.Size()
	total := 0
	for _, d := range windowDirections {
		for off := 0; off < windowSize; off++ {
			row := c.Row - off*d[0]
			col := c.Col - off*d[1]
			if row < 0 || row >= size || col < 0 || col >= size {
				continue
			}
			if !windowFits(size, row, col, d[0], d[1]) {
				continue
			}
			total += windowScoreWith(b, row, col, d[0], d[1], p, c)
		}
	}
	return total
}

// windowScoreWith scores a window treating cell override as holding p.
func windowScoreWith(b *game.Board, row, col, dRow, dCol int, p game.PlayerID, override game.Cell) int {
	mine, theirs := 0, 0
	for i := 0; i < windowSize; i++ {
		r, c := row+i*dRow, col+i*dCol
		cell := b.At(r, c)
		if r == override.Row && c == override.Col {
			cell = p
		}
		switch cell {
		case p:
			mine++
		case game.NoPlayer:
		default:
			theirs++
		}
	}
	return scoreCounts(mine, theirs)
}

// moveHeuristic is the one-ply ordering value used by the minimax root and
// interior nodes: the cell's weight for the mover plus its weight for the
// opponent (blocking value), plus a small bonus for central cells.
func moveHeuristic(b *game.Board, c game.Cell, p game.PlayerID) int {
	score := cellScore(b, c, p) + cellScore(b, c, p.Opponent())
	center := b.Size() / 2
	dist := abs(c.Row-center) + abs(c.Col-center)
	return score + (b.Size() - dist)
}

// actionWeights computes the smoothed heuristic distribution over candidate
// cells used for MCTS priors and rollout sampling. Weights sum to 1; an
// all-zero candidate set degrades to uniform via the epsilon term.
func actionWeights(b *game.Board, actions []game.Cell, p game.PlayerID) []float64 {
	const epsilon = 1e-6
	opp := p.Opponent()
	weights := make([]float64, len(actions))
	total := 0.0
	for i, a := range actions {
		w := float64(cellScore(b, a, p) + cellScore(b, a, opp))
		weights[i] = w
		total += w
	}
	denom := total + epsilon*float64(len(actions))
	for i := range weights {
		weights[i] = (weights[i] + epsilon) / denom
	}
	return weights
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
