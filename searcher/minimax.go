package searcher

import (
	"sort"
	"time"

	"gomoku/game"

	"github.com/rs/zerolog/log"
)

const infinity = 1 << 30

// Minimax is an iterative-deepening alpha-beta engine. The Zobrist table and
// transposition table live as long as the engine instance, so repeated
// sub-positions across moves of one game are amortized.
type Minimax struct {
	maxDepth  int
	timeout   time.Duration
	tableSize uint64
	metrics   Collector

	zobrist  *zobristTable
	table    *transpositionTable
	deadline time.Time
}

type MinimaxOption func(m *Minimax)

func WithMaxDepth(depth int) MinimaxOption {
	return func(m *Minimax) {
		if depth > 0 {
			m.maxDepth = depth
		}
	}
}

func WithTimeout(timeout time.Duration) MinimaxOption {
	return func(m *Minimax) {
		if timeout > 0 {
			m.timeout = timeout
		}
	}
}

func WithTableSize(size uint64) MinimaxOption {
	return func(m *Minimax) {
		if size > 0 {
			m.tableSize = size
		}
	}
}

func WithMinimaxMetrics(c Collector) MinimaxOption {
	return func(m *Minimax) {
		if c != nil {
			m.metrics = c
		}
	}
}

func NewMinimax(options ...MinimaxOption) *Minimax {
	m := &Minimax{ // Default values
		maxDepth:  4,
		timeout:   2 * time.Second,
		tableSize: 1 << 20,
		metrics:   NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	m.table = newTranspositionTable(m.tableSize)
	return m
}

// FindMove picks an action for the side to move. ok is false only when the
// position is terminal or no legal action exists; the caller treats that as
// a pass, never an error.
func (m *Minimax) FindMove(state game.State) (game.Cell, SearchMetric, bool) {
	m.metrics.Start()
	if state.IsTerminal() {
		return game.Cell{}, m.metrics.Complete(), false
	}
	actions := state.ValidActions()
	if len(actions) == 0 {
		return game.Cell{}, m.metrics.Complete(), false
	}

	player := state.Player()
	if move, ok := findCriticalMove(state, player); ok {
		m.metrics.SetCritical(true)
		return move, m.metrics.Complete(), true
	}

	board := state.Board()
	if m.zobrist == nil || m.zobrist.size != board.Size() {
		m.zobrist = newZobristTable(board.Size())
	}
	m.table.nextGeneration()
	m.deadline = time.Now().Add(m.timeout)

	ordered := orderMoves(board, actions, player)
	best := ordered[0]
	completedDepth := 0
	for depth := 1; depth <= m.maxDepth; depth++ {
		move, score, completed := m.searchRoot(state, ordered, depth, player)
		// A depth interrupted by the timeout is discarded in favor of the
		// deepest completed one, except depth 1 which always contributes at
		// least its first evaluated move.
		if completed || depth == 1 {
			best = move
			completedDepth = depth
			m.metrics.SetDepth(depth)
		}
		if !completed {
			log.Warn().Msgf("minimax: timeout at depth %d, answering from depth %d", depth, completedDepth)
			break
		}
		if score >= Five { // Forced win found, no point deepening
			break
		}
	}
	m.metrics.SetTableHitRate(m.table.hitRate())
	return best, m.metrics.Complete(), true
}

// searchRoot runs one alpha-beta pass at a fixed depth over pre-ordered root
// moves. completed is false when the deadline fired before every root move
// was examined.
func (m *Minimax) searchRoot(state game.State, moves []game.Cell, depth int, player game.PlayerID) (game.Cell, int, bool) {
	alpha, beta := -infinity, infinity
	bestScore := -infinity
	bestMove := moves[0]
	for i, move := range moves {
		if i > 0 && m.expired() {
			return bestMove, bestScore, false
		}
		next := state.Clone()
		next.Step(move)
		score := m.minimax(next, depth-1, false, alpha, beta, player)
		if score > bestScore {
			bestScore = score
			bestMove = move
		}
		if bestScore > alpha {
			alpha = bestScore
		}
	}
	return bestMove, bestScore, true
}

func (m *Minimax) minimax(state game.State, depth int, maximizing bool, alpha, beta int, player game.PlayerID) int {
	if m.expired() || depth == 0 || state.IsTerminal() {
		return m.evaluate(state, player)
	}
	actions := state.ValidActions()
	if len(actions) == 0 { // Treated as terminal-like
		return m.evaluate(state, player)
	}

	key := m.zobrist.hash(state.Board())
	if score, ok := m.table.probe(key, depth); ok {
		return score
	}

	moves := orderMoves(state.Board(), actions, state.Player())
	var best int
	if maximizing {
		best = -infinity
		for _, move := range moves {
			next := state.Clone()
			next.Step(move)
			score := m.minimax(next, depth-1, false, alpha, beta, player)
			if score > best {
				best = score
			}
			if best > alpha {
				alpha = best
			}
			if beta <= alpha {
				break
			}
		}
	} else {
		best = infinity
		for _, move := range moves {
			next := state.Clone()
			next.Step(move)
			score := m.minimax(next, depth-1, true, alpha, beta, player)
			if score < best {
				best = score
			}
			if best < beta {
				beta = best
			}
			if beta <= alpha {
				break
			}
		}
	}

	m.table.store(key, depth, best)
	return best
}

// evaluate statically scores a position from player's perspective.
func (m *Minimax) evaluate(state game.State, player game.PlayerID) int {
	if state.IsTerminal() {
		switch state.Winner() {
		case player:
			return Five
		case game.NoPlayer:
			return 0
		default:
			return -Five
		}
	}
	board := state.Board()
	return EvaluatePosition(board, player) - EvaluatePosition(board, player.Opponent())
}

func (m *Minimax) expired() bool {
	return !time.Now().Before(m.deadline)
}

// orderMoves sorts actions by descending one-ply heuristic value. The sort is
// stable so equal moves keep board-scan order and the search stays
// deterministic for a fixed position.
func orderMoves(b *game.Board, actions []game.Cell, p game.PlayerID) []game.Cell {
	type scored struct {
		move  game.Cell
		value int
	}
	moves := make([]scored, len(actions))
	for i, a := range actions {
		moves[i] = scored{move: a, value: moveHeuristic(b, a, p)}
	}
	sort.SliceStable(moves, func(i, j int) bool {
		return moves[i].value > moves[j].value
	})
	ordered := make([]game.Cell, len(moves))
	for i, s := range moves {
		ordered[i] = s.move
	}
	return ordered
}
