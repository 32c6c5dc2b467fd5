package agent

import (
	"gomoku/game"
	"gomoku/searcher"

	"golang.org/x/exp/rand"
)

// Agent picks a move for the side to move. ok is false when no legal action
// exists; callers treat that as a pass, never a crash.
type Agent interface {
	FindMove(state game.State) (game.Cell, searcher.SearchMetric, bool)
}

// Searcher is the engine surface both the minimax and MCTS engines satisfy.
type Searcher interface {
	FindMove(state game.State) (game.Cell, searcher.SearchMetric, bool)
}

type searchAgent struct {
	engine Searcher
}

// NewSearchAgent wraps a search engine as a playable agent.
func NewSearchAgent(engine Searcher) Agent {
	return searchAgent{engine: engine}
}

func (a searchAgent) FindMove(state game.State) (game.Cell, searcher.SearchMetric, bool) {
	return a.engine.FindMove(state)
}

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent plays uniformly random legal moves, as a baseline opponent.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(state game.State) (game.Cell, searcher.SearchMetric, bool) {
	actions := state.ValidActions()
	if len(actions) == 0 {
		return game.Cell{}, searcher.SearchMetric{}, false
	}
	return actions[a.rng.Intn(len(actions))], searcher.SearchMetric{}, true
}
