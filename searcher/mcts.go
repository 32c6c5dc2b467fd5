package searcher

import (
	"time"

	"gomoku/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// MCTS runs PUCT-guided Monte Carlo tree search. The tree is built fresh for
// every FindMove call and discarded with the episode; the only state an
// engine keeps across calls is its RNG.
type MCTS struct {
	budget       int
	duration     time.Duration
	rolloutLimit int
	exploration  float64
	rng          *rand.Rand
	metrics      Collector
}

type MCTSOption func(m *MCTS)

func WithBudget(budget int) MCTSOption {
	return func(m *MCTS) {
		if budget > 0 {
			m.budget = budget
		}
	}
}

func WithDuration(duration time.Duration) MCTSOption {
	return func(m *MCTS) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

func WithRolloutLimit(plies int) MCTSOption {
	return func(m *MCTS) {
		if plies > 0 {
			m.rolloutLimit = plies
		}
	}
}

func WithExploration(c float64) MCTSOption {
	return func(m *MCTS) {
		if c > 0 {
			m.exploration = c
		}
	}
}

func WithSeed(seed uint64) MCTSOption {
	return func(m *MCTS) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

func WithMCTSMetrics(c Collector) MCTSOption {
	return func(m *MCTS) {
		if c != nil {
			m.metrics = c
		}
	}
}

func NewMCTS(options ...MCTSOption) *MCTS {
	m := &MCTS{ // Default values
		budget:       2000,
		duration:     2 * time.Second,
		rolloutLimit: 30,
		exploration:  1.4,
		rng:          rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		metrics:      NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// FindMove picks an action for the side to move. ok is false only when the
// position is terminal or no legal action exists.
func (m *MCTS) FindMove(state game.State) (game.Cell, SearchMetric, bool) {
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

	t, root := m.search(state, player)

	rootNode := &t.nodes[root]
	if len(rootNode.children) == 0 {
		// Budget exhausted before a single expansion
		log.Warn().Msgf("mcts: no expansions within budget, picking a random move among %d actions", len(actions))
		return actions[m.rng.Intn(len(actions))], m.metrics.Complete(), true
	}

	// Most-visited child, not best win rate: visit count is the robust pick.
	best := rootNode.children[0]
	for _, child := range rootNode.children[1:] {
		if t.nodes[child].visits > t.nodes[best].visits {
			best = child
		}
	}
	return t.nodes[best].action, m.metrics.Complete(), true
}

// search builds one episode's tree under the time and simulation budget.
func (m *MCTS) search(state game.State, player game.PlayerID) (*tree, int32) {
	t := &tree{nodes: make([]node, 0, m.budget+1)}
	root := t.add(state.Clone(), game.Cell{}, noParent, 1.0)

	deadline := time.Now().Add(m.duration)
	for episodes := 0; episodes < m.budget && time.Now().Before(deadline); episodes++ {
		leaf := t.selectPath(root, m.exploration)
		if n := &t.nodes[leaf]; !n.terminal && len(n.untried) > 0 {
			leaf = t.expand(leaf)
		}
		result := m.rollout(t.nodes[leaf].state, player)
		t.backpropagate(leaf, result)
		m.metrics.AddEpisode()
	}
	return t, root
}

// rollout plays out from state up to the ply limit, sampling each move from
// the heuristic weight distribution, and scores the outcome from the root
// player's perspective: 1 win, 0.5 draw or cutoff, 0 loss.
func (m *MCTS) rollout(state game.State, rootPlayer game.PlayerID) float64 {
	s := state.Clone()
	for ply := 0; ply < m.rolloutLimit && !s.IsTerminal(); ply++ {
		actions := s.ValidActions()
		if len(actions) == 0 {
			break
		}
		s.Step(m.sample(s, actions))
	}
	if s.IsTerminal() {
		m.metrics.AddFullPlayout()
	}
	switch s.Winner() {
	case rootPlayer:
		return 1.0
	case game.NoPlayer:
		return 0.5
	default:
		return 0.0
	}
}

// sample draws one action from the smoothed heuristic distribution.
func (m *MCTS) sample(state game.State, actions []game.Cell) game.Cell {
	weights := actionWeights(state.Board(), actions, state.Player())
	target := m.rng.Float64()
	acc := 0.0
	for i, w := range weights {
		acc += w
		if target < acc {
			return actions[i]
		}
	}
	return actions[len(actions)-1]
}
