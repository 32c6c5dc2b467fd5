package searcher

import (
	"math"

	"gomoku/game"
)

const noParent = -1

// node is one MCTS tree node. Nodes live in a tree-owned arena and refer to
// each other by index, so the whole episode's tree is dropped in one go and
// no parent/child pointer cycles exist. Each node exclusively owns its state
// clone; transpositionally identical branches stay distinct nodes.
type node struct {
	state    game.State
	action   game.Cell // move that reached this node from its parent
	parent   int32
	children []int32
	untried  []game.Cell
	visits   int
	wins     float64
	prior    float64
	terminal bool
}

// update folds one simulation result into the node's statistics during
// backpropagation. Nothing else ever mutates a node after expansion.
func (n *node) update(result float64) {
	n.visits++
	n.wins += result
}

// puct is the selection value: exploitation (mean win rate) plus an
// exploration term scaled by the node's prior and the parent's visit count.
func (n *node) puct(parentVisits int, c float64) float64 {
	q := 0.0
	if n.visits > 0 {
		q = n.wins / float64(n.visits)
	}
	return q + c*n.prior*math.Sqrt(float64(parentVisits))/float64(1+n.visits)
}

// tree is a per-episode arena of nodes.
type tree struct {
	nodes []node
}

func (t *tree) add(state game.State, action game.Cell, parent int32, prior float64) int32 {
	idx := int32(len(t.nodes))
	t.nodes = append(t.nodes, node{
		state:    state,
		action:   action,
		parent:   parent,
		untried:  state.ValidActions(),
		prior:    prior,
		terminal: state.IsTerminal(),
	})
	return idx
}

// selectPath descends from idx while the node is non-terminal and fully
// expanded, following the maximum-PUCT child at each level.
func (t *tree) selectPath(idx int32, c float64) int32 {
	for {
		n := &t.nodes[idx]
		if n.terminal || len(n.untried) > 0 || len(n.children) == 0 {
			return idx
		}
		best := n.children[0]
		bestValue := math.Inf(-1)
		for _, child := range n.children {
			if value := t.nodes[child].puct(n.visits, c); value > bestValue {
				bestValue = value
				best = child
			}
		}
		idx = best
	}
}

// expand grows one child from the highest-prior untried action. Priors are
// the smoothed heuristic weights over the remaining untried actions; biasing
// growth toward the heuristic's favorite is deliberate.
func (t *tree) expand(idx int32) int32 {
	n := &t.nodes[idx]
	weights := actionWeights(n.state.Board(), n.untried, n.state.Player())
	best := 0
	for i, w := range weights {
		if w > weights[best] {
			best = i
		}
	}
	action := n.untried[best]
	prior := weights[best]
	n.untried = append(n.untried[:best], n.untried[best+1:]...)

	childState := n.state.Clone()
	childState.Step(action)
	child := t.add(childState, action, idx, prior)
	t.nodes[idx].children = append(t.nodes[idx].children, child)
	return child
}

// backpropagate walks to the root, folding the result into every node on the
// path and flipping it each level for the alternating perspective.
func (t *tree) backpropagate(idx int32, result float64) {
	for idx != noParent {
		n := &t.nodes[idx]
		n.update(result)
		result = 1 - result
		idx = n.parent
	}
}
