package searcher

import "gomoku/game"

// findCriticalMove is the depth-1 tactical shortcut run before any deeper
// search: it returns an immediately winning move if one exists, otherwise
// the single move that blocks the opponent's immediate win. This guarantees
// an engine never misses a one-move win or loss, however tight its budget.
func findCriticalMove(state game.State, player game.PlayerID) (game.Cell, bool) {
	actions := state.ValidActions()

	for _, a := range actions {
		next := state.Clone()
		next.Step(a)
		if next.Winner() == player {
			return a, true
		}
	}

	// Simulate the opponent occupying each candidate cell through the state
	// contract itself, so any win condition the game implements is honored.
	// Passing the turn is arranged by playing an arbitrary other cell first;
	// that filler stone belongs to us, so it can never sit on the opponent's
	// prospective winning line through the candidate.
	if len(actions) < 2 {
		return game.Cell{}, false
	}
	opp := player.Opponent()
	for _, a := range actions {
		filler := actions[0]
		if filler == a {
			filler = actions[1]
		}
		next := state.Clone()
		next.Step(filler)
		if next.IsTerminal() {
			continue
		}
		next.Step(a)
		if next.Winner() == opp {
			return a, true
		}
	}

	return game.Cell{}, false
}
