package engine

import (
	"gomoku/agent"
	"gomoku/experiments/metrics"
	"gomoku/game"

	"github.com/rs/zerolog/log"
)

const defaultMaxTurns = 500

// Engine drives a local game between two agents: the first agent plays
// PlayerOne, the second PlayerTwo.
type Engine struct {
	state    game.State
	agents   [2]agent.Agent
	maxTurns int
}

func Local(first, second agent.Agent, state game.State) *Engine {
	if first == nil || second == nil {
		panic("both agents are required")
	}
	return &Engine{
		state:    state,
		agents:   [2]agent.Agent{first, second},
		maxTurns: defaultMaxTurns,
	}
}

// Run executes the game loop until a terminal position or the turn cap and
// returns the winner plus one record per move played.
func (e *Engine) Run() (game.PlayerID, []metrics.MoveRecord) {
	records := make([]metrics.MoveRecord, 0, e.maxTurns)

	log.Info().Msgf("player %d is starting", e.state.Player())

	for turn := 1; !e.state.IsTerminal() && turn <= e.maxTurns; turn++ {
		player := e.state.Player()
		current := e.agents[0]
		if player == game.PlayerTwo {
			current = e.agents[1]
		}

		move, metric, ok := current.FindMove(e.state)
		if !ok {
			log.Warn().Msgf("player %d has no legal move on turn %d, stopping", player, turn)
			break
		}
		e.state.Step(move)

		log.Debug().
			Int("turn", turn).
			Int("player", int(player)).
			Int("row", move.Row).
			Int("col", move.Col).
			Uint64("hash", e.state.Hash()).
			Dur("took", metric.Duration).
			Msg("move played")

		records = append(records, metrics.MoveRecord{
			Turn:         turn,
			Player:       player,
			Move:         move,
			SearchMetric: metric,
		})
	}

	winner := e.state.Winner()
	log.Info().Msgf("game over after %d moves, winner: %d", len(records), winner)
	return winner, records
}
