package main

import (
	"flag"
	"os"
	"time"

	"gomoku/engine"
	"gomoku/experiments"
	"gomoku/experiments/metrics"
	"gomoku/game"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	size := flag.Int("size", 15, "Board size")
	winLength := flag.Int("win", game.DefaultWinLength, "Stones in a row needed to win")
	games := flag.Int("games", 10, "Games per matchup")
	depth := flag.Int("depth", 3, "Minimax search depth")
	budget := flag.Int("budget", 2000, "MCTS simulation budget")
	timeout := flag.Duration("timeout", 500*time.Millisecond, "Per-move time budget")
	experiment := flag.String("experiment", "", "Run an experiment suite: comparison or budget")
	verbose := flag.Bool("v", false, "Enable debug logging")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	settings := experiments.Settings{
		BoardSize:    *size,
		WinLength:    *winLength,
		GamesPerPair: *games,
	}

	switch *experiment {
	case "comparison":
		experiments.RunEngineComparison(settings)
	case "budget":
		experiments.RunBudgetExperiment(settings)
	case "":
		runMatch(settings, *depth, *budget, *timeout)
	default:
		log.Fatal().Msgf("unknown experiment %q", *experiment)
	}
}

// runMatch plays a single minimax-vs-MCTS game and logs the result.
func runMatch(settings experiments.Settings, depth, budget int, timeout time.Duration) {
	minimax := experiments.BuildAgent(metrics.AgentConfig{Kind: "minimax", Depth: depth, Timeout: timeout})
	mcts := experiments.BuildAgent(metrics.AgentConfig{Kind: "mcts", Budget: budget, Timeout: timeout})

	state := game.NewLineGame(settings.BoardSize, settings.WinLength)
	winner, moves := engine.Local(minimax, mcts, state).Run()

	switch winner {
	case game.PlayerOne:
		log.Info().Msgf("minimax wins in %d moves", len(moves))
	case game.PlayerTwo:
		log.Info().Msgf("mcts wins in %d moves", len(moves))
	default:
		log.Info().Msgf("draw after %d moves", len(moves))
	}
}
