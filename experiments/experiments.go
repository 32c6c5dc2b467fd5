package experiments

import (
	"fmt"
	"time"

	"gomoku/agent"
	"gomoku/engine"
	"gomoku/experiments/metrics"
	"gomoku/game"
	"gomoku/searcher"

	"github.com/rs/zerolog/log"
)

// Settings controls one experiment run.
type Settings struct {
	BoardSize    int
	WinLength    int
	GamesPerPair int
}

func DefaultSettings() Settings {
	return Settings{
		BoardSize:    15,
		WinLength:    game.DefaultWinLength,
		GamesPerPair: 10,
	}
}

// RunEngineComparison pits minimax configurations against MCTS configurations
// and writes game and move records as CSV.
func RunEngineComparison(settings Settings) {
	timeBudget := 500 * time.Millisecond
	configs := []metrics.AgentConfig{
		{ID: 1, Kind: "minimax", Depth: 2, Timeout: timeBudget},
		{ID: 2, Kind: "minimax", Depth: 3, Timeout: timeBudget},
		{ID: 3, Kind: "mcts", Budget: 500, Timeout: timeBudget},
		{ID: 4, Kind: "mcts", Budget: 2000, Timeout: timeBudget},
	}

	matchUps := [][]metrics.AgentConfig{}
	for _, minimaxConfig := range configs[:2] {
		for _, mctsConfig := range configs[2:] {
			matchUps = append(matchUps, []metrics.AgentConfig{minimaxConfig, mctsConfig})
		}
	}

	runExperiment("engine_comparison", settings, configs, matchUps)
}

// RunBudgetExperiment measures how MCTS strength scales with its simulation
// budget against a fixed minimax baseline.
func RunBudgetExperiment(settings Settings) {
	timeBudget := 500 * time.Millisecond
	baseline := metrics.AgentConfig{ID: 0, Kind: "minimax", Depth: 2, Timeout: timeBudget}
	budgetConfigs := []metrics.AgentConfig{
		{ID: 1, Kind: "mcts", Budget: 100, Timeout: timeBudget},
		{ID: 2, Kind: "mcts", Budget: 500, Timeout: timeBudget},
		{ID: 3, Kind: "mcts", Budget: 2000, Timeout: timeBudget},
		{ID: 4, Kind: "mcts", Budget: 8000, Timeout: timeBudget},
	}

	matchUps := [][]metrics.AgentConfig{}
	for _, config := range budgetConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}

	runExperiment("budget", settings, append(budgetConfigs, baseline), matchUps)
}

func runExperiment(name string, settings Settings, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < settings.GamesPerPair; i++ {
			winner, record, moves := runGame(settings, config1, config2)
			count++
			record.ID = count
			gameRecords = append(gameRecords, record)
			for _, move := range moves {
				move.Game = count
				moveRecords = append(moveRecords, move)
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %d", mi+1, len(matchUps), i+1, winner)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(name)
	if err != nil {
		panic(fmt.Sprintf("failed to create experiment writer: %v", err))
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		panic(fmt.Sprintf("failed to store agent configs: %v", err))
	}

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to write game records: %v", err))
	}

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to write move records: %v", err))
	}
	log.Info().Msg("stored experiment records")
}

func runGame(settings Settings, config1, config2 metrics.AgentConfig) (game.PlayerID, metrics.GameRecord, []metrics.MoveRecord) {
	start := time.Now()
	state := game.NewLineGame(settings.BoardSize, settings.WinLength)
	e := engine.Local(buildAgent(config1), buildAgent(config2), state)
	winner, moves := e.Run()

	record := metrics.GameRecord{
		Agent1:    config1.ID,
		Agent2:    config2.ID,
		Winner:    winner,
		Moves:     len(moves),
		StartTime: start,
		Duration:  time.Since(start),
	}
	return winner, record, moves
}

// BuildAgent constructs an agent from its experiment configuration.
func BuildAgent(config metrics.AgentConfig) agent.Agent {
	return buildAgent(config)
}

func buildAgent(config metrics.AgentConfig) agent.Agent {
	switch config.Kind {
	case "minimax":
		return agent.NewSearchAgent(searcher.NewMinimax(
			searcher.WithMaxDepth(config.Depth),
			searcher.WithTimeout(config.Timeout),
			searcher.WithMinimaxMetrics(searcher.NewCollector()),
		))
	case "mcts":
		return agent.NewSearchAgent(searcher.NewMCTS(
			searcher.WithBudget(config.Budget),
			searcher.WithDuration(config.Timeout),
			searcher.WithMCTSMetrics(searcher.NewCollector()),
		))
	case "random":
		return agent.NewRandomAgent(uint64(time.Now().UnixNano()))
	default:
		panic(fmt.Sprintf("unknown agent kind %q", config.Kind))
	}
}
