package metrics

import (
	"time"

	"gomoku/game"
	"gomoku/searcher"
)

// AgentConfig describes one engine configuration under comparison.
type AgentConfig struct {
	ID      int
	Kind    string // "minimax", "mcts" or "random"
	Depth   int    // minimax
	Budget  int    // mcts
	Timeout time.Duration
}

// GameRecord summarizes one finished game between two configured agents.
type GameRecord struct {
	ID        int
	Agent1    int // AgentConfig.ID
	Agent2    int // AgentConfig.ID
	Winner    game.PlayerID
	Moves     int
	StartTime time.Time
	Duration  time.Duration
}

// MoveRecord captures one move and the search statistics behind it.
type MoveRecord struct {
	Game   int // GameRecord.ID
	Turn   int
	Player game.PlayerID
	Move   game.Cell
	searcher.SearchMetric
}
