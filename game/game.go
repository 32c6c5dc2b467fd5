package game

// Cell identifies one board intersection. It doubles as the action type:
// playing a Cell places the side-to-move's stone there.
type Cell struct {
	Row int
	Col int
}

// PlayerID identifies a side. The zero value means "no player" and is also
// used for empty board cells and drawn games.
type PlayerID uint8

const (
	NoPlayer PlayerID = iota
	PlayerOne
	PlayerTwo
)

func (p PlayerID) Opponent() PlayerID {
	switch p {
	case PlayerOne:
		return PlayerTwo
	case PlayerTwo:
		return PlayerOne
	}
	return NoPlayer
}

// State is the contract every searchable game implements. Search engines
// only ever mutate clones: Step on a clone must never affect the original.
type State interface {
	// Clone returns a deep, independent copy.
	Clone() State
	// Step applies an action in place. The action is assumed legal; engines
	// only pass actions obtained from ValidActions.
	Step(Cell)
	// ValidActions lists every legal action. Non-empty unless terminal.
	ValidActions() []Cell
	IsTerminal() bool
	// Winner reports the winning player, or NoPlayer for an undecided or
	// drawn position.
	Winner() PlayerID
	// Player reports the side to move.
	Player() PlayerID
	// Board exposes the position read-only. Engines must not write to it.
	Board() *Board
	// Hash is a position fingerprint for game-loop bookkeeping. It is not
	// the search-internal Zobrist hash.
	Hash() uint64
}
