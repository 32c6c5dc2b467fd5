package game

import "github.com/OneOfOne/xxhash"

// DefaultWinLength is the classic five-in-a-row win condition.
const DefaultWinLength = 5

// LineGame is a two-player line-forming game on a square board: players
// alternate placing stones on empty cells and the first to align winLength
// of their own stones horizontally, vertically or diagonally wins. A full
// board with no winner is a draw.
type LineGame struct {
	board     *Board
	toMove    PlayerID
	winner    PlayerID
	winLength int
	placed    int
}

func NewLineGame(size, winLength int) *LineGame {
	if winLength < 2 || winLength > size {
		panic("win length must be between 2 and the board size")
	}
	return &LineGame{
		board:     NewBoard(size),
		toMove:    PlayerOne,
		winLength: winLength,
	}
}

// NewLineGameFromBoard resumes play from an arbitrary position, recounting
// placed stones and detecting an already-completed line.
func NewLineGameFromBoard(board *Board, toMove PlayerID, winLength int) *LineGame {
	if winLength < 2 || winLength > board.Size() {
		panic("win length must be between 2 and the board size")
	}
	g := &LineGame{
		board:     board.Clone(),
		toMove:    toMove,
		winLength: winLength,
	}
	size := board.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			p := g.board.At(row, col)
			if p == NoPlayer {
				continue
			}
			g.placed++
			if g.winner == NoPlayer && g.lineFrom(row, col, p) {
				g.winner = p
			}
		}
	}
	return g
}

func (g *LineGame) Clone() State {
	clone := *g
	clone.board = g.board.Clone()
	return &clone
}

func (g *LineGame) Step(c Cell) {
	g.board.Set(c.Row, c.Col, g.toMove)
	g.placed++
	if g.lineThrough(c, g.toMove) {
		g.winner = g.toMove
	}
	g.toMove = g.toMove.Opponent()
}

func (g *LineGame) ValidActions() []Cell {
	if g.IsTerminal() {
		return nil
	}
	size := g.board.Size()
	actions := make([]Cell, 0, size*size-g.placed)
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if g.board.At(row, col) == NoPlayer {
				actions = append(actions, Cell{Row: row, Col: col})
			}
		}
	}
	return actions
}

func (g *LineGame) IsTerminal() bool {
	return g.winner != NoPlayer || g.placed == g.board.size*g.board.size
}

func (g *LineGame) Winner() PlayerID {
	return g.winner
}

func (g *LineGame) Player() PlayerID {
	return g.toMove
}

func (g *LineGame) Board() *Board {
	return g.board
}

func (g *LineGame) Hash() uint64 {
	return xxhash.Checksum64S(g.board.Cells(), uint64(g.toMove))
}

var lineDirections = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// lineThrough reports whether the stone just placed at c completes a run of
// winLength stones for p in any direction.
func (g *LineGame) lineThrough(c Cell, p PlayerID) bool {
	size := g.board.Size()
	for _, d := range lineDirections {
		run := 1
		for _, sign := range [2]int{1, -1} {
			row, col := c.Row+sign*d[0], c.Col+sign*d[1]
			for row >= 0 && row < size && col >= 0 && col < size && g.board.At(row, col) == p {
				run++
				row += sign * d[0]
				col += sign * d[1]
			}
		}
		if run >= g.winLength {
			return true
		}
	}
	return false
}

// lineFrom reports whether a run of winLength stones for p starts at the
// given cell in any forward direction.
func (g *LineGame) lineFrom(row, col int, p PlayerID) bool {
	size := g.board.Size()
	for _, d := range lineDirections {
		run := 0
		r, c := row, col
		for r >= 0 && r < size && c >= 0 && c < size && g.board.At(r, c) == p {
			run++
			if run >= g.winLength {
				return true
			}
			r += d[0]
			c += d[1]
		}
	}
	return false
}
