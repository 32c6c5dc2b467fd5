package game

// Board is a square grid of stones backed by a flat slice, so cloning is a
// single copy and cells never allocate individually.
type Board struct {
	size  int
	cells []uint8
}

func NewBoard(size int) *Board {
	if size < 1 {
		panic("board size must be positive")
	}
	return &Board{size: size, cells: make([]uint8, size*size)}
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) At(row, col int) PlayerID {
	return PlayerID(b.cells[row*b.size+col])
}

func (b *Board) Set(row, col int, p PlayerID) {
	b.cells[row*b.size+col] = uint8(p)
}

func (b *Board) Clone() *Board {
	cells := make([]uint8, len(b.cells))
	copy(cells, b.cells)
	return &Board{size: b.size, cells: cells}
}

func (b *Board) Full() bool {
	for _, c := range b.cells {
		if c == uint8(NoPlayer) {
			return false
		}
	}
	return true
}

// Cells exposes the raw storage for fingerprinting. Callers must not write
// through it.
func (b *Board) Cells() []uint8 {
	return b.cells
}
