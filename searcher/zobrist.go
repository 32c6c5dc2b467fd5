package searcher

import (
	"gomoku/game"

	"golang.org/x/exp/rand"
)

// zobristSeed fixes the table contents so identical boards hash identically
// across runs and engine instances of the same board size.
const zobristSeed = 0x9e3779b97f4a7c15

// zobristTable holds one independent 64-bit key per (cell, player) pair.
// XOR-ing the keys of all occupied cells fingerprints a position; the empty
// board hashes to zero.
type zobristTable struct {
	size int
	keys []uint64
}

func newZobristTable(size int) *zobristTable {
	rng := rand.New(rand.NewSource(zobristSeed ^ uint64(size)))
	keys := make([]uint64, size*size*2)
	for i := range keys {
		keys[i] = rng.Uint64()
	}
	return &zobristTable{size: size, keys: keys}
}

func (z *zobristTable) key(row, col int, p game.PlayerID) uint64 {
	idx := (row*z.size + col) * 2
	if p == game.PlayerTwo {
		idx++
	}
	return z.keys[idx]
}

func (z *zobristTable) hash(b *game.Board) uint64 {
	var h uint64
	for row := 0; row < z.size; row++ {
		for col := 0; col < z.size; col++ {
			if p := b.At(row, col); p != game.NoPlayer {
				h ^= z.key(row, col, p)
			}
		}
	}
	return h
}
