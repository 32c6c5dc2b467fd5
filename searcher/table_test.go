package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTranspositionTable(t *testing.T) {
	t.Run("probe misses an empty table", func(t *testing.T) {
		tt := newTranspositionTable(64)

		_, ok := tt.probe(42, 1)
		require.False(t, ok)
	})

	t.Run("stored score is returned for equal or shallower requests", func(t *testing.T) {
		tt := newTranspositionTable(64)
		tt.store(42, 3, 1500)

		score, ok := tt.probe(42, 3)
		require.True(t, ok)
		require.Equal(t, 1500, score)

		score, ok = tt.probe(42, 2)
		require.True(t, ok)
		require.Equal(t, 1500, score)
	})

	t.Run("a shallower entry never satisfies a deeper request", func(t *testing.T) {
		tt := newTranspositionTable(64)
		tt.store(42, 2, 1500)

		_, ok := tt.probe(42, 3)
		require.False(t, ok)
	})

	t.Run("capacity stays bounded", func(t *testing.T) {
		tt := newTranspositionTable(8)
		for key := uint64(0); key < 10000; key++ {
			tt.store(key, 1, int(key))
		}

		require.Len(t, tt.entries, 8)
	})

	t.Run("new generation entries displace old ones on collision", func(t *testing.T) {
		tt := newTranspositionTable(8)
		tt.store(1, 5, 100)
		tt.nextGeneration()
		tt.store(9, 1, 200) // Same slot as key 1, shallower but newer

		score, ok := tt.probe(9, 1)
		require.True(t, ok)
		require.Equal(t, 200, score)
		_, ok = tt.probe(1, 1)
		require.False(t, ok)
	})

	t.Run("within a generation deeper results are kept", func(t *testing.T) {
		tt := newTranspositionTable(8)
		tt.store(1, 5, 100)
		tt.store(9, 1, 200) // Same slot, same generation, shallower

		score, ok := tt.probe(1, 5)
		require.True(t, ok)
		require.Equal(t, 100, score)
	})
}
