package searcher

// tableEntry caches a search result for one Zobrist key. Entries are trusted
// on key equality alone: colliding positions are never compared against the
// actual board, so a collision can surface a stale score. With 64-bit keys
// the odds are negligible for bounded boards.
type tableEntry struct {
	key   uint64
	score int
	depth int
	gen   uint32
	valid bool
}

// transpositionTable is a bounded, power-of-two-sized cache from Zobrist key
// to evaluated score. It persists across moves within one engine instance;
// generation-based replacement keeps memory flat where the naive unbounded
// map would grow for the whole game.
type transpositionTable struct {
	mask    uint64
	entries []tableEntry
	gen     uint32
	hits    uint64
	probes  uint64
}

func newTranspositionTable(capacity uint64) *transpositionTable {
	if capacity < 2 {
		capacity = 2
	}
	capacity = nextPowerOfTwo(capacity)
	return &transpositionTable{
		mask:    capacity - 1,
		entries: make([]tableEntry, capacity),
		gen:     1,
	}
}

// nextGeneration marks the start of a new top-level search. Entries from
// older generations become eviction candidates.
func (t *transpositionTable) nextGeneration() {
	t.gen++
	if t.gen == 0 {
		t.gen = 1
	}
}

// probe returns a cached score for key, but only when the stored entry was
// computed at the requested depth or deeper. A shallower entry is never a
// safe substitute.
func (t *transpositionTable) probe(key uint64, depth int) (int, bool) {
	t.probes++
	entry := &t.entries[key&t.mask]
	if entry.valid && entry.key == key && entry.depth >= depth {
		entry.gen = t.gen
		t.hits++
		return entry.score, true
	}
	return 0, false
}

// store writes a result, replacing the slot occupant when it is from an
// older generation or holds a shallower result.
func (t *transpositionTable) store(key uint64, depth, score int) {
	entry := &t.entries[key&t.mask]
	if entry.valid && entry.gen == t.gen && entry.key != key && entry.depth > depth {
		return
	}
	*entry = tableEntry{key: key, score: score, depth: depth, gen: t.gen, valid: true}
}

func (t *transpositionTable) hitRate() float64 {
	if t.probes == 0 {
		return 0
	}
	return float64(t.hits) / float64(t.probes)
}

func nextPowerOfTwo(v uint64) uint64 {
	if v&(v-1) == 0 {
		return v
	}
	p := uint64(1)
	for p < v {
		p <<= 1
	}
	return p
}
