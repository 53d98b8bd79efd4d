package mino

import "math/rand"

// Generator is the polymorphic supply of upcoming tiles. Returning
// nil signals exhaustion: the playground propagates the sentinel
// through its preview queue and terminates once it reaches the spawn
// head. Generators are exclusively owned by the playground consuming
// them.
type Generator interface {
	Generate() *Tile
}

// BagGenerator deals a fixed working set of tiles as consecutive
// uniformly random permutations: every tile of the set appears
// exactly once per period of N draws. Given the same seed and
// working set it always yields the same sequence.
type BagGenerator struct {
	series []*Tile
	cursor int
	rng    *rand.Rand
}

// NewBagGenerator creates a bag generator over the given working set,
// shuffled with the given seed.
func NewBagGenerator(tiles []*Tile, seed int64) *BagGenerator {
	if len(tiles) == 0 {
		panic("mino: bag generator needs a non-empty working set")
	}
	g := &BagGenerator{
		series: append([]*Tile(nil), tiles...),
		rng:    rand.New(rand.NewSource(seed)),
	}
	g.shuffle()
	return g
}

func (g *BagGenerator) shuffle() {
	g.rng.Shuffle(len(g.series), func(i, j int) {
		g.series[i], g.series[j] = g.series[j], g.series[i]
	})
}

// Generate returns the next tile of the current permutation,
// reshuffling the working set in place when it runs out.
func (g *BagGenerator) Generate() *Tile {
	result := g.series[g.cursor]
	g.cursor++
	if g.cursor >= len(g.series) {
		g.cursor = 0
		g.shuffle()
	}
	return result
}

// HistoryGenerator samples uniformly from its working set while
// biasing against tiles still present in a bounded history window:
// a sample already in the window is redrawn up to a fixed retry
// budget, after which the last sample is accepted regardless. This
// thins out short-interval repeats without guaranteeing exclusion.
//
// Occurrences are counted by working-set index, not by shape: two
// entries referring to the same shape are tracked independently.
type HistoryGenerator struct {
	tiles   []*Tile
	counts  []int
	history []int
	retries int
	rng     *rand.Rand
}

// NewHistoryGenerator creates a history-biased generator. The history
// slice seeds the window and fixes its size; entries outside the
// working set's index range occupy a slot without biasing any tile.
func NewHistoryGenerator(tiles []*Tile, retries int, history []int, seed int64) *HistoryGenerator {
	if len(tiles) == 0 {
		panic("mino: history generator needs a non-empty working set")
	}
	g := &HistoryGenerator{
		tiles:   append([]*Tile(nil), tiles...),
		counts:  make([]int, len(tiles)),
		history: append([]int(nil), history...),
		retries: retries,
		rng:     rand.New(rand.NewSource(seed)),
	}
	for _, i := range g.history {
		if i >= 0 && i < len(g.tiles) {
			g.counts[i]++
		}
	}
	return g
}

// Generate draws the next tile, pushing it into the history window
// and evicting the oldest entry.
func (g *HistoryGenerator) Generate() *Tile {
	idx := g.rng.Intn(len(g.tiles))
	for i := 0; i < g.retries && g.counts[idx] > 0; i++ {
		idx = g.rng.Intn(len(g.tiles))
	}
	g.history = append(g.history, idx)
	g.counts[idx]++
	oldest := g.history[0]
	if oldest >= 0 && oldest < len(g.tiles) {
		g.counts[oldest]--
	}
	g.history = g.history[1:]
	return g.tiles[idx]
}
