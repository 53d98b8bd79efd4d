package mino

import "testing"

func TestBagDealsEveryTileOncePerPeriod(t *testing.T) {
	set := StandardSet()
	g := NewBagGenerator(set, 7)

	for period := range 4 {
		seen := make(map[*Tile]bool, len(set))
		for range set {
			tile := g.Generate()
			if tile == nil {
				t.Fatal("bag generator signaled exhaustion")
			}
			if seen[tile] {
				t.Fatalf("period %d repeated %v", period, ShapeOf(tile))
			}
			seen[tile] = true
		}
		if len(seen) != len(set) {
			t.Fatalf("period %d dealt %d distinct tiles, expected %d",
				period, len(seen), len(set))
		}
	}
}

func TestBagDeterminism(t *testing.T) {
	a := NewBagGenerator(StandardSet(), 42)
	b := NewBagGenerator(StandardSet(), 42)
	for i := range 30 {
		if ShapeOf(a.Generate()) != ShapeOf(b.Generate()) {
			t.Fatalf("sequences diverged at draw %d", i)
		}
	}
}

func TestBagEmptySetPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for an empty working set")
		}
	}()
	NewBagGenerator(nil, 1)
}

func TestHistoryAvoidsWindowRepeats(t *testing.T) {
	// Three tiles and a two-slot window: with a generous retry budget
	// the draw avoiding both window entries is always found, so every
	// draw differs from the previous two.
	tiles := []*Tile{NewTetromino(ShapeJ), NewTetromino(ShapeL), NewTetromino(ShapeS)}
	g := NewHistoryGenerator(tiles, 1000, []int{0, 1}, 7)

	index := func(tile *Tile) int {
		for i, t := range tiles {
			if t == tile {
				return i
			}
		}
		return -1
	}

	prev2, prev1 := 0, 1
	for draw := range 40 {
		idx := index(g.Generate())
		if idx < 0 {
			t.Fatal("generator returned a tile outside its working set")
		}
		if idx == prev1 || idx == prev2 {
			t.Fatalf("draw %d repeated index %d from the window (%d, %d)",
				draw, idx, prev2, prev1)
		}
		prev2, prev1 = prev1, idx
	}
}

func TestHistoryWindowBookkeeping(t *testing.T) {
	tiles := []*Tile{NewTetromino(ShapeJ), NewTetromino(ShapeL), NewTetromino(ShapeS)}
	g := NewHistoryGenerator(tiles, 10, []int{0, 1, 2}, 3)

	for range 25 {
		g.Generate()
		if len(g.history) != 3 {
			t.Fatalf("window size drifted to %d", len(g.history))
		}
		total := 0
		for i, c := range g.counts {
			if c < 0 {
				t.Fatalf("count for index %d went negative", i)
			}
			total += c
		}
		if total != len(g.history) {
			t.Fatalf("counts sum to %d, window holds %d entries", total, len(g.history))
		}
	}
}

func TestHistoryRetryBudgetExhaustion(t *testing.T) {
	// A one-tile set keeps its only index permanently in the window, so
	// every draw burns the full budget and accepts the repeat.
	tiles := []*Tile{NewTetromino(ShapeO)}
	g := NewHistoryGenerator(tiles, 3, []int{0}, 11)
	for range 5 {
		if g.Generate() != tiles[0] {
			t.Fatal("the only tile of the set was not returned")
		}
	}
}

func TestHistoryIgnoresOutOfRangeSeed(t *testing.T) {
	tiles := []*Tile{NewTetromino(ShapeJ), NewTetromino(ShapeL)}
	g := NewHistoryGenerator(tiles, 4, []int{-1, 99, 0}, 5)
	for i, c := range g.counts {
		if i == 0 && c != 1 {
			t.Errorf("count for index 0 = %d, expected 1", c)
		}
		if i != 0 && c != 0 {
			t.Errorf("count for index %d = %d, expected 0", i, c)
		}
	}
	for range 10 {
		if g.Generate() == nil {
			t.Fatal("generator signaled exhaustion")
		}
		if len(g.history) != 3 {
			t.Fatalf("window size drifted to %d", len(g.history))
		}
	}
}

func TestHistoryDeterminism(t *testing.T) {
	a := NewHistoryGenerator(StandardSet(), 5, []int{0, 1, 2, 3}, 99)
	b := NewHistoryGenerator(StandardSet(), 5, []int{0, 1, 2, 3}, 99)
	for i := range 30 {
		if ShapeOf(a.Generate()) != ShapeOf(b.Generate()) {
			t.Fatalf("sequences diverged at draw %d", i)
		}
	}
}

func TestHistoryEmptySetPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for an empty working set")
		}
	}()
	NewHistoryGenerator(nil, 1, nil, 1)
}
