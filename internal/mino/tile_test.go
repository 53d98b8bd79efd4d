package mino

import "testing"

func TestBoundingBoxContainsPixels(t *testing.T) {
	for _, shape := range Shapes() {
		tile := NewTetromino(shape)
		for dir := Direction(0); dir < 4; dir++ {
			min, max := tile.BoundingBox(dir)
			pixels := tile.Pixels(dir)
			if len(pixels) == 0 {
				t.Fatalf("%v/%v has no pixels", shape, dir)
			}
			for _, px := range pixels {
				if px.At.X < min.X || px.At.X > max.X || px.At.Y < min.Y || px.At.Y > max.Y {
					t.Errorf("%v/%v pixel (%d,%d) outside bounding box (%d,%d)-(%d,%d)",
						shape, dir, px.At.X, px.At.Y, min.X, min.Y, max.X, max.Y)
				}
			}
		}
	}
}

func TestTetrominoPixelCounts(t *testing.T) {
	for _, shape := range Shapes() {
		tile := NewTetromino(shape)
		for dir := Direction(0); dir < 4; dir++ {
			if got := len(tile.Pixels(dir)); got != 4 {
				t.Errorf("%v/%v has %d pixels, expected 4", shape, dir, got)
			}
		}
	}
}

func TestKickTableNegation(t *testing.T) {
	for _, shape := range Shapes() {
		tile := NewTetromino(shape)
		for i := Direction(0); i < 4; i++ {
			for j := Direction(0); j < 4; j++ {
				forward := tile.Kicks(i, j)
				reverse := tile.Kicks(j, i)
				if len(forward) != len(reverse) {
					t.Errorf("%v kicks %v->%v and %v->%v differ in length: %d vs %d",
						shape, i, j, j, i, len(forward), len(reverse))
					continue
				}
				for k := range forward {
					if forward[k] != reverse[k].Neg() {
						t.Errorf("%v kick %v->%v[%d] = %v, expected negation of %v",
							shape, i, j, k, forward[k], reverse[k])
					}
				}
			}
		}
	}
}

func TestSpawnPlacement(t *testing.T) {
	for _, shape := range Shapes() {
		tile := NewTetromino(shape)
		placement := tile.SpawnPlacement()
		if placement.X != 2 {
			t.Errorf("%v spawns at x=%d, expected 2", shape, placement.X)
		}
		if placement.Dir != DirSpawn {
			t.Errorf("%v spawns at dir=%v, expected spawn orientation", shape, placement.Dir)
		}
		min, _ := tile.BoundingBox(DirSpawn)
		if lowest := placement.Y + int(min.Y); lowest != spawnRow {
			t.Errorf("%v lowest occupied row spawns at %d, expected %d", shape, lowest, spawnRow)
		}
	}
}

func TestShapeOf(t *testing.T) {
	for _, shape := range Shapes() {
		if got := ShapeOf(NewTetromino(shape)); got != shape {
			t.Errorf("ShapeOf returned %v, expected %v", got, shape)
		}
	}
	if got := ShapeOf(nil); got != 0 {
		t.Errorf("ShapeOf(nil) = %v, expected 0", got)
	}
}

func TestTooManyPixelsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for an orientation with more than MaxPixels cells")
		}
	}()

	var frames Frames
	for y := range 3 {
		for x := range 3 {
			frames[0][y][x] = 1
		}
	}
	NewTile(frames, KickTable{})
}

func TestTooManyKicksPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for a transition with more than MaxKicks entries")
		}
	}()

	var frames Frames
	frames[0][0][0] = 1
	var kicks KickTable
	kicks[0][1] = make([]Coord, MaxKicks+1)
	for i := range kicks[0][1] {
		kicks[0][1][i] = Coord{X: 1, Y: 0}
	}
	NewTile(frames, kicks)
}

func TestCompactWindowPush(t *testing.T) {
	var w CompactWindow

	// Fill the window bottom-up with recognizable rows.
	rows := []uint16{1, 2, 4, 8, 16, 32}
	for i := len(rows) - 1; i >= 0; i-- {
		w = w.PushBottom(rows[i])
	}
	for i, row := range rows {
		got := uint16(uint64(w) >> (Columns * i) & rowMask)
		if got != row {
			t.Errorf("row %d = %d, expected %d", i, got, row)
		}
	}

	// Pushing a new top row discards the bottom one.
	w = w.PushTop(64)
	if got := uint16(uint64(w) & rowMask); got != 2 {
		t.Errorf("bottom row after PushTop = %d, expected 2", got)
	}
	if got := uint16(uint64(w) >> (Columns * 5) & rowMask); got != 64 {
		t.Errorf("top row after PushTop = %d, expected 64", got)
	}

	// Pushing a new bottom row restores the original occupancy.
	w = w.PushBottom(1)
	if got := uint16(uint64(w) & rowMask); got != 1 {
		t.Errorf("bottom row after PushBottom = %d, expected 1", got)
	}
}

func TestCompactWindowShiftAndCollide(t *testing.T) {
	tile := CompactWindow(0b11)
	if tile.Collides(CompactWindow(0b100)) {
		t.Error("disjoint masks should not collide")
	}
	if !tile.ShiftX(2).Collides(CompactWindow(0b100)) {
		t.Error("shifted mask should collide with overlapping occupancy")
	}
	if tile.ShiftX(2).ShiftX(-2) != tile {
		t.Error("shifting right should undo shifting left")
	}
}
