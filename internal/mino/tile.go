// Package mino implements the rules engine for falling-block puzzle
// games: a bit-packed playing field with collision and rotation
// evaluation, a playground state machine coordinating piece movement,
// and the piece-supply generators that feed it. It contains pure logic
// with no external dependencies (especially no Bubble Tea) so that
// renderers and controllers stay thin consumers of its events.
package mino

import "fmt"

// Field geometry shared by every tile and field in the package. Tiles
// live inside a 6x6 frame so that the packed 6-row window covers any
// tile at any orientation.
const (
	// Columns is the fixed width of the playing field.
	Columns = 10

	// FrameSize is the side length of the square frame a tile is
	// defined in.
	FrameSize = 6

	// MaxPixels is the per-orientation pixel capacity of a tile.
	MaxPixels = 8

	// MaxKicks is the per-transition kick candidate capacity.
	MaxKicks = 12
)

// Direction is the orientation of a tile, one of four rotation states.
type Direction uint8

// The four orientations, counted clockwise from spawn.
const (
	DirSpawn Direction = iota
	DirRight
	DirHalfTurn
	DirLeft
)

// RotateCW returns the orientation after a clockwise rotation.
func (d Direction) RotateCW() Direction {
	return (d + 1) & 0x03
}

// RotateCCW returns the orientation after a counter-clockwise rotation.
func (d Direction) RotateCCW() Direction {
	return (d + 3) & 0x03
}

// HalfTurn returns the orientation after a 180 degree rotation.
func (d Direction) HalfTurn() Direction {
	return (d + 2) & 0x03
}

func (d Direction) String() string {
	switch d {
	case DirSpawn:
		return "spawn"
	case DirRight:
		return "right"
	case DirHalfTurn:
		return "half-turn"
	case DirLeft:
		return "left"
	default:
		return "unknown"
	}
}

// Coord is a small signed offset inside or around a tile frame.
// X grows rightward, Y grows upward. Valid values stay well within
// int8 range: frame offsets are 0..5 and kick offsets -2..+2.
type Coord struct {
	X, Y int8
}

// Neg returns the negated offset. Kick tables for the reverse
// transition are exact negations of the forward transition.
func (c Coord) Neg() Coord {
	return Coord{X: -c.X, Y: -c.Y}
}

// Placement is the full positional state of a tile: its orientation
// and the field coordinates of its frame origin. Y counts rows from
// the field bottom upward and may be negative while a tile's occupied
// pixels are still above the floor.
type Placement struct {
	Dir  Direction
	X, Y int
}

// Pixel is one occupied cell of a tile orientation: the cell identity
// byte written into the field on lock, and its offset in the frame.
type Pixel struct {
	Data uint8
	At   Coord
}

// CompactWindow is a packed 6-row occupancy window, 10 bits per row
// with the bottom row in the least significant bits. It backs the fast
// collision tests during movement evaluation: a tile mask shifted to
// its column position collides iff it bitwise-intersects the window.
type CompactWindow uint64

const (
	rowMask    = uint64(1)<<Columns - 1
	windowMask = uint64(1)<<(Columns*FrameSize) - 1
)

// Collides reports whether two packed occupancy sets intersect.
func (w CompactWindow) Collides(other CompactWindow) bool {
	return w&other != 0
}

// ShiftX moves a tile mask horizontally by x columns. Shifting may
// carry bits across row boundaries when the tile leaves the field,
// which is why callers must bounding-box check before using it.
func (w CompactWindow) ShiftX(x int) CompactWindow {
	if x >= 0 {
		return w << x
	}
	return w >> (-x)
}

// PushBottom slides the window up one row: the former top row is
// discarded and row becomes the new bottom. Used when the tracked
// window moves one row down in the field.
func (w CompactWindow) PushBottom(row uint16) CompactWindow {
	shifted := (uint64(w) << Columns) & windowMask
	return CompactWindow(shifted | uint64(row)&rowMask)
}

// PushTop slides the window down one row: the former bottom row is
// discarded and row becomes the new top. Used when the tracked window
// moves one row up in the field.
func (w CompactWindow) PushTop(row uint16) CompactWindow {
	shifted := (uint64(w) & windowMask) >> Columns
	return CompactWindow(shifted | (uint64(row)&rowMask)<<(Columns*(FrameSize-1)))
}

// Frames is the visual definition of a tile: for each orientation a
// 6x6 grid of cell identity bytes, written top-down the way the shape
// looks on screen. Row 0 of a frame is the topmost row; the
// constructor flips it into bottom-up field coordinates.
type Frames [4][FrameSize][FrameSize]uint8

// KickTable lists, for each (source, target) orientation pair, the
// ordered kick offsets tried when a rotation fails in place. Table
// order is the tie-break policy: the first valid kick wins. Reverse
// transitions left empty are derived as exact negations of their
// forward counterparts.
type KickTable [4][4][]Coord

// Tile is the immutable, precomputed geometry of one piece shape:
// per-orientation pixel lists, bounding boxes, packed occupancy masks
// and the rotation kick table. A Tile is shared by every field and
// playground using that shape.
type Tile struct {
	pixels [4][]Pixel
	min    [4]Coord
	max    [4]Coord
	masks  [4]CompactWindow
	kicks  KickTable
}

// NewTile precomputes a tile from its visual frames and kick table.
// It panics when an orientation holds more than MaxPixels occupied
// cells or a transition lists more than MaxKicks candidates: both are
// construction bugs, not runtime conditions.
func NewTile(frames Frames, kicks KickTable) *Tile {
	t := &Tile{}
	for dir := range 4 {
		first := true
		for y := range FrameSize {
			for x := range FrameSize {
				v := frames[dir][FrameSize-1-y][x]
				if v == 0 {
					continue
				}
				if len(t.pixels[dir]) >= MaxPixels {
					panic(fmt.Sprintf("mino: tile orientation %d has more than %d pixels", dir, MaxPixels))
				}
				at := Coord{X: int8(x), Y: int8(y)}
				t.pixels[dir] = append(t.pixels[dir], Pixel{Data: v, At: at})
				t.masks[dir] |= CompactWindow(uint64(1) << x << (Columns * y))
				if first {
					t.min[dir], t.max[dir] = at, at
					first = false
					continue
				}
				if at.X < t.min[dir].X {
					t.min[dir].X = at.X
				}
				if at.Y < t.min[dir].Y {
					t.min[dir].Y = at.Y
				}
				if at.X > t.max[dir].X {
					t.max[dir].X = at.X
				}
				if at.Y > t.max[dir].Y {
					t.max[dir].Y = at.Y
				}
			}
		}
	}

	for i := range 4 {
		for j := range 4 {
			if len(kicks[i][j]) > MaxKicks {
				panic(fmt.Sprintf("mino: kick table %d->%d has more than %d entries", i, j, MaxKicks))
			}
			t.kicks[i][j] = append([]Coord(nil), kicks[i][j]...)
		}
	}

	// Derive reverse transitions as negations of populated forward
	// ones, so tables only need the clockwise entries spelled out.
	for i := range 4 {
		for j := range 4 {
			if len(t.kicks[i][j]) == 0 || len(t.kicks[j][i]) != 0 {
				continue
			}
			reversed := make([]Coord, len(t.kicks[i][j]))
			for k, c := range t.kicks[i][j] {
				reversed[k] = c.Neg()
			}
			t.kicks[j][i] = reversed
		}
	}
	return t
}

// Pixels returns the occupied cells for the given orientation, in the
// bottom-up scan order they were extracted in.
func (t *Tile) Pixels(dir Direction) []Pixel {
	return t.pixels[dir]
}

// BoundingBox returns the inclusive min and max occupied offsets for
// the given orientation.
func (t *Tile) BoundingBox(dir Direction) (min, max Coord) {
	return t.min[dir], t.max[dir]
}

// Mask returns the packed occupancy mask for the given orientation,
// positioned at frame origin zero.
func (t *Tile) Mask(dir Direction) CompactWindow {
	return t.masks[dir]
}

// Kicks returns the ordered kick offsets tried for the given rotation
// transition.
func (t *Tile) Kicks(from, to Direction) []Coord {
	return t.kicks[from][to]
}

// SpawnPlacement is the fixed spawn position of a tile: frame origin
// at column 2, with the lowest occupied row of the spawn orientation
// resting on the reference spawn row.
func (t *Tile) SpawnPlacement() Placement {
	return Placement{
		Dir: DirSpawn,
		X:   2,
		Y:   spawnRow - int(t.min[DirSpawn].Y),
	}
}

// spawnRow is the field row the lowest occupied pixel of a freshly
// spawned tile sits on.
const spawnRow = 19
