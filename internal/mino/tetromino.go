package mino

// Shape enumerates the seven standard tetrominoes. The numeric value
// doubles as the cell identity byte written into the field, so 0
// stays reserved for empty cells.
type Shape uint8

const (
	ShapeJ Shape = iota + 1
	ShapeL
	ShapeS
	ShapeZ
	ShapeT
	ShapeI
	ShapeO
)

func (s Shape) String() string {
	switch s {
	case ShapeJ:
		return "J"
	case ShapeL:
		return "L"
	case ShapeS:
		return "S"
	case ShapeZ:
		return "Z"
	case ShapeT:
		return "T"
	case ShapeI:
		return "I"
	case ShapeO:
		return "O"
	default:
		return "?"
	}
}

// Shapes returns all seven shapes in enumeration order.
func Shapes() []Shape {
	return []Shape{ShapeJ, ShapeL, ShapeS, ShapeZ, ShapeT, ShapeI, ShapeO}
}

// ShapeOf recovers the shape of a tetromino tile from its cell
// identity byte. It returns 0 for nil or foreign tiles.
func ShapeOf(t *Tile) Shape {
	if t == nil {
		return 0
	}
	px := t.Pixels(DirSpawn)
	if len(px) == 0 {
		return 0
	}
	return Shape(px[0].Data)
}

// tetrominoLayouts holds the four orientations of each shape as 6x6
// string rows, written top-down the way they look on screen. '#'
// marks an occupied cell.
var tetrominoLayouts = map[Shape][4][FrameSize]string{
	ShapeJ: {
		{"......", "......", ".#....", ".###..", "......", "......"},
		{"......", "......", "..##..", "..#...", "..#...", "......"},
		{"......", "......", "......", ".###..", "...#..", "......"},
		{"......", "......", "..#...", "..#...", ".##...", "......"},
	},
	ShapeL: {
		{"......", "......", "...#..", ".###..", "......", "......"},
		{"......", "......", "..#...", "..#...", "..##..", "......"},
		{"......", "......", "......", ".###..", ".#....", "......"},
		{"......", "......", ".##...", "..#...", "..#...", "......"},
	},
	ShapeS: {
		{"......", "......", "..##..", ".##...", "......", "......"},
		{"......", "......", "..#...", "..##..", "...#..", "......"},
		{"......", "......", "......", "..##..", ".##...", "......"},
		{"......", "......", ".#....", ".##...", "..#...", "......"},
	},
	ShapeZ: {
		{"......", "......", ".##...", "..##..", "......", "......"},
		{"......", "......", "...#..", "..##..", "..#...", "......"},
		{"......", "......", "......", ".##...", "..##..", "......"},
		{"......", "......", "..#...", ".##...", ".#....", "......"},
	},
	ShapeT: {
		{"......", "......", "..#...", ".###..", "......", "......"},
		{"......", "......", "..#...", "..##..", "..#...", "......"},
		{"......", "......", "......", ".###..", "..#...", "......"},
		{"......", "......", "..#...", ".##...", "..#...", "......"},
	},
	ShapeI: {
		{"......", "......", ".####.", "......", "......", "......"},
		{"......", "...#..", "...#..", "...#..", "...#..", "......"},
		{"......", "......", "......", ".####.", "......", "......"},
		{"......", "..#...", "..#...", "..#...", "..#...", "......"},
	},
	ShapeO: {
		{"......", "......", "..##..", "..##..", "......", "......"},
		{"......", "......", "..##..", "..##..", "......", "......"},
		{"......", "......", "..##..", "..##..", "......", "......"},
		{"......", "......", "..##..", "..##..", "......", "......"},
	},
}

// kicksBounded is the kick table recommended for the 3x3-bounded
// shapes (J, L, S, Z, T). Only the clockwise transitions are listed;
// NewTile derives the reverse ones by negation.
var kicksBounded = KickTable{
	DirSpawn: {DirRight: {
		{X: -1, Y: 0}, {X: -1, Y: 1}, {X: 0, Y: -2}, {X: -1, Y: -2},
	}},
	DirRight: {DirHalfTurn: {
		{X: 1, Y: 0}, {X: 1, Y: -1}, {X: 0, Y: 2}, {X: 1, Y: 2},
	}},
	DirHalfTurn: {DirLeft: {
		{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: -2}, {X: 1, Y: -2},
	}},
	DirLeft: {DirSpawn: {
		{X: -1, Y: 0}, {X: -1, Y: -1}, {X: 0, Y: 2}, {X: -1, Y: 2},
	}},
}

// kicksI is the kick table for the I tetromino, whose longer reach
// needs wider offsets.
var kicksI = KickTable{
	DirSpawn: {DirRight: {
		{X: -2, Y: 0}, {X: 1, Y: 0}, {X: -2, Y: -1}, {X: 1, Y: 2},
	}},
	DirRight: {DirHalfTurn: {
		{X: 2, Y: 0}, {X: -1, Y: 0}, {X: -1, Y: 2}, {X: 2, Y: -1},
	}},
	DirHalfTurn: {DirLeft: {
		{X: 2, Y: 0}, {X: -1, Y: 0}, {X: 2, Y: 1}, {X: -1, Y: -2},
	}},
	DirLeft: {DirSpawn: {
		{X: -2, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: -2}, {X: -2, Y: 1},
	}},
}

// NewTetromino builds the tile for one of the seven standard shapes,
// with the shape value as the cell identity byte. It panics on an
// unknown shape.
func NewTetromino(s Shape) *Tile {
	layout, ok := tetrominoLayouts[s]
	if !ok {
		panic("mino: unknown tetromino shape")
	}

	var frames Frames
	for dir := range 4 {
		for y, row := range layout[dir] {
			for x, ch := range row {
				if ch == '#' {
					frames[dir][y][x] = uint8(s)
				}
			}
		}
	}

	switch s {
	case ShapeI:
		return NewTile(frames, kicksI)
	case ShapeO:
		return NewTile(frames, KickTable{})
	default:
		return NewTile(frames, kicksBounded)
	}
}

// StandardSet builds all seven tetromino tiles in enumeration order,
// the usual working set for generators.
func StandardSet() []*Tile {
	tiles := make([]*Tile, 0, len(Shapes()))
	for _, s := range Shapes() {
		tiles = append(tiles, NewTetromino(s))
	}
	return tiles
}
