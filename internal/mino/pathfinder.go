package mino

// PathFinder is a tile at a location that has already been validated
// against a known field version. It carries a cached packed window of
// the six field rows the tile currently overlaps, so movement
// evaluation never re-reads the field row by row.
//
// PathFinders are plain values: Field operations return new instances
// and never mutate their inputs. The zero value is the null path
// finder: no tile, version 0 (which matches any field). Operations
// that report failure return the zero value, and callers must not
// inspect a failed result beyond confirming the failure.
type PathFinder struct {
	tile      *Tile
	placement Placement
	window    CompactWindow
	version   uint64
	wallKick  bool
}

// Tile returns the piece type, or nil for the null path finder.
func (p PathFinder) Tile() *Tile {
	return p.tile
}

// Placement returns the orientation and position of the tile.
func (p PathFinder) Placement() Placement {
	return p.placement
}

// WallKicked reports whether this path finder was produced by a
// rotation that needed a kick offset to validate.
func (p PathFinder) WallKicked() bool {
	return p.wallKick
}
