package mino

// SolidRow is the occupancy mask of a completely filled row. Rows
// below the field bottom report SolidRow, which is what makes the
// floor act as collision for every operation.
const SolidRow uint16 = 1<<Columns - 1

// CellRow is the dense per-cell identity view of one field row.
// A zero byte means the cell is empty.
type CellRow [Columns]uint8

type fieldRow struct {
	bits  uint16
	cells CellRow
}

// Field is the authoritative occupancy grid of one playground and the
// single source of truth for collision. Rows are ordered bottom-up and
// the height grows as locked tiles or injected garbage extend past it.
//
// Every mutation (Lock, Grow) advances the field version; PathFinders
// stamped with an older version must not be passed back in, and doing
// so is a caller bug that panics rather than failing soft.
type Field struct {
	rows    []fieldRow
	version uint64
}

// NewField creates an empty field at version 1.
func NewField() *Field {
	return &Field{
		rows:    make([]fieldRow, 0, 22),
		version: 1,
	}
}

// Height returns the number of rows currently stored.
func (f *Field) Height() int {
	return len(f.rows)
}

// Version returns the monotonic mutation counter.
func (f *Field) Version() uint64 {
	return f.version
}

// RowBits returns the 10-bit occupancy mask at row y. Rows below the
// bottom are fully solid, rows at or above the height are empty.
func (f *Field) RowBits(y int) uint16 {
	if y < 0 {
		return SolidRow
	}
	if y >= len(f.rows) {
		return 0
	}
	return f.rows[y].bits
}

// RowCells returns the dense cell identities at row y. Rows below the
// bottom report solid in every cell, rows above the height are empty.
func (f *Field) RowCells(y int, solid uint8) CellRow {
	if y < 0 {
		var row CellRow
		for i := range row {
			row[i] = solid
		}
		return row
	}
	if y >= len(f.rows) {
		return CellRow{}
	}
	return f.rows[y].cells
}

// assertLegit panics when a path finder is stamped against a version
// the field has since moved past, or carries no tile at all. Both are
// caller bugs: stale placements must be refreshed after any mutation.
func (f *Field) assertLegit(pfd PathFinder) {
	if pfd.tile == nil {
		panic("mino: path finder has no tile")
	}
	if pfd.version != 0 && pfd.version != f.version {
		panic("mino: mismatched field version")
	}
}

// isValid is the shared validity primitive: the placement must keep
// the bounding box inside the horizontal bounds and above the floor,
// and the tile's shifted mask must not intersect the cached window.
func isValid(pfd PathFinder) bool {
	st := pfd.placement
	min, max := pfd.tile.BoundingBox(st.Dir)
	if st.X+int(min.X) < 0 {
		return false
	}
	if st.X+int(max.X) >= Columns {
		return false
	}
	if st.Y+int(max.Y) < 0 {
		return false
	}
	mask := pfd.tile.Mask(st.Dir).ShiftX(st.X)
	return !pfd.window.Collides(mask)
}

// windowAt folds the six field rows starting at y (bottom of the tile
// frame) into a packed window, top row first.
func (f *Field) windowAt(y int) CompactWindow {
	var w CompactWindow
	for i := FrameSize; i > 0; i-- {
		w = w.PushBottom(f.RowBits(y + i - 1))
	}
	return w
}

// Spawn constructs the tile's fixed spawn state and validates it
// against the field. Failure means the spawn position overlaps
// existing blocks, which is the caller's top-out signal; the returned
// path finder still carries the attempted placement (unstamped) so
// observers can render the overlapping tile.
func (f *Field) Spawn(t *Tile) (PathFinder, bool) {
	if t == nil {
		panic("mino: spawn without tile")
	}
	pfd := PathFinder{tile: t, placement: t.SpawnPlacement()}
	pfd.window = f.windowAt(pfd.placement.Y)
	if !isValid(pfd) {
		return pfd, false
	}
	pfd.version = f.version
	return pfd, true
}

// Move walks the tile horizontally one column at a time, up to steps
// columns (negative steps move left), stopping at the first collision
// or field boundary. It reports false when no net column was moved.
func (f *Field) Move(pfd PathFinder, steps int) (PathFinder, bool) {
	f.assertLegit(pfd)

	st := pfd.placement
	mask := pfd.tile.Mask(st.Dir).ShiftX(st.X)
	x := st.X
	switch {
	case steps > 0:
		_, max := pfd.tile.BoundingBox(st.Dir)
		for x+int(max.X) < Columns-1 && steps > 0 {
			x++
			mask = mask.ShiftX(1)
			if pfd.window.Collides(mask) {
				x--
				break
			}
			steps--
		}
	case steps < 0:
		min, _ := pfd.tile.BoundingBox(st.Dir)
		for x+int(min.X) > 0 && steps < 0 {
			x--
			mask = mask.ShiftX(-1)
			if pfd.window.Collides(mask) {
				x++
				break
			}
			steps++
		}
	}
	if x == st.X {
		return PathFinder{}, false
	}

	result := PathFinder{tile: pfd.tile, placement: st, window: pfd.window}
	result.placement.X = x
	result.version = f.version
	return result, true
}

// Drop walks the tile downward one row at a time, up to steps rows,
// re-deriving the window as it goes and stopping right before the
// first colliding row. It reports false when no net row was moved.
func (f *Field) Drop(pfd PathFinder, steps int) (PathFinder, bool) {
	f.assertLegit(pfd)

	result := PathFinder{tile: pfd.tile, placement: pfd.placement, window: pfd.window}
	mask := pfd.tile.Mask(pfd.placement.Dir).ShiftX(pfd.placement.X)
	moved := false
	for steps > 0 {
		next := result.window.PushBottom(f.RowBits(result.placement.Y - 1))
		if next.Collides(mask) {
			break
		}
		result.placement.Y--
		result.window = next
		moved = true
		steps--
	}
	if !moved {
		return PathFinder{}, false
	}
	result.version = f.version
	return result, true
}

// Rotate evaluates the target orientation at the current position
// first; when that fails it walks the kick-offset list for the
// transition in table order and commits the first candidate that
// validates, flagging the result as wall-kicked. It reports false when
// neither the in-place rotation nor any kick candidate validates.
func (f *Field) Rotate(pfd PathFinder, target Direction) (PathFinder, bool) {
	f.assertLegit(pfd)

	st := pfd.placement
	result := PathFinder{tile: pfd.tile, placement: st, window: pfd.window}
	result.placement.Dir = target
	if isValid(result) {
		result.version = f.version
		return result, true
	}

	for _, kick := range pfd.tile.Kicks(st.Dir, target) {
		result.placement.X = st.X + int(kick.X)
		newY := st.Y + int(kick.Y)
		// Re-synthesize the window by vertical row shifts from
		// wherever the previous candidate left it.
		for result.placement.Y < newY {
			result.window = result.window.PushTop(f.RowBits(result.placement.Y + FrameSize))
			result.placement.Y++
		}
		for result.placement.Y > newY {
			result.window = result.window.PushBottom(f.RowBits(result.placement.Y - 1))
			result.placement.Y--
		}
		if isValid(result) {
			result.wallKick = true
			result.version = f.version
			return result, true
		}
	}
	return PathFinder{}, false
}

// Lock commits a resting tile's cells permanently into the field and
// clears any rows its bounding box completed, compacting rows above
// downward. The precondition is that the placement is valid and a
// one-row drop fails; Lock reports false without mutating otherwise.
// The returned count is the number of cleared rows. Lock advances the
// field version.
func (f *Field) Lock(pfd PathFinder) (cleared int, ok bool) {
	f.assertLegit(pfd)

	if !isValid(pfd) {
		return 0, false
	}
	if _, dropped := f.Drop(pfd, 1); dropped {
		return 0, false
	}

	st := pfd.placement
	min, max := pfd.tile.BoundingBox(st.Dir)
	for st.Y+int(max.Y) >= len(f.rows) {
		f.rows = append(f.rows, fieldRow{})
	}
	for _, px := range pfd.tile.Pixels(st.Dir) {
		x := st.X + int(px.At.X)
		y := st.Y + int(px.At.Y)
		f.rows[y].cells[x] = px.Data
		f.rows[y].bits |= 1 << x
	}

	// Scan exactly the rows the bounding box touched, adjusting for
	// rows already removed within this same call.
	for j := int(min.Y); j <= int(max.Y); j++ {
		row := st.Y + j - cleared
		if f.rows[row].bits != SolidRow {
			continue
		}
		f.rows = append(f.rows[:row], f.rows[row+1:]...)
		cleared++
	}
	f.version++
	return cleared, true
}

// Grow inserts one externally supplied row at the bottom of the
// field, shifting every other row up, and advances the version. It is
// meant for pre-seeded garbage or obstacle lines, not for ordinary
// gameplay.
func (f *Field) Grow(cells CellRow) {
	row := fieldRow{cells: cells}
	for i, v := range cells {
		if v != 0 {
			row.bits |= 1 << i
		}
	}
	f.rows = append([]fieldRow{row}, f.rows...)
	f.version++
}
