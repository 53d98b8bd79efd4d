package mino

// FieldHeight is the nominal visible height of the playing field. It
// bounds shadow computation and hard drops: no reachable placement is
// ever more than FieldHeight rows above its resting position.
const FieldHeight = 20

// State is the playground's position in its lifecycle state machine.
// The three terminal states have no outgoing transitions.
type State uint8

const (
	// NotStarted is the initial state before Start is called.
	NotStarted State = iota

	// InGame accepts movement commands; every other state rejects
	// them.
	InGame

	// TopOut terminates the game after a spawn overlapped existing
	// blocks.
	TopOut

	// Exhausted terminates the game after the generator's sentinel
	// reached the spawn head of the preview queue.
	Exhausted

	// Completed terminates the game after an external Complete call.
	Completed
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case InGame:
		return "in_game"
	case TopOut:
		return "top_out"
	case Exhausted:
		return "exhausted"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}

// Playground coordinates one game: the field, the active tile and its
// drop shadow, the hold slot, the preview queue and the state
// machine. All commands are synchronous and run to completion before
// returning; events are delivered in-line to subscribed listeners.
//
// A Playground exclusively owns its Field and Generator. It is not
// safe for concurrent use.
type Playground struct {
	field       *Field
	gen         Generator
	swap        *Tile
	swapEnabled bool
	current     PathFinder
	shadow      PathFinder
	previews    []*Tile
	cursor      int
	state       State
	listeners   listenerSet
}

// NewPlayground creates a playground fed by gen, with a fixed-size
// circular preview queue of numPreviews tiles filled eagerly from the
// generator.
func NewPlayground(gen Generator, numPreviews int) *Playground {
	if numPreviews <= 0 {
		panic("mino: playground needs at least one preview slot")
	}
	p := &Playground{
		field:       NewField(),
		gen:         gen,
		swapEnabled: true,
		previews:    make([]*Tile, numPreviews),
		state:       NotStarted,
	}
	for i := range p.previews {
		p.previews[i] = gen.Generate()
	}
	return p
}

// Subscribe registers a listener for all playground events and
// returns a handle for Unsubscribe. Listeners are notified in
// registration order.
func (p *Playground) Subscribe(l Listener) Handle {
	return p.listeners.add(l)
}

// Unsubscribe removes a previously registered listener.
func (p *Playground) Unsubscribe(h Handle) bool {
	return p.listeners.remove(h)
}

// State returns the current game state.
func (p *Playground) State() State {
	return p.state
}

// InGame reports whether movement commands are currently accepted.
func (p *Playground) InGame() bool {
	return p.state == InGame
}

// Field exposes the playground's field for read-only observation.
func (p *Playground) Field() *Field {
	return p.field
}

// CurrentTile returns the active tile type, or nil between spawns.
func (p *Playground) CurrentTile() *Tile {
	return p.current.Tile()
}

// CurrentPlacement returns the active tile's placement.
func (p *Playground) CurrentPlacement() Placement {
	return p.current.Placement()
}

// ShadowPlacement returns the landing placement of the active tile if
// dropped fully.
func (p *Playground) ShadowPlacement() Placement {
	return p.shadow.Placement()
}

// HeldTile returns the tile in the hold slot, or nil when empty.
func (p *Playground) HeldTile() *Tile {
	return p.swap
}

// SwapEnabled reports whether the hold slot can be used right now.
func (p *Playground) SwapEnabled() bool {
	return p.swapEnabled
}

// NumPreviews returns the preview queue size.
func (p *Playground) NumPreviews() int {
	return len(p.previews)
}

// Preview returns the queued tile i positions ahead of the spawn
// head, or nil for out-of-range offsets and exhausted slots.
func (p *Playground) Preview(i int) *Tile {
	if i < 0 || i >= len(p.previews) {
		return nil
	}
	return p.previews[(p.cursor+i)%len(p.previews)]
}

// Start transitions from NotStarted to InGame and spawns the first
// tile. It is a no-op in any other state.
func (p *Playground) Start() {
	if p.state != NotStarted {
		return
	}
	p.state = InGame
	p.spawnNext()
}

// Complete terminates an in-game playground without disturbing the
// tile resting in the field. It is a no-op in any other state.
func (p *Playground) Complete() {
	if p.state != InGame {
		return
	}
	p.state = Completed
	event := GameEndEvent{FinalState: p.state}
	p.listeners.dispatch(func(l Listener) { l.GameEnd(event) })
}

// spawnNext pops the preview head and spawns it, refilling the
// vacated slot from the generator. A sentinel at the head terminates
// the game as exhausted; once the generator has signaled exhaustion
// the sentinel propagates forward through the queue instead of asking
// the generator again.
func (p *Playground) spawnNext() {
	next := p.previews[p.cursor]
	if next == nil {
		p.current = PathFinder{}
		p.shadow = PathFinder{}
		p.state = Exhausted
		event := GameEndEvent{FinalState: p.state}
		p.listeners.dispatch(func(l Listener) { l.GameEnd(event) })
		return
	}

	prev := p.previews[(p.cursor+len(p.previews)-1)%len(p.previews)]
	var refill *Tile
	if prev != nil {
		refill = p.gen.Generate()
	}
	p.previews[p.cursor] = refill
	p.cursor = (p.cursor + 1) % len(p.previews)

	p.spawnTile(next)
}

// spawnTile places a tile of the given type at its spawn position,
// possibly overlapping the field, and detects top-out.
func (p *Playground) spawnTile(t *Tile) {
	pfd, ok := p.field.Spawn(t)
	p.current = pfd
	p.shadow = pfd
	if !ok {
		p.state = TopOut

		// Observers still see the overlapping spawn before the
		// termination event.
		spawn := TileSpawnEvent{
			Type:           p.current.Tile(),
			Location:       p.current.Placement(),
			ShadowLocation: p.shadow.Placement(),
		}
		p.listeners.dispatch(func(l Listener) { l.TileSpawn(spawn) })

		end := GameEndEvent{FinalState: p.state}
		p.listeners.dispatch(func(l Listener) { l.GameEnd(end) })
		return
	}

	if dropped, ok := p.field.Drop(p.current, FieldHeight); ok {
		p.shadow = dropped
	}

	spawn := TileSpawnEvent{
		Type:           p.current.Tile(),
		Location:       p.current.Placement(),
		ShadowLocation: p.shadow.Placement(),
	}
	p.listeners.dispatch(func(l Listener) { l.TileSpawn(spawn) })
}

// applyMove installs a freshly validated path finder as the active
// tile, recomputes the drop shadow and emits the move event.
func (p *Playground) applyMove(pfd PathFinder) {
	before := p.current.Placement()
	beforeShadow := p.shadow.Placement()
	p.current = pfd
	if dropped, ok := p.field.Drop(p.current, FieldHeight); ok {
		p.shadow = dropped
	} else {
		p.shadow = p.current
	}
	event := TileMoveEvent{
		Type:         p.current.Tile(),
		Before:       before,
		BeforeShadow: beforeShadow,
		After:        p.current.Placement(),
		AfterShadow:  p.shadow.Placement(),
		WallKick:     p.current.WallKicked(),
	}
	p.listeners.dispatch(func(l Listener) { l.TileMove(event) })
}

// Move shifts the active tile horizontally by up to dx columns
// (negative values move left). It reports false, with no event, when
// the game is not running or no column could be traversed.
func (p *Playground) Move(dx int) bool {
	if !p.InGame() {
		return false
	}
	pfd, ok := p.field.Move(p.current, dx)
	if !ok {
		return false
	}
	p.applyMove(pfd)
	return true
}

// Drop lowers the active tile by up to dy rows without locking it.
// It reports false, with no event, when the game is not running or no
// row could be traversed.
func (p *Playground) Drop(dy int) bool {
	if !p.InGame() {
		return false
	}
	pfd, ok := p.field.Drop(p.current, dy)
	if !ok {
		return false
	}
	p.applyMove(pfd)
	return true
}

func (p *Playground) rotate(target Direction) bool {
	if !p.InGame() {
		return false
	}
	pfd, ok := p.field.Rotate(p.current, target)
	if !ok {
		return false
	}
	p.applyMove(pfd)
	return true
}

// RotateCW rotates the active tile clockwise, kicking if needed.
func (p *Playground) RotateCW() bool {
	if !p.InGame() {
		return false
	}
	return p.rotate(p.current.Placement().Dir.RotateCW())
}

// RotateCCW rotates the active tile counter-clockwise, kicking if
// needed.
func (p *Playground) RotateCCW() bool {
	if !p.InGame() {
		return false
	}
	return p.rotate(p.current.Placement().Dir.RotateCCW())
}

// HalfTurn rotates the active tile by 180 degrees, kicking if needed.
func (p *Playground) HalfTurn() bool {
	if !p.InGame() {
		return false
	}
	return p.rotate(p.current.Placement().Dir.HalfTurn())
}

// HardDrop drops the active tile to its resting position, locks it,
// re-enables the hold slot and spawns the next tile (unless the lock
// ended the game). The drop emits a move event when any rows were
// traversed, then a before-lock event, then the lock event carrying
// the clear count.
func (p *Playground) HardDrop() bool {
	if !p.InGame() {
		return false
	}
	p.Drop(FieldHeight)

	t := p.current.Tile()
	location := p.current.Placement()

	before := TileBeforeLockEvent{Type: t, Location: location}
	p.listeners.dispatch(func(l Listener) { l.TileBeforeLock(before) })

	cleared, _ := p.field.Lock(p.current)
	p.current = PathFinder{}
	p.shadow = PathFinder{}
	p.swapEnabled = true

	lock := TileLockEvent{Type: t, Location: location, Cleared: cleared}
	p.listeners.dispatch(func(l Listener) { l.TileLock(lock) })

	if p.InGame() {
		p.spawnNext()
	}
	return true
}

// Swap stores the active tile in the hold slot. An empty hold slot
// means the next queued tile spawns; otherwise the previously held
// tile respawns. The hold slot stays disabled until the next lock.
func (p *Playground) Swap() bool {
	if !p.InGame() || !p.swapEnabled {
		return false
	}

	t := p.current.Tile()
	prev := p.swap
	location := p.current.Placement()
	shadowLocation := p.shadow.Placement()
	p.current = PathFinder{}
	p.shadow = PathFinder{}
	p.swap = t
	p.swapEnabled = false

	event := TileSwapEvent{
		Type:           t,
		Location:       location,
		ShadowLocation: shadowLocation,
	}
	p.listeners.dispatch(func(l Listener) { l.TileSwap(event) })

	if prev == nil {
		p.spawnNext()
	} else {
		p.spawnTile(prev)
	}
	return true
}
