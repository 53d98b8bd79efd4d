package mino

// TileSpawnEvent is emitted when a tile enters the field. On a
// top-out the event still fires, carrying the overlapping placement,
// and is followed by the terminating GameEndEvent.
type TileSpawnEvent struct {
	Type           *Tile
	Location       Placement
	ShadowLocation Placement
}

// TileMoveEvent is emitted after any successful move, drop or
// rotation, carrying the old and new placements for both the tile and
// its drop shadow.
type TileMoveEvent struct {
	Type         *Tile
	Before       Placement
	BeforeShadow Placement
	After        Placement
	AfterShadow  Placement
	WallKick     bool
}

// TileBeforeLockEvent is emitted when a tile has reached its lock
// condition but the field has not mutated yet. Observers can use it to
// classify spins and clears while the pre-lock field is still
// visible. A TileLockEvent always follows in the same call chain.
type TileBeforeLockEvent struct {
	Type     *Tile
	Location Placement
}

// TileLockEvent is emitted once a tile has been committed into the
// field, carrying the number of rows the lock cleared.
type TileLockEvent struct {
	Type     *Tile
	Location Placement
	Cleared  int
}

// TileSwapEvent is emitted when the active tile is stored into the
// hold slot. The replacement tile arrives through a TileSpawnEvent.
type TileSwapEvent struct {
	Type           *Tile
	Location       Placement
	ShadowLocation Placement
}

// GameEndEvent is emitted exactly once when the playground reaches a
// terminal state. No further events follow.
type GameEndEvent struct {
	FinalState State
}

// Listener receives playground events. Delivery is synchronous, in
// registration order, and re-entrant: a listener runs inside the call
// that produced the event, after the mutation is already applied, and
// may itself issue playground commands.
type Listener interface {
	TileSpawn(TileSpawnEvent)
	TileMove(TileMoveEvent)
	TileBeforeLock(TileBeforeLockEvent)
	TileLock(TileLockEvent)
	TileSwap(TileSwapEvent)
	GameEnd(GameEndEvent)
}

// NopListener is a Listener that ignores every event. Embed it to
// implement only the events a subscriber cares about.
type NopListener struct{}

func (NopListener) TileSpawn(TileSpawnEvent)           {}
func (NopListener) TileMove(TileMoveEvent)             {}
func (NopListener) TileBeforeLock(TileBeforeLockEvent) {}
func (NopListener) TileLock(TileLockEvent)             {}
func (NopListener) TileSwap(TileSwapEvent)             {}
func (NopListener) GameEnd(GameEndEvent)               {}

// Handle identifies one subscription for later removal.
type Handle int

type subscription struct {
	handle   Handle
	listener Listener
}

// listenerSet is an owned ordered collection of subscriptions.
// Dispatch iterates a snapshot of the slice header, so listeners may
// subscribe or unsubscribe re-entrantly without corrupting delivery.
type listenerSet struct {
	subs []subscription
	next Handle
}

func (s *listenerSet) add(l Listener) Handle {
	s.next++
	s.subs = append(s.subs, subscription{handle: s.next, listener: l})
	return s.next
}

func (s *listenerSet) remove(h Handle) bool {
	for i, sub := range s.subs {
		if sub.handle == h {
			s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
			return true
		}
	}
	return false
}

func (s *listenerSet) dispatch(fn func(Listener)) {
	for _, sub := range s.subs {
		fn(sub.listener)
	}
}
