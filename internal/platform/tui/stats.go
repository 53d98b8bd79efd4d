package tui

import (
	"github.com/minofall/minofall/internal/mino"
)

// sessionStats aggregates playground events into the numbers shown in
// the side panel and persisted at game end.
type sessionStats struct {
	mino.NopListener
	lines    int
	pieces   int
	spins    int // locks whose final rotation was a wall kick
	kicked   bool
	gameOver bool
	endState mino.State
}

func (s *sessionStats) TileMove(e mino.TileMoveEvent) {
	s.kicked = e.WallKick
}

func (s *sessionStats) TileLock(e mino.TileLockEvent) {
	s.pieces++
	s.lines += e.Cleared
	if s.kicked && e.Cleared > 0 {
		s.spins++
	}
	s.kicked = false
}

func (s *sessionStats) GameEnd(e mino.GameEndEvent) {
	s.gameOver = true
	s.endState = e.FinalState
}
