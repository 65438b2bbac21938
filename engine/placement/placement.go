// Package placement provides an opposing policy that drops a fixed piece on
// a uniformly random empty cell instead of moving an existing piece.
package placement

import (
	"io"
	"log"
	"math/rand"
	"time"

	"termchess-local/board"
	"termchess-local/engine"
	"termchess-local/types"
)

var debugLog = log.New(io.Discard, "placement: ", log.Ltime|log.Lmicroseconds)

// SetDebugOutput redirects the package debug log.
func SetDebugOutput(w io.Writer) {
	debugLog.SetOutput(w)
}

// Policy implements engine.Policy by random placement.
type Policy struct {
	piece types.Piece
	rng   *rand.Rand
}

// NewPolicy creates a placement policy dropping opponent pieces of the given
// kind. A zero seed seeds from the clock.
func NewPolicy(kind types.Kind, seed int64) *Policy {
	if kind == types.NoKind {
		kind = types.Pawn
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Policy{
		piece: types.Piece{Kind: kind, Owner: types.OpponentSide},
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// FromConfig creates a placement policy from a game configuration.
func FromConfig(cfg engine.GameConfig) *Policy {
	return NewPolicy(cfg.OpponentPiece, cfg.Seed)
}

// ChooseMove picks an empty cell uniformly at random. It reports false when
// the board is full.
func (p *Policy) ChooseMove(b *board.Board) (engine.Move, bool) {
	empty := b.EmptyCells()
	if len(empty) == 0 {
		debugLog.Printf("ChooseMove: no empty cell, skipping")
		return engine.Move{}, false
	}
	to := empty[p.rng.Intn(len(empty))]
	debugLog.Printf("ChooseMove: placing %s at %s (%d empty)", p.piece, to, len(empty))
	return engine.Move{To: to, Piece: p.piece, Placement: true}, true
}
