// Package engine defines the interface for the opposing side.
package engine

import (
	"termchess-local/board"
	"termchess-local/types"
)

// Move is what the opposing side decides to do on its turn.
// A placement drops Piece onto To and has no meaningful From.
type Move struct {
	From      types.Cell
	To        types.Cell
	Piece     types.Piece
	Placement bool
}

// Policy chooses the opposing side's response to a human move.
type Policy interface {
	// ChooseMove returns the move to play. ok is false when the policy has
	// nothing to do; the caller then skips the response.
	ChooseMove(b *board.Board) (m Move, ok bool)
}

// Apply performs m on b. Placements overwrite the destination; relocations
// copy the piece at From onto To and clear From.
func Apply(b *board.Board, m Move) bool {
	if m.Placement {
		if !m.To.OnBoard() {
			return false
		}
		b.Set(m.To, m.Piece)
		return true
	}
	return b.Move(m.From, m.To)
}

// GameConfig holds configuration for starting a new game.
type GameConfig struct {
	OpponentPiece types.Kind // Piece the placement policy drops each turn
	Seed          int64      // RNG seed for the opposing policy; 0 seeds from the clock
	PathBlocking  bool       // Sliding pieces stop at the first occupied cell
}

// DefaultConfig returns a reasonable default configuration.
func DefaultConfig() GameConfig {
	return GameConfig{
		OpponentPiece: types.Pawn,
	}
}
