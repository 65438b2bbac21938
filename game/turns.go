package game

import (
	"termchess-local/board"
	"termchess-local/engine"
	"termchess-local/types"
)

// Turns alternates control between the two sides. The opposing response runs
// synchronously inside PlayerMoved, so control is always back with the player
// by the time PlayerMoved returns.
type Turns struct {
	policy engine.Policy
	active types.Side
	ply    int
}

// NewTurns creates a turn controller answering player moves with policy.
func NewTurns(policy engine.Policy) *Turns {
	return &Turns{policy: policy, active: types.PlayerSide}
}

// Active returns the side currently allowed to act.
func (t *Turns) Active() types.Side {
	return t.active
}

// Ply returns the number of half-moves played so far, responses included.
func (t *Turns) Ply() int {
	return t.ply
}

// PlayerMoved records a committed player move and asks the policy for
// exactly one response, which is applied to b. The policy sees a copy of b. ok is false when the policy
// had nothing to play.
func (t *Turns) PlayerMoved(b *board.Board) (engine.Move, bool) {
	t.ply++
	t.active = t.active.Opposite()
	defer func() { t.active = types.PlayerSide }()

	if t.policy == nil {
		return engine.Move{}, false
	}
	m, ok := t.policy.ChooseMove(b.Clone())
	if !ok {
		debugLog.Printf("PlayerMoved: policy has no move")
		return engine.Move{}, false
	}
	if !engine.Apply(b, m) {
		debugLog.Printf("PlayerMoved: policy move %+v could not be applied", m)
		return engine.Move{}, false
	}
	t.ply++
	return m, true
}
