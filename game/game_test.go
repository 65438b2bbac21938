package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termchess-local/board"
	"termchess-local/engine"
	"termchess-local/engine/placement"
	"termchess-local/types"
)

type recordingView struct {
	highlighted map[types.Cell]bool
	selected    map[types.Cell]bool
	pieces      map[types.Cell]types.Piece
	renders     int
}

func newRecordingView() *recordingView {
	return &recordingView{
		highlighted: map[types.Cell]bool{},
		selected:    map[types.Cell]bool{},
		pieces:      map[types.Cell]types.Piece{},
	}
}

func (v *recordingView) RenderPiece(c types.Cell, p types.Piece, occupied bool) {
	v.renders++
	if occupied {
		v.pieces[c] = p
	} else {
		delete(v.pieces, c)
	}
}

func (v *recordingView) SetHighlighted(c types.Cell, on bool) {
	if on {
		v.highlighted[c] = true
	} else {
		delete(v.highlighted, c)
	}
}

func (v *recordingView) SetSelected(c types.Cell, on bool) {
	if on {
		v.selected[c] = true
	} else {
		delete(v.selected, c)
	}
}

type countingPolicy struct {
	calls int
	inner engine.Policy
}

func (p *countingPolicy) ChooseMove(b *board.Board) (engine.Move, bool) {
	p.calls++
	if p.inner == nil {
		return engine.Move{}, false
	}
	return p.inner.ChooseMove(b)
}

func cell(row, col int) types.Cell {
	return types.Cell{Row: row, Col: col}
}

func newTestGame(t *testing.T, opts Options) (*Game, *recordingView, *countingPolicy) {
	t.Helper()
	view := newRecordingView()
	policy := &countingPolicy{inner: placement.NewPolicy(types.Pawn, 11)}
	g := New(board.NewStandard(), view, policy, opts)
	g.Render()
	return g, view, policy
}

func TestInitialRender(t *testing.T) {
	_, view, _ := newTestGame(t, Options{})
	assert.Equal(t, 64, view.renders)
	assert.Len(t, view.pieces, 32)
}

func TestSelectOwnPiece(t *testing.T) {
	g, view, _ := newTestGame(t, Options{})
	g.OnCellActivated(cell(6, 0))

	require.Equal(t, Selected, g.State())
	sel, ok := g.Selection()
	require.True(t, ok)
	assert.Equal(t, cell(6, 0), sel)
	assert.ElementsMatch(t, []types.Cell{cell(5, 0), cell(5, 1)}, g.Candidates())
	assert.Equal(t, map[types.Cell]bool{cell(5, 0): true, cell(5, 1): true}, view.highlighted)
	assert.Equal(t, map[types.Cell]bool{cell(6, 0): true}, view.selected)
}

func TestCandidatesAreEmptyAndOnBoard(t *testing.T) {
	g, _, _ := newTestGame(t, Options{})
	g.OnCellActivated(cell(7, 3)) // queen
	require.Equal(t, Selected, g.State())
	require.NotEmpty(t, g.Candidates())
	for _, c := range g.Candidates() {
		assert.True(t, c.OnBoard(), "%v off board", c)
		assert.True(t, g.Board().IsEmpty(c), "%v occupied", c)
	}
}

func TestSelectEmptyOrOpponentStaysIdle(t *testing.T) {
	g, view, _ := newTestGame(t, Options{})
	g.Board().Set(cell(4, 4), types.Piece{Kind: types.Pawn, Owner: types.OpponentSide})

	g.OnCellActivated(cell(3, 3))
	assert.Equal(t, Idle, g.State())
	g.OnCellActivated(cell(4, 4))
	assert.Equal(t, Idle, g.State())
	assert.Empty(t, view.highlighted)
	assert.Empty(t, view.selected)
}

func TestOffBoardActivationIgnored(t *testing.T) {
	g, _, _ := newTestGame(t, Options{})
	g.OnCellActivated(cell(6, 0))
	g.OnCellActivated(cell(-1, 0))
	assert.Equal(t, Selected, g.State())
}

func TestCommitMove(t *testing.T) {
	view := newRecordingView()
	policy := &countingPolicy{}
	g := New(board.NewStandard(), view, policy, Options{})
	g.Render()
	pawn, _ := g.Board().Get(cell(6, 0))

	g.OnCellActivated(cell(6, 0))
	g.OnCellActivated(cell(5, 0))

	got, ok := g.Board().Get(cell(5, 0))
	require.True(t, ok)
	assert.Equal(t, pawn, got)
	assert.True(t, g.Board().IsEmpty(cell(6, 0)))
	assert.Equal(t, Idle, g.State())
	assert.Equal(t, 1, policy.calls)
	assert.Empty(t, view.highlighted)
	assert.Empty(t, view.selected)
	assert.Equal(t, pawn, view.pieces[cell(5, 0)])
	_, stillDrawn := view.pieces[cell(6, 0)]
	assert.False(t, stillDrawn)
}

func TestNonCandidateResets(t *testing.T) {
	g, view, policy := newTestGame(t, Options{})
	before := g.Board().Clone()

	g.OnCellActivated(cell(6, 0))
	g.OnCellActivated(cell(3, 3))

	assert.Equal(t, Idle, g.State())
	assert.Empty(t, view.highlighted)
	assert.Empty(t, view.selected)
	assert.Equal(t, before, g.Board())
	assert.Zero(t, policy.calls)
}

func TestReselectOtherOwnPiece(t *testing.T) {
	g, view, _ := newTestGame(t, Options{})
	g.OnCellActivated(cell(6, 0))
	g.OnCellActivated(cell(7, 1)) // knight

	require.Equal(t, Selected, g.State())
	sel, _ := g.Selection()
	assert.Equal(t, cell(7, 1), sel)
	assert.ElementsMatch(t, []types.Cell{cell(5, 0), cell(5, 2)}, g.Candidates())
	assert.Equal(t, map[types.Cell]bool{cell(7, 1): true}, view.selected)
	assert.NotContains(t, view.highlighted, cell(5, 1))
}

func TestClickSelectedPieceAgainKeepsSelection(t *testing.T) {
	g, _, _ := newTestGame(t, Options{})
	g.OnCellActivated(cell(6, 3))
	g.OnCellActivated(cell(6, 3))
	sel, ok := g.Selection()
	require.True(t, ok)
	assert.Equal(t, cell(6, 3), sel)
}

func TestSlidersJumpByDefault(t *testing.T) {
	g, _, _ := newTestGame(t, Options{})
	g.OnCellActivated(cell(7, 0)) // rook behind pawns
	assert.ElementsMatch(t, []types.Cell{cell(2, 0), cell(3, 0), cell(4, 0), cell(5, 0)}, g.Candidates())
}

func TestPathBlockingOption(t *testing.T) {
	g, view, _ := newTestGame(t, Options{PathBlocking: true})
	g.OnCellActivated(cell(7, 0))
	assert.Equal(t, Selected, g.State())
	assert.Empty(t, g.Candidates(), "rook should be boxed in")
	assert.Empty(t, view.highlighted)
}

func TestPolicyWithNoMove(t *testing.T) {
	policy := &countingPolicy{}
	g := New(board.NewStandard(), nil, policy, Options{})
	g.OnCellActivated(cell(6, 4))
	g.OnCellActivated(cell(5, 4))

	assert.Equal(t, 1, policy.calls)
	assert.Equal(t, 1, g.Log().Len())
	assert.Equal(t, 1, g.Turns().Ply())
	assert.Zero(t, g.Board().Count(types.OpponentSide))
	assert.Equal(t, types.PlayerSide, g.Turns().Active())
}

func TestTurnsReturnToPlayer(t *testing.T) {
	g, _, _ := newTestGame(t, Options{})
	g.OnCellActivated(cell(6, 4))
	g.OnCellActivated(cell(5, 4))
	assert.Equal(t, types.PlayerSide, g.Turns().Active())
	assert.Equal(t, 2, g.Turns().Ply())

	// The player may move again straight away.
	g.OnCellActivated(cell(5, 4))
	assert.Equal(t, Selected, g.State())
}

func TestOnChangeCalled(t *testing.T) {
	g, _, _ := newTestGame(t, Options{})
	n := 0
	g.OnChange(func() { n++ })
	g.OnCellActivated(cell(6, 0))
	g.OnCellActivated(cell(5, 0))
	assert.Equal(t, 2, n)
}

func TestEndToEndPawnAdvance(t *testing.T) {
	g, view, policy := newTestGame(t, Options{})
	emptyBefore := map[types.Cell]bool{}
	for _, c := range g.Board().EmptyCells() {
		emptyBefore[c] = true
	}

	g.OnCellActivated(cell(6, 0))
	require.Contains(t, g.Candidates(), cell(5, 0))
	g.OnCellActivated(cell(5, 0))

	p, ok := g.Board().Get(cell(5, 0))
	require.True(t, ok)
	assert.Equal(t, types.Piece{Kind: types.Pawn, Owner: types.PlayerSide}, p)
	assert.Equal(t, 1, policy.calls)
	assert.Equal(t, 1, g.Board().Count(types.OpponentSide))

	entries := g.Log().Entries()
	require.Len(t, entries, 2)
	drop := entries[1]
	assert.True(t, drop.Placement)
	assert.Equal(t, types.OpponentSide, drop.Side)
	// The vacated origin is empty again by the time the opponent answers.
	assert.True(t, emptyBefore[drop.To] || drop.To == cell(6, 0), "opponent piece must land on an empty cell")
	assert.NotEqual(t, cell(5, 0), drop.To)
	if drop.To != cell(6, 0) {
		assert.True(t, g.Board().IsEmpty(cell(6, 0)))
	}
	assert.Equal(t, drop.Piece, view.pieces[drop.To])
}
