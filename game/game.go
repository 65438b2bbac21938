// Package game implements the selection and move state machine that sits
// between the board store and the presentation layer.
package game

import (
	"io"
	"log"

	"termchess-local/board"
	"termchess-local/engine"
	"termchess-local/history"
	"termchess-local/movegen"
	"termchess-local/types"
)

var debugLog = log.New(io.Discard, "game: ", log.Ltime|log.Lmicroseconds)

// SetDebugOutput redirects the package debug log.
func SetDebugOutput(w io.Writer) {
	debugLog.SetOutput(w)
}

// State is the selection state.
type State int

const (
	Idle State = iota
	Selected
)

func (s State) String() string {
	if s == Selected {
		return "selected"
	}
	return "idle"
}

// View receives the desired visual state. It owns no game logic.
type View interface {
	// RenderPiece draws p on c, or clears c when occupied is false.
	RenderPiece(c types.Cell, p types.Piece, occupied bool)
	SetHighlighted(c types.Cell, on bool)
	SetSelected(c types.Cell, on bool)
}

// NopView discards every update.
type NopView struct{}

func (NopView) RenderPiece(types.Cell, types.Piece, bool) {}
func (NopView) SetHighlighted(types.Cell, bool)           {}
func (NopView) SetSelected(types.Cell, bool)              {}

// Options tunes legality beyond the on-board check.
type Options struct {
	// PathBlocking stops sliding pieces at the first occupied cell.
	PathBlocking bool
}

// Game owns the board store for one session. It is driven from a single
// goroutine; OnCellActivated must not be called concurrently.
type Game struct {
	board      *board.Board
	view       View
	turns      *Turns
	log        *history.Log
	opts       Options
	state      State
	selected   types.Cell
	candidates []types.Cell
	onChange   func()
}

// New creates a game on b. A nil view discards updates.
func New(b *board.Board, view View, policy engine.Policy, opts Options) *Game {
	if view == nil {
		view = NopView{}
	}
	return &Game{
		board: b,
		view:  view,
		turns: NewTurns(policy),
		log:   history.NewLog(),
		opts:  opts,
	}
}

// OnChange registers a callback invoked after every activation.
func (g *Game) OnChange(fn func()) {
	g.onChange = fn
}

// Render pushes every cell of the board to the view.
func (g *Game) Render() {
	g.board.Each(func(c types.Cell, p types.Piece, occupied bool) {
		g.view.RenderPiece(c, p, occupied)
	})
}

// OnCellActivated is the single entry point for user interaction.
func (g *Game) OnCellActivated(c types.Cell) {
	if !c.OnBoard() {
		return
	}
	defer g.changed()

	if g.state == Selected {
		if g.isCandidate(c) {
			g.commit(c)
			return
		}
		debugLog.Printf("OnCellActivated: %s is not a candidate, resetting", c)
		g.ResetSelection()
	}
	g.trySelect(c)
}

// ResetSelection returns to Idle and clears every marker.
func (g *Game) ResetSelection() {
	if g.state != Selected {
		return
	}
	for _, c := range g.candidates {
		g.view.SetHighlighted(c, false)
	}
	g.view.SetSelected(g.selected, false)
	g.state = Idle
	g.candidates = nil
}

// CandidatesFor returns the highlighted destinations a piece on c would get,
// without changing the selection.
func (g *Game) CandidatesFor(c types.Cell) []types.Cell {
	p, ok := g.board.Get(c)
	if !ok {
		return nil
	}
	filters := []movegen.Filter{movegen.FilterOnBoard}
	if g.opts.PathBlocking {
		filters = append(filters, movegen.PathClear(g.board, c))
	}
	filters = append(filters, movegen.EmptyOnly(g.board))
	return movegen.Chain(filters...)(movegen.MovesFor(p, c))
}

func (g *Game) trySelect(c types.Cell) {
	p, ok := g.board.Get(c)
	if !ok || p.Owner != types.PlayerSide || g.turns.Active() != types.PlayerSide {
		return
	}
	g.state = Selected
	g.selected = c
	g.candidates = g.CandidatesFor(c)
	g.view.SetSelected(c, true)
	for _, m := range g.candidates {
		g.view.SetHighlighted(m, true)
	}
	debugLog.Printf("trySelect: %s at %s, %d candidates", p, c, len(g.candidates))
}

func (g *Game) commit(to types.Cell) {
	from := g.selected
	p, _ := g.board.Get(from)

	g.board.Move(from, to)
	g.view.RenderPiece(from, types.Piece{}, false)
	g.view.RenderPiece(to, p, true)
	g.ResetSelection()
	g.log.Add(history.Entry{Side: types.PlayerSide, Piece: p, From: from, To: to})
	debugLog.Printf("commit: %s %s -> %s", p, from, to)

	m, ok := g.turns.PlayerMoved(g.board)
	if !ok {
		return
	}
	if !m.Placement {
		g.view.RenderPiece(m.From, types.Piece{}, false)
	}
	g.view.RenderPiece(m.To, m.Piece, true)
	g.log.Add(history.Entry{Side: types.OpponentSide, Piece: m.Piece, From: m.From, To: m.To, Placement: m.Placement})
	debugLog.Printf("commit: opponent answered with %s at %s", m.Piece, m.To)
}

func (g *Game) isCandidate(c types.Cell) bool {
	for _, m := range g.candidates {
		if m == c {
			return true
		}
	}
	return false
}

func (g *Game) changed() {
	if g.onChange != nil {
		g.onChange()
	}
}

// State returns the current selection state.
func (g *Game) State() State {
	return g.state
}

// Selection returns the selected cell. ok is false when Idle.
func (g *Game) Selection() (types.Cell, bool) {
	return g.selected, g.state == Selected
}

// Candidates returns a copy of the highlighted cells.
func (g *Game) Candidates() []types.Cell {
	return append([]types.Cell(nil), g.candidates...)
}

// Board returns the board store.
func (g *Game) Board() *board.Board {
	return g.board
}

// Turns returns the turn controller.
func (g *Game) Turns() *Turns {
	return g.turns
}

// Log returns the move log.
func (g *Game) Log() *history.Log {
	return g.log
}
