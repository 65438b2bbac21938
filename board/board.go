// Package board holds the authoritative 8x8 grid of pieces.
package board

import "termchess-local/types"

type square struct {
	piece    types.Piece
	occupied bool
}

// Board is indexed as squares[row][col]. It is mutated in place and is not
// safe for concurrent use; callers drive it from a single goroutine.
type Board struct {
	squares [types.BoardSize][types.BoardSize]square
}

// BackRank is the piece order along rows 0 and 7 of the starting layout.
var BackRank = [types.BoardSize]types.Kind{
	types.Rook, types.Knight, types.Bishop, types.Queen,
	types.King, types.Bishop, types.Knight, types.Rook,
}

// New creates an empty board.
func New() *Board {
	return &Board{}
}

// NewStandard creates the starting layout: player pieces on the back ranks
// (rows 0 and 7) and pawn ranks (rows 1 and 6). The opponent starts with nothing.
func NewStandard() *Board {
	b := New()
	for col := 0; col < types.BoardSize; col++ {
		for _, row := range []int{0, types.BoardSize - 1} {
			b.Set(types.Cell{Row: row, Col: col}, types.Piece{Kind: BackRank[col], Owner: types.PlayerSide})
		}
		for _, row := range []int{1, types.BoardSize - 2} {
			b.Set(types.Cell{Row: row, Col: col}, types.Piece{Kind: types.Pawn, Owner: types.PlayerSide})
		}
	}
	return b
}

// Get returns the piece at c. ok is false for empty or off-board cells.
func (b *Board) Get(c types.Cell) (types.Piece, bool) {
	if !c.OnBoard() {
		return types.Piece{}, false
	}
	sq := b.squares[c.Row][c.Col]
	return sq.piece, sq.occupied
}

// Set overwrites the cell with p. No ownership or occupancy check is made.
func (b *Board) Set(c types.Cell, p types.Piece) {
	if !c.OnBoard() {
		return
	}
	b.squares[c.Row][c.Col] = square{piece: p, occupied: true}
}

// Clear empties the cell.
func (b *Board) Clear(c types.Cell) {
	if !c.OnBoard() {
		return
	}
	b.squares[c.Row][c.Col] = square{}
}

// IsEmpty reports whether c is an on-board cell holding no piece.
func (b *Board) IsEmpty(c types.Cell) bool {
	if !c.OnBoard() {
		return false
	}
	return !b.squares[c.Row][c.Col].occupied
}

// Move copies the piece at from onto to and clears from. It reports false
// and leaves the board untouched when from is empty.
func (b *Board) Move(from, to types.Cell) bool {
	p, ok := b.Get(from)
	if !ok || !to.OnBoard() {
		return false
	}
	b.Set(to, p)
	b.Clear(from)
	return true
}

// EmptyCells returns every empty cell in row-major order.
func (b *Board) EmptyCells() []types.Cell {
	var cells []types.Cell
	b.Each(func(c types.Cell, _ types.Piece, occupied bool) {
		if !occupied {
			cells = append(cells, c)
		}
	})
	return cells
}

// Count returns the number of pieces owned by side.
func (b *Board) Count(side types.Side) int {
	n := 0
	b.Each(func(_ types.Cell, p types.Piece, occupied bool) {
		if occupied && p.Owner == side {
			n++
		}
	})
	return n
}

// Each calls fn for all 64 cells in row-major order.
func (b *Board) Each(fn func(c types.Cell, p types.Piece, occupied bool)) {
	for row := 0; row < types.BoardSize; row++ {
		for col := 0; col < types.BoardSize; col++ {
			sq := b.squares[row][col]
			fn(types.Cell{Row: row, Col: col}, sq.piece, sq.occupied)
		}
	}
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}
