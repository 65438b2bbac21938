// Package movegen maps a piece at a cell to its candidate destinations.
//
// Generators return raw (row, col) pairs with no bounds checking; callers
// prune them with FilterOnBoard or a Chain of filters.
package movegen

import "termchess-local/types"

// Generator produces raw candidate destinations for a piece standing on from.
type Generator func(from types.Cell, owner types.Side) []types.Cell

var generators = map[types.Kind]Generator{
	types.Rook:   func(from types.Cell, _ types.Side) []types.Cell { return Rook(from) },
	types.Knight: func(from types.Cell, _ types.Side) []types.Cell { return Knight(from) },
	types.Bishop: func(from types.Cell, _ types.Side) []types.Cell { return Bishop(from) },
	types.Queen:  func(from types.Cell, _ types.Side) []types.Cell { return Queen(from) },
	types.King:   func(from types.Cell, _ types.Side) []types.Cell { return King(from) },
	types.Pawn:   Pawn,
}

var knightOffsets = [8][2]int{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

var kingOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

var diagonals = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

// MovesFor returns the raw candidates for p standing on from.
// Unknown kinds yield nil.
func MovesFor(p types.Piece, from types.Cell) []types.Cell {
	gen, ok := generators[p.Kind]
	if !ok {
		return nil
	}
	return gen(from, p.Owner)
}

// Rook returns every other cell sharing the row or column of from.
func Rook(from types.Cell) []types.Cell {
	moves := make([]types.Cell, 0, 2*(types.BoardSize-1))
	for i := 0; i < types.BoardSize; i++ {
		if i != from.Row {
			moves = append(moves, types.Cell{Row: i, Col: from.Col})
		}
		if i != from.Col {
			moves = append(moves, types.Cell{Row: from.Row, Col: i})
		}
	}
	return moves
}

// Knight returns the eight L-shaped hops from from.
func Knight(from types.Cell) []types.Cell {
	return offsets(from, knightOffsets[:])
}

// Bishop returns cells at distance 1..7 along all four diagonals.
func Bishop(from types.Cell) []types.Cell {
	moves := make([]types.Cell, 0, 4*(types.BoardSize-1))
	for i := 1; i < types.BoardSize; i++ {
		for _, d := range diagonals {
			moves = append(moves, from.Offset(d[0]*i, d[1]*i))
		}
	}
	return moves
}

// Queen is the rook candidates followed by the bishop candidates.
func Queen(from types.Cell) []types.Cell {
	return append(Rook(from), Bishop(from)...)
}

// King returns the eight neighbours of from.
func King(from types.Cell) []types.Cell {
	return offsets(from, kingOffsets[:])
}

// Pawn returns straight ahead, forward-left and forward-right. Forward is
// up the board (-1 row) for the player and down (+1 row) for the opponent.
func Pawn(from types.Cell, owner types.Side) []types.Cell {
	forward := Forward(owner)
	return []types.Cell{
		from.Offset(forward, 0),
		from.Offset(forward, -1),
		from.Offset(forward, 1),
	}
}

// Forward returns the row direction pawns of side advance in.
func Forward(side types.Side) int {
	if side == types.PlayerSide {
		return -1
	}
	return 1
}

func offsets(from types.Cell, deltas [][2]int) []types.Cell {
	moves := make([]types.Cell, 0, len(deltas))
	for _, d := range deltas {
		moves = append(moves, from.Offset(d[0], d[1]))
	}
	return moves
}
