package movegen

import (
	"termchess-local/board"
	"termchess-local/types"
)

// Filter prunes a candidate sequence. Filters never modify their input.
type Filter func(cells []types.Cell) []types.Cell

// FilterOnBoard keeps the candidates with both coordinates in [0, 8).
func FilterOnBoard(cells []types.Cell) []types.Cell {
	return keep(cells, types.Cell.OnBoard)
}

// Chain applies filters left to right.
func Chain(filters ...Filter) Filter {
	return func(cells []types.Cell) []types.Cell {
		out := append([]types.Cell(nil), cells...)
		for _, f := range filters {
			out = f(out)
		}
		return out
	}
}

// EmptyOnly drops candidates that are occupied on b.
func EmptyOnly(b *board.Board) Filter {
	return func(cells []types.Cell) []types.Cell {
		return keep(cells, b.IsEmpty)
	}
}

// PathClear drops candidates whose straight or diagonal path from from passes
// over an occupied cell. Non-aligned candidates (knight hops) are kept.
func PathClear(b *board.Board, from types.Cell) Filter {
	return func(cells []types.Cell) []types.Cell {
		return keep(cells, func(to types.Cell) bool {
			return pathClear(b, from, to)
		})
	}
}

func pathClear(b *board.Board, from, to types.Cell) bool {
	dr, dc := to.Row-from.Row, to.Col-from.Col
	if dr != 0 && dc != 0 && abs(dr) != abs(dc) {
		return true
	}
	steps := max(abs(dr), abs(dc))
	sr, sc := sign(dr), sign(dc)
	for i := 1; i < steps; i++ {
		if _, occupied := b.Get(from.Offset(sr*i, sc*i)); occupied {
			return false
		}
	}
	return true
}

func keep(cells []types.Cell, pred func(types.Cell) bool) []types.Cell {
	out := make([]types.Cell, 0, len(cells))
	for _, c := range cells {
		if pred(c) {
			out = append(out, c)
		}
	}
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}
