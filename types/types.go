// Package types contains shared data structures for termchess-local.
package types

import (
	"fmt"
	"strings"
)

// BoardSize is the number of rows and columns on the board.
const BoardSize = 8

// Side is one of the two opposing parties.
type Side int

const (
	PlayerSide Side = iota
	OpponentSide
)

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == PlayerSide {
		return OpponentSide
	}
	return PlayerSide
}

func (s Side) String() string {
	switch s {
	case PlayerSide:
		return "player"
	case OpponentSide:
		return "opponent"
	}
	return fmt.Sprintf("Side(%d)", int(s))
}

// Kind tags a piece archetype. The zero value is NoKind.
type Kind int

const (
	NoKind Kind = iota
	Rook
	Knight
	Bishop
	Queen
	King
	Pawn
)

var kindNames = map[Kind]string{
	Rook:   "rook",
	Knight: "knight",
	Bishop: "bishop",
	Queen:  "queen",
	King:   "king",
	Pawn:   "pawn",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "none"
}

// Letter returns the upper-case algebraic letter for the kind, empty for pawns.
func (k Kind) Letter() string {
	switch k {
	case Rook:
		return "R"
	case Knight:
		return "N"
	case Bishop:
		return "B"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	return ""
}

// ParseKind converts a kind name such as "rook" or "Knight" to a Kind.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return NoKind, fmt.Errorf("unknown piece kind: %q", name)
}

// Kinds lists every piece kind in back-rank declaration order.
func Kinds() []Kind {
	return []Kind{Rook, Knight, Bishop, Queen, King, Pawn}
}

// Piece is a piece kind owned by one side.
type Piece struct {
	Kind  Kind
	Owner Side
}

func (p Piece) String() string {
	return fmt.Sprintf("%s %s", p.Owner, p.Kind)
}

// Cell addresses a board position. Row 0 is the top of the board.
type Cell struct {
	Row int
	Col int
}

// OnBoard reports whether both coordinates are in [0, BoardSize).
func (c Cell) OnBoard() bool {
	return c.Row >= 0 && c.Row < BoardSize && c.Col >= 0 && c.Col < BoardSize
}

// Offset returns the cell dr rows and dc columns away. The result may be off-board.
func (c Cell) Offset(dr, dc int) Cell {
	return Cell{Row: c.Row + dr, Col: c.Col + dc}
}

// String renders the cell in algebraic notation, (0,0) -> "a8", (7,7) -> "h1".
// Off-board cells render as raw coordinates.
func (c Cell) String() string {
	if !c.OnBoard() {
		return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
	}
	return fmt.Sprintf("%c%d", 'a'+rune(c.Col), BoardSize-c.Row)
}

// ParseCell converts algebraic notation such as "e2" to a Cell.
func ParseCell(s string) (Cell, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2 {
		return Cell{}, fmt.Errorf("invalid cell: %q", s)
	}
	col := int(s[0] - 'a')
	rank := int(s[1] - '0')
	c := Cell{Row: BoardSize - rank, Col: col}
	if !c.OnBoard() {
		return Cell{}, fmt.Errorf("cell out of bounds: %q", s)
	}
	return c, nil
}
