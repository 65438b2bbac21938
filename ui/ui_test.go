package ui

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termchess-local/board"
	"termchess-local/config"
	"termchess-local/game"
	"termchess-local/types"
)

func TestCellAt(t *testing.T) {
	tests := []struct {
		px, py int
		want   types.Cell
		ok     bool
	}{
		{boardLeft, 0, types.Cell{Row: 0, Col: 0}, true},
		{boardLeft + 2, 0, types.Cell{Row: 0, Col: 0}, true},
		{boardLeft + cellWidth, 3, types.Cell{Row: 3, Col: 1}, true},
		{boardRight - 1, 7, types.Cell{Row: 7, Col: 7}, true},
		{boardRight, 0, types.Cell{}, false},
		{0, 0, types.Cell{}, false},
		{boardLeft, 8, types.Cell{}, false},
		{boardLeft, -1, types.Cell{}, false},
	}
	for _, tt := range tests {
		got, ok := cellAt(tt.px, tt.py)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("cellAt(%d,%d) = %v,%v want %v,%v", tt.px, tt.py, got, ok, tt.want, tt.ok)
		}
	}
}

func newTestBoard() *ChessBoardUI {
	cfg := config.DefaultConfig.Clone()
	return NewChessBoard(&cfg, tview.NewTextView())
}

func TestBoardViewFollowsGame(t *testing.T) {
	ui := newTestBoard()
	g := game.New(board.NewStandard(), ui, nil, game.Options{})
	ui.Connect(g)

	if !ui.squares[6][0].occupied {
		t.Fatal("connect should paint the starting pieces")
	}

	ui.MoveCursor(0, 0) // show cursor
	ui.selX, ui.selY = 0, 6
	ui.Activate()
	if got := len(ui.Highlighted()); got != 2 {
		t.Fatalf("expected 2 highlighted squares, got %d", got)
	}
	if !ui.squares[6][0].selected {
		t.Fatal("origin should be marked selected")
	}

	ui.MoveCursor(0, -1)
	ui.Activate()
	if ui.squares[6][0].occupied || !ui.squares[5][0].occupied {
		t.Fatal("pawn should have moved from a2 to a3")
	}
	if len(ui.Highlighted()) != 0 || ui.squares[6][0].selected {
		t.Fatal("markers should be cleared after the move")
	}
}

func TestMoveCursorStaysOnBoard(t *testing.T) {
	ui := newTestBoard()
	ui.MoveCursor(1, 0)
	if ui.CursorTile() == nil {
		t.Fatal("first move should show the cursor")
	}
	for i := 0; i < 20; i++ {
		ui.MoveCursor(-1, -1)
	}
	if tile := ui.CursorTile(); *tile != (types.Cell{Row: 0, Col: 0}) {
		t.Fatalf("cursor should clamp at a8, got %v", *tile)
	}
	ui.MoveCursor(1, -1)
	if tile := ui.CursorTile(); *tile != (types.Cell{Row: 0, Col: 1}) {
		t.Fatalf("diagonal step at the edge should slide to b8, got %v", *tile)
	}
	ui.HideCursor()
	if ui.CursorTile() != nil {
		t.Fatal("cursor should be hidden")
	}
}

func TestClearSelection(t *testing.T) {
	ui := newTestBoard()
	g := game.New(board.NewStandard(), ui, nil, game.Options{})
	ui.Connect(g)
	if ui.ClearSelection() {
		t.Fatal("nothing selected yet")
	}
	g.OnCellActivated(types.Cell{Row: 7, Col: 1})
	if !ui.ClearSelection() {
		t.Fatal("expected the selection to be cleared")
	}
	if g.State() != game.Idle || len(ui.Highlighted()) != 0 {
		t.Fatal("game should be idle with no highlights")
	}
}

func TestWriteSVG(t *testing.T) {
	var buf bytes.Buffer
	theme := config.DefaultConfig.Clone().Theme
	b := board.NewStandard()
	b.Set(types.Cell{Row: 4, Col: 4}, types.Piece{Kind: types.Pawn, Owner: types.OpponentSide})
	WriteSVG(&buf, b, theme, []types.Cell{{Row: 5, Col: 0}})

	out := buf.String()
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Fatal("output should be a complete svg document")
	}
	if got := strings.Count(out, "♟"); got != 16 {
		t.Fatalf("expected 16 player pawns, got %d", got)
	}
	if !strings.Contains(out, "♙") {
		t.Fatal("opponent pawn should be drawn")
	}
	if !strings.Contains(out, paletteHex(theme.Colors.HighlightBG)) {
		t.Fatal("highlighted square should use the highlight color")
	}
}

func TestExportSVG(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "snaps")
	path, err := ExportSVG(dir, board.NewStandard(), config.DefaultTheme, nil)
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(path, ".svg") || !bytes.Contains(data, []byte("<svg")) {
		t.Fatalf("unexpected snapshot %s", path)
	}
}

func TestSetCursorIgnoresOffBoard(t *testing.T) {
	ui := newTestBoard()
	ui.SetCursor(types.Cell{Row: 6, Col: 4})
	ui.SetCursor(types.Cell{Row: 8, Col: 0})
	if tile := ui.CursorTile(); tile == nil || *tile != (types.Cell{Row: 6, Col: 4}) {
		t.Fatalf("cursor should stay on e2, got %v", tile)
	}
}

func TestColorListKeepsUnlistedColor(t *testing.T) {
	cfg := config.DefaultConfig.Clone()
	cfg.Theme.Colors.LightSquare = 231
	cc := NewColorConfig(&cfg, func() {}, nil)
	cc.ToggleMode()
	cc.ToggleMode()
	if cc.selectedLight != 231 {
		t.Fatalf("expected light square 231 to survive repopulating, got %d", cc.selectedLight)
	}

	cc.colorList.SetCurrentItem(2)
	if cc.selectedLight != lightColors[2].code {
		t.Fatalf("moving the list cursor should update the preview, got %d", cc.selectedLight)
	}
}

func TestMouseClickActivatesCell(t *testing.T) {
	ui := newTestBoard()
	g := game.New(board.NewStandard(), ui, nil, game.Options{})
	ui.Connect(g)
	ui.Box.SetRect(0, 0, 40, 10)

	click := tcell.NewEventMouse(boardLeft+1, 6, tcell.Button1, tcell.ModNone)
	ui.Box.MouseHandler()(tview.MouseLeftClick, click, func(tview.Primitive) {})
	if sel, ok := g.Selection(); !ok || sel != (types.Cell{Row: 6, Col: 0}) {
		t.Fatalf("expected a2 selected, got %v %v", sel, ok)
	}
}
