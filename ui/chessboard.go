// Package ui specifies custom controls for tview to assist in playing chess in the terminal.
package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termchess-local/config"
	"termchess-local/game"
	"termchess-local/types"
)

const (
	cellWidth  = 3 // characters per square, glyph in the middle
	boardLeft  = 3 // columns reserved for rank labels
	boardRight = boardLeft + types.BoardSize*cellWidth
)

// squareView is what the board widget knows about one square. It is written
// only through the game.View methods.
type squareView struct {
	piece       types.Piece
	occupied    bool
	highlighted bool
	selected    bool
}

type ChessBoardUI struct {
	Box       *tview.Box
	hint      *tview.TextView
	cfg       *config.Config
	squares   [types.BoardSize][types.BoardSize]squareView
	selX      int
	selY      int
	game      *game.Game
	styles    []tcell.Color
	infoPanel *GameInfoPanel
	focusMode bool
	status    string
}

// ToggleFocusMode toggles focus mode and returns the new state.
func (g *ChessBoardUI) ToggleFocusMode() bool {
	g.focusMode = !g.focusMode
	g.refreshHint()
	return g.focusMode
}

// SetFocusMode sets focus mode to the given state.
func (g *ChessBoardUI) SetFocusMode(enabled bool) {
	g.focusMode = enabled
	g.refreshHint()
}


// CursorTile returns the cell under the keyboard cursor, or nil when hidden.
func (g *ChessBoardUI) CursorTile() *types.Cell {
	if g.selX == -1 && g.selY == -1 {
		return nil
	}
	return &types.Cell{Row: g.selY, Col: g.selX}
}

// MoveCursor moves the keyboard cursor h columns and v rows, clamping each
// axis to the board. The first move after the cursor was hidden places it on
// the last move, or the board centre.
func (g *ChessBoardUI) MoveCursor(h, v int) {
	if g.CursorTile() == nil {
		g.selX, g.selY = types.BoardSize/2, types.BoardSize-2
		if last, ok := g.lastMove(); ok {
			g.selX, g.selY = last.Col, last.Row
		}
		return
	}
	g.selX = clamp(g.selX+h, 0, types.BoardSize-1)
	g.selY = clamp(g.selY+v, 0, types.BoardSize-1)
}

// SetCursor places the keyboard cursor on c. Off-board cells are ignored.
func (g *ChessBoardUI) SetCursor(c types.Cell) {
	if c.OnBoard() {
		g.selX, g.selY = c.Col, c.Row
	}
}

func clamp(n, lo, hi int) int {
	return min(max(n, lo), hi)
}

// HideCursor hides the keyboard cursor.
func (g *ChessBoardUI) HideCursor() {
	g.selX = -1
	g.selY = -1
}

func NewChessBoard(c *config.Config, hint *tview.TextView) *ChessBoardUI {
	chessBoard := &ChessBoardUI{
		Box:  tview.NewBox(),
		hint: hint,
		selX: -1,
		selY: -1,
	}
	chessBoard.SetConfig(c)
	chessBoard.Box.SetDrawFunc(func(screen tcell.Screen, x int, y int, width int, height int) (int, int, int, int) {
		last, hasLast := chessBoard.lastMove()
		for row := 0; row < types.BoardSize; row++ {
			for col := 0; col < types.BoardSize; col++ {
				cell := types.Cell{Row: row, Col: col}
				sq := chessBoard.squares[row][col]
				style := tcell.StyleDefault.
					Background(chessBoard.squareColor(cell, sq, hasLast && last == cell)).
					Foreground(chessBoard.styles[2])
				drawRune := ' '
				switch {
				case sq.occupied:
					drawRune = chessBoard.cfg.Theme.Glyph(sq.piece)
					if sq.piece.Owner == types.OpponentSide {
						style = style.Foreground(chessBoard.styles[3])
					}
				case sq.highlighted:
					drawRune = chessBoard.cfg.Theme.Symbols.Highlight
				}
				drawSquare(screen, style, drawRune, x+boardLeft+col*cellWidth, y+row)
			}
		}
		if chessBoard.cfg.Theme.ShowCoordinates {
			drawCoordinates(screen, x, y, chessBoard)
		}
		return x, y, boardRight, types.BoardSize + 1
	})
	chessBoard.Box.SetMouseCapture(func(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
		if action != tview.MouseLeftClick || !chessBoard.Box.InRect(event.Position()) {
			return action, event
		}
		bx, by, _, _ := chessBoard.Box.GetInnerRect()
		mx, my := event.Position()
		if cell, ok := cellAt(mx-bx, my-by); ok {
			chessBoard.SetCursor(cell)
			chessBoard.Activate()
		}
		return action, nil
	})
	return chessBoard
}

// cellAt maps a position relative to the board origin to a cell.
func cellAt(px, py int) (types.Cell, bool) {
	if px < boardLeft || px >= boardRight || py < 0 {
		return types.Cell{}, false
	}
	c := types.Cell{Row: py, Col: (px - boardLeft) / cellWidth}
	return c, c.OnBoard()
}

// squareColor picks the background: cursor, then selection, then candidate,
// then last move, then the checkerboard shade.
func (g *ChessBoardUI) squareColor(c types.Cell, sq squareView, isLast bool) tcell.Color {
	theme := g.cfg.Theme
	switch {
	case c.Col == g.selX && c.Row == g.selY && theme.DrawCursorBackground:
		return g.styles[4]
	case sq.selected:
		return g.styles[5]
	case sq.highlighted:
		return g.styles[6]
	case isLast && theme.DrawLastMoveBackground:
		return g.styles[7]
	case (c.Row+c.Col)%2 == 1:
		return g.styles[1]
	}
	return g.styles[0]
}

// Connect attaches the board to a game and paints its current state.
func (g *ChessBoardUI) Connect(gm *game.Game) {
	g.squares = [types.BoardSize][types.BoardSize]squareView{}
	g.game = gm
	g.status = ""
	g.HideCursor()
	gm.OnChange(g.refreshHint)
	gm.Render()
	g.refreshHint()
}

// Game returns the connected game, or nil.
func (g *ChessBoardUI) Game() *game.Game {
	return g.game
}

// Activate forwards the cursor cell to the game.
func (g *ChessBoardUI) Activate() {
	tile := g.CursorTile()
	if tile == nil || g.game == nil {
		return
	}
	g.status = ""
	g.game.OnCellActivated(*tile)
}

// ClearSelection drops the current piece selection, if any.
func (g *ChessBoardUI) ClearSelection() bool {
	if g.game == nil || g.game.State() != game.Selected {
		return false
	}
	g.game.ResetSelection()
	g.refreshHint()
	return true
}

// SetStatus shows a one-off message in the hint until the next activation.
func (g *ChessBoardUI) SetStatus(msg string) {
	g.status = msg
	g.refreshHint()
}

// RenderPiece implements game.View.
func (g *ChessBoardUI) RenderPiece(c types.Cell, p types.Piece, occupied bool) {
	if !c.OnBoard() {
		return
	}
	sq := &g.squares[c.Row][c.Col]
	sq.piece, sq.occupied = p, occupied
}

// SetHighlighted implements game.View.
func (g *ChessBoardUI) SetHighlighted(c types.Cell, on bool) {
	if c.OnBoard() {
		g.squares[c.Row][c.Col].highlighted = on
	}
}

// SetSelected implements game.View.
func (g *ChessBoardUI) SetSelected(c types.Cell, on bool) {
	if c.OnBoard() {
		g.squares[c.Row][c.Col].selected = on
	}
}

// Highlighted returns the cells currently marked as candidates.
func (g *ChessBoardUI) Highlighted() []types.Cell {
	var cells []types.Cell
	for row := range g.squares {
		for col, sq := range g.squares[row] {
			if sq.highlighted {
				cells = append(cells, types.Cell{Row: row, Col: col})
			}
		}
	}
	return cells
}

func (g *ChessBoardUI) SetConfig(c *config.Config) {
	g.styles = []tcell.Color{
		tcell.PaletteColor(c.Theme.Colors.LightSquare),   // 0
		tcell.PaletteColor(c.Theme.Colors.DarkSquare),    // 1
		tcell.PaletteColor(c.Theme.Colors.PlayerPiece),   // 2
		tcell.PaletteColor(c.Theme.Colors.OpponentPiece), // 3
		tcell.PaletteColor(c.Theme.Colors.CursorBG),      // 4
		tcell.PaletteColor(c.Theme.Colors.SelectedBG),    // 5
		tcell.PaletteColor(c.Theme.Colors.HighlightBG),   // 6
		tcell.PaletteColor(c.Theme.Colors.LastMoveBG),    // 7
	}
	g.cfg = c
}

func (g *ChessBoardUI) lastMove() (types.Cell, bool) {
	if g.game == nil {
		return types.Cell{}, false
	}
	last, ok := g.game.Log().Last()
	return last.To, ok
}

func (g *ChessBoardUI) refreshHint() {
	if g.infoPanel != nil {
		g.infoPanel.SetGame(g.game)
	}

	if g.focusMode {
		g.hint.SetText("  f to toggle")
		return
	}

	var statusLine, turnLine string
	if g.status != "" {
		statusLine = fmt.Sprintf("  %s\n", g.status)
	}

	switch {
	case g.game == nil:
		turnLine = "  No game\n"
	case g.game.Turns().Active() != types.PlayerSide:
		turnLine = "  ◌ Opponent thinking...\n"
	case g.game.State() == game.Selected:
		sel, _ := g.game.Selection()
		p, _ := g.game.Board().Get(sel)
		turnLine = fmt.Sprintf("  %c %s selected · %d targets\n", g.cfg.Theme.Glyph(p), sel, len(g.game.Candidates()))
	default:
		turnLine = "  ♟ Your move\n"
	}

	controlsLine := `  hjkl/↑↓←→ move   ⏎/space select   e export   f focus   q back`

	g.hint.SetText(fmt.Sprintf("%s%s%s", statusLine, turnLine, controlsLine))
}

// drawSquare draws one square (cellWidth characters wide) with the glyph centred.
func drawSquare(s tcell.Screen, c tcell.Style, r rune, l, t int) {
	s.SetContent(l, t, ' ', nil, c)
	s.SetContent(l+1, t, r, nil, c)
	s.SetContent(l+2, t, ' ', nil, c)
}

func drawCoordinates(s tcell.Screen, x, y int, ui *ChessBoardUI) {
	style := tcell.StyleDefault
	highlight := tcell.StyleDefault.Background(ui.styles[4])

	for col := 0; col < types.BoardSize; col++ {
		_style := style
		if col == ui.selX {
			_style = highlight
		}
		s.SetContent(x+boardLeft+col*cellWidth, y+types.BoardSize, ' ', nil, _style)
		s.SetContent(x+boardLeft+col*cellWidth+1, y+types.BoardSize, 'a'+rune(col), nil, _style)
		s.SetContent(x+boardLeft+col*cellWidth+2, y+types.BoardSize, ' ', nil, _style)
	}

	for row := 0; row < types.BoardSize; row++ {
		_style := style
		if row == ui.selY {
			_style = highlight
		}
		s.SetContent(x+1, y+row, rune('0'+types.BoardSize-row), nil, _style)
	}
}
