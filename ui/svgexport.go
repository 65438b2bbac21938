package ui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	svg "github.com/ajstarks/svgo"
	"github.com/gdamore/tcell/v2"

	"termchess-local/board"
	"termchess-local/config"
	"termchess-local/types"
)

const (
	svgSquare = 48
	svgMargin = 20
)

// WriteSVG renders b as an SVG image using the theme's colors and glyphs.
// Cells in highlighted get the candidate background.
func WriteSVG(w io.Writer, b *board.Board, theme config.Theme, highlighted []types.Cell) {
	marked := make(map[types.Cell]bool, len(highlighted))
	for _, c := range highlighted {
		marked[c] = true
	}

	side := types.BoardSize*svgSquare + 2*svgMargin
	canvas := svg.New(w)
	canvas.Start(side, side)
	canvas.Rect(0, 0, side, side, "fill:white")

	glyphStyle := fmt.Sprintf("text-anchor:middle;dominant-baseline:central;font-size:%dpx", svgSquare*3/4)
	labelStyle := "text-anchor:middle;dominant-baseline:central;font-size:12px;fill:#555555"

	b.Each(func(c types.Cell, p types.Piece, occupied bool) {
		px := svgMargin + c.Col*svgSquare
		py := svgMargin + c.Row*svgSquare

		fill := theme.Colors.LightSquare
		if (c.Row+c.Col)%2 == 1 {
			fill = theme.Colors.DarkSquare
		}
		if marked[c] {
			fill = theme.Colors.HighlightBG
		}
		canvas.Rect(px, py, svgSquare, svgSquare, "fill:"+paletteHex(fill))

		if !occupied {
			return
		}
		color := theme.Colors.PlayerPiece
		if p.Owner == types.OpponentSide {
			color = theme.Colors.OpponentPiece
		}
		canvas.Text(px+svgSquare/2, py+svgSquare/2, string(theme.Glyph(p)),
			glyphStyle+";fill:"+paletteHex(color))
	})

	for i := 0; i < types.BoardSize; i++ {
		mid := svgMargin + i*svgSquare + svgSquare/2
		canvas.Text(mid, side-svgMargin/2, string(rune('a'+i)), labelStyle)
		canvas.Text(svgMargin/2, mid, fmt.Sprint(types.BoardSize-i), labelStyle)
	}

	canvas.End()
}

// ExportSVG writes a timestamped snapshot into dir and returns its path.
func ExportSVG(dir string, b *board.Board, theme config.Theme, highlighted []types.Cell) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create snapshot dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("termchess_%s.svg", time.Now().Format("2006-01-02_150405")))
	if err := WriteSVGFile(path, b, theme, highlighted); err != nil {
		return "", err
	}
	return path, nil
}

// WriteSVGFile renders b into the file at path, replacing it.
func WriteSVGFile(path string, b *board.Board, theme config.Theme, highlighted []types.Cell) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	WriteSVG(f, b, theme, highlighted)
	if err := f.Close(); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// paletteHex converts a 256-color palette index to a CSS hex color.
func paletteHex(code int) string {
	hex := tcell.PaletteColor(code).Hex()
	if hex < 0 {
		return "#000000"
	}
	return fmt.Sprintf("#%06x", hex)
}
