package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termchess-local/config"
	"termchess-local/types"
)

// ColorConfigUI provides a square color configuration screen with live preview.
type ColorConfigUI struct {
	flex      *tview.Flex
	colorList *tview.List
	preview   *tview.Box
	cfg       *config.Config
	onDone    func()
	onError   func(error)

	selectedLight int
	selectedDark  int
	editingDark   bool
}

type paletteEntry struct {
	code int
	name string
}

// Light square candidates
var lightColors = []paletteEntry{
	{255, "White"},
	{230, "Light Cream"},
	{229, "Pale Yellow"},
	{223, "Peach"},
	{188, "Light Beige"},
	{252, "Light Gray"},
	{194, "Mint"},
	{195, "Ice"},
}

// Dark square candidates
var darkColors = []paletteEntry{
	{253, "Soft Gray"},
	{250, "Gray"},
	{180, "Tan"},
	{179, "Light Brown"},
	{137, "Walnut"},
	{94, "Saddle Brown"},
	{108, "Sage"},
	{67, "Steel Blue"},
	{96, "Plum"},
}

// NewColorConfig creates a new color configuration screen.
func NewColorConfig(cfg *config.Config, onDone func(), onError func(error)) *ColorConfigUI {
	cc := &ColorConfigUI{
		cfg:           cfg,
		onDone:        onDone,
		onError:       onError,
		selectedLight: cfg.Theme.Colors.LightSquare,
		selectedDark:  cfg.Theme.Colors.DarkSquare,
	}

	cc.colorList = tview.NewList()
	cc.colorList.SetBorder(true)
	cc.colorList.ShowSecondaryText(false)
	cc.colorList.SetBorderColor(MenuColors.Border)
	cc.colorList.SetMainTextStyle(tcell.StyleDefault.Foreground(MenuColors.Label))
	cc.colorList.SetSelectedStyle(tcell.StyleDefault.
		Foreground(MenuColors.ButtonText).
		Background(MenuColors.ButtonFocus))
	cc.populateColorList()

	// Enter applies and saves
	cc.colorList.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		cc.cfg.Theme.Colors.LightSquare = cc.selectedLight
		cc.cfg.Theme.Colors.DarkSquare = cc.selectedDark
		if err := cc.cfg.Save(); err != nil && cc.onError != nil {
			cc.onError(err)
		}
		if !cc.editingDark {
			cc.editingDark = true
			cc.populateColorList()
			return
		}
		cc.editingDark = false
		cc.populateColorList()
		onDone()
	})

	cc.preview = tview.NewBox()
	cc.preview.SetBorder(true)
	cc.preview.SetBorderColor(MenuColors.Border)
	cc.preview.SetTitle(" Board Preview ")
	cc.preview.SetDrawFunc(cc.drawPreview)

	cc.flex = tview.NewFlex().
		AddItem(cc.colorList, 30, 0, true).
		AddItem(cc.preview, 0, 1, false)

	return cc
}

// previewChanged moves the preview to the entry under the list cursor.
func (cc *ColorConfigUI) previewChanged(index int, mainText, secondaryText string, shortcut rune) {
	entries := cc.entries()
	if index < 0 || index >= len(entries) {
		return
	}
	if cc.editingDark {
		cc.selectedDark = entries[index].code
	} else {
		cc.selectedLight = entries[index].code
	}
}

func (cc *ColorConfigUI) entries() []paletteEntry {
	if cc.editingDark {
		return darkColors
	}
	return lightColors
}

// populateColorList fills the list for the square shade being edited. The
// changed func is detached while items are added so a color missing from the
// palette keeps its configured value.
func (cc *ColorConfigUI) populateColorList() {
	cc.colorList.SetChangedFunc(nil)
	defer cc.colorList.SetChangedFunc(cc.previewChanged)
	cc.colorList.Clear()

	current := cc.selectedLight
	cc.colorList.SetTitle(" Light Squares (Tab: dark) ")
	if cc.editingDark {
		current = cc.selectedDark
		cc.colorList.SetTitle(" Dark Squares (Tab: light) ")
	}

	for i, c := range cc.entries() {
		cc.colorList.AddItem(fmt.Sprintf("[#%06x]████[-] %s (%d)",
			tcell.PaletteColor(c.code).Hex(), c.name, c.code),
			"", rune('a'+i), nil)
	}
	for i, c := range cc.entries() {
		if c.code == current {
			cc.colorList.SetCurrentItem(i)
			break
		}
	}
}

func (cc *ColorConfigUI) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	const size = 6
	startX := x + 2
	startY := y + 1

	if width < size*cellWidth+4 || height < size+4 {
		return x, y, width, height
	}

	light := tcell.PaletteColor(cc.selectedLight)
	dark := tcell.PaletteColor(cc.selectedDark)
	player := tcell.PaletteColor(cc.cfg.Theme.Colors.PlayerPiece)
	opponent := tcell.PaletteColor(cc.cfg.Theme.Colors.OpponentPiece)

	samples := map[types.Cell]types.Piece{
		{Row: 4, Col: 1}: {Kind: types.Knight, Owner: types.PlayerSide},
		{Row: 5, Col: 2}: {Kind: types.Pawn, Owner: types.PlayerSide},
		{Row: 5, Col: 3}: {Kind: types.Queen, Owner: types.PlayerSide},
		{Row: 1, Col: 4}: {Kind: types.Pawn, Owner: types.OpponentSide},
		{Row: 2, Col: 2}: {Kind: types.Pawn, Owner: types.OpponentSide},
	}

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			bg := light
			if (row+col)%2 == 1 {
				bg = dark
			}
			style := tcell.StyleDefault.Background(bg).Foreground(player)
			r := ' '
			if p, ok := samples[types.Cell{Row: row, Col: col}]; ok {
				r = cc.cfg.Theme.Glyph(p)
				if p.Owner == types.OpponentSide {
					style = style.Foreground(opponent)
				}
			}
			drawSquare(screen, style, r, startX+col*cellWidth, startY+row)
		}
	}

	info := fmt.Sprintf("Light: %d  Dark: %d", cc.selectedLight, cc.selectedDark)
	for i, ch := range info {
		if startX+i < x+width-1 {
			screen.SetContent(startX+i, startY+size+1, ch, nil, tcell.StyleDefault)
		}
	}

	return x, y, width, height
}

// Flex returns the flex container for this UI.
func (cc *ColorConfigUI) Flex() *tview.Flex {
	return cc.flex
}

// SetInputCapture sets the input capture for the color list.
func (cc *ColorConfigUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	cc.colorList.SetInputCapture(capture)
}

// ToggleMode switches between light and dark square editing.
func (cc *ColorConfigUI) ToggleMode() {
	cc.editingDark = !cc.editingDark
	cc.populateColorList()
}
