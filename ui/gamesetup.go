package ui

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termchess-local/engine"
	"termchess-local/types"
)

// GameSetupUI provides a form for configuring a new game.
type GameSetupUI struct {
	form     *tview.Form
	flex     *tview.Flex
	onStart  func(engine.GameConfig)
	onCancel func()
	onColors func()

	gameCfg engine.GameConfig
}

// NewGameSetup creates a new game setup form seeded with defaults.
func NewGameSetup(defaults engine.GameConfig, onStart func(engine.GameConfig), onCancel func(), onColors func()) *GameSetupUI {
	setup := &GameSetupUI{
		onStart:  onStart,
		onCancel: onCancel,
		onColors: onColors,
		gameCfg:  defaults,
	}

	kinds := types.Kinds()
	kindNames := make([]string, len(kinds))
	initial := len(kinds) - 1
	for i, k := range kinds {
		name := k.String()
		kindNames[i] = strings.ToUpper(name[:1]) + name[1:]
		if k == defaults.OpponentPiece {
			initial = i
		}
	}

	form := tview.NewForm()

	form.AddDropDown("Opponent Piece", kindNames, initial, func(option string, index int) {
		if index >= 0 && index < len(kinds) {
			setup.gameCfg.OpponentPiece = kinds[index]
		}
	})

	seedText := ""
	if defaults.Seed != 0 {
		seedText = strconv.FormatInt(defaults.Seed, 10)
	}
	form.AddInputField("Seed (blank = random)", seedText, 12, func(text string, lastChar rune) bool {
		return (lastChar >= '0' && lastChar <= '9') || lastChar == '-'
	}, func(text string) {
		text = strings.TrimSpace(text)
		if text == "" {
			setup.gameCfg.Seed = 0
			return
		}
		if val, err := strconv.ParseInt(text, 10, 64); err == nil {
			setup.gameCfg.Seed = val
		}
	})

	form.AddCheckbox("Sliders Blocked", defaults.PathBlocking, func(checked bool) {
		setup.gameCfg.PathBlocking = checked
	})

	form.AddButton("Start Game", func() {
		onStart(setup.gameCfg)
	})

	form.AddButton("Board Color", func() {
		if onColors != nil {
			onColors()
		}
	})

	form.AddButton("Quit", func() {
		onCancel()
	})

	form.SetBorder(true)
	form.SetTitle(" New Game ")
	form.SetTitleAlign(tview.AlignCenter)
	form.SetButtonBackgroundColor(MenuColors.ButtonBG)
	form.SetButtonTextColor(MenuColors.ButtonText)
	form.SetFieldBackgroundColor(MenuColors.CardBG)
	form.SetLabelColor(MenuColors.Label)

	helpText := tview.NewTextView().
		SetText("Tab/Shift+Tab: navigate fields  |  Arrow keys: change dropdown  |  Enter: confirm").
		SetTextAlign(tview.AlignCenter)
	helpText.SetTextColor(MenuColors.Hint)

	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(form, 0, 1, true).
		AddItem(helpText, 1, 0, false)

	setup.form = form
	setup.flex = flex
	return setup
}

// Form returns the flex container with form and help text.
func (s *GameSetupUI) Form() *tview.Flex {
	return s.flex
}

// SetInputCapture sets the input capture function for the form.
func (s *GameSetupUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	s.form.SetInputCapture(capture)
}
