// termchess-local is a terminal application to push chess pieces around against a placeholder opponent.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termchess-local/board"
	"termchess-local/config"
	"termchess-local/engine"
	"termchess-local/engine/placement"
	"termchess-local/game"
	"termchess-local/types"
	"termchess-local/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagSeed         = flag.Int64("seed", 0, "Seed for the opponent's random placement (0 = random)")
	flagOpponent     = flag.String("opponent", "", "Piece the opponent places (rook, knight, bishop, queen, king, pawn)")
	flagPathBlocking = flag.Bool("path-blocking", false, "Stop sliding pieces at the first occupied square")
	flagQuickStart   = flag.Bool("play", false, "Start game immediately with defaults")
	flagFocus        = flag.Bool("focus", false, "Start in focus mode (board only)")
	flagSelect       = flag.String("select", "", "Select the piece on this cell (e.g. e2) when the game starts")
	flagSnapshot     = flag.String("snapshot", "", "Write an SVG of the starting board to this path and exit")
	flagDebug        = flag.Bool("debug", false, "Write a debug log to the user cache directory")
	flagVersion      = flag.Bool("version", false, "Print version and exit")
)

var app *tview.Application
var rootPage *tview.Pages
var gameBoard *ui.ChessBoardUI
var gameFrame *tview.Flex
var gameHint *tview.TextView
var cfg *config.Config

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("termchess-local %s\n", Version)
		return
	}

	var err error
	cfg, err = config.InitConfig()
	if err != nil {
		panic(err)
	}

	sessionCfg, err := config.Overrides{
		Opponent:     *flagOpponent,
		Seed:         *flagSeed,
		PathBlocking: *flagPathBlocking,
	}.Apply(cfg.GameConfig())
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	var preselect *types.Cell
	if *flagSelect != "" {
		c, err := types.ParseCell(*flagSelect)
		if err != nil {
			fmt.Printf("--select: %s\n", err)
			os.Exit(2)
		}
		preselect = &c
	}

	if *flagDebug {
		closeLog, err := enableDebugLog()
		if err != nil {
			fmt.Printf("Debug log unavailable: %s\n", err)
		} else {
			defer closeLog()
		}
	}

	if *flagSnapshot != "" {
		if err := ui.WriteSVGFile(*flagSnapshot, board.NewStandard(), cfg.Theme, nil); err != nil {
			fmt.Printf("Snapshot failed: %s\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", *flagSnapshot)
		return
	}

	quickStart := *flagQuickStart || *flagFocus || *flagSeed != 0 || *flagOpponent != "" || *flagPathBlocking || preselect != nil

	app = tview.NewApplication()
	app.EnableMouse(true)
	rootPage = tview.NewPages()
	rootPage.SetBorder(true).SetTitle(" ♞ termchess ")

	// Game view setup
	gameHint = tview.NewTextView()
	gameHint.SetBorder(true)
	gameHint.SetBorderPadding(0, 0, 1, 1)
	gameHint.SetTitle(" Status ")
	gameHint.SetTitleAlign(tview.AlignLeft)
	gameBoard = ui.NewChessBoard(cfg, gameHint)

	gameFrame = ui.CreateGameLayout(gameBoard, gameHint)

	// Game board input handling
	gameBoard.Box.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyRune && event.Rune() == 'q' {
			if !gameBoard.ClearSelection() {
				gameBoard.HideCursor()
				rootPage.SwitchToPage("setup")
			}
			return nil
		}
		switch event.Key() {
		case tcell.KeyUp:
			gameBoard.MoveCursor(0, -1)
		case tcell.KeyDown:
			gameBoard.MoveCursor(0, 1)
		case tcell.KeyLeft:
			gameBoard.MoveCursor(-1, 0)
		case tcell.KeyRight:
			gameBoard.MoveCursor(1, 0)
		case tcell.KeyEnter:
			gameBoard.Activate()
		case tcell.KeyRune:
			switch event.Rune() {
			case 'h':
				gameBoard.MoveCursor(-1, 0)
			case 'j':
				gameBoard.MoveCursor(0, 1)
			case 'k':
				gameBoard.MoveCursor(0, -1)
			case 'l':
				gameBoard.MoveCursor(1, 0)
			case ' ':
				gameBoard.Activate()
			case 'e':
				exportSnapshot()
			case 'f':
				if gameBoard.ToggleFocusMode() {
					ui.BuildFocusLayout(gameFrame, gameBoard)
				} else {
					ui.RebuildNormalLayout(gameFrame, gameBoard, gameHint)
				}
			}
		}
		return event
	})

	// Game setup screen
	setupUI := ui.NewGameSetup(
		sessionCfg,
		func(gameCfg engine.GameConfig) {
			startGame(gameCfg)
		},
		func() {
			app.Stop()
		},
		func() {
			rootPage.SwitchToPage("colors")
		},
	)

	setupUI.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc {
			app.Stop()
			return nil
		}
		return event
	})

	// Color configuration screen
	colorConfig := ui.NewColorConfig(cfg, func() {
		gameBoard.SetConfig(cfg)
		rootPage.SwitchToPage("setup")
	}, showError)
	colorConfig.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			rootPage.SwitchToPage("setup")
			return nil
		}
		if event.Key() == tcell.KeyTab {
			colorConfig.ToggleMode()
			return nil
		}
		return event
	})

	rootPage.AddPage("setup", ui.CreateCenteredForm(setupUI.Form(), 60), true, !quickStart)
	rootPage.AddPage("gameview", gameFrame, true, quickStart)
	rootPage.AddPage("colors", colorConfig.Flex(), true, false)

	if quickStart {
		startGame(sessionCfg)
		if preselect != nil {
			gameBoard.SetCursor(*preselect)
			gameBoard.Activate()
		}
		if *flagFocus {
			gameBoard.SetFocusMode(true)
			ui.BuildFocusLayout(gameFrame, gameBoard)
		}
	}

	if err := app.SetRoot(rootPage, true).Run(); err != nil {
		panic(err)
	}
}

// enableDebugLog routes package debug logs to the cache directory.
func enableDebugLog() (func(), error) {
	path, err := config.DebugLogPath()
	if err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open debug log: %w", err)
	}
	game.SetDebugOutput(f)
	placement.SetDebugOutput(f)
	return func() { f.Close() }, nil
}

// startGame starts a game on a fresh standard board.
func startGame(gameCfg engine.GameConfig) {
	g := game.New(
		board.NewStandard(),
		gameBoard,
		placement.FromConfig(gameCfg),
		game.Options{PathBlocking: gameCfg.PathBlocking},
	)
	gameBoard.Connect(g)
	rootPage.SwitchToPage("gameview")
}

// exportSnapshot writes the current board to an SVG in the working directory.
func exportSnapshot() {
	g := gameBoard.Game()
	if g == nil {
		return
	}
	dir, err := os.Getwd()
	if err != nil {
		showError(err)
		return
	}
	path, err := ui.ExportSVG(dir, g.Board(), cfg.Theme, gameBoard.Highlighted())
	if err != nil {
		showError(err)
		return
	}
	gameBoard.SetStatus(fmt.Sprintf("Saved %s", path))
}

// showError shows err in a modal over the current page.
func showError(err error) {
	modal := tview.NewModal().
		SetText(fmt.Sprintf("Something went wrong:\n%s", err.Error())).
		AddButtons([]string{"OK"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			rootPage.RemovePage("error")
		})
	rootPage.AddPage("error", modal, true, true)
}
