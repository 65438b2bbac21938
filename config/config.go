package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/adrg/xdg"
	"golang.org/x/exp/maps"

	"termchess-local/engine"
	"termchess-local/types"
)

var (
	cfgFile   = "termchess-local/config.json"
	debugFile = "termchess-local/debug.log"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type ConfigColors struct {
	LightSquare   int `json:"light_square"`
	DarkSquare    int `json:"dark_square"`
	PlayerPiece   int `json:"player_piece"`
	OpponentPiece int `json:"opponent_piece"`
	CursorBG      int `json:"cursor_bg"`
	SelectedBG    int `json:"selected_bg"`
	HighlightBG   int `json:"highlight_bg"`
	LastMoveBG    int `json:"last_move_bg"`
}

// ConfigSymbols maps piece kind names ("rook", "pawn", ...) to glyphs per side.
type ConfigSymbols struct {
	Player    map[string]rune `json:"player"`
	Opponent  map[string]rune `json:"opponent"`
	Highlight rune            `json:"highlight"`
}

type Theme struct {
	DrawCursorBackground   bool          `json:"draw_cursor_bg"`
	DrawLastMoveBackground bool          `json:"draw_last_move_bg"`
	ShowCoordinates        bool          `json:"show_coordinates"`
	Colors                 ConfigColors  `json:"colors"`
	Symbols                ConfigSymbols `json:"symbols"`
}

// RulesConfig holds optional legality rules.
type RulesConfig struct {
	PathBlocking bool `json:"path_blocking"`
}

// OpponentConfig holds settings for the opposing policy.
type OpponentConfig struct {
	Piece string `json:"piece"`
	Seed  int64  `json:"seed"`
}

type Config struct {
	Theme    Theme          `json:"theme"`
	Rules    RulesConfig    `json:"rules"`
	Opponent OpponentConfig `json:"opponent"`
}

func InitConfig() (*Config, error) {
	config := DefaultConfig.Clone()
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		if err := readCfgFile(absPath, &config); err != nil {
			return nil, err
		}
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Clone returns a copy that shares no glyph maps with c.
func (c Config) Clone() Config {
	c.Theme.Symbols.Player = maps.Clone(c.Theme.Symbols.Player)
	c.Theme.Symbols.Opponent = maps.Clone(c.Theme.Symbols.Opponent)
	return c
}

func (c *Config) Validate() error {
	for _, glyphs := range []map[string]rune{c.Theme.Symbols.Player, c.Theme.Symbols.Opponent} {
		for name, r := range glyphs {
			if _, err := types.ParseKind(name); err != nil {
				return &InvalidConfig{fmt.Sprintf("unknown piece %q in symbols", name)}
			}
			if !printable(r) {
				return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
			}
		}
	}
	if !printable(c.Theme.Symbols.Highlight) {
		return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
	}
	if _, err := types.ParseKind(c.Opponent.Piece); err != nil {
		return &InvalidConfig{err.Error()}
	}
	return nil
}

// GameConfig builds the engine configuration described by c.
func (c *Config) GameConfig() engine.GameConfig {
	gameCfg := engine.DefaultConfig()
	if k, err := types.ParseKind(c.Opponent.Piece); err == nil {
		gameCfg.OpponentPiece = k
	}
	gameCfg.Seed = c.Opponent.Seed
	gameCfg.PathBlocking = c.Rules.PathBlocking
	return gameCfg
}

// Overrides are one-off game settings from the command line. They shape a
// single session and are never written back to the config file.
type Overrides struct {
	Opponent     string
	Seed         int64
	PathBlocking bool
}

// Apply returns gameCfg with the set overrides replacing its values.
func (o Overrides) Apply(gameCfg engine.GameConfig) (engine.GameConfig, error) {
	if o.Opponent != "" {
		kind, err := types.ParseKind(o.Opponent)
		if err != nil {
			return gameCfg, fmt.Errorf("opponent override: %w", err)
		}
		gameCfg.OpponentPiece = kind
	}
	if o.Seed != 0 {
		gameCfg.Seed = o.Seed
	}
	if o.PathBlocking {
		gameCfg.PathBlocking = true
	}
	return gameCfg, nil
}

// Glyph returns the rune drawn for p, falling back to the default theme.
func (t Theme) Glyph(p types.Piece) rune {
	glyphs, defaults := t.Symbols.Player, DefaultTheme.Symbols.Player
	if p.Owner == types.OpponentSide {
		glyphs, defaults = t.Symbols.Opponent, DefaultTheme.Symbols.Opponent
	}
	if r, ok := glyphs[p.Kind.String()]; ok {
		return r
	}
	if r, ok := defaults[p.Kind.String()]; ok {
		return r
	}
	return '?'
}

func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return fmt.Errorf("locate config file: %w", err)
	}
	return saveCfgFile(absPath, c, 0664)
}

// DebugLogPath returns the location of the debug log, creating its directory.
func DebugLogPath() (string, error) {
	return xdg.CacheFile(debugFile)
}

func printable(r rune) bool {
	return !(r < 32 || (r >= 127 && r <= 159))
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(filePath, jsonData, perm); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func readCfgFile(filePath string, a interface{}) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil
	}
	if err := json.Unmarshal(data, a); err != nil {
		return fmt.Errorf("parse %s: %w", filePath, err)
	}
	return nil
}
