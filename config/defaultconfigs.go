package config

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		DrawCursorBackground:   true,
		DrawLastMoveBackground: true,
		ShowCoordinates:        true,
		Colors: ConfigColors{
			LightSquare:   255,
			DarkSquare:    253,
			PlayerPiece:   232,
			OpponentPiece: 88,
			CursorBG:      109,
			SelectedBG:    179,
			HighlightBG:   151,
			LastMoveBG:    187,
		},
		Symbols: ConfigSymbols{
			Player: map[string]rune{
				"rook":   '♜',
				"knight": '♞',
				"bishop": '♝',
				"queen":  '♛',
				"king":   '♚',
				"pawn":   '♟',
			},
			Opponent: map[string]rune{
				"rook":   '♖',
				"knight": '♘',
				"bishop": '♗',
				"queen":  '♕',
				"king":   '♔',
				"pawn":   '♙',
			},
			Highlight: '·',
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Rules: RulesConfig{
			PathBlocking: false,
		},
		Opponent: OpponentConfig{
			Piece: "pawn",
			Seed:  0,
		},
	}
}
