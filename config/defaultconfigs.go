package config

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		Colors: ConfigColors{
			Paper:       230,
			Ink:         19,
			Display:     22,
			DisplayInk:  120,
			MenuFocusFG: 22,
			MenuFocusBG: 120,
			Hint:        244,
		},
		Symbols: ConfigSymbols{
			Ink:   '•',
			Pixel: '█',
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Geometry: GeometryConfig{
			AnglePrecision: 10,
			MinLineLength:  10,
			UnitsPerMM:     10,
		},
		Game: GameConfig{
			DefaultLevel:     "easy",
			PlayerOrderDelay: 2000,
			ResultDelay:      3000,
			BlinkInterval:    500,
			RecognizePause:   700,
		},
		Sound: SoundConfig{
			Enabled:   true,
			ShowHints: true,
		},
		Paper: PaperConfig{
			ColumnMM: 2.5,
			RowMM:    5,
		},
	}
}
