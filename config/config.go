package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/adrg/xdg"

	"tictacpen/board"
	"tictacpen/engine"
)

var (
	cfgFile = "tictacpen/config.json"
	logFile = "tictacpen/debug.log"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type ConfigColors struct {
	Paper       int `json:"paper"`
	Ink         int `json:"ink"`
	Display     int `json:"display"`
	DisplayInk  int `json:"display_ink"`
	MenuFocusFG int `json:"menu_focus_fg"`
	MenuFocusBG int `json:"menu_focus_bg"`
	Hint        int `json:"hint"`
}

type ConfigSymbols struct {
	Ink   rune `json:"ink"`
	Pixel rune `json:"pixel"`
}

type Theme struct {
	Colors  ConfigColors  `json:"colors"`
	Symbols ConfigSymbols `json:"symbols"`
}

// GeometryConfig holds the tolerances for hand-drawn board lines.
type GeometryConfig struct {
	AnglePrecision float64 `json:"angle_precision_deg"`
	MinLineLength  float64 `json:"min_line_length_mm"`
	UnitsPerMM     float64 `json:"units_per_mm"`
}

// GameConfig holds the pen's level and the timings of the game flow.
type GameConfig struct {
	DefaultLevel     string `json:"default_level"`
	PlayerOrderDelay int    `json:"player_order_delay_ms"`
	ResultDelay      int    `json:"result_delay_ms"`
	BlinkInterval    int    `json:"blink_interval_ms"`
	RecognizePause   int    `json:"recognize_pause_ms"`
}

type SoundConfig struct {
	Enabled   bool `json:"enabled"`
	ShowHints bool `json:"show_hints"`
}

// PaperConfig maps terminal cells onto paper millimetres.
type PaperConfig struct {
	ColumnMM float64 `json:"column_mm"`
	RowMM    float64 `json:"row_mm"`
}

type Config struct {
	Theme      Theme          `json:"theme"`
	Geometry   GeometryConfig `json:"geometry"`
	Game       GameConfig     `json:"game"`
	Sound      SoundConfig    `json:"sound"`
	Paper      PaperConfig    `json:"paper"`
	StatusAddr string         `json:"status_addr"`
}

// InitConfig loads the config from path, or from the XDG config dirs when
// path is empty. A missing file yields the defaults.
func InitConfig(path string) (*Config, error) {
	config := DefaultConfig
	if path == "" {
		absPath, err := xdg.SearchConfigFile(cfgFile)
		if err == nil {
			path = absPath
		}
	}
	if path != "" {
		if err := readCfgFile(path, &config); err != nil {
			return nil, err
		}
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	for _, r := range []rune{c.Theme.Symbols.Ink, c.Theme.Symbols.Pixel} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	g := c.Geometry
	if g.AnglePrecision <= 0 || g.AnglePrecision >= 45 {
		return &InvalidConfig{"geometry.angle_precision_deg must be between 0 and 45"}
	}
	if g.MinLineLength <= 0 || g.UnitsPerMM <= 0 {
		return &InvalidConfig{"geometry lengths must be positive"}
	}
	if _, err := engine.ParseLevel(c.Game.DefaultLevel); err != nil {
		return &InvalidConfig{err.Error()}
	}
	for _, d := range []int{c.Game.PlayerOrderDelay, c.Game.ResultDelay, c.Game.BlinkInterval, c.Game.RecognizePause} {
		if d < 0 {
			return &InvalidConfig{"game delays must not be negative"}
		}
	}
	if c.Paper.ColumnMM <= 0 || c.Paper.RowMM <= 0 {
		return &InvalidConfig{"paper cell size must be positive"}
	}
	return nil
}

// BoardOptions returns the line tolerances for the board package.
func (c *Config) BoardOptions() board.Options {
	return board.Options{
		AnglePrecision: c.Geometry.AnglePrecision,
		MinLineLength:  c.Geometry.MinLineLength,
		UnitsPerMM:     c.Geometry.UnitsPerMM,
	}
}

// Level returns the configured default level. Validate guarantees it parses.
func (c *Config) Level() engine.Level {
	l, _ := engine.ParseLevel(c.Game.DefaultLevel)
	return l
}

func millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

func (g GameConfig) PlayerOrderDelayDuration() time.Duration { return millis(g.PlayerOrderDelay) }
func (g GameConfig) ResultDelayDuration() time.Duration      { return millis(g.ResultDelay) }
func (g GameConfig) BlinkIntervalDuration() time.Duration    { return millis(g.BlinkInterval) }
func (g GameConfig) RecognizePauseDuration() time.Duration   { return millis(g.RecognizePause) }

// Save writes the config to the user's XDG config dir.
func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return fmt.Errorf("locating config file: %w", err)
	}
	return saveCfgFile(absPath, c, 0664)
}

// LogFile returns the path of the debug log, creating its directory.
func LogFile() (string, error) {
	return xdg.StateFile(logFile)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err = os.WriteFile(filePath, jsonData, perm); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func readCfgFile(filePath string, a interface{}) error {
	configReader, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	if err = json.Unmarshal(configReader, a); err != nil {
		return fmt.Errorf("parsing config %s: %w", filePath, err)
	}
	return nil
}
