package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"Doodle/internal/state"

	"golang.org/x/image/colornames"
)

// DefaultAlbum is the folder created under the pictures directory.
const DefaultAlbum = "DoodlePictures"

// Config is the on-disk application configuration (config.json).
type Config struct {
	PicturesDir string      `json:"pictures_dir"`
	Album       string      `json:"album"`
	IndexPath   string      `json:"index_path"`
	Brush       BrushConfig `json:"brush"`
	Tolerance   float32     `json:"tolerance"`
	// StrictPermissions aborts a save when write permission is missing
	// instead of only logging it.
	StrictPermissions bool `json:"strict_permissions"`
	// ToastOnFailure shows the "saved" confirmation even after a failed write.
	ToastOnFailure bool   `json:"toast_on_failure"`
	LogLevel       string `json:"log_level"` // debug, info, warn, error
}

type BrushConfig struct {
	Color     string  `json:"color"` // colornames name or #rrggbb
	Width     float32 `json:"width"`
	Join      string  `json:"join"`
	Cap       string  `json:"cap"`
	AntiAlias bool    `json:"anti_alias"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		PicturesDir: defaultPicturesDir(),
		Album:       DefaultAlbum,
		IndexPath:   filepath.Join(configDir(), "gallery.db"),
		Brush: BrushConfig{
			Color:     "black",
			Width:     20,
			Join:      string(state.JoinRound),
			Cap:       string(state.CapRound),
			AntiAlias: true,
		},
		Tolerance: state.DefaultTolerance,
		LogLevel:  "info",
	}
}

// DefaultPath is $DOODLE_CONFIG or <user config dir>/doodle/config.json.
func DefaultPath() string {
	if v := strings.TrimSpace(os.Getenv("DOODLE_CONFIG")); v != "" {
		return v
	}
	return filepath.Join(configDir(), "config.json")
}

// Load reads path on top of the defaults. A missing file is not an error.
// Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv("DOODLE_PICTURES_DIR")); v != "" {
		c.PicturesDir = v
	}
	if v := strings.TrimSpace(os.Getenv("DOODLE_LOG_LEVEL")); v != "" {
		c.LogLevel = v
	}
}

func (c *Config) Validate() error {
	if c.PicturesDir == "" {
		return errors.New("pictures_dir must not be empty")
	}
	if c.Album == "" || strings.ContainsAny(c.Album, `/\`) {
		return fmt.Errorf("invalid album name %q", c.Album)
	}
	if c.Brush.Width <= 0 {
		return fmt.Errorf("brush width must be positive, got %v", c.Brush.Width)
	}
	if c.Tolerance < 0 {
		return fmt.Errorf("tolerance must not be negative, got %v", c.Tolerance)
	}
	if _, err := c.Style(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// AlbumDir is the directory pictures are saved to.
func (c *Config) AlbumDir() string {
	return filepath.Join(c.PicturesDir, c.Album)
}

// Style converts the brush section into a stroke style.
func (c *Config) Style() (state.Style, error) {
	col, err := ParseColor(c.Brush.Color)
	if err != nil {
		return state.Style{}, err
	}
	join := state.Join(strings.ToLower(c.Brush.Join))
	switch join {
	case state.JoinRound, state.JoinBevel, state.JoinMiter:
	default:
		return state.Style{}, fmt.Errorf("unknown brush join %q", c.Brush.Join)
	}
	cp := state.Cap(strings.ToLower(c.Brush.Cap))
	switch cp {
	case state.CapRound, state.CapButt, state.CapSquare:
	default:
		return state.Style{}, fmt.Errorf("unknown brush cap %q", c.Brush.Cap)
	}
	return state.Style{
		Color:     col,
		Width:     c.Brush.Width,
		Join:      join,
		Cap:       cp,
		AntiAlias: c.Brush.AntiAlias,
	}, nil
}

func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	return l, nil
}

// ParseColor accepts an SVG color name or #rrggbb.
func ParseColor(s string) (color.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	var r, g, b uint8
	if len(s) == 7 && s[0] == '#' {
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err == nil {
			return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
		}
	}
	return nil, fmt.Errorf("unknown color %q", s)
}

func defaultPicturesDir() string {
	if v := strings.TrimSpace(os.Getenv("XDG_PICTURES_DIR")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "Pictures")
	}
	return filepath.Join(home, "Pictures")
}

func configDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "doodle")
}
