// Package config loads the menu's look and the demo hosts' settings from a
// config file, FLOATMENU_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"floatmenu/log"
	"floatmenu/menu"
)

type Config struct {
	Style   StyleConfig  `mapstructure:"style"`
	Input   InputConfig  `mapstructure:"input"`
	Window  WindowConfig `mapstructure:"window"`
	Hotkeys HotkeyConfig `mapstructure:"hotkeys"`
	Verbose bool         `mapstructure:"verbose"`

	// Path is the file the config was read from, empty when only defaults
	// and the environment applied.
	Path string `mapstructure:"-"`
}

// StyleConfig holds colors as "#RRGGBB" or "#RRGGBBAA" strings.
type StyleConfig struct {
	SectorColor    string   `mapstructure:"sector_color"`
	CenterColor    string   `mapstructure:"center_color"`
	TextColor      string   `mapstructure:"text_color"`
	TextSize       float64  `mapstructure:"text_size"`
	Labels         []string `mapstructure:"labels"`
	CenterLabel    string   `mapstructure:"center_label"`
	HubBorder      bool     `mapstructure:"hub_border"`
	HighlightColor string   `mapstructure:"highlight_color"`
	ActiveColor    string   `mapstructure:"active_color"`
	ActiveLabel    string   `mapstructure:"active_label"`
}

type InputConfig struct {
	TouchSlop float64 `mapstructure:"touch_slop"`
}

type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

// HotkeyConfig binds key combos such as "SHIFT+1" to menu taps. Sectors[i]
// taps sector i.
type HotkeyConfig struct {
	Sectors []string `mapstructure:"sectors"`
	Center  string   `mapstructure:"center"`
	Reset   string   `mapstructure:"reset"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("style.sector_color", "#000000")
	v.SetDefault("style.center_color", "#000000")
	v.SetDefault("style.text_color", "#ffffff")
	v.SetDefault("style.text_size", 40.0)
	v.SetDefault("style.labels", []string{"A", "B", "C", "D", "E", "F", "G", "H"})
	v.SetDefault("style.center_label", "Start")
	v.SetDefault("style.hub_border", false)
	v.SetDefault("style.highlight_color", "#1e88e5")
	v.SetDefault("style.active_color", "#c62828")
	v.SetDefault("style.active_label", "Stop")
	v.SetDefault("input.touch_slop", menu.DefaultTouchSlop)
	v.SetDefault("window.width", SCREEN_WIDTH)
	v.SetDefault("window.height", SCREEN_HEIGHT)
	v.SetDefault("window.title", WINDOW_TITLE)
	v.SetDefault("hotkeys.sectors", []string{"1", "2", "3", "4", "5", "6", "7", "8"})
	v.SetDefault("hotkeys.center", "SPACE")
	v.SetDefault("hotkeys.reset", "R")
	v.SetDefault("verbose", false)
}

// AddFlags registers the flags every program shares.
func AddFlags(flags *pflag.FlagSet) {
	flags.StringP("config", "c", "", "config file (default: "+DEFAULT_FILE+" in . or ~/.config/floatmenu)")
	flags.BoolP("verbose", "v", false, "debug logging")
	flags.Float64("touch-slop", menu.DefaultTouchSlop, "movement in pixels that turns a press into a drag")
	flags.Float64("text-size", 40, "label text size")
}

var flagKeys = map[string]string{
	"verbose":    "verbose",
	"touch-slop": "input.touch_slop",
	"text-size":  "style.text_size",
}

// Load reads the config. path wins over FLOATMENU_CONFIG, which wins over
// the default lookup. A missing file is not an error. flags may be nil.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if path == "" {
		path = os.Getenv(ENV_CONFIG)
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(CONFIG_NAME)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", CONFIG_NAME))
		}
	}

	v.SetEnvPrefix(ENV_PREFIX)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		log.Debug("[config] no config file, using defaults")
	}

	c, err := decode(v)
	if err != nil {
		return Config{}, err
	}
	c.Path = v.ConfigFileUsed()
	if _, err := os.Stat(c.Path); err != nil {
		c.Path = ""
	}
	return c, nil
}

// Save writes cfg to path. The format follows the file extension.
func Save(path string, cfg Config) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
	}

	v := viper.New()
	v.Set("style.sector_color", cfg.Style.SectorColor)
	v.Set("style.center_color", cfg.Style.CenterColor)
	v.Set("style.text_color", cfg.Style.TextColor)
	v.Set("style.text_size", cfg.Style.TextSize)
	v.Set("style.labels", cfg.Style.Labels)
	v.Set("style.center_label", cfg.Style.CenterLabel)
	v.Set("style.hub_border", cfg.Style.HubBorder)
	v.Set("style.highlight_color", cfg.Style.HighlightColor)
	v.Set("style.active_color", cfg.Style.ActiveColor)
	v.Set("style.active_label", cfg.Style.ActiveLabel)
	v.Set("input.touch_slop", cfg.Input.TouchSlop)
	v.Set("window.width", cfg.Window.Width)
	v.Set("window.height", cfg.Window.Height)
	v.Set("window.title", cfg.Window.Title)
	v.Set("hotkeys.sectors", cfg.Hotkeys.Sectors)
	v.Set("hotkeys.center", cfg.Hotkeys.Center)
	v.Set("hotkeys.reset", cfg.Hotkeys.Reset)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Default returns the config Load produces with no file, env or flags.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	c, err := decode(v)
	if err != nil {
		log.Warn("[config] defaults: %v", err)
	}
	return c
}

func decode(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// MenuStyle builds the menu style, reporting the first invalid value by key.
func (c Config) MenuStyle() (menu.Style, error) {
	s := menu.Style{
		TextSize:    c.Style.TextSize,
		CenterLabel: c.Style.CenterLabel,
		HubBorder:   c.Style.HubBorder,
	}
	var err error
	if s.SectorColor, err = ParseColor(c.Style.SectorColor); err != nil {
		return s, fmt.Errorf("style.sector_color: %w", err)
	}
	if s.CenterColor, err = ParseColor(c.Style.CenterColor); err != nil {
		return s, fmt.Errorf("style.center_color: %w", err)
	}
	if s.TextColor, err = ParseColor(c.Style.TextColor); err != nil {
		return s, fmt.Errorf("style.text_color: %w", err)
	}
	if s.TextSize <= 0 {
		return s, fmt.Errorf("style.text_size: must be positive, got %v", s.TextSize)
	}
	if len(c.Style.Labels) != menu.SectorCount {
		return s, fmt.Errorf("style.labels: want %d labels, got %d", menu.SectorCount, len(c.Style.Labels))
	}
	copy(s.Labels[:], c.Style.Labels)
	return s, nil
}

// Highlight returns the color tapped sectors toggle to.
func (c Config) Highlight() (color.RGBA, error) {
	clr, err := ParseColor(c.Style.HighlightColor)
	if err != nil {
		return clr, fmt.Errorf("style.highlight_color: %w", err)
	}
	return clr, nil
}

// Active returns the hub color used while the hub is toggled on.
func (c Config) Active() (color.RGBA, error) {
	clr, err := ParseColor(c.Style.ActiveColor)
	if err != nil {
		return clr, fmt.Errorf("style.active_color: %w", err)
	}
	return clr, nil
}

// ParseColor accepts "#RGB", "#RRGGBB" and "#RRGGBBAA".
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	alpha := uint8(255)
	if len(s) == 9 && strings.HasPrefix(s, "#") {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid color %q", s)
		}
		alpha = uint8(a)
		s = s[:7]
	}
	if len(s) != 4 && len(s) != 7 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	if alpha == 255 {
		return color.RGBA{r, g, b, 255}, nil
	}
	// color.RGBA is premultiplied
	return color.RGBA{
		R: uint8(uint16(r) * uint16(alpha) / 255),
		G: uint8(uint16(g) * uint16(alpha) / 255),
		B: uint8(uint16(b) * uint16(alpha) / 255),
		A: alpha,
	}, nil
}

// FormatColor is the inverse of ParseColor for opaque colors.
func FormatColor(c color.RGBA) string {
	if c.A == 255 {
		return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.Hex()
	}
	nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x%02x", nrgba.R, nrgba.G, nrgba.B, nrgba.A)
}
