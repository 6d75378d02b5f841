package config

// Screen settings
const (
	SCREEN_WIDTH  = 400
	SCREEN_HEIGHT = 520

	// PANEL_HEIGHT is the strip under the menu holding the history, the
	// reset button and the slop slider.
	PANEL_HEIGHT = 120
	WINDOW_TITLE = "FloatingMenu"
)

// Demo settings
const (
	TAP_LOG_SIZE  = 32
	HISTORY_LINES = 4

	SLOP_MIN = 1.0
	SLOP_MAX = 40.0
)

// Config lookup
const (
	CONFIG_NAME  = "floatmenu"
	DEFAULT_FILE = "floatmenu.toml"
	ENV_PREFIX   = "FLOATMENU"
	ENV_CONFIG   = "FLOATMENU_CONFIG"
)
