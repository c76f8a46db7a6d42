// Package settings defines application-level configuration data.
package settings

import "time"

// KeyMapConfig defines the configuration for keybindings.
type KeyMapConfig struct {
	Up     string `yaml:"up" kong:"help='Up key',default='k,up'"`
	Down   string `yaml:"down" kong:"help='Down key',default='j,down'"`
	Left   string `yaml:"left" kong:"help='Left key',default='h,left'"`
	Right  string `yaml:"right" kong:"help='Right key',default='l,right'"`
	Toggle string `yaml:"toggle" kong:"help='Toggle tile key',default='space,enter'"`
	Clear  string `yaml:"clear" kong:"help='Clear selection key',default='c'"`
	Copy   string `yaml:"copy" kong:"help='Copy summary key',default='y'"`
	Export string `yaml:"export" kong:"help='Export selection card key',default='e'"`
	Open   string `yaml:"open" kong:"help='Open last exported card key',default='o'"`
	Quit   string `yaml:"quit" kong:"help='Quit key',default='q'"`
}

// ThemeConfig defines the color theme configuration.
type ThemeConfig struct {
	Active   string `yaml:"active" kong:"help='Selected tile color',default='205'"`
	Inactive string `yaml:"inactive" kong:"help='Unselected tile color',default='240'"`
	Accent   string `yaml:"accent" kong:"help='Header highlight color',default='63'"`
	Muted    string `yaml:"muted" kong:"help='Placeholder text color',default='244'"`
}

// GridConfig defines the tile grid.
type GridConfig struct {
	Tiles   int `yaml:"tiles" kong:"help='Number of tiles',default='25'"`
	Columns int `yaml:"columns" kong:"help='Tiles per row',default='5'"`
}

// FitConfig bounds the sizes the TUI may choose when shrinking content to the terminal.
type FitConfig struct {
	HeaderMinPadding int `yaml:"header_min_padding" kong:"help='Minimum blank cells on each side of the summary',default='1'"`
	HeaderMaxPadding int `yaml:"header_max_padding" kong:"help='Maximum blank cells on each side of the summary',default='4'"`
	TileMinWidth     int `yaml:"tile_min_width" kong:"help='Minimum tile width in cells',default='4'"`
	TileMaxWidth     int `yaml:"tile_max_width" kong:"help='Maximum tile width in cells',default='9'"`
}

// CardConfig defines the exported selection card.
type CardConfig struct {
	MinSize  int    `yaml:"min_size" kong:"help='Minimum card font size in pt',default='10'"`
	MaxSize  int    `yaml:"max_size" kong:"help='Maximum card font size in pt',default='48'"`
	WidthMM  int    `yaml:"width_mm" kong:"help='Card width in mm',default='180'"`
	HeightMM int    `yaml:"height_mm" kong:"help='Card height in mm',default='40'"`
	MarginMM int    `yaml:"margin_mm" kong:"help='Card margin in mm',default='4'"`
	Font     string `yaml:"font" kong:"help='TTF/OTF font file for the card (built-in font when empty)'"`
	Dir      string `yaml:"dir" kong:"help='Directory for exported cards',default='.'"`
}

// Settings represents the application configuration.
type Settings struct {
	Grid             GridConfig   `yaml:"grid" kong:"embed,prefix='grid.'"`
	Fit              FitConfig    `yaml:"fit" kong:"embed,prefix='fit.'"`
	Card             CardConfig   `yaml:"card" kong:"embed,prefix='card.'"`
	KeyMap           KeyMapConfig `yaml:"keymap" kong:"embed,prefix='keymap.'"`
	Theme            ThemeConfig  `yaml:"theme" kong:"embed,prefix='theme.'"`
	ResizeDebounceMS int          `yaml:"resize_debounce_ms" kong:"help='Delay before refitting after a resize',default='120'"`
	LogFile          string       `yaml:"log_file" kong:"help='Debug log file (disabled when empty)'"`
}

// ResizeDebounce returns the resize delay as a duration.
func (s Settings) ResizeDebounce() time.Duration {
	if s.ResizeDebounceMS <= 0 {
		return 0
	}
	return time.Duration(s.ResizeDebounceMS) * time.Millisecond
}

// TileCount returns the number of tiles, never less than one.
func (s Settings) TileCount() int {
	if s.Grid.Tiles < 1 {
		return 1
	}
	return s.Grid.Tiles
}

// ColumnCount returns the tiles per row, bounded by the tile count.
func (s Settings) ColumnCount() int {
	cols := s.Grid.Columns
	if cols < 1 {
		cols = 1
	}
	if cols > s.TileCount() {
		cols = s.TileCount()
	}
	return cols
}
