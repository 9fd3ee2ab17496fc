package config

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Render layers.
const (
	Default ecs.LayerID = iota
)

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// LevelConfig contains level geometry and motion values
type LevelConfig struct {
	Scale       float64 // pixels per level unit
	PlayerSpeed float64 // units per second on both axes
	MaxStep     float64 // longest motion sub-step in seconds
	Permissive  bool    // pad ragged rows and ignore unknown glyphs
}

// CameraConfig contains viewport scrolling configuration
type CameraConfig struct {
	Margin float64 // pixels, capped at a third of each axis; 0 = a third of each axis
}

// FrameConfig contains frame loop configuration
type FrameConfig struct {
	MaxStep      time.Duration // longest step handed to a frame
	TickInterval time.Duration // ticker period for the terminal and headless hosts
}

// FloaterConfig contains floater tile bobbing configuration
type FloaterConfig struct {
	Rise     float64 // pixels
	Duration float32 // seconds per half cycle
}

// TerminalConfig contains terminal host configuration
type TerminalConfig struct {
	KeyHold     time.Duration // a key without repeats is released after this
	ExpireEvery time.Duration
	StatusLine  bool
}

// HeadlessConfig contains the viewport used by -display=headless, in pixels
type HeadlessConfig struct {
	Width  float64
	Height float64
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay  bool // draw resolv objects and overlaps
	SkipMenu bool // start the selected level directly
	Frames   int  // stop after this many frames; 0 = run until quit
}

// ColorsConfig contains the flat colors used by the ebiten display
type ColorsConfig struct {
	Background color.RGBA
	Wall       color.RGBA
	Lava       color.RGBA
	Floater    color.RGBA
	Player     color.RGBA
	HUDText    color.RGBA
	Debug      color.RGBA
	Overlap    color.RGBA
}

// Global configuration instances
var C *Config
var Level LevelConfig
var Camera CameraConfig
var Frame FrameConfig
var Floater FloaterConfig
var Terminal TerminalConfig
var Headless HeadlessConfig
var Debug DebugConfig
var Colors ColorsConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	SkyBlue   = color.RGBA{R: 52, G: 166, B: 251, A: 255}
	Grey      = color.RGBA{R: 119, G: 119, B: 119, A: 255}
	LavaRed   = color.RGBA{R: 255, G: 100, B: 100, A: 255}
	Teal      = color.RGBA{R: 80, G: 200, B: 200, A: 255}
	DarkBlue  = color.RGBA{R: 64, G: 64, B: 64, A: 255}
	Cyan      = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Orange    = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	LightBlue = color.RGBA{R: 100, G: 180, B: 255, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		Title:  "Platformer",
	}

	Level = LevelConfig{
		Scale:       20,
		PlayerSpeed: 7,
		MaxStep:     0.5,
	}

	Camera = CameraConfig{
		Margin: 0,
	}

	Frame = FrameConfig{
		MaxStep:      100 * time.Millisecond,
		TickInterval: time.Second / 60,
	}

	Floater = FloaterConfig{
		Rise:     6,
		Duration: 0.8,
	}

	Terminal = TerminalConfig{
		KeyHold:     150 * time.Millisecond, // longer than the usual repeat delay
		ExpireEvery: 20 * time.Millisecond,
		StatusLine:  true,
	}

	Headless = HeadlessConfig{
		Width:  600,
		Height: 450,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{}

	Colors = ColorsConfig{
		Background: SkyBlue,
		Wall:       Grey,
		Lava:       LavaRed,
		Floater:    Teal,
		Player:     DarkBlue,
		HUDText:    White,
		Debug:      Cyan,
		Overlap:    Orange,
	}
}
