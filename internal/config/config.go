// Package config handles swell configuration loading and management.
package config

// Config holds all demo settings.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Scene   SceneConfig   `yaml:"scene"`
	Stream  StreamConfig  `yaml:"stream"`
	Logging LoggingConfig `yaml:"logging"`
}

// DisplayConfig holds sink selection and frame pacing.
type DisplayConfig struct {
	Sink       string `yaml:"sink"` // terminal, window or stream
	FPS        int    `yaml:"fps"`
	Width      int    `yaml:"width"`  // window sink, pixels
	Height     int    `yaml:"height"` // window sink, pixels
	Background string `yaml:"background"`
	Wireframe  bool   `yaml:"wireframe"`
	HUD        bool   `yaml:"hud"`
}

// SceneConfig holds the starting variant and the stroke style.
type SceneConfig struct {
	Variant string       `yaml:"variant"`
	Stroke  StrokeConfig `yaml:"stroke"`
}

// StrokeConfig holds the global polygon outline style.
type StrokeConfig struct {
	Color   string  `yaml:"color"`
	Width   int     `yaml:"width"`
	Opacity float64 `yaml:"opacity"`
}

// StreamConfig holds the WebSocket broadcaster settings.
type StreamConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			Sink:       "terminal",
			FPS:        30,
			Width:      960,
			Height:     640,
			Background: "#0b0e1a",
			Wireframe:  false,
			HUD:        true,
		},
		Scene: SceneConfig{
			Variant: "ripples",
			Stroke: StrokeConfig{
				Color:   "#000000",
				Width:   1,
				Opacity: 0.35,
			},
		},
		Stream: StreamConfig{
			Enabled: false,
			Addr:    ":8090",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
