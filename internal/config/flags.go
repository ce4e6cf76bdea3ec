package config

import "flag"

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagSink      = flag.String("sink", "", "Output sink: terminal, window or stream")
	flagVariant   = flag.String("variant", "", "Wave variant: ripples, lattice, vortex or swell")
	flagFPS       = flag.Int("fps", 0, "Target frames per second")
	flagWidth     = flag.Int("width", 0, "Window width in pixels")
	flagHeight    = flag.Int("height", 0, "Window height in pixels")
	flagAddr      = flag.String("addr", "", "Stream listen address (implies -stream)")
	flagStream    = flag.Bool("stream", false, "Broadcast frames over WebSocket alongside the sink")
	flagWireframe = flag.Bool("wireframe", false, "Start in wireframe mode")
	flagLogFile   = flag.String("log-file", "", "Log file path")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via -config.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagSink != "" {
		cfg.Display.Sink = *flagSink
	}
	if *flagVariant != "" {
		cfg.Scene.Variant = *flagVariant
	}
	if *flagFPS > 0 {
		cfg.Display.FPS = *flagFPS
	}
	if *flagWidth > 0 {
		cfg.Display.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Display.Height = *flagHeight
	}
	if *flagAddr != "" {
		cfg.Stream.Addr = *flagAddr
		cfg.Stream.Enabled = true
	}
	if *flagStream {
		cfg.Stream.Enabled = true
	}
	if *flagWireframe {
		cfg.Display.Wireframe = true
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
}
