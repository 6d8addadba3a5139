package game

// Options configures a game session. Zero values fall back to config.
type Options struct {
	Seed           int64
	Headless       bool
	MaxTicks       int     // Stop after N frames (0 = unlimited)
	StepsPerUpdate int     // Frames advanced per UpdateHeadless call
	OutputDir      string  // CSV telemetry and config snapshot (empty = disabled)
	LogStats       bool    // Log each stats window via slog
	StatsWindowSec float64 // 0 = use config
	Autoplay       bool    // Let the autopilot play
	ListenAddr     string  // Status feed address (empty = use config, which may disable it)
}

// DefaultOptions returns options for an interactive session.
func DefaultOptions() Options {
	return Options{
		Seed:           42,
		StepsPerUpdate: 1,
	}
}
