package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/cruise/config"
	"github.com/pthm-cable/cruise/display"
	"github.com/pthm-cable/cruise/game"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	statsWindow := flag.Float64("stats-window", 0, "Stats window size in seconds (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N frames (0 = unlimited)")
	stepsPerUpdate := flag.Int("steps-per-update", 1, "Frames per update call (higher = faster headless runs)")
	autoplay := flag.Bool("autoplay", false, "Let the autopilot buy, upgrade and advertise")
	listen := flag.String("listen", "", "Serve the websocket status feed on this address (e.g. :8080)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Set up seed
	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	opts := game.Options{
		Seed:           rngSeed,
		Headless:       *headless,
		MaxTicks:       *maxTicks,
		StepsPerUpdate: *stepsPerUpdate,
		OutputDir:      *outputDir,
		LogStats:       *logStats,
		StatsWindowSec: *statsWindow,
		Autoplay:       *autoplay,
		ListenAddr:     *listen,
	}

	if *headless {
		runHeadless(cfg, opts)
		return
	}
	runWindowed(cfg, opts)
}

// runHeadless steps the game without a window. With a status feed the game
// runs in real time so remote players see a live economy; otherwise frames
// are stepped as fast as possible.
func runHeadless(cfg *config.Config, opts game.Options) {
	g, err := game.NewGameWithOptions(cfg, opts)
	if err != nil {
		slog.Error("failed to create game", "error", err)
		os.Exit(1)
	}
	defer g.Unload()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("starting headless simulation",
		"seed", opts.Seed,
		"max_ticks", opts.MaxTicks,
		"steps_per_update", opts.StepsPerUpdate,
		"autoplay", opts.Autoplay,
		"realtime", g.Server() != nil,
	)

	if g.Server() != nil {
		if err := g.Run(ctx); err != nil {
			slog.Error("simulation failed", "error", err)
		}
	} else {
		for ctx.Err() == nil && !g.Stopped() {
			g.UpdateHeadless()
		}
	}

	snap := g.State().Snapshot()
	slog.Info("simulation finished",
		"tick", g.Tick(),
		"money", snap.Money,
		"ships", snap.Ships,
		"passengers", snap.Passengers,
		"reputation", snap.Reputation,
	)
}

// runWindowed opens a raylib window and drives the game from its frame loop.
func runWindowed(cfg *config.Config, opts game.Options) {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g, err := game.NewGameWithOptions(cfg, opts)
	if err != nil {
		slog.Error("failed to create game", "error", err)
		os.Exit(1)
	}
	defer g.Unload()

	w, err := display.New(g)
	if err != nil {
		slog.Error("failed to create window", "error", err)
		os.Exit(1)
	}

	for !w.ShouldClose() {
		w.Update()
		w.Draw()
	}
}
