// Package game owns a play session: the economy state, the scheduler that
// drives income and per-frame work, the autopilot, telemetry and the remote
// status feed. It has no window; package display draws it.
package game

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/pthm-cable/cruise/camera"
	"github.com/pthm-cable/cruise/config"
	"github.com/pthm-cable/cruise/economy"
	"github.com/pthm-cable/cruise/scheduler"
	"github.com/pthm-cable/cruise/server"
	"github.com/pthm-cable/cruise/telemetry"
	"github.com/pthm-cable/cruise/ui"
)

// Game holds the complete session state. All methods must be called from
// the loop goroutine.
type Game struct {
	cfg   *config.Config
	rng   *rand.Rand
	state *economy.State

	sched      *scheduler.Scheduler
	incomeTask *scheduler.Handle
	frameTask  *scheduler.Handle

	camera    *camera.Camera
	nav       *ui.Navigator
	autopilot *Autopilot

	// Telemetry
	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	milestones    *telemetry.MilestoneDetector
	outputManager *telemetry.OutputManager
	statsCallback func(telemetry.WindowStats)
	logStats      bool
	statusDirty   bool

	server *server.Server

	tick           int32
	maxTicks       int
	stepsPerUpdate int
}

// NewGameWithOptions creates a session. Headless sessions skip the start
// screen and begin immediately.
func NewGameWithOptions(cfg *config.Config, opts Options) (*Game, error) {
	rng := rand.New(rand.NewSource(opts.Seed))

	statsWindow := cfg.Telemetry.StatsWindow
	if opts.StatsWindowSec > 0 {
		statsWindow = opts.StatsWindowSec
	}
	steps := opts.StepsPerUpdate
	if steps < 1 {
		steps = 1
	}

	g := &Game{
		cfg:            cfg,
		rng:            rng,
		state:          economy.NewState(cfg, rng),
		sched:          scheduler.New(),
		camera:         camera.New(cfg.Derived.ScreenW32, cfg.Derived.ScreenH32, cfg.Ships),
		collector:      telemetry.NewCollector(statsWindow),
		perfCollector:  telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		milestones:     telemetry.NewMilestoneDetector(cfg.Economy.MaxReputation),
		logStats:       opts.LogStats,
		maxTicks:       opts.MaxTicks,
		stepsPerUpdate: steps,
	}
	g.nav = ui.NewNavigator(g.startTasks)
	if opts.Autoplay {
		g.autopilot = NewAutopilot(time.Duration(cfg.Telemetry.AutoplayInterval * float64(time.Second)))
	}
	g.state.OnChange(g.onStateChange)

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("creating output manager: %w", err)
	}
	g.outputManager = om
	if err := om.WriteConfig(cfg); err != nil {
		om.Close()
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	addr := cfg.Server.Addr
	if opts.ListenAddr != "" {
		addr = opts.ListenAddr
	}
	if addr != "" {
		g.server = server.New(cfg.Server)
		if _, err := g.server.Start(context.Background(), addr); err != nil {
			om.Close()
			return nil, err
		}
		g.server.PublishStatus(g.state.Snapshot())
	}

	if opts.Headless {
		g.nav.StartGame()
	}
	return g, nil
}

// State returns the economy state.
func (g *Game) State() *economy.State { return g.state }

// Navigator returns the screen navigator.
func (g *Game) Navigator() *ui.Navigator { return g.nav }

// Camera returns the viewport.
func (g *Game) Camera() *camera.Camera { return g.camera }

// Config returns the session configuration.
func (g *Game) Config() *config.Config { return g.cfg }

// Tick returns the number of frames stepped since the game started.
func (g *Game) Tick() int32 { return g.tick }

// Clock returns scheduler time in seconds. It advances on every step, even
// before the game starts, so the ocean animates behind the start screen.
func (g *Game) Clock() float64 { return g.sched.Now().Seconds() }

// Server returns the status server, or nil if disabled.
func (g *Game) Server() *server.Server { return g.server }

// SetStatsCallback registers a function called with every flushed stats window.
func (g *Game) SetStatsCallback(fn func(telemetry.WindowStats)) {
	g.statsCallback = fn
}

// Start leaves the start screen and starts the scheduler tasks.
// Reports whether this call started the game.
func (g *Game) Start() bool {
	return g.nav.StartGame()
}

// Step advances the session by dt of simulated time.
func (g *Game) Step(dt time.Duration) {
	g.sched.Advance(dt)
}

// UpdateHeadless advances StepsPerUpdate fixed frames.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.stepsPerUpdate && !g.sched.Stopped(); i++ {
		g.sched.Advance(g.cfg.Derived.FrameDT)
	}
}

// Run drives the session in real time until ctx is cancelled, Stop is
// called or MaxTicks is reached.
func (g *Game) Run(ctx context.Context) error {
	if err := g.sched.Run(ctx, scheduler.RealClock{}, g.cfg.Derived.FrameDT); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

// Stop halts the scheduler. Stopped sessions ignore further steps.
func (g *Game) Stop() {
	g.sched.Stop()
}

// Stopped reports whether the session has stopped.
func (g *Game) Stopped() bool {
	return g.sched.Stopped()
}

// Unload stops the session and releases output files and the status server.
func (g *Game) Unload() {
	g.sched.Stop()
	if err := g.outputManager.Close(); err != nil {
		slog.Error("closing output files", "error", err)
	}
	if g.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := g.server.Shutdown(ctx); err != nil {
			slog.Error("stopping status server", "error", err)
		}
	}
}
