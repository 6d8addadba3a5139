package game

import (
	"log/slog"
	"time"

	"github.com/pthm-cable/cruise/telemetry"
)

// startTasks registers the income timer and the frame task. The navigator
// calls it exactly once, when the game screen is first entered.
func (g *Game) startTasks() {
	g.incomeTask = g.sched.Every("income", g.cfg.Derived.IncomePeriod, g.incomeTick)
	g.frameTask = g.sched.EachFrame("frame", g.frameStep)
	g.collector.Restart(g.sched.Now().Seconds())

	slog.Info("game started",
		"money", g.state.Money(),
		"reputation", g.state.Reputation(),
		"income_period", g.cfg.Derived.IncomePeriod,
		"autoplay", g.autopilot != nil,
	)
}

// incomeTick pays out passive income for the fleet.
func (g *Game) incomeTick(now time.Duration) {
	defer g.perfCollector.TimeIncome()()
	g.state.SetElapsed(now.Seconds())
	income := g.state.CollectIncome()
	g.collector.RecordIncome(income)
}

// frameStep runs once per frame after any due income ticks.
func (g *Game) frameStep(now time.Duration) {
	g.perfCollector.BeginFrame()
	g.state.SetElapsed(now.Seconds())

	// 1. Remote commands
	g.perfCollector.Mark(telemetry.PhaseCommands)
	g.drainCommands()

	// 2. Autopilot
	if g.autopilot != nil {
		g.perfCollector.Mark(telemetry.PhaseAutopilot)
		g.autopilot.Tick(g, now)
	}

	// 3. Status feed, at most once per frame
	g.perfCollector.Mark(telemetry.PhaseBroadcast)
	g.publishStatus()

	// 4. Telemetry windows
	g.perfCollector.Mark(telemetry.PhaseTelemetry)
	g.flushTelemetry()

	g.perfCollector.EndFrame()
	g.tick++

	if g.maxTicks > 0 && int(g.tick) >= g.maxTicks {
		slog.Info("max ticks reached", "tick", g.tick)
		g.sched.Stop()
	}
}
