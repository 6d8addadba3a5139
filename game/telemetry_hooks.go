package game

import (
	"log/slog"

	"github.com/pthm-cable/cruise/economy"
)

// onStateChange runs after every successful action and income tick.
func (g *Game) onStateChange(snap economy.Snapshot) {
	g.statusDirty = true

	for _, m := range g.milestones.Check(snap) {
		m.LogMilestone()
		if err := g.outputManager.WriteMilestone(m); err != nil {
			slog.Error("failed to write milestone", "error", err)
		}
	}
}

// publishStatus pushes the latest readout to remote clients if it changed.
func (g *Game) publishStatus() {
	if !g.statusDirty || g.server == nil {
		return
	}
	g.statusDirty = false
	g.server.PublishStatus(g.state.Snapshot())
}

// flushTelemetry checks if the stats window should be flushed.
func (g *Game) flushTelemetry() {
	now := g.state.Elapsed()
	if !g.collector.ShouldFlush(now) {
		return
	}

	stats := g.collector.Flush(now, g.state.Snapshot(), g.state.Fleet().Ships())
	perfStats := g.perfCollector.Stats()
	g.perfCollector.Reset()

	// Call stats callback if provided
	if g.statsCallback != nil {
		g.statsCallback(stats)
	}

	// Log stats if enabled (console output)
	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	// Write to CSV if output manager is enabled
	if g.outputManager != nil {
		if err := g.outputManager.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
		if err := g.outputManager.WritePerf(perfStats, stats.SimTimeSec); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}
