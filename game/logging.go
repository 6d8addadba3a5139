package game

import (
	"log/slog"

	"github.com/pthm-cable/cruise/economy"
)

// recordAction counts an action outcome and logs it. Rejections are routine
// in an idle game, so they log at debug.
func (g *Game) recordAction(a economy.Action, err error, attrs ...any) {
	g.collector.RecordAction(a, err)
	if err != nil {
		slog.Debug("action rejected", "action", string(a), "error", err, "money", g.state.Money())
		return
	}
	args := append([]any{"action", string(a), "money", g.state.Money()}, attrs...)
	slog.Debug("action", args...)
}
