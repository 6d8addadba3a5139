// Package telemetry provides windowed economy statistics, milestones,
// performance timing and CSV experiment output.
package telemetry

import (
	"errors"

	"github.com/pthm-cable/cruise/economy"
	"github.com/pthm-cable/cruise/fleet"
)

// Collector accumulates events within time windows and produces WindowStats.
type Collector struct {
	windowDurationSec float64

	// Current window tracking
	windowStartSec float64

	// Event counters for current window
	buys        int
	upgrades    int
	adverts     int
	rejected    int
	noShips     int
	income      int64
	incomeTicks int
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
func NewCollector(windowDurationSec float64) *Collector {
	if windowDurationSec <= 0 {
		windowDurationSec = 10
	}
	return &Collector{windowDurationSec: windowDurationSec}
}

// Restart discards the current window and opens a new one at nowSec.
func (c *Collector) Restart(nowSec float64) {
	c.Flush(nowSec, economy.Snapshot{}, nil)
}

// RecordAction records the outcome of a priced action.
func (c *Collector) RecordAction(a economy.Action, err error) {
	if err != nil {
		c.rejected++
		if errors.Is(err, economy.ErrNoShips) {
			c.noShips++
		}
		return
	}
	switch a {
	case economy.ActionBuy:
		c.buys++
	case economy.ActionUpgrade:
		c.upgrades++
	case economy.ActionAdvertise:
		c.adverts++
	}
}

// RecordIncome records one income tick.
func (c *Collector) RecordIncome(amount int64) {
	c.income += amount
	c.incomeTicks++
}

// ShouldFlush returns true if enough simulated time has passed to flush the window.
func (c *Collector) ShouldFlush(nowSec float64) bool {
	return nowSec-c.windowStartSec >= c.windowDurationSec
}

// Flush produces a WindowStats and resets counters for the next window.
// snap is the readout at window end; ships is the fleet at window end.
func (c *Collector) Flush(nowSec float64, snap economy.Snapshot, ships []fleet.Ship) WindowStats {
	passengers := make([]float64, len(ships))
	levels := make([]float64, len(ships))
	var incomePerTick int64
	levelMax := 0
	for i, s := range ships {
		passengers[i] = float64(s.Passengers)
		levels[i] = float64(s.Level)
		incomePerTick += s.Income()
		levelMax = max(levelMax, s.Level)
	}

	pMean, p10, p50, p90 := ComputeDistribution(passengers)
	lMean, lStd := ComputeSpread(levels)

	stats := WindowStats{
		WindowStartSec: c.windowStartSec,
		SimTimeSec:     nowSec,

		Money:      snap.Money,
		Passengers: snap.Passengers,
		Reputation: snap.Reputation,
		Ships:      snap.Ships,

		Income:        c.income,
		IncomeTicks:   c.incomeTicks,
		IncomePerTick: incomePerTick,

		Buys:     c.buys,
		Upgrades: c.upgrades,
		Adverts:  c.adverts,
		Rejected: c.rejected,
		NoShips:  c.noShips,

		PassengersMean: pMean,
		PassengersP10:  p10,
		PassengersP50:  p50,
		PassengersP90:  p90,

		LevelMean: lMean,
		LevelStd:  lStd,
		LevelMax:  levelMax,
	}

	// Reset for next window
	c.windowStartSec = nowSec
	c.buys = 0
	c.upgrades = 0
	c.adverts = 0
	c.rejected = 0
	c.noShips = 0
	c.income = 0
	c.incomeTicks = 0

	return stats
}
