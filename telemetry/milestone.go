package telemetry

import (
	"fmt"
	"log/slog"

	"github.com/pthm-cable/cruise/economy"
)

// MilestoneType identifies the type of milestone.
type MilestoneType string

const (
	MilestoneFirstShip       MilestoneType = "first_ship"
	MilestoneFleetSize       MilestoneType = "fleet_size"
	MilestoneReputationMaxed MilestoneType = "reputation_maxed"
	MilestoneCurrency        MilestoneType = "currency"
)

// Milestone is a progress marker reached once per session.
type Milestone struct {
	Type        MilestoneType `csv:"type"`
	SimTime     float64       `csv:"sim_time"`
	Value       int64         `csv:"value"`
	Description string        `csv:"description"`
}

// LogMilestone logs the milestone using slog.
func (m Milestone) LogMilestone() {
	slog.Info("milestone",
		"type", string(m.Type),
		"sim_time", m.SimTime,
		"value", m.Value,
		"description", m.Description,
	)
}

// Default thresholds.
var (
	DefaultFleetSizes = []int{5, 10, 25}
	DefaultCurrencies = []int64{10_000, 100_000, 1_000_000}
)

// MilestoneDetector reports each milestone the first time a snapshot reaches it.
type MilestoneDetector struct {
	fleetSizes    []int
	currencies    []int64
	maxReputation int

	reached map[string]bool
}

// NewMilestoneDetector creates a detector with the default thresholds.
func NewMilestoneDetector(maxReputation int) *MilestoneDetector {
	return &MilestoneDetector{
		fleetSizes:    DefaultFleetSizes,
		currencies:    DefaultCurrencies,
		maxReputation: maxReputation,
		reached:       make(map[string]bool),
	}
}

// Check compares a snapshot against every threshold and returns newly
// reached milestones in a fixed order.
func (md *MilestoneDetector) Check(snap economy.Snapshot) []Milestone {
	var out []Milestone

	if snap.Ships >= 1 {
		if m, ok := md.mark(MilestoneFirstShip, 1, snap.Elapsed, "Launched the first cruise ship"); ok {
			out = append(out, m)
		}
	}
	for _, n := range md.fleetSizes {
		if snap.Ships >= n {
			if m, ok := md.mark(MilestoneFleetSize, int64(n), snap.Elapsed, fmt.Sprintf("Fleet reached %d ships", n)); ok {
				out = append(out, m)
			}
		}
	}
	if md.maxReputation > 0 && snap.Reputation >= md.maxReputation {
		if m, ok := md.mark(MilestoneReputationMaxed, int64(snap.Reputation), snap.Elapsed, "Reputation maxed out"); ok {
			out = append(out, m)
		}
	}
	for _, c := range md.currencies {
		if snap.Money >= c {
			if m, ok := md.mark(MilestoneCurrency, c, snap.Elapsed, fmt.Sprintf("Balance reached $%d", c)); ok {
				out = append(out, m)
			}
		}
	}

	return out
}

// Reached returns how many milestones have fired.
func (md *MilestoneDetector) Reached() int {
	return len(md.reached)
}

func (md *MilestoneDetector) mark(t MilestoneType, value int64, simTime float64, desc string) (Milestone, bool) {
	key := fmt.Sprintf("%s/%d", t, value)
	if md.reached[key] {
		return Milestone{}, false
	}
	md.reached[key] = true
	return Milestone{Type: t, SimTime: simTime, Value: value, Description: desc}, true
}
