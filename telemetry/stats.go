package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated economy statistics for a time window.
type WindowStats struct {
	WindowStartSec float64 `csv:"-"`
	SimTimeSec     float64 `csv:"sim_time"`

	// Readout at window end
	Money      int64 `csv:"money"`
	Passengers int   `csv:"passengers"`
	Reputation int   `csv:"reputation"`
	Ships      int   `csv:"ships"`

	// Income during window
	Income        int64 `csv:"income"`
	IncomeTicks   int   `csv:"income_ticks"`
	IncomePerTick int64 `csv:"income_per_tick"` // Rate at window end

	// Actions during window
	Buys     int `csv:"buys"`
	Upgrades int `csv:"upgrades"`
	Adverts  int `csv:"adverts"`
	Rejected int `csv:"rejected"`
	NoShips  int `csv:"no_ships"` // Rejected upgrades with an empty fleet

	// Per-ship passenger distribution (sampled at window end)
	PassengersMean float64 `csv:"passengers_mean"`
	PassengersP10  float64 `csv:"passengers_p10"`
	PassengersP50  float64 `csv:"passengers_p50"`
	PassengersP90  float64 `csv:"passengers_p90"`

	// Level distribution
	LevelMean float64 `csv:"level_mean"`
	LevelStd  float64 `csv:"level_std"`
	LevelMax  int     `csv:"level_max"`
}

// ComputeDistribution returns the mean and the empirical 10th, 50th and
// 90th percentiles of values. Returns zeros for an empty slice.
func ComputeDistribution(values []float64) (mean, p10, p50, p90 float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mean = stat.Mean(sorted, nil)
	p10 = stat.Quantile(0.10, stat.Empirical, sorted, nil)
	p50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)
	return mean, p10, p50, p90
}

// ComputeSpread returns the population mean and standard deviation.
func ComputeSpread(values []float64) (mean, std float64) {
	if len(values) == 0 {
		return 0, 0
	}
	return stat.PopMeanStdDev(values, nil)
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("window_start", s.WindowStartSec),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int64("money", s.Money),
		slog.Int("passengers", s.Passengers),
		slog.Int("reputation", s.Reputation),
		slog.Int("ships", s.Ships),
		slog.Int64("income", s.Income),
		slog.Int("income_ticks", s.IncomeTicks),
		slog.Int64("income_per_tick", s.IncomePerTick),
		slog.Int("buys", s.Buys),
		slog.Int("upgrades", s.Upgrades),
		slog.Int("adverts", s.Adverts),
		slog.Int("rejected", s.Rejected),
		slog.Int("no_ships", s.NoShips),
		slog.Float64("passengers_mean", s.PassengersMean),
		slog.Float64("passengers_p10", s.PassengersP10),
		slog.Float64("passengers_p50", s.PassengersP50),
		slog.Float64("passengers_p90", s.PassengersP90),
		slog.Float64("level_mean", s.LevelMean),
		slog.Float64("level_std", s.LevelStd),
		slog.Int("level_max", s.LevelMax),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"sim_time", s.SimTimeSec,
		"money", s.Money,
		"passengers", s.Passengers,
		"reputation", s.Reputation,
		"ships", s.Ships,
		"income", s.Income,
		"income_per_tick", s.IncomePerTick,
		"buys", s.Buys,
		"upgrades", s.Upgrades,
		"adverts", s.Adverts,
		"rejected", s.Rejected,
		"no_ships", s.NoShips,
		"passengers_p50", s.PassengersP50,
		"level_mean", s.LevelMean,
		"level_max", s.LevelMax,
	)
}
