package main

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/cruise/config"
	"github.com/pthm-cable/cruise/game"
	"github.com/pthm-cable/cruise/telemetry"
)

// Target describes the pacing a balanced economy should hit.
type Target struct {
	Ships      int     // Fleet size to reach
	Seconds    float64 // When the fleet should reach it
	HorizonSec float64 // Give up after this long
}

// FitnessEvaluator runs headless autopilot games and scores their pacing.
type FitnessEvaluator struct {
	params      *ParamVector
	target      Target
	seeds       []int64
	baseConfig  *config.Config
	statsWindow float64

	mu           sync.Mutex
	lastReachSec float64 // mean reach time from the most recent Evaluate call
	lastMix      float64
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, target Target, seeds []int64, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:      params,
		target:      target,
		seeds:       seeds,
		baseConfig:  baseCfg,
		statsWindow: 10.0,
	}
}

// LastReachSec returns the mean time to target from the most recent evaluation.
func (fe *FitnessEvaluator) LastReachSec() float64 {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastReachSec
}

// LastMix returns the action mix score from the most recent evaluation.
func (fe *FitnessEvaluator) LastMix() float64 {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastMix
}

// runResult holds the results from a single game.
type runResult struct {
	reachSec    float64 // sim seconds until the target fleet size (Inf if never)
	windowStats []telemetry.WindowStats
}

// Evaluate computes fitness for a parameter vector (lower = better).
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	cfg := fe.copyConfig()
	fe.params.ApplyToConfig(cfg, x)

	results := make([]*runResult, len(fe.seeds))
	var wg sync.WaitGroup
	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			results[idx] = fe.runGame(cfg, s)
		}(i, seed)
	}
	wg.Wait()

	fitness := make([]float64, len(results))
	reach := make([]float64, len(results))
	mix := make([]float64, len(results))
	for i, r := range results {
		reach[i] = math.Min(r.reachSec, fe.target.HorizonSec)
		mix[i] = actionMix(r.windowStats)
		fitness[i] = fe.computeFitness(r.reachSec, mix[i])
	}

	fe.mu.Lock()
	fe.lastReachSec = stat.Mean(reach, nil)
	fe.lastMix = stat.Mean(mix, nil)
	fe.mu.Unlock()

	return stat.Mean(fitness, nil)
}

// runGame plays one headless autopilot game until the target fleet size or
// the horizon, whichever comes first.
func (fe *FitnessEvaluator) runGame(cfg *config.Config, seed int64) *runResult {
	result := &runResult{reachSec: math.Inf(1)}

	fps := float64(cfg.Screen.TargetFPS)
	g, err := game.NewGameWithOptions(cfg, game.Options{
		Seed:           seed,
		Headless:       true,
		Autoplay:       true,
		MaxTicks:       int(fe.target.HorizonSec * fps),
		StepsPerUpdate: 1,
		StatsWindowSec: fe.statsWindow,
	})
	if err != nil {
		return result
	}
	defer g.Unload()
	g.SetStatsCallback(func(stats telemetry.WindowStats) {
		result.windowStats = append(result.windowStats, stats)
	})

	for !g.Stopped() {
		g.UpdateHeadless()
		if g.State().Fleet().Len() >= fe.target.Ships {
			result.reachSec = g.Clock()
			break
		}
	}
	return result
}

// copyConfig creates a copy of the base config.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	cfg := *fe.baseConfig
	return &cfg
}

// Fitness weights.
const (
	missPenalty = 4.0 // Relative error charged when the target is never reached
	mixWeight   = 0.25
)

// computeFitness scores one game: squared relative pacing error plus a
// penalty for an autopilot that only ever buys.
func (fe *FitnessEvaluator) computeFitness(reachSec, mix float64) float64 {
	relErr := missPenalty
	if !math.IsInf(reachSec, 1) {
		relErr = (reachSec - fe.target.Seconds) / fe.target.Seconds
	}
	return relErr*relErr + mixWeight*(1-mix)
}

// actionMix returns how evenly the autopilot spread its actions across buy,
// upgrade and advertise, as normalized entropy in [0, 1].
func actionMix(windows []telemetry.WindowStats) float64 {
	var counts [3]float64
	for _, w := range windows {
		counts[0] += float64(w.Buys)
		counts[1] += float64(w.Upgrades)
		counts[2] += float64(w.Adverts)
	}
	total := counts[0] + counts[1] + counts[2]
	if total == 0 {
		return 0
	}
	p := make([]float64, len(counts))
	for i, c := range counts {
		p[i] = c / total
	}
	return stat.Entropy(p) / math.Log(float64(len(p)))
}
