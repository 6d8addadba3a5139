package main

import (
	"math"
	"testing"

	"github.com/pthm-cable/cruise/config"
	"github.com/pthm-cable/cruise/telemetry"
)

func TestParamVectorRoundTrip(t *testing.T) {
	pv := NewParamVector()
	raw := pv.DefaultVector()
	back := pv.Denormalize(pv.Normalize(raw))
	for i := range raw {
		if d := back[i] - raw[i]; d > 1e-9 || d < -1e-9 {
			t.Errorf("%s: round trip = %v, want %v", pv.Specs[i].Name, back[i], raw[i])
		}
	}
}

func TestParamVectorMatchesDefaults(t *testing.T) {
	pv := NewParamVector()
	got := pv.ExtractFromConfig(config.Default())
	want := pv.DefaultVector()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%s: config default = %v, spec default = %v", pv.Specs[i].Path, got[i], want[i])
		}
	}
}

func TestApplyToConfigClampsAndRounds(t *testing.T) {
	pv := NewParamVector()
	cfg := config.Default()
	pv.ApplyToConfig(cfg, []float64{10, 299.6, 99999, -3, 7.4})

	if cfg.Economy.BuyPrice != 100 {
		t.Errorf("BuyPrice = %d, want 100 (clamped to min)", cfg.Economy.BuyPrice)
	}
	if cfg.Economy.UpgradePrice != 300 {
		t.Errorf("UpgradePrice = %d, want 300 (rounded)", cfg.Economy.UpgradePrice)
	}
	if cfg.Economy.AdvertisePrice != 1500 {
		t.Errorf("AdvertisePrice = %d, want 1500 (clamped to max)", cfg.Economy.AdvertisePrice)
	}
	if cfg.Economy.UpgradeReputation != 0 || cfg.Economy.AdvertiseReputation != 7 {
		t.Errorf("reputation gains = %d/%d, want 0/7",
			cfg.Economy.UpgradeReputation, cfg.Economy.AdvertiseReputation)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("tuned config fails validation: %v", err)
	}
}

func TestActionMix(t *testing.T) {
	tests := []struct {
		name    string
		windows []telemetry.WindowStats
		want    float64
	}{
		{"no actions", nil, 0},
		{"buys only", []telemetry.WindowStats{{Buys: 4}}, 0},
		{"even", []telemetry.WindowStats{{Buys: 1, Upgrades: 1}, {Adverts: 1}}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := actionMix(tt.windows)
			if d := got - tt.want; d > 1e-9 || d < -1e-9 {
				t.Errorf("actionMix() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComputeFitness(t *testing.T) {
	fe := NewFitnessEvaluator(NewParamVector(), Target{Ships: 5, Seconds: 100, HorizonSec: 300}, nil, config.Default())

	if got := fe.computeFitness(100, 1); got != 0 {
		t.Errorf("on-target balanced fitness = %v, want 0", got)
	}
	onTime := fe.computeFitness(100, 0)
	late := fe.computeFitness(150, 0)
	if late <= onTime {
		t.Errorf("late fitness %v should exceed on-time %v", late, onTime)
	}
	never := fe.computeFitness(math.Inf(1), 1)
	if never != missPenalty*missPenalty {
		t.Errorf("unreached fitness = %v, want %v", never, missPenalty*missPenalty)
	}
}

func TestRunGameReachesTarget(t *testing.T) {
	fe := NewFitnessEvaluator(NewParamVector(), Target{Ships: 2, Seconds: 60, HorizonSec: 120}, []int64{7}, config.Default())
	r := fe.runGame(config.Default(), 7)
	if r.reachSec <= 0 || r.reachSec > 120 {
		t.Fatalf("reachSec = %v, want within (0, 120]", r.reachSec)
	}
}
