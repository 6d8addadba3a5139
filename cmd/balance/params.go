package main

import (
	"math"

	"github.com/pthm-cable/cruise/config"
)

// ParamSpec defines a single tunable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
}

// ParamVector holds the set of all tunable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of economy parameters.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			{Name: "buy_price", Path: "economy.buy_price", Min: 100, Max: 3000, Default: 500},
			{Name: "upgrade_price", Path: "economy.upgrade_price", Min: 50, Max: 2000, Default: 300},
			{Name: "advertise_price", Path: "economy.advertise_price", Min: 25, Max: 1500, Default: 200},
			{Name: "upgrade_reputation", Path: "economy.upgrade_reputation", Min: 0, Max: 10, Default: 2},
			{Name: "advertise_reputation", Path: "economy.advertise_reputation", Min: 0, Max: 20, Default: 5},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds and rounds them to the
// integers the economy uses.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		val := math.Round(v[i])
		if val < spec.Min {
			val = spec.Min
		}
		if val > spec.Max {
			val = spec.Max
		}
		clamped[i] = val
	}
	return clamped
}

// ApplyToConfig applies parameter values to a Config struct.
// Order must match Specs order.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	clamped := pv.Clamp(values)
	cfg.Economy.BuyPrice = int64(clamped[0])
	cfg.Economy.UpgradePrice = int64(clamped[1])
	cfg.Economy.AdvertisePrice = int64(clamped[2])
	cfg.Economy.UpgradeReputation = int(clamped[3])
	cfg.Economy.AdvertiseReputation = int(clamped[4])
}

// ExtractFromConfig extracts current parameter values from a Config struct.
func (pv *ParamVector) ExtractFromConfig(cfg *config.Config) []float64 {
	return []float64{
		float64(cfg.Economy.BuyPrice),
		float64(cfg.Economy.UpgradePrice),
		float64(cfg.Economy.AdvertisePrice),
		float64(cfg.Economy.UpgradeReputation),
		float64(cfg.Economy.AdvertiseReputation),
	}
}
