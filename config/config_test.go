package config

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}

	if cfg.Economy.StartingMoney != 1000 {
		t.Errorf("StartingMoney = %d, want 1000", cfg.Economy.StartingMoney)
	}
	if cfg.Economy.StartingReputation != 50 {
		t.Errorf("StartingReputation = %d, want 50", cfg.Economy.StartingReputation)
	}
	if cfg.Economy.BuyPrice != 500 || cfg.Economy.UpgradePrice != 300 || cfg.Economy.AdvertisePrice != 200 {
		t.Errorf("prices = %d/%d/%d, want 500/300/200",
			cfg.Economy.BuyPrice, cfg.Economy.UpgradePrice, cfg.Economy.AdvertisePrice)
	}
	if cfg.Ships.InitialPassengers != (Range{Min: 5, Max: 14}) {
		t.Errorf("InitialPassengers = %+v, want {5 14}", cfg.Ships.InitialPassengers)
	}
	if cfg.Derived.IncomePeriod != time.Second {
		t.Errorf("Derived.IncomePeriod = %v, want 1s", cfg.Derived.IncomePeriod)
	}
	if cfg.Derived.FrameDT != time.Second/60 {
		t.Errorf("Derived.FrameDT = %v, want %v", cfg.Derived.FrameDT, time.Second/60)
	}
}

func TestLoadMergesUserFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte("economy:\n  starting_money: 5000\n  buy_price: 750\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if cfg.Economy.StartingMoney != 5000 {
		t.Errorf("StartingMoney = %d, want 5000", cfg.Economy.StartingMoney)
	}
	if cfg.Economy.BuyPrice != 750 {
		t.Errorf("BuyPrice = %d, want 750", cfg.Economy.BuyPrice)
	}
	// Untouched fields keep their defaults
	if cfg.Economy.UpgradePrice != 300 {
		t.Errorf("UpgradePrice = %d, want 300", cfg.Economy.UpgradePrice)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero price", "economy:\n  buy_price: 0\n"},
		{"reputation out of range", "economy:\n  starting_reputation: 150\n"},
		{"inverted range", "ships:\n  initial_passengers: { min: 9, max: 3 }\n"},
		{"advertise may not add zero", "ships:\n  advertise_passengers: { min: 0, max: 5 }\n"},
		{"zero income period", "economy:\n  income_period: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Errorf("Load(%q) succeeded, want error", tt.yaml)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Economy.StartingMoney = 4242

	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if loaded.Economy.StartingMoney != 4242 {
		t.Errorf("StartingMoney = %d, want 4242", loaded.Economy.StartingMoney)
	}
}

func TestRangeSample(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	r := Range{Min: 5, Max: 14}
	seen := make(map[int]bool)
	for i := 0; i < 2000; i++ {
		v := r.Sample(rng)
		if v < 5 || v > 14 {
			t.Fatalf("Sample() = %d, want in [5,14]", v)
		}
		seen[v] = true
	}
	if len(seen) != 10 {
		t.Errorf("saw %d distinct values, want 10", len(seen))
	}

	if got := (Range{Min: 3, Max: 3}).Sample(rng); got != 3 {
		t.Errorf("degenerate Sample() = %d, want 3", got)
	}
}
