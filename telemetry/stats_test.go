package telemetry

import (
	"math"
	"testing"
)

func TestComputeDistribution(t *testing.T) {
	tests := []struct {
		name          string
		values        []float64
		mean          float64
		p10, p50, p90 float64
	}{
		{"empty slice", []float64{}, 0, 0, 0, 0},
		{"single element", []float64{5}, 5, 5, 5, 5},
		{"five", []float64{5, 3, 1, 4, 2}, 3, 1, 3, 5},
		{"ten", []float64{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}, 5.5, 1, 5, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mean, p10, p50, p90 := ComputeDistribution(tt.values)
			got := []float64{mean, p10, p50, p90}
			want := []float64{tt.mean, tt.p10, tt.p50, tt.p90}
			for i := range got {
				if math.Abs(got[i]-want[i]) > 1e-9 {
					t.Errorf("ComputeDistribution(%v) = %v, want %v", tt.values, got, want)
					break
				}
			}
		})
	}
}

func TestComputeDistributionLeavesInput(t *testing.T) {
	values := []float64{3, 1, 2}
	ComputeDistribution(values)
	if values[0] != 3 || values[1] != 1 || values[2] != 2 {
		t.Errorf("input reordered: %v", values)
	}
}

func TestComputeSpread(t *testing.T) {
	mean, std := ComputeSpread([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if math.Abs(mean-5) > 1e-9 || math.Abs(std-2) > 1e-9 {
		t.Errorf("ComputeSpread = (%v, %v), want (5, 2)", mean, std)
	}

	mean, std = ComputeSpread([]float64{3})
	if mean != 3 || std != 0 {
		t.Errorf("single value spread = (%v, %v), want (3, 0)", mean, std)
	}
}
