package camera

import (
	"math/rand"
	"testing"

	"github.com/pthm-cable/cruise/config"
)

func newTestCamera() *Camera {
	return New(1000, 500, config.Default().Ships)
}

func TestNew(t *testing.T) {
	cam := newTestCamera()
	if cam.ViewportW != 1000 || cam.ViewportH != 500 {
		t.Errorf("expected viewport 1000x500, got %fx%f", cam.ViewportW, cam.ViewportH)
	}
	if cam.OceanLine != 0.6 {
		t.Errorf("expected ocean line 0.6, got %f", cam.OceanLine)
	}
}

func TestInOcean(t *testing.T) {
	cam := newTestCamera()

	testCases := []struct {
		name   string
		sx, sy float32
		want   bool
	}{
		{"sky", 500, 100, false},
		{"on the line", 500, 300, false},
		{"just below the line", 500, 301, true},
		{"bottom edge", 10, 499, true},
		{"off screen right", 1200, 400, false},
		{"off screen below", 500, 600, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := cam.InOcean(tc.sx, tc.sy); got != tc.want {
				t.Errorf("InOcean(%f, %f) = %v, want %v", tc.sx, tc.sy, got, tc.want)
			}
		})
	}
}

func TestResize(t *testing.T) {
	cam := newTestCamera()

	if cam.Resize(1000, 500) {
		t.Error("expected no change for identical size")
	}
	if !cam.Resize(800, 1000) {
		t.Fatal("expected resize to report a change")
	}
	// Ocean band follows the new height
	if cam.InOcean(400, 550) {
		t.Error("y=550 should be above the ocean line at height 1000")
	}
	if !cam.InOcean(400, 700) {
		t.Error("y=700 should be in the ocean at height 1000")
	}
}

func TestSpawnPointBounds(t *testing.T) {
	cam := newTestCamera()
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 1000; i++ {
		x, y := cam.SpawnPoint(rng)
		if x < 200 || x > 800 {
			t.Fatalf("spawn x = %f, want in [200, 800]", x)
		}
		if y < 350 || y > 450 {
			t.Fatalf("spawn y = %f, want in [350, 450]", y)
		}
		if !cam.InOcean(x, y) {
			t.Fatalf("spawn point (%f, %f) not in ocean", x, y)
		}
	}
}

func TestClamp(t *testing.T) {
	cam := newTestCamera()
	x, y := cam.Clamp(-5, 900)
	if x != 0 || y != 500 {
		t.Errorf("Clamp(-5, 900) = (%f, %f), want (0, 500)", x, y)
	}
}
