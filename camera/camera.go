// Package camera tracks the visible ocean surface and maps input onto it.
package camera

import (
	"math/rand"

	"github.com/pthm-cable/cruise/config"
)

// Camera describes the drawable surface. The scene is drawn 1:1 in screen
// space, so the camera only tracks viewport size and the regions derived from it.
type Camera struct {
	// Viewport dimensions (screen size)
	ViewportW, ViewportH float32

	// Clicks below OceanLine*ViewportH land on the water
	OceanLine float32

	// Spawn area as fractions of the viewport
	SpawnMinX, SpawnMaxX float32
	SpawnMinY, SpawnMaxY float32
}

// New creates a camera for a viewport of the given size.
func New(viewportW, viewportH float32, ships config.ShipsConfig) *Camera {
	return &Camera{
		ViewportW: viewportW,
		ViewportH: viewportH,
		OceanLine: ships.OceanLine,
		SpawnMinX: ships.SpawnMinX,
		SpawnMaxX: ships.SpawnMaxX,
		SpawnMinY: ships.SpawnMinY,
		SpawnMaxY: ships.SpawnMaxY,
	}
}

// Resize updates viewport dimensions. Reports whether anything changed.
func (c *Camera) Resize(viewportW, viewportH float32) bool {
	if viewportW == c.ViewportW && viewportH == c.ViewportH {
		return false
	}
	c.ViewportW = viewportW
	c.ViewportH = viewportH
	return true
}

// InOcean reports whether a screen point is in the clickable water band.
func (c *Camera) InOcean(sx, sy float32) bool {
	if sx < 0 || sx >= c.ViewportW || sy >= c.ViewportH {
		return false
	}
	return sy > c.OceanLine*c.ViewportH
}

// SpawnPoint picks a uniform point in the spawn area: x in [minX*w, maxX*w),
// y in [minY*h, maxY*h).
func (c *Camera) SpawnPoint(rng *rand.Rand) (x, y float32) {
	x = lerp(c.SpawnMinX, c.SpawnMaxX, rng.Float32()) * c.ViewportW
	y = lerp(c.SpawnMinY, c.SpawnMaxY, rng.Float32()) * c.ViewportH
	return x, y
}

// Clamp pulls a point back inside the viewport.
func (c *Camera) Clamp(sx, sy float32) (float32, float32) {
	return clamp(sx, 0, c.ViewportW), clamp(sy, 0, c.ViewportH)
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// clamp restricts a value to a range.
func clamp(x, min, max float32) float32 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
