package renderer

import (
	"fmt"
	"math"

	"github.com/pthm-cable/cruise/components"
	"github.com/pthm-cable/cruise/config"
)

// Frame describes the surface and clock for one redraw.
type Frame struct {
	Width, Height float32
	Elapsed       float64 // seconds since the loop started
}

// WaterBackground renders the gradient sea and its animated wave strokes.
type WaterBackground struct {
	top, bottom    components.Color
	waveColor      components.Color
	waveThickness  float32
	spacing, step  float32
	amplitude      float64
	wavelength     float64
	swellAmplitude float64

	points []Vec2 // scratch buffer reused between strokes
}

// NewWaterBackground creates a water renderer from ocean settings.
func NewWaterBackground(cfg config.OceanConfig) (*WaterBackground, error) {
	top, err := components.ParseHex(cfg.TopColor)
	if err != nil {
		return nil, fmt.Errorf("ocean top color: %w", err)
	}
	bottom, err := components.ParseHex(cfg.BottomColor)
	if err != nil {
		return nil, fmt.Errorf("ocean bottom color: %w", err)
	}
	if cfg.WaveSpacing <= 0 || cfg.WaveStep <= 0 || cfg.WaveLength == 0 {
		return nil, fmt.Errorf("ocean wave spacing, step and length must be non-zero")
	}
	return &WaterBackground{
		top:            top,
		bottom:         bottom,
		waveColor:      components.RGBA(255, 255, 255, 0.3),
		waveThickness:  2,
		spacing:        cfg.WaveSpacing,
		step:           cfg.WaveStep,
		amplitude:      float64(cfg.WaveAmplitude),
		wavelength:     float64(cfg.WaveLength),
		swellAmplitude: float64(cfg.SwellAmplitude),
	}, nil
}

// Swell returns the global vertical wave offset at time t.
func (w *WaterBackground) Swell(t float64) float64 {
	return math.Sin(t) * w.swellAmplitude
}

// Draw paints the gradient and one wave stroke every spacing pixels.
func (w *WaterBackground) Draw(c Canvas, f Frame) {
	c.FillGradientV(0, 0, f.Width, f.Height, w.top, w.bottom)

	swell := w.Swell(f.Elapsed)
	for y := float32(0); y < f.Height; y += w.spacing {
		w.points = w.points[:0]
		for x := float32(0); x < f.Width; x += w.step {
			h := math.Sin(float64(x)/w.wavelength+f.Elapsed)*w.amplitude + swell
			w.points = append(w.points, Vec2{X: x, Y: y + float32(h)})
		}
		if len(w.points) > 1 {
			c.StrokePolyline(w.points, w.waveThickness, w.waveColor)
		}
	}
}
