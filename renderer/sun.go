package renderer

import (
	"github.com/pthm-cable/cruise/components"
	"github.com/pthm-cable/cruise/config"
)

// SunRenderer draws the translucent sun disc pinned to the top-right corner.
type SunRenderer struct {
	radius float32
	insetX float32
	y      float32
	color  components.Color
}

// NewSunRenderer creates a sun renderer from ocean settings.
func NewSunRenderer(cfg config.OceanConfig) *SunRenderer {
	return &SunRenderer{
		radius: cfg.SunRadius,
		insetX: cfg.SunInsetX,
		y:      cfg.SunY,
		color:  components.RGBA(255, 255, 100, 0.3),
	}
}

// Position returns the sun center for a surface of the given width.
func (r *SunRenderer) Position(width float32) Vec2 {
	return Vec2{X: width - r.insetX, Y: r.y}
}

// Draw renders the sun disc.
func (r *SunRenderer) Draw(c Canvas, f Frame) {
	p := r.Position(f.Width)
	c.FillCircle(p.X, p.Y, r.radius, r.color)
}
