// Package rlcanvas paints renderer frames with raylib.
package rlcanvas

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/cruise/components"
	"github.com/pthm-cable/cruise/renderer"
)

// Canvas implements renderer.Canvas on the current raylib draw target.
// It must only be used between rl.BeginDrawing and rl.EndDrawing.
type Canvas struct {
	scratch []rl.Vector2
}

// New creates a raylib canvas.
func New() *Canvas {
	return &Canvas{scratch: make([]rl.Vector2, 0, 64)}
}

var _ renderer.Canvas = (*Canvas)(nil)

func (c *Canvas) FillGradientV(x, y, w, h float32, top, bottom components.Color) {
	rl.DrawRectangleGradientV(int32(x), int32(y), int32(w+0.5), int32(h+0.5), toRL(top), toRL(bottom))
}

func (c *Canvas) FillRect(x, y, w, h float32, color components.Color) {
	rl.DrawRectangleV(rl.NewVector2(x, y), rl.NewVector2(w, h), toRL(color))
}

func (c *Canvas) StrokeRect(x, y, w, h, thickness float32, color components.Color) {
	rl.DrawRectangleLinesEx(rl.NewRectangle(x, y, w, h), thickness, toRL(color))
}

func (c *Canvas) FillCircle(cx, cy, radius float32, color components.Color) {
	rl.DrawCircleV(rl.NewVector2(cx, cy), radius, toRL(color))
}

// FillPolygon draws a triangle fan around the first vertex. raylib culls
// clockwise fans, so points are reordered when needed.
func (c *Canvas) FillPolygon(points []renderer.Vec2, color components.Color) {
	if len(points) < 3 {
		return
	}
	c.load(points)
	if signedArea(c.scratch) > 0 {
		reverse(c.scratch)
	}
	rl.DrawTriangleFan(c.scratch, toRL(color))
}

func (c *Canvas) StrokePolygon(points []renderer.Vec2, thickness float32, color components.Color) {
	if len(points) < 2 {
		return
	}
	col := toRL(color)
	c.load(points)
	n := len(c.scratch)
	for i := 0; i < n; i++ {
		rl.DrawLineEx(c.scratch[i], c.scratch[(i+1)%n], thickness, col)
	}
}

func (c *Canvas) StrokePolyline(points []renderer.Vec2, thickness float32, color components.Color) {
	col := toRL(color)
	c.load(points)
	for i := 1; i < len(c.scratch); i++ {
		rl.DrawLineEx(c.scratch[i-1], c.scratch[i], thickness, col)
	}
}

// Text draws with the default font. raylib anchors text at its top-left corner.
func (c *Canvas) Text(text string, x, y float32, size int32, color components.Color) {
	rl.DrawText(text, int32(x), int32(y)-size, size, toRL(color))
}

func (c *Canvas) load(points []renderer.Vec2) {
	c.scratch = c.scratch[:0]
	for _, p := range points {
		c.scratch = append(c.scratch, rl.NewVector2(p.X, p.Y))
	}
}

func toRL(c components.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

// signedArea is the shoelace sum in surface coordinates. Negative means the
// points run counter-clockwise on screen.
func signedArea(pts []rl.Vector2) float32 {
	var a float32
	for i := range pts {
		j := (i + 1) % len(pts)
		a += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return a / 2
}

func reverse(pts []rl.Vector2) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}
