// Package renderer draws the ocean scene and the fleet.
//
// Drawing goes through the Canvas interface so a frame is a pure function
// of (fleet snapshot, elapsed time, surface size): the raylib backend paints
// it, and the Recorder captures it for inspection.
package renderer

import "github.com/pthm-cable/cruise/components"

// Vec2 is a point in surface coordinates (y grows downwards).
type Vec2 struct {
	X, Y float32
}

// Canvas is an immediate-mode drawing surface.
type Canvas interface {
	// FillGradientV fills a rectangle blending top into bottom vertically.
	FillGradientV(x, y, w, h float32, top, bottom components.Color)
	// FillRect fills an axis-aligned rectangle.
	FillRect(x, y, w, h float32, color components.Color)
	// StrokeRect outlines an axis-aligned rectangle.
	StrokeRect(x, y, w, h, thickness float32, color components.Color)
	// FillCircle fills a disc.
	FillCircle(cx, cy, radius float32, color components.Color)
	// FillPolygon fills a convex polygon.
	FillPolygon(points []Vec2, color components.Color)
	// StrokePolygon outlines a closed polygon.
	StrokePolygon(points []Vec2, thickness float32, color components.Color)
	// StrokePolyline draws an open line strip.
	StrokePolyline(points []Vec2, thickness float32, color components.Color)
	// Text draws a string with its baseline at y.
	Text(text string, x, y float32, size int32, color components.Color)
}
