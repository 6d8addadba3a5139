package renderer

import "github.com/pthm-cable/cruise/components"

// OpKind identifies a recorded draw call.
type OpKind uint8

const (
	OpGradientV OpKind = iota
	OpFillRect
	OpStrokeRect
	OpFillCircle
	OpFillPolygon
	OpStrokePolygon
	OpStrokePolyline
	OpText
)

var opNames = [...]string{
	OpGradientV:      "gradient",
	OpFillRect:       "fill_rect",
	OpStrokeRect:     "stroke_rect",
	OpFillCircle:     "fill_circle",
	OpFillPolygon:    "fill_polygon",
	OpStrokePolygon:  "stroke_polygon",
	OpStrokePolyline: "stroke_polyline",
	OpText:           "text",
}

func (k OpKind) String() string {
	if int(k) < len(opNames) {
		return opNames[k]
	}
	return "unknown"
}

// Op is one recorded draw call. Unused fields are zero.
type Op struct {
	Kind      OpKind
	X, Y      float32
	W, H      float32
	Radius    float32
	Thickness float32
	Points    []Vec2
	Color     components.Color
	Color2    components.Color // gradient bottom
	Text      string
	Size      int32
}

// Recorder is a Canvas that records draw calls instead of painting.
type Recorder struct {
	Ops []Op
}

// Reset clears recorded ops, keeping capacity.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// Count returns how many ops of the given kind were recorded.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

func (r *Recorder) FillGradientV(x, y, w, h float32, top, bottom components.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpGradientV, X: x, Y: y, W: w, H: h, Color: top, Color2: bottom})
}

func (r *Recorder) FillRect(x, y, w, h float32, color components.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillRect, X: x, Y: y, W: w, H: h, Color: color})
}

func (r *Recorder) StrokeRect(x, y, w, h, thickness float32, color components.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpStrokeRect, X: x, Y: y, W: w, H: h, Thickness: thickness, Color: color})
}

func (r *Recorder) FillCircle(cx, cy, radius float32, color components.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillCircle, X: cx, Y: cy, Radius: radius, Color: color})
}

func (r *Recorder) FillPolygon(points []Vec2, color components.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillPolygon, Points: clonePoints(points), Color: color})
}

func (r *Recorder) StrokePolygon(points []Vec2, thickness float32, color components.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpStrokePolygon, Points: clonePoints(points), Thickness: thickness, Color: color})
}

func (r *Recorder) StrokePolyline(points []Vec2, thickness float32, color components.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpStrokePolyline, Points: clonePoints(points), Thickness: thickness, Color: color})
}

func (r *Recorder) Text(text string, x, y float32, size int32, color components.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpText, X: x, Y: y, Text: text, Size: size, Color: color})
}

// clonePoints copies caller-owned scratch buffers.
func clonePoints(points []Vec2) []Vec2 {
	out := make([]Vec2, len(points))
	copy(out, points)
	return out
}
