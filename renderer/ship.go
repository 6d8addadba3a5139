package renderer

import (
	"fmt"
	"math"

	"github.com/pthm-cable/cruise/components"
	"github.com/pthm-cable/cruise/fleet"
)

// Hull geometry, all scaled by level.
const (
	hullBaseHeight  = 60
	hullLevelHeight = 10
	hullBaseWidth   = 100
	hullLevelWidth  = 15
	deckFraction    = 0.3
	deckInset       = 10
	deckGap         = 5
	windowInset     = 20
	windowRadius    = 5
	baseWindows     = 5
	windowsPerDeck  = 2
	outlineWidth    = 2
	labelSize       = 12
)

// ShipRenderer draws cruise ships.
type ShipRenderer struct {
	smokePuffs int

	deckColor   components.Color
	windowColor components.Color
	smokeColor  components.Color
	outline     components.Color
	labelColor  components.Color

	hull [5]Vec2
}

// NewShipRenderer creates a ship renderer with the given funnel smoke puff count.
func NewShipRenderer(smokePuffs int) *ShipRenderer {
	return &ShipRenderer{
		smokePuffs:  smokePuffs,
		deckColor:   components.MustParseHex("#ddd"),
		windowColor: components.MustParseHex("#aaf"),
		smokeColor:  components.RGBA(200, 200, 200, 0.7),
		outline:     components.Black,
		labelColor:  components.White,
	}
}

// Dimensions returns hull width and height for a ship level.
func Dimensions(level int) (width, height float32) {
	return float32(hullBaseWidth + level*hullLevelWidth), float32(hullBaseHeight + level*hullLevelHeight)
}

// Draw renders one ship: hull, one deck per level, windows, funnel smoke
// animated by t, and the level/passenger labels.
func (r *ShipRenderer) Draw(c Canvas, s fleet.Ship, t float64) {
	w, h := Dimensions(s.Level)
	deckH := h * deckFraction

	// Hull
	r.hull = [5]Vec2{
		{X: s.X, Y: s.Y},
		{X: s.X + w*0.7, Y: s.Y},
		{X: s.X + w, Y: s.Y - h*0.7},
		{X: s.X + w*0.7, Y: s.Y - h},
		{X: s.X, Y: s.Y - h},
	}
	c.FillPolygon(r.hull[:], s.Color)
	c.StrokePolygon(r.hull[:], outlineWidth, r.outline)

	// Decks and windows
	for i := 0; i < s.Level; i++ {
		deckY := s.Y - h + deckH*float32(i)
		c.FillRect(s.X+deckInset, deckY, w-2*deckInset, deckH-deckGap, r.deckColor)
		c.StrokeRect(s.X+deckInset, deckY, w-2*deckInset, deckH-deckGap, outlineWidth, r.outline)

		windows := baseWindows + i*windowsPerDeck
		spacing := (w - 2*windowInset) / float32(windows)
		for j := 0; j < windows; j++ {
			c.FillCircle(s.X+windowInset+float32(j)*spacing, deckY+deckH/2, windowRadius, r.windowColor)
		}
	}

	// Funnel smoke
	smokeX := s.X + w*0.8
	for i := 0; i < r.smokePuffs; i++ {
		fi := float64(i)
		smokeY := s.Y - h + float32(i*10) + float32(math.Sin(t*2+fi)*5)
		size := float32(10+i*5) + float32(math.Sin(t+fi)*5)
		c.FillCircle(smokeX, smokeY, size, r.smokeColor)
	}

	// Labels
	c.Text(fmt.Sprintf("Lvl %d", s.Level), s.X+deckInset, s.Y-h-5, labelSize, r.labelColor)
	c.Text(fmt.Sprintf("%d passengers", s.Passengers), s.X+deckInset, s.Y-h-20, labelSize, r.labelColor)
}
