package fleet

import (
	"math/rand"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/pthm-cable/cruise/components"
)

// RandomLivery picks a hull color with a uniform random hue at the given
// HSL saturation and lightness.
func RandomLivery(rng *rand.Rand, saturation, lightness float64) components.Color {
	hue := rng.Float64() * 360
	return Livery(hue, saturation, lightness)
}

// Livery converts an HSL triple into an opaque color.
func Livery(hue, saturation, lightness float64) components.Color {
	r, g, b := colorful.Hsl(hue, saturation, lightness).Clamped().RGB255()
	return components.Color{R: r, G: g, B: b, A: 255}
}
