// Package components defines ECS components for the fleet.
package components

// Identity holds a ship's registry identifier.
// IDs are assigned once at creation and never reused.
type Identity struct {
	ID uint32
}

// Hull holds the upgradeable part of a ship.
// Level starts at 1; neither field ever decreases.
type Hull struct {
	Level      int
	Passengers int
}

// Income returns this hull's contribution to one income tick.
func (h Hull) Income() int64 {
	return int64(h.Passengers) * int64(h.Level)
}

// Livery holds a ship's display color, fixed at creation.
type Livery struct {
	Color Color
}
