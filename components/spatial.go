package components

// Position represents a ship's position in surface coordinates.
// The point is the bow-side bottom corner of the hull (the waterline origin).
type Position struct {
	X, Y float32
}
