package core

// Color is an RGB triple. Channels are unbounded floats; additive lighting
// can push them past 1 and encoding clamps them at output time.
type Color struct {
	R, G, B float64
}

// Common colors used by defaults and tests
var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
)

// NewColor creates a color from its channel values
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Add returns the channel-wise sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Subtract returns the channel-wise difference of two colors
func (c Color) Subtract(other Color) Color {
	return Color{c.R - other.R, c.G - other.G, c.B - other.B}
}

// Scale returns the color with every channel multiplied by a scalar
func (c Color) Scale(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// Multiply returns the Hadamard product of two colors
func (c Color) Multiply(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Equals reports whether two colors match within Epsilon per channel
func (c Color) Equals(other Color) bool {
	return floatEquals(c.R, other.R) &&
		floatEquals(c.G, other.G) &&
		floatEquals(c.B, other.B)
}
