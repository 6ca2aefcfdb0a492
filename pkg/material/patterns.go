package material

import (
	"math"

	"github.com/rmoran/go-phong-raytracer/pkg/core"
)

// StripePattern alternates two child patterns by the parity of floor(x)
type StripePattern struct {
	patternTransform
	A, B Pattern
}

// NewStripePattern creates stripes alternating between two child patterns
func NewStripePattern(a, b Pattern) *StripePattern {
	return &StripePattern{patternTransform: newPatternTransform(), A: a, B: b}
}

// ColorAt picks a child by stripe parity. The child sees the
// already-transformed point and applies its own transform on top.
func (p *StripePattern) ColorAt(point core.Tuple) core.Color {
	pp := p.patternPoint(point)
	if int(math.Floor(pp.X))%2 == 0 {
		return p.A.ColorAt(pp)
	}
	return p.B.ColorAt(pp)
}

// RingPattern alternates two child patterns in concentric rings around
// the y axis
type RingPattern struct {
	patternTransform
	A, B Pattern
}

// NewRingPattern creates rings alternating between two child patterns
func NewRingPattern(a, b Pattern) *RingPattern {
	return &RingPattern{patternTransform: newPatternTransform(), A: a, B: b}
}

// ColorAt keys the stripe parity rule on the radial distance in xz
func (p *RingPattern) ColorAt(point core.Tuple) core.Color {
	pp := p.patternPoint(point)
	distance := math.Sqrt(pp.X*pp.X + pp.Z*pp.Z)
	if int(math.Floor(distance))%2 == 0 {
		return p.A.ColorAt(pp)
	}
	return p.B.ColorAt(pp)
}

// CheckersPattern alternates two child patterns in a 3D checkerboard
type CheckersPattern struct {
	patternTransform
	A, B Pattern
}

// NewCheckersPattern creates a checkerboard of two child patterns
func NewCheckersPattern(a, b Pattern) *CheckersPattern {
	return &CheckersPattern{patternTransform: newPatternTransform(), A: a, B: b}
}

// ColorAt alternates by the parity of floor(x)+floor(y)+floor(z)
func (p *CheckersPattern) ColorAt(point core.Tuple) core.Color {
	pp := p.patternPoint(point)
	sum := math.Floor(pp.X) + math.Floor(pp.Y) + math.Floor(pp.Z)
	if int(sum)%2 == 0 {
		return p.A.ColorAt(pp)
	}
	return p.B.ColorAt(pp)
}

// BlendedPattern averages the colors of two child patterns
type BlendedPattern struct {
	patternTransform
	A, B Pattern
}

// NewBlendedPattern creates a pattern blending two children equally
func NewBlendedPattern(a, b Pattern) *BlendedPattern {
	return &BlendedPattern{patternTransform: newPatternTransform(), A: a, B: b}
}

// ColorAt returns the arithmetic average of both children at the point
func (p *BlendedPattern) ColorAt(point core.Tuple) core.Color {
	pp := p.patternPoint(point)
	return p.A.ColorAt(pp).Add(p.B.ColorAt(pp)).Scale(0.5)
}

// LinearGradientPattern interpolates between two colors along x
type LinearGradientPattern struct {
	patternTransform
	A, B core.Color
}

// NewLinearGradientPattern creates a gradient from color a to color b
func NewLinearGradientPattern(a, b core.Color) *LinearGradientPattern {
	return &LinearGradientPattern{patternTransform: newPatternTransform(), A: a, B: b}
}

// ColorAt lerps on the fractional part of the transformed x coordinate
func (p *LinearGradientPattern) ColorAt(point core.Tuple) core.Color {
	pp := p.patternPoint(point)
	fraction := pp.X - math.Floor(pp.X)
	return p.A.Add(p.B.Subtract(p.A).Scale(fraction))
}

// RadialGradientPattern interpolates between two colors by radial
// distance from the y axis
type RadialGradientPattern struct {
	patternTransform
	A, B core.Color
}

// NewRadialGradientPattern creates a radial gradient from a to b
func NewRadialGradientPattern(a, b core.Color) *RadialGradientPattern {
	return &RadialGradientPattern{patternTransform: newPatternTransform(), A: a, B: b}
}

// ColorAt lerps on the fractional part of the radial distance in xz
func (p *RadialGradientPattern) ColorAt(point core.Tuple) core.Color {
	pp := p.patternPoint(point)
	distance := math.Sqrt(pp.X*pp.X + pp.Z*pp.Z)
	fraction := distance - math.Floor(distance)
	return p.A.Add(p.B.Subtract(p.A).Scale(fraction))
}
