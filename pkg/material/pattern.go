package material

import (
	"github.com/rmoran/go-phong-raytracer/pkg/core"
)

// Pattern is a procedural rule mapping a 3D point to a color. Every
// pattern carries its own transform; ColorAt maps the query point through
// the pattern's inverse transform before evaluating the rule, so patterns
// compose with object placement and with each other.
type Pattern interface {
	ColorAt(point core.Tuple) core.Color
	SetTransform(m core.Matrix)
}

// patternTransform holds the transform shared by all pattern kinds and
// the cached inverse applied on every lookup
type patternTransform struct {
	transform core.Matrix
	inverse   core.Matrix
}

func newPatternTransform() patternTransform {
	return patternTransform{transform: core.Identity(), inverse: core.Identity()}
}

// SetTransform sets the pattern's own transform. A non-invertible
// transform is ignored and the previous one kept, matching how objects
// treat configuration errors.
func (pt *patternTransform) SetTransform(m core.Matrix) {
	inverse, ok := m.Inverse()
	if !ok {
		return
	}
	pt.transform = m
	pt.inverse = inverse
}

// patternPoint maps a query point into the pattern's own space
func (pt *patternTransform) patternPoint(point core.Tuple) core.Tuple {
	return pt.inverse.MultiplyTuple(point)
}

// SolidPattern is a constant color independent of position
type SolidPattern struct {
	patternTransform
	C core.Color
}

// NewSolidPattern creates a pattern that always yields c
func NewSolidPattern(c core.Color) *SolidPattern {
	return &SolidPattern{patternTransform: newPatternTransform(), C: c}
}

// ColorAt returns the solid color
func (p *SolidPattern) ColorAt(core.Tuple) core.Color {
	return p.C
}

// TestPattern reports the transformed query point back as a color. It
// exists so tests can observe exactly which point a pattern rule saw.
type TestPattern struct {
	patternTransform
}

// NewTestPattern creates a new test pattern
func NewTestPattern() *TestPattern {
	return &TestPattern{patternTransform: newPatternTransform()}
}

// ColorAt returns the pattern-space point's coordinates as channels
func (p *TestPattern) ColorAt(point core.Tuple) core.Color {
	pp := p.patternPoint(point)
	return core.NewColor(pp.X, pp.Y, pp.Z)
}
