// Package power implements the output stage: gamma correction, a
// milliwatt budget enforced by uniform brightness scaling, and the writer
// that hands finished frames to a hardware sink.
package power

import "github.com/chewxy/math32"

// GammaCurve is an immutable 256-entry lookup from an input level to a
// gamma-corrected level. The zero value is not usable; build curves with
// NewGammaCurve or use Identity.
type GammaCurve struct {
	lut [256]uint8
}

// NewGammaCurve builds a curve for the given gamma exponent. A gamma of
// 1.0 is the identity; LED strips usually look right somewhere around 2.2
// to 2.8.
func NewGammaCurve(gamma float32) GammaCurve {
	var c GammaCurve
	for i := range c.lut {
		c.lut[i] = uint8(math32.Pow(float32(i)/255, gamma)*255 + 0.5)
	}
	return c
}

// Identity returns the curve that maps every level to itself.
func Identity() GammaCurve {
	return NewGammaCurve(1.0)
}

// At returns the corrected level for the input level.
func (c *GammaCurve) At(level uint8) uint8 {
	return c.lut[level]
}
