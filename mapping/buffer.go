// Package mapping turns rectangles in the virtual coordinate space into
// sequences of physical pixels, hiding the wiring topology of the display
// from the shaders drawing on it.
//
// Two strategies are provided: a Buffer samples itself as one contiguous
// linear strip, and a StrideMapping assembles a matrix out of independent
// segments, each its own physically contiguous run.
package mapping

import (
	"iter"

	"github.com/tdfischer/figments/geometry"
	"github.com/tdfischer/figments/pixel"
)

// Buffer is a flat pixel buffer. It doubles as the linear sampler: the
// virtual X axis scales across the whole strip and Y is meaningless.
type Buffer[P pixel.Format[P]] []P

// NewBuffer returns a blank buffer of n pixels.
func NewBuffer[P pixel.Format[P]](n int) Buffer[P] {
	return make(Buffer[P], n)
}

// PixelCount returns the number of pixels in the buffer.
func (b Buffer[P]) PixelCount() int {
	return len(b)
}

// Blank resets every pixel to the zero value, usually black.
func (b Buffer[P]) Blank() {
	var zero P
	for i := range b {
		b[i] = zero
	}
}

// Milliwatts estimates the total current draw of the buffer contents.
func (b Buffer[P]) Milliwatts() uint32 {
	var total uint32
	for i := range b {
		total += b[i].Milliwatts()
	}
	return total
}

// Sample yields one (coordinate, pixel) pair per physical index in the
// rectangle's horizontal range. The rectangle's left and right edges scale
// against the last pixel index, and the yielded virtual X is recomputed
// from the position inside that range so a shader always sees the full
// 0-255 domain no matter how narrow the sub-rectangle is.
//
// Both scaled endpoints are included, so a full-space rectangle covers
// every pixel exactly once; the flip side is that two sub-rectangles
// sharing an edge both claim the pixel the shared edge scales onto.
func (b Buffer[P]) Sample(rect geometry.VirtualRect) iter.Seq2[geometry.VirtualCoord, *P] {
	return func(yield func(geometry.VirtualCoord, *P) bool) {
		if len(b) == 0 {
			return
		}
		last := len(b) - 1
		start := scaleInt(last, rect.Left())
		end := scaleInt(last, rect.Right())
		for i := start; i <= end; i++ {
			var virtX uint8
			if end > start {
				virtX = uint8(255 * (i - start) / (end - start))
			}
			if !yield(geometry.VC(virtX, 0), &b[i]) {
				return
			}
		}
	}
}

// scaleInt scales max by the fraction f, rounding down.
func scaleInt(max int, f uint8) int {
	return max * int(f) / 255
}
