package mapping

import (
	"image/color"

	"github.com/tdfischer/figments/geometry"
	"github.com/tdfischer/figments/pixel"
)

// Displayer exposes a stride-mapped buffer through the
// tinygo.org/x/drivers Displayer contract, so font and graphics packages
// written against that interface can draw straight into the mapped pixels.
type Displayer[P pixel.Format[P]] struct {
	s     *StrideSampler[P]
	flush func() error
}

// Displayer wraps the sampler. flush, if non-nil, runs on Display(); pass
// the output stage's write as the flush to push drawn pixels to hardware.
func (s *StrideSampler[P]) Displayer(flush func() error) *Displayer[P] {
	return &Displayer[P]{s: s, flush: flush}
}

// Size returns the bounding dimensions of the assembled display.
func (d *Displayer[P]) Size() (x, y int16) {
	b := d.s.m.bounds
	return int16(b.Width() + 1), int16(b.Height() + 1)
}

// SetPixel writes one grid cell, honoring the color's alpha. Coordinates
// outside the mapped segments are ignored.
func (d *Displayer[P]) SetPixel(x, y int16, c color.RGBA) {
	b := d.s.m.bounds
	i, ok := d.s.m.IndexAt(geometry.GC(int(x)+b.Left(), int(y)+b.Top()))
	if !ok {
		return
	}
	px := &d.s.buf[i]
	*px = (*px).AddRGBA(pixel.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}, 255)
}

// Display runs the flush hook, if any.
func (d *Displayer[P]) Display() error {
	if d.flush == nil {
		return nil
	}
	return d.flush()
}
