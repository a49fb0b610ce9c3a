// Package driver adapts LED hardware to the power stage's Sink contract.
// Frames are converted to logical RGB order through Color(); the APA102
// sink clocks its own wire format over any SPI bus, while the WS2812 sink
// defers to the timing-sensitive chip driver and only exists under tinygo.
package driver

import (
	"image/color"

	"github.com/tdfischer/figments/pixel"
)

func appendColors[P pixel.Format[P]](dst []color.RGBA, frame []P) []color.RGBA {
	dst = dst[:0]
	for i := range frame {
		dst = append(dst, frame[i].Color())
	}
	return dst
}
