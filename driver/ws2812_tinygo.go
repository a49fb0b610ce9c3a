//go:build tinygo

package driver

import (
	"image/color"
	"machine"

	"tinygo.org/x/drivers/ws2812"

	"github.com/tdfischer/figments/pixel"
)

// WS2812 drives a strip of WS2812 (NeoPixel) pixels by bit-banging a
// GPIO pin. Timing-sensitive, so only available under tinygo.
type WS2812[P pixel.Format[P]] struct {
	dev     ws2812.Device
	scratch []color.RGBA
}

// NewWS2812 configures pin for output and wraps it with a WS2812 sink
// for n pixels.
func NewWS2812[P pixel.Format[P]](pin machine.Pin, n int) *WS2812[P] {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return &WS2812[P]{
		dev:     ws2812.New(pin),
		scratch: make([]color.RGBA, 0, n),
	}
}

func (w *WS2812[P]) Write(frame []P) error {
	w.scratch = appendColors(w.scratch, frame)
	return w.dev.WriteColors(w.scratch)
}
