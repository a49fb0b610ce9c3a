package driver

import (
	"tinygo.org/x/drivers"

	"github.com/tdfischer/figments/pixel"
)

// APA102 drives a strip of APA102 (DotStar) pixels over SPI. The wire
// protocol is written out directly so the sink runs on any platform with
// an SPI bus, hardware or fake: a 4-byte zero start frame, one 4-byte
// frame per pixel (global-brightness header, then B, G, R), and half a
// clock edge per pixel of trailing ones to flush the last latches.
type APA102[P pixel.Format[P]] struct {
	bus     drivers.SPI
	scratch []byte
}

// NewAPA102 wraps an SPI bus with an APA102 sink for n pixels.
func NewAPA102[P pixel.Format[P]](bus drivers.SPI, n int) *APA102[P] {
	return &APA102[P]{
		bus:     bus,
		scratch: make([]byte, 0, 4+4*n+(n+15)/16),
	}
}

func (a *APA102[P]) Write(frame []P) error {
	buf := append(a.scratch[:0], 0x00, 0x00, 0x00, 0x00)
	for i := range frame {
		c := frame[i].Color()
		// 0xE0 header bits plus the full 31-step global brightness; dimming
		// belongs to the power stage, not the wire.
		buf = append(buf, 0xFF, c.B, c.G, c.R)
	}
	for i := 0; i < (len(frame)+15)/16; i++ {
		buf = append(buf, 0xFF)
	}
	a.scratch = buf
	return a.bus.Tx(buf, nil)
}
