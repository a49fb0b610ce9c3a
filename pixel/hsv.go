package pixel

import "github.com/tdfischer/figments/lib8"

// HSV is a hue/saturation/value color. The hue byte spans the full wheel.
type HSV struct {
	H, S, V uint8
}

// Well-known hue values on the byte-sized color wheel.
const (
	HueRed    uint8 = 0
	HueOrange uint8 = 32
	HueYellow uint8 = 64
	HueGreen  uint8 = 96
	HueAqua   uint8 = 128
	HueBlue   uint8 = 160
	HuePurple uint8 = 192
	HuePink   uint8 = 224
)

const hsvSection3 = 0x40

// RGB converts to RGB with a trig-free piecewise-linear six-section ramp.
// The conversion is exact and well-defined for every input.
func (c HSV) RGB() RGB {
	if c.S == 0 {
		return RGB{c.V, c.V, c.V}
	}

	hue := lib8.Scale8(191, c.H)
	invsat := 255 - c.S
	brightnessFloor := uint8(uint16(c.V) * uint16(invsat) / 256)
	amplitude := c.V - brightnessFloor

	section := hue / hsvSection3
	offset := hue % hsvSection3

	rampup := offset
	rampdown := hsvSection3 - 1 - offset

	rampupAdj := lib8.QAdd8(uint8(uint16(rampup)*uint16(amplitude)/64), brightnessFloor)
	rampdownAdj := lib8.QAdd8(uint8(uint16(rampdown)*uint16(amplitude)/64), brightnessFloor)

	switch section {
	case 0:
		return RGB{rampdownAdj, rampupAdj, brightnessFloor}
	case 1:
		return RGB{brightnessFloor, rampdownAdj, rampupAdj}
	default:
		return RGB{rampupAdj, brightnessFloor, rampdownAdj}
	}
}

// RGBA converts to RGBA at full alpha.
func (c HSV) RGBA() RGBA {
	rgb := c.RGB()
	return RGBA{rgb.R, rgb.G, rgb.B, 255}
}

func fixfrac8(a, b uint16) uint8 {
	return uint8(a * 256 / b)
}

// HSV approximates the hue/saturation/value of the pixel with a
// desaturate-then-rescale heuristic. The inverse is deliberately lossy:
// converting to HSV and back does not reproduce the original color.
func (p RGB) HSV() HSV {
	r, g, b := p.R, p.G, p.B

	desat := uint8(255)
	if r < desat {
		desat = r
	}
	if g < desat {
		desat = g
	}
	if b < desat {
		desat = b
	}

	r -= desat
	g -= desat
	b -= desat

	s := 255 - desat
	if s != 255 {
		// undo the dimming of saturation
		s = 255 - uint8(lib8.Sqrt16(uint16(255-s)*256))
	}

	// All-zero channels after desaturation means a shade of gray.
	if r|g|b == 0 {
		return HSV{0, 0, 255 - s}
	}

	// Scale the remaining channels up to compensate for desaturation.
	if s < 255 {
		if s == 0 {
			s = 1
		}
		scaleup := 65535 / uint32(s)
		r = uint8(uint32(r) * scaleup / 256)
		g = uint8(uint32(g) * scaleup / 256)
		b = uint8(uint32(b) * scaleup / 256)
	}

	total := uint16(r) + uint16(g) + uint16(b)
	if total < 255 {
		if total == 0 {
			total = 1
		}
		scaleup := 65535 / uint32(total)
		r = uint8(uint32(r) * scaleup / 256)
		g = uint8(uint32(g) * scaleup / 256)
		b = uint8(uint32(b) * scaleup / 256)
	}

	var v uint8
	if total > 255 {
		v = 255
	} else {
		v = lib8.QAdd8(desat, uint8(total))
		if v != 255 {
			// undo the dimming of brightness
			v = uint8(lib8.Sqrt16(uint16(v) * 256))
		}
	}

	var h uint8
	highest := r
	if g > highest {
		highest = g
	}
	if b > highest {
		highest = b
	}

	switch highest {
	case r:
		// Purple/pink-red, red-orange, or orange-yellow.
		if g == 0 {
			h = uint8((uint16(HuePurple) + uint16(HuePink)) / 2)
			h += lib8.Scale8(lib8.QSub8(r, 128), fixfrac8(48, 128))
		} else if r-g > g {
			h = HueRed
			h += lib8.Scale8(g, fixfrac8(32, 85))
		} else {
			h = HueOrange
			h += lib8.Scale8(lib8.QSub8((g-85)+(171-r), 4), fixfrac8(32, 85))
		}
	case g:
		// Yellow-green or green-aqua.
		if b == 0 {
			h = HueYellow
			radj := lib8.Scale8(lib8.QSub8(171, r), 47)
			gadj := lib8.Scale8(lib8.QSub8(g, 171), 96)
			h += (radj + gadj) / 2
		} else if g-b > b {
			h = HueGreen
			h += lib8.Scale8(b, fixfrac8(32, 85))
		} else {
			h = HueAqua
			h += lib8.Scale8(lib8.QSub8(b, 85), fixfrac8(8, 42))
		}
	default:
		// Aqua/blue-blue, blue-purple, or purple-pink.
		if r == 0 {
			h = HueAqua + (HueBlue-HueAqua)/4
			h += lib8.Scale8(lib8.QSub8(b, 128), fixfrac8(24, 128))
		} else if b-r > r {
			h = HueBlue
			h += lib8.Scale8(r, fixfrac8(32, 85))
		} else {
			h = HuePurple
			h += lib8.Scale8(lib8.QSub8(r, 85), fixfrac8(32, 85))
		}
	}

	h++
	return HSV{h, s, v}
}
