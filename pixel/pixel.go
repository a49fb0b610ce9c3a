// Package pixel implements the 8-bit color algebra the renderer composites
// with.
//
// The format set is closed and fixed: three-channel RGB, GRB and BGR plus
// four-channel RGBA and BGRA, each storing its channels in wire order.
// Every format supports fractional scaling, endpoint-exact blending,
// saturating addition, and the additive-composite Add operation the
// surface engine is built on.
package pixel

import (
	"image/color"

	"github.com/tdfischer/figments/lib8"
)

// Fract8 is an 8-bit fraction: 0 is 0%, 255 is 100%.
type Fract8 = lib8.Fract8

// Reference current draw per channel at full level, in milliwatts, based
// on the WS2812B: 16mA red, 11mA green, 15mA blue and 1mA idle at 5v.
const (
	redMW   = 16 * 5
	greenMW = 11 * 5
	blueMW  = 15 * 5
	darkMW  = 5
)

// Format is the contract every supported pixel format implements. It is a
// self-referential constraint: a format only ever blends with values of
// its own type, except for AddRGBA, which composites an RGBA overlay onto
// any base format.
type Format[P any] interface {
	comparable

	// Scale scales every channel by the fraction f.
	Scale(f Fract8) P

	// Blend blends toward other by f, exactly reproducing the receiver
	// at f == 0 and other at f == 255.
	Blend(other P, f Fract8) P

	// Lerp linearly interpolates toward other by f.
	Lerp(other P, f Fract8) P

	// SaturatingAdd adds other channel-wise, saturating at 255.
	SaturatingAdd(other P) P

	// Add is the compositing primitive: opacity 0 returns the receiver
	// untouched, opacity 255 returns other exactly, anything else blends.
	Add(other P, opacity Fract8) P

	// AddRGBA composites an RGBA overlay onto the receiver. The overlay's
	// own alpha is premultiplied into the passed opacity; the overlay
	// alpha itself is discarded.
	AddRGBA(overlay RGBA, opacity Fract8) P

	// MapChannels applies fn to every color channel, leaving any alpha
	// channel untouched. The gamma stage is built on this.
	MapChannels(fn func(uint8) uint8) P

	// Milliwatts estimates the current draw of this pixel at full
	// brightness against the reference per-channel currents.
	Milliwatts() uint32

	// Color returns the pixel in logical RGB order for hardware drivers
	// and previews.
	Color() color.RGBA
}

func milliwatts3(r, g, b uint8) uint32 {
	return uint32(r)*redMW>>8 + uint32(g)*greenMW>>8 + uint32(b)*blueMW>>8 + darkMW
}

// RGB is a three-channel pixel stored in R, G, B wire order.
type RGB struct {
	R, G, B uint8
}

func (p RGB) Scale(f Fract8) RGB {
	return RGB{lib8.Scale8(p.R, f), lib8.Scale8(p.G, f), lib8.Scale8(p.B, f)}
}

func (p RGB) Blend(other RGB, f Fract8) RGB {
	return RGB{lib8.Blend8(p.R, other.R, f), lib8.Blend8(p.G, other.G, f), lib8.Blend8(p.B, other.B, f)}
}

func (p RGB) Lerp(other RGB, f Fract8) RGB {
	return RGB{lib8.Lerp8(p.R, other.R, f), lib8.Lerp8(p.G, other.G, f), lib8.Lerp8(p.B, other.B, f)}
}

func (p RGB) SaturatingAdd(other RGB) RGB {
	return RGB{lib8.QAdd8(p.R, other.R), lib8.QAdd8(p.G, other.G), lib8.QAdd8(p.B, other.B)}
}

func (p RGB) Add(other RGB, opacity Fract8) RGB {
	switch opacity {
	case 0:
		return p
	case 255:
		return other
	default:
		return p.Blend(other, opacity)
	}
}

func (p RGB) AddRGBA(overlay RGBA, opacity Fract8) RGB {
	if opacity == 0 {
		return p
	}
	return p.Blend(RGB{overlay.R, overlay.G, overlay.B}, lib8.Scale8(overlay.A, opacity))
}

func (p RGB) MapChannels(fn func(uint8) uint8) RGB {
	return RGB{fn(p.R), fn(p.G), fn(p.B)}
}

func (p RGB) Milliwatts() uint32 {
	return milliwatts3(p.R, p.G, p.B)
}

func (p RGB) Color() color.RGBA {
	return color.RGBA{R: p.R, G: p.G, B: p.B, A: 255}
}

// GRB is a three-channel pixel stored in G, R, B wire order, the native
// order of WS2812 strips.
type GRB struct {
	G, R, B uint8
}

func (p GRB) Scale(f Fract8) GRB {
	return GRB{lib8.Scale8(p.G, f), lib8.Scale8(p.R, f), lib8.Scale8(p.B, f)}
}

func (p GRB) Blend(other GRB, f Fract8) GRB {
	return GRB{lib8.Blend8(p.G, other.G, f), lib8.Blend8(p.R, other.R, f), lib8.Blend8(p.B, other.B, f)}
}

func (p GRB) Lerp(other GRB, f Fract8) GRB {
	return GRB{lib8.Lerp8(p.G, other.G, f), lib8.Lerp8(p.R, other.R, f), lib8.Lerp8(p.B, other.B, f)}
}

func (p GRB) SaturatingAdd(other GRB) GRB {
	return GRB{lib8.QAdd8(p.G, other.G), lib8.QAdd8(p.R, other.R), lib8.QAdd8(p.B, other.B)}
}

func (p GRB) Add(other GRB, opacity Fract8) GRB {
	switch opacity {
	case 0:
		return p
	case 255:
		return other
	default:
		return p.Blend(other, opacity)
	}
}

func (p GRB) AddRGBA(overlay RGBA, opacity Fract8) GRB {
	if opacity == 0 {
		return p
	}
	return p.Blend(GRB{G: overlay.G, R: overlay.R, B: overlay.B}, lib8.Scale8(overlay.A, opacity))
}

func (p GRB) MapChannels(fn func(uint8) uint8) GRB {
	return GRB{fn(p.G), fn(p.R), fn(p.B)}
}

func (p GRB) Milliwatts() uint32 {
	return milliwatts3(p.R, p.G, p.B)
}

func (p GRB) Color() color.RGBA {
	return color.RGBA{R: p.R, G: p.G, B: p.B, A: 255}
}

// BGR is a three-channel pixel stored in B, G, R wire order.
type BGR struct {
	B, G, R uint8
}

func (p BGR) Scale(f Fract8) BGR {
	return BGR{lib8.Scale8(p.B, f), lib8.Scale8(p.G, f), lib8.Scale8(p.R, f)}
}

func (p BGR) Blend(other BGR, f Fract8) BGR {
	return BGR{lib8.Blend8(p.B, other.B, f), lib8.Blend8(p.G, other.G, f), lib8.Blend8(p.R, other.R, f)}
}

func (p BGR) Lerp(other BGR, f Fract8) BGR {
	return BGR{lib8.Lerp8(p.B, other.B, f), lib8.Lerp8(p.G, other.G, f), lib8.Lerp8(p.R, other.R, f)}
}

func (p BGR) SaturatingAdd(other BGR) BGR {
	return BGR{lib8.QAdd8(p.B, other.B), lib8.QAdd8(p.G, other.G), lib8.QAdd8(p.R, other.R)}
}

func (p BGR) Add(other BGR, opacity Fract8) BGR {
	switch opacity {
	case 0:
		return p
	case 255:
		return other
	default:
		return p.Blend(other, opacity)
	}
}

func (p BGR) AddRGBA(overlay RGBA, opacity Fract8) BGR {
	if opacity == 0 {
		return p
	}
	return p.Blend(BGR{B: overlay.B, G: overlay.G, R: overlay.R}, lib8.Scale8(overlay.A, opacity))
}

func (p BGR) MapChannels(fn func(uint8) uint8) BGR {
	return BGR{fn(p.B), fn(p.G), fn(p.R)}
}

func (p BGR) Milliwatts() uint32 {
	return milliwatts3(p.R, p.G, p.B)
}

func (p BGR) Color() color.RGBA {
	return color.RGBA{R: p.R, G: p.G, B: p.B, A: 255}
}

// RGBA is a four-channel pixel with an alpha channel. It is both the
// format shaders produce and a storable buffer format; SK6812-style
// four-channel hardware treats the fourth channel as white.
type RGBA struct {
	R, G, B, A uint8
}

func (p RGBA) Scale(f Fract8) RGBA {
	return RGBA{lib8.Scale8(p.R, f), lib8.Scale8(p.G, f), lib8.Scale8(p.B, f), lib8.Scale8(p.A, f)}
}

func (p RGBA) Blend(other RGBA, f Fract8) RGBA {
	return RGBA{
		lib8.Blend8(p.R, other.R, f),
		lib8.Blend8(p.G, other.G, f),
		lib8.Blend8(p.B, other.B, f),
		lib8.Blend8(p.A, other.A, f),
	}
}

func (p RGBA) Lerp(other RGBA, f Fract8) RGBA {
	return RGBA{
		lib8.Lerp8(p.R, other.R, f),
		lib8.Lerp8(p.G, other.G, f),
		lib8.Lerp8(p.B, other.B, f),
		lib8.Lerp8(p.A, other.A, f),
	}
}

func (p RGBA) SaturatingAdd(other RGBA) RGBA {
	return RGBA{
		lib8.QAdd8(p.R, other.R),
		lib8.QAdd8(p.G, other.G),
		lib8.QAdd8(p.B, other.B),
		lib8.QAdd8(p.A, other.A),
	}
}

func (p RGBA) Add(other RGBA, opacity Fract8) RGBA {
	switch opacity {
	case 0:
		return p
	case 255:
		return other
	default:
		return p.Blend(other, opacity)
	}
}

// AddRGBA on a same-format base is the plain compositing Add; no alpha
// premultiplication happens when the formats match.
func (p RGBA) AddRGBA(overlay RGBA, opacity Fract8) RGBA {
	return p.Add(overlay, opacity)
}

func (p RGBA) MapChannels(fn func(uint8) uint8) RGBA {
	return RGBA{fn(p.R), fn(p.G), fn(p.B), p.A}
}

func (p RGBA) Milliwatts() uint32 {
	return milliwatts3(p.R, p.G, p.B)
}

func (p RGBA) Color() color.RGBA {
	return color.RGBA{R: p.R, G: p.G, B: p.B, A: p.A}
}

// BGRA is a four-channel pixel stored in B, G, R, A wire order.
type BGRA struct {
	B, G, R, A uint8
}

func (p BGRA) Scale(f Fract8) BGRA {
	return BGRA{lib8.Scale8(p.B, f), lib8.Scale8(p.G, f), lib8.Scale8(p.R, f), lib8.Scale8(p.A, f)}
}

func (p BGRA) Blend(other BGRA, f Fract8) BGRA {
	return BGRA{
		lib8.Blend8(p.B, other.B, f),
		lib8.Blend8(p.G, other.G, f),
		lib8.Blend8(p.R, other.R, f),
		lib8.Blend8(p.A, other.A, f),
	}
}

func (p BGRA) Lerp(other BGRA, f Fract8) BGRA {
	return BGRA{
		lib8.Lerp8(p.B, other.B, f),
		lib8.Lerp8(p.G, other.G, f),
		lib8.Lerp8(p.R, other.R, f),
		lib8.Lerp8(p.A, other.A, f),
	}
}

func (p BGRA) SaturatingAdd(other BGRA) BGRA {
	return BGRA{
		lib8.QAdd8(p.B, other.B),
		lib8.QAdd8(p.G, other.G),
		lib8.QAdd8(p.R, other.R),
		lib8.QAdd8(p.A, other.A),
	}
}

func (p BGRA) Add(other BGRA, opacity Fract8) BGRA {
	switch opacity {
	case 0:
		return p
	case 255:
		return other
	default:
		return p.Blend(other, opacity)
	}
}

func (p BGRA) AddRGBA(overlay RGBA, opacity Fract8) BGRA {
	switch opacity {
	case 0:
		return p
	case 255:
		return BGRA{B: overlay.B, G: overlay.G, R: overlay.R, A: overlay.A}
	default:
		return p.Blend(BGRA{B: overlay.B, G: overlay.G, R: overlay.R, A: overlay.A}, opacity)
	}
}

func (p BGRA) MapChannels(fn func(uint8) uint8) BGRA {
	return BGRA{fn(p.B), fn(p.G), fn(p.R), p.A}
}

func (p BGRA) Milliwatts() uint32 {
	return milliwatts3(p.R, p.G, p.B)
}

func (p BGRA) Color() color.RGBA {
	return color.RGBA{R: p.R, G: p.G, B: p.B, A: p.A}
}
