// Package lib8 implements fast 8-bit fixed-point math for rendering on
// microcontrollers: fractional scaling, blending, interpolation, and
// table-driven trigonometry.
//
// A Fract8 is a byte-sized linear proportion where 0 means 0% and 255
// means 100%.
package lib8

// Fract8 is an 8-bit fraction: 0 is 0%, 255 is 100%.
type Fract8 = uint8

// Scale8 scales v by the fraction f, rounding down.
// Scale8(v, 255) == v and Scale8(v, 0) == 0 for all v.
func Scale8(v uint8, f Fract8) uint8 {
	return uint8(uint16(v) * uint16(f) / 255)
}

// Blend8 blends a toward b by the fraction f.
//
// The endpoints are exact: f == 0 returns a unchanged and f == 255
// returns b unchanged. Fully transparent and fully opaque layers must
// reproduce their inputs bit for bit.
func Blend8(a, b uint8, f Fract8) uint8 {
	switch f {
	case 0:
		return a
	case 255:
		return b
	default:
		partial := uint16(a)<<8 | uint16(b)
		partial += uint16(b) * uint16(f)
		partial -= uint16(a) * uint16(f)
		return uint8(partial >> 8)
	}
}

// Lerp8 linearly interpolates from a to b by the fraction f.
func Lerp8(a, b uint8, f Fract8) uint8 {
	if b > a {
		return a + Scale8(b-a, f)
	}
	return a - Scale8(a-b, f)
}

// QAdd8 adds two bytes, saturating at 255.
func QAdd8(a, b uint8) uint8 {
	t := uint16(a) + uint16(b)
	if t > 255 {
		return 255
	}
	return uint8(t)
}

// QSub8 subtracts b from a, saturating at 0.
func QSub8(a, b uint8) uint8 {
	if b > a {
		return 0
	}
	return a - b
}

// Sqrt16 returns the integer square root of x by bisection.
func Sqrt16(x uint16) uint16 {
	if x <= 1 {
		return x
	}

	var low uint16 = 1
	var hi uint16
	if x > 7904 {
		hi = 255
	} else {
		hi = x>>5 + 8
	}

	for hi >= low {
		mid := (low + hi) >> 1
		if mid*mid > x {
			hi = mid - 1
		} else {
			if mid == 255 {
				return 255
			}
			low = mid + 1
		}
	}

	return low - 1
}

// Map8 maps x from the full 0-255 range into [rangeStart, rangeEnd].
func Map8(x, rangeStart, rangeEnd uint8) uint8 {
	return Scale8(x, rangeEnd-rangeStart) + rangeStart
}

// EaseInOutQuad8 applies a quadratic ease-in/ease-out curve to i.
func EaseInOutQuad8(i uint8) uint8 {
	j := i
	if i&0x80 != 0 {
		j = 255 - i
	}
	jj2 := Scale8(j, j) << 1
	if i&0x80 == 0 {
		return jj2
	}
	return 255 - jj2
}
