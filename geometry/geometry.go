// Package geometry provides the 2D coordinate primitives the renderer is
// built on.
//
// Two coordinate spaces exist and never mix without explicit conversion:
// the virtual space, a fixed 0-255 × 0-255 domain that shaders are
// authored against regardless of how many pixels are wired up, and the
// grid space of non-negative integer indices used when addressing the
// physical layout of a display.
package geometry

import "github.com/tdfischer/figments/lib8"

// VirtualMax is the largest coordinate component in the virtual space.
const VirtualMax uint8 = 255

// VirtualCoord is a point in the 0-255 virtual space.
type VirtualCoord struct {
	X, Y uint8
}

// VC is shorthand for constructing a VirtualCoord.
func VC(x, y uint8) VirtualCoord {
	return VirtualCoord{X: x, Y: y}
}

// Add returns the coordinate offset by other, saturating at the space edge.
func (c VirtualCoord) Add(other VirtualCoord) VirtualCoord {
	return VirtualCoord{X: lib8.QAdd8(c.X, other.X), Y: lib8.QAdd8(c.Y, other.Y)}
}

// Rotated returns the coordinate rotated turns×90° around the center of
// the space, implemented by axis swaps and reflection through VirtualMax.
func (c VirtualCoord) Rotated(turns int) VirtualCoord {
	switch ((turns % 4) + 4) % 4 {
	case 1:
		return VirtualCoord{X: VirtualMax - c.Y, Y: c.X}
	case 2:
		return VirtualCoord{X: VirtualMax - c.X, Y: VirtualMax - c.Y}
	case 3:
		return VirtualCoord{X: c.Y, Y: VirtualMax - c.X}
	default:
		return c
	}
}

// DistanceTo returns the integer Euclidean distance to other.
func (c VirtualCoord) DistanceTo(other VirtualCoord) uint8 {
	dx := uint16(absDiff8(c.X, other.X))
	dy := uint16(absDiff8(c.Y, other.Y))
	return uint8(lib8.Sqrt16(satAdd16(satMul16(dx, dx), satMul16(dy, dy))))
}

// Compare orders coordinates by Y first, then X, returning -1, 0 or 1.
func (c VirtualCoord) Compare(other VirtualCoord) int {
	switch {
	case c.Y != other.Y && c.Y < other.Y:
		return -1
	case c.Y != other.Y:
		return 1
	case c.X < other.X:
		return -1
	case c.X > other.X:
		return 1
	default:
		return 0
	}
}

func absDiff8(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}

func satMul16(a, b uint16) uint16 {
	p := uint32(a) * uint32(b)
	if p > 0xFFFF {
		return 0xFFFF
	}
	return uint16(p)
}

func satAdd16(a, b uint16) uint16 {
	s := uint32(a) + uint32(b)
	if s > 0xFFFF {
		return 0xFFFF
	}
	return uint16(s)
}

// VirtualRect is an axis-aligned rectangle in the virtual space, stored as
// its top-left and bottom-right corners, both inclusive.
type VirtualRect struct {
	TopLeft     VirtualCoord
	BottomRight VirtualCoord
}

// VR is shorthand for constructing a VirtualRect from corner components.
func VR(left, top, right, bottom uint8) VirtualRect {
	return VirtualRect{TopLeft: VC(left, top), BottomRight: VC(right, bottom)}
}

// Everything returns the rectangle spanning the full virtual space.
func Everything() VirtualRect {
	return VR(0, 0, VirtualMax, VirtualMax)
}

// Width returns the horizontal extent of the rectangle.
func (r VirtualRect) Width() uint8 { return r.BottomRight.X - r.TopLeft.X }

// Height returns the vertical extent of the rectangle.
func (r VirtualRect) Height() uint8 { return r.BottomRight.Y - r.TopLeft.Y }

// Left returns the leftmost X coordinate.
func (r VirtualRect) Left() uint8 { return r.TopLeft.X }

// Top returns the topmost Y coordinate.
func (r VirtualRect) Top() uint8 { return r.TopLeft.Y }

// Right returns the rightmost X coordinate.
func (r VirtualRect) Right() uint8 { return r.BottomRight.X }

// Bottom returns the bottommost Y coordinate.
func (r VirtualRect) Bottom() uint8 { return r.BottomRight.Y }

// Rotated returns the rectangle rotated turns×90° around the center of the
// space. The corners are rotated individually and renormalized so TopLeft
// stays the minimum corner.
func (r VirtualRect) Rotated(turns int) VirtualRect {
	a := r.TopLeft.Rotated(turns)
	b := r.BottomRight.Rotated(turns)
	return VirtualRect{
		TopLeft:     VC(min8(a.X, b.X), min8(a.Y, b.Y)),
		BottomRight: VC(max8(a.X, b.X), max8(a.Y, b.Y)),
	}
}

func min8(a, b uint8) uint8 {
	if a < b {
		return a
	}
	return b
}

func max8(a, b uint8) uint8 {
	if a > b {
		return a
	}
	return b
}
