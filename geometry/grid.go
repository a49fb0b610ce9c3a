package geometry

// GridCoord is a point in the integer grid space used to address physical
// display layouts: X selects a column of the assembled matrix, Y a row.
type GridCoord struct {
	X, Y int
}

// GC is shorthand for constructing a GridCoord.
func GC(x, y int) GridCoord {
	return GridCoord{X: x, Y: y}
}

// GridRect is an axis-aligned rectangle in grid space with inclusive
// corners.
type GridRect struct {
	TopLeft     GridCoord
	BottomRight GridCoord
}

// GR is shorthand for constructing a GridRect from corner components.
func GR(left, top, right, bottom int) GridRect {
	return GridRect{TopLeft: GC(left, top), BottomRight: GC(right, bottom)}
}

// Width returns the horizontal extent of the rectangle.
func (r GridRect) Width() int { return r.BottomRight.X - r.TopLeft.X }

// Height returns the vertical extent of the rectangle.
func (r GridRect) Height() int { return r.BottomRight.Y - r.TopLeft.Y }

// Left returns the leftmost X coordinate.
func (r GridRect) Left() int { return r.TopLeft.X }

// Top returns the topmost Y coordinate.
func (r GridRect) Top() int { return r.TopLeft.Y }

// Right returns the rightmost X coordinate.
func (r GridRect) Right() int { return r.BottomRight.X }

// Bottom returns the bottommost Y coordinate.
func (r GridRect) Bottom() int { return r.BottomRight.Y }

// Union returns the smallest rectangle covering both r and other.
func (r GridRect) Union(other GridRect) GridRect {
	return GridRect{
		TopLeft:     GC(minInt(r.TopLeft.X, other.TopLeft.X), minInt(r.TopLeft.Y, other.TopLeft.Y)),
		BottomRight: GC(maxInt(r.BottomRight.X, other.BottomRight.X), maxInt(r.BottomRight.Y, other.BottomRight.Y)),
	}
}

// Rotated returns the rectangle rotated turns×90° around the center of a
// space whose maximum component is spaceMax, by reflecting each corner.
func (r GridRect) Rotated(turns int, spaceMax int) GridRect {
	a := rotateGrid(r.TopLeft, turns, spaceMax)
	b := rotateGrid(r.BottomRight, turns, spaceMax)
	return GridRect{
		TopLeft:     GC(minInt(a.X, b.X), minInt(a.Y, b.Y)),
		BottomRight: GC(maxInt(a.X, b.X), maxInt(a.Y, b.Y)),
	}
}

func rotateGrid(c GridCoord, turns int, spaceMax int) GridCoord {
	switch ((turns % 4) + 4) % 4 {
	case 1:
		return GC(spaceMax-c.Y, c.X)
	case 2:
		return GC(spaceMax-c.X, spaceMax-c.Y)
	case 3:
		return GC(c.Y, spaceMax-c.X)
	default:
		return c
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
