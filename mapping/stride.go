package mapping

import (
	"errors"
	"iter"

	"github.com/tdfischer/figments/geometry"
	"github.com/tdfischer/figments/pixel"
)

var (
	// ErrSegmentOverlap is returned when two segments claim the same column.
	ErrSegmentOverlap = errors.New("mapping: duplicate segment column")
	// ErrEmptyLayout is returned for a layout with no usable segments.
	ErrEmptyLayout = errors.New("mapping: layout has no segments")
	// ErrBufferTooSmall is returned when a buffer cannot back a mapping.
	ErrBufferTooSmall = errors.New("mapping: buffer smaller than mapped pixel count")
)

// Segment describes one physically contiguous pixel run within an
// assembled matrix: the column it occupies, the row its first pixel sits
// on, how many pixels it has, and whether it is wired bottom-to-top.
type Segment struct {
	Column  int  `toml:"column"`
	Offset  int  `toml:"offset"`
	Length  int  `toml:"length"`
	Reverse bool `toml:"reverse"`
}

// strideSeg is a Segment plus its first index into the backing buffer.
// Physical indices accumulate in declaration order, which is the wiring
// order of the strips, not the column order.
type strideSeg struct {
	Segment
	base int
}

func (s strideSeg) indexFor(row int) int {
	rel := row - s.Offset
	if s.Reverse {
		return s.base + s.Length - 1 - rel
	}
	return s.base + rel
}

// StrideMapping maps virtual coordinates onto a display assembled from
// independent segments. Columns without a segment are permitted and simply
// never yield pixels.
type StrideMapping struct {
	byColumn   []*strideSeg // indexed by column - bounds.Left()
	pixelCount int
	bounds     geometry.GridRect
}

// NewStrideMapping builds a mapping from segments in wiring order. The
// bounding rectangle is the union of every segment's column and row span.
func NewStrideMapping(segs []Segment) (*StrideMapping, error) {
	var bounds geometry.GridRect
	valid := 0
	base := 0
	for _, s := range segs {
		if s.Length <= 0 {
			continue
		}
		r := geometry.GR(s.Column, s.Offset, s.Column, s.Offset+s.Length-1)
		if valid == 0 {
			bounds = r
		} else {
			bounds = bounds.Union(r)
		}
		valid++
	}
	if valid == 0 {
		return nil, ErrEmptyLayout
	}

	m := &StrideMapping{
		byColumn: make([]*strideSeg, bounds.Width()+1),
		bounds:   bounds,
	}
	for _, s := range segs {
		if s.Length <= 0 {
			continue
		}
		col := s.Column - bounds.Left()
		if m.byColumn[col] != nil {
			return nil, ErrSegmentOverlap
		}
		m.byColumn[col] = &strideSeg{Segment: s, base: base}
		base += s.Length
	}
	m.pixelCount = base
	return m, nil
}

// PixelCount returns the number of physical pixels the mapping addresses.
func (m *StrideMapping) PixelCount() int {
	return m.pixelCount
}

// Bounds returns the bounding rectangle of the assembled display in grid
// space.
func (m *StrideMapping) Bounds() geometry.GridRect {
	return m.bounds
}

// IndexAt returns the physical buffer index of the grid cell at c. ok is
// false when no segment covers the cell.
func (m *StrideMapping) IndexAt(c geometry.GridCoord) (index int, ok bool) {
	seg := m.segAt(c.X)
	if seg == nil || c.Y < seg.Offset || c.Y >= seg.Offset+seg.Length {
		return 0, false
	}
	return seg.indexFor(c.Y), true
}

func (m *StrideMapping) segAt(column int) *strideSeg {
	col := column - m.bounds.Left()
	if col < 0 || col >= len(m.byColumn) {
		return nil
	}
	return m.byColumn[col]
}

// StrideSampler samples a buffer through a StrideMapping.
type StrideSampler[P pixel.Format[P]] struct {
	m   *StrideMapping
	buf Buffer[P]
}

// NewStrideSampler binds a mapping to its backing buffer.
func NewStrideSampler[P pixel.Format[P]](m *StrideMapping, buf Buffer[P]) (*StrideSampler[P], error) {
	if len(buf) < m.pixelCount {
		return nil, ErrBufferTooSmall
	}
	return &StrideSampler[P]{m: m, buf: buf}, nil
}

// Buffer returns the backing buffer.
func (s *StrideSampler[P]) Buffer() Buffer[P] {
	return s.buf
}

// Mapping returns the stride mapping the sampler addresses through.
func (s *StrideSampler[P]) Mapping() *StrideMapping {
	return s.m
}

// Sample scales the requested rectangle's corners against the mapping's
// bounding box into a grid-space window, then walks the window's columns
// left to right. Each column is clipped to the intersection of the
// requested row range and that column's segment extent; columns with no
// overlap are skipped. The yielded virtual coordinate is the cell's
// fractional position within the requested window, so shaders stay
// resolution independent.
func (s *StrideSampler[P]) Sample(rect geometry.VirtualRect) iter.Seq2[geometry.VirtualCoord, *P] {
	return func(yield func(geometry.VirtualCoord, *P) bool) {
		b := s.m.bounds
		win := geometry.GR(
			b.Left()+scaleInt(b.Width(), rect.Left()),
			b.Top()+scaleInt(b.Height(), rect.Top()),
			b.Left()+scaleInt(b.Width(), rect.Right()),
			b.Top()+scaleInt(b.Height(), rect.Bottom()),
		)
		for x := win.Left(); x <= win.Right(); x++ {
			seg := s.m.segAt(x)
			if seg == nil {
				continue
			}
			y0 := maxInt(win.Top(), seg.Offset)
			y1 := minInt(win.Bottom(), seg.Offset+seg.Length-1)
			for y := y0; y <= y1; y++ {
				var vx, vy uint8
				if win.Width() > 0 {
					vx = uint8(255 * (x - win.Left()) / win.Width())
				}
				if win.Height() > 0 {
					vy = uint8(255 * (y - win.Top()) / win.Height())
				}
				if !yield(geometry.VC(vx, vy), &s.buf[seg.indexFor(y)]) {
					return
				}
			}
		}
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
