// Package render defines the sampling, shading and painting contracts that
// tie buffers, coordinate mappings and the surface engine together.
package render

import (
	"iter"

	"github.com/tdfischer/figments/geometry"
	"github.com/tdfischer/figments/pixel"
)

// Uniforms is the per-frame state threaded unchanged into every shader
// call for one frame. Frame is a monotonically increasing frame counter;
// NowMS is the frame timestamp in milliseconds for beat-synced shaders.
type Uniforms struct {
	Frame uint32
	NowMS uint32
}

// Shader turns a virtual coordinate into a color. Implementations must be
// pure and free of side effects: a shader is stored when installed on a
// surface and invoked later, possibly from a different goroutine.
type Shader interface {
	Draw(c geometry.VirtualCoord, u Uniforms) pixel.RGBA
}

// ShaderFunc adapts a plain function to the Shader interface.
type ShaderFunc func(c geometry.VirtualCoord, u Uniforms) pixel.RGBA

// Draw calls the function.
func (fn ShaderFunc) Draw(c geometry.VirtualCoord, u Uniforms) pixel.RGBA {
	return fn(c, u)
}

// Sampler provides exclusive mutable access to the pixels inside a virtual
// rectangle. The returned sequence is finite, single-pass and not
// restartable, and no two yielded references alias the same cell within
// one call. The yielded coordinate is the cell's fractional position
// within the requested rectangle, scaled to the full 0-255 domain, so
// shaders keep their resolution independence.
type Sampler[P pixel.Format[P]] interface {
	Sample(rect geometry.VirtualRect) iter.Seq2[geometry.VirtualCoord, *P]
}

// Paint evaluates the shader for every sampled cell of rect and blends the
// result over the cell at full opacity.
func Paint[P pixel.Format[P]](dst Sampler[P], s Shader, u Uniforms, rect geometry.VirtualRect) {
	for c, px := range dst.Sample(rect) {
		*px = (*px).AddRGBA(s.Draw(c, u), 255)
	}
}

// Fill paints the shader over the sampler's entire extent.
func Fill[P pixel.Format[P]](dst Sampler[P], s Shader, u Uniforms) {
	Paint(dst, s, u, geometry.Everything())
}
