// Package surface implements the layered compositing engine: an ordered
// list of drawable surfaces, each with its own shader, rectangle, opacity,
// visibility and offset, mutated through a merge-on-write pending queue so
// an animation task reconfigures layers while the render task draws.
package surface

import (
	"github.com/tdfischer/figments/geometry"
	"github.com/tdfischer/figments/pixel"
	"github.com/tdfischer/figments/render"
)

// binding is the engine-owned state of one surface. Bindings are touched
// only inside Commit, never under the queue lock.
type binding struct {
	shader  render.Shader
	rect    geometry.VirtualRect
	opacity uint8
	visible bool
	offset  geometry.VirtualCoord
}

// Engine owns the ordered surface list. The slot index of a surface is its
// z-order: higher slots composite over lower ones. The list only grows;
// surfaces are never removed, only cleared or hidden.
//
// Exactly one task may call Commit or Render at a time. Surface handles
// are safe to use from any other task concurrently, including mid-commit.
type Engine struct {
	bindings []binding
	queue    *updateQueue
	drained  []update
}

// NewEngine returns an engine with no surfaces.
func NewEngine() *Engine {
	return &Engine{queue: &updateQueue{}}
}

// NewSurface appends a surface covering rect, fully opaque, visible, with
// no shader and no offset, and returns its handle. The handle shares the
// engine's update queue and stays valid for the engine's lifetime.
func (e *Engine) NewSurface(rect geometry.VirtualRect) *Surface {
	slot := len(e.bindings)
	e.bindings = append(e.bindings, binding{
		rect:    rect,
		opacity: 255,
		visible: true,
	})
	return &Surface{queue: e.queue, slot: slot}
}

// Commit applies every pending update. If anything is queued, the FIFO is
// swapped for an empty one and the drained patches are applied to their
// bindings field by field in FIFO order. A patch is never applied
// partially: after Commit returns, a render sees the complete effect of
// every committed change.
//
// Commit must not run concurrently with itself or with Render on the same
// engine.
func (e *Engine) Commit() {
	e.drained = e.queue.take(e.drained)
	for i := range e.drained {
		u := &e.drained[i]
		b := &e.bindings[u.slot]
		if u.shaderSet {
			b.shader = u.shader
		}
		if u.rectSet {
			b.rect = u.rect
		}
		if u.opacitySet {
			b.opacity = u.opacity
		}
		if u.visibleSet {
			b.visible = u.visible
		}
		if u.offsetSet {
			b.offset = u.offset
		}
		// Drop the shader reference so a cleared shader can be collected.
		*u = update{}
	}
}

// Surfaces returns how many surfaces have been created.
func (e *Engine) Surfaces() int {
	return len(e.bindings)
}

// Render commits pending updates, then composites every visible surface
// bottom to top into dst. Each surface's rectangle is sampled, the
// surface's offset is added to every yielded coordinate, its shader is
// evaluated there, and the result is composited with the surface's
// opacity. Surfaces with no shader, zero opacity or hidden state cost
// nothing.
//
// dst is exclusively owned by the caller for the duration of the call.
func Render[P pixel.Format[P]](e *Engine, dst render.Sampler[P], u render.Uniforms) {
	e.Commit()
	for i := range e.bindings {
		b := &e.bindings[i]
		if b.shader == nil || b.opacity == 0 || !b.visible {
			continue
		}
		for c, px := range dst.Sample(b.rect) {
			*px = (*px).AddRGBA(b.shader.Draw(c.Add(b.offset), u), b.opacity)
		}
	}
}

// Surface is a handle onto one engine slot. Every mutator builds a sparse
// single-field patch and pushes it to the shared queue; nothing takes
// effect until the engine's next Commit, and patches queued between two
// commits land together atomically.
type Surface struct {
	queue *updateQueue
	slot  int
}

// Slot returns the surface's z-order slot.
func (s *Surface) Slot() int {
	return s.slot
}

// SetShader installs the shader evaluated for this surface.
func (s *Surface) SetShader(sh render.Shader) error {
	return s.queue.push(&update{slot: s.slot, shader: sh, shaderSet: true})
}

// ClearShader removes the surface's shader, leaving it blank.
func (s *Surface) ClearShader() error {
	return s.queue.push(&update{slot: s.slot, shaderSet: true})
}

// SetRect changes the rectangle the surface covers.
func (s *Surface) SetRect(rect geometry.VirtualRect) error {
	return s.queue.push(&update{slot: s.slot, rect: rect, rectSet: true})
}

// SetOpacity sets the surface opacity from 0 (transparent) to 255 (opaque).
func (s *Surface) SetOpacity(opacity uint8) error {
	return s.queue.push(&update{slot: s.slot, opacity: opacity, opacitySet: true})
}

// SetVisible toggles visibility without touching the stored opacity.
func (s *Surface) SetVisible(visible bool) error {
	return s.queue.push(&update{slot: s.slot, visible: visible, visibleSet: true})
}

// SetOffset sets the scroll offset added to every coordinate the shader
// sees.
func (s *Surface) SetOffset(offset geometry.VirtualCoord) error {
	return s.queue.push(&update{slot: s.slot, offset: offset, offsetSet: true})
}
