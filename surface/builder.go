package surface

import (
	"github.com/tdfischer/figments/geometry"
	"github.com/tdfischer/figments/render"
)

// Builder is a fluent helper for creating a surface with its initial
// configuration in one statement:
//
//	sfc, err := surface.Build(eng).
//		Rect(geometry.VR(0, 0, 127, 255)).
//		Shader(rainbow).
//		Opacity(200).
//		Finish()
type Builder struct {
	engine  *Engine
	rect    geometry.VirtualRect
	rectSet bool
	shader  render.Shader
	opacity uint8
	opSet   bool
	visible bool
	visSet  bool
}

// Build starts building a surface on the engine.
func Build(e *Engine) *Builder {
	return &Builder{engine: e}
}

// Rect sets the initial rectangle; the default covers everything.
func (b *Builder) Rect(rect geometry.VirtualRect) *Builder {
	b.rect = rect
	b.rectSet = true
	return b
}

// Shader sets the initial shader.
func (b *Builder) Shader(s render.Shader) *Builder {
	b.shader = s
	return b
}

// Opacity sets the initial opacity.
func (b *Builder) Opacity(opacity uint8) *Builder {
	b.opacity = opacity
	b.opSet = true
	return b
}

// Visible sets the initial visibility.
func (b *Builder) Visible(visible bool) *Builder {
	b.visible = visible
	b.visSet = true
	return b
}

// Finish creates the surface and queues its initial configuration. The
// configuration lands on the engine's next Commit like any other update.
func (b *Builder) Finish() (*Surface, error) {
	rect := geometry.Everything()
	if b.rectSet {
		rect = b.rect
	}
	sfc := b.engine.NewSurface(rect)
	if b.shader != nil {
		if err := sfc.SetShader(b.shader); err != nil {
			return nil, err
		}
	}
	if b.opSet {
		if err := sfc.SetOpacity(b.opacity); err != nil {
			return nil, err
		}
	}
	if b.visSet {
		if err := sfc.SetVisible(b.visible); err != nil {
			return nil, err
		}
	}
	return sfc, nil
}
