package main

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"time"

	"tinygo.org/x/tinyfont"

	"github.com/tdfischer/figments/geometry"
	"github.com/tdfischer/figments/lib8"
	"github.com/tdfischer/figments/mapping"
	"github.com/tdfischer/figments/pixel"
	"github.com/tdfischer/figments/power"
	"github.com/tdfischer/figments/render"
	"github.com/tdfischer/figments/surface"
)

// demo owns one complete pipeline: surfaces composite into the buffer,
// the buffer is sampled through the mapping, and the writer flushes the
// result to whichever sink the runner supplied.
type demo struct {
	engine  *surface.Engine
	buf     mapping.Buffer[pixel.RGB]
	sampler render.Sampler[pixel.RGB]
	stride  *mapping.StrideSampler[pixel.RGB]
	writer  *power.Writer[pixel.RGB]
	overlay *surface.Surface
	text    string
	frame   uint32
	start   time.Time
}

func newDemo(cfg config, sink power.Sink[pixel.RGB]) (*demo, error) {
	d := &demo{text: cfg.Text, start: time.Now()}

	if cfg.Layout != "" {
		f, err := os.Open(cfg.Layout)
		if err != nil {
			return nil, err
		}
		m, err := mapping.LoadLayout(f)
		f.Close()
		if err != nil {
			return nil, err
		}
		d.buf = mapping.NewBuffer[pixel.RGB](m.PixelCount())
		s, err := mapping.NewStrideSampler(m, d.buf)
		if err != nil {
			return nil, err
		}
		d.stride = s
		d.sampler = s
	} else {
		if cfg.LEDs <= 0 {
			return nil, fmt.Errorf("need at least one pixel, got %d", cfg.LEDs)
		}
		d.buf = mapping.NewBuffer[pixel.RGB](cfg.LEDs)
		d.sampler = d.buf
	}
	if d.text != "" && d.stride == nil {
		return nil, errors.New("-text needs a -layout matrix")
	}

	d.engine = surface.NewEngine()
	if _, err := surface.Build(d.engine).Shader(rainbow()).Finish(); err != nil {
		return nil, err
	}
	overlay, err := surface.Build(d.engine).
		Rect(geometry.VR(0, 128, 255, 255)).
		Shader(pulse(pixel.HueAqua)).
		Opacity(192).
		Finish()
	if err != nil {
		return nil, err
	}
	d.overlay = overlay

	d.writer = power.NewWriter(sink, cfg.MaxMW)
	d.writer.Controls().SetBrightness(cfg.Brightness)
	if cfg.Gamma > 1 {
		d.writer.Controls().SetGamma(power.NewGammaCurve(cfg.Gamma))
	}
	return d, nil
}

// step renders one frame and flushes it.
func (d *demo) step() error {
	u := render.Uniforms{
		Frame: d.frame,
		NowMS: uint32(time.Since(d.start).Milliseconds()),
	}
	d.frame++

	d.buf.Blank()
	surface.Render(d.engine, d.sampler, u)
	if d.text != "" {
		d.drawText(u)
	}
	return d.writer.Write(d.buf)
}

// animate reconfigures the overlay surface from its own goroutine while
// the render loop draws, exercising the merge-on-write update queue the
// way a hardware animation task would.
func (d *demo) animate(stop <-chan struct{}) {
	t := time.NewTicker(250 * time.Millisecond)
	defer t.Stop()

	var tick uint8
	for {
		select {
		case <-stop:
			return
		case <-t.C:
			tick++
			_ = d.overlay.SetOffset(geometry.VC(tick*16, 0))
			if tick%8 == 0 {
				_ = d.overlay.SetVisible(tick%16 != 0)
			}
		}
	}
}

// drawText scrolls the banner right to left across the matrix, wrapping
// once the tail clears the left edge.
func (d *demo) drawText(u render.Uniforms) {
	disp := d.stride.Displayer(nil)
	w, h := disp.Size()
	_, textW := tinyfont.LineWidth(&tinyfont.TomThumb, d.text)

	span := uint32(w) + textW
	x := int16(w) - int16((u.NowMS/40)%span)
	y := (h + int16(tinyfont.TomThumb.GetYAdvance())) / 2
	tinyfont.WriteLine(disp, &tinyfont.TomThumb, x, y, d.text,
		color.RGBA{R: 255, G: 255, B: 255, A: 255})
}

func rainbow() render.Shader {
	return render.ShaderFunc(func(c geometry.VirtualCoord, u render.Uniforms) pixel.RGBA {
		hue := c.X + lib8.Beat8(u.NowMS, 12, 0)
		return pixel.HSV{H: hue, S: 255, V: 255}.RGBA()
	})
}

// pulse breathes a solid hue in and out at 40 BPM; the breathing lives in
// the alpha channel so the layer below shows through at the trough.
func pulse(hue uint8) render.Shader {
	return render.ShaderFunc(func(c geometry.VirtualCoord, u render.Uniforms) pixel.RGBA {
		out := pixel.HSV{H: hue, S: 255, V: 255}.RGBA()
		out.A = lib8.BeatSin8(u.NowMS, 40, 0, 255, 0, 0)
		return out
	})
}
