package power

import "github.com/tdfischer/figments/pixel"

// Sink is the hardware pixel target a writer flushes frames into. Errors
// are opaque and propagate unchanged; retry policy belongs to the driver
// layer, not here.
type Sink[P pixel.Format[P]] interface {
	Write(frame []P) error
}

// Controls holds the output stage's tunables. They are mutated
// synchronously by the owning writer's task only; there is no internal
// locking.
type Controls struct {
	maxMW      uint32
	brightness uint8
	on         bool
	gamma      GammaCurve
	lastMW     uint32
}

// SetBrightness sets the target brightness applied after power limiting.
func (c *Controls) SetBrightness(brightness uint8) {
	c.brightness = brightness
}

// SetOn turns the output on or off. While off, frames are written as full
// black so the strip latches dark instead of freezing.
func (c *Controls) SetOn(on bool) {
	c.on = on
}

// SetGamma replaces the gamma curve.
func (c *Controls) SetGamma(gamma GammaCurve) {
	c.gamma = gamma
}

// LastMilliwatts returns the estimated draw of the most recent frame at
// full brightness, before limiting. It is retained for diagnostics.
func (c *Controls) LastMilliwatts() uint32 {
	return c.lastMW
}

// Writer is the power-managed output stage. Each frame is gamma-corrected,
// its current draw estimated, the brightness scaled to honor the milliwatt
// ceiling, and the result handed to the sink.
type Writer[P pixel.Format[P]] struct {
	sink     Sink[P]
	controls Controls
	scratch  []P
}

// NewWriter wraps sink with a milliwatt ceiling. The writer starts on, at
// full brightness, with an identity gamma curve.
func NewWriter[P pixel.Format[P]](sink Sink[P], maxMW uint32) *Writer[P] {
	return &Writer[P]{
		sink: sink,
		controls: Controls{
			maxMW:      maxMW,
			brightness: 255,
			on:         true,
			gamma:      Identity(),
		},
	}
}

// Controls returns the writer's tunables for the owning task to adjust.
func (w *Writer[P]) Controls() *Controls {
	return &w.controls
}

// Write processes one composited frame and flushes it to the sink. The
// input frame is not modified.
func (w *Writer[P]) Write(frame []P) error {
	if cap(w.scratch) < len(frame) {
		w.scratch = make([]P, len(frame))
	}
	out := w.scratch[:len(frame)]

	if !w.controls.on {
		var zero P
		for i := range out {
			out[i] = zero
		}
		return w.sink.Write(out)
	}

	var totalMW uint32
	for i := range frame {
		out[i] = frame[i].MapChannels(w.controls.gamma.At)
		totalMW += out[i].Milliwatts()
	}
	w.controls.lastMW = totalMW

	b := BrightnessForMilliwatts(totalMW, w.controls.brightness, w.controls.maxMW)
	if b != 255 {
		for i := range out {
			out[i] = out[i].Scale(b)
		}
	}
	return w.sink.Write(out)
}
