package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tdfischer/figments/geometry"
	"github.com/tdfischer/figments/internal/buildinfo"
	"github.com/tdfischer/figments/pixel"
)

// previewSink keeps the most recent flushed frame for the window to draw.
// Update and Draw run on the same goroutine, so no locking is needed.
type previewSink struct {
	colors []color.RGBA
}

func (p *previewSink) Write(frame []pixel.RGB) error {
	if len(p.colors) != len(frame) {
		p.colors = make([]color.RGBA, len(frame))
	}
	for i := range frame {
		p.colors[i] = frame[i].Color()
	}
	return nil
}

// runWindow opens a desktop window showing each pixel as one cell of the
// layout grid. It blocks until the window closes.
func runWindow(cfg config) error {
	sink := &previewSink{}
	d, err := newDemo(cfg, sink)
	if err != nil {
		return err
	}

	cols, rows := cfg.LEDs, 1
	if d.stride != nil {
		b := d.stride.Mapping().Bounds()
		cols, rows = b.Width()+1, b.Height()+1
	}

	scale := 512 / cols
	if scale < 4 {
		scale = 4
	}
	if scale > 24 {
		scale = 24
	}

	stop := make(chan struct{})
	defer close(stop)
	go d.animate(stop)

	g := &previewGame{d: d, sink: sink, cols: cols, rows: rows}
	ebiten.SetWindowTitle("figdemo (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(cols*scale, rows*scale)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type previewGame struct {
	d          *demo
	sink       *previewSink
	cols, rows int
	img        *image.RGBA
	fbImg      *ebiten.Image
}

func (g *previewGame) Update() error {
	return g.d.step()
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, g.cols, g.rows))
		g.fbImg = ebiten.NewImage(g.cols, g.rows)
	}

	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			c := color.RGBA{R: 0x18, G: 0x18, B: 0x18, A: 0xFF}
			if i, ok := g.indexAt(x, y); ok && i < len(g.sink.colors) {
				c = g.sink.colors[i]
				c.A = 0xFF
			}
			g.img.SetRGBA(x, y, c)
		}
	}

	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

// indexAt maps a preview cell to its physical pixel. Cells outside every
// segment stay unlit.
func (g *previewGame) indexAt(x, y int) (int, bool) {
	if g.d.stride == nil {
		return x, true
	}
	m := g.d.stride.Mapping()
	b := m.Bounds()
	return m.IndexAt(geometry.GC(x+b.Left(), y+b.Top()))
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cols, g.rows
}
