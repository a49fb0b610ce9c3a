package surface

import (
	"fmt"
	"runtime"
	"sync"
	"testing"

	"github.com/tdfischer/figments/geometry"
	"github.com/tdfischer/figments/mapping"
	"github.com/tdfischer/figments/pixel"
	"github.com/tdfischer/figments/render"
)

func constant(p pixel.RGBA) render.Shader {
	return render.ShaderFunc(func(geometry.VirtualCoord, render.Uniforms) pixel.RGBA {
		return p
	})
}

var white = constant(pixel.RGBA{R: 255, G: 255, B: 255, A: 255})

func TestNewSurfaceDefaults(t *testing.T) {
	e := NewEngine()
	if got := e.Surfaces(); got != 0 {
		t.Fatalf("Surfaces() = %d, want 0 on a blank engine", got)
	}
	e.Commit()

	sfc := e.NewSurface(geometry.Everything())
	if got := e.Surfaces(); got != 1 {
		t.Fatalf("Surfaces() = %d, want 1 after NewSurface", got)
	}
	if sfc.Slot() != 0 {
		t.Fatalf("Slot() = %d, want 0", sfc.Slot())
	}
	b := e.bindings[0]
	if !b.visible || b.opacity != 255 || b.shader != nil || b.offset != geometry.VC(0, 0) {
		t.Fatalf("new binding = %+v, want visible, opaque, shaderless, zero offset", b)
	}
}

func TestChangesRequireCommit(t *testing.T) {
	e := NewEngine()
	sfc := e.NewSurface(geometry.Everything())

	if err := sfc.SetVisible(false); err != nil {
		t.Fatalf("SetVisible() error = %v", err)
	}
	if err := sfc.SetOpacity(128); err != nil {
		t.Fatalf("SetOpacity() error = %v", err)
	}

	// Nothing is observable before a commit.
	if b := e.bindings[0]; !b.visible || b.opacity != 255 {
		t.Fatalf("uncommitted binding = %+v, want untouched", b)
	}

	e.Commit()

	// Both changes land together.
	if b := e.bindings[0]; b.visible || b.opacity != 128 {
		t.Fatalf("committed binding = %+v, want hidden at opacity 128", b)
	}
}

func TestUpdatesMergePerSlot(t *testing.T) {
	e := NewEngine()
	sfc := e.NewSurface(geometry.Everything())

	if err := sfc.SetOpacity(10); err != nil {
		t.Fatalf("SetOpacity() error = %v", err)
	}
	if err := sfc.SetOpacity(20); err != nil {
		t.Fatalf("SetOpacity() error = %v", err)
	}
	if err := sfc.SetOffset(geometry.VC(5, 0)); err != nil {
		t.Fatalf("SetOffset() error = %v", err)
	}

	if got := e.queue.n; got != 1 {
		t.Fatalf("pending entries = %d, want 1 merged entry per slot", got)
	}

	e.Commit()
	b := e.bindings[0]
	if b.opacity != 20 {
		t.Fatalf("opacity = %d, want the last write 20", b.opacity)
	}
	if b.offset != geometry.VC(5, 0) {
		t.Fatalf("offset = %+v, want {5 0}", b.offset)
	}
	// Untouched fields keep their prior values.
	if !b.visible || b.rect != geometry.Everything() {
		t.Fatalf("binding = %+v, want untouched visibility and rect", b)
	}
}

func TestQueueFullRejectsNewSlots(t *testing.T) {
	e := NewEngine()
	var handles []*Surface
	for i := 0; i < maxPending+1; i++ {
		handles = append(handles, e.NewSurface(geometry.Everything()))
	}

	for i := 0; i < maxPending; i++ {
		if err := handles[i].SetOpacity(1); err != nil {
			t.Fatalf("SetOpacity(%d) error = %v, want queue to hold %d slots", i, err, maxPending)
		}
	}

	// A fresh slot cannot fit; a slot that is already pending still merges.
	if err := handles[maxPending].SetOpacity(1); err != ErrPendingFull {
		t.Fatalf("SetOpacity(new slot) error = %v, want ErrPendingFull", err)
	}
	if err := handles[0].SetOpacity(2); err != nil {
		t.Fatalf("SetOpacity(pending slot) error = %v, want merge to succeed", err)
	}

	e.Commit()
	if err := handles[maxPending].SetOpacity(3); err != nil {
		t.Fatalf("SetOpacity() after commit error = %v, want room again", err)
	}
}

func TestRenderSinglePixelWhite(t *testing.T) {
	e := NewEngine()
	sfc := e.NewSurface(geometry.Everything())
	if err := sfc.SetShader(white); err != nil {
		t.Fatalf("SetShader() error = %v", err)
	}

	buf := mapping.NewBuffer[pixel.RGB](1)
	Render[pixel.RGB](e, buf, render.Uniforms{})

	if buf[0] != (pixel.RGB{R: 255, G: 255, B: 255}) {
		t.Fatalf("rendered pixel = %+v, want white", buf[0])
	}
}

func TestRenderZOrder(t *testing.T) {
	e := NewEngine()
	bottom := e.NewSurface(geometry.Everything())
	top := e.NewSurface(geometry.Everything())
	if err := bottom.SetShader(constant(pixel.RGBA{R: 255, A: 255})); err != nil {
		t.Fatalf("SetShader() error = %v", err)
	}
	if err := top.SetShader(constant(pixel.RGBA{G: 255, A: 255})); err != nil {
		t.Fatalf("SetShader() error = %v", err)
	}

	buf := mapping.NewBuffer[pixel.RGB](4)
	Render[pixel.RGB](e, buf, render.Uniforms{})

	// The higher slot paints over the lower one at full opacity.
	for i, p := range buf {
		if p != (pixel.RGB{G: 255}) {
			t.Fatalf("pixel %d = %+v, want the top surface's green", i, p)
		}
	}
}

func TestRenderSkipsHiddenAndTransparent(t *testing.T) {
	e := NewEngine()
	hidden := e.NewSurface(geometry.Everything())
	transparent := e.NewSurface(geometry.Everything())
	if err := hidden.SetShader(white); err != nil {
		t.Fatalf("SetShader() error = %v", err)
	}
	if err := hidden.SetVisible(false); err != nil {
		t.Fatalf("SetVisible() error = %v", err)
	}
	if err := transparent.SetShader(white); err != nil {
		t.Fatalf("SetShader() error = %v", err)
	}
	if err := transparent.SetOpacity(0); err != nil {
		t.Fatalf("SetOpacity() error = %v", err)
	}

	buf := mapping.NewBuffer[pixel.RGB](3)
	Render[pixel.RGB](e, buf, render.Uniforms{})

	for i, p := range buf {
		if p != (pixel.RGB{}) {
			t.Fatalf("pixel %d = %+v, want untouched black", i, p)
		}
	}
}

func TestRenderAppliesOffset(t *testing.T) {
	e := NewEngine()
	sfc := e.NewSurface(geometry.Everything())
	// Shade by X so the offset is visible in the output.
	if err := sfc.SetShader(render.ShaderFunc(func(c geometry.VirtualCoord, _ render.Uniforms) pixel.RGBA {
		return pixel.RGBA{R: c.X, A: 255}
	})); err != nil {
		t.Fatalf("SetShader() error = %v", err)
	}
	if err := sfc.SetOffset(geometry.VC(100, 0)); err != nil {
		t.Fatalf("SetOffset() error = %v", err)
	}

	buf := mapping.NewBuffer[pixel.RGB](2)
	Render[pixel.RGB](e, buf, render.Uniforms{})

	if buf[0].R != 100 {
		t.Fatalf("first pixel R = %d, want shader to see offset X 100", buf[0].R)
	}
	if buf[1].R != 255 {
		t.Fatalf("last pixel R = %d, want saturated offset coordinate", buf[1].R)
	}
}

func TestClearShaderStopsDrawing(t *testing.T) {
	e := NewEngine()
	sfc := e.NewSurface(geometry.Everything())
	if err := sfc.SetShader(white); err != nil {
		t.Fatalf("SetShader() error = %v", err)
	}
	buf := mapping.NewBuffer[pixel.RGB](1)
	Render[pixel.RGB](e, buf, render.Uniforms{})

	if err := sfc.ClearShader(); err != nil {
		t.Fatalf("ClearShader() error = %v", err)
	}
	buf.Blank()
	Render[pixel.RGB](e, buf, render.Uniforms{})
	if buf[0] != (pixel.RGB{}) {
		t.Fatalf("pixel = %+v after ClearShader, want untouched", buf[0])
	}
}

func TestBuilderAppliesInitialConfig(t *testing.T) {
	e := NewEngine()
	rect := geometry.VR(0, 0, 127, 255)
	sfc, err := Build(e).Rect(rect).Shader(white).Opacity(200).Visible(false).Finish()
	if err != nil {
		t.Fatalf("Finish() error = %v", err)
	}
	e.Commit()

	b := e.bindings[sfc.Slot()]
	if b.rect != rect || b.shader == nil || b.opacity != 200 || b.visible {
		t.Fatalf("built binding = %+v, want rect/shader/opacity/visibility applied", b)
	}
}

func TestConcurrentMutatorsAndRenderer(t *testing.T) {
	// GOMAXPROCS(1) forces the spin lock to rely on Gosched instead of
	// true parallelism; both schedules must hold the same guarantees.
	for _, procs := range []int{1, 2} {
		t.Run(fmt.Sprintf("procs=%d", procs), func(t *testing.T) {
			oldProcs := runtime.GOMAXPROCS(procs)
			defer runtime.GOMAXPROCS(oldProcs)
			runConcurrentMutators(t)
		})
	}
}

func runConcurrentMutators(t *testing.T) {
	e := NewEngine()
	sfc := e.NewSurface(geometry.Everything())
	if err := sfc.SetShader(white); err != nil {
		t.Fatalf("SetShader() error = %v", err)
	}

	iterations := 10_000
	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < iterations; i++ {
			// Merging is the common path: the same slot mutates far more
			// often than commits drain.
			sfc.SetOpacity(uint8(i))
			sfc.SetVisible(i%2 == 0)
		}
		close(done)
	}()

	buf := mapping.NewBuffer[pixel.RGB](8)
	for {
		Render[pixel.RGB](e, buf, render.Uniforms{})
		select {
		case <-done:
			wg.Wait()
			e.Commit()
			// The final committed state is the producer's last write.
			b := e.bindings[0]
			if b.opacity != uint8(iterations-1) {
				t.Fatalf("final opacity = %d, want %d", b.opacity, uint8(iterations-1))
			}
			if b.visible != ((iterations-1)%2 == 0) {
				t.Fatalf("final visibility = %v, want %v", b.visible, (iterations-1)%2 == 0)
			}
			return
		default:
		}
	}
}
