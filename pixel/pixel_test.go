package pixel

import "testing"

func TestBlendEndpointsAllFormats(t *testing.T) {
	fracs := []uint8{1, 7, 64, 128, 200, 254}

	a3 := RGB{10, 20, 30}
	b3 := RGB{200, 100, 50}
	if got := a3.Blend(b3, 0); got != a3 {
		t.Fatalf("RGB.Blend(f=0) = %+v, want %+v", got, a3)
	}
	if got := a3.Blend(b3, 255); got != b3 {
		t.Fatalf("RGB.Blend(f=255) = %+v, want %+v", got, b3)
	}
	for _, f := range fracs {
		got := a3.Blend(b3, f)
		if got.R < a3.R || got.R > b3.R {
			t.Fatalf("RGB.Blend(f=%d).R = %d, want within [%d, %d]", f, got.R, a3.R, b3.R)
		}
	}

	ag := GRB{G: 20, R: 10, B: 30}
	bg := GRB{G: 100, R: 200, B: 50}
	if got := ag.Blend(bg, 0); got != ag {
		t.Fatalf("GRB.Blend(f=0) = %+v, want %+v", got, ag)
	}
	if got := ag.Blend(bg, 255); got != bg {
		t.Fatalf("GRB.Blend(f=255) = %+v, want %+v", got, bg)
	}

	ab := BGR{B: 30, G: 20, R: 10}
	bb := BGR{B: 50, G: 100, R: 200}
	if got := ab.Blend(bb, 0); got != ab {
		t.Fatalf("BGR.Blend(f=0) = %+v, want %+v", got, ab)
	}
	if got := ab.Blend(bb, 255); got != bb {
		t.Fatalf("BGR.Blend(f=255) = %+v, want %+v", got, bb)
	}

	a4 := RGBA{10, 20, 30, 40}
	b4 := RGBA{200, 100, 50, 255}
	if got := a4.Blend(b4, 0); got != a4 {
		t.Fatalf("RGBA.Blend(f=0) = %+v, want %+v", got, a4)
	}
	if got := a4.Blend(b4, 255); got != b4 {
		t.Fatalf("RGBA.Blend(f=255) = %+v, want %+v", got, b4)
	}

	a5 := BGRA{B: 30, G: 20, R: 10, A: 40}
	b5 := BGRA{B: 50, G: 100, R: 200, A: 255}
	if got := a5.Blend(b5, 0); got != a5 {
		t.Fatalf("BGRA.Blend(f=0) = %+v, want %+v", got, a5)
	}
	if got := a5.Blend(b5, 255); got != b5 {
		t.Fatalf("BGRA.Blend(f=255) = %+v, want %+v", got, b5)
	}
}

func TestAddShortcuts(t *testing.T) {
	base := RGB{1, 2, 3}
	over := RGB{100, 150, 200}
	if got := base.Add(over, 0); got != base {
		t.Fatalf("Add(opacity=0) = %+v, want %+v", got, base)
	}
	if got := base.Add(over, 255); got != over {
		t.Fatalf("Add(opacity=255) = %+v, want %+v", got, over)
	}
}

func TestAddRGBAOpacityZeroIsNoOp(t *testing.T) {
	base := RGB{1, 2, 3}
	over := RGBA{100, 150, 200, 255}
	if got := base.AddRGBA(over, 0); got != base {
		t.Fatalf("AddRGBA(opacity=0) = %+v, want %+v", got, base)
	}
}

func TestAddRGBAFullOpacityIsOverlay(t *testing.T) {
	base := RGB{1, 2, 3}
	over := RGBA{100, 150, 200, 255}
	want := RGB{100, 150, 200}
	if got := base.AddRGBA(over, 255); got != want {
		t.Fatalf("AddRGBA(opacity=255) = %+v, want %+v", got, want)
	}

	bg := GRB{G: 1, R: 2, B: 3}
	if got := bg.AddRGBA(over, 255); got != (GRB{G: 150, R: 100, B: 200}) {
		t.Fatalf("GRB.AddRGBA(opacity=255) = %+v", got)
	}
}

func TestAddRGBAPremultipliesAlpha(t *testing.T) {
	// A fully transparent overlay changes nothing even at full opacity.
	base := RGB{40, 50, 60}
	clear := RGBA{255, 255, 255, 0}
	if got := base.AddRGBA(clear, 255); got != base {
		t.Fatalf("AddRGBA(transparent overlay) = %+v, want %+v", got, base)
	}

	// Half-alpha at full opacity lands between base and overlay.
	half := RGBA{255, 255, 255, 128}
	got := base.AddRGBA(half, 255)
	if got.R <= base.R || got.R >= 255 {
		t.Fatalf("AddRGBA(half alpha).R = %d, want between %d and 255", got.R, base.R)
	}
}

func TestScaleAndSaturatingAdd(t *testing.T) {
	p := RGB{200, 100, 255}
	if got := p.Scale(255); got != p {
		t.Fatalf("Scale(255) = %+v, want %+v", got, p)
	}
	if got := p.Scale(0); got != (RGB{}) {
		t.Fatalf("Scale(0) = %+v, want zero", got)
	}
	if got := p.SaturatingAdd(RGB{100, 100, 100}); got != (RGB{255, 200, 255}) {
		t.Fatalf("SaturatingAdd = %+v, want {255 200 255}", got)
	}
}

func TestMapChannelsLeavesAlpha(t *testing.T) {
	double := func(v uint8) uint8 { return v * 2 }
	p := RGBA{1, 2, 3, 77}
	got := p.MapChannels(double)
	if got != (RGBA{2, 4, 6, 77}) {
		t.Fatalf("MapChannels = %+v, want {2 4 6 77}", got)
	}
}

func TestMilliwatts(t *testing.T) {
	if got := (RGB{}).Milliwatts(); got != 5 {
		t.Fatalf("black Milliwatts() = %d, want just the idle floor 5", got)
	}
	white := RGB{255, 255, 255}.Milliwatts()
	// 255/256 of each reference current plus the floor.
	if white < 200 || white > 215 {
		t.Fatalf("white Milliwatts() = %d, want near 209", white)
	}
	// Channel order must not change the estimate.
	if got := (GRB{G: 10, R: 20, B: 30}).Milliwatts(); got != (RGB{20, 10, 30}).Milliwatts() {
		t.Fatalf("GRB and RGB milliwatt estimates disagree")
	}
}

func TestHSVToRGBGray(t *testing.T) {
	got := HSV{H: 123, S: 0, V: 99}.RGB()
	if got != (RGB{99, 99, 99}) {
		t.Fatalf("HSV(s=0).RGB() = %+v, want gray 99", got)
	}
}

func TestHSVToRGBPrimaries(t *testing.T) {
	red := HSV{H: HueRed, S: 255, V: 255}.RGB()
	if red.R < 250 || red.G > 10 || red.B != 0 {
		t.Fatalf("red hue = %+v, want dominant red", red)
	}

	green := HSV{H: HueGreen, S: 255, V: 255}.RGB()
	if green.G < 128 || green.G <= green.B {
		t.Fatalf("green hue = %+v, want dominant green", green)
	}

	blue := HSV{H: HueBlue, S: 255, V: 255}.RGB()
	if blue.B < 128 || blue.B <= blue.R {
		t.Fatalf("blue hue = %+v, want dominant blue", blue)
	}
}

func TestRGBToHSVIsLossyButCoarse(t *testing.T) {
	// The inverse is a deliberate approximation: assert only that hue lands
	// in the right neighborhood and value/saturation are high for vivid
	// primaries. No round-trip assertion, by design.
	h := RGB{255, 0, 0}.HSV()
	if h.S < 200 || h.V < 200 {
		t.Fatalf("red HSV() = %+v, want vivid", h)
	}
	if h.H > 32 && h.H < 224 {
		t.Fatalf("red HSV() hue = %d, want near the red end of the wheel", h.H)
	}

	g := RGB{0, 255, 0}.HSV()
	if g.H < HueYellow || g.H > HueAqua {
		t.Fatalf("green HSV() hue = %d, want between yellow and aqua", g.H)
	}

	gray := RGB{77, 77, 77}.HSV()
	if gray.S != 0 {
		t.Fatalf("gray HSV() saturation = %d, want 0", gray.S)
	}
}

func TestRGBToHSVPurplePinkBand(t *testing.T) {
	// Red with some blue and no green at all takes the branch anchored at
	// the purple/pink midpoint of the wheel.
	h := RGB{R: 128, B: 64}.HSV()
	if h.H < HuePurple || h.H > HuePink+16 {
		t.Fatalf("magenta-ish HSV() hue = %d, want within the purple-pink band [%d, %d]",
			h.H, HuePurple, HuePink+16)
	}
	if h.S < 200 || h.V < 128 {
		t.Fatalf("magenta-ish HSV() = %+v, want vivid", h)
	}
}
