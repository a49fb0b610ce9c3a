// figdemo runs the compositing pipeline on the host: a couple of animated
// surfaces rendered into a strip or a TOML-described matrix, pushed
// through the power-managed output stage into either a preview window or
// a headless frame counter.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
)

type config struct {
	Headless   bool
	Hz         int
	Frames     uint64
	LEDs       int
	Layout     string
	Text       string
	MaxMW      uint32
	Gamma      float32
	Brightness uint8
}

func main() {
	var cfg config
	flag.BoolVar(&cfg.Headless, "headless", false, "Run without a preview window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Frame rate in headless mode.")
	flag.Uint64Var(&cfg.Frames, "frames", 0, "Stop after N frames in headless mode (0 = run forever).")
	flag.IntVar(&cfg.LEDs, "leds", 60, "Pixel count for a plain linear strip.")
	flag.StringVar(&cfg.Layout, "layout", "", "TOML segment layout file; overrides -leds.")
	flag.StringVar(&cfg.Text, "text", "", "Scroll a text banner over the animation (needs -layout).")
	maxMW := flag.Uint("max-mw", 5000, "Power budget in milliwatts.")
	gamma := flag.Float64("gamma", 2.2, "Gamma exponent (1 = linear).")
	brightness := flag.Uint("brightness", 255, "Target brightness, 0-255.")
	flag.Parse()
	cfg.MaxMW = uint32(*maxMW)
	cfg.Gamma = float32(*gamma)
	cfg.Brightness = uint8(*brightness)

	if cfg.Headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := runHeadless(ctx, cfg); err != nil {
			if err == context.Canceled {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := runWindow(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
