package main

import (
	"context"
	"fmt"
	"time"

	"github.com/tdfischer/figments/pixel"
)

// discardSink counts frames and drops them.
type discardSink struct {
	frames uint64
}

func (s *discardSink) Write(frame []pixel.RGB) error {
	s.frames++
	return nil
}

// runHeadless renders without a window at the configured rate.
func runHeadless(ctx context.Context, cfg config) error {
	if cfg.Hz <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	sink := &discardSink{}
	d, err := newDemo(cfg, sink)
	if err != nil {
		return err
	}

	stop := make(chan struct{})
	defer close(stop)
	go d.animate(stop)

	t := time.NewTicker(time.Second / time.Duration(cfg.Hz))
	defer t.Stop()

	started := time.Now()
	defer func() {
		elapsed := time.Since(started)
		fps := float64(sink.frames) / elapsed.Seconds()
		fmt.Printf("%d frames in %v (%.1f fps), last frame %d mW before limiting\n",
			sink.frames, elapsed.Round(time.Millisecond), fps,
			d.writer.Controls().LastMilliwatts())
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if err := d.step(); err != nil {
				return err
			}
			if cfg.Frames > 0 && sink.frames >= cfg.Frames {
				return nil
			}
		}
	}
}
