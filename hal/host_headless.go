package hal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	Ticks   uint64 // stop after this many ticks; 0 runs until the app quits
	Width   int    // framebuffer size; 0 selects ScreenWidth×ScreenHeight
	Height  int
	Log     io.Writer
}

// RunHeadless runs the app without opening a window.
//
// A step returning ErrQuit ends the run with a nil error.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = ScreenWidth, ScreenHeight
	}
	if cfg.Log == nil {
		cfg.Log = os.Stdout
	}

	h := newHost(cfg.Width, cfg.Height, cfg.Log)
	step := newApp(h)

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if step != nil {
				if err := step(); err != nil {
					if errors.Is(err, ErrQuit) {
						return nil
					}
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}
