package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"raymarch/app"
	"raymarch/hal"
	"raymarch/raymarch"
)

func main() {
	var hcfg hal.HeadlessConfig
	var wcfg hal.WindowConfig
	cfg := app.DefaultConfig()
	var compact bool

	flag.BoolVar(&hcfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&hcfg.Hz, "hz", 60, "Tick rate.")
	flag.Uint64Var(&hcfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run until quit).")
	flag.IntVar(&wcfg.Scale, "scale", 2, "Window scale factor.")
	flag.IntVar(&cfg.Render.Width, "width", raymarch.DefaultWidth, "Image width in pixels.")
	flag.IntVar(&cfg.Render.Height, "height", raymarch.DefaultHeight, "Image height in pixels.")
	flag.IntVar(&cfg.Render.MaxIter, "max-iter", raymarch.DefaultMaxIter, "Maximum marching steps per ray.")
	flag.Float64Var(&cfg.Render.Boundary, "boundary", raymarch.DefaultBoundary, "Distance at which a ray counts as a miss.")
	flag.Float64Var(&cfg.Render.Threshold, "threshold", raymarch.DefaultThreshold, "Distance at which a ray counts as a hit.")
	flag.BoolVar(&compact, "compact", false, "Use the compact marching limits (overrides -max-iter and -boundary).")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "Render the frame in one step on N goroutines (N > 1).")
	flag.IntVar(&cfg.RowsPerStep, "rows-per-step", cfg.RowsPerStep, "Rows drawn per tick (0 = whole frame).")
	flag.IntVar(&cfg.IntroSteps, "intro-steps", cfg.IntroSteps, "Ticks the caption is shown before rendering.")
	flag.StringVar(&cfg.Snapshot, "out", "", "Write the finished frame to this .png or .bmp file.")
	flag.StringVar(&cfg.Screenshot, "screenshot", "", "Write the finished screen to this .png or .bmp file.")
	flag.BoolVar(&cfg.Exit, "exit", false, "Quit once the frame is finished.")
	flag.Parse()

	if compact {
		cfg.Render.MaxIter = raymarch.CompactMaxIter
		cfg.Render.Boundary = raymarch.CompactBoundary
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	wcfg.TPS = hcfg.Hz
	newApp := func(h hal.HAL) func() error { return app.New(h, cfg) }

	if hcfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, hcfg); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(newApp, wcfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
