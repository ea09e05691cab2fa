package app

import (
	"context"
	"fmt"
	"image"
	"time"

	"raymarch/hal"
	"raymarch/internal/buildinfo"
	"raymarch/internal/snapshot"
	"raymarch/raymarch"
)

// Config controls the viewer.
type Config struct {
	Render raymarch.Config

	Workers     int // >1 renders the frame in one step on that many goroutines
	RowsPerStep int // rows emitted per step; 0 emits the whole frame at once
	IntroSteps  int // steps the caption stays up before rendering starts

	Exit       bool   // quit once the frame is finished
	Snapshot   string // .png or .bmp path for the rendered image
	Screenshot string // .png or .bmp path for the whole screen, caption and mark included
}

// DefaultConfig returns the viewer defaults.
func DefaultConfig() Config {
	return Config{
		Render:      raymarch.DefaultConfig(),
		Workers:     1,
		RowsPerStep: 2,
		IntroSteps:  60,
	}
}

func (c Config) Validate() error {
	if err := c.Render.Validate(); err != nil {
		return err
	}
	if c.Workers < 0 {
		return fmt.Errorf("app: invalid workers: %d", c.Workers)
	}
	if c.RowsPerStep < 0 {
		return fmt.Errorf("app: invalid rows per step: %d", c.RowsPerStep)
	}
	if c.IntroSteps < 0 {
		return fmt.Errorf("app: invalid intro steps: %d", c.IntroSteps)
	}
	for _, path := range []string{c.Snapshot, c.Screenshot} {
		if path == "" {
			continue
		}
		if _, err := snapshot.FormatFor(path); err != nil {
			return err
		}
	}
	return nil
}

func introLines() []string {
	return []string{
		"Ray marching is a technique",
		"used in computer graphics",
		"to render 3D scenes",
		"by simulating light behavior.",
		"",
		"Version " + buildinfo.Short(),
	}
}

type phase uint8

const (
	phaseIntro phase = iota
	phaseWait
	phaseRender
	phaseIdle
)

type viewer struct {
	cfg Config
	r   *raymarch.Renderer

	log hal.Logger
	fb  hal.Framebuffer
	kbd hal.Keyboard

	phase   phase
	wait    int
	row     int
	started time.Time
	stats   raymarch.FrameStats
	img     *raymarch.ImageSink
	sink    raymarch.PixelSink
}

// New returns the step function of the viewer: intro caption, progressive
// render, completion mark, then idle until 'r' (render again) or 'q'/Esc.
func New(h hal.HAL, cfg Config) func() error {
	r, err := raymarch.New(cfg.Render, nil)
	if err != nil {
		return func() error { return err }
	}
	v := &viewer{cfg: cfg, r: r, log: h.Logger()}
	if d := h.Display(); d != nil {
		v.fb = d.Framebuffer()
	}
	if in := h.Input(); in != nil {
		v.kbd = in.Keyboard()
	}

	rc := r.Config()
	v.logf("raymarch: %dx%d max-iter=%d boundary=%g threshold=%g workers=%d (%s)",
		rc.Width, rc.Height, rc.MaxIter, rc.Boundary, rc.Threshold, cfg.Workers, buildinfo.String())
	return guard(h, v.step)
}

func (v *viewer) logf(format string, args ...any) {
	if v.log == nil {
		return
	}
	v.log.WriteLineString(fmt.Sprintf(format, args...))
}

func (v *viewer) step() error {
	if err := v.pollKeys(); err != nil {
		return err
	}

	switch v.phase {
	case phaseIntro:
		v.intro()
		v.wait = v.cfg.IntroSteps
		v.phase = phaseWait
		if v.wait > 0 {
			return nil
		}
		fallthrough
	case phaseWait:
		if v.wait > 0 {
			v.wait--
			return nil
		}
		v.begin()
		return v.render()
	case phaseRender:
		return v.render()
	}
	return nil
}

func (v *viewer) pollKeys() error {
	if v.kbd == nil {
		return nil
	}
	ch := v.kbd.Events()
	for {
		select {
		case ev, ok := <-ch:
			if !ok {
				v.kbd = nil
				return nil
			}
			if !ev.Press {
				continue
			}
			switch {
			case ev.Code == hal.KeyEscape, ev.Rune == 'q', ev.Rune == 'Q':
				return hal.ErrQuit
			case ev.Rune == 'r', ev.Rune == 'R':
				v.phase = phaseIntro
			}
		default:
			return nil
		}
	}
}

func (v *viewer) intro() {
	if v.fb == nil {
		return
	}
	v.fb.ClearRGB(paperColor.R, paperColor.G, paperColor.B)
	drawCaption(v.fb, introLines())
	_ = v.fb.Present()
}

func (v *viewer) begin() {
	rc := v.r.Config()
	v.img = raymarch.NewImageSink(rc.Width, rc.Height)
	v.sink = v.img
	if v.fb != nil && v.fb.Format() == hal.PixelFormatRGB565 {
		v.sink = raymarch.Tee(&raymarch.RGB565Sink{
			Buf:    v.fb.Buffer(),
			Stride: v.fb.StrideBytes(),
			W:      v.fb.Width(),
			H:      v.fb.Height(),
		}, v.img)
	}
	v.row = 0
	v.stats = raymarch.FrameStats{}
	v.started = time.Now()
	v.phase = phaseRender
}

func (v *viewer) render() error {
	h := v.r.Config().Height

	switch {
	case v.cfg.Workers > 1:
		st, err := v.r.RenderFrameParallel(context.Background(), v.sink, v.cfg.Workers)
		if err != nil {
			return err
		}
		v.stats = st
		v.row = h
	case v.cfg.RowsPerStep <= 0:
		v.stats = v.r.RenderRows(0, h, v.sink)
		v.row = h
	default:
		end := v.row + v.cfg.RowsPerStep
		if end > h {
			end = h
		}
		st := v.r.RenderRows(v.row, end, v.sink)
		v.stats.Pixels += st.Pixels
		v.stats.Degenerate += st.Degenerate
		if v.stats.Err == nil {
			v.stats.Err = st.Err
		}
		v.row = end
	}

	if v.row < h {
		if v.fb != nil {
			_ = v.fb.Present()
		}
		return nil
	}
	return v.finish()
}

func (v *viewer) finish() error {
	v.phase = phaseIdle
	if v.fb != nil {
		drawDoneMark(v.fb)
		_ = v.fb.Present()
	}

	rc := v.r.Config()
	v.logf("raymarch: frame %dx%d done in %s (%d px, %d degenerate)",
		rc.Width, rc.Height, time.Since(v.started).Round(time.Millisecond), v.stats.Pixels, v.stats.Degenerate)
	if v.stats.Err != nil {
		v.logf("raymarch: %v", v.stats.Err)
	}

	if v.cfg.Snapshot != "" {
		if err := snapshot.Save(v.cfg.Snapshot, v.img.Img); err != nil {
			return fmt.Errorf("app: %w", err)
		}
		v.logf("app: wrote %s", v.cfg.Snapshot)
	}
	if v.cfg.Screenshot != "" && v.fb != nil {
		img := hal.Snapshot(v.fb, image.Rect(0, 0, v.fb.Width(), v.fb.Height()))
		if err := snapshot.Save(v.cfg.Screenshot, img); err != nil {
			return fmt.Errorf("app: %w", err)
		}
		v.logf("app: wrote %s", v.cfg.Screenshot)
	}

	if v.cfg.Exit {
		return hal.ErrQuit
	}
	return nil
}
