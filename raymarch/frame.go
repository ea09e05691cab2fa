package raymarch

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// FrameStats summarizes a rendered span of rows.
type FrameStats struct {
	Pixels     int
	Degenerate int   // pixels painted as Background
	Err        error // first per-pixel error, if any
}

func (s *FrameStats) add(o FrameStats) {
	s.Pixels += o.Pixels
	s.Degenerate += o.Degenerate
	if s.Err == nil {
		s.Err = o.Err
	}
}

// Row computes screen row y (0 = top) into dst, which must hold Width colors.
func (r *Renderer) Row(y int, dst []Color) FrameStats {
	var st FrameStats
	sy := r.cfg.Height - y
	for x := 0; x < r.cfg.Width && x < len(dst); x++ {
		c, err := r.Pixel(x, sy)
		if err != nil {
			st.Degenerate++
			if st.Err == nil {
				st.Err = err
			}
		}
		dst[x] = c
		st.Pixels++
	}
	return st
}

// RenderRows renders screen rows [y0, y1) into sink in raster order.
//
// Screen rows grow downward; row y samples the scene at height Height-y.
func (r *Renderer) RenderRows(y0, y1 int, sink PixelSink) FrameStats {
	var st FrameStats
	if y0 < 0 {
		y0 = 0
	}
	if y1 > r.cfg.Height {
		y1 = r.cfg.Height
	}
	row := make([]Color, r.cfg.Width)
	for y := y0; y < y1; y++ {
		st.add(r.Row(y, row))
		for x, c := range row {
			sink.SetPixel(x, y, c)
		}
	}
	return st
}

// RenderFrame renders the whole raster into sink, checking ctx between rows.
func (r *Renderer) RenderFrame(ctx context.Context, sink PixelSink) (FrameStats, error) {
	var st FrameStats
	for y := 0; y < r.cfg.Height; y++ {
		if err := ctx.Err(); err != nil {
			return st, err
		}
		st.add(r.RenderRows(y, y+1, sink))
	}
	return st, nil
}

// RenderFrameParallel computes rows on up to workers goroutines, then writes
// them to sink in the same raster order as RenderFrame.
func (r *Renderer) RenderFrameParallel(ctx context.Context, sink PixelSink, workers int) (FrameStats, error) {
	if workers <= 1 {
		return r.RenderFrame(ctx, sink)
	}

	w, h := r.cfg.Width, r.cfg.Height
	pix := make([]Color, w*h)
	rowStats := make([]FrameStats, h)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for y := 0; y < h; y++ {
		y := y
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rowStats[y] = r.Row(y, pix[y*w:(y+1)*w])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return FrameStats{}, fmt.Errorf("raymarch: parallel frame: %w", err)
	}

	var st FrameStats
	for y := 0; y < h; y++ {
		st.add(rowStats[y])
		for x, c := range pix[y*w : (y+1)*w] {
			sink.SetPixel(x, y, c)
		}
	}
	return st, nil
}
