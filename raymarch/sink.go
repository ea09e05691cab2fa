package raymarch

import (
	"image"
	"image/color"
)

// PixelSink receives finished pixels.
//
// Implementations should clip out-of-bounds coordinates.
type PixelSink interface {
	SetPixel(x, y int, c Color)
}

// FuncSink adapts a function to PixelSink.
type FuncSink func(x, y int, c Color)

func (f FuncSink) SetPixel(x, y int, c Color) { f(x, y, c) }

// RGB565Sink writes into a little-endian RGB565 buffer.
//
// OffX/OffY place pixel (0, 0) inside the buffer.
type RGB565Sink struct {
	Buf    []byte
	Stride int // bytes per row
	W      int
	H      int
	OffX   int
	OffY   int
}

func (s *RGB565Sink) SetPixel(x, y int, c Color) {
	if s == nil || s.Buf == nil || s.Stride <= 0 {
		return
	}
	x += s.OffX
	y += s.OffY
	if x < 0 || y < 0 || x >= s.W || y >= s.H {
		return
	}
	off := y*s.Stride + x*2
	if off < 0 || off+1 >= len(s.Buf) {
		return
	}
	p := RGB565(c)
	s.Buf[off] = byte(p)
	s.Buf[off+1] = byte(p >> 8)
}

// RGB565 packs c as rrrrrggggggbbbbb.
func RGB565(c Color) uint16 {
	return uint16((uint16(c.R>>3)&0x1F)<<11 | (uint16(c.G>>2)&0x3F)<<5 | (uint16(c.B>>3) & 0x1F))
}

// ImageSink writes opaque pixels into an *image.RGBA.
type ImageSink struct {
	Img *image.RGBA
}

// NewImageSink allocates a w×h image.
func NewImageSink(w, h int) *ImageSink {
	return &ImageSink{Img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func (s *ImageSink) SetPixel(x, y int, c Color) {
	if s == nil || s.Img == nil {
		return
	}
	if !(image.Point{X: x, Y: y}).In(s.Img.Rect) {
		return
	}
	s.Img.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF})
}

// Tee writes every pixel to each sink in order.
func Tee(sinks ...PixelSink) PixelSink {
	return FuncSink(func(x, y int, c Color) {
		for _, s := range sinks {
			if s != nil {
				s.SetPixel(x, y, c)
			}
		}
	})
}
