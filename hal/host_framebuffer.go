package hal

import (
	"image"
	"sync"
)

type hostFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	stride int
	buf    []byte
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	stride := width * 2
	return &hostFramebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
	}
}

func (f *hostFramebuffer) Width() int          { return f.width }
func (f *hostFramebuffer) Height() int         { return f.height }
func (f *hostFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *hostFramebuffer) StrideBytes() int    { return f.stride }
func (f *hostFramebuffer) Buffer() []byte      { return f.buf }

func (f *hostFramebuffer) Present() error { return nil }

func (f *hostFramebuffer) ClearRGB(r, g, b uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()

	pixel := rgb565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

func (f *hostFramebuffer) snapshotRGB565(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.buf)
}

// Snapshot converts an RGB565 framebuffer region to an opaque RGBA image.
// The region is clipped to the framebuffer.
func Snapshot(fb Framebuffer, r image.Rectangle) *image.RGBA {
	r = r.Intersect(image.Rect(0, 0, fb.Width(), fb.Height()))
	img := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	buf := fb.Buffer()
	if buf == nil || fb.Format() != PixelFormatRGB565 {
		return img
	}
	stride := fb.StrideBytes()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			off := y*stride + x*2
			if off < 0 || off+1 >= len(buf) {
				continue
			}
			rr, gg, bb := rgb888From565(uint16(buf[off]) | uint16(buf[off+1])<<8)
			j := img.PixOffset(x-r.Min.X, y-r.Min.Y)
			img.Pix[j+0] = rr
			img.Pix[j+1] = gg
			img.Pix[j+2] = bb
			img.Pix[j+3] = 0xFF
		}
	}
	return img
}
