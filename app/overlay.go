package app

import (
	"image/color"
	"math"

	"raymarch/hal"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var captionFont tinyfont.Fonter = &proggy.TinySZ8pt7b

var (
	captionColor = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
	paperColor   = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	markColor    = color.RGBA{R: 0x00, G: 0xFF, B: 0x00, A: 0xFF}
)

// fbDisplay exposes an RGB565 framebuffer as a drivers.Displayer.
type fbDisplay struct {
	fb hal.Framebuffer
}

var _ drivers.Displayer = (*fbDisplay)(nil)

func (d *fbDisplay) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplay) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return
	}

	w := d.fb.Width()
	h := d.fb.Height()
	ix := int(x)
	iy := int(y)
	if ix < 0 || ix >= w || iy < 0 || iy >= h {
		return
	}

	pixel := rgb565From888(c.R, c.G, c.B)
	off := iy*d.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d *fbDisplay) Display() error {
	if d.fb == nil {
		return nil
	}
	return d.fb.Present()
}

// turtle draws with a pen on a centered, y-up canvas the size of the framebuffer.
type turtle struct {
	d       *fbDisplay
	x, y    float64
	heading float64 // degrees, counterclockwise from +x
	width   int
	c       color.RGBA
}

func (t *turtle) screen(x, y float64) (int, int) {
	w, h := t.d.Size()
	return int(math.Round(x + float64(w)/2)), int(math.Round(float64(h)/2 - y))
}

func (t *turtle) goTo(x, y float64) { t.x, t.y = x, y }
func (t *turtle) right(deg float64) { t.heading -= deg }
func (t *turtle) left(deg float64)  { t.heading += deg }

func (t *turtle) forward(dist float64) {
	s, c := math.Sincos(t.heading * math.Pi / 180)
	nx, ny := t.x+dist*c, t.y+dist*s
	x0, y0 := t.screen(t.x, t.y)
	x1, y1 := t.screen(nx, ny)
	t.line(x0, y0, x1, y1)
	t.x, t.y = nx, ny
}

// circle draws a full circle whose center lies radius units to the turtle's left.
func (t *turtle) circle(radius float64) {
	s, c := math.Sincos((t.heading + 90) * math.Pi / 180)
	cx, cy := t.screen(t.x+radius*c, t.y+radius*s)
	half := float64(t.width) / 2
	r := int(math.Ceil(radius + half))
	for y := -r; y <= r; y++ {
		for x := -r; x <= r; x++ {
			dd := math.Hypot(float64(x), float64(y))
			if math.Abs(dd-radius) <= half {
				t.d.SetPixel(int16(cx+x), int16(cy+y), t.c)
			}
		}
	}
}

func (t *turtle) line(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		t.stamp(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (t *turtle) stamp(cx, cy int) {
	r := t.width / 2
	for y := -r; y <= r; y++ {
		for x := -r; x <= r; x++ {
			if x*x+y*y <= r*r {
				t.d.SetPixel(int16(cx+x), int16(cy+y), t.c)
			}
		}
	}
}

// drawCaption writes the intro text with its bottom-left corner at canvas
// position (-150, -20).
func drawCaption(fb hal.Framebuffer, lines []string) {
	d := &fbDisplay{fb: fb}
	t := &turtle{d: d}
	x, bottom := t.screen(-150, -20)
	adv := int(captionFont.GetYAdvance())
	y := bottom - adv*(len(lines)-1)
	for _, line := range lines {
		if line != "" {
			tinyfont.WriteLine(d, captionFont, int16(x), int16(y), line, captionColor)
		}
		y += adv
	}
}

// drawDoneMark draws the green ring and check stroke shown once the frame is complete.
func drawDoneMark(fb hal.Framebuffer) {
	t := &turtle{d: &fbDisplay{fb: fb}, width: 5, c: markColor}
	t.goTo(85, 13)
	t.circle(40)
	t.goTo(60, 59)
	t.right(32)
	t.forward(40)
	t.left(83)
	t.forward(70)
}

func rgb565From888(r, g, b uint8) uint16 {
	return uint16((uint16(r>>3)&0x1F)<<11 | (uint16(g>>2)&0x3F)<<5 | (uint16(b>>3) & 0x1F))
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
