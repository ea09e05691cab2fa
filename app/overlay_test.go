package app

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"raymarch/hal"
)

const white565 = 0xFFFF

func countInk(fb hal.Framebuffer, x0, y0, x1, y1 int) int {
	n := 0
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if fbPixel(fb, x, y) != white565 {
				n++
			}
		}
	}
	return n
}

func paper(t *testing.T) hal.Framebuffer {
	t.Helper()
	fb := hal.NewSized(hal.ScreenWidth, hal.ScreenHeight, nil).Display().Framebuffer()
	fb.ClearRGB(paperColor.R, paperColor.G, paperColor.B)
	return fb
}

func TestDrawCaption(t *testing.T) {
	fb := paper(t)
	drawCaption(fb, introLines())

	// Text starts at canvas x=-150 and ends on the baseline at canvas y=-20.
	if countInk(fb, 10, 0, 250, 136) == 0 {
		t.Fatalf("caption drew nothing")
	}
	if n := countInk(fb, 0, 0, 9, hal.ScreenHeight); n != 0 {
		t.Fatalf("%d pixels left of the caption", n)
	}
	if n := countInk(fb, 0, 140, hal.ScreenWidth, hal.ScreenHeight); n != 0 {
		t.Fatalf("%d pixels below the caption", n)
	}
}

func TestDrawDoneMark(t *testing.T) {
	fb := paper(t)
	drawDoneMark(fb)

	green := rgb565From888(markColor.R, markColor.G, markColor.B)
	// Ring center is canvas (85, 53), radius 40.
	for _, p := range [][2]int{{285, 58}, {205, 58}, {245, 18}, {245, 98}} {
		if got := fbPixel(fb, p[0], p[1]); got != green {
			t.Fatalf("ring pixel %v = %#04x, want %#04x", p, got, green)
		}
	}
	if got := fbPixel(fb, 245, 58); got != white565 {
		t.Fatalf("ring center painted: %#04x", got)
	}
	// Check stroke starts at canvas (60, 59).
	if got := fbPixel(fb, 220, 52); got != green {
		t.Fatalf("stroke start = %#04x", got)
	}
	if n := countInk(fb, 0, 0, 150, hal.ScreenHeight); n != 0 {
		t.Fatalf("%d mark pixels over the image area", n)
	}
}

func TestFbDisplayClips(t *testing.T) {
	fb := paper(t)
	d := &fbDisplay{fb: fb}
	d.SetPixel(-1, 0, captionColor)
	d.SetPixel(0, int16(hal.ScreenHeight), captionColor)
	d.SetPixel(int16(hal.ScreenWidth), 5, captionColor)
	if n := countInk(fb, 0, 0, hal.ScreenWidth, hal.ScreenHeight); n != 0 {
		t.Fatalf("out of range SetPixel drew %d pixels", n)
	}
	d.SetPixel(3, 4, captionColor)
	if got := fbPixel(fb, 3, 4); got != 0 {
		t.Fatalf("pixel = %#04x, want black", got)
	}
	if w, h := d.Size(); int(w) != hal.ScreenWidth || int(h) != hal.ScreenHeight {
		t.Fatalf("Size() = %d,%d", w, h)
	}
}

func TestGuardRecoversPanic(t *testing.T) {
	var log bytes.Buffer
	h := newTestHAL(&log)
	fb := h.framebuffer()

	step := guard(h, func() error { panic("boom") })
	err := step()
	if err == nil || !strings.Contains(err.Error(), "panic: boom") {
		t.Fatalf("guard error = %v", err)
	}
	if !strings.Contains(log.String(), "raymarch panic: boom") {
		t.Fatalf("panic not logged:\n%s", log.String())
	}
	if countInk(fb, 0, 0, hal.ScreenWidth, 30) == 0 {
		t.Fatalf("crash screen is blank")
	}

	sentinel := errors.New("step failed")
	if err := guard(h, func() error { return sentinel })(); !errors.Is(err, sentinel) {
		t.Fatalf("guard changed step error: %v", err)
	}
}

func TestTakeRunes(t *testing.T) {
	cases := []struct {
		s          string
		n          int
		head, tail string
	}{
		{"héllo", 2, "hé", "llo"},
		{"abc", 3, "abc", ""},
		{"abc", 10, "abc", ""},
		{"abc", 0, "", "abc"},
		{"", 4, "", ""},
	}
	for _, tc := range cases {
		head, tail := takeRunes(tc.s, tc.n)
		if head != tc.head || tail != tc.tail {
			t.Fatalf("takeRunes(%q, %d) = %q, %q", tc.s, tc.n, head, tail)
		}
	}
}
