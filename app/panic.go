package app

import (
	"fmt"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"raymarch/hal"

	"tinygo.org/x/tinyfont"
)

// guard turns a panic inside step into a logged crash screen and an error.
func guard(h hal.HAL, step func() error) func() error {
	return func() (err error) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			reportPanic(h, v, debug.Stack())
			err = fmt.Errorf("app: panic: %v", v)
		}()
		return step()
	}
}

func reportPanic(h hal.HAL, v any, stack []byte) {
	if l := h.Logger(); l != nil {
		l.WriteLineString(fmt.Sprintf("raymarch panic: %v", v))
		for _, line := range strings.Split(string(stack), "\n") {
			if line == "" {
				continue
			}
			l.WriteLineString(line)
		}
	}

	disp := h.Display()
	if disp == nil {
		return
	}
	fb := disp.Framebuffer()
	if fb == nil {
		return
	}

	fb.ClearRGB(255, 255, 255)

	lines := []string{
		"Raymarch panic:",
		fmt.Sprintf("%v", v),
	}
	for _, line := range strings.Split(string(stack), "\n") {
		if line == "" {
			continue
		}
		lines = append(lines, strings.TrimSpace(line))
	}

	d := &fbDisplay{fb: fb}
	lineH := int16(captionFont.GetYAdvance())
	_, outboxWidth := tinyfont.LineWidth(captionFont, "0")
	charW := int16(outboxWidth)
	if lineH <= 0 || charW <= 0 {
		_ = fb.Present()
		return
	}
	cols := int(int16(fb.Width()) / charW)
	if cols <= 0 {
		cols = 1
	}

	y := lineH
	for _, line := range lines {
		for len(line) > 0 {
			if int(y) > fb.Height() {
				_ = fb.Present()
				return
			}
			chunk, rest := takeRunes(line, cols)
			tinyfont.WriteLine(d, captionFont, 0, y, chunk, captionColor)
			y += lineH
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = fb.Present()
}

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= n {
		return s, ""
	}
	i, count := 0, 0
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	return s[:i], s[i:]
}
