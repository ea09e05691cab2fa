package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Width  int // framebuffer size; 0 selects ScreenWidth×ScreenHeight
	Height int
	Scale  int
	TPS    int
}

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	kbd    *hostKeyboard
}

// New returns a host HAL with a ScreenWidth×ScreenHeight framebuffer logging to stdout.
func New() HAL {
	return NewSized(ScreenWidth, ScreenHeight, os.Stdout)
}

// NewSized returns a host HAL with a custom framebuffer size and log writer.
func NewSized(width, height int, logw io.Writer) HAL {
	return newHost(width, height, logw)
}

func newHost(width, height int, logw io.Writer) *hostHAL {
	if logw == nil {
		logw = io.Discard
	}
	return &hostHAL{
		logger: &hostLogger{w: logw},
		fb:     newHostFramebuffer(width, height),
		kbd:    newHostKeyboard(),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd} }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
