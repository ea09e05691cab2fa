package raymarch

import "fmt"

// Hardware ceiling of the target display.
const (
	MaxWidth  = 320
	MaxHeight = 222
)

const (
	DefaultWidth     = 100
	DefaultHeight    = 100
	DefaultMaxIter   = 35
	DefaultBoundary  = 20
	DefaultThreshold = 0.01

	// Compact marching parameters: fewer steps and a short escape distance.
	CompactMaxIter  = 20
	CompactBoundary = 3
)

// Config holds the raster size and the marching limits.
type Config struct {
	Width  int
	Height int

	MaxIter   int
	Boundary  float64 // rays that travel this far are misses
	Threshold float64 // SDF value that counts as a hit
}

// DefaultConfig returns the reference parameters.
func DefaultConfig() Config {
	return Config{
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		MaxIter:   DefaultMaxIter,
		Boundary:  DefaultBoundary,
		Threshold: DefaultThreshold,
	}
}

// CompactConfig is DefaultConfig with the compact marching parameters.
//
// With a boundary this short, most shadow rays stop before reaching the light,
// so nearly every surface renders as shadowed.
func CompactConfig() Config {
	c := DefaultConfig()
	c.MaxIter = CompactMaxIter
	c.Boundary = CompactBoundary
	return c
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("raymarch: invalid resolution %dx%d", c.Width, c.Height)
	case c.Width > MaxWidth || c.Height > MaxHeight:
		return fmt.Errorf("raymarch: resolution %dx%d exceeds %dx%d", c.Width, c.Height, MaxWidth, MaxHeight)
	case c.MaxIter <= 0:
		return fmt.Errorf("raymarch: invalid max iterations %d", c.MaxIter)
	case !(c.Boundary > 0):
		return fmt.Errorf("raymarch: invalid marching boundary %g", c.Boundary)
	case !(c.Threshold > 0):
		return fmt.Errorf("raymarch: invalid detection threshold %g", c.Threshold)
	}
	return nil
}
