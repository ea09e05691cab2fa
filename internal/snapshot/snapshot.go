// Package snapshot writes rendered frames to image files.
package snapshot

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// ErrUnsupportedFormat is returned for file extensions other than .png and .bmp.
var ErrUnsupportedFormat = errors.New("snapshot: unsupported format")

// Format is an output encoding.
type Format uint8

const (
	FormatPNG Format = iota + 1
	FormatBMP
)

// FormatFor picks the encoding from the file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".bmp":
		return FormatBMP, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Encode writes img to w.
func Encode(w io.Writer, f Format, img image.Image) error {
	switch f {
	case FormatPNG:
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("snapshot: encode PNG: %w", err)
		}
	case FormatBMP:
		if err := bmp.Encode(w, img); err != nil {
			return fmt.Errorf("snapshot: encode BMP: %w", err)
		}
	default:
		return ErrUnsupportedFormat
	}
	return nil
}

// Save writes img to path, choosing the format from the extension.
func Save(path string, img image.Image) error {
	f, err := FormatFor(path)
	if err != nil {
		return err
	}
	out, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("snapshot: create file: %w", err)
	}
	if err := Encode(out, f, img); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
