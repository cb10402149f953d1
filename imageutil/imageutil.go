// Package imageutil sizes chart rasters for placement in a report.
//
// The layout engine itself never decodes images; callers use this package
// to turn a rendered chart file into the width and height an Image block
// needs. PNG, JPEG, and GIF are supported out of the box, plus BMP, TIFF,
// and WebP via golang.org/x/image.
package imageutil

import (
	"fmt"
	"image"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Info describes a raster file's pixel dimensions and encoded format.
type Info struct {
	Width  int
	Height int
	Format string // "png", "jpeg", "gif", "bmp", "tiff", "webp"
}

// Probe reads just enough of the named file to report its dimensions and
// format. The pixel data is not decoded.
func Probe(path string) (Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("imageutil: %w", err)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return Info{}, fmt.Errorf("imageutil: probing %s: %w", path, err)
	}
	return Info{Width: cfg.Width, Height: cfg.Height, Format: format}, nil
}

// FitWidth returns the height, in the same unit as targetWidth, that keeps
// the raster's aspect ratio when drawn targetWidth wide.
func (i Info) FitWidth(targetWidth float64) float64 {
	if i.Width <= 0 {
		return 0
	}
	return targetWidth * float64(i.Height) / float64(i.Width)
}

// FitWidth probes the named file and returns an aspect-preserving
// (width, height) pair for the given target width in points.
func FitWidth(path string, targetWidth float64) (w, h float64, err error) {
	info, err := Probe(path)
	if err != nil {
		return 0, 0, err
	}
	return targetWidth, info.FitWidth(targetWidth), nil
}
