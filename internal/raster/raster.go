// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package raster loads source images and derives the resized and composited
// images used for icons.
//
// Every function returns a newly allocated [*image.NRGBA] and never modifies
// its input.
package raster

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/image/draw"

	// Register WebP decoder. imaging registers BMP and TIFF itself.
	_ "golang.org/x/image/webp"
)

// ErrFileAccess is returned when a source image can't be opened or decoded.
var ErrFileAccess = errors.New("file error")

// Filter is the resampling filter used for all resizing.
var Filter = imaging.Lanczos

// Load reads the image at path and returns it normalized by [Normalize].
func Load(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFileAccess, err)
	}
	defer f.Close()

	mtype, err := mimetype.DetectReader(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFileAccess, path, err)
	}
	if !strings.HasPrefix(mtype.String(), "image/") {
		return nil, fmt.Errorf("%w: %s: not an image (%s)", ErrFileAccess, path, mtype)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFileAccess, path, err)
	}

	img, err := imaging.Decode(f, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFileAccess, path, err)
	}
	return Normalize(img), nil
}

// Normalize returns a copy of img with straight RGBA pixels and bounds
// starting at the origin. Images without an alpha channel become fully
// opaque.
func Normalize(img image.Image) *image.NRGBA {
	return imaging.Clone(img)
}

// Canvas describes a transparent canvas and the inner area the source image
// is scaled to.
type Canvas struct {
	Width, Height           int
	InnerWidth, InnerHeight int
}

// DefaultCanvas is the canvas used when centring is requested.
var DefaultCanvas = Canvas{Width: 500, Height: 500, InnerWidth: 320, InnerHeight: 320}

// Validate reports whether c has positive dimensions and the inner area fits
// into the canvas.
func (c Canvas) Validate() error {
	if c.Width <= 0 || c.Height <= 0 || c.InnerWidth <= 0 || c.InnerHeight <= 0 {
		return fmt.Errorf("invalid canvas %dx%d with inner area %dx%d: dimensions must be positive", c.Width, c.Height, c.InnerWidth, c.InnerHeight)
	}
	if c.InnerWidth > c.Width || c.InnerHeight > c.Height {
		return fmt.Errorf("invalid canvas %dx%d: inner area %dx%d doesn't fit", c.Width, c.Height, c.InnerWidth, c.InnerHeight)
	}
	return nil
}

// Offset returns the top-left corner of the inner area. When the free space
// is odd the extra pixel goes to the bottom-right.
func (c Canvas) Offset() image.Point {
	return image.Pt((c.Width-c.InnerWidth)/2, (c.Height-c.InnerHeight)/2)
}

// Center scales img to the inner area of c and draws it over a fully
// transparent canvas.
func Center(img image.Image, c Canvas) (*image.NRGBA, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	inner := imaging.Resize(img, c.InnerWidth, c.InnerHeight, Filter)
	dst := image.NewNRGBA(image.Rect(0, 0, c.Width, c.Height))
	draw.Draw(dst, inner.Bounds().Add(c.Offset()), inner, image.Point{}, draw.Over)
	return dst, nil
}

// Resize returns img scaled to a size×size square.
func Resize(img image.Image, size int) (*image.NRGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid size %d: must be positive", size)
	}
	return imaging.Resize(img, size, size, Filter), nil
}

// Variant is a square rendition of an image.
type Variant struct {
	Size  int
	Image *image.NRGBA
}

// Variants renders one square variant of img per size, in the order of sizes.
func Variants(img image.Image, sizes []int) ([]Variant, error) {
	vs := make([]Variant, 0, len(sizes))
	for _, size := range sizes {
		resized, err := Resize(img, size)
		if err != nil {
			return nil, err
		}
		vs = append(vs, Variant{Size: size, Image: resized})
	}
	return vs, nil
}
