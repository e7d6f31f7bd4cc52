// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Package assets generates web and app icon assets from a single image.

# Directory Structure

Generate writes the following files into the destination directory:

	manifest/       Manifest icons: icon-<S>x<S>.png and
	                maskable-icon-<S>x<S>.png for every size.
	manifest.json   Web application manifest referencing the icons above.
	logo.png        Square logo.
	favicon.ico     Multi-resolution favicon.

Manifest icons are rendered from the source centred on a transparent canvas,
unless centring is turned off. The logo and favicon are always rendered from
the source as is.

Files written before a failure are left in place.
*/
package assets

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"

	"go.astrophena.name/base/logger"

	"github.com/disintegration/imaging"
	"go.astrophena.name/webicons/internal/favicon"
	"go.astrophena.name/webicons/internal/manifest"
	"go.astrophena.name/webicons/internal/raster"
)

// ErrIO is returned when output directories or files can't be written.
var ErrIO = errors.New("I/O error")

// Config represents a generation configuration.
type Config struct {
	// Src is the path to the source image. Required.
	Src string
	// Dst is the directory where to write files. If empty, uses the
	// current directory.
	Dst string
	// ShortName is the manifest short name. If empty, uses the base name
	// of Dst.
	ShortName string
	// NoCenter determines if manifest icons should be rendered from the
	// source as is, without placing it on a canvas first.
	NoCenter bool
	// Canvas is the canvas for centring. If zero, uses raster.DefaultCanvas.
	Canvas raster.Canvas
	// Sizes are manifest icon sizes, in manifest order.
	Sizes []int
	// Purposes are manifest icon purposes. If nil, uses manifest.Purposes().
	Purposes []manifest.Purpose
	// LogoSize is the edge length of logo.png.
	LogoSize int
	// FaviconSizes are the frame sizes of favicon.ico.
	FaviconSizes []int
	// Manifest holds manifest text fields. Sizes, Purposes and ShortName
	// are filled from this Config.
	Manifest manifest.Options
}

// DefaultSizes returns the default manifest icon sizes.
func DefaultSizes() []int { return []int{32, 48, 72, 128, 180, 192, 256, 384, 512} }

// DefaultLogoSize is the default edge length of logo.png.
const DefaultLogoSize = 192

const pngCompression = png.BestCompression

func (c *Config) setDefaults() {
	if c.Dst == "" {
		c.Dst = "."
	}
	if c.ShortName == "" {
		c.ShortName = filepath.Base(filepath.Clean(c.Dst))
	}
	if c.Canvas == (raster.Canvas{}) {
		c.Canvas = raster.DefaultCanvas
	}
	if len(c.Sizes) == 0 {
		c.Sizes = DefaultSizes()
	}
	if c.Purposes == nil {
		c.Purposes = manifest.Purposes()
	}
	if c.LogoSize == 0 {
		c.LogoSize = DefaultLogoSize
	}
	if len(c.FaviconSizes) == 0 {
		c.FaviconSizes = favicon.Sizes()
	}
}

// Result lists files written by [Generate].
type Result struct {
	Icons    []string
	Manifest string
	Logo     string
	Favicon  string
}

// Files returns all written files.
func (r *Result) Files() []string {
	files := append([]string(nil), r.Icons...)
	return append(files, r.Manifest, r.Logo, r.Favicon)
}

// Generate generates assets based on the provided [Config].
func Generate(ctx context.Context, c *Config) (*Result, error) {
	c.setDefaults()

	// Check the source before touching the destination, so that nothing is
	// created for a bad source.
	fi, err := os.Stat(c.Src)
	if err != nil {
		return nil, fmt.Errorf("%w: %s not found", raster.ErrFileAccess, c.Src)
	}
	if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s is not a regular file", raster.ErrFileAccess, c.Src)
	}
	original, err := raster.Load(c.Src)
	if err != nil {
		return nil, err
	}
	logger.Info(ctx, "loaded source image",
		slog.String("path", c.Src),
		slog.Int("width", original.Bounds().Dx()),
		slog.Int("height", original.Bounds().Dy()),
	)

	if err := mkdir(c.Dst); err != nil {
		return nil, err
	}

	var base image.Image = original
	if !c.NoCenter {
		base, err = raster.Center(original, c.Canvas)
		if err != nil {
			return nil, err
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	variants, err := raster.Variants(base, c.Sizes)
	if err != nil {
		return nil, err
	}
	res := new(Result)
	res.Icons, err = WriteIconSet(filepath.Join(c.Dst, "manifest"), variants, c.Purposes)
	if err != nil {
		return nil, err
	}
	logger.Info(ctx, "wrote manifest icons", slog.Int("count", len(res.Icons)), slog.Bool("centered", !c.NoCenter))

	mo := c.Manifest
	mo.Sizes, mo.Purposes, mo.ShortName = c.Sizes, c.Purposes, c.ShortName
	res.Manifest = filepath.Join(c.Dst, "manifest.json")
	if err := manifest.Write(res.Manifest, manifest.Build(mo)); err != nil {
		return nil, ioError("writing manifest", err)
	}
	logger.Info(ctx, "wrote manifest", slog.String("path", res.Manifest))

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	res.Logo = filepath.Join(c.Dst, "logo.png")
	if err := WriteLogo(res.Logo, original, c.LogoSize); err != nil {
		return nil, err
	}
	res.Favicon = filepath.Join(c.Dst, "favicon.ico")
	if err := WriteFavicon(res.Favicon, original, c.FaviconSizes); err != nil {
		return nil, err
	}
	logger.Info(ctx, "wrote logo and favicon", slog.String("logo", res.Logo), slog.String("favicon", res.Favicon))

	return res, nil
}

// WriteIconSet writes every variant once per purpose into dir, creating dir
// if needed. It returns written files in manifest order.
func WriteIconSet(dir string, variants []raster.Variant, purposes []manifest.Purpose) ([]string, error) {
	if err := mkdir(dir); err != nil {
		return nil, err
	}
	written := make([]string, 0, len(variants)*len(purposes))
	for _, v := range variants {
		for _, p := range purposes {
			path := filepath.Join(dir, p.Filename(v.Size))
			if err := savePNG(path, v.Image); err != nil {
				return written, err
			}
			written = append(written, path)
		}
	}
	return written, nil
}

// WriteLogo writes img resized to a size×size square as PNG.
func WriteLogo(path string, img image.Image, size int) error {
	logo, err := raster.Resize(img, size)
	if err != nil {
		return err
	}
	return savePNG(path, logo)
}

// WriteFavicon writes img as an ICO file with a frame for each of sizes. Each
// frame is resized from img separately. Invalid sizes are rejected before
// anything is written.
func WriteFavicon(path string, img image.Image, sizes []int) error {
	if err := favicon.CheckSizes(sizes); err != nil {
		return err
	}
	frames := make([]image.Image, 0, len(sizes))
	for _, size := range sizes {
		frame, err := raster.Resize(img, size)
		if err != nil {
			return err
		}
		frames = append(frames, frame)
	}

	f, err := os.Create(path)
	if err != nil {
		return ioError("creating favicon", err)
	}
	defer f.Close()
	if err := favicon.Encode(f, frames); err != nil {
		return ioError("writing favicon", err)
	}
	if err := f.Close(); err != nil {
		return ioError("writing favicon", err)
	}
	return nil
}

func savePNG(path string, img image.Image) error {
	if err := imaging.Save(img, path, imaging.PNGCompressionLevel(pngCompression)); err != nil {
		return ioError("writing PNG", err)
	}
	return nil
}

func mkdir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return ioError("creating directory", err)
	}
	return nil
}

func ioError(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrIO, op, err)
}
