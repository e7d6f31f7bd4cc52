// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package favicon encodes multi-resolution ICO files.
package favicon

import (
	"errors"
	"fmt"
	"image"
	"io"

	ico "github.com/sergeymakinen/go-ico"
)

// Sizes are the frame sizes of a favicon, smallest first.
func Sizes() []int { return []int{32, 48, 64, 128, 256} }

// MaxSize is the largest frame size an ICO file can hold.
const MaxSize = 256

// CheckSizes reports whether every size can be stored as a frame.
func CheckSizes(sizes []int) error {
	if len(sizes) == 0 {
		return errors.New("favicon: no frames")
	}
	for _, size := range sizes {
		if size <= 0 || size > MaxSize {
			return fmt.Errorf("favicon: unsupported frame size %d, must be between 1 and %d", size, MaxSize)
		}
	}
	return nil
}

// Encode writes frames to w as an ICO file. Frames must be square and at
// most [MaxSize] pixels wide.
func Encode(w io.Writer, frames []image.Image) error {
	sizes := make([]int, 0, len(frames))
	for i, frame := range frames {
		size := frame.Bounds().Size()
		if size.X != size.Y {
			return fmt.Errorf("favicon: frame %d is not square (%dx%d)", i, size.X, size.Y)
		}
		sizes = append(sizes, size.X)
	}
	if err := CheckSizes(sizes); err != nil {
		return err
	}
	return ico.EncodeAll(w, frames)
}
