// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Webicons generates web and app icons from a single image.

# Usage

	$ webicons [flags] <source> <project> [center]

Webicons reads the source image from the current directory and writes the
following files into the project directory, creating it if needed:

	manifest/       icon-<S>x<S>.png and maskable-icon-<S>x<S>.png for
	                sizes 32, 48, 72, 128, 180, 192, 256, 384 and 512.
	manifest.json   Web application manifest referencing the icons above.
	logo.png        192x192 logo.
	favicon.ico     Favicon with 32, 48, 64, 128 and 256 pixel frames.

The project name is also used as the manifest short name.

By default, manifest icons are rendered from the source scaled to 320x320
and centred on a transparent 500x500 canvas. Pass "false" as the center
argument to render them from the source as is.

Icons in manifest.json are referenced under /assets/media/img/manifest. Use
the -base-path flag to change that.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/base/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
