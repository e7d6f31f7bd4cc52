// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Package manifest builds web application manifests that reference an icon set.

A manifest lists every icon twice, once for each [Purpose]:

	{
	    "src": "/assets/media/img/manifest/icon-32x32.png",
	    "sizes": "32x32",
	    "type": "image/png",
	    "purpose": "any"
	}

Icon sources point to where the icons are deployed, not to where they were
generated.
*/
package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// Purpose is the intended use of an icon.
type Purpose string

// Available purposes.
const (
	Any      = Purpose("any")
	Maskable = Purpose("maskable")
)

// Purposes returns all purposes in the order icons are listed.
func Purposes() []Purpose { return []Purpose{Any, Maskable} }

// Prefix returns the file name prefix for icons with purpose p.
func (p Purpose) Prefix() string {
	switch p {
	case Maskable:
		return "maskable-icon"
	default:
		return "icon"
	}
}

// Filename returns the file name of a size×size icon with purpose p.
func (p Purpose) Filename(size int) string {
	return fmt.Sprintf("%s-%s.png", p.Prefix(), Sizes(size))
}

// Sizes formats a square size as it appears in the "sizes" icon member.
func Sizes(size int) string {
	return fmt.Sprintf("%dx%d", size, size)
}

// Icon is a single entry of the manifest "icons" member.
type Icon struct {
	Src     string  `json:"src"`
	Sizes   string  `json:"sizes"`
	Type    string  `json:"type"`
	Purpose Purpose `json:"purpose"`
}

// Document is a web application manifest. Fields are serialized in
// declaration order.
type Document struct {
	Name            string   `json:"name"`
	ShortName       string   `json:"short_name"`
	Description     string   `json:"description"`
	Lang            string   `json:"lang"`
	Dir             string   `json:"dir"`
	StartURL        string   `json:"start_url"`
	Scope           string   `json:"scope"`
	Display         string   `json:"display"`
	Orientation     string   `json:"orientation"`
	ThemeColor      string   `json:"theme_color"`
	BackgroundColor string   `json:"background_color"`
	Icons           []Icon   `json:"icons"`
	Categories      []string `json:"categories"`
}

// Default values of manifest members.
const (
	DefaultName            = "Nom complet de l'application"
	DefaultDescription     = "Description de l'application."
	DefaultLang            = "fr-FR"
	DefaultDir             = "ltr"
	DefaultStartURL        = "/"
	DefaultScope           = "/"
	DefaultDisplay         = "standalone"
	DefaultOrientation     = "portrait-primary"
	DefaultThemeColor      = "#ffffff"
	DefaultBackgroundColor = "#ffffff"
	DefaultIconBasePath    = "/assets/media/img/manifest"
)

// Options control how a manifest is built. Empty text fields are replaced with
// the corresponding defaults.
type Options struct {
	// Sizes are icon edge lengths, in the order they are listed.
	Sizes []int
	// Purposes are listed for each size. If nil, Purposes() is used.
	Purposes []Purpose
	// ShortName is the "short_name" member. It's used as is.
	ShortName string
	// IconBasePath is the URL path icons are deployed under.
	IconBasePath string

	Name            string
	Description     string
	Lang            string
	ThemeColor      string
	BackgroundColor string
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// Build returns the manifest described by o.
func Build(o Options) *Document {
	purposes := o.Purposes
	if purposes == nil {
		purposes = Purposes()
	}
	base := strings.TrimSuffix(orDefault(o.IconBasePath, DefaultIconBasePath), "/")

	icons := make([]Icon, 0, len(o.Sizes)*len(purposes))
	for _, size := range o.Sizes {
		for _, p := range purposes {
			icons = append(icons, Icon{
				Src:     base + "/" + p.Filename(size),
				Sizes:   Sizes(size),
				Type:    "image/png",
				Purpose: p,
			})
		}
	}

	return &Document{
		Name:            orDefault(o.Name, DefaultName),
		ShortName:       o.ShortName,
		Description:     orDefault(o.Description, DefaultDescription),
		Lang:            orDefault(o.Lang, DefaultLang),
		Dir:             DefaultDir,
		StartURL:        DefaultStartURL,
		Scope:           DefaultScope,
		Display:         DefaultDisplay,
		Orientation:     DefaultOrientation,
		ThemeColor:      orDefault(o.ThemeColor, DefaultThemeColor),
		BackgroundColor: orDefault(o.BackgroundColor, DefaultBackgroundColor),
		Icons:           icons,
		Categories:      []string{},
	}
}

// Encode writes d to w as indented JSON. Non-ASCII and HTML-sensitive
// characters are written as is.
func (d *Document) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	return enc.Encode(d)
}

// Write encodes d and writes it to the file at path, replacing any existing
// file.
func Write(path string, d *Document) error {
	var buf bytes.Buffer
	if err := d.Encode(&buf); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// Read parses the manifest file at path.
func Read(path string) (*Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	d := new(Document)
	if err := json.Unmarshal(b, d); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}
