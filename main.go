// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"go.astrophena.name/base/cli"

	"go.astrophena.name/webicons/internal/assets"
	"go.astrophena.name/webicons/internal/manifest"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	code := runMain(ctx, os.Stdout)
	cancel()
	os.Exit(code)
}

// runMain runs the app and reports a failure as a single line on stdout. Logs
// and flag usage still go to stderr.
func runMain(ctx context.Context, stdout io.Writer) int {
	err := cli.Run(ctx, new(app))
	switch {
	case err == nil, errors.Is(err, cli.ErrExitVersion):
		return 0
	case errors.Is(err, flag.ErrHelp):
		return 1
	}
	fmt.Fprintln(stdout, err)
	return 1
}

type app struct {
	name            string
	description     string
	lang            string
	themeColor      string
	backgroundColor string
	basePath        string
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.StringVar(&a.name, "name", manifest.DefaultName, "Manifest `name`.")
	fs.StringVar(&a.description, "description", manifest.DefaultDescription, "Manifest `description`.")
	fs.StringVar(&a.lang, "lang", manifest.DefaultLang, "Manifest `language` tag.")
	fs.StringVar(&a.themeColor, "theme-color", manifest.DefaultThemeColor, "Manifest theme `color`.")
	fs.StringVar(&a.backgroundColor, "background-color", manifest.DefaultBackgroundColor, "Manifest background `color`.")
	fs.StringVar(&a.basePath, "base-path", manifest.DefaultIconBasePath, "URL `path` manifest icons are served from.")
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)
	return a.run(ctx, env.Args, env.Stdout)
}

func (a *app) run(ctx context.Context, args []string, stdout io.Writer) error {
	inv, err := parseArgs(args)
	if err != nil {
		return err
	}

	src, err := filepath.Abs(inv.source)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", inv.source, err)
	}

	if _, err := assets.Generate(ctx, &assets.Config{
		Src:       src,
		Dst:       inv.project,
		ShortName: inv.project,
		NoCenter:  !inv.center,
		Manifest: manifest.Options{
			IconBasePath:    a.basePath,
			Name:            a.name,
			Description:     a.description,
			Lang:            a.lang,
			ThemeColor:      a.themeColor,
			BackgroundColor: a.backgroundColor,
		},
	}); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Icons and manifest.json saved to '%s/'.\n", inv.project)
	return nil
}

type invocation struct {
	source  string
	project string
	center  bool
}

func parseArgs(args []string) (*invocation, error) {
	if len(args) < 2 || len(args) > 3 {
		return nil, fmt.Errorf("%w: want source image, project folder and optional center flag, got %d arguments", cli.ErrInvalidArgs, len(args))
	}
	inv := &invocation{source: args[0], project: args[1], center: true}
	if len(args) == 3 {
		center, err := parseBool("center", args[2])
		if err != nil {
			return nil, err
		}
		inv.center = center
	}
	return inv, nil
}

func parseBool(name, value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, fmt.Errorf("%w: %q must be \"true\" or \"false\", got %q", cli.ErrInvalidArgs, name, value)
}
