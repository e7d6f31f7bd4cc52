// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"bytes"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

const copyrightHeader = `// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.
`

// TestCopyright checks that every Go source file starts with the license
// header.
func TestCopyright(t *testing.T) {
	var missing []string
	err := filepath.WalkDir(".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if name := d.Name(); path != "." && (strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".") || name == "testdata") {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" {
			return nil
		}
		b, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if !bytes.HasPrefix(b, []byte(copyrightHeader)) {
			missing = append(missing, path)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(missing) > 0 {
		t.Fatalf("add the license header to these files:\n\t%s", strings.Join(missing, "\n\t"))
	}
}

func TestGofmt(t *testing.T) {
	var w bytes.Buffer
	run(t, &w, "gofmt", "-d", ".")
	if diff := w.String(); diff != "" {
		t.Fatalf("run gofmt on these files:\n\t%v", diff)
	}
}

func TestStaticcheck(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping staticcheck in short mode")
	}
	var w bytes.Buffer
	run(t, &w, "go", "tool", "staticcheck", "./...")
}

func run(t *testing.T, buf *bytes.Buffer, cmd string, args ...string) {
	t.Helper()
	buf.Reset()
	c := exec.Command(cmd, args...)
	c.Stdout = buf
	c.Stderr = buf
	if err := c.Run(); err != nil {
		t.Fatalf("%s failed: %v:\n%v", cmd, err, buf.String())
	}
}
