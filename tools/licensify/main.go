// seehuhn.de/go/svg - parsing SVG attribute values
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Licensify adds the license header to all Go source files below a
// directory.
//
// Usage:
//
//	go run ./tools/licensify [dir]
//
// Files which already start with the header are left alone.  Files which
// start with something other than a package clause, for example a
// different copyright notice or a build constraint, are reported but not
// modified.
package main

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
)

const header = `// seehuhn.de/go/svg - parsing SVG attribute values
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

`

func main() {
	root := "."
	if len(os.Args) > 1 {
		root = os.Args[1]
	}
	err := licensify(root, os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
}

// licensify walks the tree below root and prepends the header where it is
// missing.  One line per updated or suspicious file is written to out.
func licensify(root string, out io.Writer) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && skipDir(d.Name()) {
				return fs.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") {
			return nil
		}

		body, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if bytes.HasPrefix(body, []byte(header)) {
			return nil
		}
		if !bytes.HasPrefix(body, []byte("package ")) {
			fmt.Fprintln(out, "ATTENTION "+path)
			return nil
		}

		fmt.Fprintln(out, "updating "+path)
		return prepend(path, body)
	})
}

// skipDir reports whether a directory is excluded from processing.
// This covers hidden directories, and directories which the go tool
// ignores (names starting with "_" and "testdata").
func skipDir(name string) bool {
	return strings.HasPrefix(name, ".") ||
		strings.HasPrefix(name, "_") ||
		name == "testdata"
}

func prepend(path string, body []byte) error {
	fd, err := os.Create(path)
	if err != nil {
		return err
	}
	_, err = fd.Write([]byte(header))
	if err != nil {
		fd.Close()
		return err
	}
	_, err = fd.Write(body)
	if err != nil {
		fd.Close()
		return err
	}
	return fd.Close()
}
