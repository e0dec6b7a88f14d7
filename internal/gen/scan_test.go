/*
	Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package gen

import (
	"context"
	"errors"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dirpx/adhocerr"
)

// writePackage creates dir/name files with the given contents.
func writePackage(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, src := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(src), 0o644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	return dir
}

func testPos() token.Position {
	return token.Position{Filename: "x.go", Line: 3, Column: 1}
}

// chains renders every member of an aggregated error with its causes.
func chains(err error) []string {
	var out []string
	for _, e := range adhocerr.Errors(err) {
		out = append(out, adhocerr.ChainString(e))
	}
	return out
}

func TestParseDirective(t *testing.T) {
	t.Parallel()

	pos := testPos()

	tests := []struct {
		name     string
		text     string
		wantOK   bool
		wantLit  Literal
		wantErr  string
		wantKind error
	}{
		{name: "plain comment", text: "// just a comment"},
		{name: "other directive", text: "//adhocerr:literals errX text"},
		{
			name:    "valid",
			text:    "//adhocerr:literal errNoRoot Unable to find root marker",
			wantOK:  true,
			wantLit: Literal{Name: "errNoRoot", Text: "Unable to find root marker", Pos: pos},
		},
		{
			name:    "extra spacing",
			text:    "//adhocerr:literal   errNoRoot    spaced   text  ",
			wantOK:  true,
			wantLit: Literal{Name: "errNoRoot", Text: "spaced   text", Pos: pos},
		},
		{
			name:    "tab separated",
			text:    "//adhocerr:literal\terrNoRoot\ttabbed text",
			wantOK:  true,
			wantLit: Literal{Name: "errNoRoot", Text: "tabbed text", Pos: pos},
		},
		{
			name:     "missing name",
			text:     "//adhocerr:literal",
			wantOK:   true,
			wantErr:  "x.go:3:1: directive has no type name",
			wantKind: adhocerr.Err[errMissingName](),
		},
		{
			name:     "missing text",
			text:     "//adhocerr:literal errNoRoot",
			wantOK:   true,
			wantErr:  "x.go:3:1: directive has no message text",
			wantKind: adhocerr.Err[errMissingText](),
		},
		{
			name:     "blank name",
			text:     "//adhocerr:literal _ text",
			wantOK:   true,
			wantErr:  "x.go:3:1: tag type can not be named _",
			wantKind: adhocerr.Err[errBlankName](),
		},
		{
			name:    "invalid identifier",
			text:    "//adhocerr:literal 9lives text",
			wantOK:  true,
			wantErr: `x.go:3:1: "9lives" is not a valid Go identifier`,
		},
		{
			name:     "invalid utf8",
			text:     "//adhocerr:literal errBad \xff\xfe",
			wantOK:   true,
			wantErr:  "x.go:3:1: message text is not valid UTF-8",
			wantKind: adhocerr.Err[errInvalidUTF8](),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			lit, ok, err := parseDirective(tt.text, pos)
			if ok != tt.wantOK {
				t.Fatalf("ok=%v want=%v", ok, tt.wantOK)
			}
			if tt.wantErr != "" {
				if got := adhocerr.ChainString(err); got != tt.wantErr {
					t.Fatalf("err=%q want=%q", got, tt.wantErr)
				}
				if tt.wantKind != nil && !errors.Is(err, tt.wantKind) {
					t.Fatalf("err must wrap %T", tt.wantKind)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			if lit != tt.wantLit {
				t.Fatalf("lit=%+v want=%+v", lit, tt.wantLit)
			}
		})
	}
}

func TestScan_CollectsAndSorts(t *testing.T) {
	t.Parallel()

	dir := writePackage(t, map[string]string{
		"a.go":                 "package store\n\n//adhocerr:literal errZeta last one\n//adhocerr:literal errAlpha first one\n",
		"b.go":                 "package store\n\nfunc f() {\n\t//adhocerr:literal errMid inside a function\n}\n",
		"a_test.go":            "package store\n\n//adhocerr:literal errFromTest ignored\n",
		"adhocerr_literals.go": "// Code generated by adhocgen. DO NOT EDIT.\n\npackage store\n\n//adhocerr:literal errOld ignored\n",
	})

	pkg, err := Scan(context.Background(), dir, "adhocerr_literals.go")
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	if pkg.Name != "store" {
		t.Fatalf("Name=%q want store", pkg.Name)
	}
	var names []string
	for _, lit := range pkg.Literals {
		names = append(names, lit.Name)
	}
	if got, want := strings.Join(names, ","), "errAlpha,errMid,errZeta"; got != want {
		t.Fatalf("literals=%s want=%s", got, want)
	}
	if pkg.Literals[1].Text != "inside a function" {
		t.Fatalf("Text=%q", pkg.Literals[1].Text)
	}
}

func TestScan_ReportsEveryProblem(t *testing.T) {
	t.Parallel()

	dir := writePackage(t, map[string]string{
		"a.go": "package store\n\n//adhocerr:literal errDup first\n//adhocerr:literal errEmpty\n",
		"b.go": "package store\n\n//adhocerr:literal errDup second\n",
		"c.go": "package other\n",
	})

	_, err := Scan(context.Background(), dir, "")
	if err == nil {
		t.Fatalf("Scan must fail")
	}

	got := strings.Join(chains(err), "\n")
	for _, want := range []string{
		"a.go:4:1: directive has no message text",
		"b.go:3:1: tag errDup already declared at ",
		"c.go:1:1: package other, expected store",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("errors must contain %q, got:\n%s", want, got)
		}
	}
	if n := len(adhocerr.Errors(err)); n != 3 {
		t.Fatalf("got %d errors, want 3:\n%s", n, got)
	}
}

func TestScan_NoGoFiles(t *testing.T) {
	t.Parallel()

	dir := writePackage(t, map[string]string{"README.md": "# nothing"})

	_, err := Scan(context.Background(), dir, "")
	if !errors.Is(err, adhocerr.Err[errNoGoFiles]()) {
		t.Fatalf("err=%v want no-Go-files error", err)
	}
}

func TestScan_SyntaxError(t *testing.T) {
	t.Parallel()

	dir := writePackage(t, map[string]string{"a.go": "package store\n\nfunc {\n"})

	_, err := Scan(context.Background(), dir, "")
	if err == nil || !strings.HasPrefix(err.Error(), "parsing ") {
		t.Fatalf("err=%v want parse error", err)
	}
	if adhocerr.Cause(err) == nil {
		t.Fatalf("parse error must carry the parser error as cause")
	}
}

func TestScan_ReportsEverySyntaxError(t *testing.T) {
	t.Parallel()

	dir := writePackage(t, map[string]string{
		"a.go": "package store\n\nfunc {\n",
		"b.go": "package store\n\nvar = 1\n",
		"c.go": "package store\n\n//adhocerr:literal errEmpty\n",
	})

	_, err := Scan(context.Background(), dir, "")
	if err == nil {
		t.Fatalf("Scan must fail")
	}

	got := chains(err)
	if len(got) != 3 {
		t.Fatalf("got %d errors, want 3:\n%s", len(got), strings.Join(got, "\n"))
	}
	for i, prefix := range []string{"parsing " + filepath.Join(dir, "a.go"), "parsing " + filepath.Join(dir, "b.go")} {
		if !strings.HasPrefix(got[i], prefix) {
			t.Errorf("error %d=%q want prefix %q", i, got[i], prefix)
		}
	}
	if !strings.Contains(got[2], "directive has no message text") {
		t.Errorf("error 2=%q want the directive problem", got[2])
	}
}

func TestScan_HonorsBuildConstraints(t *testing.T) {
	t.Parallel()

	dir := writePackage(t, map[string]string{
		"a.go":     "package store\n\n//adhocerr:literal errNoRoot Unable to find root marker\n",
		"gen.go":   "//go:build ignore\n\npackage main\n\n//adhocerr:literal errIgnored never generated\n",
		"tools.go": "//go:build tools\n\npackage tools\n",
	})

	pkg, err := Scan(context.Background(), dir, "")
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if pkg.Name != "store" {
		t.Fatalf("Name=%q want store", pkg.Name)
	}
	if len(pkg.Literals) != 1 || pkg.Literals[0].Name != "errNoRoot" {
		t.Fatalf("Literals=%+v want only errNoRoot", pkg.Literals)
	}
}

func TestScan_MissingDir(t *testing.T) {
	t.Parallel()

	_, err := Scan(context.Background(), filepath.Join(t.TempDir(), "nope"), "")
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err=%v want fs.ErrNotExist in chain", err)
	}
}

func TestScan_CanceledContext(t *testing.T) {
	t.Parallel()

	dir := writePackage(t, map[string]string{"a.go": "package store\n"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Scan(ctx, dir, "")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err=%v want context.Canceled", err)
	}
}
