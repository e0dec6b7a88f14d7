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


// Package gen implements adhocgen: it turns //adhocerr:literal directives
// into literal tag types for adhocerr.Err and adhocerr.Wrap.
//
// A directive names the tag type and gives the message, which runs to the
// end of the line:
//
//	//adhocerr:literal errNoGitRoot unable to find .git/ in parent directories
//
// and is rendered as
//
//	type errNoGitRoot struct{}
//
//	func (errNoGitRoot) Text() string { return "unable to find .git/ in parent directories" }
package gen

import (
	"context"
	"go/build"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/dirpx/adhocerr"
)

// Directive is the comment prefix recognized by Scan.
const Directive = "//adhocerr:literal"

// Literal is one parsed directive.
type Literal struct {
	Name string
	Text string
	Pos  token.Position
}

// Package is the result of scanning one package directory.
type Package struct {
	Name     string
	Literals []Literal
}

//go:generate go run github.com/dirpx/adhocerr/cmd/adhocgen

//adhocerr:literal errNoGoFiles no Go source files found
//adhocerr:literal errMissingName directive has no type name
//adhocerr:literal errMissingText directive has no message text
//adhocerr:literal errBlankName tag type can not be named _
//adhocerr:literal errInvalidUTF8 message text is not valid UTF-8

// fileResult is what one worker extracts from one file.
type fileResult struct {
	pkg      string
	pkgPos   token.Position
	literals []Literal
	problems []error
}

// Scan parses the non-test Go files of dir that match the default build
// context, skipping the file named skip (the generator's own output), and
// returns its package name with every directive found, sorted by type name.
// Files excluded by build constraints, such as //go:build ignore helpers,
// are not scanned.
//
// Files are parsed concurrently. Every problem found, syntax errors
// included, is reported at once in a single boxed error. Only failures to
// list the directory and cancellation of ctx end the scan early.
func Scan(ctx context.Context, dir, skip string) (*Package, error) {
	files, err := goFiles(dir, skip)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, adhocerr.Wrapf("%s", dir)(adhocerr.Err[errNoGoFiles]())
	}

	fset := token.NewFileSet()
	results := make([]fileResult, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = scanFile(fset, path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return merge(results)
}

// goFiles lists the candidate files of dir in lexical order.
// build.Default.MatchFile applies build constraints and file name rules.
func goFiles(dir, skip string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, adhocerr.Wrapf("reading package directory %s", dir)(err)
	}

	var files []string
	for _, e := range entries {
		name := e.Name()
		switch {
		case e.IsDir(),
			!strings.HasSuffix(name, ".go"),
			strings.HasSuffix(name, "_test.go"),
			name == skip:
			continue
		}
		match, err := build.Default.MatchFile(dir, name)
		if err != nil {
			return nil, adhocerr.Wrapf("reading build constraints of %s", name)(err)
		}
		if match {
			files = append(files, filepath.Join(dir, name))
		}
	}
	return files, nil
}

// scanFile records a syntax error as a problem of the file with no package
// name, so that merge reports it alongside every other problem.
func scanFile(fset *token.FileSet, path string) fileResult {
	f, err := parser.ParseFile(fset, path, nil, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		return fileResult{problems: []error{adhocerr.Wrapf("parsing %s", path)(err)}}
	}

	res := fileResult{
		pkg:    f.Name.Name,
		pkgPos: fset.Position(f.Package),
	}
	for _, group := range f.Comments {
		for _, c := range group.List {
			lit, ok, err := parseDirective(c.Text, fset.Position(c.Slash))
			if err != nil {
				res.problems = append(res.problems, err)
				continue
			}
			if ok {
				res.literals = append(res.literals, lit)
			}
		}
	}
	return res
}

// parseDirective parses one comment. ok is false for comments that are not
// directives at all.
func parseDirective(text string, pos token.Position) (lit Literal, ok bool, err error) {
	rest, found := strings.CutPrefix(text, Directive)
	if !found {
		return Literal{}, false, nil
	}
	// "//adhocerr:literalX" is another directive, not ours.
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return Literal{}, false, nil
	}

	name, msg := strings.TrimSpace(rest), ""
	if i := strings.IndexFunc(name, unicode.IsSpace); i >= 0 {
		name, msg = name[:i], strings.TrimSpace(name[i:])
	}

	at := adhocerr.Wrapf("%s", pos)
	switch {
	case name == "":
		return Literal{}, true, at(adhocerr.Err[errMissingName]())
	case name == "_":
		return Literal{}, true, at(adhocerr.Err[errBlankName]())
	case !token.IsIdentifier(name):
		return Literal{}, true, at(adhocerr.Errorf("%q is not a valid Go identifier", name))
	case msg == "":
		return Literal{}, true, at(adhocerr.Err[errMissingText]())
	case !utf8.ValidString(msg):
		return Literal{}, true, at(adhocerr.Err[errInvalidUTF8]())
	}
	return Literal{Name: name, Text: msg, Pos: pos}, true, nil
}

// merge combines per-file results, checking that all files agree on the
// package name and that no tag is declared twice.
func merge(results []fileResult) (*Package, error) {
	col := adhocerr.NewCollector()
	pkg := &Package{}
	for _, res := range results {
		if res.pkg != "" {
			pkg.Name = res.pkg
			break
		}
	}

	seen := make(map[string]Literal)
	for _, res := range results {
		if res.pkg != "" && res.pkg != pkg.Name {
			col.Append(adhocerr.Errorf("%s: package %s, expected %s", res.pkgPos, res.pkg, pkg.Name))
		}
		for _, p := range res.problems {
			col.Append(p)
		}
		for _, lit := range res.literals {
			if prev, dup := seen[lit.Name]; dup {
				col.Append(adhocerr.Errorf("%s: tag %s already declared at %s", lit.Pos, lit.Name, prev.Pos))
				continue
			}
			seen[lit.Name] = lit
			pkg.Literals = append(pkg.Literals, lit)
		}
	}
	if err := col.Err(); err != nil {
		return nil, err
	}

	slices.SortFunc(pkg.Literals, func(a, b Literal) int {
		return strings.Compare(a.Name, b.Name)
	})
	return pkg, nil
}
