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
	"bytes"
	"go/format"
	"text/template"

	"github.com/dirpx/adhocerr"
)

// Header starts every generated file. It follows the convention recognized
// by go vet and most editors.
const Header = "// Code generated by adhocgen. DO NOT EDIT.\n"

// ImportPath is the import path of the adhocerr package referenced by the
// generated code.
const ImportPath = "github.com/dirpx/adhocerr"

var fileTemplate = template.Must(template.New("literals").Parse(Header + `
package {{.Name}}

import "` + ImportPath + `"
{{range .Literals}}
// {{.Name}} tags the call site failing with {{printf "%q" .Text}}.
type {{.Name}} struct{}

func ({{.Name}}) Text() string { return {{printf "%q" .Text}} }

var _ = adhocerr.Err[{{.Name}}]
{{end}}`))

//adhocerr:literal errRender generated source is not valid Go

// Render returns the gofmt-formatted source declaring the tag types of pkg.
func Render(pkg *Package) ([]byte, error) {
	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, pkg); err != nil {
		return nil, adhocerr.Wrapf("rendering package %s", pkg.Name)(err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, adhocerr.Wrap[errRender]()(err)
	}
	return src, nil
}
