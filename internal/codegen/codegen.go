// Package codegen emits Go source files that embed built regexio patterns
// as compiled, anchored package-level variables.
package codegen

import (
	"fmt"
	"io"
	"unicode"

	"github.com/dave/jennifer/jen"

	"github.com/regexio/regexio/pkg/regexio"
)

// File accumulates named patterns and renders them into a single generated
// Go source file.
type File struct {
	pkg      string
	patterns []namedPattern
}

type namedPattern struct {
	name     string
	fragment string
}

// NewFile creates an empty file for the given package name.
func NewFile(pkg string) *File {
	return &File{pkg: pkg}
}

// Add builds the pattern and registers it under name. The name must be a
// valid Go identifier starting with a letter; it is exported in the
// generated code. Builder errors from the pattern propagate.
func (f *File) Add(name string, p *regexio.Pattern) error {
	if !validName(name) {
		return fmt.Errorf("invalid pattern name %q", name)
	}
	fragment, err := p.Build()
	if err != nil {
		return fmt.Errorf("build pattern %s: %w", name, err)
	}
	f.patterns = append(f.patterns, namedPattern{name: exportName(name), fragment: fragment})
	return nil
}

// Render writes the generated Go source to w.
func (f *File) Render(w io.Writer) error {
	return f.build().Render(w)
}

// Save writes the generated Go source to path.
func (f *File) Save(path string) error {
	return f.build().Save(path)
}

// build assembles the jennifer file. For every pattern N it emits the raw
// pattern string as NPattern, an anchored compiled regexp N (full-string
// match semantics, like Java's String.matches), and a NMatch helper.
func (f *File) build() *jen.File {
	file := jen.NewFile(f.pkg)
	file.HeaderComment("Code generated by regexio. DO NOT EDIT.")

	for _, np := range f.patterns {
		anchored := `\A(?:` + np.fragment + `)\z`

		file.Commentf("%sPattern is the source pattern for %s.", np.name, np.name)
		file.Const().Id(np.name + "Pattern").Op("=").Lit(np.fragment)
		file.Line()

		file.Commentf("%s is %sPattern compiled with both ends anchored.", np.name, np.name)
		file.Var().Id(np.name).Op("=").Qual("regexp", "MustCompile").Call(jen.Lit(anchored))
		file.Line()

		file.Commentf("%sMatch reports whether input matches %sPattern in full.", np.name, np.name)
		file.Func().Id(np.name + "Match").Params(jen.Id("input").String()).Bool().Block(
			jen.Return(jen.Id(np.name).Dot("MatchString").Call(jen.Id("input"))),
		)
		file.Line()
	}

	return file
}

// validName reports whether name can become a generated Go identifier.
func validName(name string) bool {
	for i, r := range name {
		if i == 0 && !unicode.IsLetter(r) {
			return false
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return name != ""
}

// exportName converts the first character of a name to uppercase so the
// generated identifiers are exported.
func exportName(name string) string {
	r := []rune(name)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
