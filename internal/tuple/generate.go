//go:build ignore

package main

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"strings"
	"text/template"
)

var typeParams = []string{"A", "B", "C", "D", "E", "F"}

type arity struct {
	N      int
	Params []string
}

func (a arity) Decl() string {
	return strings.Join(a.Params, ", ") + " any"
}

func (a arity) Use() string {
	return strings.Join(a.Params, ", ")
}

func (a arity) Verbs() string {
	return strings.TrimSuffix(strings.Repeat("%v, ", a.N), ", ")
}

var tmpl = template.Must(template.New("tuple").Funcs(template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}).Parse(`// Code generated by generate.go. DO NOT EDIT.

package tuple

import (
	"fmt"

	"gopkg.kagelang.org/stdlib.go/internal/structural"
)
{{range .}}
// Tuple{{.N}} groups {{.N}} values.
type Tuple{{.N}}[{{.Decl}}] struct {
{{- range $i, $p := .Params}}
	v{{inc $i}} {{$p}}
{{- end}}
}

func New{{.N}}[{{.Decl}}]({{range $i, $p := .Params}}{{if $i}}, {{end}}v{{inc $i}} {{$p}}{{end}}) Tuple{{.N}}[{{.Use}}] {
	return Tuple{{.N}}[{{.Use}}]{ {{- range $i, $p := .Params}}{{if $i}}, {{end}}v{{inc $i}}: v{{inc $i}}{{end -}} }
}
{{$n := .N}}{{$use := .Use}}{{range $i, $p := .Params}}
func (self Tuple{{$n}}[{{$use}}]) V{{inc $i}}() {{$p}} {
	return self.v{{inc $i}}
}
{{end}}
func (self Tuple{{.N}}[{{.Use}}]) Unpack() ({{range $i, $p := .Params}}{{if $i}}, {{end}}{{$p}}{{end}}) {
	return {{range $i, $p := .Params}}{{if $i}}, {{end}}self.v{{inc $i}}{{end}}
}

func (self Tuple{{.N}}[{{.Use}}]) Equal(other Tuple{{.N}}[{{.Use}}]) bool {
{{- range $i, $p := .Params}}
	if !structural.Equal(self.v{{inc $i}}, other.v{{inc $i}}) {
		return false
	}
{{- end}}
	return true
}

func (self Tuple{{.N}}[{{.Use}}]) Hash() uint64 {
	h := structural.Hash(self.v1)
{{- range $i, $p := .Params}}{{if $i}}
	h = structural.Combine(h, structural.Hash(self.v{{inc $i}}))
{{- end}}{{end}}
	return h
}

func (self Tuple{{.N}}[{{.Use}}]) String() string {
	return fmt.Sprintf("({{.Verbs}})", {{range $i, $p := .Params}}{{if $i}}, {{end}}self.v{{inc $i}}{{end}})
}

func (self Tuple{{.N}}[{{.Use}}]) MarshalYAML() (interface{}, error) {
	return []interface{}{ {{- range $i, $p := .Params}}{{if $i}}, {{end}}self.v{{inc $i}}{{end -}} }, nil
}
{{end}}`))

func main() {
	var arities []arity
	for n := 2; n <= len(typeParams); n = n + 1 {
		arities = append(arities, arity{N: n, Params: typeParams[:n]})
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, arities); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	if err := os.WriteFile("tuple_gen.go", src, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
