package core

import (
	"bytes"
	"fmt"
	"go/format"
	"maps"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"text/template"
)

const FileName = "logged.gen.go"

var loggedTemplate = template.Must(template.New("logged").Parse(`// Code generated by eventproxy gen. DO NOT EDIT.

package {{ .package }}

import (
	"github.com/iocgo/eventproxy/proxy"
)

func init() {
{{- range .types }}
	proxy.Mark[{{ .Name }}]({{ .Methods }})
{{- end }}
}
`))

type Mark struct {
	Receiver string
	Pointer  bool
	Method   string
}

type Package struct {
	Name  string
	Marks []Mark
}

func (m Mark) typeName() string {
	if m.Pointer {
		return "*" + m.Receiver
	}
	return m.Receiver
}

func Logged(proc *Processor) (ops map[string][]byte) {
	ops = make(map[string][]byte)
	for dir, p := range proc.packages {
		code, err := p.Render()
		if err != nil {
			panic(fmt.Errorf("render %s: %w", dir, err))
		}
		ops[filepath.Join(dir, FileName)] = code
	}
	return
}

// Render returns the gofmt'ed tag table of the package, one proxy.Mark per
// receiver type, both types and methods sorted.
func (p *Package) Render() ([]byte, error) {
	methods := make(map[string][]string)
	for _, m := range p.Marks {
		n := m.typeName()
		if !slices.Contains(methods[n], m.Method) {
			methods[n] = append(methods[n], m.Method)
		}
	}

	type entry struct{ Name, Methods string }
	var types []entry
	for _, n := range slices.Sorted(maps.Keys(methods)) {
		names := slices.Sorted(slices.Values(methods[n]))
		quoted := make([]string, 0, len(names))
		for _, it := range names {
			quoted = append(quoted, strconv.Quote(it))
		}
		types = append(types, entry{n, strings.Join(quoted, ", ")})
	}

	var buf bytes.Buffer
	if err := loggedTemplate.Execute(&buf, map[string]any{
		"package": p.Name,
		"types":   types,
	}); err != nil {
		return nil, err
	}
	return format.Source(buf.Bytes())
}
