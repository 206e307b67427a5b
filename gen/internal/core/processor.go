package core

import (
	"errors"
	"fmt"
	"go/ast"
	"path/filepath"
	"reflect"

	annotation "github.com/bincooo/go-annotation/pkg"
	annotations "github.com/iocgo/eventproxy/gen/annotation"
)

type Builder func(proc *Processor) map[string][]byte

// Processor collects the @Logged methods of the root package.
type Processor struct {
	builders map[string]Builder
	packages map[string]*Package
}

var _ annotation.AnnotationProcessor = (*Processor)(nil)

var proc *Processor

func init() {
	proc = NewProcessor()
	annotation.Register[annotations.Logged](proc)
}

func NewProcessor() *Processor {
	return &Processor{
		builders: make(map[string]Builder),
		packages: make(map[string]*Package),
	}
}

func Alias[T any]() {
	annotation.Register[T](proc)
}

func (proc *Processor) Version() string {
	return "v1.0.0"
}

func (proc *Processor) Name() string {
	return "eventproxy"
}

func (proc *Processor) Process(node annotation.Node) error {
	return errors.Join(
		scanAnnotated[annotations.Logged](proc, node, func(annotations.Logged) Builder {
			return Logged
		}),
	)
}

func (proc *Processor) Output() (ops map[string][]byte) {
	ops = make(map[string][]byte)
	for _, builder := range proc.builders {
		for k, v := range builder(proc) {
			ops[k] = v
		}
	}
	return
}

// Mark records a tagged method of the package in dir.
func (proc *Processor) Mark(dir, pkg string, mark Mark) {
	p, ok := proc.packages[dir]
	if !ok {
		p = &Package{Name: pkg}
		proc.packages[dir] = p
	}
	p.Marks = append(p.Marks, mark)
}

func scanAnnotated[T annotations.M](proc *Processor, node annotation.Node, then func(t T) Builder) (err error) {
	meta := node.Meta()
	var zero T
	slice := FindAnnotations[T](node.Annotations())
	if len(slice) == 0 {
		return
	}

	if len(slice) > 1 {
		to := reflect.TypeOf(zero)
		err = fmt.Errorf("expected 1 `%s` annotation, but got: %d", to.String(), len(slice))
		return
	}

	goAst := node.ASTNode()
	zero = slice[0]
	if err = zero.Match(goAst); err != nil {
		return fmt.Errorf("%s: %w", filepath.Join(meta.Dir(), meta.FileName()), err)
	}

	fd := goAst.(*ast.FuncDecl)
	receiver, pointer := annotations.MethodReceiver(fd)
	proc.Mark(meta.Dir(), meta.PackageName(), Mark{
		Receiver: receiver,
		Pointer:  pointer,
		Method:   fd.Name.Name,
	})

	if _, ok := proc.builders[zero.Name()]; !ok {
		if builder := then(zero); builder != nil {
			proc.builders[zero.Name()] = builder
		}
	}
	return
}

func FindAnnotations[T any](a []annotation.Annotation) (re []T) {
	for _, it := range a {
		if t, ok := resolve[T](it); ok {
			re = append(re, t)
		}
	}
	return
}

// resolve follows the As chain of alias annotations.
func resolve[T any](a annotation.Annotation) (t T, ok bool) {
	if m, isM := a.(annotations.M); isM {
		for n := m.As(); n != nil; n = m.As() {
			m = n
		}
		t, ok = m.(T)
		return
	}

	t, ok = a.(T)
	return
}
