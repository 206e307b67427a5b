package proxy

import (
	"fmt"
	"io"
	"maps"
	"slices"
)

// Tags is the set of method names of a concrete type carrying the @Logged
// marker.
type Tags map[string]struct{}

var tagMap = make(map[string]Tags)

func NewTags(methods ...string) Tags {
	tags := make(Tags, len(methods))
	for _, m := range methods {
		tags[m] = struct{}{}
	}
	return tags
}

func (t Tags) Has(method string) bool {
	_, ok := t[method]
	return ok
}

func (t Tags) Names() []string {
	return slices.Sorted(maps.Keys(t))
}

// Mark tags methods of the concrete type T. Generated code calls it from init.
func Mark[T any](methods ...string) {
	mu.Lock()
	defer mu.Unlock()

	n := NameOf[T]()
	tags, ok := tagMap[n]
	if !ok {
		tags = make(Tags)
		tagMap[n] = tags
	}
	for _, m := range methods {
		tags[m] = struct{}{}
	}
}

// TagsOf returns a copy of the table marked for the dynamic type of v.
func TagsOf(v any) Tags {
	mu.RLock()
	defer mu.RUnlock()
	return maps.Clone(tagMap[instanceName(v)])
}

// Annotated gates its side effect on the tags of delegate's concrete type,
// resolved once here rather than per call.
func Annotated[T any](delegate T, w io.Writer) InvocationHandler[T] {
	return AnnotatedWith[T](TagsOf(delegate), w)
}

// AnnotatedWith matches on the method name only. Go has no overloading, so
// the name identifies the method.
func AnnotatedWith[T any](tags Tags, w io.Writer) InvocationHandler[T] {
	return func(ctx *Context[T]) {
		if tags.Has(ctx.Name) {
			_, _ = fmt.Fprintf(w, "The annotated proxy works for %s because it has the annotation\n", method(ctx.Name))
		}
		ctx.Do()
	}
}
