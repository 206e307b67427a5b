package proxy

import (
	"fmt"
	"sync"

	"github.com/iocgo/eventproxy/errors"
)

// Maker builds the decorator of contract T around proto.
type Maker[T any] func(proto T, handler InvocationHandler[T]) T

// Proxy is embedded by the decorator of each contract. It holds the delegate
// and the handler, both fixed at construction.
type Proxy[T any] struct {
	proto   T
	handler InvocationHandler[T]
}

var (
	mu             sync.RWMutex
	constructorMap = make(map[string]any)
)

func Of[T any](proto T, handler InvocationHandler[T]) *Proxy[T] {
	return &Proxy[T]{proto, handler}
}

func (px *Proxy[T]) Proto() T {
	return px.proto
}

func (px *Proxy[T]) Context(name string, in, out []any) *Context[T] {
	return &Context[T]{
		Name:     name,
		Receiver: px.proto,
		In:       in,
		Out:      out,
	}
}

func (px *Proxy[T]) Invoke(ctx *Context[T]) {
	if px.handler == nil {
		ctx.Do()
		return
	}
	px.handler(ctx)
}

// Reg registers the decorator constructor of contract T. Decorators call it
// from init.
func Reg[T any](maker Maker[T]) {
	mu.Lock()
	defer mu.Unlock()
	constructorMap[NameOf[T]()] = maker
}

// New wraps t with the decorator registered for T.
func New[T any](t T, handler InvocationHandler[T]) (T, error) {
	n := NameOf[T]()
	mu.RLock()
	maker, ok := constructorMap[n]
	mu.RUnlock()

	if ok {
		return maker.(Maker[T])(t, handler), nil
	}

	var zero T
	return zero, fmt.Errorf("%s: %w", n, errors.ErrNoProxy)
}

// Create is New for a delegate of unknown type. A delegate that does not
// implement T fails with a *ContractMismatchError.
func Create[T any](delegate any, handler InvocationHandler[T]) (T, error) {
	t, err := As[T](delegate)
	if err != nil {
		return t, err
	}
	return New[T](t, handler)
}

// NameOf returns the name contracts are registered under.
func NameOf[T any]() string {
	var t T

	// struct
	name := fmt.Sprintf("%T", t)
	if name != "<nil>" {
		return name
	}

	// interface
	return fmt.Sprintf("%T", new(T))
}

func instanceName(t any) string {
	return fmt.Sprintf("%T", t)
}
