package runtime

import "sync"

// GoroutineLocal keeps one value per goroutine. Values must be removed by
// their goroutine, nothing is collected.
type GoroutineLocal[T any] struct {
	m    sync.Map
	init func() T
}

func NewGoroutineLocal[T any](init func() T) *GoroutineLocal[T] {
	return &GoroutineLocal[T]{init: init}
}

// Load returns the value of the current goroutine, creating it with init on
// first use.
func (g *GoroutineLocal[T]) Load() (t T) {
	key := GetCurrentGoroutineID()
	if value, ok := g.m.Load(key); ok {
		return value.(T)
	}

	if g.init != nil {
		t = g.init()
		g.m.Store(key, t)
	}
	return
}

func (g *GoroutineLocal[T]) Store(value T) {
	g.m.Store(GetCurrentGoroutineID(), value)
}

// Loaded reports whether the current goroutine already has a value.
func (g *GoroutineLocal[T]) Loaded() bool {
	_, ok := g.m.Load(GetCurrentGoroutineID())
	return ok
}

func (g *GoroutineLocal[T]) Remove() {
	g.m.Delete(GetCurrentGoroutineID())
}
