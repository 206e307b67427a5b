// Package store is a generic key/value contract, used to show that one
// handler can observe any contract.
package store

import (
	"maps"
	"slices"
)

type Map[K comparable, V any] interface {
	// Put stores v and returns the previous value, if any.
	Put(k K, v V) (old V, replaced bool)
	Get(k K) (V, bool)
	Delete(k K) bool
	Len() int
}

type HashMap[K comparable, V any] struct {
	m map[K]V
}

func NewHashMap[K comparable, V any]() *HashMap[K, V] {
	return &HashMap[K, V]{m: make(map[K]V)}
}

func (h *HashMap[K, V]) Put(k K, v V) (old V, replaced bool) {
	old, replaced = h.m[k]
	h.m[k] = v
	return
}

func (h *HashMap[K, V]) Get(k K) (v V, ok bool) {
	v, ok = h.m[k]
	return
}

func (h *HashMap[K, V]) Delete(k K) bool {
	_, ok := h.m[k]
	delete(h.m, k)
	return ok
}

func (h *HashMap[K, V]) Len() int {
	return len(h.m)
}

func (h *HashMap[K, V]) Keys() []K {
	return slices.Collect(maps.Keys(h.m))
}
