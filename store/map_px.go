package store

import (
	"github.com/iocgo/eventproxy/proxy"
)

// A generic contract cannot be registered with proxy.Reg for every K and V,
// so its decorator is built directly.
type mapPx[K comparable, V any] struct {
	*proxy.Proxy[Map[K, V]]
}

func NewMapProxy[K comparable, V any](proto Map[K, V], handler proxy.InvocationHandler[Map[K, V]]) Map[K, V] {
	return &mapPx[K, V]{proxy.Of(proto, handler)}
}

func (px *mapPx[K, V]) Put(k K, v V) (old V, replaced bool) {
	ctx := px.Context("Put", []any{k, v}, []any{old, replaced})
	ctx.Do = func() {
		ctx.Out[0], ctx.Out[1] = ctx.Receiver.Put(proxy.Value[K](ctx.In[0]), proxy.Value[V](ctx.In[1]))
	}
	px.Invoke(ctx)
	return proxy.Value[V](ctx.Out[0]), ctx.Out[1].(bool)
}

func (px *mapPx[K, V]) Get(k K) (v V, ok bool) {
	ctx := px.Context("Get", []any{k}, []any{v, ok})
	ctx.Do = func() {
		ctx.Out[0], ctx.Out[1] = ctx.Receiver.Get(proxy.Value[K](ctx.In[0]))
	}
	px.Invoke(ctx)
	return proxy.Value[V](ctx.Out[0]), ctx.Out[1].(bool)
}

func (px *mapPx[K, V]) Delete(k K) bool {
	ctx := px.Context("Delete", []any{k}, []any{false})
	ctx.Do = func() {
		ctx.Out[0] = ctx.Receiver.Delete(proxy.Value[K](ctx.In[0]))
	}
	px.Invoke(ctx)
	return ctx.Out[0].(bool)
}

func (px *mapPx[K, V]) Len() int {
	ctx := px.Context("Len", nil, []any{0})
	ctx.Do = func() {
		ctx.Out[0] = ctx.Receiver.Len()
	}
	px.Invoke(ctx)
	return ctx.Out[0].(int)
}
