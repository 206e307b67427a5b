package proxy

// Context describes one intercepted call. Do forwards In to Receiver and
// stores the results into Out in place, so handlers that copy the Context
// still observe them. Handlers must not rewrite In or Out.
type Context[T any] struct {
	Name     string
	Receiver T
	In,
	Out []any
	Do func()
}

// InvocationHandler is the single chokepoint every call of a proxy goes
// through. It decides what runs around ctx.Do and must call it exactly once.
type InvocationHandler[T any] func(ctx *Context[T])

// Value converts an In or Out slot back to its static type. Unlike a plain
// assertion it accepts the nil an interface-typed zero value is stored as.
func Value[T any](a any) T {
	t, _ := a.(T)
	return t
}
