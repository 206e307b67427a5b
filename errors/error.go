package errors

import (
	"fmt"
	"io"
)

var (
	ErrContractMismatch   = fmt.Errorf("delegate does not satisfy the contract")
	ErrNoProxy            = fmt.Errorf("no proxy registered for the contract")
	ErrLockTimeout        = fmt.Errorf("lock not acquired before timeout")
	ErrCircularDependency = fmt.Errorf("circular dependency")
	ErrInvalidConfig      = fmt.Errorf("invalid configuration")
)

// Context short-circuits a run of fallible steps. Try* panics with io.EOF on
// the first error that catch does not accept; Catch turns it back into a
// returned error.
type Context struct {
	err   error
	catch func(err error) bool
}

func (ctx *Context) Error() error {
	return ctx.err
}

// Catch must be deferred. Panics that did not come from Try* are re-raised
// untouched.
func (ctx *Context) Catch(err *error) {
	r := recover()
	if r == nil {
		return
	}

	if r != io.EOF || ctx.err == nil {
		panic(r)
	}

	*err = ctx.err
}

func New(catch func(err error) bool) *Context {
	return &Context{
		err:   nil,
		catch: catch,
	}
}

func panicTo(ctx *Context) {
	if ctx.err == nil {
		return
	}

	if ctx.catch != nil {
		if ctx.catch(ctx.err) {
			ctx.err = nil
			return
		}
	}

	panic(io.EOF)
}

func Try(ctx *Context, exec func() error) {
	ctx.err = exec()
	panicTo(ctx)
}

func Try1[T any](ctx *Context, exec func() (T, error)) (t T) {
	t, ctx.err = exec()
	panicTo(ctx)
	return
}

func Try2[T, M any](ctx *Context, exec func() (T, M, error)) (t T, m M) {
	t, m, ctx.err = exec()
	panicTo(ctx)
	return
}
