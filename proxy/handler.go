package proxy

import (
	"context"
	"fmt"
	"io"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/iocgo/eventproxy/errors"
	"github.com/iocgo/eventproxy/lock"
)

// Timed reports the running time of every call to w, also when the delegate
// panics.
func Timed[T any](w io.Writer) InvocationHandler[T] {
	return func(ctx *Context[T]) {
		start := time.Now()
		defer func() {
			_, _ = fmt.Fprintf(w, "%s() running time: %d µs\n", method(ctx.Name), time.Since(start).Microseconds())
		}()
		ctx.Do()
	}
}

func Logging[T any](w io.Writer) InvocationHandler[T] {
	return func(ctx *Context[T]) {
		_, _ = fmt.Fprintf(w, "Invoking %s() with proxy\n", method(ctx.Name))
		ctx.Do()
	}
}

// Chain runs handlers outermost first; the last one reaches the delegate.
func Chain[T any](handlers ...InvocationHandler[T]) InvocationHandler[T] {
	return func(ctx *Context[T]) {
		var call func(i int)
		call = func(i int) {
			if i == len(handlers) {
				ctx.Do()
				return
			}

			next := *ctx
			next.Do = func() { call(i + 1) }
			handlers[i](&next)
		}
		call(0)
	}
}

// Locked serializes calls on l. The lock is reentrant, so a delegate calling
// back into the same proxy on the same goroutine does not deadlock.
func Locked[T any](l *lock.ExpireLock, timeout time.Duration) InvocationHandler[T] {
	return func(ctx *Context[T]) {
		timeoutCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if !l.Lock(timeoutCtx) {
			panic(fmt.Errorf("%s: %w", ctx.Name, errors.ErrLockTimeout))
		}
		defer l.Unlock()
		ctx.Do()
	}
}

// method renders a Go method name the way the call lines print it:
// Register -> register.
func method(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToLower(r)) + name[size:]
}
