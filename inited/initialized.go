// Package inited keeps the process exit hooks: resources such as the tracer
// provider register a flush that runs once, on return or on SIGINT/SIGTERM.
package inited

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"slices"
	"sync"
	"syscall"
)

var (
	mu    sync.Mutex
	exits []func(ctx context.Context) error
)

func AddExited(apply func(ctx context.Context) error) {
	mu.Lock()
	defer mu.Unlock()
	exits = append(exits, apply)
}

// Exited runs the hooks in reverse registration order and forgets them.
func Exited(ctx context.Context) error {
	mu.Lock()
	applies := slices.Clone(exits)
	exits = nil
	mu.Unlock()

	var errs []error
	for _, apply := range slices.Backward(applies) {
		if err := apply(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Initialized returns a context cancelled by the first SIGINT or SIGTERM.
// The hooks run when it is cancelled or stop is called, whichever comes first.
func Initialized(parent context.Context) (ctx context.Context, stop func() error) {
	ctx, cancel := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	var once sync.Once
	var err error
	stop = func() error {
		once.Do(func() {
			cancel()
			err = Exited(context.WithoutCancel(ctx))
		})
		return err
	}

	go func() {
		<-ctx.Done()
		_ = stop()
	}()
	return ctx, stop
}
