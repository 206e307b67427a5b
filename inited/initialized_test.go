package inited

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExited(t *testing.T) {
	req := require.New(t)
	var order []int
	boom := errors.New("boom")

	AddExited(func(context.Context) error { order = append(order, 1); return nil })
	AddExited(func(context.Context) error { order = append(order, 2); return boom })

	req.ErrorIs(Exited(context.Background()), boom)
	req.Equal([]int{2, 1}, order)

	req.NoError(Exited(context.Background()))
	req.Equal([]int{2, 1}, order)
}

func TestInitialized(t *testing.T) {
	req := require.New(t)
	calls := 0
	AddExited(func(context.Context) error { calls++; return nil })

	ctx, stop := Initialized(context.Background())
	req.NoError(stop())
	req.NoError(stop())
	<-ctx.Done()
	req.Equal(1, calls)
}
