package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContext_Catch(t *testing.T) {
	t.Run("should return the first failing step", func(t *testing.T) {
		req := require.New(t)
		steps := 0

		run := func() (err error) {
			ctx := New(nil)
			defer ctx.Catch(&err)

			Try(ctx, func() error { steps++; return nil })
			_ = Try1(ctx, func() (int, error) { steps++; return 0, ErrInvalidConfig })
			Try(ctx, func() error { steps++; return nil })
			return
		}

		err := run()
		req.ErrorIs(err, ErrInvalidConfig)
		req.Equal(2, steps)
	})

	t.Run("should keep going when catch accepts the error", func(t *testing.T) {
		req := require.New(t)

		run := func() (n int, err error) {
			ctx := New(func(err error) bool { return err == ErrNoProxy })
			defer ctx.Catch(&err)

			n = Try1(ctx, func() (int, error) { return 1, ErrNoProxy })
			a, b := Try2(ctx, func() (int, int, error) { return 2, 3, nil })
			n += a + b
			return
		}

		n, err := run()
		req.NoError(err)
		req.Equal(6, n)
	})

	t.Run("should re-raise foreign panics", func(t *testing.T) {
		req := require.New(t)
		boom := fmt.Errorf("boom")

		req.PanicsWithValue(boom, func() {
			var err error
			ctx := New(nil)
			defer ctx.Catch(&err)
			panic(boom)
		})
	})
}
