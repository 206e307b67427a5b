package lock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestExpireLock(t *testing.T) {
	t.Run("should be reentrant on the owning goroutine", func(t *testing.T) {
		req := require.New(t)
		l := NewExpireLock(true)

		req.True(l.Lock(context.Background()))
		req.True(l.Lock(context.Background()))
		req.False(l.IsIdle())

		l.Unlock()
		l.Unlock()
		req.True(l.IsIdle())
	})

	t.Run("should time out while another goroutine holds it", func(t *testing.T) {
		req := require.New(t)
		l := NewExpireLock(true)
		req.True(l.Lock(context.Background()))

		acquired := make(chan bool)
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
			defer cancel()
			acquired <- l.Lock(ctx)
		}()

		req.False(<-acquired)
		l.Unlock()
		req.True(l.IsIdle())
	})

	t.Run("should hand over once released", func(t *testing.T) {
		req := require.New(t)
		l := NewExpireLock(false)
		req.True(l.Lock(nil))

		acquired := make(chan bool)
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			ok := l.Lock(ctx)
			if ok {
				l.Unlock()
			}
			acquired <- ok
		}()

		time.Sleep(10 * time.Millisecond)
		l.Unlock()
		req.True(<-acquired)
	})
}
