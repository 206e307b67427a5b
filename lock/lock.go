package lock

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	run "github.com/iocgo/eventproxy/runtime"
)

const defaultTimeout = 10 * time.Second

// ExpireLock is a mutex whose Lock gives up when its context ends. A
// reentrant lock may be taken again by the goroutine holding it.
type ExpireLock struct {
	// waiting + holding callers
	count int64

	// -1 not reentrant, 0 reentrant & free, > 0 goroutine id of the owner
	gid,
	reentrantCount int64

	mutex sync.Mutex
}

func NewExpireLock(reentrant bool) *ExpireLock {
	var gid int64 = -1
	if reentrant {
		gid = 0
	}

	return &ExpireLock{
		gid:   gid,
		count: 0,
	}
}

// Lock reports whether the lock was acquired before ctx ended. A nil ctx
// waits for ten seconds at most.
func (e *ExpireLock) Lock(ctx context.Context) bool {
	if ctx == nil {
		timeout, cancel := context.WithTimeout(context.Background(), defaultTimeout)
		defer cancel()
		ctx = timeout
	}

	atomic.AddInt64(&e.count, 1)
	for {
		select {
		case <-ctx.Done():
			atomic.AddInt64(&e.count, -1)
			return false
		default:
			if e.tryLock() {
				return true
			}
			runtime.Gosched()
		}
	}
}

func (e *ExpireLock) Unlock() {
	atomic.AddInt64(&e.count, -1)
	e.unlock()
}

// IsIdle reports whether nobody holds or waits for the lock.
func (e *ExpireLock) IsIdle() bool {
	return atomic.LoadInt64(&e.count) < 1
}

func (e *ExpireLock) reentrant() bool {
	return atomic.LoadInt64(&e.gid) >= 0
}

func (e *ExpireLock) tryLock() bool {
	if e.mutex.TryLock() {
		if e.reentrant() {
			atomic.StoreInt64(&e.gid, run.GetCurrentGoroutineID())
			e.reentrantCount++
		}
		return true
	}

	if !e.reentrant() {
		return false
	}

	gid := run.GetCurrentGoroutineID()
	if atomic.LoadInt64(&e.gid) == gid {
		e.reentrantCount++
		return true
	}
	return false
}

func (e *ExpireLock) unlock() {
	if !e.reentrant() {
		e.mutex.Unlock()
		return
	}

	e.reentrantCount--
	if e.reentrantCount <= 0 {
		atomic.StoreInt64(&e.gid, 0)
		e.mutex.Unlock()
	}
}
