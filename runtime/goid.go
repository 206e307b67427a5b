package runtime

import (
	"bytes"
	"runtime"
	"strconv"
	"sync"
)

var (
	littleBuf = sync.Pool{
		New: func() any { b := make([]byte, 64); return &b },
	}

	goroutinePrefix = []byte("goroutine ")
)

// GetCurrentGoroutineID parses the id out of the first line of the current
// stack: "goroutine 18 [running]:".
func GetCurrentGoroutineID() int64 {
	bp := littleBuf.Get().(*[]byte)
	defer littleBuf.Put(bp)

	b := (*bp)[:runtime.Stack(*bp, false)]
	b = bytes.TrimPrefix(b, goroutinePrefix)
	if i := bytes.IndexByte(b, ' '); i > 0 {
		b = b[:i]
	}

	id, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		panic("runtime: cannot parse goroutine id: " + err.Error())
	}
	return id
}
