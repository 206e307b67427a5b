package store

import (
	"bytes"
	"strings"
	"testing"

	"github.com/iocgo/eventproxy/proxy"
	"github.com/stretchr/testify/require"
)

func TestMapProxy(t *testing.T) {
	t.Run("should forward every operation", func(t *testing.T) {
		req := require.New(t)
		var out bytes.Buffer
		m := NewMapProxy[string, string](NewHashMap[string, string](), proxy.Logging[Map[string, string]](&out))

		_, replaced := m.Put("1", "one")
		req.False(replaced)
		m.Put("2", "two")

		v, ok := m.Get("2")
		req.True(ok)
		req.Equal("two", v)

		old, replaced := m.Put("2", "deux")
		req.True(replaced)
		req.Equal("two", old)

		req.True(m.Delete("1"))
		req.False(m.Delete("1"))
		req.Equal(1, m.Len())

		req.Equal([]string{
			"Invoking put() with proxy",
			"Invoking put() with proxy",
			"Invoking get() with proxy",
			"Invoking put() with proxy",
			"Invoking delete() with proxy",
			"Invoking delete() with proxy",
			"Invoking len() with proxy",
		}, strings.Split(strings.TrimSpace(out.String()), "\n"))
	})

	t.Run("should return zero values of interface types", func(t *testing.T) {
		req := require.New(t)
		m := NewMapProxy[string, error](NewHashMap[string, error](), nil)

		v, ok := m.Get("missing")
		req.False(ok)
		req.Nil(v)

		_, replaced := m.Put("nil", nil)
		req.False(replaced)
		req.Equal(1, m.Len())
	})
}

func TestHashMap_Keys(t *testing.T) {
	req := require.New(t)
	m := NewHashMap[int, bool]()
	m.Put(1, true)
	m.Put(2, false)
	req.ElementsMatch([]int{1, 2}, m.Keys())
}
