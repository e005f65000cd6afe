package filament

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionsProxyGet(t *testing.T) {
	proxy := NewOptionsProxy(map[string]any{
		"text":   "hello",
		"count":  float64(3),
		"toggle": true,
	})

	assert.Equal(t, "hello", proxy.Get("text"), "Get should return the mapped value")
	assert.Nil(t, proxy.Get("missing"), "Get should return nil for a missing key")
	assert.True(t, proxy.Has("text"), "Has should report supplied options")
	assert.False(t, proxy.Has("missing"), "Has should report missing options")
	assert.Equal(t, 3, proxy.Len(), "Len should count the supplied options")
}

func TestOptionsProxyTypedAccessors(t *testing.T) {
	proxy := NewOptionsProxy(map[string]any{
		"text":    "hello",
		"count":   float64(3),
		"exact":   int64(7),
		"ratio":   2.5,
		"toggle":  true,
		"untyped": struct{}{},
	})

	assert.Equal(t, "hello", proxy.String("text"))
	assert.Equal(t, int64(3), proxy.Int("count"), "Int should accept the wire's float64 representation")
	assert.Equal(t, int64(7), proxy.Int("exact"))
	assert.Equal(t, 2.5, proxy.Float("ratio"))
	assert.True(t, proxy.Bool("toggle"))

	assert.Equal(t, "", proxy.String("missing"), "missing keys should yield zero values")
	assert.Equal(t, int64(0), proxy.Int("missing"))
	assert.Equal(t, 0.0, proxy.Float("missing"))
	assert.False(t, proxy.Bool("missing"))
	assert.Equal(t, "", proxy.String("toggle"), "mismatched types should yield zero values")
}

func TestOptionsProxyNilMapping(t *testing.T) {
	proxy := NewOptionsProxy(nil)

	assert.Nil(t, proxy.Get("anything"), "a nil mapping should behave as empty")
	assert.Equal(t, 0, proxy.Len())
}
