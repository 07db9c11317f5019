package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLRUCache(t *testing.T) {
	c := newLRUCache[int](2)

	c.Put("a", 1)
	c.Put("b", 2)
	_, ok := c.Get("a")
	assert.True(t, ok)

	// b is now the oldest and gets evicted
	c.Put("c", 3)
	_, ok = c.Get("b")
	assert.False(t, ok)
	assert.Equal(t, 2, c.Len())

	c.Put("a", 10)
	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 10, v)
	assert.Equal(t, 2, c.Len())
}
