package dsu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnion(t *testing.T) {
	t.Run("reports whether sets were distinct", func(t *testing.T) {
		d := New(4)
		assert.True(t, d.Union(0, 1))
		assert.True(t, d.Union(2, 3))
		assert.False(t, d.Union(0, 1))
		assert.True(t, d.Union(1, 3))
		assert.False(t, d.Union(0, 2))
	})

	t.Run("tracks the set count", func(t *testing.T) {
		d := New(5)
		assert.Equal(t, 5, d.Sets())
		d.Union(0, 1)
		d.Union(1, 2)
		assert.Equal(t, 3, d.Sets())
		d.Union(0, 2) // already joined
		assert.Equal(t, 3, d.Sets())
		d.Union(3, 4)
		d.Union(2, 4)
		assert.Equal(t, 1, d.Sets())
	})
}

func TestConnected(t *testing.T) {
	d := New(6)
	assert.True(t, d.Connected(3, 3))
	assert.False(t, d.Connected(0, 5))

	d.Union(0, 1)
	d.Union(1, 5)
	assert.True(t, d.Connected(0, 5))
	assert.False(t, d.Connected(0, 2))
}

func TestFindCompressesPaths(t *testing.T) {
	d := New(8)
	for i := 0; i < 7; i++ {
		d.Union(i, i+1)
	}
	root := d.Find(0)
	for i := 1; i < 8; i++ {
		assert.Equal(t, root, d.Find(i))
	}
	assert.Equal(t, 1, d.Sets())
}
