package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorWalk(t *testing.T) {
	list := MakeFromTail(1, 2, 3)
	c := list.Cursor()

	var seen []int64
	for ; c.Valid(); c.Next() {
		seen = append(seen, c.Value())
	}
	assert.Equal(t, []int64{1, 2, 3}, seen)
	assert.Nil(t, c.Node())
	assert.False(t, c.Next())
	assert.PanicsWithValue(t, "cursor at end", func() { c.Value() })
	assert.PanicsWithValue(t, "cursor at end", func() { c.Remove() })
}

func TestCursorRemoveStaysInPlace(t *testing.T) {
	list := MakeFromTail(1, 2, 2, 3)
	c := list.Cursor()
	require.True(t, c.Next())

	assert.Equal(t, int64(2), c.Remove())
	assert.Equal(t, int64(2), c.Value())
	assert.Equal(t, int64(2), c.Remove())
	assert.Equal(t, int64(3), c.Value())
	assert.Equal(t, []int64{1, 3}, list.ToSlice())

	assert.Equal(t, int64(3), c.Remove())
	assert.False(t, c.Valid())
	assert.Equal(t, []int64{1}, list.ToSlice())
}

func TestCursorRemoveHead(t *testing.T) {
	list := MakeFromTail(1, 2)
	c := list.Cursor()
	assert.Equal(t, int64(1), c.Remove())
	assert.Equal(t, int64(2), c.Remove())
	assert.True(t, list.IsEmpty())
	assert.False(t, c.Valid())
}

func TestCursorInsertAndSet(t *testing.T) {
	list := MakeFromTail(1, 3)
	c := list.Cursor()
	c.Next()
	c.Insert(2)
	assert.Equal(t, int64(2), c.Value())
	c.Set(20)
	assert.Equal(t, []int64{1, 20, 3}, list.ToSlice())

	c.seekEnd().Insert(4)
	assert.Equal(t, []int64{1, 20, 3, 4}, list.ToSlice())

	var empty LinkedList
	empty.Cursor().Insert(5)
	assert.Equal(t, []int64{5}, empty.ToSlice())
}

func TestCursorAttachRequiresEnd(t *testing.T) {
	list := MakeFromTail(1)
	assert.PanicsWithValue(t, "cursor not at end", func() {
		list.Cursor().attach(&Node{val: 2})
	})
}
