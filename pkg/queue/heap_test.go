package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testItem struct {
	name     string
	priority float64
	index    int
}

func (i *testItem) Priority() float64  { return i.priority }
func (i *testItem) Index() int         { return i.index }
func (i *testItem) SetIndex(index int) { i.index = index }

func TestMinHeapPopOrder(t *testing.T) {
	items := []*testItem{
		{name: "c", priority: 3},
		{name: "a", priority: 1},
		{name: "d", priority: 4},
		{name: "b", priority: 2},
	}
	h := NewMinHeap(items)
	require.Equal(t, 4, h.Len())

	order := make([]string, 0, 4)
	for h.Len() > 0 {
		order = append(order, h.Pop().name)
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, order)
}

func TestMinHeapPushAfterInit(t *testing.T) {
	h := NewMinHeap[*testItem](nil)
	h.Push(&testItem{name: "b", priority: 2})
	h.Push(&testItem{name: "a", priority: 1})

	assert.Equal(t, "a", h.Peek().name)
	assert.Equal(t, "a", h.Pop().name)
	assert.Equal(t, "b", h.Pop().name)
	assert.Zero(t, h.Len())
}

func TestMinHeapDecreaseKey(t *testing.T) {
	cheap := &testItem{name: "cheap", priority: 1}
	expensive := &testItem{name: "expensive", priority: 10}
	h := NewMinHeap([]*testItem{cheap, expensive})

	expensive.priority = 0.5
	h.Update(expensive)

	assert.Equal(t, "expensive", h.Pop().name)
	assert.Equal(t, "cheap", h.Pop().name)
}

func TestMinHeapIndexTracking(t *testing.T) {
	a := &testItem{name: "a", priority: 1}
	b := &testItem{name: "b", priority: 2}
	h := NewMinHeap([]*testItem{b, a})

	// The stored indexes must always match the item positions, otherwise
	// Update would fix the wrong slot.
	assert.Equal(t, a, h.Peek())
	assert.Equal(t, 0, a.Index())

	popped := h.Pop()
	assert.Equal(t, -1, popped.Index())
}
