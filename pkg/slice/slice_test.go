package slice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReverseInPlace(t *testing.T) {
	s := []string{"a", "b", "c", "d"}
	ReverseInPlace(s)
	assert.Equal(t, []string{"d", "c", "b", "a"}, s)

	odd := []int{1, 2, 3}
	ReverseInPlace(odd)
	assert.Equal(t, []int{3, 2, 1}, odd)

	empty := []int{}
	ReverseInPlace(empty)
	assert.Empty(t, empty)
}

func TestContains(t *testing.T) {
	s := []string{"Location", "Address"}
	assert.True(t, Contains(s, "Address"))
	assert.False(t, Contains(s, "address"))
	assert.False(t, Contains([]string(nil), "x"))
}
