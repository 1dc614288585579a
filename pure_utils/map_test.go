package pure_utils

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "3"}, Map([]int{1, 2, 3}, strconv.Itoa))
	assert.Empty(t, Map([]int{}, strconv.Itoa))
}

func TestFlatMap(t *testing.T) {
	double := func(v int) []int { return []int{v, v} }
	assert.Equal(t, []int{1, 1, 2, 2}, FlatMap([]int{1, 2}, double))
}

func TestDedupPreservingOrder(t *testing.T) {
	assert.Equal(t, []string{"b", "a", "c"}, DedupPreservingOrder([]string{"b", "a", "b", "c", "a"}))
	assert.Empty(t, DedupPreservingOrder([]string{}))
}
