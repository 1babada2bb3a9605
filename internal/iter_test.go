package internal

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterSeq2Concat(t *testing.T) {
	assert := assert.New(t)

	a := slices.All([]string{"A", "B"})
	b := slices.All([]string{"C"})

	var keys []int
	var values []string
	for key, value := range IterSeq2Concat(a, b) {
		keys = append(keys, key)
		values = append(values, value)
	}
	assert.Equal([]int{0, 1, 0}, keys)
	assert.Equal([]string{"A", "B", "C"}, values)

	// Later sequences override earlier ones when collected.
	merged := maps.Collect(IterSeq2Concat(
		maps.All(map[string]string{"X": "1", "Y": "2"}),
		maps.All(map[string]string{"Y": "3"}),
	))
	assert.Equal(map[string]string{"X": "1", "Y": "3"}, merged)

	count := 0
	for range IterSeq2Concat(a, b) {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(2, count)
}
