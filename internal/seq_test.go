package internal

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConcat2(t *testing.T) {
	assert := assert.New(t)

	a := map[string]int{"a": 1}
	b := map[string]int{"b": 2, "c": 3}

	merged := maps.Collect(Concat2(maps.All(a), maps.All(b)))
	assert.Equal(map[string]int{"a": 1, "b": 2, "c": 3}, merged)

	count := 0
	for range Concat2(maps.All(a), maps.All(b)) {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(2, count)

	assert.Empty(maps.Collect(Concat2[string, int]()))
}

func TestSorted2(t *testing.T) {
	assert := assert.New(t)

	a := map[string]int{"zed": 1, "alpha": 2}
	b := map[string]int{"zed": 3, "mid": 4}

	var keys []string
	var values []int
	for key, value := range Sorted2(Concat2(maps.All(a), maps.All(b))) {
		keys = append(keys, key)
		values = append(values, value)
	}

	assert.Equal([]string{"alpha", "mid", "zed"}, keys)
	assert.Equal([]int{2, 4, 3}, values)

	keys = nil
	for key := range Sorted2(maps.All(a)) {
		keys = append(keys, key)
		break
	}
	assert.Equal([]string{"alpha"}, keys)
}
