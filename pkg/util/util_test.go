package util

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTrimStringKeepsRunesWhole(t *testing.T) {
	assert.Equal(t, "abc", TrimString("abc", 10))
	assert.Equal(t, "ab", TrimString("abcdef", 2))
	// 地 is three bytes, cutting at 4 must fall back to 3
	assert.Equal(t, "地", TrimString("地铁", 4))
}

func TestRemoveDuplicateStrings(t *testing.T) {
	assert.Equal(t, []string{"Japan", "China"}, RemoveDuplicateStrings([]string{"Japan", "", "China", "Japan", "France"}, []string{"France"}))
}

func TestChunk(t *testing.T) {
	assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, Chunk([]int{1, 2, 3, 4, 5}, 2))
	assert.Nil(t, Chunk([]int{}, 5))
	assert.Equal(t, [][]int{{1}, {2}}, Chunk([]int{1, 2}, 0))
}

func TestInPlaceFilter(t *testing.T) {
	s := []int{1, 2, 3, 4}
	InPlaceFilter(&s, func(i int) bool { return i%2 == 0 })
	assert.Equal(t, []int{2, 4}, s)
}

func TestSleepReturnsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := Sleep(ctx, time.Minute)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second)
}

func TestEnvironmentOrDefault(t *testing.T) {
	env := map[string]string{"SET": "value", "EMPTY": ""}

	assert.Equal(t, "value", EnvironmentOrDefault(env, "SET", "fallback"))
	assert.Equal(t, "fallback", EnvironmentOrDefault(env, "EMPTY", "fallback"))
	assert.Equal(t, "fallback", EnvironmentOrDefault(env, "MISSING", "fallback"))
}
