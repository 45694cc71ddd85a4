package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCache(t *testing.T) {
	t.Run("miss then hit", func(t *testing.T) {
		cache := NewCache(time.Minute)

		_, ok := cache.Get("leaderboard")
		assert.False(t, ok)

		cache.Set("leaderboard", []int{1, 2, 3})
		value, ok := cache.Get("leaderboard")
		assert.True(t, ok)
		assert.Equal(t, []int{1, 2, 3}, value)
	})

	t.Run("entries expire", func(t *testing.T) {
		cache := NewCache(10 * time.Millisecond)
		cache.Set("leaderboard", "rows")

		time.Sleep(20 * time.Millisecond)
		_, ok := cache.Get("leaderboard")
		assert.False(t, ok)
	})

	t.Run("clear drops everything", func(t *testing.T) {
		cache := NewCache(time.Minute)
		cache.Set("a", 1)
		cache.Set("b", 2)
		cache.Clear()

		_, okA := cache.Get("a")
		_, okB := cache.Get("b")
		assert.False(t, okA)
		assert.False(t, okB)
	})
}
