package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShuffle_Deterministic(t *testing.T) {
	a := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	b := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	Shuffle(New(42), a)
	Shuffle(New(42), b)

	assert.Equal(t, a, b)
	assert.ElementsMatch(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, a)
}

func TestSample(t *testing.T) {
	pop := []string{"a", "b", "c", "d", "e"}

	t.Run("Distinct", func(t *testing.T) {
		got, err := Sample(New(7), pop, 3)
		require.NoError(t, err)
		assert.Len(t, got, 3)
		seen := map[string]bool{}
		for _, v := range got {
			assert.False(t, seen[v], "duplicate %s", v)
			seen[v] = true
		}
		assert.Equal(t, []string{"a", "b", "c", "d", "e"}, pop, "population must not be modified")
	})

	t.Run("Whole Population", func(t *testing.T) {
		got, err := Sample(New(7), pop, len(pop))
		require.NoError(t, err)
		assert.ElementsMatch(t, pop, got)
	})

	t.Run("Too Many", func(t *testing.T) {
		_, err := Sample(New(7), pop, 6)
		assert.Error(t, err)
	})

	t.Run("Same Seed Same Draw", func(t *testing.T) {
		a, _ := Sample(New(99), pop, 2)
		b, _ := Sample(New(99), pop, 2)
		assert.Equal(t, a, b)
	})
}

func TestNewSeed(t *testing.T) {
	for i := 0; i < 100; i++ {
		s := NewSeed()
		assert.NotZero(t, s)
		assert.Less(t, s, uint64(1)<<63)
	}
}
