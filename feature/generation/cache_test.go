package generation

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheEntry_IsExpired(t *testing.T) {
	assert.True(t, (&cacheEntry{built: time.Now()}).IsExpired())
	assert.False(t, (&cacheEntry{built: time.Now(), ttl: time.Minute}).IsExpired())
	assert.True(t, (&cacheEntry{built: time.Now().Add(-2 * time.Minute), ttl: time.Minute}).IsExpired())
}

// TestResultCache_Singleflight tests that concurrent callers share one run.
func TestResultCache_Singleflight(t *testing.T) {
	c := newResultCache(time.Minute)
	var runs atomic.Int32
	release := make(chan struct{})

	run := func() (*Result, error) {
		runs.Add(1)
		<-release
		return &Result{ID: uuid.New()}, nil
	}

	var wg sync.WaitGroup
	results := make([]*Result, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, _, err := c.getOrRun("key", run)
			assert.NoError(t, err)
			results[i] = res
		}(i)
	}
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), runs.Load())
	for _, res := range results {
		assert.Same(t, results[0], res)
	}

	res, hit, err := c.getOrRun("key", run)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Same(t, results[0], res)
	assert.Equal(t, int32(1), runs.Load())
}

func TestResultCache_NoTTL(t *testing.T) {
	c := newResultCache(0)
	runs := 0
	run := func() (*Result, error) {
		runs++
		return &Result{ID: uuid.New()}, nil
	}

	a, _, _ := c.getOrRun("key", run)
	b, hit, _ := c.getOrRun("key", run)
	assert.False(t, hit)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 2, runs)
}

func TestResultCache_ErrorsAreNotCached(t *testing.T) {
	c := newResultCache(time.Minute)
	_, _, err := c.getOrRun("key", func() (*Result, error) { return nil, errors.New("boom") })
	assert.Error(t, err)

	res, hit, err := c.getOrRun("key", func() (*Result, error) { return &Result{Seed: 1}, nil })
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, uint64(1), res.Seed)
}

func TestResultCache_InvalidateAndSweep(t *testing.T) {
	c := newResultCache(time.Minute)
	id := uuid.New()
	_, _, _ = c.getOrRun("a", func() (*Result, error) { return &Result{ID: id}, nil })
	_, _, _ = c.getOrRun("b", func() (*Result, error) { return &Result{ID: uuid.New()}, nil })

	c.invalidate(id.String())
	_, ok := c.lookup("a")
	assert.False(t, ok)
	_, ok = c.lookup("b")
	assert.True(t, ok)

	c.entries["b"].built = time.Now().Add(-time.Hour)
	assert.Equal(t, 1, c.sweep())
	assert.Empty(t, c.entries)
}
