package store

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordhunt/internal/hunt"
)

func TestSaveAndGet(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(4)

	require.NoError(t, s.Save(ctx, "fp", "abcdefghijklmnop", hunt.Found{2: {"fa", "ab"}}))
	got, err := s.Get(ctx, "fp", "abcdefghijklmnop")
	require.NoError(t, err)
	assert.Equal(t, hunt.Found{2: {"ab", "fa"}}, got)

	_, err = s.Get(ctx, "other", "abcdefghijklmnop")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(4)
	require.NoError(t, s.Save(ctx, "fp", "x", hunt.Found{2: {"ab"}}))

	got, _ := s.Get(ctx, "fp", "x")
	got[2][0] = "zz"
	again, _ := s.Get(ctx, "fp", "x")
	assert.Equal(t, []string{"ab"}, again[2])
}

func TestEvictsOldest(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(2)
	for _, l := range []string{"a", "b", "c"} {
		require.NoError(t, s.Save(ctx, "fp", l, hunt.Found{}))
	}
	assert.Equal(t, 2, s.Len())
	_, err := s.Get(ctx, "fp", "a")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.Get(ctx, "fp", "c")
	assert.NoError(t, err)
}

func TestReplaceDoesNotGrow(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(2)
	require.NoError(t, s.Save(ctx, "fp", "a", hunt.Found{}))
	require.NoError(t, s.Save(ctx, "fp", "a", hunt.Found{2: {"ab"}}))
	assert.Equal(t, 1, s.Len())
}

func TestDefaultLimit(t *testing.T) {
	m := NewMemoryStore(0).(*memory)
	assert.Equal(t, DefaultLimit, m.limit)
}

func TestConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(16)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				l := fmt.Sprintf("%d-%d", i, j%20)
				_ = s.Save(ctx, "fp", l, hunt.Found{2: {"ab"}})
				_, _ = s.Get(ctx, "fp", l)
			}
		}(i)
	}
	wg.Wait()
	assert.LessOrEqual(t, s.Len(), 16)
}
