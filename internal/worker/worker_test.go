package worker

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPool(t *testing.T) {
	p := NewPool(3)
	var mu sync.Mutex
	count := 0
	for i := 0; i < 5; i++ {
		p.Submit(func() {
			mu.Lock()
			count++
			mu.Unlock()
		})
	}
	p.Stop()
	require.Equal(t, 5, count)
}

func TestPoolDefaultsToOneWorker(t *testing.T) {
	p := NewPool(0)
	done := false
	p.Submit(func() { done = true })
	p.Stop()
	require.True(t, done)
}

func TestMapOrdered(t *testing.T) {
	p := NewPool(4)
	defer p.Stop()

	out, err := MapOrdered(p, 6, func(i int) (string, error) {
		return fmt.Sprintf("part-%d", i), nil
	})
	require.NoError(t, err)
	require.Equal(t, []string{"part-0", "part-1", "part-2", "part-3", "part-4", "part-5"}, out)
}

func TestMapOrderedError(t *testing.T) {
	p := NewPool(2)
	defer p.Stop()

	boom := errors.New("boom")
	_, err := MapOrdered(p, 4, func(i int) (int, error) {
		if i == 2 {
			return 0, boom
		}
		return i, nil
	})
	require.ErrorIs(t, err, boom)
}

func TestMapOrderedEmpty(t *testing.T) {
	p := NewPool(1)
	defer p.Stop()

	out, err := MapOrdered(p, 0, func(i int) (int, error) { return i, nil })
	require.NoError(t, err)
	require.Empty(t, out)
}
