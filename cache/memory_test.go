package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryCachesUntilInvalidated(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	computes := 0
	read := func() ([]int, error) {
		var out []int
		err := m.GetOrCompute(ctx, "nums", []string{TagItems}, &out, func() (interface{}, error) {
			computes++
			return []int{1, 2, 3}, nil
		})
		return out, err
	}

	out, err := read()
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, out)
	require.Equal(t, 1, computes)

	// Second read is a hit.
	_, err = read()
	require.NoError(t, err)
	require.Equal(t, 1, computes)

	// Invalidating an unrelated tag changes nothing.
	m.Invalidate(ctx, TagOrders)
	_, err = read()
	require.NoError(t, err)
	require.Equal(t, 1, computes)

	// Invalidating a carried tag forces a recompute.
	m.Invalidate(ctx, TagItems)
	_, err = read()
	require.NoError(t, err)
	require.Equal(t, 2, computes)
}

func TestMemoryEitherTagInvalidates(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	computes := 0
	read := func() error {
		var out string
		return m.GetOrCompute(ctx, "cart:details:1", []string{TagCart, TagItems}, &out, func() (interface{}, error) {
			computes++
			return "cart", nil
		})
	}

	require.NoError(t, read())
	require.NoError(t, read())
	require.Equal(t, 1, computes)

	m.Invalidate(ctx, TagItems)
	require.NoError(t, read())
	require.Equal(t, 2, computes)

	m.Invalidate(ctx, TagCart)
	require.NoError(t, read())
	require.Equal(t, 3, computes)
}

func TestMemoryComputeErrorNotCached(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	var out int
	calls := 0
	compute := func() (interface{}, error) {
		calls++
		if calls == 1 {
			return nil, context.DeadlineExceeded
		}
		return 9, nil
	}

	err := m.GetOrCompute(ctx, "k", []string{TagOrders}, &out, compute)
	require.Error(t, err)

	require.NoError(t, m.GetOrCompute(ctx, "k", []string{TagOrders}, &out, compute))
	require.Equal(t, 9, out)
	require.Equal(t, 2, calls)
}
