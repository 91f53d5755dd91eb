package paginator_test

import (
	"testing"

	"github.com/inkstream/inkstream/pkg/internal/paginator"
	"github.com/stretchr/testify/require"
)

func TestPaginatePartitionsAllItems(t *testing.T) {
	items := make([]int, 13)
	for i := range items {
		items[i] = i
	}

	first := paginator.Paginate(items, 1, 10)
	require.Len(t, first.Items, 10)
	require.Equal(t, 2, first.TotalPages)
	require.True(t, first.HasNext())
	require.False(t, first.HasPrev())

	second := paginator.Paginate(items, 2, 10)
	require.Len(t, second.Items, 3)
	require.False(t, second.HasNext())
	require.True(t, second.HasPrev())
	require.Equal(t, 1, second.PrevNumber())

	// Both pages together cover every item exactly once, in order.
	var seen []int
	seen = append(seen, first.Items...)
	seen = append(seen, second.Items...)
	require.Equal(t, items, seen)
}

func TestPaginateClampsOutOfRange(t *testing.T) {
	items := []int{1, 2, 3}

	require.Equal(t, 1, paginator.Paginate(items, 0, 2).Number)
	require.Equal(t, 1, paginator.Paginate(items, -5, 2).Number)
	require.Equal(t, 2, paginator.Paginate(items, 99, 2).Number)
	require.Equal(t, []int{3}, paginator.Paginate(items, 99, 2).Items)
}

func TestPaginateEmptyCollection(t *testing.T) {
	page := paginator.Paginate([]int{}, 1, 10)
	require.Empty(t, page.Items)
	require.Equal(t, 1, page.Number)
	require.Equal(t, 1, page.TotalPages)
	require.False(t, page.HasNext())
	require.False(t, page.HasPrev())
}

func TestPaginateDoesNotMutate(t *testing.T) {
	items := []int{5, 4, 3, 2, 1}
	snapshot := append([]int(nil), items...)

	_ = paginator.Paginate(items, 2, 2)

	require.Equal(t, snapshot, items)
}
