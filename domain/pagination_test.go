package domain_test

import (
	"testing"

	"github.com/deadtood/appcore/domain"
	"github.com/stretchr/testify/require"
)

func TestNewPage(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i
	}

	t.Run("middle page", func(t *testing.T) {
		page := domain.NewPage(items, domain.Pagination{Page: 2, Limit: 10})
		require.Len(t, page.Items, 10)
		require.Equal(t, 10, page.Items[0])
		require.Equal(t, 25, page.Total)
		require.Equal(t, 3, page.TotalPages)
		require.True(t, page.HasNext)
		require.True(t, page.HasPrev)
	})

	t.Run("page beyond the end is empty", func(t *testing.T) {
		page := domain.NewPage(items, domain.Pagination{Page: 9, Limit: 10})
		require.Empty(t, page.Items)
		require.Equal(t, 25, page.Total)
		require.False(t, page.HasNext)
	})

	t.Run("zero values take the defaults", func(t *testing.T) {
		page := domain.NewPage(items, domain.Pagination{})
		require.Len(t, page.Items, domain.DefaultLimit)
		require.Equal(t, domain.DefaultPage, page.Page)
		require.False(t, page.HasPrev)
	})
}

func TestSinglePage(t *testing.T) {
	page := domain.SinglePage([]string{"a", "b"})
	require.Equal(t, 2, page.Total)
	require.Equal(t, 1, page.Page)
	require.Equal(t, 1, page.TotalPages)
	require.False(t, page.HasNext)
	require.False(t, page.HasPrev)
}
