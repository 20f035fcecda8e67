package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListFiltersByStatus(t *testing.T) {
	result := List(Seed(), ListRequest{Status: "shipped", PerPage: 10, Page: 1})

	// The seed carries 8 shipped orders, all on one page
	assert.Equal(t, 8, result.Pagination.Total)
	assert.Equal(t, 1, result.Pagination.TotalPages)
	assert.Len(t, result.Orders, 8)
	for _, o := range result.Orders {
		assert.Equal(t, StatusShipped, o.Status)
	}
}

func TestListSearchMatchesNameOrID(t *testing.T) {
	byName := List(Seed(), ListRequest{Search: "carlee"})
	require.Len(t, byName.Orders, 1)
	assert.Equal(t, "3210", byName.Orders[0].ID)

	byID := List(Seed(), ListRequest{Search: "3225"})
	require.Len(t, byID.Orders, 1)
	assert.Equal(t, "Amanda White", byID.Orders[0].Name)

	// Search and status filter combine
	both := List(Seed(), ListRequest{Status: "shipped", Search: "32"})
	assert.Equal(t, 8, both.Pagination.Total)
}

func TestListSortByDateDefault(t *testing.T) {
	result := List(Seed(), ListRequest{PerPage: 30})

	require.Len(t, result.Orders, 30)
	assert.Equal(t, "May 23, 2021", result.Orders[0].Date)
	assert.Equal(t, "March 5, 2021", result.Orders[29].Date)

	for i := 1; i < len(result.Orders); i++ {
		prev := parseDate(result.Orders[i-1].Date)
		cur := parseDate(result.Orders[i].Date)
		assert.False(t, cur.After(prev), "orders must be date-descending")
	}
}

func TestListSortByTotal(t *testing.T) {
	result := List(Seed(), ListRequest{SortBy: SortByTotal, PerPage: 30})

	require.Len(t, result.Orders, 30)
	for i := 1; i < len(result.Orders); i++ {
		assert.GreaterOrEqual(t, result.Orders[i-1].Total, result.Orders[i].Total)
	}
}

func TestListSortByName(t *testing.T) {
	result := List(Seed(), ListRequest{SortBy: SortByName, PerPage: 30})

	require.Len(t, result.Orders, 30)
	for i := 1; i < len(result.Orders); i++ {
		assert.LessOrEqual(t, result.Orders[i-1].Name, result.Orders[i].Name)
	}
}

func TestListUnparseableDateSortsLast(t *testing.T) {
	orders := []Order{
		{ID: "1", Name: "A", Date: "garbage", Total: 1, Status: StatusProcessing},
		{ID: "2", Name: "B", Date: "May 1, 2021", Total: 2, Status: StatusProcessing},
	}

	result := List(orders, ListRequest{})
	require.Len(t, result.Orders, 2)
	assert.Equal(t, "2", result.Orders[0].ID)
	assert.Equal(t, "1", result.Orders[1].ID)
}

func TestListPagination(t *testing.T) {
	result := List(Seed(), ListRequest{PerPage: 10, Page: 1})
	assert.Len(t, result.Orders, 10)
	assert.Equal(t, 3, result.Pagination.TotalPages)
	assert.True(t, result.Pagination.HasNext)
	assert.False(t, result.Pagination.HasPrev)

	last := List(Seed(), ListRequest{PerPage: 10, Page: 3})
	assert.Len(t, last.Orders, 10)
	assert.False(t, last.Pagination.HasNext)
	assert.True(t, last.Pagination.HasPrev)

	// A page past the end yields an empty slice, not an error
	beyond := List(Seed(), ListRequest{PerPage: 10, Page: 7})
	assert.Empty(t, beyond.Orders)
	assert.Equal(t, 3, beyond.Pagination.TotalPages)
}

func TestListTotalPagesIsCeiling(t *testing.T) {
	result := List(Seed()[:25], ListRequest{PerPage: 10})
	assert.Equal(t, 3, result.Pagination.TotalPages)

	empty := List(nil, ListRequest{PerPage: 10})
	assert.Equal(t, 0, empty.Pagination.TotalPages)
	assert.Empty(t, empty.Orders)
}

func TestListIsDeterministic(t *testing.T) {
	req := ListRequest{Status: "processing", SortBy: SortByTotal, Search: "a", PerPage: 5, Page: 1}

	first := List(Seed(), req)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, List(Seed(), req))
	}
}

func TestListStableSortKeepsTies(t *testing.T) {
	orders := []Order{
		{ID: "1", Name: "Same", Date: "May 1, 2021", Total: 10, Status: StatusProcessing},
		{ID: "2", Name: "Same", Date: "May 1, 2021", Total: 10, Status: StatusProcessing},
		{ID: "3", Name: "Same", Date: "May 1, 2021", Total: 10, Status: StatusProcessing},
	}

	for _, sortBy := range []string{SortByDate, SortByTotal, SortByName} {
		result := List(orders, ListRequest{SortBy: sortBy})
		require.Len(t, result.Orders, 3)
		assert.Equal(t, "1", result.Orders[0].ID)
		assert.Equal(t, "2", result.Orders[1].ID)
		assert.Equal(t, "3", result.Orders[2].ID)
	}
}
