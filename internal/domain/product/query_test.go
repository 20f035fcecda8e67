package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListToolbarCategoryFilter(t *testing.T) {
	result := List(Seed(), ListRequest{Category: "beverages"})

	assert.Equal(t, 2, result.Pagination.Total)
	for _, p := range result.Products {
		assert.Equal(t, "beverages", p.Category)
	}

	all := List(Seed(), ListRequest{Category: CategoryAll})
	assert.Equal(t, 6, all.Pagination.Total)
}

func TestListSearchOnName(t *testing.T) {
	result := List(Seed(), ListRequest{Search: "pizza"})
	require.Len(t, result.Products, 1)
	assert.Equal(t, 5, result.Products[0].ID)

	none := List(Seed(), ListRequest{Search: "zzz"})
	assert.Empty(t, none.Products)
	assert.Equal(t, 0, none.Pagination.TotalPages)
}

func TestListSidebarKeyword(t *testing.T) {
	result := List(Seed(), ListRequest{Sidebar: &SidebarFilters{
		Keyword:    "juice",
		PriceRange: [2]float64{1, 2000},
	}})

	require.Len(t, result.Products, 1)
	assert.Equal(t, 1, result.Products[0].ID)
}

func TestListSidebarCategories(t *testing.T) {
	sidebar := &SidebarFilters{
		Categories: []string{"snacks", "beverages"},
		PriceRange: [2]float64{1, 2000},
	}
	result := List(Seed(), ListRequest{Sidebar: sidebar})
	assert.Equal(t, 3, result.Pagination.Total)

	// "all" in the sidebar category list disables the check
	sidebar.Categories = []string{"all"}
	result = List(Seed(), ListRequest{Sidebar: sidebar})
	assert.Equal(t, 6, result.Pagination.Total)
}

func TestListSidebarPriceRangeInclusive(t *testing.T) {
	result := List(Seed(), ListRequest{Sidebar: &SidebarFilters{
		PriceRange: [2]float64{10.00, 30.00},
	}})

	// Both bounds are inclusive: the 10.00 tortillas and 30.00 pizza pass
	require.Len(t, result.Products, 3)
	ids := []int{result.Products[0].ID, result.Products[1].ID, result.Products[2].ID}
	assert.Equal(t, []int{4, 5, 6}, ids)
}

func TestListSidebarColors(t *testing.T) {
	products := append(Seed(), Product{ID: 7, Name: "Colorless", Price: 50, Category: "food"})

	result := List(products, ListRequest{Sidebar: &SidebarFilters{
		Colors:     []string{"orange", "blue"},
		PriceRange: [2]float64{1, 2000},
	}})
	assert.Equal(t, 2, result.Pagination.Total)

	// A product without a color fails any non-empty color filter
	for _, p := range result.Products {
		assert.NotEmpty(t, p.Color)
	}

	// An empty color list disables the check
	noFilter := List(products, ListRequest{Sidebar: &SidebarFilters{PriceRange: [2]float64{1, 2000}}})
	assert.Equal(t, 7, noFilter.Pagination.Total)
}

func TestListSortPrice(t *testing.T) {
	low := List(Seed(), ListRequest{Sort: SortPriceLow})
	require.Len(t, low.Products, 6)
	for i := 1; i < len(low.Products); i++ {
		assert.LessOrEqual(t, low.Products[i-1].Price, low.Products[i].Price)
	}

	high := List(Seed(), ListRequest{Sort: SortPriceHigh})
	for i := 1; i < len(high.Products); i++ {
		assert.GreaterOrEqual(t, high.Products[i-1].Price, high.Products[i].Price)
	}
}

func TestListSortRating(t *testing.T) {
	result := List(Seed(), ListRequest{Sort: SortRating})

	require.Len(t, result.Products, 6)
	assert.Equal(t, 3, result.Products[0].ID) // the only 5-star product
	for i := 1; i < len(result.Products); i++ {
		assert.GreaterOrEqual(t, result.Products[i-1].Rating, result.Products[i].Rating)
	}
}

func TestListDefaultSortKeepsCatalogOrder(t *testing.T) {
	result := List(Seed(), ListRequest{Sort: SortDefault})

	require.Len(t, result.Products, 6)
	for i, p := range result.Products {
		assert.Equal(t, i+1, p.ID)
	}
}

func TestListPagination(t *testing.T) {
	first := List(Seed(), ListRequest{PerPage: 4, Page: 1})
	assert.Len(t, first.Products, 4)
	assert.Equal(t, 2, first.Pagination.TotalPages)
	assert.True(t, first.Pagination.HasNext)

	second := List(Seed(), ListRequest{PerPage: 4, Page: 2})
	assert.Len(t, second.Products, 2)
	assert.False(t, second.Pagination.HasNext)

	beyond := List(Seed(), ListRequest{PerPage: 4, Page: 9})
	assert.Empty(t, beyond.Products)
}

func TestListIsDeterministic(t *testing.T) {
	req := ListRequest{
		Search:   "a",
		Category: "food",
		Sort:     SortPriceLow,
		PerPage:  2,
		Page:     1,
		Sidebar:  &SidebarFilters{PriceRange: [2]float64{1, 2000}},
	}

	first := List(Seed(), req)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, List(Seed(), req))
	}
}
