package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, PageSize))
	assert.Equal(t, 1, TotalPages(1, PageSize))
	assert.Equal(t, 1, TotalPages(12, PageSize))
	assert.Equal(t, 2, TotalPages(13, PageSize))
	assert.Equal(t, 9, TotalPages(100, PageSize))

	// Degenerate inputs still yield one page
	assert.Equal(t, 1, TotalPages(-5, PageSize))
	assert.Equal(t, 1, TotalPages(10, 0))
}

func TestClampPage(t *testing.T) {
	// 13 items at 12 per page gives 2 pages
	assert.Equal(t, 1, ClampPage(1, 13, PageSize))
	assert.Equal(t, 2, ClampPage(2, 13, PageSize))

	// Out-of-range pages clamp instead of erroring
	assert.Equal(t, 2, ClampPage(99, 13, PageSize))
	assert.Equal(t, 1, ClampPage(0, 13, PageSize))
	assert.Equal(t, 1, ClampPage(-3, 13, PageSize))

	// Empty result set still has one page
	assert.Equal(t, 1, ClampPage(5, 0, PageSize))
}

func TestNormalizeSort(t *testing.T) {
	assert.Equal(t, SortLowestPrice, NormalizeSort("preco_menor"))
	assert.Equal(t, SortHighestPrice, NormalizeSort("preco_maior"))
	assert.Equal(t, SortNewest, NormalizeSort("mais_recentes"))
	assert.Equal(t, SortLargestArea, NormalizeSort("maior_area"))

	// Unknown or blank values fall back to relevance
	assert.Equal(t, SortRelevance, NormalizeSort(""))
	assert.Equal(t, SortRelevance, NormalizeSort("garbage"))
	assert.Equal(t, SortRelevance, NormalizeSort("relevancia"))
}
