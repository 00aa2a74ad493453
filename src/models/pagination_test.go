package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginationNormalize(t *testing.T) {
	t.Run("ClampsZeroAndNegative", func(t *testing.T) {
		p := PaginationParams{Page: 0, Limit: 0}
		p.Normalize()
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 10, p.Limit)

		p = PaginationParams{Page: -3, Limit: -1}
		p.Normalize()
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 10, p.Limit)
	})

	t.Run("KeepsValidValues", func(t *testing.T) {
		p := PaginationParams{Page: 4, Limit: 25}
		p.Normalize()
		assert.Equal(t, 4, p.Page)
		assert.Equal(t, 25, p.Limit)
	})
}

func TestPaginationSkipAndSort(t *testing.T) {
	p := PaginationParams{Page: 3, Limit: 10, SortBy: "name", Order: "desc"}
	assert.Equal(t, int64(20), p.GetSkip())
	assert.Equal(t, map[string]int{"name": -1}, p.GetSortOrder())

	p.Order = "asc"
	assert.Equal(t, map[string]int{"name": 1}, p.GetSortOrder())
}
