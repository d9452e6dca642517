package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPagination(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		p := DefaultPagination()
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 10, p.Limit)
		assert.Equal(t, "_id", p.SortBy)
	})

	t.Run("Skip", func(t *testing.T) {
		p := PaginationParams{Page: 3, Limit: 20}
		assert.Equal(t, int64(40), p.GetSkip())
	})

	t.Run("SortOrder", func(t *testing.T) {
		p := PaginationParams{SortBy: "createdAt", Order: "desc"}
		assert.Equal(t, map[string]int{"createdAt": -1}, p.GetSortOrder())

		p.Order = "asc"
		assert.Equal(t, map[string]int{"createdAt": 1}, p.GetSortOrder())
	})

	t.Run("Response", func(t *testing.T) {
		p := PaginationParams{Page: 2, Limit: 10}
		resp := NewPaginatedResponse([]string{"a"}, 25, p)

		assert.Equal(t, int64(25), resp.Total)
		assert.Equal(t, 3, resp.TotalPages)
		assert.True(t, resp.HasNext)
		assert.True(t, resp.HasPrevious)
	})

	t.Run("NormalizeClampsNonPositiveValues", func(t *testing.T) {
		p := PaginationParams{Page: 0, Limit: 0}
		p.Normalize()
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 10, p.Limit)

		p = PaginationParams{Page: -3, Limit: -50}
		p.Normalize()
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 10, p.Limit)
	})

	t.Run("ZeroLimitResponse", func(t *testing.T) {
		// ?limit=0 from the query string must not blow up the page math.
		p := PaginationParams{Page: 0, Limit: 0}
		resp := NewPaginatedResponse(nil, 25, p)

		assert.Equal(t, 1, resp.Page)
		assert.Equal(t, 10, resp.Limit)
		assert.Equal(t, 3, resp.TotalPages)
		assert.True(t, resp.HasNext)
		assert.False(t, resp.HasPrevious)
	})

	t.Run("TotalPages", func(t *testing.T) {
		p := PaginationParams{Page: 1, Limit: 10}
		assert.Equal(t, 0, p.TotalPages(0))
		assert.Equal(t, 1, p.TotalPages(10))
		assert.Equal(t, 2, p.TotalPages(11))
	})

	t.Run("SkipClampsNonPositiveValues", func(t *testing.T) {
		p := PaginationParams{Page: -1, Limit: 0}
		assert.Equal(t, int64(0), p.GetSkip())
	})
}
