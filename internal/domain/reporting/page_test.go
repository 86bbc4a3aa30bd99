package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erp/odoo-dashboard/internal/domain/shared"
)

func TestPageRequestNormalize(t *testing.T) {
	req := PageRequest{DateFrom: "2025-01-01", DateTo: "2025-01-31"}
	req.Normalize()
	assert.Equal(t, DefaultPage, req.Page)
	assert.Equal(t, DefaultPageSize, req.PageSize)

	req = PageRequest{Page: 3, PageSize: 25}
	req.Normalize()
	assert.Equal(t, 3, req.Page)
	assert.Equal(t, 25, req.PageSize)
}

func TestPageRequestValidate(t *testing.T) {
	err := PageRequest{DateFrom: "2025-01-01"}.Validate()
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, shared.ErrValidation.Code, domainErr.Code)

	assert.NoError(t, PageRequest{DateFrom: "2025-01-01", DateTo: "2025-01-31"}.Validate())
}

func TestPageRequestOffset(t *testing.T) {
	req := PageRequest{Page: 3, PageSize: 10}
	assert.Equal(t, 20, req.Offset())
}

func TestNewPagination(t *testing.T) {
	t.Run("partial last page", func(t *testing.T) {
		p := NewPagination(1, 10, 25)
		assert.Equal(t, 3, p.TotalPages)
		assert.True(t, p.HasNext)
		assert.False(t, p.HasPrev)
	})

	t.Run("empty result still has one page", func(t *testing.T) {
		p := NewPagination(1, 10, 0)
		assert.Equal(t, 1, p.TotalPages)
		assert.False(t, p.HasNext)
		assert.False(t, p.HasPrev)
	})

	t.Run("middle page has both neighbours", func(t *testing.T) {
		p := NewPagination(2, 2, 5)
		assert.Equal(t, 3, p.TotalPages)
		assert.True(t, p.HasNext)
		assert.True(t, p.HasPrev)
	})

	t.Run("exact division", func(t *testing.T) {
		p := NewPagination(2, 10, 20)
		assert.Equal(t, 2, p.TotalPages)
		assert.False(t, p.HasNext)
	})
}
