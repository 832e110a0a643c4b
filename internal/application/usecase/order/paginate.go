package order

import "github.com/orderdash/backend/internal/domain/entity"

// Paginate returns the 1-based page of the given size. A page beyond the
// available range yields an empty slice, not an error. Callers that change
// any filter criterion or the page size must reset to page 1; a stale page
// pointing past the new, smaller result set is the most common caller bug.
func Paginate(orders []*entity.Order, page, pageSize int) []*entity.Order {
	if page < 1 || pageSize < 1 {
		return []*entity.Order{}
	}
	start := (page - 1) * pageSize
	if start >= len(orders) {
		return []*entity.Order{}
	}
	end := start + pageSize
	if end > len(orders) {
		end = len(orders)
	}
	result := make([]*entity.Order, end-start)
	copy(result, orders[start:end])
	return result
}
