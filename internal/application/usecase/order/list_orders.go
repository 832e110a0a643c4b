package order

import (
	"context"

	"github.com/orderdash/backend/internal/application/adapter"
	"github.com/orderdash/backend/internal/domain/entity"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// ListOrdersInput represents the input for listing orders.
type ListOrdersInput struct {
	Criteria      FilterCriteria
	SortColumn    SortColumn
	SortDirection SortDirection
	Page          int
	PageSize      int
}

// PaginationOutput represents pagination information in the output.
type PaginationOutput struct {
	Page       int
	PageSize   int
	Total      int
	TotalPages int
}

// ListOrdersOutput represents the output of listing orders. Sort echoes the
// state the listing was produced with so clients can render the toggle.
type ListOrdersOutput struct {
	Orders     []*entity.Order
	Pagination PaginationOutput
	Sort       SortState
}

// ListOrdersUseCase composes the query pipeline: repository contents are
// filtered, sorted and paginated into a table slice. The analytics path
// shares ApplyFilter, so table and report views always agree on which
// orders are in scope.
type ListOrdersUseCase struct {
	orderRepo adapter.OrderRepository
}

// NewListOrdersUseCase creates a new ListOrdersUseCase instance.
func NewListOrdersUseCase(orderRepo adapter.OrderRepository) *ListOrdersUseCase {
	return &ListOrdersUseCase{
		orderRepo: orderRepo,
	}
}

// Execute performs the order listing.
func (uc *ListOrdersUseCase) Execute(ctx context.Context, input ListOrdersInput) (*ListOrdersOutput, error) {
	if err := input.Criteria.Validate(); err != nil {
		return nil, err
	}

	page := input.Page
	if page < 1 {
		page = 1
	}
	pageSize := input.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	orders, err := uc.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := ApplyFilter(orders, input.Criteria)

	sorted, err := SortOrders(filtered, input.SortColumn, input.SortDirection)
	if err != nil {
		return nil, err
	}

	total := len(sorted)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}

	return &ListOrdersOutput{
		Orders: Paginate(sorted, page, pageSize),
		Pagination: PaginationOutput{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
		},
		Sort: SortState{
			Column:    input.SortColumn,
			Direction: input.SortDirection,
		},
	}, nil
}
