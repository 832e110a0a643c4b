package order

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/orderdash/backend/internal/domain/entity"
	domainerror "github.com/orderdash/backend/internal/domain/error"
)

// SortDirection is the requested sort order. The empty value means "no sort
// applied": records pass through in arrival order.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
	SortNone SortDirection = ""
)

// SortColumn names a sortable order column.
type SortColumn string

const (
	SortByOrderID       SortColumn = "order_id"
	SortByOrderNumber   SortColumn = "order_number"
	SortByCustomerName  SortColumn = "customer_name"
	SortByTotalAmount   SortColumn = "total_amount"
	SortByStatus        SortColumn = "status"
	SortByPaymentStatus SortColumn = "payment_status"
	SortByPaymentMethod SortColumn = "payment_method"
	SortByEmployeeName  SortColumn = "employee_name"
	SortByUserName      SortColumn = "user_name"
	SortByOrderDate     SortColumn = "order_date"
	SortByItemCount     SortColumn = "item_count"
)

// sortKey is the typed comparison key a column accessor extracts from an
// order. Numbers compare numerically (never as strings, so "10" sorts after
// "9"), dates compare as instants, everything else falls back to a
// locale-aware string comparison with missing values as the empty string.
type sortKey struct {
	isNumber bool
	isTime   bool
	number   decimal.Decimal
	instant  time.Time
	text     string
}

func numberKey(d decimal.Decimal) sortKey { return sortKey{isNumber: true, number: d} }
func timeKey(t time.Time) sortKey         { return sortKey{isTime: true, instant: t} }
func textKey(s string) sortKey            { return sortKey{text: s} }

// columnAccessors is the single field-accessor table the engine is
// parameterized by. Dashboard variants share it instead of re-deriving the
// comparison logic per table.
var columnAccessors = map[SortColumn]func(*entity.Order) sortKey{
	SortByOrderID:       func(o *entity.Order) sortKey { return textKey(o.ID) },
	SortByOrderNumber:   func(o *entity.Order) sortKey { return textKey(o.OrderNumber) },
	SortByCustomerName:  func(o *entity.Order) sortKey { return textKey(o.Customer.Name) },
	SortByTotalAmount:   func(o *entity.Order) sortKey { return numberKey(o.TotalAmount) },
	SortByStatus:        func(o *entity.Order) sortKey { return textKey(string(o.Status)) },
	SortByPaymentStatus: func(o *entity.Order) sortKey { return textKey(string(o.PaymentStatus)) },
	SortByPaymentMethod: func(o *entity.Order) sortKey { return textKey(o.PaymentMethod) },
	SortByEmployeeName:  func(o *entity.Order) sortKey { return textKey(o.EmployeeName) },
	SortByUserName:      func(o *entity.Order) sortKey { return textKey(o.UserName) },
	SortByOrderDate:     func(o *entity.Order) sortKey { return timeKey(o.OrderDate) },
	SortByItemCount: func(o *entity.Order) sortKey {
		return numberKey(decimal.NewFromInt(int64(len(o.Items))))
	},
}

// SortOrders returns a sorted copy of the orders. The sort is stable: equal
// keys keep their relative input order. The input slice is never mutated.
// An empty direction returns the orders unchanged (copied).
func SortOrders(orders []*entity.Order, column SortColumn, direction SortDirection) ([]*entity.Order, error) {
	result := make([]*entity.Order, len(orders))
	copy(result, orders)

	// A named column must exist even when no direction is requested.
	accessor, ok := columnAccessors[column]
	if !ok && column != "" {
		return nil, domainerror.NewQueryError(
			domainerror.ErrCodeUnknownSortColumn,
			"unknown sort column: "+string(column),
			domainerror.ErrUnknownSortColumn,
		)
	}

	if direction == SortNone {
		return result, nil
	}
	if direction != SortAsc && direction != SortDesc {
		return nil, domainerror.NewQueryError(
			domainerror.ErrCodeInvalidSortDirection,
			"sort direction must be asc or desc",
			domainerror.ErrInvalidSortDirection,
		)
	}
	if !ok {
		return nil, domainerror.NewQueryError(
			domainerror.ErrCodeUnknownSortColumn,
			"unknown sort column: "+string(column),
			domainerror.ErrUnknownSortColumn,
		)
	}

	// Collators carry internal buffers and are not safe for concurrent use,
	// so each sort gets its own.
	collator := collate.New(language.Und)

	sort.SliceStable(result, func(i, j int) bool {
		cmp := compareKeys(collator, accessor(result[i]), accessor(result[j]))
		if direction == SortDesc {
			return cmp > 0
		}
		return cmp < 0
	})

	return result, nil
}

// compareKeys compares two keys of the same column and returns -1, 0 or 1.
func compareKeys(collator *collate.Collator, a, b sortKey) int {
	switch {
	case a.isNumber && b.isNumber:
		return a.number.Cmp(b.number)
	case a.isTime && b.isTime:
		if a.instant.Before(b.instant) {
			return -1
		}
		if a.instant.After(b.instant) {
			return 1
		}
		return 0
	default:
		return collator.CompareString(a.text, b.text)
	}
}

// SortState tracks the table's active sort for the three-state toggle
// discipline: repeated requests on the same column cycle asc, desc, none;
// a request on a different column resets to asc on that column.
type SortState struct {
	Column    SortColumn
	Direction SortDirection
}

// Toggle returns the next sort state after a request on the given column.
func (s SortState) Toggle(column SortColumn) SortState {
	if s.Column == column {
		switch s.Direction {
		case SortAsc:
			return SortState{Column: column, Direction: SortDesc}
		case SortDesc:
			return SortState{}
		default:
			return SortState{Column: column, Direction: SortAsc}
		}
	}
	return SortState{Column: column, Direction: SortAsc}
}
