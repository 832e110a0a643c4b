// Package order contains order-related use cases and the pure query engine
// (filter, sort, paginate) they compose.
package order

import (
	"strings"
	"time"

	domainerror "github.com/orderdash/backend/internal/domain/error"

	"github.com/orderdash/backend/internal/domain/entity"
)

// FilterCriteria describes an order filter. All fields are optional and
// combine with AND semantics across groups; the values inside a set combine
// with OR. An empty set places no constraint.
type FilterCriteria struct {
	// Search is matched case-insensitively as a substring against order id,
	// order number, customer name/phone/email, employee name, user name and
	// every line item's item and category name. Empty matches everything.
	Search          string
	Statuses        []entity.OrderStatus
	PaymentStatuses []entity.PaymentStatus
	PaymentMethods  []string
	// CategoryIDs matches orders where any line item belongs to one of the
	// given categories. An order with no items never matches.
	CategoryIDs []string
	// StartDate and EndDate bound order_date inclusively. They are required
	// together.
	StartDate *time.Time
	EndDate   *time.Time
}

// Validate rejects criteria that would produce nonsense output. Malformed
// but well-typed input (empty sets, missing fields) is never an error.
func (c FilterCriteria) Validate() error {
	if (c.StartDate == nil) != (c.EndDate == nil) {
		return domainerror.NewQueryError(
			domainerror.ErrCodeIncompleteDateRange,
			"start_date and end_date are both required",
			domainerror.ErrIncompleteDateRange,
		)
	}
	if c.StartDate != nil && c.StartDate.After(*c.EndDate) {
		return domainerror.NewQueryError(
			domainerror.ErrCodeInvalidDateRange,
			"start_date must not be after end_date",
			domainerror.ErrInvalidDateRange,
		)
	}
	return nil
}

// ApplyFilter returns the orders matching the criteria. It is a pure
// function: the input slice and its records are never mutated.
func ApplyFilter(orders []*entity.Order, criteria FilterCriteria) []*entity.Order {
	search := strings.ToLower(strings.TrimSpace(criteria.Search))

	result := make([]*entity.Order, 0, len(orders))
	for _, o := range orders {
		if !matchesSet(string(o.Status), statusValues(criteria.Statuses)) {
			continue
		}
		if !matchesSet(string(o.PaymentStatus), paymentStatusValues(criteria.PaymentStatuses)) {
			continue
		}
		if !matchesSet(o.PaymentMethod, criteria.PaymentMethods) {
			continue
		}
		if !matchesCategories(o, criteria.CategoryIDs) {
			continue
		}
		if !matchesDateRange(o, criteria.StartDate, criteria.EndDate) {
			continue
		}
		if !matchesSearch(o, search) {
			continue
		}
		result = append(result, o)
	}
	return result
}

// matchesSet reports whether value is a member of the set. An empty set
// places no constraint.
func matchesSet(value string, set []string) bool {
	if len(set) == 0 {
		return true
	}
	for _, candidate := range set {
		if candidate == value {
			return true
		}
	}
	return false
}

// matchesCategories reports whether any line item belongs to one of the
// given category ids. An order with no items cannot match a non-empty set.
func matchesCategories(o *entity.Order, categoryIDs []string) bool {
	if len(categoryIDs) == 0 {
		return true
	}
	for _, item := range o.Items {
		for _, id := range categoryIDs {
			if item.CategoryID == id {
				return true
			}
		}
	}
	return false
}

// matchesDateRange checks order_date against the inclusive [start, end] range.
func matchesDateRange(o *entity.Order, start, end *time.Time) bool {
	if start == nil || end == nil {
		return true
	}
	if o.OrderDate.Before(*start) {
		return false
	}
	return !o.OrderDate.After(*end)
}

// matchesSearch checks the fixed set of searchable fields for a
// case-insensitive substring match. An empty term matches everything.
func matchesSearch(o *entity.Order, search string) bool {
	if search == "" {
		return true
	}
	fields := []string{
		o.ID,
		o.OrderNumber,
		o.Customer.Name,
		o.Customer.Phone,
		o.Customer.Email,
		o.EmployeeName,
		o.UserName,
	}
	for _, item := range o.Items {
		fields = append(fields, item.ItemName, item.CategoryName)
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

func statusValues(statuses []entity.OrderStatus) []string {
	values := make([]string, len(statuses))
	for i, s := range statuses {
		values[i] = string(s)
	}
	return values
}

func paymentStatusValues(statuses []entity.PaymentStatus) []string {
	values := make([]string, len(statuses))
	for i, s := range statuses {
		values[i] = string(s)
	}
	return values
}
