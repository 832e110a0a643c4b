package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/cucumber/godog"
)

// registerDataSteps registers steps that seed data through the API.
func registerDataSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the following orders exist:$`, theFollowingOrdersExist)
	ctx.Step(`^the following expenses exist:$`, theFollowingExpensesExist)
}

// theFollowingOrdersExist creates orders through the public API so the whole
// stack is exercised. Table columns: order_number, customer_name,
// customer_phone, item_name, category_name, quantity, unit_price, subtotal,
// total_amount, status, payment_status, order_date. Missing columns fall
// back to zero values.
func theFollowingOrdersExist(ctx context.Context, table *godog.Table) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	if tc.accessToken == "" {
		var err error
		if ctx, err = iAmAuthenticated(ctx); err != nil {
			return ctx, err
		}
		tc = GetTestContext(ctx)
	}

	if len(table.Rows) < 2 {
		return ctx, fmt.Errorf("orders table needs a header row and at least one data row")
	}

	header := make([]string, len(table.Rows[0].Cells))
	for i, cell := range table.Rows[0].Cells {
		header[i] = cell.Value
	}

	for _, row := range table.Rows[1:] {
		cols := make(map[string]string, len(header))
		for i, cell := range row.Cells {
			cols[header[i]] = cell.Value
		}

		quantity, _ := strconv.Atoi(cols["quantity"])
		unitPrice, _ := strconv.ParseFloat(cols["unit_price"], 64)
		subtotal, _ := strconv.ParseFloat(cols["subtotal"], 64)
		if cols["subtotal"] == "" {
			subtotal = unitPrice * float64(quantity)
		}
		totalAmount, _ := strconv.ParseFloat(cols["total_amount"], 64)
		if cols["total_amount"] == "" {
			totalAmount = subtotal
		}

		payload := map[string]interface{}{
			"order_number": cols["order_number"],
			"customer": map[string]string{
				"name":  cols["customer_name"],
				"phone": cols["customer_phone"],
				"email": cols["customer_email"],
			},
			"items": []map[string]interface{}{
				{
					"item_id":       "itm-" + cols["item_name"],
					"item_name":     cols["item_name"],
					"category_id":   "cat-" + cols["category_name"],
					"category_name": cols["category_name"],
					"quantity":      quantity,
					"unit_price":    unitPrice,
					"subtotal":      subtotal,
				},
			},
			"total_amount":   totalAmount,
			"status":         cols["status"],
			"payment_status": cols["payment_status"],
			"employee_name":  cols["employee_name"],
			"user_name":      cols["user_name"],
			"order_date":     cols["order_date"],
		}

		body, err := json.Marshal(payload)
		if err != nil {
			return ctx, fmt.Errorf("failed to marshal order payload: %w", err)
		}
		if err := tc.doRequest(http.MethodPost, "/api/v1/orders", body); err != nil {
			return ctx, err
		}
		if tc.response.StatusCode != http.StatusCreated {
			return ctx, fmt.Errorf("failed to seed order %s: status %d, body %s",
				cols["order_number"], tc.response.StatusCode, string(tc.responseBody))
		}
	}

	return SetTestContext(ctx, tc), nil
}

// theFollowingExpensesExist creates expenses through the public API.
// Table columns: description, amount, expense_date.
func theFollowingExpensesExist(ctx context.Context, table *godog.Table) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	if tc.accessToken == "" {
		var err error
		if ctx, err = iAmAuthenticated(ctx); err != nil {
			return ctx, err
		}
		tc = GetTestContext(ctx)
	}

	if len(table.Rows) < 2 {
		return ctx, fmt.Errorf("expenses table needs a header row and at least one data row")
	}

	header := make([]string, len(table.Rows[0].Cells))
	for i, cell := range table.Rows[0].Cells {
		header[i] = cell.Value
	}

	for _, row := range table.Rows[1:] {
		cols := make(map[string]string, len(header))
		for i, cell := range row.Cells {
			cols[header[i]] = cell.Value
		}

		amount, _ := strconv.ParseFloat(cols["amount"], 64)
		payload := map[string]interface{}{
			"description":  cols["description"],
			"amount":       amount,
			"expense_date": cols["expense_date"],
		}

		body, err := json.Marshal(payload)
		if err != nil {
			return ctx, fmt.Errorf("failed to marshal expense payload: %w", err)
		}
		if err := tc.doRequest(http.MethodPost, "/api/v1/expenses", body); err != nil {
			return ctx, err
		}
		if tc.response.StatusCode != http.StatusCreated {
			return ctx, fmt.Errorf("failed to seed expense %s: status %d, body %s",
				cols["description"], tc.response.StatusCode, string(tc.responseBody))
		}
	}

	return SetTestContext(ctx, tc), nil
}
