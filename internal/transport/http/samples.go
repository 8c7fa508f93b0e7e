package http

import (
	"time"

	"order-notify-service/internal/order"
)

func sampleCustomer(name, email string) map[string]any {
	return map[string]any{
		"name":               name,
		"email":              email,
		"phone":              "+1234567890",
		"roll":               "CS-2021-001",
		"department":         "Computer Science",
		"bkashTransactionId": "TXN123456789",
	}
}

func testOrder(now time.Time, to string) order.Record {
	return order.Record{
		"orderId":      "TEST-" + now.Format("20060102-150405"),
		"orderDate":    now.Format("2006-01-02T15:04:05.000000"),
		"status":       "pending",
		"customerInfo": sampleCustomer("Test Customer", to),
		"items": []any{
			map[string]any{"name": "Test Product 1", "selectedVariation": "Large", "quantity": 2, "price": 500},
			map[string]any{"name": "Test Product 2", "quantity": 1, "price": 300},
		},
		"total":      1300,
		"discount":   100,
		"finalTotal": 1200,
		"appliedCoupon": map[string]any{
			"code":          "TESTCODE",
			"discountValue": 100,
		},
	}
}

func previewOrder(now time.Time) order.Record {
	return order.Record{
		"orderId":      "PREVIEW-001",
		"orderDate":    now.Format("2006-01-02T15:04:05.000000"),
		"status":       "pending",
		"customerInfo": sampleCustomer("Preview Customer", "preview@example.com"),
		"items": []any{
			map[string]any{"name": "Sample Product", "selectedVariation": "Medium", "quantity": 1, "price": 500},
		},
		"total":      500,
		"discount":   0,
		"finalTotal": 500,
	}
}
