package order

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, s string) Record {
	t.Helper()
	var r Record
	require.NoError(t, json.Unmarshal([]byte(s), &r))
	return r
}

const sampleOrder = `{
	"orderId": "ORD-42",
	"orderDate": "2024-03-15T10:30:00Z",
	"status": "pending",
	"customerInfo": {
		"name": "Test Customer",
		"email": "test@example.com",
		"phone": "+1234567890",
		"roll": "CS-2021-001",
		"department": "Computer Science",
		"bkashTransactionId": "TXN123456789"
	},
	"items": [
		{"name": "Test Product 1", "selectedVariation": "Large", "quantity": "2", "price": "500"},
		{"name": "Test Product 2", "quantity": 1, "price": 300}
	],
	"total": 1300,
	"discount": 100,
	"finalTotal": 0,
	"appliedCoupon": {"code": "TESTCODE", "discountValue": 100}
}`

func TestNormalize_SampleOrder(t *testing.T) {
	o := Normalize(decode(t, sampleOrder))

	assert.Equal(t, "ORD-42", o.OrderID)
	assert.Equal(t, "March 15, 2024 at 10:30 AM", o.FormattedDate)
	assert.Equal(t, "Test Customer", o.CustomerInfo.Name)
	assert.Equal(t, "TXN123456789", o.CustomerInfo.BkashTransactionID)

	require.Len(t, o.Items, 2)
	first := o.Items[0]
	assert.True(t, first.IsRecord())
	assert.Equal(t, 2, first.Quantity)
	assert.Equal(t, 500.0, first.Price)
	assert.Equal(t, 1000.0, first.Total)
	assert.Equal(t, "Large", first.SelectedVariation)
	assert.Equal(t, 300.0, o.Items[1].Total)

	assert.Equal(t, 1300.0, o.Total)
	assert.Equal(t, 100.0, o.Discount)
	assert.Equal(t, 1200.0, o.FinalTotal)

	require.NotNil(t, o.AppliedCoupon)
	assert.Equal(t, "TESTCODE", o.AppliedCoupon.Code)
	assert.Equal(t, 100.0, o.AppliedCoupon.DiscountValue)

	assert.Equal(t, map[string]any{"status": "pending"}, o.Extra)
}

func TestNormalize_EmptyRecord(t *testing.T) {
	for _, raw := range []Record{nil, {}} {
		o := Normalize(raw)

		assert.Equal(t, NotAvailable, o.OrderID)
		assert.Equal(t, NotAvailable, o.FormattedDate)
		assert.Equal(t, Customer{
			Name:               NotAvailable,
			Email:              "",
			Phone:              NotAvailable,
			Roll:               NotAvailable,
			Department:         NotAvailable,
			BkashTransactionID: NotAvailable,
		}, o.CustomerInfo)
		assert.NotNil(t, o.Items)
		assert.Empty(t, o.Items)
		assert.Zero(t, o.Total)
		assert.Zero(t, o.Discount)
		assert.Zero(t, o.FinalTotal)
		assert.Nil(t, o.AppliedCoupon)
		assert.Nil(t, o.Extra)
	}
}

func TestNormalize_GarbageShapes(t *testing.T) {
	raw := decode(t, `{
		"orderId": 0,
		"orderID": 17,
		"orderDate": 1700000000,
		"customerInfo": "nobody",
		"items": {"not": "a list"},
		"total": "lots",
		"discount": [1, 2],
		"finalTotal": {"x": 1},
		"appliedCoupon": false
	}`)

	var o *Order
	require.NotPanics(t, func() { o = Normalize(raw) })

	assert.Equal(t, "17", o.OrderID)
	assert.Equal(t, "1700000000", o.FormattedDate)
	assert.Equal(t, NotAvailable, o.CustomerInfo.Name)
	assert.Empty(t, o.Items)
	assert.Zero(t, o.Total)
	assert.Zero(t, o.Discount)
	assert.Zero(t, o.FinalTotal)
	assert.Nil(t, o.AppliedCoupon)
}

func TestNormalize_CustomerDefaultsOnlyForMissingKeys(t *testing.T) {
	o := Normalize(decode(t, `{"customerInfo": {"name": "", "phone": null, "roll": 7, "club": "chess"}}`))

	assert.Equal(t, "", o.CustomerInfo.Name)
	assert.Equal(t, "", o.CustomerInfo.Phone)
	assert.Equal(t, "7", o.CustomerInfo.Roll)
	assert.Equal(t, NotAvailable, o.CustomerInfo.Department)
	assert.Equal(t, "", o.CustomerInfo.Email)
	assert.Equal(t, map[string]any{"club": "chess"}, o.CustomerInfo.Extra)
}

func TestNormalize_ItemCoercion(t *testing.T) {
	tests := []struct {
		name      string
		item      string
		wantQty   int
		wantPrice float64
		wantTotal float64
	}{
		{name: "numeric strings", item: `{"quantity": "2", "price": "500"}`, wantQty: 2, wantPrice: 500, wantTotal: 1000},
		{name: "padded strings", item: `{"quantity": " 3 ", "price": " 1.5 "}`, wantQty: 3, wantPrice: 1.5, wantTotal: 4.5},
		{name: "missing fields", item: `{"name": "Sticker"}`},
		{name: "garbage", item: `{"quantity": "two", "price": "free"}`},
		{name: "fractional quantity string", item: `{"quantity": "2.5", "price": 10}`, wantPrice: 10},
		{name: "fractional quantity number", item: `{"quantity": 2.9, "price": 10}`, wantQty: 2, wantPrice: 10, wantTotal: 20},
		{name: "negative quantity", item: `{"quantity": -4, "price": 10}`, wantPrice: 10},
		{name: "boolean quantity", item: `{"quantity": true, "price": "0.1"}`, wantQty: 1, wantPrice: 0.1, wantTotal: 0.1},
		{name: "decimal exact total", item: `{"quantity": 3, "price": 0.1}`, wantQty: 3, wantPrice: 0.1, wantTotal: 0.3},
		{name: "nan price", item: `{"quantity": 1, "price": "NaN"}`, wantQty: 1},
		{name: "null values", item: `{"quantity": null, "price": null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := Normalize(Record{"items": []any{decode(t, tt.item)}})
			require.Len(t, o.Items, 1)

			it := o.Items[0]
			assert.True(t, it.IsRecord())
			assert.Equal(t, tt.wantQty, it.Quantity)
			assert.Equal(t, tt.wantPrice, it.Price)
			assert.Equal(t, tt.wantTotal, it.Total)
		})
	}
}

func TestNormalize_NonRecordItemsPassThrough(t *testing.T) {
	o := Normalize(decode(t, `{"items": ["loose", 5, null, {"name": "Mug", "quantity": 1, "price": 250}]}`))

	require.Len(t, o.Items, 4)
	assert.False(t, o.Items[0].IsRecord())
	assert.Equal(t, "loose", o.Items[0].Raw)
	assert.Equal(t, 5.0, o.Items[1].Raw)
	assert.Nil(t, o.Items[2].Raw)
	assert.Zero(t, o.Items[0].Quantity)

	assert.True(t, o.Items[3].IsRecord())
	assert.Equal(t, 250.0, o.Items[3].Total)
}

func TestNormalize_FinalTotal(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{name: "absent", raw: `{"total": 1300, "discount": 100}`, want: 1200},
		{name: "zero", raw: `{"total": 1300, "discount": 100, "finalTotal": 0}`, want: 1200},
		{name: "empty string", raw: `{"total": "1300", "discount": "100", "finalTotal": ""}`, want: 1200},
		{name: "garbage", raw: `{"total": 1300, "discount": 100, "finalTotal": "abc"}`, want: 1200},
		{name: "provided", raw: `{"total": 1300, "discount": 100, "finalTotal": "1150.5"}`, want: 1150.5},
		{name: "discount exceeds total", raw: `{"total": 50, "discount": 80}`, want: 0},
		{name: "nothing", raw: `{}`, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(decode(t, tt.raw)).FinalTotal)
		})
	}
}

func TestNormalize_Coupon(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *Coupon
	}{
		{name: "absent", raw: `{}`},
		{name: "null", raw: `{"appliedCoupon": null}`},
		{name: "string", raw: `{"appliedCoupon": "not-an-object"}`},
		{name: "list", raw: `{"appliedCoupon": ["SAVE10"]}`},
		{name: "empty object", raw: `{"appliedCoupon": {}}`},
		{
			name: "well formed",
			raw:  `{"appliedCoupon": {"code": "SAVE10", "discountValue": "10"}}`,
			want: &Coupon{Code: "SAVE10", DiscountValue: 10},
		},
		{
			name: "bad value",
			raw:  `{"appliedCoupon": {"code": "SAVE10", "discountValue": "ten", "kind": "flat"}}`,
			want: &Coupon{Code: "SAVE10", Extra: map[string]any{"kind": "flat"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(decode(t, tt.raw)).AppliedCoupon)
		})
	}
}

func TestNormalize_OrderDate(t *testing.T) {
	tests := []struct {
		name string
		date any
		want string
	}{
		{name: "utc marker", date: "2024-03-15T10:30:00Z", want: "March 15, 2024 at 10:30 AM"},
		{name: "explicit offset", date: "2024-03-15T22:05:00+06:00", want: "March 15, 2024 at 10:05 PM"},
		{name: "compact offset", date: "2024-03-15T22:05:00+0600", want: "March 15, 2024 at 10:05 PM"},
		{name: "js iso string", date: "2024-12-01T09:07:33.512Z", want: "December 01, 2024 at 09:07 AM"},
		{name: "naive with fraction", date: "2024-03-15T00:15:00.123456", want: "March 15, 2024 at 12:15 AM"},
		{name: "space separator", date: "2024-03-15 13:45:00", want: "March 15, 2024 at 01:45 PM"},
		{name: "date only", date: "2024-03-15", want: "March 15, 2024 at 12:00 AM"},
		{name: "unparseable", date: "yesterday", want: "yesterday"},
		{name: "empty", date: "", want: NotAvailable},
		{name: "null", date: nil, want: NotAvailable},
		{name: "number", date: 42.0, want: "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(Record{"orderDate": tt.date}).FormattedDate)
		})
	}
}

func TestNormalize_OrderIDFallback(t *testing.T) {
	assert.Equal(t, "A1", OrderID(Record{"orderId": "A1", "orderID": "B2"}))
	assert.Equal(t, "B2", OrderID(Record{"orderId": "", "orderID": "B2"}))
	assert.Equal(t, "B2", OrderID(Record{"orderID": "B2"}))
	assert.Equal(t, NotAvailable, OrderID(Record{"orderId": nil}))
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		sampleOrder,
		`{}`,
		`{"orderID": "X", "orderDate": "garbage", "items": ["loose", {"quantity": -1, "price": "9.99", "color": "red"}]}`,
		`{"customerInfo": {"name": null, "extra": [1]}, "appliedCoupon": {"promo": true}, "total": "10"}`,
	}

	for _, in := range inputs {
		first := Normalize(decode(t, in))
		second := Normalize(first.Record())
		assert.Equal(t, first, second, in)
	}
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	raw := decode(t, sampleOrder)
	before, err := json.Marshal(raw)
	require.NoError(t, err)

	_ = Normalize(raw)

	after, err := json.Marshal(raw)
	require.NoError(t, err)
	assert.JSONEq(t, string(before), string(after))
}

func TestRecipient(t *testing.T) {
	addr, name := Recipient(decode(t, sampleOrder))
	assert.Equal(t, "test@example.com", addr)
	assert.Equal(t, "Test Customer", name)

	addr, name = Recipient(Record{"customerInfo": map[string]any{"email": "a@b.c"}})
	assert.Equal(t, "a@b.c", addr)
	assert.Equal(t, "Customer", name)

	addr, _ = Recipient(Record{"customerInfo": map[string]any{"email": 12.0}})
	assert.Empty(t, addr)

	addr, _ = Recipient(Record{"customerInfo": "nobody"})
	assert.Empty(t, addr)
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "1200.00", FormatMoney(1200))
	assert.Equal(t, "0.30", FormatMoney(0.3))
	assert.Equal(t, "9.99", FormatMoney(9.99))
}
