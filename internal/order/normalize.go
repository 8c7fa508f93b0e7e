package order

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is how order dates appear in emails.
const DateLayout = "January 02, 2006 at 03:04 PM"

var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
	time.DateOnly,
}

// Normalize builds a fully defaulted Order from an arbitrary payload.
// It never fails: missing or malformed fields fall back to defaults.
func Normalize(raw Record) *Order {
	o := &Order{
		OrderID:       OrderID(raw),
		CustomerInfo:  normalizeCustomer(raw["customerInfo"]),
		Items:         normalizeItems(raw["items"]),
		Total:         number(raw["total"]),
		Discount:      number(raw["discount"]),
		AppliedCoupon: normalizeCoupon(raw["appliedCoupon"]),
		Extra:         extras(raw, orderKeys),
	}
	o.OrderDate, o.FormattedDate = formatDate(raw["orderDate"])

	// A zero finalTotal is treated as not provided and recomputed.
	o.FinalTotal = number(raw["finalTotal"])
	if o.FinalTotal == 0 {
		net := decimal.NewFromFloat(o.Total).Sub(decimal.NewFromFloat(o.Discount))
		o.FinalTotal = decimal.Max(decimal.Zero, net).InexactFloat64()
	}
	return o
}

// OrderID returns orderId, then orderID, then "N/A".
func OrderID(raw Record) string {
	for _, key := range []string{"orderId", "orderID"} {
		if v := raw[key]; truthy(v) {
			return stringify(v)
		}
	}
	return NotAvailable
}

// Recipient extracts the customer's address and display name from a raw
// payload. address is "" when no usable email was supplied.
func Recipient(raw Record) (address, name string) {
	info, _ := raw["customerInfo"].(map[string]any)

	if s, ok := info["email"].(string); ok {
		address = strings.TrimSpace(s)
	}
	name = "Customer"
	if v, ok := info["name"]; ok {
		name = stringify(v)
	}
	return address, name
}

func formatDate(v any) (rawText, formatted string) {
	if !truthy(v) {
		return "", NotAvailable
	}
	rawText = stringify(v)

	s, ok := v.(string)
	if !ok {
		return rawText, rawText
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return rawText, t.Format(DateLayout)
		}
	}
	return rawText, rawText
}

func normalizeCustomer(v any) Customer {
	m, _ := v.(map[string]any)
	return Customer{
		Name:               field(m, "name", NotAvailable),
		Email:              field(m, "email", ""),
		Phone:              field(m, "phone", NotAvailable),
		Roll:               field(m, "roll", NotAvailable),
		Department:         field(m, "department", NotAvailable),
		BkashTransactionID: field(m, "bkashTransactionId", NotAvailable),
		Extra:              extras(m, customerKeys),
	}
}

// field applies def only when key is missing; present values are kept.
func field(m map[string]any, key, def string) string {
	v, ok := m[key]
	if !ok {
		return def
	}
	return stringify(v)
}

func normalizeItems(v any) []Item {
	list, _ := v.([]any)
	items := make([]Item, 0, len(list))
	for _, entry := range list {
		items = append(items, normalizeItem(entry))
	}
	return items
}

func normalizeItem(v any) Item {
	m, ok := v.(map[string]any)
	if !ok {
		return Item{Raw: v}
	}

	qty, _ := toInt(m["quantity"])
	if qty < 0 {
		qty = 0
	}
	price := number(m["price"])

	return Item{
		Name:              stringify(m["name"]),
		SelectedVariation: stringify(m["selectedVariation"]),
		Quantity:          qty,
		Price:             price,
		Total:             lineTotal(qty, price),
		Extra:             extras(m, itemKeys),
		record:            true,
	}
}

func normalizeCoupon(v any) *Coupon {
	m, ok := v.(map[string]any)
	if !ok || len(m) == 0 {
		return nil
	}
	return &Coupon{
		Code:          stringify(m["code"]),
		DiscountValue: number(m["discountValue"]),
		Extra:         extras(m, couponKeys),
	}
}
