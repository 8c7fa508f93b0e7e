// Package order turns loosely shaped order payloads into a typed,
// fully defaulted view that email templates can address field by field.
package order

// Record is an order payload as decoded from JSON. No schema is enforced.
type Record = map[string]any

// NotAvailable is the placeholder used for missing identity fields.
const NotAvailable = "N/A"

// Order is the normalized view of a Record. Every field is populated.
type Order struct {
	OrderID       string
	OrderDate     string // raw textual form, "" when absent
	FormattedDate string
	CustomerInfo  Customer
	Items         []Item
	Total         float64
	Discount      float64
	FinalTotal    float64
	AppliedCoupon *Coupon // nil when absent or malformed

	// Extra holds top-level keys without a dedicated field (e.g. "status").
	Extra map[string]any
}

// Customer holds the buyer's contact details.
type Customer struct {
	Name               string
	Email              string
	Phone              string
	Roll               string
	Department         string
	BkashTransactionID string

	Extra map[string]any
}

// Item is a single order line. Entries that were not JSON objects keep
// their original value in Raw and report IsRecord() == false.
type Item struct {
	Name              string
	SelectedVariation string
	Quantity          int
	Price             float64
	Total             float64

	Extra map[string]any
	Raw   any

	record bool
}

// IsRecord reports whether the item came from a JSON object.
func (i Item) IsRecord() bool { return i.record }

// Coupon is the discount code applied to the order.
type Coupon struct {
	Code          string
	DiscountValue float64

	Extra map[string]any
}

var (
	orderKeys = keySet("orderId", "orderID", "orderDate", "formatted_date", "customerInfo",
		"items", "total", "discount", "finalTotal", "appliedCoupon")
	customerKeys = keySet("name", "email", "phone", "roll", "department", "bkashTransactionId")
	itemKeys     = keySet("name", "selectedVariation", "quantity", "price", "total")
	couponKeys   = keySet("code", "discountValue")
)

// Record re-emits the normalized order in the input shape. Normalizing
// the result again yields an identical Order.
func (o *Order) Record() Record {
	r := make(Record, len(o.Extra)+10)
	for k, v := range o.Extra {
		r[k] = v
	}

	r["orderId"] = o.OrderID
	if o.OrderDate != "" {
		r["orderDate"] = o.OrderDate
	}
	r["formatted_date"] = o.FormattedDate
	r["customerInfo"] = o.CustomerInfo.record()

	items := make([]any, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, it.value())
	}
	r["items"] = items

	r["total"] = o.Total
	r["discount"] = o.Discount
	r["finalTotal"] = o.FinalTotal

	if o.AppliedCoupon != nil {
		r["appliedCoupon"] = o.AppliedCoupon.record()
	} else {
		r["appliedCoupon"] = nil
	}
	return r
}

func (c Customer) record() map[string]any {
	m := make(map[string]any, len(c.Extra)+6)
	for k, v := range c.Extra {
		m[k] = v
	}
	m["name"] = c.Name
	m["email"] = c.Email
	m["phone"] = c.Phone
	m["roll"] = c.Roll
	m["department"] = c.Department
	m["bkashTransactionId"] = c.BkashTransactionID
	return m
}

func (i Item) value() any {
	if !i.record {
		return i.Raw
	}
	m := make(map[string]any, len(i.Extra)+5)
	for k, v := range i.Extra {
		m[k] = v
	}
	m["name"] = i.Name
	if i.SelectedVariation != "" {
		m["selectedVariation"] = i.SelectedVariation
	}
	m["quantity"] = i.Quantity
	m["price"] = i.Price
	m["total"] = i.Total
	return m
}

func (c *Coupon) record() map[string]any {
	m := make(map[string]any, len(c.Extra)+2)
	for k, v := range c.Extra {
		m[k] = v
	}
	m["code"] = c.Code
	m["discountValue"] = c.DiscountValue
	return m
}

func keySet(keys ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// extras copies the entries of m whose keys are not in known.
// Returns nil when there are none.
func extras(m map[string]any, known map[string]struct{}) map[string]any {
	var out map[string]any
	for k, v := range m {
		if _, ok := known[k]; ok {
			continue
		}
		if out == nil {
			out = make(map[string]any)
		}
		out[k] = v
	}
	return out
}
