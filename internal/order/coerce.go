package order

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// toFloat converts numbers, numeric strings and booleans. Anything else,
// including NaN and infinities, reports false.
func toFloat(v any) (float64, bool) {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int64:
		f = float64(x)
	case int32:
		f = float64(x)
	case json.Number:
		var err error
		if f, err = x.Float64(); err != nil {
			return 0, false
		}
	case string:
		var err error
		if f, err = strconv.ParseFloat(strings.TrimSpace(x), 64); err != nil {
			return 0, false
		}
	case bool:
		if x {
			f = 1
		}
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// toInt converts to an integer. Floating point values truncate toward zero;
// strings must hold a whole number.
func toInt(v any) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case int64:
		return int(x), true
	case int32:
		return int(x), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(x))
		if err != nil {
			return 0, false
		}
		return n, true
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return int(n), true
		}
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	}

	f, ok := toFloat(v)
	if !ok || f >= math.MaxInt64 || f <= math.MinInt64 {
		return 0, false
	}
	return int(f), true
}

// number is toFloat with the zero fallback.
func number(v any) float64 {
	f, _ := toFloat(v)
	return f
}

// stringify renders a JSON scalar in its textual form. null becomes "".
func stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case json.Number:
		return x.String()
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(x)
	}
}

// truthy reports whether v would count as a provided value: not null,
// not zero, not empty.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return x != ""
	case bool:
		return x
	case map[string]any:
		return len(x) > 0
	case []any:
		return len(x) > 0
	}
	if f, ok := toFloat(v); ok {
		return f != 0
	}
	return true
}

func lineTotal(quantity int, price float64) float64 {
	return decimal.NewFromInt(int64(quantity)).Mul(decimal.NewFromFloat(price)).InexactFloat64()
}

// FormatMoney renders an amount with two decimal places.
func FormatMoney(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}
