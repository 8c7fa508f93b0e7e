// internal/email/renderer.go
package email

import (
	"bytes"
	"fmt"
	"html"
	"html/template"
	"os"
	"strings"

	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"order-notify-service/internal/order"
)

// FallbackTemplate is used when the template file cannot be loaded.
const FallbackTemplate = "<h1>Order Confirmation</h1><p>Thank you for your order!</p>"

var funcs = template.FuncMap{
	"money": order.FormatMoney,
	"upper": strings.ToUpper,
}

// Renderer turns normalized orders into email HTML. The parsed template is
// read-only after construction, so a Renderer is safe for concurrent use.
type Renderer struct {
	tmpl *template.Template
	lg   *zap.Logger
}

// templateData is what templates see: the order is addressed as .Order.
type templateData struct {
	Order *order.Order
}

// NewRenderer loads the template at path. A missing or broken file is
// logged and replaced by FallbackTemplate.
func NewRenderer(path string, lg *zap.Logger) *Renderer {
	tmpl, err := loadTemplate(path)
	if err != nil {
		lg.Error("Email template unavailable, using fallback", zap.String("path", path), zap.Error(err))
		tmpl = template.Must(template.New("fallback").Parse(FallbackTemplate))
	}
	return &Renderer{tmpl: tmpl, lg: lg}
}

// NewRendererFromString parses src directly. Used for previews and tests.
func NewRendererFromString(src string, lg *zap.Logger) (*Renderer, error) {
	tmpl, err := template.New("order").Funcs(funcs).Parse(src)
	if err != nil {
		return nil, errors.Wrap(err, "parse template")
	}
	return &Renderer{tmpl: tmpl, lg: lg}, nil
}

func loadTemplate(path string) (*template.Template, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read template")
	}
	tmpl, err := template.New("order").Funcs(funcs).Parse(string(src))
	if err != nil {
		return nil, errors.Wrap(err, "parse template")
	}
	return tmpl, nil
}

// Render executes the template. It never fails: on any error the minimal
// confirmation markup carrying the order ID is returned instead.
func (r *Renderer) Render(o *order.Order) (out string) {
	defer func() {
		if rec := recover(); rec != nil {
			r.fail(o, errors.Errorf("template panic: %v", rec))
			out = FallbackMarkup(o.OrderID)
		}
	}()

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, templateData{Order: o}); err != nil {
		r.fail(o, err)
		return FallbackMarkup(o.OrderID)
	}
	return buf.String()
}

func (r *Renderer) fail(o *order.Order, err error) {
	r.lg.Error("Error rendering email template",
		zap.Error(err),
		zap.String("order_id", o.OrderID),
		zap.Any("order", o.Record()),
	)
}

// FallbackMarkup is the minimal confirmation sent when rendering fails.
func FallbackMarkup(orderID string) string {
	return fmt.Sprintf("<h1>Order Confirmation</h1><p>Order ID: %s</p>", html.EscapeString(orderID))
}
