package notify

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/junaidrashid-git/nursery-store/models"
)

var funcs = template.FuncMap{
	"money": FormatAmount,
}

const layoutStart = `<div style="font-family:Arial,sans-serif;max-width:600px;margin:0 auto;color:#2d3b2d">
<h1 style="color:#3f6b3f">{{.Store}}</h1>`

const layoutEnd = `<p style="color:#777;font-size:12px">{{.Store}}</p></div>`

const itemsTable = `<table style="width:100%;border-collapse:collapse">
{{range .Order.Items}}<tr><td>{{.Name}}{{if .Description}}<br><small>{{.Description}}</small>{{end}}</td><td>x{{.Quantity}}</td><td style="text-align:right">{{money .AmountTotal $.Order.Currency}}</td></tr>
{{end}}<tr><td colspan="2"><strong>Total</strong></td><td style="text-align:right"><strong>{{money .Order.TotalAmount .Order.Currency}}</strong></td></tr>
</table>`

var (
	confirmationTmpl = template.Must(template.New("confirmation").Funcs(funcs).Parse(layoutStart + `
<p>Hi {{if .Order.CustomerName}}{{.Order.CustomerName}}{{else}}there{{end}},</p>
<p>Thank you for your order. Your plants are being prepared for shipment.</p>
<p>Order reference: <strong>{{.Order.OrderRef}}</strong></p>
` + itemsTable + `
{{with .Order.ShippingAddress}}{{if .Line1}}<p>Shipping to:<br>{{.Line1}}{{if .Line2}}<br>{{.Line2}}{{end}}<br>{{.City}}, {{.State}} {{.PostalCode}}<br>{{.Country}}</p>{{end}}{{end}}
` + layoutEnd))

	shipmentTmpl = template.Must(template.New("shipment").Funcs(funcs).Parse(layoutStart + `
<p>Hi {{if .Order.CustomerName}}{{.Order.CustomerName}}{{else}}there{{end}},</p>
<p>Good news: order <strong>{{.Order.OrderRef}}</strong> is on its way.</p>
<p>Carrier: <strong>{{.Order.Carrier}}</strong><br>Tracking number: <strong>{{.Order.TrackingNumber}}</strong></p>
<p>Unpack your plants as soon as they arrive and keep them out of direct sun for a few days.</p>
` + layoutEnd))

	internalTmpl = template.Must(template.New("internal").Funcs(funcs).Parse(layoutStart + `
<p>New order <strong>{{.Order.OrderRef}}</strong> ({{.Order.PaymentStatus}})</p>
<p>{{.Order.CustomerName}} &lt;{{.Order.CustomerEmail}}&gt;{{if .Order.CustomerPhone}}<br>{{.Order.CustomerPhone}}{{end}}</p>
` + itemsTable + `
<p>Shipping charged: {{money .Order.ShippingAmount .Order.Currency}}</p>
` + layoutEnd))

	testTmpl = template.Must(template.New("test").Funcs(funcs).Parse(layoutStart + `
<p>This is a test email. If you can read it, email delivery is configured.</p>
` + layoutEnd))
)

type templateData struct {
	Store string
	Order models.Order
}

func render(t *template.Template, data templateData) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s email: %w", t.Name(), err)
	}
	return buf.String(), nil
}

// FormatAmount renders minor units as a currency amount, e.g. 17600 "usd"
// becomes "176.00 USD".
func FormatAmount(amount int64, currency string) string {
	return decimal.New(amount, -2).StringFixed(2) + " " + strings.ToUpper(currency)
}
