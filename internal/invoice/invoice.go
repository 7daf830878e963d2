// Package invoice renders printable HTML documents: per-order invoices
// and per-customer account statements.
package invoice

import (
	"bytes"
	"html/template"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hygienicomfort/shop_api/internal/models"
)

// ShopInfo is the letterhead shown on every document.
type ShopInfo struct {
	Name    string
	Address string
	Phone   string
}

// Renderer generates invoice and statement HTML for a shop.
type Renderer struct {
	shop          ShopInfo
	invoiceTmpl   *template.Template
	statementTmpl *template.Template
}

// NewRenderer parses the document templates for the given letterhead.
func NewRenderer(shop ShopInfo) (*Renderer, error) {
	inv, err := template.New("invoice").Parse(invoiceTemplate)
	if err != nil {
		return nil, err
	}
	stmt, err := template.New("statement").Parse(statementTemplate)
	if err != nil {
		return nil, err
	}
	return &Renderer{shop: shop, invoiceTmpl: inv, statementTmpl: stmt}, nil
}

type invoiceLine struct {
	No     int
	Name   string
	Qty    int
	Rate   string
	Amount string
}

type invoiceData struct {
	Shop          ShopInfo
	RefID         string
	Date          string
	CustomerName  string
	Phone         string
	PaymentStatus string
	Lines         []invoiceLine
	LegacyItems   string
	Total         string
}

// RenderInvoice produces the printable invoice for one order. Orders
// that still carry free-text items render the text as a single row.
func (r *Renderer) RenderInvoice(order *models.Order) (string, error) {
	data := invoiceData{
		Shop:          r.shop,
		RefID:         order.RefID(),
		Date:          order.CreatedAt.Format("02/01/2006"),
		CustomerName:  customerNameOrDefault(order.CustomerName),
		Phone:         order.PhoneNumber,
		PaymentStatus: string(order.PaymentStatus),
		Total:         formatINR(order.TotalPrice),
	}
	if order.Items.IsLegacy() {
		data.LegacyItems = order.Items.LegacyText
	} else {
		for i, item := range order.Items.Structured {
			data.Lines = append(data.Lines, invoiceLine{
				No:     i + 1,
				Name:   item.ProductName,
				Qty:    item.Qty,
				Rate:   formatINR(item.Price),
				Amount: formatINR(item.Total),
			})
		}
	}

	var buf bytes.Buffer
	if err := r.invoiceTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

type statementRow struct {
	No     int
	Date   string
	RefID  string
	Items  string
	Amount string
}

type statementData struct {
	Shop       ShopInfo
	Date       string
	Customer   string
	Phone      string
	Rows       []statementRow
	TotalSpent string
}

// RenderStatement produces the account statement for a customer and
// their resolved order history.
func (r *Renderer) RenderStatement(customer *models.Customer, orders []models.Order, totalSpent decimal.Decimal) (string, error) {
	data := statementData{
		Shop:       r.shop,
		Date:       time.Now().Format("02/01/2006"),
		Customer:   customer.CustomerName,
		Phone:      customer.Phone,
		TotalSpent: formatINR(totalSpent),
	}
	for i, o := range orders {
		data.Rows = append(data.Rows, statementRow{
			No:     i + 1,
			Date:   o.CreatedAt.Format("02/01/2006"),
			RefID:  "#" + o.RefID(),
			Items:  itemsSummary(&o.Items),
			Amount: formatINR(o.TotalPrice),
		})
	}

	var buf bytes.Buffer
	if err := r.statementTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func customerNameOrDefault(name string) string {
	if name == "" {
		return "Walking Customer"
	}
	return name
}

func itemsSummary(items *models.OrderItems) string {
	if items.IsLegacy() {
		return items.LegacyText
	}
	if len(items.Structured) == 0 {
		return "N/A"
	}
	summary := ""
	for i, item := range items.Structured {
		if i > 0 {
			summary += ", "
		}
		summary += item.ProductName
	}
	return summary
}

func formatINR(amount decimal.Decimal) string {
	return "₹" + amount.StringFixed(2)
}

const invoiceTemplate = `<!DOCTYPE html>
<html>
<head>
  <title>Invoice - {{.RefID}}</title>
  <style>
    body { font-family: 'Inter', sans-serif; color: #444; margin: 0; padding: 40px; }
    .invoice-container { max-width: 800px; margin: auto; border: 1px solid #eee; padding: 30px; border-radius: 8px; }
    .header { display: flex; justify-content: space-between; align-items: flex-start; margin-bottom: 40px; border-bottom: 2px solid #3b82f6; padding-bottom: 20px; }
    .company-info h1 { margin: 0; color: #1e3a8a; font-size: 24px; text-transform: uppercase; }
    .company-info p { margin: 5px 0; font-size: 12px; line-height: 1.4; color: #666; }
    .invoice-label { text-align: right; }
    .invoice-label h2 { margin: 0; color: #3b82f6; letter-spacing: 2px; }
    .details-grid { display: grid; grid-template-columns: 1fr 1fr; gap: 20px; margin-bottom: 30px; background: #f8fafc; padding: 20px; border-radius: 8px; }
    .details-box h4 { margin: 0 0 10px 0; font-size: 10px; text-transform: uppercase; color: #94a3b8; letter-spacing: 1px; }
    .details-box p { margin: 2px 0; font-weight: bold; font-size: 14px; }
    table { width: 100%; border-collapse: collapse; margin-bottom: 30px; }
    th { background: #1e3a8a; color: white; text-transform: uppercase; font-size: 11px; padding: 12px; letter-spacing: 1px; }
    td { padding: 12px; border-bottom: 1px solid #eee; }
    .totals-area { display: flex; justify-content: flex-end; }
    .grand-total { background: #1e3a8a; color: white; padding: 15px; border-radius: 4px; margin-top: 10px; width: 250px; text-align: right; }
  </style>
</head>
<body>
  <div class="invoice-container">
    <div class="header">
      <div class="company-info">
        <h1>{{.Shop.Name}}</h1>
        <p>{{.Shop.Address}}</p>
      </div>
      <div class="invoice-label">
        <h2>INVOICE</h2>
        <p style="font-size: 12px;">Ref: {{.RefID}}</p>
        <p style="font-size: 12px;">Date: {{.Date}}</p>
      </div>
    </div>
    <div class="details-grid">
      <div class="details-box">
        <h4>Billed To</h4>
        <p style="font-size: 18px; color: #1e3a8a;">{{.CustomerName}}</p>
        <p>Ph: {{.Phone}}</p>
      </div>
      <div class="details-box" style="text-align: right;">
        <h4>Payment Status</h4>
        <p style="color: #059669; font-weight: bold;">{{.PaymentStatus}}</p>
      </div>
    </div>
    <table>
      <thead>
        <tr>
          <th>#</th>
          <th style="text-align: left;">Item Description</th>
          <th>Qty</th>
          <th style="text-align: right;">Rate</th>
          <th style="text-align: right;">Amount</th>
        </tr>
      </thead>
      <tbody>
        {{if .LegacyItems}}
        <tr><td colspan="5" style="text-align: center;">{{.LegacyItems}}</td></tr>
        {{else}}
        {{range .Lines}}
        <tr>
          <td style="text-align: center;">{{.No}}</td>
          <td><div style="font-weight: bold; color: #333;">{{.Name}}</div></td>
          <td style="text-align: center;">{{.Qty}} PAC</td>
          <td style="text-align: right;">{{.Rate}}</td>
          <td style="text-align: right; font-weight: bold;">{{.Amount}}</td>
        </tr>
        {{end}}
        {{end}}
      </tbody>
    </table>
    <div class="totals-area">
      <div class="grand-total">
        <span style="font-weight: bold;">Total Amount: {{.Total}}</span>
      </div>
    </div>
  </div>
</body>
</html>`

const statementTemplate = `<!DOCTYPE html>
<html>
<head>
  <title>Statement - {{.Customer}}</title>
  <style>
    body { font-family: 'Segoe UI', sans-serif; padding: 30px; color: #333; }
    .header-container { display: flex; justify-content: space-between; border-bottom: 3px solid #1e3a8a; padding-bottom: 15px; margin-bottom: 25px; }
    .company-info h1 { margin: 0; color: #1e3a8a; text-transform: uppercase; }
    table { width: 100%; border-collapse: collapse; }
    th { background: #1e3a8a; color: white; padding: 12px; text-align: left; font-size: 11px; text-transform: uppercase; }
    td { padding: 12px; border-bottom: 1px solid #eee; }
    .footer-total { margin-top: 25px; text-align: right; font-size: 20px; font-weight: 800; border-top: 2px solid #1e3a8a; padding: 15px; color: #1e3a8a; }
  </style>
</head>
<body>
  <div class="header-container">
    <div class="company-info">
      <h1>{{.Shop.Name}}</h1>
      <p>Account Statement Summary</p>
    </div>
    <div style="text-align: right">
      <h2>STATEMENT</h2>
      <p>Date: {{.Date}}</p>
    </div>
  </div>
  <div style="margin-bottom: 20px;">
    <strong>Customer:</strong> {{.Customer}}<br>
    <strong>Phone:</strong> {{.Phone}}
  </div>
  <table>
    <thead>
      <tr><th>#</th><th>Date</th><th>Order Ref</th><th>Items</th><th style="text-align: right">Amount</th></tr>
    </thead>
    <tbody>
      {{range .Rows}}
      <tr>
        <td>{{.No}}</td>
        <td>{{.Date}}</td>
        <td style="font-family: monospace;">{{.RefID}}</td>
        <td>{{.Items}}</td>
        <td style="text-align: right; font-weight: bold;">{{.Amount}}</td>
      </tr>
      {{end}}
    </tbody>
  </table>
  <div class="footer-total">Total Spent: {{.TotalSpent}}</div>
</body>
</html>`
