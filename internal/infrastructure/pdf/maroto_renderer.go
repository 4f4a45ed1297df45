// Package pdf renders rental invoices and delivery challans.
package pdf

import (
	"fmt"
	"rental_console/internal/domain/entities"
	"rental_console/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
)

const dateLayout = "02 Jan 2006"

var (
	titleStyle  = props.Text{Style: fontstyle.Bold, Size: 16, Align: align.Center}
	headerStyle = props.Text{Style: fontstyle.Bold, Size: 12, Align: align.Center, Top: 2}
	labelStyle  = props.Text{Style: fontstyle.Bold, Size: 9}
	bodyStyle   = props.Text{Size: 9}
	rightStyle  = props.Text{Size: 9, Align: align.Right}
	thStyle     = props.Text{Style: fontstyle.Bold, Size: 9, Top: 1}
	thRight     = props.Text{Style: fontstyle.Bold, Size: 9, Top: 1, Align: align.Right}
	totalStyle  = props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Right}
)

// MarotoRenderer lays documents out on A4 pages with maroto.
type MarotoRenderer struct {
	loc *time.Location
}

var _ interfaces.IDocumentRenderer = (*MarotoRenderer)(nil)

// NewMarotoRenderer prints dates in loc; nil means UTC.
func NewMarotoRenderer(loc *time.Location) *MarotoRenderer {
	if loc == nil {
		loc = time.UTC
	}
	return &MarotoRenderer{loc: loc}
}

func (r *MarotoRenderer) newDocument() core.Maroto {
	cfg := config.NewBuilder().
		WithLeftMargin(10).
		WithTopMargin(15).
		WithRightMargin(10).
		Build()
	return maroto.New(cfg)
}

func (r *MarotoRenderer) RenderInvoice(doc entities.InvoiceDocument) ([]byte, error) {
	m := r.newDocument()
	r.heading(m, doc.BusinessName, "TAX INVOICE")
	m.AddRows(
		row.New(6).Add(
			text.NewCol(6, "Invoice No: "+doc.InvoiceNo, labelStyle),
			text.NewCol(6, "Date: "+r.day(doc.IssuedAt), props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		),
	)
	r.party(m, doc.Client, doc.Order)

	m.AddRows(row.New(7).Add(
		text.NewCol(1, "#", thStyle),
		text.NewCol(5, "Product", thStyle),
		text.NewCol(2, "Qty", thRight),
		text.NewCol(2, "Unit price", thRight),
		text.NewCol(2, "Amount", thRight),
	))
	for i, li := range doc.Order.Products {
		m.AddRows(row.New(6).Add(
			text.NewCol(1, fmt.Sprintf("%d", i+1), bodyStyle),
			text.NewCol(5, productLabel(li), bodyStyle),
			text.NewCol(2, fmt.Sprintf("%d", li.Quantity), rightStyle),
			text.NewCol(2, money(li.UnitPrice), rightStyle),
			text.NewCol(2, money(li.TotalPrice), rightStyle),
		))
	}

	params := doc.Order.PricingParameters
	m.AddRows(
		summaryRow("Subtotal", money(doc.Totals.Subtotal)),
		summaryRow(fmt.Sprintf("GST (%s%%)", percent(params.GST)), money(doc.Totals.GSTAmount)),
		summaryRow(fmt.Sprintf("Discount (%s%%)", percent(params.Discount)), "-"+money(doc.Totals.DiscountAmount)),
		summaryRow("Transport charges", money(doc.Totals.TransportCharges)),
	)
	if doc.Totals.DepositTotal > 0 {
		m.AddRows(summaryRow("Security deposit", money(doc.Totals.DepositTotal)))
	}
	m.AddRows(row.New(9).Add(
		text.NewCol(8, "Grand total", props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 2}),
		text.NewCol(4, money(doc.Totals.GrandTotal), props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 2}),
	))

	if len(doc.Terms) > 0 {
		m.AddRows(text.NewRow(8, "Terms & Conditions", props.Text{Style: fontstyle.Bold, Size: 10, Top: 4}))
		for _, p := range doc.Terms {
			m.AddRows(text.NewRow(5, fmt.Sprintf("%d. %s", p.PointNumber, p.Description), bodyStyle))
		}
	}
	return r.generate(m)
}

func (r *MarotoRenderer) RenderChallan(doc entities.ChallanDocument) ([]byte, error) {
	m := r.newDocument()
	r.heading(m, doc.BusinessName, "DELIVERY CHALLAN")
	m.AddRows(
		row.New(6).Add(
			text.NewCol(6, "Challan No: "+doc.ChallanNo, labelStyle),
			text.NewCol(6, "Date: "+r.day(doc.IssuedAt), props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		),
	)
	r.party(m, doc.Client, doc.Order)

	m.AddRows(row.New(7).Add(
		text.NewCol(1, "#", thStyle),
		text.NewCol(6, "Product", thStyle),
		text.NewCol(3, "Type", thStyle),
		text.NewCol(2, "Qty", thRight),
	))
	total := 0
	for i, li := range doc.Order.Products {
		total += li.Quantity
		m.AddRows(row.New(6).Add(
			text.NewCol(1, fmt.Sprintf("%d", i+1), bodyStyle),
			text.NewCol(6, productLabel(li), bodyStyle),
			text.NewCol(3, li.ProductType, bodyStyle),
			text.NewCol(2, fmt.Sprintf("%d", li.Quantity), rightStyle),
		))
	}
	m.AddRows(row.New(8).Add(
		text.NewCol(10, "Total units", totalStyle),
		text.NewCol(2, fmt.Sprintf("%d", total), totalStyle),
	))

	m.AddRows(row.New(20).Add(
		text.NewCol(6, "Received by", props.Text{Size: 9, Top: 14}),
		text.NewCol(6, "Authorised signatory", props.Text{Size: 9, Top: 14, Align: align.Right}),
	))
	return r.generate(m)
}

func (r *MarotoRenderer) heading(m core.Maroto, business, title string) {
	if strings.TrimSpace(business) != "" {
		m.AddRows(text.NewRow(10, business, titleStyle))
	}
	m.AddRows(text.NewRow(10, title, headerStyle))
}

func (r *MarotoRenderer) party(m core.Maroto, c entities.Client, o entities.Order) {
	name := c.ClientName
	if name == "" {
		name = o.ClientName
	}
	m.AddRows(text.NewRow(6, "Bill to: "+name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 2}))
	if c.Address != "" {
		m.AddRows(text.NewRow(5, c.Address, bodyStyle))
	}
	contact := []string{}
	if c.PhoneNumber != "" {
		contact = append(contact, "Phone: "+c.PhoneNumber)
	}
	if c.GSTNo != "" {
		contact = append(contact, "GSTIN: "+c.GSTNo)
	}
	if len(contact) > 0 {
		m.AddRows(text.NewRow(5, strings.Join(contact, "   "), bodyStyle))
	}
	m.AddRows(text.NewRow(7, fmt.Sprintf("Rental: %s, %s to %s", o.RentalType, r.day(o.StartDate), r.day(o.EndDate)), props.Text{Size: 9, Top: 1}))
}

func (r *MarotoRenderer) generate(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return doc.GetBytes(), nil
}

// day prints date-only values (UTC midnight) as their calendar day.
func (r *MarotoRenderer) day(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	if t.Location() == time.UTC && t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
		return t.Format(dateLayout)
	}
	return t.In(r.loc).Format(dateLayout)
}

func summaryRow(label, value string) core.Row {
	return row.New(6).Add(
		text.NewCol(8, label, rightStyle),
		text.NewCol(4, value, rightStyle),
	)
}

func productLabel(li entities.LineItem) string {
	if li.ProductName != "" {
		return li.ProductName
	}
	return li.ProductID
}

func money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

func percent(v float64) string {
	return decimal.NewFromFloat(v).String()
}
