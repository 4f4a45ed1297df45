// Package pricing derives the totals of a quotation, an order or an invoice
// from its line items and pricing parameters.
//
// Every screen of the console goes through Compute; there is no other copy of
// the formula. Only the grand total is rounded, to the nearest whole currency
// unit.
package pricing

import (
	"rental_console/internal/domain/entities"
	"rental_console/internal/domain/errs"
	"strconv"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// DefaultGSTRates are the GST percentages the console offers.
var DefaultGSTRates = []float64{0, 18}

// DepositSource selects which deposit term enters the grand total.
//
// The deposit term differs between contexts and is never reconciled:
//   - DepositNone: quotations and order create/edit forms.
//   - DepositLineItems: Σ depositAmount over the lines (invoices, order context).
//   - DepositClientFlat: the flat client.amount figure.
type DepositSource string

const (
	DepositNone       DepositSource = "none"
	DepositLineItems  DepositSource = "line_items"
	DepositClientFlat DepositSource = "client_flat"
)

func (d DepositSource) Valid() bool {
	switch d {
	case DepositNone, DepositLineItems, DepositClientFlat:
		return true
	}
	return false
}

// Input is everything the engine reads.
type Input struct {
	Lines         []entities.LineItem
	Params        entities.PricingParameters
	Deposit       DepositSource
	ClientDeposit float64
}

// Totals is fully derived from an Input. It is never stored on its own.
type Totals struct {
	Subtotal         decimal.Decimal
	GSTAmount        decimal.Decimal
	DiscountAmount   decimal.Decimal
	TransportCharges decimal.Decimal
	DepositTotal     decimal.Decimal
	GrandTotal       decimal.Decimal
}

// Engine computes totals against a configured set of allowed GST rates.
type Engine struct {
	gstRates []decimal.Decimal
}

// NewEngine builds an engine; an empty rate list falls back to DefaultGSTRates.
func NewEngine(gstRates []float64) *Engine {
	if len(gstRates) == 0 {
		gstRates = DefaultGSTRates
	}
	rates := make([]decimal.Decimal, 0, len(gstRates))
	for _, r := range gstRates {
		rates = append(rates, decimal.NewFromFloat(r))
	}
	return &Engine{gstRates: rates}
}

// Compute validates in and derives its totals. It has no side effects and
// returns identical Totals for identical inputs.
func (e *Engine) Compute(in Input) (Totals, error) {
	if err := e.Validate(in); err != nil {
		return Totals{}, err
	}

	subtotal := decimal.Zero
	lineDeposits := decimal.Zero
	for _, li := range in.Lines {
		subtotal = subtotal.Add(lineTotal(li.UnitPrice, li.Quantity))
		lineDeposits = lineDeposits.Add(decimal.NewFromFloat(li.DepositAmount))
	}

	gst := subtotal.Mul(decimal.NewFromFloat(in.Params.GST)).Div(hundred)
	discount := subtotal.Mul(decimal.NewFromFloat(in.Params.Discount)).Div(hundred)
	transport := decimal.NewFromFloat(in.Params.TransportCharges)

	deposit := decimal.Zero
	switch in.Deposit {
	case DepositLineItems:
		deposit = lineDeposits
	case DepositClientFlat:
		deposit = decimal.NewFromFloat(in.ClientDeposit)
	}

	grand := subtotal.Add(transport).Add(gst).Sub(discount).Add(deposit).Round(0)

	return Totals{
		Subtotal:         subtotal,
		GSTAmount:        gst,
		DiscountAmount:   discount,
		TransportCharges: transport,
		DepositTotal:     deposit,
		GrandTotal:       grand,
	}, nil
}

// Validate rejects inputs outside the engine's domain.
func (e *Engine) Validate(in Input) error {
	for i, li := range in.Lines {
		if err := ValidateLine(li); err != nil {
			if ve, ok := err.(*errs.ValidationError); ok {
				return errs.Invalid("products["+strconv.Itoa(i)+"]."+ve.Field, "%s", ve.Reason)
			}
			return err
		}
	}
	if !e.GSTAllowed(in.Params.GST) {
		return errs.Invalid("gst", "%v is not an allowed rate", in.Params.GST)
	}
	if in.Params.Discount < 0 || in.Params.Discount > 100 {
		return errs.Invalid("discount", "must be between 0 and 100")
	}
	if in.Params.TransportCharges < 0 {
		return errs.Invalid("transportCharges", "must not be negative")
	}
	if in.ClientDeposit < 0 {
		return errs.Invalid("clientDeposit", "must not be negative")
	}
	if in.Deposit != "" && !in.Deposit.Valid() {
		return errs.Invalid("deposit", "unknown deposit source %q", in.Deposit)
	}
	return nil
}

// GSTAllowed reports whether rate is one of the configured GST percentages.
func (e *Engine) GSTAllowed(rate float64) bool {
	r := decimal.NewFromFloat(rate)
	for _, allowed := range e.gstRates {
		if allowed.Equal(r) {
			return true
		}
	}
	return false
}

// ValidateLine checks one line item in isolation.
func ValidateLine(li entities.LineItem) error {
	if li.UnitPrice < 0 {
		return errs.Invalid("unitPrice", "must not be negative")
	}
	if li.Quantity < 1 {
		return errs.Invalid("quantity", "must be at least 1")
	}
	if li.DepositAmount < 0 {
		return errs.Invalid("depositAmount", "must not be negative")
	}
	if li.AvailableQty > 0 && li.Quantity > li.AvailableQty {
		return errs.Invalid("quantity", "exceeds available quantity %d", li.AvailableQty)
	}
	return nil
}

func lineTotal(unitPrice float64, qty int) decimal.Decimal {
	return decimal.NewFromFloat(unitPrice).Mul(decimal.NewFromInt(int64(qty)))
}

// Summary converts the totals to the float view used by responses and
// documents.
func (t Totals) Summary() entities.Summary {
	return entities.Summary{
		Subtotal:         t.Subtotal.InexactFloat64(),
		GSTAmount:        t.GSTAmount.InexactFloat64(),
		DiscountAmount:   t.DiscountAmount.InexactFloat64(),
		TransportCharges: t.TransportCharges.InexactFloat64(),
		DepositTotal:     t.DepositTotal.InexactFloat64(),
		GrandTotal:       t.GrandTotal.InexactFloat64(),
	}
}
