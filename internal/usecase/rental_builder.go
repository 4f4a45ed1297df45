package usecase

import (
	"context"
	"errors"
	"fmt"
	"rental_console/internal/domain/entities"
	"rental_console/internal/domain/errs"
	"rental_console/internal/domain/lifecycle"
	"rental_console/internal/domain/pricing"
	"rental_console/internal/usecase/interfaces"
	"strings"
	"time"
)

var ErrLineItemNotFound = errors.New("line item not found")

// RentalInput is what an operator submits to create or fully edit a
// quotation or an order.
type RentalInput struct {
	ClientID   string
	Lines      []LineSelection
	Params     entities.PricingParameters
	RentalType entities.RentalType
	StartDate  time.Time
	EndDate    time.Time
}

// LineSelection picks a catalog product. UnitPrice overrides the catalog
// price when set.
type LineSelection struct {
	ProductID string
	Quantity  int
	UnitPrice *float64
	StartDate *time.Time
	EndDate   *time.Time
}

// LineEdit changes one existing line. Nil fields are left as they are.
type LineEdit struct {
	Quantity  *int
	StartDate *time.Time
	EndDate   *time.Time
}

// RentalDetails is a record together with the totals and actions the
// console shows for it.
type RentalDetails struct {
	Totals      entities.Summary   `json:"totals"`
	TotalsError string             `json:"totalsError,omitempty"`
	Allowed     []lifecycle.Action `json:"allowedActions"`
}

// rentalBuilder turns operator input into a priced rental using the
// current catalog and client list.
type rentalBuilder struct {
	products interfaces.IProductAPI
	clients  interfaces.IClientAPI
	engine   *pricing.Engine
}

func (b rentalBuilder) validate(in RentalInput) error {
	if strings.TrimSpace(in.ClientID) == "" {
		return errs.Invalid("clientId", "is required")
	}
	if !in.RentalType.Valid() {
		return errs.Invalid("rentalType", "must be daily, monthly or yearly")
	}
	if err := validateRange("startDate", "endDate", &in.StartDate, &in.EndDate); err != nil {
		return err
	}
	if in.StartDate.IsZero() {
		return errs.Invalid("startDate", "is required")
	}
	if in.EndDate.IsZero() {
		return errs.Invalid("endDate", "is required")
	}
	if len(in.Lines) == 0 {
		return errs.Invalid("products", "at least one product is required")
	}
	for i, l := range in.Lines {
		prefix := fmt.Sprintf("products[%d].", i)
		if strings.TrimSpace(l.ProductID) == "" {
			return errs.Invalid(prefix+"productId", "is required")
		}
		if l.Quantity < 1 {
			return errs.Invalid(prefix+"quantity", "must be at least 1")
		}
		if l.UnitPrice != nil && *l.UnitPrice < 0 {
			return errs.Invalid(prefix+"unitPrice", "must not be negative")
		}
		if err := validateRange(prefix+"startDate", prefix+"endDate", l.StartDate, l.EndDate); err != nil {
			return err
		}
	}
	return b.engine.Validate(pricing.Input{Params: in.Params})
}

// build validates in, snapshots the selected products and prices the
// result without a deposit term. reserved holds quantities already held by
// the record being edited; they count as available again.
func (b rentalBuilder) build(ctx context.Context, in RentalInput, reserved map[string]int) (entities.Rental, error) {
	if err := b.validate(in); err != nil {
		return entities.Rental{}, err
	}

	client, err := b.findClient(ctx, strings.TrimSpace(in.ClientID))
	if err != nil {
		return entities.Rental{}, err
	}

	catalog, err := b.products.List(ctx)
	if err != nil {
		return entities.Rental{}, err
	}
	byID := make(map[string]entities.Product, len(catalog))
	for _, p := range catalog {
		byID[p.ID] = p
	}

	lines := make([]entities.LineItem, 0, len(in.Lines))
	for i, sel := range in.Lines {
		prefix := fmt.Sprintf("products[%d].", i)
		p, ok := byID[strings.TrimSpace(sel.ProductID)]
		if !ok {
			return entities.Rental{}, errs.Invalid(prefix+"productId", "unknown product %q", sel.ProductID)
		}
		p.AvailableQty += reserved[p.ID]
		li, err := pricing.NewLineItem(p, sel.Quantity)
		if err != nil {
			return entities.Rental{}, prefixField(err, prefix)
		}
		if sel.UnitPrice != nil {
			if li, err = pricing.WithUnitPrice(li, *sel.UnitPrice); err != nil {
				return entities.Rental{}, prefixField(err, prefix)
			}
		}
		li.StartDate = sel.StartDate
		li.EndDate = sel.EndDate
		lines = append(lines, li)
	}

	r := entities.Rental{
		ClientID:          client.ID,
		ClientName:        client.ClientName,
		Client:            &client,
		Products:          lines,
		PricingParameters: in.Params,
		RentalType:        in.RentalType,
		StartDate:         in.StartDate,
		EndDate:           in.EndDate,
		Status:            entities.StatusPending,
	}
	if r.GrandTotal, err = b.grandTotal(r); err != nil {
		return entities.Rental{}, err
	}
	return r, nil
}

func (b rentalBuilder) findClient(ctx context.Context, id string) (entities.Client, error) {
	clients, err := b.clients.List(ctx)
	if err != nil {
		return entities.Client{}, err
	}
	for _, c := range clients {
		if c.ID != id {
			continue
		}
		if !c.IsActive {
			return entities.Client{}, errs.Invalid("clientId", "client %s is inactive", c.ClientName)
		}
		return c, nil
	}
	return entities.Client{}, errs.Invalid("clientId", "unknown client %q", id)
}

// grandTotal is the stored snapshot: quotations and order forms carry no
// deposit term.
func (b rentalBuilder) grandTotal(r entities.Rental) (float64, error) {
	totals, err := b.engine.Compute(pricing.Input{Lines: r.Products, Params: r.PricingParameters, Deposit: pricing.DepositNone})
	if err != nil {
		return 0, err
	}
	return totals.GrandTotal.InexactFloat64(), nil
}

// resync re-derives every line total and the grand total of a stored
// rental. changed reports whether anything differs from what was stored.
func (b rentalBuilder) resync(r entities.Rental) (entities.Rental, bool, error) {
	lines := pricing.Normalize(r.Products)
	changed := false
	for i := range lines {
		if lines[i].TotalPrice != r.Products[i].TotalPrice {
			changed = true
		}
	}
	r.Products = lines
	grand, err := b.grandTotal(r)
	if err != nil {
		return entities.Rental{}, false, err
	}
	if grand != r.GrandTotal {
		changed = true
	}
	r.GrandTotal = grand
	return r, changed, nil
}

// details prices r for display. A record the engine rejects (for example a
// GST rate no longer offered) is still shown, with the reason.
func (b rentalBuilder) details(r entities.Rental, deposit pricing.DepositSource) RentalDetails {
	d := RentalDetails{Allowed: lifecycle.Allowed(r.Status)}
	totals, err := b.engine.Compute(pricing.Input{
		Lines:         r.Products,
		Params:        r.PricingParameters,
		Deposit:       deposit,
		ClientDeposit: r.ClientDeposit(),
	})
	if err != nil {
		d.TotalsError = err.Error()
		return d
	}
	d.Totals = totals.Summary()
	return d
}

// editLine applies e to the line addressed by key and re-prices r.
func (b rentalBuilder) editLine(r entities.Rental, key string, e LineEdit) (entities.Rental, error) {
	idx := -1
	for i, li := range r.Products {
		if li.ID == key || li.ProductID == key {
			idx = i
			break
		}
	}
	if idx < 0 {
		return entities.Rental{}, ErrLineItemNotFound
	}

	li := r.Products[idx]
	if e.Quantity != nil {
		updated, err := pricing.WithQuantity(li, *e.Quantity)
		if err != nil {
			return entities.Rental{}, err
		}
		li = updated
	}
	if e.StartDate != nil {
		li.StartDate = e.StartDate
	}
	if e.EndDate != nil {
		li.EndDate = e.EndDate
	}
	if err := validateRange("startDate", "endDate", li.StartDate, li.EndDate); err != nil {
		return entities.Rental{}, err
	}

	lines := append([]entities.LineItem(nil), r.Products...)
	lines[idx] = li
	r.Products = pricing.Normalize(lines)

	var err error
	if r.GrandTotal, err = b.grandTotal(r); err != nil {
		return entities.Rental{}, err
	}
	return r, nil
}

// reservedQty sums the quantities r holds per product.
func reservedQty(r entities.Rental) map[string]int {
	out := make(map[string]int, len(r.Products))
	for _, li := range r.Products {
		out[li.ProductID] += li.Quantity
	}
	return out
}

func validateRange(startField, endField string, start, end *time.Time) error {
	if start == nil || end == nil || start.IsZero() || end.IsZero() {
		if end != nil && !end.IsZero() && (start == nil || start.IsZero()) {
			return errs.Invalid(startField, "is required when %s is set", endField)
		}
		return nil
	}
	if end.Before(*start) {
		return errs.Invalid(endField, "must not be before %s", startField)
	}
	return nil
}

func prefixField(err error, prefix string) error {
	var ve *errs.ValidationError
	if errors.As(err, &ve) {
		return errs.Invalid(prefix+ve.Field, "%s", ve.Reason)
	}
	return err
}

// defaultDocumentNo derives a display number from the record id when the
// operator has not assigned one.
func defaultDocumentNo(prefix, id string) string {
	id = strings.TrimSpace(id)
	if len(id) > 6 {
		id = id[len(id)-6:]
	}
	return prefix + strings.ToUpper(id)
}
