package pricing

import (
	"rental_console/internal/domain/entities"
	"rental_console/internal/domain/errs"
	"strings"
)

// NewLineItem snapshots a catalog product into a line item. The product's
// availableQty at selection time becomes the line's quantity cap.
func NewLineItem(p entities.Product, quantity int) (entities.LineItem, error) {
	if strings.TrimSpace(p.ID) == "" {
		return entities.LineItem{}, errs.Invalid("productId", "is required")
	}
	if quantity < 1 {
		return entities.LineItem{}, errs.Invalid("quantity", "must be at least 1")
	}
	if quantity > p.AvailableQty {
		return entities.LineItem{}, errs.Invalid("quantity", "exceeds available quantity %d for %s", p.AvailableQty, p.ProductName)
	}
	li := entities.LineItem{
		ProductID:     p.ID,
		ProductName:   p.ProductName,
		ProductType:   p.ProductType,
		UnitPrice:     p.Price,
		Quantity:      quantity,
		AvailableQty:  p.AvailableQty,
		DepositAmount: p.DepositAmount,
	}
	li.TotalPrice = LineTotal(li)
	if err := ValidateLine(li); err != nil {
		return entities.LineItem{}, err
	}
	return li, nil
}

// WithQuantity returns li with a new quantity and a re-derived total.
func WithQuantity(li entities.LineItem, quantity int) (entities.LineItem, error) {
	li.Quantity = quantity
	if err := ValidateLine(li); err != nil {
		return entities.LineItem{}, err
	}
	li.TotalPrice = LineTotal(li)
	return li, nil
}

// WithUnitPrice returns li with a new unit price and a re-derived total.
func WithUnitPrice(li entities.LineItem, unitPrice float64) (entities.LineItem, error) {
	li.UnitPrice = unitPrice
	if err := ValidateLine(li); err != nil {
		return entities.LineItem{}, err
	}
	li.TotalPrice = LineTotal(li)
	return li, nil
}

// LineTotal is unitPrice × quantity.
func LineTotal(li entities.LineItem) float64 {
	return lineTotal(li.UnitPrice, li.Quantity).InexactFloat64()
}

// Normalize re-derives every line's total, discarding whatever total the
// caller or the API supplied.
func Normalize(lines []entities.LineItem) []entities.LineItem {
	out := make([]entities.LineItem, len(lines))
	for i, li := range lines {
		li.TotalPrice = LineTotal(li)
		out[i] = li
	}
	return out
}
