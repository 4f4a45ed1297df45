package entities

import "time"

// Summary is the float view of pricing totals carried to responses and
// rendered documents.
type Summary struct {
	Subtotal         float64 `json:"subtotal"`
	GSTAmount        float64 `json:"gstAmount"`
	DiscountAmount   float64 `json:"discountAmount"`
	TransportCharges float64 `json:"transportCharges"`
	DepositTotal     float64 `json:"depositTotal"`
	GrandTotal       float64 `json:"grandTotal"`
}

// InvoiceDocument is everything printed on a rental invoice.
type InvoiceDocument struct {
	BusinessName string
	InvoiceNo    string
	IssuedAt     time.Time
	Order        Order
	Client       Client
	Totals       Summary
	Terms        []TermsPoint
}

// ChallanDocument is everything printed on a delivery challan. Challans carry
// no prices.
type ChallanDocument struct {
	BusinessName string
	ChallanNo    string
	IssuedAt     time.Time
	Order        Order
	Client       Client
}
