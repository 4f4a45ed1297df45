package entities

import "time"

// LineItem is one rented product within a quotation or an order.
//
// TotalPrice is always UnitPrice × Quantity; it is re-derived whenever the
// quantity or the price changes and is never edited on its own.
// AvailableQty is the catalog availability captured when the product was
// chosen; zero means the snapshot is unknown. ID is the line's own id when
// the API assigns one.
type LineItem struct {
	ID            string     `json:"id,omitempty"`
	ProductID     string     `json:"productId"`
	ProductName   string     `json:"productName"`
	ProductType   string     `json:"productType"`
	UnitPrice     float64    `json:"unitPrice"`
	Quantity      int        `json:"quantity"`
	AvailableQty  int        `json:"availableQty,omitempty"`
	DepositAmount float64    `json:"depositAmount,omitempty"`
	TotalPrice    float64    `json:"totalPrice"`
	StartDate     *time.Time `json:"startDate,omitempty"`
	EndDate       *time.Time `json:"endDate,omitempty"`
}

// PricingParameters are the per-record charges. GST and Discount are
// percentages; TransportCharges is a currency amount.
type PricingParameters struct {
	GST              float64 `json:"gst"`
	Discount         float64 `json:"discount"`
	TransportCharges float64 `json:"transportCharges"`
}

// Rental holds the fields shared by quotations and orders.
//
// GrandTotal is the value snapshotted at create/update time; the API does not
// recompute it on read.
type Rental struct {
	ID         string     `json:"id"`
	ClientID   string     `json:"clientId"`
	ClientName string     `json:"clientName"`
	Client     *Client    `json:"client,omitempty"`
	Products   []LineItem `json:"products"`
	PricingParameters
	RentalType RentalType `json:"rentalType"`
	StartDate  time.Time  `json:"startDate"`
	EndDate    time.Time  `json:"endDate"`
	Status     Status     `json:"status"`
	GrandTotal float64    `json:"grandTotal"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// Key is the id the API addresses the line by: its own id when known,
// otherwise the product id.
func (li LineItem) Key() string {
	if li.ID != "" {
		return li.ID
	}
	return li.ProductID
}

// LineItem returns the line addressed by key (line id or product id).
func (r Rental) LineItem(key string) (LineItem, bool) {
	for _, li := range r.Products {
		if li.ID == key || li.ProductID == key {
			return li, true
		}
	}
	return LineItem{}, false
}

// ClientDeposit is the flat deposit figure of the populated client, if any.
func (r Rental) ClientDeposit() float64 {
	if r.Client == nil {
		return 0
	}
	return r.Client.Amount
}

// Quotation is a non-binding proposed rental awaiting confirmation.
type Quotation struct {
	Rental
}

// Order is a confirmed or in-progress rental transaction.
type Order struct {
	Rental
	QuotationID       string `json:"quotationId,omitempty"`
	InvoiceNo         string `json:"invoiceNo"`
	DeliveryChallanNo string `json:"deliveryChallanNo"`
}
