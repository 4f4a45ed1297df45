package entities

import "time"

// Client is a renting customer. Amount is a flat deposit/credit figure kept
// on the client record.
type Client struct {
	ID          string     `json:"id"`
	ClientName  string     `json:"clientName"`
	PhoneNumber string     `json:"phoneNumber"`
	Email       string     `json:"email"`
	GSTNo       string     `json:"gstNo"`
	JoiningDate *time.Time `json:"joiningDate,omitempty"`
	Address     string     `json:"address"`
	Amount      float64    `json:"amount"`
	IsActive    bool       `json:"isActive"`
}

// Product is a catalog entry. AvailableQty is maintained by the rental API.
type Product struct {
	ID            string  `json:"id"`
	ProductName   string  `json:"productName"`
	ProductType   string  `json:"productType"`
	BrandName     string  `json:"brandName"`
	Price         float64 `json:"price"`
	DepositAmount float64 `json:"depositAmount"`
	Quantity      int     `json:"quantity"`
	AvailableQty  int     `json:"availableQty"`
	SystemNumber  string  `json:"systemNumber,omitempty"`
	SerialNumber  string  `json:"serialNumber,omitempty"`
	Description   string  `json:"description,omitempty"`
}

// TermsPoint is one numbered clause of a terms & conditions sheet.
type TermsPoint struct {
	PointNumber int    `json:"pointNumber"`
	Description string `json:"description"`
}

// Terms are the terms & conditions printed on a client's invoices.
type Terms struct {
	ID         string       `json:"id"`
	ClientID   string       `json:"clientId"`
	ClientName string       `json:"clientName"`
	Title      string       `json:"title"`
	Points     []TermsPoint `json:"points"`
}

// InvoiceName is the business name printed in the invoice header.
type InvoiceName struct {
	ID          string `json:"id"`
	InvoiceName string `json:"invoiceName"`
}
