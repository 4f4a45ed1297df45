package request

import (
	"rental_console/internal/domain/entities"
	"strings"
)

type ClientRequest struct {
	ClientName  string  `json:"clientName" binding:"required"`
	PhoneNumber string  `json:"phoneNumber" binding:"required"`
	Email       string  `json:"email" binding:"omitempty,email"`
	GSTNo       string  `json:"gstNo"`
	JoiningDate *string `json:"joiningDate"`
	Address     string  `json:"address"`
	Amount      float64 `json:"amount" binding:"gte=0"`
	IsActive    *bool   `json:"isActive"`
}

func (r ClientRequest) ToEntity() (entities.Client, error) {
	joined, err := ParseOptionalDate(r.JoiningDate)
	if err != nil {
		return entities.Client{}, err
	}
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return entities.Client{
		ClientName:  strings.TrimSpace(r.ClientName),
		PhoneNumber: r.PhoneNumber,
		Email:       strings.TrimSpace(r.Email),
		GSTNo:       r.GSTNo,
		JoiningDate: joined,
		Address:     strings.TrimSpace(r.Address),
		Amount:      r.Amount,
		IsActive:    active,
	}, nil
}

type ProductRequest struct {
	ProductName   string  `json:"productName" binding:"required"`
	ProductType   string  `json:"productType" binding:"required"`
	BrandName     string  `json:"brandName"`
	Price         float64 `json:"price" binding:"gte=0"`
	DepositAmount float64 `json:"depositAmount" binding:"gte=0"`
	Quantity      int     `json:"quantity" binding:"gte=0"`
	AvailableQty  *int    `json:"availableQty" binding:"omitempty,gte=0"`
	SystemNumber  string  `json:"systemNumber"`
	SerialNumber  string  `json:"serialNumber"`
	Description   string  `json:"description"`
}

// ToEntity defaults availableQty to the stock quantity for new products.
func (r ProductRequest) ToEntity() entities.Product {
	available := r.Quantity
	if r.AvailableQty != nil {
		available = *r.AvailableQty
	}
	return entities.Product{
		ProductName:   strings.TrimSpace(r.ProductName),
		ProductType:   strings.TrimSpace(r.ProductType),
		BrandName:     strings.TrimSpace(r.BrandName),
		Price:         r.Price,
		DepositAmount: r.DepositAmount,
		Quantity:      r.Quantity,
		AvailableQty:  available,
		SystemNumber:  strings.TrimSpace(r.SystemNumber),
		SerialNumber:  strings.TrimSpace(r.SerialNumber),
		Description:   strings.TrimSpace(r.Description),
	}
}

type TermsPointRequest struct {
	PointNumber int    `json:"pointNumber"`
	Description string `json:"description" binding:"required"`
}

type TermsRequest struct {
	ClientID string              `json:"clientId" binding:"required"`
	Title    string              `json:"title"`
	Points   []TermsPointRequest `json:"points" binding:"required,min=1,dive"`
}

func (r TermsRequest) ToEntity() entities.Terms {
	points := make([]entities.TermsPoint, 0, len(r.Points))
	for _, p := range r.Points {
		points = append(points, entities.TermsPoint{PointNumber: p.PointNumber, Description: strings.TrimSpace(p.Description)})
	}
	return entities.Terms{
		ClientID: strings.TrimSpace(r.ClientID),
		Title:    strings.TrimSpace(r.Title),
		Points:   points,
	}
}

type InvoiceNameRequest struct {
	InvoiceName string `json:"invoiceName" binding:"required"`
}

// NumberRequest assigns an invoice or delivery challan number.
type NumberRequest struct {
	Value string `json:"value" binding:"required"`
}
