package request

import (
	"rental_console/internal/domain/entities"
	"rental_console/internal/usecase"
	"strings"
	"time"
)

type LineSelectionRequest struct {
	ProductID string   `json:"productId" binding:"required"`
	Quantity  int      `json:"quantity" binding:"required,min=1"`
	UnitPrice *float64 `json:"unitPrice" binding:"omitempty,gte=0"`
	StartDate *string  `json:"startDate"`
	EndDate   *string  `json:"endDate"`
}

// RentalRequest is the quotation and order form. Line totals and the grand
// total are never read from the payload.
type RentalRequest struct {
	ClientID         string                 `json:"clientId" binding:"required"`
	Products         []LineSelectionRequest `json:"products" binding:"required,min=1,dive"`
	GST              float64                `json:"gst"`
	Discount         float64                `json:"discount"`
	TransportCharges float64                `json:"transportCharges"`
	RentalType       string                 `json:"rentalType" binding:"required"`
	StartDate        string                 `json:"startDate" binding:"required"`
	EndDate          string                 `json:"endDate" binding:"required"`
}

func (r RentalRequest) ToInput() (usecase.RentalInput, error) {
	start, err := ParseDate(r.StartDate)
	if err != nil {
		return usecase.RentalInput{}, err
	}
	end, err := ParseDate(r.EndDate)
	if err != nil {
		return usecase.RentalInput{}, err
	}

	lines := make([]usecase.LineSelection, 0, len(r.Products))
	for _, p := range r.Products {
		lineStart, err := ParseOptionalDate(p.StartDate)
		if err != nil {
			return usecase.RentalInput{}, err
		}
		lineEnd, err := ParseOptionalDate(p.EndDate)
		if err != nil {
			return usecase.RentalInput{}, err
		}
		lines = append(lines, usecase.LineSelection{
			ProductID: strings.TrimSpace(p.ProductID),
			Quantity:  p.Quantity,
			UnitPrice: p.UnitPrice,
			StartDate: lineStart,
			EndDate:   lineEnd,
		})
	}

	return usecase.RentalInput{
		ClientID: strings.TrimSpace(r.ClientID),
		Lines:    lines,
		Params: entities.PricingParameters{
			GST:              r.GST,
			Discount:         r.Discount,
			TransportCharges: r.TransportCharges,
		},
		RentalType: entities.RentalType(strings.ToLower(strings.TrimSpace(r.RentalType))),
		StartDate:  start,
		EndDate:    end,
	}, nil
}

type DatesRequest struct {
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
}

func (r DatesRequest) Resolve() (start, end time.Time, err error) {
	if start, err = ParseDate(r.StartDate); err != nil {
		return time.Time{}, time.Time{}, err
	}
	if end, err = ParseDate(r.EndDate); err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// LineEditRequest changes one line. Absent fields keep their value.
type LineEditRequest struct {
	Quantity  *int    `json:"quantity" binding:"omitempty,min=1"`
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`
}

func (r LineEditRequest) ToEdit() (usecase.LineEdit, error) {
	start, err := ParseOptionalDate(r.StartDate)
	if err != nil {
		return usecase.LineEdit{}, err
	}
	end, err := ParseOptionalDate(r.EndDate)
	if err != nil {
		return usecase.LineEdit{}, err
	}
	return usecase.LineEdit{Quantity: r.Quantity, StartDate: start, EndDate: end}, nil
}
