package response

import (
	"rental_console/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// PaymentReportResponse is a payment listing with its paid total. The total
// sums only payments marked paid.
type PaymentReportResponse struct {
	Data      []entities.Payment `json:"data"`
	Count     int                `json:"count"`
	TotalPaid float64            `json:"totalPaid"`
}

func FromPayments(payments []entities.Payment) PaymentReportResponse {
	if payments == nil {
		payments = []entities.Payment{}
	}
	total := decimal.Zero
	for _, p := range payments {
		if p.PaymentStatus == entities.PaymentStatusPaid {
			total = total.Add(decimal.NewFromFloat(p.Amount))
		}
	}
	return PaymentReportResponse{
		Data:      payments,
		Count:     len(payments),
		TotalPaid: total.InexactFloat64(),
	}
}
