package request

import (
	"encoding/json"
	"rental_console/internal/domain/entities"
	"rental_console/internal/usecase"
	"strings"
)

// PaymentRequest records or edits a payment. ProviderPayload is forwarded to
// the payment gateway as-is for online captures.
type PaymentRequest struct {
	PaymentMethod   string          `json:"paymentMethod" binding:"required"`
	PaymentType     string          `json:"paymentType" binding:"required"`
	Amount          float64         `json:"amount" binding:"required,gt=0"`
	PaymentDate     *string         `json:"paymentDate"`
	NextPaymentDate *string         `json:"nextPaymentDate"`
	ProviderPayload json.RawMessage `json:"providerPayload"`
}

func (r PaymentRequest) ToInput() (usecase.PaymentInput, error) {
	paid, err := ParseOptionalDate(r.PaymentDate)
	if err != nil {
		return usecase.PaymentInput{}, err
	}
	next, err := ParseOptionalDate(r.NextPaymentDate)
	if err != nil {
		return usecase.PaymentInput{}, err
	}
	return usecase.PaymentInput{
		PaymentMethod:   entities.PaymentMethod(strings.ToLower(strings.TrimSpace(r.PaymentMethod))),
		PaymentType:     entities.PaymentType(strings.TrimSpace(r.PaymentType)),
		Amount:          r.Amount,
		PaymentDate:     paid,
		NextPaymentDate: next,
		ProviderPayload: r.ProviderPayload,
	}, nil
}

// PaymentQuery is the payment report filter read from the query string.
type PaymentQuery struct {
	Status   string `form:"status"`
	OrderID  string `form:"orderId"`
	ClientID string `form:"clientId"`
	From     string `form:"from"`
	To       string `form:"to"`
}

func (q PaymentQuery) ToFilter() (usecase.PaymentFilter, error) {
	from, err := ParseOptionalDate(&q.From)
	if err != nil {
		return usecase.PaymentFilter{}, err
	}
	to, err := ParseOptionalDate(&q.To)
	if err != nil {
		return usecase.PaymentFilter{}, err
	}
	return usecase.PaymentFilter{
		Status:   entities.PaymentStatus(strings.ToLower(strings.TrimSpace(q.Status))),
		OrderID:  strings.TrimSpace(q.OrderID),
		ClientID: strings.TrimSpace(q.ClientID),
		From:     from,
		To:       to,
	}, nil
}

// PendingPaymentQuery selects the pending payment window.
type PendingPaymentQuery struct {
	Window string `form:"window"`
	From   string `form:"from"`
	To     string `form:"to"`
}

func (q PendingPaymentQuery) ToQuery() (usecase.PendingQuery, error) {
	from, err := ParseOptionalDate(&q.From)
	if err != nil {
		return usecase.PendingQuery{}, err
	}
	to, err := ParseOptionalDate(&q.To)
	if err != nil {
		return usecase.PendingQuery{}, err
	}
	return usecase.PendingQuery{
		Window: usecase.PendingWindow(strings.ToLower(strings.TrimSpace(q.Window))),
		From:   from,
		To:     to,
	}, nil
}
