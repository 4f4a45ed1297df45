package rentalapi

import (
	"context"
	"rental_console/internal/domain/entities"
	"rental_console/internal/usecase/interfaces"
)

const pathPayment = "/payment"

type PaymentAPI struct{ c *Client }

var _ interfaces.IPaymentAPI = (*PaymentAPI)(nil)

func (a *PaymentAPI) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	var w paymentWire
	if err := a.c.post(ctx, pathPayment+"/createpayment", fromPayment(p), &w, "payment"); err != nil {
		return entities.Payment{}, err
	}
	return w.toEntity(), nil
}

func (a *PaymentAPI) Update(ctx context.Context, id string, p entities.Payment) (entities.Payment, error) {
	var w paymentWire
	body := paymentUpdateWire{
		PaymentMethod:   string(p.PaymentMethod),
		PaymentType:     string(p.PaymentType),
		Amount:          flexFloat(p.Amount),
		NextPaymentDate: newAPITimePtr(p.NextPaymentDate),
	}
	if err := a.c.put(ctx, idPath(pathPayment+"/update", id), body, &w, "payment"); err != nil {
		return entities.Payment{}, err
	}
	return w.toEntity(), nil
}

func (a *PaymentAPI) List(ctx context.Context) ([]entities.Payment, error) {
	return a.list(ctx, pathPayment+"/getallpayment")
}

func (a *PaymentAPI) ListUpcoming(ctx context.Context) ([]entities.Payment, error) {
	return a.list(ctx, pathPayment+"/getNextPaymentsdate")
}

func (a *PaymentAPI) list(ctx context.Context, path string) ([]entities.Payment, error) {
	var ws []paymentWire
	if err := a.c.get(ctx, path, &ws, "payments"); err != nil {
		return nil, err
	}
	out := make([]entities.Payment, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.toEntity())
	}
	return out, nil
}
