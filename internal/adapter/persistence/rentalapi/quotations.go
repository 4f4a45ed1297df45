package rentalapi

import (
	"context"
	"rental_console/internal/domain/entities"
	"rental_console/internal/usecase/interfaces"
)

const pathQuotations = "/quotations"

type QuotationAPI struct{ c *Client }

var _ interfaces.IQuotationAPI = (*QuotationAPI)(nil)

func (w quotationWire) toQuotation() entities.Quotation {
	return entities.Quotation{Rental: w.rentalWire.toEntity()}
}

func (a *QuotationAPI) List(ctx context.Context) ([]entities.Quotation, error) {
	var ws []quotationWire
	if err := a.c.get(ctx, pathQuotations+"/getallquotation", &ws, "quotations"); err != nil {
		return nil, err
	}
	out := make([]entities.Quotation, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.toQuotation())
	}
	return out, nil
}

func (a *QuotationAPI) Get(ctx context.Context, id string) (entities.Quotation, error) {
	var w quotationWire
	if err := a.c.get(ctx, idPath(pathQuotations+"/getbyquotation", id), &w, "quotation"); err != nil {
		return entities.Quotation{}, err
	}
	return w.toQuotation(), nil
}

func (a *QuotationAPI) Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error) {
	var w quotationWire
	if err := a.c.post(ctx, pathQuotations+"/createquotation", quotationWire{fromRental(q.Rental)}, &w, "quotation"); err != nil {
		return entities.Quotation{}, err
	}
	return w.toQuotation(), nil
}

func (a *QuotationAPI) Update(ctx context.Context, id string, q entities.Quotation) (entities.Quotation, error) {
	var w quotationWire
	if err := a.c.put(ctx, idPath(pathQuotations+"/editquotation", id), quotationWire{fromRental(q.Rental)}, &w, "quotation"); err != nil {
		return entities.Quotation{}, err
	}
	return w.toQuotation(), nil
}

func (a *QuotationAPI) DeleteProduct(ctx context.Context, id, lineKey string) error {
	return a.c.delete(ctx, idPath(pathQuotations, id, "product", lineKey))
}

func (a *QuotationAPI) Cancel(ctx context.Context, id string) error {
	return a.c.put(ctx, idPath(pathQuotations+"/cancelquotation", id), nil, nil)
}

// GenerateOrder converts the quotation server-side and returns the new order
// when the API includes it in the response.
func (a *QuotationAPI) GenerateOrder(ctx context.Context, id string) (entities.Order, error) {
	var w orderWire
	if err := a.c.post(ctx, idPath(pathQuotations+"/generate-order", id), nil, &w, "order"); err != nil {
		return entities.Order{}, err
	}
	return w.toEntity(), nil
}
