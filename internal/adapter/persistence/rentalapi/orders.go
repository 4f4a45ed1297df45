package rentalapi

import (
	"context"
	"rental_console/internal/domain/entities"
	"rental_console/internal/usecase/interfaces"
)

const pathOrder = "/order"

type OrderAPI struct{ c *Client }

var _ interfaces.IOrderAPI = (*OrderAPI)(nil)

func (a *OrderAPI) List(ctx context.Context) ([]entities.Order, error) {
	var ws []orderWire
	if err := a.c.get(ctx, pathOrder+"/getallorder", &ws, "orders"); err != nil {
		return nil, err
	}
	out := make([]entities.Order, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.toEntity())
	}
	return out, nil
}

func (a *OrderAPI) Get(ctx context.Context, id string) (entities.Order, error) {
	var w orderWire
	if err := a.c.get(ctx, idPath(pathOrder+"/getorder", id), &w, "order"); err != nil {
		return entities.Order{}, err
	}
	return w.toEntity(), nil
}

func (a *OrderAPI) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	var w orderWire
	if err := a.c.post(ctx, pathOrder+"/createorder", fromOrder(o), &w, "order"); err != nil {
		return entities.Order{}, err
	}
	return w.toEntity(), nil
}

func (a *OrderAPI) Update(ctx context.Context, id string, o entities.Order) (entities.Order, error) {
	var w orderWire
	if err := a.c.put(ctx, idPath(pathOrder+"/updateorder", id), fromOrder(o), &w, "order"); err != nil {
		return entities.Order{}, err
	}
	return w.toEntity(), nil
}

func (a *OrderAPI) UpdateProduct(ctx context.Context, id, lineKey string, li entities.LineItem) error {
	body := lineUpdateWire{
		ProductName: li.ProductName,
		Quantity:    li.Quantity,
		StartDate:   newAPITimePtr(li.StartDate),
		EndDate:     newAPITimePtr(li.EndDate),
	}
	return a.c.put(ctx, idPath(pathOrder+"/updateproduct", id, lineKey), body, nil)
}

func (a *OrderAPI) DeleteProduct(ctx context.Context, id, lineKey string) error {
	return a.c.delete(ctx, idPath(pathOrder, id, "product", lineKey))
}

func (a *OrderAPI) Cancel(ctx context.Context, id string) error {
	return a.c.put(ctx, idPath(pathOrder+"/cancelorder", id), nil, nil)
}

func (a *OrderAPI) Delete(ctx context.Context, id string) error {
	return a.c.delete(ctx, idPath(pathOrder+"/deleteorder", id))
}

func (a *OrderAPI) UpdateInvoiceNo(ctx context.Context, id, invoiceNo string) error {
	body := map[string]string{"invoiceNo": invoiceNo}
	return a.c.put(ctx, idPath(pathOrder+"/updateinvoice", id), body, nil)
}

func (a *OrderAPI) UpdateChallanNo(ctx context.Context, id, challanNo string) error {
	body := map[string]string{"deliveryChallanNo": challanNo}
	return a.c.put(ctx, idPath(pathOrder+"/updatedeliverychallanno", id), body, nil)
}
