package rentalapi

import (
	"context"
	"rental_console/internal/domain/entities"
	"rental_console/internal/usecase/interfaces"
)

const pathInvoiceName = "/invoicename"

type InvoiceNameAPI struct{ c *Client }

var _ interfaces.IInvoiceNameAPI = (*InvoiceNameAPI)(nil)

func (a *InvoiceNameAPI) List(ctx context.Context) ([]entities.InvoiceName, error) {
	var ws []invoiceNameWire
	if err := a.c.get(ctx, pathInvoiceName+"/getallinvoicename", &ws); err != nil {
		return nil, err
	}
	out := make([]entities.InvoiceName, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.toEntity())
	}
	return out, nil
}

func (a *InvoiceNameAPI) Update(ctx context.Context, id, name string) (entities.InvoiceName, error) {
	var w invoiceNameWire
	body := map[string]string{"invoiceName": name}
	if err := a.c.put(ctx, idPath(pathInvoiceName+"/updateinvoicename", id), body, &w); err != nil {
		return entities.InvoiceName{}, err
	}
	return w.toEntity(), nil
}
