package rentalapi

import (
	"context"
	"rental_console/internal/domain/entities"
	"rental_console/internal/usecase/interfaces"
)

const pathProduct = "/product"

type ProductAPI struct{ c *Client }

var _ interfaces.IProductAPI = (*ProductAPI)(nil)

func (a *ProductAPI) List(ctx context.Context) ([]entities.Product, error) {
	var ws []productWire
	if err := a.c.get(ctx, pathProduct+"/getallproducts", &ws); err != nil {
		return nil, err
	}
	out := make([]entities.Product, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.toEntity())
	}
	return out, nil
}

func (a *ProductAPI) Create(ctx context.Context, p entities.Product) (entities.Product, error) {
	var w productWire
	if err := a.c.post(ctx, pathProduct+"/addproduct", fromProduct(p), &w, "product"); err != nil {
		return entities.Product{}, err
	}
	return w.toEntity(), nil
}

func (a *ProductAPI) Update(ctx context.Context, id string, p entities.Product) (entities.Product, error) {
	var w productWire
	if err := a.c.put(ctx, idPath(pathProduct+"/updateproduct", id), fromProduct(p), &w, "product"); err != nil {
		return entities.Product{}, err
	}
	return w.toEntity(), nil
}

func (a *ProductAPI) Delete(ctx context.Context, id string) error {
	return a.c.delete(ctx, idPath(pathProduct+"/deleteproduct", id))
}
