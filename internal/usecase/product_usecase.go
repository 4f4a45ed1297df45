package usecase

import (
	"context"
	"errors"
	"rental_console/internal/domain/entities"
	"rental_console/internal/domain/errs"
	"rental_console/internal/usecase/interfaces"
	"strings"

	"github.com/sirupsen/logrus"
)

var ErrInvalidProductID = errors.New("invalid product id")

type IProductUseCase interface {
	List(ctx context.Context, availableOnly bool) ([]entities.Product, error)
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	Update(ctx context.Context, id string, p entities.Product) (entities.Product, error)
	Delete(ctx context.Context, id string, confirmed bool) error
}

type ProductUseCase struct {
	products interfaces.IProductAPI
	log      logrus.FieldLogger
}

var _ IProductUseCase = (*ProductUseCase)(nil)

func NewProductUseCase(products interfaces.IProductAPI, logger logrus.FieldLogger) *ProductUseCase {
	return &ProductUseCase{products: products, log: loggerOrDiscard(logger)}
}

func (u *ProductUseCase) List(ctx context.Context, availableOnly bool) ([]entities.Product, error) {
	all, err := u.products.List(ctx)
	if err != nil {
		return nil, err
	}
	if !availableOnly {
		return all, nil
	}
	out := make([]entities.Product, 0, len(all))
	for _, p := range all {
		if p.AvailableQty > 0 {
			out = append(out, p)
		}
	}
	return out, nil
}

// Create adds a catalog entry. A new product with no availability given is
// fully available.
func (u *ProductUseCase) Create(ctx context.Context, p entities.Product) (entities.Product, error) {
	if p.AvailableQty == 0 {
		p.AvailableQty = p.Quantity
	}
	p, err := normalizeProduct(p)
	if err != nil {
		return entities.Product{}, err
	}
	created, err := u.products.Create(ctx, p)
	if err != nil {
		u.log.WithFields(logrus.Fields{"product_name": p.ProductName, "err": err}).Error("[product][usecase] create failed")
		return entities.Product{}, err
	}
	u.log.WithField("product_id", created.ID).Info("[product][usecase] created")
	return created, nil
}

func (u *ProductUseCase) Update(ctx context.Context, id string, p entities.Product) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}
	p, err := normalizeProduct(p)
	if err != nil {
		return entities.Product{}, err
	}
	p.ID = id
	updated, err := u.products.Update(ctx, id, p)
	if err != nil {
		u.log.WithFields(logrus.Fields{"product_id": id, "err": err}).Error("[product][usecase] update failed")
		return entities.Product{}, err
	}
	return updated, nil
}

func (u *ProductUseCase) Delete(ctx context.Context, id string, confirmed bool) error {
	if err := errs.RequireConfirmation(confirmed, "delete product"); err != nil {
		return err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidProductID
	}
	if err := u.products.Delete(ctx, id); err != nil {
		u.log.WithFields(logrus.Fields{"product_id": id, "err": err}).Error("[product][usecase] delete failed")
		return err
	}
	u.log.WithField("product_id", id).Info("[product][usecase] deleted")
	return nil
}

func normalizeProduct(p entities.Product) (entities.Product, error) {
	p.ProductName = strings.TrimSpace(p.ProductName)
	p.ProductType = strings.TrimSpace(p.ProductType)
	p.BrandName = strings.TrimSpace(p.BrandName)
	switch {
	case p.ProductName == "":
		return p, errs.Invalid("productName", "is required")
	case p.ProductType == "":
		return p, errs.Invalid("productType", "is required")
	case p.Price < 0:
		return p, errs.Invalid("price", "must not be negative")
	case p.DepositAmount < 0:
		return p, errs.Invalid("depositAmount", "must not be negative")
	case p.Quantity < 0:
		return p, errs.Invalid("quantity", "must not be negative")
	case p.AvailableQty < 0:
		return p, errs.Invalid("availableQty", "must not be negative")
	case p.AvailableQty > p.Quantity:
		return p, errs.Invalid("availableQty", "must not exceed quantity %d", p.Quantity)
	}
	return p, nil
}
