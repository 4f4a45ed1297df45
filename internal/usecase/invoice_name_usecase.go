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

var ErrInvalidInvoiceNameID = errors.New("invalid invoice name id")

// IInvoiceNameUseCase manages the business name printed on invoices.
type IInvoiceNameUseCase interface {
	List(ctx context.Context) ([]entities.InvoiceName, error)
	Rename(ctx context.Context, id, name string) (entities.InvoiceName, error)
}

type InvoiceNameUseCase struct {
	names interfaces.IInvoiceNameAPI
	log   logrus.FieldLogger
}

var _ IInvoiceNameUseCase = (*InvoiceNameUseCase)(nil)

func NewInvoiceNameUseCase(names interfaces.IInvoiceNameAPI, logger logrus.FieldLogger) *InvoiceNameUseCase {
	return &InvoiceNameUseCase{names: names, log: loggerOrDiscard(logger)}
}

func (u *InvoiceNameUseCase) List(ctx context.Context) ([]entities.InvoiceName, error) {
	return u.names.List(ctx)
}

func (u *InvoiceNameUseCase) Rename(ctx context.Context, id, name string) (entities.InvoiceName, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.InvoiceName{}, ErrInvalidInvoiceNameID
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.InvoiceName{}, errs.Invalid("invoiceName", "must not be empty")
	}
	updated, err := u.names.Update(ctx, id, name)
	if err != nil {
		u.log.WithFields(logrus.Fields{"invoice_name_id": id, "err": err}).Error("[invoicename][usecase] rename failed")
		return entities.InvoiceName{}, err
	}
	return updated, nil
}

// businessName is the first configured invoice name, or "" when none is set.
func businessName(ctx context.Context, api interfaces.IInvoiceNameAPI) (string, error) {
	names, err := api.List(ctx)
	if err != nil {
		return "", err
	}
	for _, n := range names {
		if v := strings.TrimSpace(n.InvoiceName); v != "" {
			return v, nil
		}
	}
	return "", nil
}
