package usecase

import (
	"context"
	"errors"
	"rental_console/internal/domain/entities"
	"rental_console/internal/domain/errs"
	"rental_console/internal/domain/lifecycle"
	"rental_console/internal/domain/pricing"
	"rental_console/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

var (
	ErrQuotationNotFound  = errors.New("quotation not found")
	ErrInvalidQuotationID = errors.New("invalid quotation id")
)

// RentalFilter narrows a quotation or order listing. Zero values match
// everything.
type RentalFilter struct {
	Status   entities.Status
	ClientID string
}

func (f RentalFilter) validate() error {
	if f.Status != "" && !f.Status.Valid() {
		return errs.Invalid("status", "unknown status %q", f.Status)
	}
	return nil
}

func (f RentalFilter) match(r entities.Rental) bool {
	if f.Status != "" && r.Status != f.Status {
		return false
	}
	if id := strings.TrimSpace(f.ClientID); id != "" && r.ClientID != id {
		return false
	}
	return true
}

// QuotationDetails is a quotation priced for display.
type QuotationDetails struct {
	Quotation entities.Quotation `json:"quotation"`
	RentalDetails
}

// IQuotationUseCase manages quotations.
//
// Behavior:
//   - Every mutation is gated by the quotation status and rejected before
//     any write reaches the rental API.
//   - Every mutation is followed by a refetch; the refetched record is what
//     the caller gets back.

type IQuotationUseCase interface {
	List(ctx context.Context, filter RentalFilter) ([]entities.Quotation, error)
	Get(ctx context.Context, id string) (QuotationDetails, error)
	Create(ctx context.Context, in RentalInput) (QuotationDetails, error)
	Update(ctx context.Context, id string, in RentalInput) (QuotationDetails, error)
	EditDates(ctx context.Context, id string, start, end time.Time) (QuotationDetails, error)
	EditLineItem(ctx context.Context, id, lineKey string, edit LineEdit) (QuotationDetails, error)
	DeleteLineItem(ctx context.Context, id, lineKey string, confirmed bool) (QuotationDetails, error)
	Cancel(ctx context.Context, id string, confirmed bool) (QuotationDetails, error)
	GenerateOrder(ctx context.Context, id string) (entities.Order, error)
}

type QuotationUseCase struct {
	quotations interfaces.IQuotationAPI
	orders     interfaces.IOrderAPI
	builder    rentalBuilder
	locks      *RecordLocks
	log        logrus.FieldLogger
}

var _ IQuotationUseCase = (*QuotationUseCase)(nil)

func NewQuotationUseCase(quotations interfaces.IQuotationAPI, orders interfaces.IOrderAPI, products interfaces.IProductAPI, clients interfaces.IClientAPI, engine *pricing.Engine, locks *RecordLocks, logger logrus.FieldLogger) *QuotationUseCase {
	if engine == nil {
		engine = pricing.NewEngine(nil)
	}
	if locks == nil {
		locks = NewRecordLocks()
	}
	return &QuotationUseCase{
		quotations: quotations,
		orders:     orders,
		builder:    rentalBuilder{products: products, clients: clients, engine: engine},
		locks:      locks,
		log:        loggerOrDiscard(logger),
	}
}

func (u *QuotationUseCase) List(ctx context.Context, filter RentalFilter) ([]entities.Quotation, error) {
	if err := filter.validate(); err != nil {
		return nil, err
	}
	all, err := u.quotations.List(ctx)
	if err != nil {
		u.log.WithError(err).Error("[quotation][usecase] list failed")
		return nil, err
	}
	out := make([]entities.Quotation, 0, len(all))
	for _, q := range all {
		if filter.match(q.Rental) {
			out = append(out, q)
		}
	}
	return out, nil
}

func (u *QuotationUseCase) Get(ctx context.Context, id string) (QuotationDetails, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return QuotationDetails{}, ErrInvalidQuotationID
	}
	q, err := u.load(ctx, id)
	if err != nil {
		return QuotationDetails{}, err
	}
	return u.detailsOf(q), nil
}

func (u *QuotationUseCase) Create(ctx context.Context, in RentalInput) (QuotationDetails, error) {
	r, err := u.builder.build(ctx, in, nil)
	if err != nil {
		return QuotationDetails{}, err
	}
	created, err := u.quotations.Create(ctx, entities.Quotation{Rental: r})
	if err != nil {
		u.log.WithFields(logrus.Fields{"client_id": r.ClientID, "err": err}).Error("[quotation][usecase] create failed")
		return QuotationDetails{}, err
	}
	u.log.WithFields(logrus.Fields{"quotation_id": created.ID, "grand_total": r.GrandTotal}).Info("[quotation][usecase] created")
	if created.ID == "" {
		return fresh(ctx, u.detailsOf(created), nil)
	}
	return u.refetch(ctx, created.ID)
}

func (u *QuotationUseCase) Update(ctx context.Context, id string, in RentalInput) (QuotationDetails, error) {
	if err := u.builder.validate(in); err != nil {
		return QuotationDetails{}, err
	}
	return u.mutate(ctx, id, lifecycle.ActionUpdate, func(q entities.Quotation) error {
		r, err := u.builder.build(ctx, in, nil)
		if err != nil {
			return err
		}
		r.ID = q.ID
		r.Status = q.Status
		r.CreatedAt = q.CreatedAt
		_, err = u.quotations.Update(ctx, q.ID, entities.Quotation{Rental: r})
		return err
	})
}

func (u *QuotationUseCase) EditDates(ctx context.Context, id string, start, end time.Time) (QuotationDetails, error) {
	if start.IsZero() || end.IsZero() {
		return QuotationDetails{}, errs.Invalid("startDate", "start and end dates are required")
	}
	if err := validateRange("startDate", "endDate", &start, &end); err != nil {
		return QuotationDetails{}, err
	}
	return u.mutate(ctx, id, lifecycle.ActionEditDates, func(q entities.Quotation) error {
		q.StartDate = start
		q.EndDate = end
		_, err := u.quotations.Update(ctx, q.ID, q)
		return err
	})
}

func (u *QuotationUseCase) EditLineItem(ctx context.Context, id, lineKey string, edit LineEdit) (QuotationDetails, error) {
	lineKey = strings.TrimSpace(lineKey)
	if lineKey == "" {
		return QuotationDetails{}, errs.Invalid("lineId", "is required")
	}
	if edit.Quantity == nil && edit.StartDate == nil && edit.EndDate == nil {
		return QuotationDetails{}, errs.Invalid("lineItem", "nothing to change")
	}
	return u.mutate(ctx, id, lifecycle.ActionEditLineItem, func(q entities.Quotation) error {
		r, err := u.builder.editLine(q.Rental, lineKey, edit)
		if err != nil {
			return err
		}
		_, err = u.quotations.Update(ctx, q.ID, entities.Quotation{Rental: r})
		return err
	})
}

func (u *QuotationUseCase) DeleteLineItem(ctx context.Context, id, lineKey string, confirmed bool) (QuotationDetails, error) {
	if err := errs.RequireConfirmation(confirmed, "delete line item"); err != nil {
		return QuotationDetails{}, err
	}
	lineKey = strings.TrimSpace(lineKey)
	if lineKey == "" {
		return QuotationDetails{}, errs.Invalid("lineId", "is required")
	}
	return u.mutate(ctx, id, lifecycle.ActionDeleteLineItem, func(q entities.Quotation) error {
		li, ok := q.LineItem(lineKey)
		if !ok {
			return ErrLineItemNotFound
		}
		if err := u.quotations.DeleteProduct(ctx, q.ID, li.Key()); err != nil {
			return err
		}
		return u.syncGrandTotal(ctx, q.ID)
	})
}

func (u *QuotationUseCase) Cancel(ctx context.Context, id string, confirmed bool) (QuotationDetails, error) {
	if err := errs.RequireConfirmation(confirmed, "cancel quotation"); err != nil {
		return QuotationDetails{}, err
	}
	return u.mutate(ctx, id, lifecycle.ActionCancel, func(q entities.Quotation) error {
		if _, err := lifecycle.Next(q.Status, lifecycle.EventCancel); err != nil {
			return err
		}
		return u.quotations.Cancel(ctx, q.ID)
	})
}

// GenerateOrder converts the quotation and then marks it completed so it
// cannot be converted twice. The created order is returned even when the
// quotation could not be marked.
func (u *QuotationUseCase) GenerateOrder(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidQuotationID
	}
	unlock, err := u.locks.acquire(ctx, quotationKey(id))
	if err != nil {
		return entities.Order{}, err
	}
	defer unlock()

	q, err := u.load(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if err := lifecycle.Guard(q.Status, lifecycle.ActionGenerateOrder); err != nil {
		u.log.WithFields(logrus.Fields{"quotation_id": id, "status": q.Status}).Warn("[quotation][usecase] generate order rejected")
		return entities.Order{}, err
	}

	order, err := u.quotations.GenerateOrder(ctx, id)
	if err != nil {
		u.log.WithFields(logrus.Fields{"quotation_id": id, "err": err}).Error("[quotation][usecase] generate order failed")
		return entities.Order{}, err
	}
	u.log.WithFields(logrus.Fields{"quotation_id": id, "order_id": order.ID}).Info("[quotation][usecase] order generated")

	u.markConverted(ctx, id)

	if order.ID == "" {
		return fresh(ctx, order, nil)
	}
	canonical, err := u.orders.Get(ctx, order.ID)
	return fresh(ctx, canonical, err)
}

func (u *QuotationUseCase) markConverted(ctx context.Context, id string) {
	q, err := u.quotations.Get(ctx, id)
	if err != nil || q.Status.IsTerminal() {
		return
	}
	to, err := lifecycle.Next(q.Status, lifecycle.EventConvert)
	if err != nil {
		return
	}
	q.Status = to
	if _, err := u.quotations.Update(ctx, id, q); err != nil {
		u.log.WithFields(logrus.Fields{"quotation_id": id, "err": err}).Warn("[quotation][usecase] could not mark quotation completed")
	}
}

// syncGrandTotal re-reads the quotation after a line was removed and pushes
// the re-derived line totals and grand total back when they drifted.
func (u *QuotationUseCase) syncGrandTotal(ctx context.Context, id string) error {
	q, err := u.quotations.Get(ctx, id)
	if err != nil {
		return err
	}
	r, changed, err := u.builder.resync(q.Rental)
	if err != nil || !changed {
		return err
	}
	q.Rental = r
	if _, err := u.quotations.Update(ctx, id, q); err != nil {
		u.log.WithFields(logrus.Fields{"quotation_id": id, "err": err}).Error("[quotation][usecase] grand total sync failed")
		return err
	}
	return nil
}

func (u *QuotationUseCase) mutate(ctx context.Context, id string, action lifecycle.Action, apply func(q entities.Quotation) error) (QuotationDetails, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return QuotationDetails{}, ErrInvalidQuotationID
	}
	unlock, err := u.locks.acquire(ctx, quotationKey(id))
	if err != nil {
		return QuotationDetails{}, err
	}
	defer unlock()

	q, err := u.load(ctx, id)
	if err != nil {
		return QuotationDetails{}, err
	}
	if err := lifecycle.Guard(q.Status, action); err != nil {
		u.log.WithFields(logrus.Fields{"quotation_id": id, "status": q.Status, "action": action}).Warn("[quotation][usecase] action rejected")
		return QuotationDetails{}, err
	}
	if err := apply(q); err != nil {
		u.log.WithFields(logrus.Fields{"quotation_id": id, "action": action, "err": err}).Error("[quotation][usecase] mutation failed")
		return QuotationDetails{}, err
	}
	u.log.WithFields(logrus.Fields{"quotation_id": id, "action": action}).Info("[quotation][usecase] mutation applied")
	return u.refetch(ctx, id)
}

func (u *QuotationUseCase) load(ctx context.Context, id string) (entities.Quotation, error) {
	q, err := u.quotations.Get(ctx, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	return q, nil
}

func (u *QuotationUseCase) refetch(ctx context.Context, id string) (QuotationDetails, error) {
	q, err := u.load(ctx, id)
	if q, err = fresh(ctx, q, err); err != nil {
		return QuotationDetails{}, err
	}
	return u.detailsOf(q), nil
}

func (u *QuotationUseCase) detailsOf(q entities.Quotation) QuotationDetails {
	return QuotationDetails{Quotation: q, RentalDetails: u.builder.details(q.Rental, pricing.DepositNone)}
}
