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
	ErrOrderNotFound  = errors.New("order not found")
	ErrInvalidOrderID = errors.New("invalid order id")
)

const (
	invoiceNoPrefix = "INV-"
	challanNoPrefix = "DC-"
)

// OrderDetails is an order priced for display. InvoiceNo and ChallanNo are
// the assigned numbers, or the derived defaults when none was assigned.
type OrderDetails struct {
	Order     entities.Order `json:"order"`
	InvoiceNo string         `json:"invoiceNo"`
	ChallanNo string         `json:"challanNo"`
	RentalDetails
}

// IOrderUseCase manages orders.
//
// Behavior:
//   - Line item and date edits are allowed only while the order is pending.
//   - Invoice and challan numbers can be assigned in any status.
//   - Every mutation is followed by a refetch of the order.

type IOrderUseCase interface {
	List(ctx context.Context, filter RentalFilter) ([]entities.Order, error)
	Get(ctx context.Context, id string) (OrderDetails, error)
	Create(ctx context.Context, in RentalInput) (OrderDetails, error)
	Update(ctx context.Context, id string, in RentalInput) (OrderDetails, error)
	EditDates(ctx context.Context, id string, start, end time.Time) (OrderDetails, error)
	EditLineItem(ctx context.Context, id, lineKey string, edit LineEdit) (OrderDetails, error)
	DeleteLineItem(ctx context.Context, id, lineKey string, confirmed bool) (OrderDetails, error)
	Cancel(ctx context.Context, id string, confirmed bool) (OrderDetails, error)
	Complete(ctx context.Context, id string) (OrderDetails, error)
	Delete(ctx context.Context, id string, confirmed bool) error
	AssignInvoiceNo(ctx context.Context, id, value string) (OrderDetails, error)
	AssignChallanNo(ctx context.Context, id, value string) (OrderDetails, error)
}

type OrderUseCase struct {
	orders  interfaces.IOrderAPI
	builder rentalBuilder
	deposit pricing.DepositSource
	locks   *RecordLocks
	log     logrus.FieldLogger
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

// NewOrderUseCase builds the order usecase. deposit is the deposit term of
// the order detail totals; an empty value means line item deposits.
func NewOrderUseCase(orders interfaces.IOrderAPI, products interfaces.IProductAPI, clients interfaces.IClientAPI, engine *pricing.Engine, deposit pricing.DepositSource, locks *RecordLocks, logger logrus.FieldLogger) *OrderUseCase {
	if engine == nil {
		engine = pricing.NewEngine(nil)
	}
	if deposit == "" {
		deposit = pricing.DepositLineItems
	}
	if locks == nil {
		locks = NewRecordLocks()
	}
	return &OrderUseCase{
		orders:  orders,
		builder: rentalBuilder{products: products, clients: clients, engine: engine},
		deposit: deposit,
		locks:   locks,
		log:     loggerOrDiscard(logger),
	}
}

func (u *OrderUseCase) List(ctx context.Context, filter RentalFilter) ([]entities.Order, error) {
	if err := filter.validate(); err != nil {
		return nil, err
	}
	all, err := u.orders.List(ctx)
	if err != nil {
		u.log.WithError(err).Error("[order][usecase] list failed")
		return nil, err
	}
	out := make([]entities.Order, 0, len(all))
	for _, o := range all {
		if filter.match(o.Rental) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (u *OrderUseCase) Get(ctx context.Context, id string) (OrderDetails, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return OrderDetails{}, ErrInvalidOrderID
	}
	o, err := u.load(ctx, id)
	if err != nil {
		return OrderDetails{}, err
	}
	return u.detailsOf(o), nil
}

func (u *OrderUseCase) Create(ctx context.Context, in RentalInput) (OrderDetails, error) {
	r, err := u.builder.build(ctx, in, nil)
	if err != nil {
		return OrderDetails{}, err
	}
	created, err := u.orders.Create(ctx, entities.Order{Rental: r})
	if err != nil {
		u.log.WithFields(logrus.Fields{"client_id": r.ClientID, "err": err}).Error("[order][usecase] create failed")
		return OrderDetails{}, err
	}
	u.log.WithFields(logrus.Fields{"order_id": created.ID, "grand_total": r.GrandTotal}).Info("[order][usecase] created")
	if created.ID == "" {
		return fresh(ctx, u.detailsOf(created), nil)
	}
	return u.refetch(ctx, created.ID)
}

func (u *OrderUseCase) Update(ctx context.Context, id string, in RentalInput) (OrderDetails, error) {
	if err := u.builder.validate(in); err != nil {
		return OrderDetails{}, err
	}
	return u.mutate(ctx, id, lifecycle.ActionUpdate, func(o entities.Order) error {
		r, err := u.builder.build(ctx, in, reservedQty(o.Rental))
		if err != nil {
			return err
		}
		r.ID = o.ID
		r.Status = o.Status
		r.CreatedAt = o.CreatedAt
		o.Rental = r
		_, err = u.orders.Update(ctx, o.ID, o)
		return err
	})
}

func (u *OrderUseCase) EditDates(ctx context.Context, id string, start, end time.Time) (OrderDetails, error) {
	if start.IsZero() || end.IsZero() {
		return OrderDetails{}, errs.Invalid("startDate", "start and end dates are required")
	}
	if err := validateRange("startDate", "endDate", &start, &end); err != nil {
		return OrderDetails{}, err
	}
	return u.mutate(ctx, id, lifecycle.ActionEditDates, func(o entities.Order) error {
		o.StartDate = start
		o.EndDate = end
		_, err := u.orders.Update(ctx, o.ID, o)
		return err
	})
}

func (u *OrderUseCase) EditLineItem(ctx context.Context, id, lineKey string, edit LineEdit) (OrderDetails, error) {
	lineKey = strings.TrimSpace(lineKey)
	if lineKey == "" {
		return OrderDetails{}, errs.Invalid("lineId", "is required")
	}
	if edit.Quantity == nil && edit.StartDate == nil && edit.EndDate == nil {
		return OrderDetails{}, errs.Invalid("lineItem", "nothing to change")
	}
	return u.mutate(ctx, id, lifecycle.ActionEditLineItem, func(o entities.Order) error {
		r, err := u.builder.editLine(o.Rental, lineKey, edit)
		if err != nil {
			return err
		}
		li, _ := r.LineItem(lineKey)
		if err := u.orders.UpdateProduct(ctx, o.ID, li.Key(), li); err != nil {
			return err
		}
		return u.syncGrandTotal(ctx, o.ID)
	})
}

func (u *OrderUseCase) DeleteLineItem(ctx context.Context, id, lineKey string, confirmed bool) (OrderDetails, error) {
	if err := errs.RequireConfirmation(confirmed, "delete line item"); err != nil {
		return OrderDetails{}, err
	}
	lineKey = strings.TrimSpace(lineKey)
	if lineKey == "" {
		return OrderDetails{}, errs.Invalid("lineId", "is required")
	}
	return u.mutate(ctx, id, lifecycle.ActionDeleteLineItem, func(o entities.Order) error {
		li, ok := o.LineItem(lineKey)
		if !ok {
			return ErrLineItemNotFound
		}
		if err := u.orders.DeleteProduct(ctx, o.ID, li.Key()); err != nil {
			return err
		}
		return u.syncGrandTotal(ctx, o.ID)
	})
}

func (u *OrderUseCase) Cancel(ctx context.Context, id string, confirmed bool) (OrderDetails, error) {
	if err := errs.RequireConfirmation(confirmed, "cancel order"); err != nil {
		return OrderDetails{}, err
	}
	return u.mutate(ctx, id, lifecycle.ActionCancel, func(o entities.Order) error {
		if _, err := lifecycle.Next(o.Status, lifecycle.EventCancel); err != nil {
			return err
		}
		return u.orders.Cancel(ctx, o.ID)
	})
}

// Complete marks a confirmed order as returned.
func (u *OrderUseCase) Complete(ctx context.Context, id string) (OrderDetails, error) {
	return u.mutate(ctx, id, lifecycle.ActionComplete, func(o entities.Order) error {
		to, err := lifecycle.Next(o.Status, lifecycle.EventComplete)
		if err != nil {
			return err
		}
		o.Status = to
		_, err = u.orders.Update(ctx, o.ID, o)
		return err
	})
}

func (u *OrderUseCase) Delete(ctx context.Context, id string, confirmed bool) error {
	if err := errs.RequireConfirmation(confirmed, "delete order"); err != nil {
		return err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidOrderID
	}
	unlock, err := u.locks.acquire(ctx, orderKey(id))
	if err != nil {
		return err
	}
	defer unlock()

	if err := u.orders.Delete(ctx, id); err != nil {
		u.log.WithFields(logrus.Fields{"order_id": id, "err": err}).Error("[order][usecase] delete failed")
		return err
	}
	u.log.WithField("order_id", id).Info("[order][usecase] deleted")
	return nil
}

func (u *OrderUseCase) AssignInvoiceNo(ctx context.Context, id, value string) (OrderDetails, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return OrderDetails{}, errs.Invalid("invoiceNo", "must not be empty")
	}
	return u.mutate(ctx, id, "", func(o entities.Order) error {
		return u.orders.UpdateInvoiceNo(ctx, o.ID, value)
	})
}

func (u *OrderUseCase) AssignChallanNo(ctx context.Context, id, value string) (OrderDetails, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return OrderDetails{}, errs.Invalid("deliveryChallanNo", "must not be empty")
	}
	return u.mutate(ctx, id, "", func(o entities.Order) error {
		return u.orders.UpdateChallanNo(ctx, o.ID, value)
	})
}

// DefaultInvoiceNo is the invoice number shown for an order without one.
func DefaultInvoiceNo(orderID string) string { return defaultDocumentNo(invoiceNoPrefix, orderID) }

// DefaultChallanNo is the challan number shown for an order without one.
func DefaultChallanNo(orderID string) string { return defaultDocumentNo(challanNoPrefix, orderID) }

func effectiveInvoiceNo(o entities.Order) string {
	if v := strings.TrimSpace(o.InvoiceNo); v != "" {
		return v
	}
	return DefaultInvoiceNo(o.ID)
}

func effectiveChallanNo(o entities.Order) string {
	if v := strings.TrimSpace(o.DeliveryChallanNo); v != "" {
		return v
	}
	return DefaultChallanNo(o.ID)
}

// syncGrandTotal re-reads the order after a line change and pushes the
// re-derived line totals and grand total back when they drifted.
func (u *OrderUseCase) syncGrandTotal(ctx context.Context, id string) error {
	o, err := u.orders.Get(ctx, id)
	if err != nil {
		return err
	}
	r, changed, err := u.builder.resync(o.Rental)
	if err != nil || !changed {
		return err
	}
	o.Rental = r
	if _, err := u.orders.Update(ctx, id, o); err != nil {
		u.log.WithFields(logrus.Fields{"order_id": id, "err": err}).Error("[order][usecase] grand total sync failed")
		return err
	}
	return nil
}

// mutate runs apply under the order's lock after checking action against
// the current status; an empty action skips the status check.
func (u *OrderUseCase) mutate(ctx context.Context, id string, action lifecycle.Action, apply func(o entities.Order) error) (OrderDetails, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return OrderDetails{}, ErrInvalidOrderID
	}
	unlock, err := u.locks.acquire(ctx, orderKey(id))
	if err != nil {
		return OrderDetails{}, err
	}
	defer unlock()

	o, err := u.load(ctx, id)
	if err != nil {
		return OrderDetails{}, err
	}
	if action != "" {
		if err := lifecycle.Guard(o.Status, action); err != nil {
			u.log.WithFields(logrus.Fields{"order_id": id, "status": o.Status, "action": action}).Warn("[order][usecase] action rejected")
			return OrderDetails{}, err
		}
	}
	if err := apply(o); err != nil {
		u.log.WithFields(logrus.Fields{"order_id": id, "action": action, "err": err}).Error("[order][usecase] mutation failed")
		return OrderDetails{}, err
	}
	u.log.WithFields(logrus.Fields{"order_id": id, "action": action}).Info("[order][usecase] mutation applied")
	return u.refetch(ctx, id)
}

func (u *OrderUseCase) load(ctx context.Context, id string) (entities.Order, error) {
	o, err := u.orders.Get(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) refetch(ctx context.Context, id string) (OrderDetails, error) {
	o, err := u.load(ctx, id)
	if o, err = fresh(ctx, o, err); err != nil {
		return OrderDetails{}, err
	}
	return u.detailsOf(o), nil
}

func (u *OrderUseCase) detailsOf(o entities.Order) OrderDetails {
	return OrderDetails{
		Order:         o,
		InvoiceNo:     effectiveInvoiceNo(o),
		ChallanNo:     effectiveChallanNo(o),
		RentalDetails: u.builder.details(o.Rental, u.deposit),
	}
}
