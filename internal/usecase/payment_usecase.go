package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"rental_console/internal/domain/entities"
	"rental_console/internal/domain/errs"
	"rental_console/internal/domain/lifecycle"
	"rental_console/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidPaymentID               = errors.New("invalid payment id")
	ErrPaymentNotFound                = errors.New("payment not found")
	ErrInvalidProviderPayload         = errors.New("invalid payment provider payload")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
	ErrReportExporterNotConfigured    = errors.New("report exporter not configured")
)

const providerStatusApproved = "approved"

// PaymentInput is a payment an operator records against an order.
// ProviderPayload, when set on an online payment, is sent to the payment
// gateway before the payment is recorded.
type PaymentInput struct {
	PaymentMethod   entities.PaymentMethod
	PaymentType     entities.PaymentType
	Amount          float64
	PaymentDate     *time.Time
	NextPaymentDate *time.Time
	ProviderPayload json.RawMessage
}

// PaymentReceipt reports a recorded payment. PaidToDate is informational:
// payments never reduce the order's grand total.
type PaymentReceipt struct {
	Payment        entities.Payment `json:"payment"`
	Order          entities.Order   `json:"order"`
	PaidToDate     float64          `json:"paidToDate"`
	OrderConfirmed bool             `json:"orderConfirmed"`
	ConfirmError   string           `json:"confirmError,omitempty"`
}

// IPaymentUseCase records payments and builds the payment reports.
//
// Behavior:
//   - Recording validates the input, checks the order allows payments and
//     creates a new payment record; a pending order is then confirmed.
//   - A failed creation leaves the order untouched.

type IPaymentUseCase interface {
	Record(ctx context.Context, orderID string, in PaymentInput) (PaymentReceipt, error)
	Update(ctx context.Context, id string, in PaymentInput) (entities.Payment, error)
	List(ctx context.Context, filter PaymentFilter) ([]entities.Payment, error)
	Pending(ctx context.Context, q PendingQuery) ([]entities.Payment, error)
	ExportReport(ctx context.Context, filter PaymentFilter) ([]byte, error)
}

type PaymentUseCase struct {
	payments interfaces.IPaymentAPI
	orders   interfaces.IOrderAPI
	gateway  interfaces.IPaymentGateway
	exporter interfaces.IReportExporter
	locks    *RecordLocks
	loc      *time.Location
	now      func() time.Time
	log      logrus.FieldLogger
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

// NewPaymentUseCase builds the payment usecase. gateway and exporter may be
// nil; loc is the business timezone used for "today".
func NewPaymentUseCase(payments interfaces.IPaymentAPI, orders interfaces.IOrderAPI, gateway interfaces.IPaymentGateway, exporter interfaces.IReportExporter, locks *RecordLocks, loc *time.Location, logger logrus.FieldLogger) *PaymentUseCase {
	if locks == nil {
		locks = NewRecordLocks()
	}
	if loc == nil {
		loc = time.UTC
	}
	return &PaymentUseCase{
		payments: payments,
		orders:   orders,
		gateway:  gateway,
		exporter: exporter,
		locks:    locks,
		loc:      loc,
		now:      time.Now,
		log:      loggerOrDiscard(logger),
	}
}

func (u *PaymentUseCase) validate(in PaymentInput) error {
	p := entities.Payment{PaymentMethod: in.PaymentMethod, PaymentType: in.PaymentType, Amount: in.Amount}
	if err := lifecycle.ValidatePayment(p); err != nil {
		return err
	}
	if in.NextPaymentDate != nil && !in.NextPaymentDate.IsZero() {
		today := dayOf(u.now(), u.loc)
		if dayOf(*in.NextPaymentDate, u.loc).Before(today) {
			return errs.Invalid("nextPaymentDate", "must not be in the past")
		}
	}
	if len(in.ProviderPayload) > 0 && !json.Valid(in.ProviderPayload) {
		return ErrInvalidProviderPayload
	}
	return nil
}

func (u *PaymentUseCase) Record(ctx context.Context, orderID string, in PaymentInput) (PaymentReceipt, error) {
	orderID = strings.TrimSpace(orderID)
	u.log.WithFields(logrus.Fields{"order_id": orderID, "method": in.PaymentMethod, "amount": in.Amount}).Info("[payment][usecase] record start")
	if orderID == "" {
		return PaymentReceipt{}, ErrInvalidOrderID
	}
	if err := u.validate(in); err != nil {
		u.log.WithFields(logrus.Fields{"order_id": orderID, "err": err}).Warn("[payment][usecase] invalid payment")
		return PaymentReceipt{}, err
	}

	unlock, err := u.locks.acquire(ctx, orderKey(orderID))
	if err != nil {
		return PaymentReceipt{}, err
	}
	defer unlock()

	order, err := u.orders.Get(ctx, orderID)
	if err != nil {
		u.log.WithFields(logrus.Fields{"order_id": orderID, "err": err}).Error("[payment][usecase] failed loading order")
		return PaymentReceipt{}, err
	}
	if order.ID == "" {
		return PaymentReceipt{}, ErrOrderNotFound
	}
	if err := lifecycle.Guard(order.Status, lifecycle.ActionAddPayment); err != nil {
		u.log.WithFields(logrus.Fields{"order_id": orderID, "status": order.Status}).Warn("[payment][usecase] order does not accept payments")
		return PaymentReceipt{}, err
	}

	paymentDate := u.now().UTC()
	if in.PaymentDate != nil && !in.PaymentDate.IsZero() {
		paymentDate = *in.PaymentDate
	}
	p := entities.Payment{
		OrderID:         order.ID,
		ClientID:        order.ClientID,
		PaymentMethod:   in.PaymentMethod,
		PaymentType:     in.PaymentType,
		Amount:          in.Amount,
		PaymentDate:     paymentDate,
		NextPaymentDate: in.NextPaymentDate,
		PaymentStatus:   entities.PaymentStatusPaid,
	}

	if in.PaymentMethod == entities.PaymentMethodOnline && len(in.ProviderPayload) > 0 {
		if err := u.capture(ctx, order, in, &p); err != nil {
			return PaymentReceipt{}, err
		}
	}

	created, err := u.payments.Create(ctx, p)
	if err != nil {
		fields := logrus.Fields{"order_id": orderID, "err": err}
		if p.ProviderPaymentID != "" {
			fields["provider_payment_id"] = p.ProviderPaymentID
			fields["provider_status"] = p.ProviderStatus
			fields["amount"] = p.Amount
			u.log.WithFields(fields).Error("[payment][usecase] payment captured by gateway but not recorded")
			return PaymentReceipt{}, err
		}
		u.log.WithFields(fields).Error("[payment][usecase] payment create failed")
		return PaymentReceipt{}, err
	}
	if created.PaymentStatus == "" {
		created.PaymentStatus = p.PaymentStatus
	}
	u.log.WithFields(logrus.Fields{"order_id": orderID, "payment_id": created.ID, "status": created.PaymentStatus}).Info("[payment][usecase] payment created")

	receipt := PaymentReceipt{Payment: created}
	if order.Status == entities.StatusPending && p.PaymentStatus == entities.PaymentStatusPaid {
		if err := u.confirmOrder(ctx, order, p); err != nil {
			u.log.WithFields(logrus.Fields{"order_id": orderID, "err": err}).Error("[payment][usecase] order confirmation failed")
			receipt.ConfirmError = err.Error()
		} else {
			receipt.OrderConfirmed = true
		}
	}

	refetched, err := u.orders.Get(ctx, orderID)
	if refetched, err = fresh(ctx, refetched, err); err != nil {
		return PaymentReceipt{}, err
	}
	receipt.Order = refetched
	receipt.PaidToDate = u.paidToDate(ctx, orderID)
	return receipt, nil
}

func (u *PaymentUseCase) confirmOrder(ctx context.Context, order entities.Order, p entities.Payment) error {
	to, err := lifecycle.Confirm(order.Status, p)
	if err != nil {
		return err
	}
	order.Status = to
	_, err = u.orders.Update(ctx, order.ID, order)
	return err
}

// capture sends the payment to the gateway and copies the provider outcome
// onto p. A status other than approved keeps the payment pending.
func (u *PaymentUseCase) capture(ctx context.Context, order entities.Order, in PaymentInput, p *entities.Payment) error {
	if u.gateway == nil {
		u.log.WithField("order_id", order.ID).Error("[payment][usecase] gateway not configured")
		return ErrPaymentGatewayNotConfigured
	}

	payload, err := gatewayPayload(order, in)
	if err != nil {
		return err
	}

	u.log.WithFields(logrus.Fields{"order_id": order.ID, "payload_len": len(payload)}).Info("[payment][usecase] calling payment gateway")
	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		u.log.WithFields(logrus.Fields{"order_id": order.ID, "err": err}).Error("[payment][usecase] payment gateway failed")
		return mapGatewayError(err)
	}
	u.log.WithFields(logrus.Fields{"order_id": order.ID, "provider_payment_id": providerID, "provider_status": providerStatus}).Info("[payment][usecase] payment gateway success")

	p.ProviderPaymentID = providerID
	p.ProviderStatus = providerStatus
	p.ProviderPayload = providerResp
	if !strings.EqualFold(providerStatus, providerStatusApproved) {
		p.PaymentStatus = entities.PaymentStatusPending
	}
	return nil
}

// gatewayPayload links the provider payload to the order. The recorded
// amount is the source of truth for the charged amount.
func gatewayPayload(order entities.Order, in PaymentInput) (json.RawMessage, error) {
	var req map[string]any
	if err := json.Unmarshal(in.ProviderPayload, &req); err != nil || req == nil {
		return nil, ErrInvalidProviderPayload
	}
	if stringField(req, "payment_method_id") == "" {
		return nil, ErrInvalidProviderPayload
	}
	if payer := ensurePayerDefaults(req, order.Client); payer == nil || !payerIdentified(payer) {
		return nil, ErrInvalidProviderPayload
	}
	if _, ok := req["external_reference"]; !ok {
		req["external_reference"] = order.ID
	}
	if _, ok := req["description"]; !ok {
		req["description"] = fmt.Sprintf("Order %s", order.ID)
	}
	req["transaction_amount"] = in.Amount
	return json.Marshal(req)
}

func (u *PaymentUseCase) paidToDate(ctx context.Context, orderID string) float64 {
	all, err := u.payments.List(ctx)
	if err != nil {
		u.log.WithFields(logrus.Fields{"order_id": orderID, "err": err}).Warn("[payment][usecase] could not compute paid to date")
		return 0
	}
	sum := decimal.Zero
	for _, p := range all {
		if p.OrderID == orderID && p.PaymentStatus == entities.PaymentStatusPaid {
			sum = sum.Add(decimal.NewFromFloat(p.Amount))
		}
	}
	return sum.InexactFloat64()
}

// Update edits a recorded payment. The parent order must still accept
// payments; a cancelled order rejects the edit before any write.
func (u *PaymentUseCase) Update(ctx context.Context, id string, in PaymentInput) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}
	if err := u.validate(in); err != nil {
		return entities.Payment{}, err
	}

	current, err := u.findPayment(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}

	unlock, err := u.locks.acquire(ctx, orderKey(current.OrderID))
	if err != nil {
		return entities.Payment{}, err
	}
	defer unlock()

	order, err := u.orders.Get(ctx, current.OrderID)
	if err != nil {
		u.log.WithFields(logrus.Fields{"payment_id": id, "order_id": current.OrderID, "err": err}).Error("[payment][usecase] failed loading order")
		return entities.Payment{}, err
	}
	if order.ID == "" {
		return entities.Payment{}, ErrOrderNotFound
	}
	if err := lifecycle.Guard(order.Status, lifecycle.ActionAddPayment); err != nil {
		u.log.WithFields(logrus.Fields{"payment_id": id, "order_id": order.ID, "status": order.Status}).Warn("[payment][usecase] order does not accept payment edits")
		return entities.Payment{}, err
	}

	current.PaymentMethod = in.PaymentMethod
	current.PaymentType = in.PaymentType
	current.Amount = in.Amount
	current.NextPaymentDate = in.NextPaymentDate
	if in.PaymentDate != nil && !in.PaymentDate.IsZero() {
		current.PaymentDate = *in.PaymentDate
	}
	updated, err := u.payments.Update(ctx, id, current)
	if err != nil {
		u.log.WithFields(logrus.Fields{"payment_id": id, "err": err}).Error("[payment][usecase] update failed")
		return entities.Payment{}, err
	}
	u.log.WithFields(logrus.Fields{"payment_id": id, "order_id": order.ID}).Info("[payment][usecase] updated")
	return fresh(ctx, updated, nil)
}

// findPayment looks a payment up by id; the rental API has no detail
// endpoint for payments.
func (u *PaymentUseCase) findPayment(ctx context.Context, id string) (entities.Payment, error) {
	all, err := u.payments.List(ctx)
	if err != nil {
		u.log.WithFields(logrus.Fields{"payment_id": id, "err": err}).Error("[payment][usecase] failed listing payments")
		return entities.Payment{}, err
	}
	for _, p := range all {
		if p.ID != id {
			continue
		}
		if strings.TrimSpace(p.OrderID) == "" {
			return entities.Payment{}, errs.Invalid("orderId", "payment %s is not linked to an order", id)
		}
		return p, nil
	}
	return entities.Payment{}, ErrPaymentNotFound
}

// stringField is m[key] trimmed, or empty when it is not a string.
func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return strings.TrimSpace(s)
}

// payerIdentified reports whether a provider payer carries an email or an id.
func payerIdentified(payer map[string]any) bool {
	if stringField(payer, "email") != "" {
		return true
	}
	switch id := payer["id"].(type) {
	case string:
		return strings.TrimSpace(id) != ""
	case float64:
		return true
	}
	return false
}

// ensurePayerDefaults fills the payer from the order's client when the
// operator did not supply one.
func ensurePayerDefaults(m map[string]any, client *entities.Client) map[string]any {
	payer, _ := m["payer"].(map[string]any)
	if payer == nil {
		if m["payer"] != nil {
			return nil
		}
		payer = map[string]any{}
		m["payer"] = payer
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if client != nil && !payerIdentified(payer) {
		if email := strings.TrimSpace(client.Email); email != "" {
			payer["email"] = email
		}
	}
	return payer
}

func mapGatewayError(err error) error {
	switch {
	case isGatewayCustomerNotFound(err):
		return ErrPaymentGatewayCustomerNotFound
	case isGatewayInvalidUsers(err):
		return ErrPaymentGatewayInvalidUsers
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayBadRequest(err):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func isGatewayBadRequest(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}
