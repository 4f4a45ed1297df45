package entities

import (
	"encoding/json"
	"time"
)

type PaymentMethod string

const (
	PaymentMethodOnline  PaymentMethod = "online"
	PaymentMethodOffline PaymentMethod = "offline"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentMethodOnline || m == PaymentMethodOffline
}

type PaymentType string

const (
	PaymentTypeUPI          PaymentType = "upi"
	PaymentTypeBankTransfer PaymentType = "bankTransfer"
	PaymentTypeCash         PaymentType = "cash"
	PaymentTypeBank         PaymentType = "bank"
)

func (t PaymentType) Valid() bool {
	switch t {
	case PaymentTypeUPI, PaymentTypeBankTransfer, PaymentTypeCash, PaymentTypeBank:
		return true
	}
	return false
}

// PaymentStatus is the outcome recorded for a payment.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

func (s PaymentStatus) Valid() bool {
	return s == PaymentStatusPending || s == PaymentStatusPaid
}

// Payment is one received (or expected) amount against an order.
//
// Every confirmation creates a new Payment; nothing reconciles payments against
// a running balance.
//
// Provider fields are only set for online payments captured through a payment
// gateway. ProviderPayload keeps the gateway response for traceability.
//
// The Client* and OrderGrandTotal fields are read-side snapshots filled
// when the API populates the order/client references.
type Payment struct {
	ID              string        `json:"id"`
	OrderID         string        `json:"orderId"`
	ClientID        string        `json:"clientId"`
	PaymentMethod   PaymentMethod `json:"paymentMethod"`
	PaymentType     PaymentType   `json:"paymentType"`
	Amount          float64       `json:"amount"`
	PaymentDate     time.Time     `json:"paymentDate"`
	NextPaymentDate *time.Time    `json:"nextPaymentDate,omitempty"`
	PaymentStatus   PaymentStatus `json:"paymentStatus"`
	CreatedAt       time.Time     `json:"createdAt"`

	ProviderPaymentID string          `json:"providerPaymentId,omitempty"`
	ProviderStatus    string          `json:"providerStatus,omitempty"`
	ProviderPayload   json.RawMessage `json:"providerPayload,omitempty"`

	ClientName      string  `json:"clientName,omitempty"`
	ClientPhone     string  `json:"clientPhone,omitempty"`
	ClientDeposit   float64 `json:"clientDeposit,omitempty"`
	OrderGrandTotal float64 `json:"orderGrandTotal,omitempty"`
}
