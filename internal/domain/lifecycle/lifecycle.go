// Package lifecycle holds the status machine shared by quotations and orders
// and the per-status gating of operator actions.
package lifecycle

import (
	"rental_console/internal/domain/entities"
	"rental_console/internal/domain/errs"
)

// Event drives a status transition.
type Event string

const (
	EventConfirm  Event = "confirm"
	EventCancel   Event = "cancel"
	EventComplete Event = "complete"
	// EventConvert completes a quotation that was turned into an order.
	EventConvert Event = "convert"
)

// Action is an operator action gated by the current status.
type Action string

const (
	ActionEditLineItem    Action = "edit_line_item"
	ActionDeleteLineItem  Action = "delete_line_item"
	ActionEditDates       Action = "edit_dates"
	ActionUpdate          Action = "update"
	ActionAddPayment      Action = "add_payment"
	ActionGenerateInvoice Action = "generate_invoice"
	ActionGenerateChallan Action = "generate_challan"
	ActionCancel          Action = "cancel"
	ActionGenerateOrder   Action = "generate_order"
	ActionComplete        Action = "complete"
)

var transitions = map[Event]map[entities.Status]entities.Status{
	EventConfirm: {
		entities.StatusPending: entities.StatusConfirmed,
	},
	EventCancel: {
		entities.StatusPending:   entities.StatusCancelled,
		entities.StatusConfirmed: entities.StatusCancelled,
	},
	EventComplete: {
		entities.StatusConfirmed: entities.StatusCompleted,
	},
	EventConvert: {
		entities.StatusPending:   entities.StatusCompleted,
		entities.StatusConfirmed: entities.StatusCompleted,
	},
}

var allowed = map[Action][]entities.Status{
	ActionEditLineItem:    {entities.StatusPending},
	ActionDeleteLineItem:  {entities.StatusPending},
	ActionEditDates:       {entities.StatusPending},
	ActionUpdate:          {entities.StatusPending},
	ActionAddPayment:      {entities.StatusPending, entities.StatusConfirmed},
	ActionGenerateInvoice: {entities.StatusPending, entities.StatusConfirmed, entities.StatusCompleted},
	ActionGenerateChallan: {entities.StatusPending, entities.StatusConfirmed, entities.StatusCompleted},
	ActionCancel:          {entities.StatusPending, entities.StatusConfirmed},
	ActionGenerateOrder:   {entities.StatusPending, entities.StatusConfirmed},
	ActionComplete:        {entities.StatusConfirmed},
}

// Next returns the status reached from `from` through ev. Terminal states
// reject every event.
func Next(from entities.Status, ev Event) (entities.Status, error) {
	if !from.Valid() {
		return "", errs.Invalid("status", "unknown status %q", from)
	}
	to, ok := transitions[ev][from]
	if !ok {
		return from, &errs.InvalidStateTransition{Status: string(from), Action: string(ev)}
	}
	return to, nil
}

// Confirm moves a pending record to confirmed. The transition needs a
// payment carrying a method, a type and a positive amount.
func Confirm(from entities.Status, p entities.Payment) (entities.Status, error) {
	if err := ValidatePayment(p); err != nil {
		return from, err
	}
	return Next(from, EventConfirm)
}

// ValidatePayment checks the fields every recorded payment must carry.
func ValidatePayment(p entities.Payment) error {
	if !p.PaymentMethod.Valid() {
		return errs.Invalid("paymentMethod", "must be online or offline")
	}
	if !p.PaymentType.Valid() {
		return errs.Invalid("paymentType", "must be one of upi, bankTransfer, cash, bank")
	}
	if p.Amount <= 0 {
		return errs.Invalid("amount", "must be greater than zero")
	}
	return nil
}

// Guard fails with an InvalidStateTransition when action is not permitted
// while the record is in status.
func Guard(status entities.Status, action Action) error {
	for _, s := range allowed[action] {
		if s == status {
			return nil
		}
	}
	return &errs.InvalidStateTransition{Status: string(status), Action: string(action)}
}

// Allowed lists the actions permitted in status, in declaration order.
func Allowed(status entities.Status) []Action {
	order := []Action{
		ActionEditLineItem, ActionDeleteLineItem, ActionEditDates, ActionUpdate,
		ActionAddPayment, ActionGenerateInvoice, ActionGenerateChallan,
		ActionCancel, ActionGenerateOrder, ActionComplete,
	}
	out := make([]Action, 0, len(order))
	for _, a := range order {
		if Guard(status, a) == nil {
			out = append(out, a)
		}
	}
	return out
}
