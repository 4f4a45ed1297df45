package entities

// Status represents the lifecycle of a quotation or an order.
//
// Domain notes:
//   - The rental API is the source of truth for the stored status.
//   - cancelled and completed are terminal; nothing moves a record out of them.
//   - completed marks a returned order or a quotation that was converted to an order.

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// RentalType is the billing period of a rental.
type RentalType string

const (
	RentalDaily   RentalType = "daily"
	RentalMonthly RentalType = "monthly"
	RentalYearly  RentalType = "yearly"
)

func (r RentalType) Valid() bool {
	switch r {
	case RentalDaily, RentalMonthly, RentalYearly:
		return true
	}
	return false
}
