package entities

import (
	"sort"
	"time"
)

// Permission is a console section an operator may access.
type Permission string

const (
	PermissionUsers      Permission = "user"
	PermissionClients    Permission = "clients"
	PermissionOrders     Permission = "orders"
	PermissionQuotations Permission = "quotation"
	PermissionPayments   Permission = "paymentreports"
	PermissionTerms      Permission = "termsandcondition"
	PermissionProducts   Permission = "product"
)

// AllPermissions lists every flag a team member record can carry.
var AllPermissions = []Permission{
	PermissionUsers,
	PermissionClients,
	PermissionOrders,
	PermissionQuotations,
	PermissionPayments,
	PermissionTerms,
	PermissionProducts,
}

type Permissions map[Permission]bool

func (p Permissions) Has(perm Permission) bool { return p[perm] }

// Granted returns the enabled flags in a stable order.
func (p Permissions) Granted() []Permission {
	out := make([]Permission, 0, len(p))
	for k, v := range p {
		if v {
			out = append(out, k)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// TeamMember is a console operator. Password is write-only.
type TeamMember struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Password    string      `json:"password,omitempty"`
	Permissions Permissions `json:"permissions"`
}

// Session is the logged-in operator. It is created on login and removed on
// logout; nothing else reads operator identity.
type Session struct {
	Token       string      `json:"token"`
	MemberID    string      `json:"memberId"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Permissions Permissions `json:"permissions"`
	CreatedAt   time.Time   `json:"createdAt"`
	ExpiresAt   time.Time   `json:"expiresAt"`
}

func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
