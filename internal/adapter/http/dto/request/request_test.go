package request

import (
	"errors"
	"testing"
	"time"

	"rental_console/internal/domain/entities"
	"rental_console/internal/usecase"
)

func strPtr(v string) *string { return &v }

func TestParseDate(t *testing.T) {
	got, err := ParseDate(" 2024-05-15 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected UTC midnight, got %v", got)
	}

	got, err = ParseDate("2024-05-15T10:30:00+05:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.UTC().Hour() != 5 {
		t.Fatalf("unexpected instant: %v", got)
	}

	if _, err := ParseDate("15/05/2024"); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestParseOptionalDate(t *testing.T) {
	for _, v := range []*string{nil, strPtr(""), strPtr("  ")} {
		got, err := ParseOptionalDate(v)
		if err != nil || got != nil {
			t.Fatalf("expected nil, got %v (%v)", got, err)
		}
	}
	if _, err := ParseOptionalDate(strPtr("tomorrow")); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestRentalRequest_ToInput(t *testing.T) {
	price := 900.0
	r := RentalRequest{
		ClientID: " c1 ",
		Products: []LineSelectionRequest{
			{ProductID: " p1 ", Quantity: 2},
			{ProductID: "p2", Quantity: 1, UnitPrice: &price, StartDate: strPtr("2024-05-02")},
		},
		GST:              18,
		Discount:         10,
		TransportCharges: 200,
		RentalType:       "Monthly",
		StartDate:        "2024-05-01",
		EndDate:          "2024-05-31",
	}

	in, err := r.ToInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.ClientID != "c1" || in.RentalType != entities.RentalMonthly {
		t.Fatalf("unexpected input: %+v", in)
	}
	if in.Params != (entities.PricingParameters{GST: 18, Discount: 10, TransportCharges: 200}) {
		t.Fatalf("unexpected params: %+v", in.Params)
	}
	if len(in.Lines) != 2 || in.Lines[0].ProductID != "p1" || in.Lines[0].UnitPrice != nil {
		t.Fatalf("unexpected lines: %+v", in.Lines)
	}
	if in.Lines[1].UnitPrice == nil || *in.Lines[1].UnitPrice != 900 || in.Lines[1].StartDate == nil {
		t.Fatalf("unexpected override line: %+v", in.Lines[1])
	}

	r.EndDate = "soon"
	if _, err := r.ToInput(); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestLineEditRequest_ToEdit(t *testing.T) {
	qty := 3
	edit, err := LineEditRequest{Quantity: &qty, EndDate: strPtr("2024-06-01")}.ToEdit()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if edit.Quantity == nil || *edit.Quantity != 3 || edit.StartDate != nil || edit.EndDate == nil {
		t.Fatalf("unexpected edit: %+v", edit)
	}
}

func TestTeamMemberRequest_ToEntity(t *testing.T) {
	m := TeamMemberRequest{Name: " Asha ", Email: "asha@example.com", Permissions: []string{"Orders", "clients", "root"}}.ToEntity()
	if m.Name != "Asha" {
		t.Fatalf("unexpected name %q", m.Name)
	}
	if !m.Permissions.Has(entities.PermissionOrders) || !m.Permissions.Has(entities.PermissionClients) {
		t.Fatalf("expected granted flags, got %v", m.Permissions)
	}
	if _, ok := m.Permissions["root"]; ok {
		t.Fatalf("unknown flag must be dropped")
	}
	if len(m.Permissions) != len(entities.AllPermissions) {
		t.Fatalf("expected every flag to be present, got %v", m.Permissions)
	}
}

func TestClientRequest_ToEntity(t *testing.T) {
	c, err := ClientRequest{ClientName: "Acme", PhoneNumber: "9876543210", JoiningDate: strPtr("2024-01-10")}.ToEntity()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.IsActive || c.JoiningDate == nil {
		t.Fatalf("unexpected client: %+v", c)
	}

	inactive := false
	c, _ = ClientRequest{ClientName: "Acme", IsActive: &inactive}.ToEntity()
	if c.IsActive {
		t.Fatalf("explicit isActive=false must be kept")
	}
}

func TestProductRequest_ToEntity(t *testing.T) {
	p := ProductRequest{ProductName: "ThinkPad", ProductType: "laptop", Quantity: 5}.ToEntity()
	if p.AvailableQty != 5 {
		t.Fatalf("expected availableQty to default to quantity, got %d", p.AvailableQty)
	}
	two := 2
	p = ProductRequest{ProductName: "ThinkPad", ProductType: "laptop", Quantity: 5, AvailableQty: &two}.ToEntity()
	if p.AvailableQty != 2 {
		t.Fatalf("expected 2, got %d", p.AvailableQty)
	}
}

func TestPaymentRequest_ToInput(t *testing.T) {
	in, err := PaymentRequest{PaymentMethod: " Offline ", PaymentType: "cash", Amount: 500, NextPaymentDate: strPtr("2024-06-15")}.ToInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.PaymentMethod != entities.PaymentMethodOffline || in.PaymentType != entities.PaymentTypeCash {
		t.Fatalf("unexpected input: %+v", in)
	}
	if in.PaymentDate != nil || in.NextPaymentDate == nil {
		t.Fatalf("unexpected dates: %+v", in)
	}
}

func TestPaymentQueries(t *testing.T) {
	f, err := PaymentQuery{Status: "PAID", From: "2024-05-01"}.ToFilter()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Status != entities.PaymentStatusPaid || f.From == nil || f.To != nil {
		t.Fatalf("unexpected filter: %+v", f)
	}

	q, err := PendingPaymentQuery{Window: "Week"}.ToQuery()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Window != usecase.PendingWeek {
		t.Fatalf("expected week, got %q", q.Window)
	}
	if _, err := (PendingPaymentQuery{Window: "custom", From: "x"}).ToQuery(); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}
