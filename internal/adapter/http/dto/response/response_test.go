package response

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"rental_console/internal/domain/entities"
)

func TestFromSession(t *testing.T) {
	s := entities.Session{
		Token:       "tok",
		MemberID:    "m1",
		Name:        "Asha",
		Permissions: entities.Permissions{entities.PermissionOrders: true, entities.PermissionClients: true, entities.PermissionUsers: false},
		ExpiresAt:   time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC),
	}

	withToken := FromSession(s, true)
	if withToken.Token != "tok" {
		t.Fatalf("expected token on login response")
	}
	if len(withToken.Permissions) != 2 || withToken.Permissions[0] != "clients" || withToken.Permissions[1] != "orders" {
		t.Fatalf("unexpected permissions: %v", withToken.Permissions)
	}

	body, _ := json.Marshal(FromSession(s, false))
	if strings.Contains(string(body), "token") {
		t.Fatalf("token must not be echoed: %s", body)
	}
}

func TestFromTeamMember_DropsPassword(t *testing.T) {
	body, _ := json.Marshal(FromTeamMembers([]entities.TeamMember{{ID: "m1", Name: "Asha", Password: "secret"}}))
	if strings.Contains(string(body), "secret") {
		t.Fatalf("password leaked: %s", body)
	}
}

func TestNewList(t *testing.T) {
	body, _ := json.Marshal(NewList[entities.Client](nil))
	if string(body) != `{"data":[],"count":0}` {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestFromPayments(t *testing.T) {
	r := FromPayments([]entities.Payment{
		{Amount: 0.1, PaymentStatus: entities.PaymentStatusPaid},
		{Amount: 0.2, PaymentStatus: entities.PaymentStatusPaid},
		{Amount: 1000, PaymentStatus: entities.PaymentStatusPending},
	})
	if r.Count != 3 || r.TotalPaid != 0.3 {
		t.Fatalf("unexpected report: count=%d total=%v", r.Count, r.TotalPaid)
	}
}
