package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"rental_console/internal/domain/entities"
	"rental_console/internal/domain/errs"
	mock_interfaces "rental_console/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var loginNow = time.Date(2024, 5, 15, 9, 0, 0, 0, time.UTC)

func newAuthUseCase(t *testing.T) (*AuthUseCase, *mock_interfaces.MockITeamMemberAPI, *mock_interfaces.MockISessionRepository) {
	ctrl := gomock.NewController(t)
	members := mock_interfaces.NewMockITeamMemberAPI(ctrl)
	sessions := mock_interfaces.NewMockISessionRepository(ctrl)
	uc := NewAuthUseCase(members, sessions, time.Hour, nil)
	uc.now = func() time.Time { return loginNow }
	return uc, members, sessions
}

func TestAuthUseCase_Login(t *testing.T) {
	uc, members, sessions := newAuthUseCase(t)
	member := entities.TeamMember{ID: "m1", Name: "Priya", Email: "priya@rentals.in", Permissions: entities.Permissions{entities.PermissionOrders: true}}

	members.EXPECT().Login(gomock.Any(), "priya@rentals.in", "secret1").Return(member, nil)
	sessions.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s entities.Session) error {
		if s.Token == "" || s.MemberID != "m1" {
			t.Errorf("unexpected session: %+v", s)
		}
		if !s.ExpiresAt.Equal(loginNow.Add(time.Hour)) {
			t.Errorf("expected expiry one hour after login, got %s", s.ExpiresAt)
		}
		return nil
	})

	s, err := uc.Login(context.Background(), "  Priya@Rentals.in ", "secret1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.Permissions.Has(entities.PermissionOrders) || s.Permissions.Has(entities.PermissionUsers) {
		t.Fatalf("unexpected permissions: %v", s.Permissions)
	}
}

func TestAuthUseCase_Login_Rejected(t *testing.T) {
	t.Run("remote rejects credentials", func(t *testing.T) {
		uc, members, _ := newAuthUseCase(t)
		members.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.TeamMember{}, &errs.RemoteError{Op: "login", StatusCode: 401})

		if _, err := uc.Login(context.Background(), "priya@rentals.in", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("remote outage is not a credential error", func(t *testing.T) {
		uc, members, _ := newAuthUseCase(t)
		members.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.TeamMember{}, &errs.RemoteError{Op: "login", StatusCode: 502})

		_, err := uc.Login(context.Background(), "priya@rentals.in", "secret1")
		if errors.Is(err, ErrInvalidCredentials) || !errors.Is(err, errs.ErrRemote) {
			t.Fatalf("expected remote error, got %v", err)
		}
	})

	t.Run("empty member", func(t *testing.T) {
		uc, members, _ := newAuthUseCase(t)
		members.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.TeamMember{}, nil)

		if _, err := uc.Login(context.Background(), "priya@rentals.in", "secret1"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("bad input makes no call", func(t *testing.T) {
		uc, _, _ := newAuthUseCase(t)
		if _, err := uc.Login(context.Background(), "not-an-email", "secret1"); !errors.Is(err, errs.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
		if _, err := uc.Login(context.Background(), "priya@rentals.in", ""); !errors.Is(err, errs.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})
}

func TestAuthUseCase_Resolve(t *testing.T) {
	live := entities.Session{Token: "tok", MemberID: "m1", ExpiresAt: loginNow.Add(time.Minute)}
	expired := entities.Session{Token: "old", MemberID: "m1", ExpiresAt: loginNow}

	t.Run("live session", func(t *testing.T) {
		uc, _, sessions := newAuthUseCase(t)
		sessions.EXPECT().Get(gomock.Any(), "tok").Return(live, nil)

		got, err := uc.Resolve(context.Background(), " tok ")
		if err != nil || got.MemberID != "m1" {
			t.Fatalf("unexpected result: %+v (%v)", got, err)
		}
	})

	t.Run("expired session is removed", func(t *testing.T) {
		uc, _, sessions := newAuthUseCase(t)
		sessions.EXPECT().Get(gomock.Any(), "old").Return(expired, nil)
		sessions.EXPECT().Delete(gomock.Any(), "old").Return(nil)

		if _, err := uc.Resolve(context.Background(), "old"); !errors.Is(err, ErrSessionExpired) {
			t.Fatalf("expected ErrSessionExpired, got %v", err)
		}
	})

	t.Run("unknown token", func(t *testing.T) {
		uc, _, sessions := newAuthUseCase(t)
		sessions.EXPECT().Get(gomock.Any(), "nope").Return(entities.Session{}, nil)

		if _, err := uc.Resolve(context.Background(), "nope"); !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("empty token", func(t *testing.T) {
		uc, _, _ := newAuthUseCase(t)
		if _, err := uc.Resolve(context.Background(), ""); !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})
}

func TestAuthUseCase_Logout(t *testing.T) {
	uc, _, sessions := newAuthUseCase(t)
	sessions.EXPECT().Delete(gomock.Any(), "tok").Return(nil)

	if err := uc.Logout(context.Background(), "tok"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := uc.Logout(context.Background(), " "); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}
