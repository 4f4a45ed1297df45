package handlers

import (
	"net/http"
	"testing"
	"time"

	"rental_console/internal/adapter/http/handlers/mocks"
	"rental_console/internal/adapter/http/middleware"
	"rental_console/internal/domain/entities"
	"rental_console/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewAuthHandler(mocks.NewMockIAuthUseCase(ctrl), nil)

		r := gin.New()
		r.POST("/v1/auth/login", h.Login)

		w := doRequest(r, http.MethodPost, "/v1/auth/login", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("rejected credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/auth/login", h.Login)

		uc.EXPECT().Login(gomock.Any(), "asha@example.com", "wrong").Return(entities.Session{}, usecase.ErrInvalidCredentials)

		w := doRequest(r, http.MethodPost, "/v1/auth/login", `{"email":"Asha@Example.com","password":"wrong"}`)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/auth/login", h.Login)

		uc.EXPECT().Login(gomock.Any(), "asha@example.com", "secret").Return(entities.Session{
			Token:       "tok-1",
			MemberID:    "m1",
			Name:        "Asha",
			Permissions: entities.Permissions{entities.PermissionOrders: true},
			ExpiresAt:   time.Date(2024, 5, 15, 22, 0, 0, 0, time.UTC),
		}, nil)

		w := doRequest(r, http.MethodPost, "/v1/auth/login", `{"email":"asha@example.com","password":"secret"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["token"] != "tok-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewAuthHandler(mocks.NewMockIAuthUseCase(ctrl), nil)

		r := gin.New()
		r.POST("/v1/auth/logout", h.Logout)

		w := doRequest(r, http.MethodPost, "/v1/auth/logout", "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("unknown session is fine", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/auth/logout", h.Logout)

		uc.EXPECT().Logout(gomock.Any(), "tok-1").Return(usecase.ErrSessionNotFound)

		req := newAuthorizedRequest(http.MethodPost, "/v1/auth/logout", "tok-1")
		w := serveRequest(r, req)
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestAuthHandler_Me(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIAuthUseCase(ctrl)
	h := NewAuthHandler(uc, nil)

	r := gin.New()
	r.GET("/v1/auth/me", middleware.RequireSession(uc), h.Me)

	uc.EXPECT().Resolve(gomock.Any(), "tok-1").Return(entities.Session{Token: "tok-1", Name: "Asha"}, nil)

	w := serveRequest(r, newAuthorizedRequest(http.MethodGet, "/v1/auth/me", "tok-1"))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["name"] != "Asha" || body["token"] != nil {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
