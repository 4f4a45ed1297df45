package handlers

import (
	"net/http"
	"testing"

	"rental_console/internal/adapter/http/handlers/mocks"
	"rental_console/internal/domain/entities"
	"rental_console/internal/domain/errs"
	"rental_console/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestClientHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("phone rejected by usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/clients", h.Create)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Client{}, errs.Invalid("phoneNumber", "%q is not a valid phone number", "123"))

		w := doRequest(r, http.MethodPost, "/v1/clients", `{"clientName":"Acme","phoneNumber":"123"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created active by default", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/clients", h.Create)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, c entities.Client) (entities.Client, error) {
			if !c.IsActive || c.ClientName != "Acme" {
				t.Fatalf("unexpected client: %+v", c)
			}
			c.ID = "c1"
			return c, nil
		})

		w := doRequest(r, http.MethodPost, "/v1/clients", `{"clientName":" Acme ","phoneNumber":"9876543210","amount":700}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["id"] != "c1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestClientHandler_ListAndToggle(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIClientUseCase(ctrl)
	h := NewClientHandler(uc, nil)

	r := gin.New()
	r.GET("/v1/clients", h.List)
	r.PATCH("/v1/clients/:id/toggle-active", h.ToggleActive)

	uc.EXPECT().List(gomock.Any(), true).Return([]entities.Client{{ID: "c1", IsActive: true}}, nil)
	uc.EXPECT().ToggleActive(gomock.Any(), "c1").Return(entities.Client{ID: "c1", IsActive: false}, nil)

	if w := doRequest(r, http.MethodGet, "/v1/clients?active=true", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	w := doRequest(r, http.MethodPatch, "/v1/clients/c1/toggle-active", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body := decodeBody(t, w); body["isActive"] != false {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestClientHandler_Get_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIClientUseCase(ctrl)
	h := NewClientHandler(uc, nil)

	r := gin.New()
	r.GET("/v1/clients/:id", h.Get)

	uc.EXPECT().Get(gomock.Any(), "c9").Return(entities.Client{}, usecase.ErrClientNotFound)

	if w := doRequest(r, http.MethodGet, "/v1/clients/c9", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestProductHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIProductUseCase(ctrl)
	h := NewProductHandler(uc, nil)

	r := gin.New()
	r.POST("/v1/products", h.Create)
	r.DELETE("/v1/products/:id", h.Delete)

	if w := doRequest(r, http.MethodPost, "/v1/products", `{"productName":"ThinkPad","productType":"laptop","price":-1}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	uc.EXPECT().Delete(gomock.Any(), "p1", true).Return(nil)
	if w := doRequest(r, http.MethodDelete, "/v1/products/p1?confirm=true", ""); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestTeamMemberHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockITeamMemberUseCase(ctrl)
	h := NewTeamMemberHandler(uc, nil)

	r := gin.New()
	r.GET("/v1/team-members", h.List)

	uc.EXPECT().List(gomock.Any()).Return([]entities.TeamMember{{ID: "m1", Name: "Asha", Password: "secret"}}, nil)

	w := doRequest(r, http.MethodGet, "/v1/team-members", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	data := decodeBody(t, w)["data"].([]any)
	if _, leaked := data[0].(map[string]any)["password"]; leaked {
		t.Fatalf("password leaked: %s", w.Body.String())
	}
}

func TestTermsHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	terms := mocks.NewMockITermsUseCase(ctrl)
	names := mocks.NewMockIInvoiceNameUseCase(ctrl)
	h := NewTermsHandler(terms, names, nil)

	r := gin.New()
	r.POST("/v1/terms", h.Create)
	r.GET("/v1/terms/client/:clientId", h.ForClient)
	r.PUT("/v1/invoice-names/:id", h.RenameInvoiceName)

	if w := doRequest(r, http.MethodPost, "/v1/terms", `{"clientId":"c1","points":[]}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	terms.EXPECT().ForClient(gomock.Any(), "c1").Return([]entities.Terms{{ID: "t1", ClientID: "c1"}}, nil)
	if w := doRequest(r, http.MethodGet, "/v1/terms/client/c1", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	names.EXPECT().Rename(gomock.Any(), "n1", "Rent Your PC").Return(entities.InvoiceName{ID: "n1", InvoiceName: "Rent Your PC"}, nil)
	w := doRequest(r, http.MethodPut, "/v1/invoice-names/n1", `{"invoiceName":"Rent Your PC"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body := decodeBody(t, w); body["invoiceName"] != "Rent Your PC" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
