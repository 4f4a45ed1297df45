package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"rental_console/internal/domain/entities"
	"rental_console/internal/domain/errs"
	mock_interfaces "rental_console/internal/usecase/interfaces/mocks"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"go.uber.org/mock/gomock"
)

var businessTZ = time.FixedZone("IST", 5*3600+1800)

// paymentNow is Wednesday 15 May 2024, 10:00 IST.
var paymentNow = time.Date(2024, 5, 15, 10, 0, 0, 0, businessTZ)

type paymentMocks struct {
	payments *mock_interfaces.MockIPaymentAPI
	orders   *mock_interfaces.MockIOrderAPI
	gateway  *mock_interfaces.MockIPaymentGateway
	exporter *mock_interfaces.MockIReportExporter
}

func newPaymentUseCase(t *testing.T, withGateway bool) (*PaymentUseCase, paymentMocks) {
	ctrl := gomock.NewController(t)
	m := paymentMocks{
		payments: mock_interfaces.NewMockIPaymentAPI(ctrl),
		orders:   mock_interfaces.NewMockIOrderAPI(ctrl),
		gateway:  mock_interfaces.NewMockIPaymentGateway(ctrl),
		exporter: mock_interfaces.NewMockIReportExporter(ctrl),
	}
	var uc *PaymentUseCase
	if withGateway {
		uc = NewPaymentUseCase(m.payments, m.orders, m.gateway, m.exporter, nil, businessTZ, nil)
	} else {
		uc = NewPaymentUseCase(m.payments, m.orders, nil, m.exporter, nil, businessTZ, nil)
	}
	uc.now = func() time.Time { return paymentNow }
	return uc, m
}

func cashPayment(amount float64) PaymentInput {
	return PaymentInput{PaymentMethod: entities.PaymentMethodOffline, PaymentType: entities.PaymentTypeCash, Amount: amount}
}

func TestPaymentUseCase_Record_ScenarioD(t *testing.T) {
	uc, m := newPaymentUseCase(t, false)

	// First payment confirms the pending order.
	m.orders.EXPECT().Get(gomock.Any(), orderID).Return(orderWith(entities.StatusPending), nil)
	m.payments.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Payment) (entities.Payment, error) {
		if p.OrderID != orderID || p.ClientID != "c1" || p.Amount != 500 || p.PaymentStatus != entities.PaymentStatusPaid {
			t.Errorf("unexpected payment: %+v", p)
		}
		p.ID = "pay1"
		return p, nil
	})
	m.orders.EXPECT().Update(gomock.Any(), orderID, gomock.Any()).DoAndReturn(func(_ context.Context, _ string, o entities.Order) (entities.Order, error) {
		if o.Status != entities.StatusConfirmed || o.GrandTotal != 2360 {
			t.Errorf("unexpected order update: %+v", o)
		}
		return o, nil
	})
	m.orders.EXPECT().Get(gomock.Any(), orderID).Return(orderWith(entities.StatusConfirmed), nil)
	m.payments.EXPECT().List(gomock.Any()).Return([]entities.Payment{
		{ID: "pay1", OrderID: orderID, Amount: 500, PaymentStatus: entities.PaymentStatusPaid},
	}, nil)

	first, err := uc.Record(context.Background(), orderID, cashPayment(500))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !first.OrderConfirmed || first.Order.Status != entities.StatusConfirmed || first.PaidToDate != 500 {
		t.Fatalf("unexpected first receipt: %+v", first)
	}

	// Second payment creates a new record and leaves the grand total alone.
	m.orders.EXPECT().Get(gomock.Any(), orderID).Return(orderWith(entities.StatusConfirmed), nil)
	m.payments.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Payment) (entities.Payment, error) {
		p.ID = "pay2"
		return p, nil
	})
	m.orders.EXPECT().Get(gomock.Any(), orderID).Return(orderWith(entities.StatusConfirmed), nil)
	m.payments.EXPECT().List(gomock.Any()).Return([]entities.Payment{
		{ID: "pay1", OrderID: orderID, Amount: 500, PaymentStatus: entities.PaymentStatusPaid},
		{ID: "pay2", OrderID: orderID, Amount: 300, PaymentStatus: entities.PaymentStatusPaid},
		{ID: "other", OrderID: "o9", Amount: 999, PaymentStatus: entities.PaymentStatusPaid},
	}, nil)

	second, err := uc.Record(context.Background(), orderID, cashPayment(300))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Payment.ID != "pay2" || second.OrderConfirmed {
		t.Fatalf("unexpected second receipt: %+v", second)
	}
	if second.Order.GrandTotal != 2360 || second.PaidToDate != 800 {
		t.Fatalf("payments must not reduce the grand total: %+v", second)
	}
}

func TestPaymentUseCase_Record_Validation(t *testing.T) {
	yesterday := paymentNow.AddDate(0, 0, -1)
	today := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		name  string
		in    PaymentInput
		field string
	}{
		{"zero amount", cashPayment(0), "amount"},
		{"negative amount", cashPayment(-5), "amount"},
		{"missing method", PaymentInput{PaymentType: entities.PaymentTypeCash, Amount: 10}, "paymentMethod"},
		{"unknown type", PaymentInput{PaymentMethod: entities.PaymentMethodOffline, PaymentType: "cheque", Amount: 10}, "paymentType"},
		{"next date in the past", PaymentInput{PaymentMethod: entities.PaymentMethodOffline, PaymentType: entities.PaymentTypeCash, Amount: 10, NextPaymentDate: &yesterday}, "nextPaymentDate"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, _ := newPaymentUseCase(t, false)
			_, err := uc.Record(context.Background(), orderID, tc.in)
			var ve *errs.ValidationError
			if !errors.As(err, &ve) || ve.Field != tc.field {
				t.Fatalf("expected validation error on %s, got %v", tc.field, err)
			}
		})
	}

	t.Run("next date today is accepted", func(t *testing.T) {
		uc, _ := newPaymentUseCase(t, false)
		in := cashPayment(10)
		in.NextPaymentDate = &today
		if err := uc.validate(in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("empty order id", func(t *testing.T) {
		uc, _ := newPaymentUseCase(t, false)
		if _, err := uc.Record(context.Background(), " ", cashPayment(10)); !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})
}

func TestPaymentUseCase_Record_Failures(t *testing.T) {
	t.Run("create failure leaves the order untouched", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, false)
		m.orders.EXPECT().Get(gomock.Any(), orderID).Return(orderWith(entities.StatusPending), nil)
		m.payments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Payment{}, &errs.RemoteError{Op: "create payment", StatusCode: 500})

		if _, err := uc.Record(context.Background(), orderID, cashPayment(500)); !errors.Is(err, errs.ErrRemote) {
			t.Fatalf("expected remote error, got %v", err)
		}
	})

	t.Run("cancelled order rejects payments", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, false)
		m.orders.EXPECT().Get(gomock.Any(), orderID).Return(orderWith(entities.StatusCancelled), nil)

		if _, err := uc.Record(context.Background(), orderID, cashPayment(500)); !errors.Is(err, errs.ErrInvalidStateTransition) {
			t.Fatalf("expected invalid transition, got %v", err)
		}
	})

	t.Run("order not found", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, false)
		m.orders.EXPECT().Get(gomock.Any(), orderID).Return(entities.Order{}, nil)

		if _, err := uc.Record(context.Background(), orderID, cashPayment(500)); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("confirmation failure is reported on the receipt", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, false)
		m.orders.EXPECT().Get(gomock.Any(), orderID).Return(orderWith(entities.StatusPending), nil)
		m.payments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Payment{ID: "pay1"}, nil)
		m.orders.EXPECT().Update(gomock.Any(), orderID, gomock.Any()).Return(entities.Order{}, &errs.RemoteError{Op: "update order", StatusCode: 500})
		m.orders.EXPECT().Get(gomock.Any(), orderID).Return(orderWith(entities.StatusPending), nil)
		m.payments.EXPECT().List(gomock.Any()).Return(nil, nil)

		got, err := uc.Record(context.Background(), orderID, cashPayment(500))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.OrderConfirmed || got.ConfirmError == "" || got.Order.Status != entities.StatusPending {
			t.Fatalf("unexpected receipt: %+v", got)
		}
	})
}

func TestPaymentUseCase_Record_OnlineCapture(t *testing.T) {
	online := func() PaymentInput {
		return PaymentInput{
			PaymentMethod:   entities.PaymentMethodOnline,
			PaymentType:     entities.PaymentTypeUPI,
			Amount:          500,
			ProviderPayload: json.RawMessage(`{"payment_method_id":"pix"}`),
		}
	}

	t.Run("approved capture confirms the order", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, true)
		m.orders.EXPECT().Get(gomock.Any(), orderID).Return(orderWith(entities.StatusPending), nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
			var req map[string]any
			_ = json.Unmarshal(payload, &req)
			if req["external_reference"] != orderID || req["transaction_amount"] != 500.0 {
				t.Errorf("unexpected payload: %v", req)
			}
			payer, _ := req["payer"].(map[string]any)
			if payer["email"] != "ops@acme.in" {
				t.Errorf("expected payer from client, got %v", payer)
			}
			return "mp-1", "approved", json.RawMessage(`{"id":1,"status":"approved"}`), nil
		})
		m.payments.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Payment) (entities.Payment, error) {
			if p.ProviderPaymentID != "mp-1" || p.ProviderStatus != "approved" || p.PaymentStatus != entities.PaymentStatusPaid {
				t.Errorf("unexpected payment: %+v", p)
			}
			return p, nil
		})
		m.orders.EXPECT().Update(gomock.Any(), orderID, gomock.Any()).Return(orderWith(entities.StatusConfirmed), nil)
		m.orders.EXPECT().Get(gomock.Any(), orderID).Return(orderWith(entities.StatusConfirmed), nil)
		m.payments.EXPECT().List(gomock.Any()).Return(nil, nil)

		got, err := uc.Record(context.Background(), orderID, online())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.OrderConfirmed {
			t.Fatalf("expected order confirmation: %+v", got)
		}
	})

	t.Run("non approved capture records a pending payment", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, true)
		m.orders.EXPECT().Get(gomock.Any(), orderID).Return(orderWith(entities.StatusPending), nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-2", "in_process", json.RawMessage(`{}`), nil)
		m.payments.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Payment) (entities.Payment, error) {
			if p.PaymentStatus != entities.PaymentStatusPending {
				t.Errorf("expected pending payment, got %s", p.PaymentStatus)
			}
			return p, nil
		})
		m.orders.EXPECT().Get(gomock.Any(), orderID).Return(orderWith(entities.StatusPending), nil)
		m.payments.EXPECT().List(gomock.Any()).Return(nil, nil)

		got, err := uc.Record(context.Background(), orderID, online())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.OrderConfirmed {
			t.Fatalf("pending capture must not confirm the order")
		}
	})

	t.Run("captured payment that fails to record is logged for reconciliation", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, true)
		logger, hook := logtest.NewNullLogger()
		uc.log = logger
		m.orders.EXPECT().Get(gomock.Any(), orderID).Return(orderWith(entities.StatusPending), nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-3", "approved", json.RawMessage(`{}`), nil)
		m.payments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Payment{}, &errs.RemoteError{Op: "create payment", StatusCode: 502})

		if _, err := uc.Record(context.Background(), orderID, online()); !errors.Is(err, errs.ErrRemote) {
			t.Fatalf("expected remote error, got %v", err)
		}
		var found bool
		for _, e := range hook.AllEntries() {
			if e.Level == logrus.ErrorLevel && e.Data["provider_payment_id"] == "mp-3" {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected an error entry carrying the provider payment id, got %d entries", len(hook.AllEntries()))
		}
	})

	t.Run("gateway errors are mapped", func(t *testing.T) {
		cases := map[string]error{
			`{"status":401,"error":"unauthorized"}`: ErrPaymentGatewayUnauthorized,
			`{"status":400,"error":"bad_request"}`:  ErrPaymentGatewayBadRequest,
			`customer not found`:                    ErrPaymentGatewayCustomerNotFound,
			`{"code":2034}`:                         ErrPaymentGatewayInvalidUsers,
		}
		for msg, want := range cases {
			t.Run(msg, func(t *testing.T) {
				uc, m := newPaymentUseCase(t, true)
				m.orders.EXPECT().Get(gomock.Any(), orderID).Return(orderWith(entities.StatusPending), nil)
				m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New(msg))

				if _, err := uc.Record(context.Background(), orderID, online()); !errors.Is(err, want) {
					t.Fatalf("expected %v, got %v", want, err)
				}
			})
		}
	})

	t.Run("payload without payment method", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, true)
		m.orders.EXPECT().Get(gomock.Any(), orderID).Return(orderWith(entities.StatusPending), nil)
		in := online()
		in.ProviderPayload = json.RawMessage(`{}`)

		if _, err := uc.Record(context.Background(), orderID, in); !errors.Is(err, ErrInvalidProviderPayload) {
			t.Fatalf("expected ErrInvalidProviderPayload, got %v", err)
		}
	})

	t.Run("malformed payload makes no calls", func(t *testing.T) {
		uc, _ := newPaymentUseCase(t, true)
		in := online()
		in.ProviderPayload = json.RawMessage(`{`)

		if _, err := uc.Record(context.Background(), orderID, in); !errors.Is(err, ErrInvalidProviderPayload) {
			t.Fatalf("expected ErrInvalidProviderPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, false)
		m.orders.EXPECT().Get(gomock.Any(), orderID).Return(orderWith(entities.StatusPending), nil)

		if _, err := uc.Record(context.Background(), orderID, online()); !errors.Is(err, ErrPaymentGatewayNotConfigured) {
			t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
		}
	})
}

func TestPaymentUseCase_Update(t *testing.T) {
	recorded := func() []entities.Payment {
		return []entities.Payment{
			{ID: "pay0", OrderID: "other", Amount: 100},
			{ID: "pay1", OrderID: orderID, ClientID: "c1", PaymentMethod: entities.PaymentMethodOffline, PaymentType: entities.PaymentTypeUPI, Amount: 500, PaymentDate: rentalStart, PaymentStatus: entities.PaymentStatusPaid},
		}
	}

	t.Run("edits a payment of an open order", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, false)
		m.payments.EXPECT().List(gomock.Any()).Return(recorded(), nil)
		m.orders.EXPECT().Get(gomock.Any(), orderID).Return(orderWith(entities.StatusConfirmed), nil)
		m.payments.EXPECT().Update(gomock.Any(), "pay1", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, p entities.Payment) (entities.Payment, error) {
			if p.Amount != 750 || p.PaymentType != entities.PaymentTypeCash {
				t.Errorf("unexpected payment: %+v", p)
			}
			if p.OrderID != orderID || p.ClientID != "c1" || p.PaymentStatus != entities.PaymentStatusPaid || !p.PaymentDate.Equal(rentalStart) {
				t.Errorf("stored fields must be kept: %+v", p)
			}
			return p, nil
		})

		got, err := uc.Update(context.Background(), " pay1 ", cashPayment(750))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "pay1" || got.OrderID != orderID {
			t.Fatalf("unexpected payment: %+v", got)
		}
	})

	for _, status := range []entities.Status{entities.StatusCancelled, entities.StatusCompleted} {
		t.Run(string(status)+" order rejects the edit without a write", func(t *testing.T) {
			uc, m := newPaymentUseCase(t, false)
			m.payments.EXPECT().List(gomock.Any()).Return(recorded(), nil)
			m.orders.EXPECT().Get(gomock.Any(), orderID).Return(orderWith(status), nil)

			_, err := uc.Update(context.Background(), "pay1", cashPayment(900))
			if !errors.Is(err, errs.ErrInvalidStateTransition) {
				t.Fatalf("expected invalid transition, got %v", err)
			}
		})
	}

	t.Run("unknown payment", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, false)
		m.payments.EXPECT().List(gomock.Any()).Return(recorded(), nil)

		if _, err := uc.Update(context.Background(), "pay9", cashPayment(750)); !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})

	t.Run("missing order", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, false)
		m.payments.EXPECT().List(gomock.Any()).Return(recorded(), nil)
		m.orders.EXPECT().Get(gomock.Any(), orderID).Return(entities.Order{}, nil)

		if _, err := uc.Update(context.Background(), "pay1", cashPayment(750)); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("invalid input makes no calls", func(t *testing.T) {
		uc, _ := newPaymentUseCase(t, false)
		if _, err := uc.Update(context.Background(), "", cashPayment(750)); !errors.Is(err, ErrInvalidPaymentID) {
			t.Fatalf("expected ErrInvalidPaymentID, got %v", err)
		}
		if _, err := uc.Update(context.Background(), "pay1", cashPayment(0)); !errors.Is(err, errs.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})
}

func TestGatewayPayload_Payer(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		client  *entities.Client
		wantErr bool
		email   string
	}{
		{name: "payer filled from client", payload: `{"payment_method_id":"pix"}`, client: &entities.Client{Email: " ops@acme.in "}, email: "ops@acme.in"},
		{name: "operator email kept", payload: `{"payment_method_id":"pix","payer":{"email":"buyer@x.in"}}`, client: &entities.Client{Email: "ops@acme.in"}, email: "buyer@x.in"},
		{name: "numeric payer id", payload: `{"payment_method_id":"pix","payer":{"id":123}}`},
		{name: "no way to identify payer", payload: `{"payment_method_id":"pix"}`, wantErr: true},
		{name: "payer is not an object", payload: `{"payment_method_id":"pix","payer":"me"}`, client: &entities.Client{Email: "ops@acme.in"}, wantErr: true},
		{name: "blank payment method", payload: `{"payment_method_id":"  ","payer":{"id":"7"}}`, wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			order := orderWith(entities.StatusPending)
			order.Client = tc.client
			in := PaymentInput{Amount: 250, ProviderPayload: json.RawMessage(tc.payload)}

			out, err := gatewayPayload(order, in)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidProviderPayload) {
					t.Fatalf("expected ErrInvalidProviderPayload, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			var req map[string]any
			if err := json.Unmarshal(out, &req); err != nil {
				t.Fatalf("invalid payload: %v", err)
			}
			payer, _ := req["payer"].(map[string]any)
			if payer["type"] != "customer" {
				t.Fatalf("expected customer payer type, got %v", payer)
			}
			if tc.email != "" && payer["email"] != tc.email {
				t.Fatalf("expected payer email %s, got %v", tc.email, payer["email"])
			}
			if req["transaction_amount"] != 250.0 || req["external_reference"] != order.ID {
				t.Fatalf("unexpected payload: %v", req)
			}
		})
	}
}
