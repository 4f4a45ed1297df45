package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"rental_console/internal/domain/entities"
	"rental_console/internal/domain/errs"
	"rental_console/internal/domain/pricing"
	mock_interfaces "rental_console/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type documentMocks struct {
	orders   *mock_interfaces.MockIOrderAPI
	clients  *mock_interfaces.MockIClientAPI
	terms    *mock_interfaces.MockITermsAPI
	names    *mock_interfaces.MockIInvoiceNameAPI
	renderer *mock_interfaces.MockIDocumentRenderer
	archive  *mock_interfaces.MockIDocumentArchive
}

var issuedAt = time.Date(2024, 5, 20, 11, 0, 0, 0, time.UTC)

func newDocumentUseCase(t *testing.T) (*DocumentUseCase, documentMocks) {
	return newDocumentUseCaseWithDeposit(t, "")
}

func newDocumentUseCaseWithDeposit(t *testing.T, deposit pricing.DepositSource) (*DocumentUseCase, documentMocks) {
	ctrl := gomock.NewController(t)
	m := documentMocks{
		orders:   mock_interfaces.NewMockIOrderAPI(ctrl),
		clients:  mock_interfaces.NewMockIClientAPI(ctrl),
		terms:    mock_interfaces.NewMockITermsAPI(ctrl),
		names:    mock_interfaces.NewMockIInvoiceNameAPI(ctrl),
		renderer: mock_interfaces.NewMockIDocumentRenderer(ctrl),
		archive:  mock_interfaces.NewMockIDocumentArchive(ctrl),
	}
	uc := NewDocumentUseCase(m.orders, m.clients, m.terms, m.names, m.renderer, m.archive, nil, deposit, nil)
	uc.now = func() time.Time { return issuedAt }
	return uc, m
}

func TestDocumentUseCase_Invoice(t *testing.T) {
	uc, m := newDocumentUseCase(t)
	points := []entities.TermsPoint{{PointNumber: 1, Description: "Rent is payable in advance"}}

	m.orders.EXPECT().Get(gomock.Any(), orderID).Return(orderWith(entities.StatusConfirmed), nil)
	m.names.EXPECT().List(gomock.Any()).Return([]entities.InvoiceName{{ID: "n1", InvoiceName: "Acme Rentals"}}, nil)
	m.terms.EXPECT().GetByClient(gomock.Any(), "c1").Return([]entities.Terms{{ID: "t0"}, {ID: "t1", Points: points}}, nil)
	m.renderer.EXPECT().RenderInvoice(gomock.Any()).DoAndReturn(func(doc entities.InvoiceDocument) ([]byte, error) {
		if doc.InvoiceNo != "INV-B9C0D1" || doc.BusinessName != "Acme Rentals" || !doc.IssuedAt.Equal(issuedAt) {
			t.Errorf("unexpected header: %+v", doc)
		}
		if doc.Totals.GrandTotal != 2860 || doc.Totals.DepositTotal != 500 {
			t.Errorf("invoice must include line deposits, got %+v", doc.Totals)
		}
		if len(doc.Terms) != 1 || doc.Client.ID != "c1" {
			t.Errorf("unexpected terms or client: %+v", doc)
		}
		return []byte("%PDF-invoice"), nil
	})
	m.archive.EXPECT().Put(gomock.Any(), "invoices/invoice-INV-B9C0D1.pdf", "application/pdf", gomock.Any()).Return("gs://docs/invoices/invoice-INV-B9C0D1.pdf", nil)

	got, err := uc.Invoice(context.Background(), orderID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "invoice-INV-B9C0D1.pdf" || got.ContentType != "application/pdf" || string(got.Data) != "%PDF-invoice" {
		t.Fatalf("unexpected document: %+v", got)
	}
	if got.ArchiveURL == "" {
		t.Fatalf("expected archive url")
	}
}

func TestDocumentUseCase_Invoice_FollowsOrderDepositPolicy(t *testing.T) {
	cases := []struct {
		deposit pricing.DepositSource
		total   float64
		held    float64
	}{
		{deposit: pricing.DepositClientFlat, total: 3060, held: 700},
		{deposit: pricing.DepositNone, total: 2360, held: 0},
	}
	for _, tc := range cases {
		t.Run(string(tc.deposit), func(t *testing.T) {
			uc, m := newDocumentUseCaseWithDeposit(t, tc.deposit)
			m.orders.EXPECT().Get(gomock.Any(), orderID).Return(orderWith(entities.StatusConfirmed), nil)
			m.names.EXPECT().List(gomock.Any()).Return(nil, nil)
			m.terms.EXPECT().GetByClient(gomock.Any(), "c1").Return(nil, nil)
			m.renderer.EXPECT().RenderInvoice(gomock.Any()).DoAndReturn(func(doc entities.InvoiceDocument) ([]byte, error) {
				if doc.Totals.GrandTotal != tc.total || doc.Totals.DepositTotal != tc.held {
					t.Errorf("expected grand %v deposit %v, got %+v", tc.total, tc.held, doc.Totals)
				}
				return []byte("%PDF"), nil
			})
			m.archive.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", nil)

			if _, err := uc.Invoice(context.Background(), orderID); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestDocumentUseCase_Challan(t *testing.T) {
	uc, m := newDocumentUseCase(t)
	order := orderWith(entities.StatusCompleted)
	order.DeliveryChallanNo = "DC 2024/07"
	order.Client = nil

	m.orders.EXPECT().Get(gomock.Any(), orderID).Return(order, nil)
	m.clients.EXPECT().List(gomock.Any()).Return([]entities.Client{acmeClient()}, nil)
	m.names.EXPECT().List(gomock.Any()).Return(nil, errors.New("boom"))
	m.renderer.EXPECT().RenderChallan(gomock.Any()).DoAndReturn(func(doc entities.ChallanDocument) ([]byte, error) {
		if doc.ChallanNo != "DC 2024/07" || doc.Client.PhoneNumber != "9876543210" || doc.BusinessName != "" {
			t.Errorf("unexpected challan: %+v", doc)
		}
		return []byte("%PDF-challan"), nil
	})
	m.archive.EXPECT().Put(gomock.Any(), "challans/challan-DC_2024_07.pdf", "application/pdf", gomock.Any()).Return("", errors.New("bucket missing"))

	got, err := uc.Challan(context.Background(), orderID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "challan-DC_2024_07.pdf" || got.ArchiveURL != "" {
		t.Fatalf("unexpected document: %+v", got)
	}
}

func TestDocumentUseCase_Gating(t *testing.T) {
	t.Run("cancelled order", func(t *testing.T) {
		uc, m := newDocumentUseCase(t)
		m.orders.EXPECT().Get(gomock.Any(), orderID).Return(orderWith(entities.StatusCancelled), nil)

		if _, err := uc.Invoice(context.Background(), orderID); !errors.Is(err, errs.ErrInvalidStateTransition) {
			t.Fatalf("expected invalid transition, got %v", err)
		}
	})

	t.Run("unknown order", func(t *testing.T) {
		uc, m := newDocumentUseCase(t)
		m.orders.EXPECT().Get(gomock.Any(), orderID).Return(entities.Order{}, nil)

		if _, err := uc.Challan(context.Background(), orderID); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("no renderer", func(t *testing.T) {
		uc := NewDocumentUseCase(nil, nil, nil, nil, nil, nil, nil, "", nil)
		if _, err := uc.Invoice(context.Background(), orderID); !errors.Is(err, ErrDocumentRendererNotConfigured) {
			t.Fatalf("expected ErrDocumentRendererNotConfigured, got %v", err)
		}
	})
}

func TestFileName(t *testing.T) {
	if got := fileName("invoice", "INV/24 #7"); got != "invoice-INV_24__7.pdf" {
		t.Fatalf("unexpected name: %q", got)
	}
}
