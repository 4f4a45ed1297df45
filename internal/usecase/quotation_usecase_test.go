package usecase

import (
	"context"
	"errors"
	"testing"

	"rental_console/internal/domain/entities"
	"rental_console/internal/domain/errs"
	"rental_console/internal/domain/lifecycle"
	mock_interfaces "rental_console/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type quotationMocks struct {
	quotations *mock_interfaces.MockIQuotationAPI
	orders     *mock_interfaces.MockIOrderAPI
	products   *mock_interfaces.MockIProductAPI
	clients    *mock_interfaces.MockIClientAPI
}

func newQuotationUseCase(t *testing.T) (*QuotationUseCase, quotationMocks) {
	ctrl := gomock.NewController(t)
	m := quotationMocks{
		quotations: mock_interfaces.NewMockIQuotationAPI(ctrl),
		orders:     mock_interfaces.NewMockIOrderAPI(ctrl),
		products:   mock_interfaces.NewMockIProductAPI(ctrl),
		clients:    mock_interfaces.NewMockIClientAPI(ctrl),
	}
	return NewQuotationUseCase(m.quotations, m.orders, m.products, m.clients, nil, nil, nil), m
}

func TestQuotationUseCase_Create(t *testing.T) {
	t.Run("snapshots catalog and prices without deposit", func(t *testing.T) {
		uc, m := newQuotationUseCase(t)
		m.clients.EXPECT().List(gomock.Any()).Return([]entities.Client{acmeClient()}, nil)
		m.products.EXPECT().List(gomock.Any()).Return(catalog(), nil)
		m.quotations.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, q entities.Quotation) (entities.Quotation, error) {
			if q.GrandTotal != 2360 {
				t.Errorf("expected grand total 2360, got %v", q.GrandTotal)
			}
			if q.ClientName != "Acme" || q.Status != entities.StatusPending {
				t.Errorf("unexpected quotation: %+v", q)
			}
			li := q.Products[0]
			if li.ProductName != "ThinkPad T14" || li.UnitPrice != 1000 || li.AvailableQty != 5 || li.TotalPrice != 2000 {
				t.Errorf("unexpected snapshot: %+v", li)
			}
			q.ID = "q1"
			return q, nil
		})
		m.quotations.EXPECT().Get(gomock.Any(), "q1").Return(quotationWith(entities.StatusPending), nil)

		got, err := uc.Create(context.Background(), scenarioAInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Quotation.ID != "q1" || got.Totals.GrandTotal != 2360 || got.Totals.DepositTotal != 0 {
			t.Fatalf("unexpected details: %+v", got)
		}
		if len(got.Allowed) == 0 || got.Allowed[0] != lifecycle.ActionEditLineItem {
			t.Fatalf("unexpected allowed actions: %v", got.Allowed)
		}
	})

	t.Run("quantity above availability never reaches the api", func(t *testing.T) {
		uc, m := newQuotationUseCase(t)
		m.clients.EXPECT().List(gomock.Any()).Return([]entities.Client{acmeClient()}, nil)
		m.products.EXPECT().List(gomock.Any()).Return(catalog(), nil)

		in := scenarioAInput()
		in.Lines[0].Quantity = 6
		_, err := uc.Create(context.Background(), in)
		var ve *errs.ValidationError
		if !errors.As(err, &ve) || ve.Field != "products[0].quantity" {
			t.Fatalf("expected quantity validation error, got %v", err)
		}
	})

	t.Run("invalid input makes no calls", func(t *testing.T) {
		cases := map[string]func(in *RentalInput){
			"missing client":   func(in *RentalInput) { in.ClientID = " " },
			"no lines":         func(in *RentalInput) { in.Lines = nil },
			"bad rental type":  func(in *RentalInput) { in.RentalType = "weekly" },
			"end before start": func(in *RentalInput) { in.EndDate = rentalStart.AddDate(0, 0, -1) },
			"gst not offered":  func(in *RentalInput) { in.Params.GST = 12 },
			"zero quantity":    func(in *RentalInput) { in.Lines[0].Quantity = 0 },
		}
		for name, mut := range cases {
			t.Run(name, func(t *testing.T) {
				uc, _ := newQuotationUseCase(t)
				in := scenarioAInput()
				mut(&in)
				if _, err := uc.Create(context.Background(), in); !errors.Is(err, errs.ErrValidation) {
					t.Fatalf("expected validation error, got %v", err)
				}
			})
		}
	})

	t.Run("inactive client", func(t *testing.T) {
		uc, m := newQuotationUseCase(t)
		inactive := acmeClient()
		inactive.IsActive = false
		m.clients.EXPECT().List(gomock.Any()).Return([]entities.Client{inactive}, nil)

		if _, err := uc.Create(context.Background(), scenarioAInput()); !errors.Is(err, errs.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})
}

func TestQuotationUseCase_EditLineItem(t *testing.T) {
	t.Run("pending quotation pushes recomputed grand total", func(t *testing.T) {
		uc, m := newQuotationUseCase(t)
		m.quotations.EXPECT().Get(gomock.Any(), "q1").Return(quotationWith(entities.StatusPending), nil)
		m.quotations.EXPECT().Update(gomock.Any(), "q1", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, q entities.Quotation) (entities.Quotation, error) {
			if q.Products[0].Quantity != 3 || q.Products[0].TotalPrice != 3000 {
				t.Errorf("unexpected line: %+v", q.Products[0])
			}
			if q.GrandTotal != 3440 {
				t.Errorf("expected grand total 3440, got %v", q.GrandTotal)
			}
			return q, nil
		})
		updated := quotationWith(entities.StatusPending)
		updated.Products[0].Quantity = 3
		updated.GrandTotal = 3440
		m.quotations.EXPECT().Get(gomock.Any(), "q1").Return(updated, nil)

		got, err := uc.EditLineItem(context.Background(), "q1", "l1", LineEdit{Quantity: intPtr(3)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Totals.GrandTotal != 3440 {
			t.Fatalf("unexpected totals: %+v", got.Totals)
		}
	})

	t.Run("confirmed quotation is rejected before any write", func(t *testing.T) {
		uc, m := newQuotationUseCase(t)
		m.quotations.EXPECT().Get(gomock.Any(), "q1").Return(quotationWith(entities.StatusConfirmed), nil)

		_, err := uc.EditLineItem(context.Background(), "q1", "l1", LineEdit{Quantity: intPtr(3)})
		var ist *errs.InvalidStateTransition
		if !errors.As(err, &ist) || ist.Action != string(lifecycle.ActionEditLineItem) {
			t.Fatalf("expected invalid transition, got %v", err)
		}
	})

	t.Run("unknown line", func(t *testing.T) {
		uc, m := newQuotationUseCase(t)
		m.quotations.EXPECT().Get(gomock.Any(), "q1").Return(quotationWith(entities.StatusPending), nil)

		if _, err := uc.EditLineItem(context.Background(), "q1", "nope", LineEdit{Quantity: intPtr(1)}); !errors.Is(err, ErrLineItemNotFound) {
			t.Fatalf("expected ErrLineItemNotFound, got %v", err)
		}
	})

	t.Run("quantity above snapshot", func(t *testing.T) {
		uc, m := newQuotationUseCase(t)
		m.quotations.EXPECT().Get(gomock.Any(), "q1").Return(quotationWith(entities.StatusPending), nil)

		if _, err := uc.EditLineItem(context.Background(), "q1", "p1", LineEdit{Quantity: intPtr(9)}); !errors.Is(err, errs.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("nothing to change", func(t *testing.T) {
		uc, _ := newQuotationUseCase(t)
		if _, err := uc.EditLineItem(context.Background(), "q1", "l1", LineEdit{}); !errors.Is(err, errs.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("stale refetch is discarded", func(t *testing.T) {
		uc, m := newQuotationUseCase(t)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		m.quotations.EXPECT().Get(gomock.Any(), "q1").Return(quotationWith(entities.StatusPending), nil)
		m.quotations.EXPECT().Update(gomock.Any(), "q1", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, q entities.Quotation) (entities.Quotation, error) {
			cancel()
			return q, nil
		})
		m.quotations.EXPECT().Get(gomock.Any(), "q1").Return(quotationWith(entities.StatusPending), nil)

		got, err := uc.EditLineItem(ctx, "q1", "l1", LineEdit{Quantity: intPtr(3)})
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
		if got.Quotation.ID != "" {
			t.Fatalf("stale result must be discarded, got %+v", got)
		}
	})
}

func TestQuotationUseCase_DeleteLineItem(t *testing.T) {
	t.Run("requires confirmation", func(t *testing.T) {
		uc, _ := newQuotationUseCase(t)
		if _, err := uc.DeleteLineItem(context.Background(), "q1", "l1", false); !errors.Is(err, errs.ErrConfirmationRequired) {
			t.Fatalf("expected ErrConfirmationRequired, got %v", err)
		}
	})

	t.Run("deletes by line id and syncs grand total", func(t *testing.T) {
		uc, m := newQuotationUseCase(t)
		q := quotationWith(entities.StatusPending)
		m.quotations.EXPECT().Get(gomock.Any(), "q1").Return(q, nil)
		m.quotations.EXPECT().DeleteProduct(gomock.Any(), "q1", "l1").Return(nil)

		emptied := quotationWith(entities.StatusPending)
		emptied.Products = nil
		m.quotations.EXPECT().Get(gomock.Any(), "q1").Return(emptied, nil)
		m.quotations.EXPECT().Update(gomock.Any(), "q1", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, q entities.Quotation) (entities.Quotation, error) {
			if q.GrandTotal != 200 {
				t.Errorf("expected transport only grand total 200, got %v", q.GrandTotal)
			}
			return q, nil
		})
		emptied.GrandTotal = 200
		m.quotations.EXPECT().Get(gomock.Any(), "q1").Return(emptied, nil)

		got, err := uc.DeleteLineItem(context.Background(), "q1", "p1", true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got.Quotation.Products) != 0 {
			t.Fatalf("unexpected products: %+v", got.Quotation.Products)
		}
	})

	t.Run("sync re-derives remaining line totals and reports failure", func(t *testing.T) {
		uc, m := newQuotationUseCase(t)
		q := quotationWith(entities.StatusPending)
		q.Products = append(q.Products, entities.LineItem{ID: "l2", ProductID: "p2", UnitPrice: 800, Quantity: 1, TotalPrice: 800})
		m.quotations.EXPECT().Get(gomock.Any(), "q1").Return(q, nil)
		m.quotations.EXPECT().DeleteProduct(gomock.Any(), "q1", "l2").Return(nil)

		remaining := quotationWith(entities.StatusPending)
		remaining.Products[0].TotalPrice = 1500
		m.quotations.EXPECT().Get(gomock.Any(), "q1").Return(remaining, nil)
		m.quotations.EXPECT().Update(gomock.Any(), "q1", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, q entities.Quotation) (entities.Quotation, error) {
			if q.Products[0].TotalPrice != 2000 {
				t.Errorf("expected re-derived line total 2000, got %v", q.Products[0].TotalPrice)
			}
			return entities.Quotation{}, &errs.RemoteError{Op: "update quotation", StatusCode: 500}
		})

		if _, err := uc.DeleteLineItem(context.Background(), "q1", "l2", true); !errors.Is(err, errs.ErrRemote) {
			t.Fatalf("expected remote error, got %v", err)
		}
	})

	t.Run("cancelled quotation is rejected", func(t *testing.T) {
		uc, m := newQuotationUseCase(t)
		m.quotations.EXPECT().Get(gomock.Any(), "q1").Return(quotationWith(entities.StatusCancelled), nil)

		if _, err := uc.DeleteLineItem(context.Background(), "q1", "l1", true); !errors.Is(err, errs.ErrInvalidStateTransition) {
			t.Fatalf("expected invalid transition, got %v", err)
		}
	})
}

func TestQuotationUseCase_Cancel(t *testing.T) {
	t.Run("pending quotation", func(t *testing.T) {
		uc, m := newQuotationUseCase(t)
		m.quotations.EXPECT().Get(gomock.Any(), "q1").Return(quotationWith(entities.StatusPending), nil)
		m.quotations.EXPECT().Cancel(gomock.Any(), "q1").Return(nil)
		m.quotations.EXPECT().Get(gomock.Any(), "q1").Return(quotationWith(entities.StatusCancelled), nil)

		got, err := uc.Cancel(context.Background(), " q1 ", true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Quotation.Status != entities.StatusCancelled || len(got.Allowed) != 0 {
			t.Fatalf("unexpected details: %+v", got)
		}
	})

	t.Run("terminal quotation cannot be cancelled again", func(t *testing.T) {
		uc, m := newQuotationUseCase(t)
		m.quotations.EXPECT().Get(gomock.Any(), "q1").Return(quotationWith(entities.StatusCancelled), nil)

		if _, err := uc.Cancel(context.Background(), "q1", true); !errors.Is(err, errs.ErrInvalidStateTransition) {
			t.Fatalf("expected invalid transition, got %v", err)
		}
	})

	t.Run("empty id", func(t *testing.T) {
		uc, _ := newQuotationUseCase(t)
		if _, err := uc.Cancel(context.Background(), " ", true); !errors.Is(err, ErrInvalidQuotationID) {
			t.Fatalf("expected ErrInvalidQuotationID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newQuotationUseCase(t)
		m.quotations.EXPECT().Get(gomock.Any(), "q1").Return(entities.Quotation{}, nil)

		if _, err := uc.Cancel(context.Background(), "q1", true); !errors.Is(err, ErrQuotationNotFound) {
			t.Fatalf("expected ErrQuotationNotFound, got %v", err)
		}
	})
}

func TestQuotationUseCase_GenerateOrder(t *testing.T) {
	t.Run("converts and marks the quotation completed", func(t *testing.T) {
		uc, m := newQuotationUseCase(t)
		m.quotations.EXPECT().Get(gomock.Any(), "q1").Return(quotationWith(entities.StatusPending), nil)
		m.quotations.EXPECT().GenerateOrder(gomock.Any(), "q1").Return(entities.Order{Rental: entities.Rental{ID: "o1"}}, nil)
		m.quotations.EXPECT().Get(gomock.Any(), "q1").Return(quotationWith(entities.StatusPending), nil)
		m.quotations.EXPECT().Update(gomock.Any(), "q1", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, q entities.Quotation) (entities.Quotation, error) {
			if q.Status != entities.StatusCompleted {
				t.Errorf("expected completed, got %s", q.Status)
			}
			return q, nil
		})
		full := orderWith(entities.StatusPending)
		full.ID = "o1"
		full.QuotationID = "q1"
		m.orders.EXPECT().Get(gomock.Any(), "o1").Return(full, nil)

		got, err := uc.GenerateOrder(context.Background(), "q1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "o1" || got.QuotationID != "q1" || len(got.Products) != 1 {
			t.Fatalf("unexpected order: %+v", got)
		}
	})

	t.Run("order is returned when marking fails", func(t *testing.T) {
		uc, m := newQuotationUseCase(t)
		m.quotations.EXPECT().Get(gomock.Any(), "q1").Return(quotationWith(entities.StatusConfirmed), nil)
		m.quotations.EXPECT().GenerateOrder(gomock.Any(), "q1").Return(entities.Order{Rental: entities.Rental{ID: "o1"}}, nil)
		m.quotations.EXPECT().Get(gomock.Any(), "q1").Return(quotationWith(entities.StatusConfirmed), nil)
		m.quotations.EXPECT().Update(gomock.Any(), "q1", gomock.Any()).Return(entities.Quotation{}, &errs.RemoteError{Op: "update quotation", StatusCode: 500})
		m.orders.EXPECT().Get(gomock.Any(), "o1").Return(entities.Order{Rental: entities.Rental{ID: "o1"}}, nil)

		if _, err := uc.GenerateOrder(context.Background(), "q1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("completed quotation cannot be converted twice", func(t *testing.T) {
		uc, m := newQuotationUseCase(t)
		m.quotations.EXPECT().Get(gomock.Any(), "q1").Return(quotationWith(entities.StatusCompleted), nil)

		if _, err := uc.GenerateOrder(context.Background(), "q1"); !errors.Is(err, errs.ErrInvalidStateTransition) {
			t.Fatalf("expected invalid transition, got %v", err)
		}
	})

	t.Run("api failure", func(t *testing.T) {
		uc, m := newQuotationUseCase(t)
		m.quotations.EXPECT().Get(gomock.Any(), "q1").Return(quotationWith(entities.StatusPending), nil)
		m.quotations.EXPECT().GenerateOrder(gomock.Any(), "q1").Return(entities.Order{}, &errs.RemoteError{Op: "generate order", StatusCode: 500})

		if _, err := uc.GenerateOrder(context.Background(), "q1"); !errors.Is(err, errs.ErrRemote) {
			t.Fatalf("expected remote error, got %v", err)
		}
	})
}

func TestQuotationUseCase_List(t *testing.T) {
	uc, m := newQuotationUseCase(t)
	other := quotationWith(entities.StatusCancelled)
	other.ID = "q2"
	m.quotations.EXPECT().List(gomock.Any()).Return([]entities.Quotation{quotationWith(entities.StatusPending), other}, nil)

	got, err := uc.List(context.Background(), RentalFilter{Status: entities.StatusCancelled})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "q2" {
		t.Fatalf("unexpected list: %+v", got)
	}

	if _, err := uc.List(context.Background(), RentalFilter{Status: "archived"}); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestQuotationUseCase_Get_ShowsRecordTheEngineRejects(t *testing.T) {
	uc, m := newQuotationUseCase(t)
	legacy := quotationWith(entities.StatusPending)
	legacy.GST = 12
	m.quotations.EXPECT().Get(gomock.Any(), "q1").Return(legacy, nil)

	got, err := uc.Get(context.Background(), "q1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.TotalsError == "" || got.Quotation.ID != "q1" {
		t.Fatalf("expected a totals error on the details, got %+v", got)
	}
}
