package pricing

import (
	"errors"
	"testing"

	"rental_console/internal/domain/entities"
	"rental_console/internal/domain/errs"

	"github.com/shopspring/decimal"
)

func scenarioA() Input {
	return Input{
		Lines:  []entities.LineItem{{ProductID: "p1", UnitPrice: 1000, Quantity: 2}},
		Params: entities.PricingParameters{GST: 18, Discount: 10, TransportCharges: 200},
	}
}

func requireEqual(t *testing.T, name string, got decimal.Decimal, want int64) {
	t.Helper()
	if !got.Equal(decimal.NewFromInt(want)) {
		t.Fatalf("%s: expected %d, got %s", name, want, got)
	}
}

func TestEngine_Compute_ScenarioA(t *testing.T) {
	e := NewEngine(nil)

	totals, err := e.Compute(scenarioA())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	requireEqual(t, "subtotal", totals.Subtotal, 2000)
	requireEqual(t, "gst", totals.GSTAmount, 360)
	requireEqual(t, "discount", totals.DiscountAmount, 200)
	requireEqual(t, "transport", totals.TransportCharges, 200)
	requireEqual(t, "deposit", totals.DepositTotal, 0)
	requireEqual(t, "grand", totals.GrandTotal, 2360)
}

func TestEngine_Compute_Idempotent(t *testing.T) {
	e := NewEngine(nil)
	in := scenarioA()
	in.Lines = append(in.Lines, entities.LineItem{ProductID: "p2", UnitPrice: 333.33, Quantity: 3, DepositAmount: 150})
	in.Deposit = DepositLineItems

	first, err := e.Compute(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := e.Compute(in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !again.GrandTotal.Equal(first.GrandTotal) || !again.Subtotal.Equal(first.Subtotal) ||
			!again.GSTAmount.Equal(first.GSTAmount) || !again.DiscountAmount.Equal(first.DiscountAmount) ||
			!again.DepositTotal.Equal(first.DepositTotal) {
			t.Fatalf("expected identical totals, got %+v and %+v", first, again)
		}
	}
}

func TestEngine_Compute_IgnoresSuppliedLineTotals(t *testing.T) {
	e := NewEngine(nil)
	in := scenarioA()
	in.Lines[0].TotalPrice = 999999

	totals, err := e.Compute(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	requireEqual(t, "subtotal", totals.Subtotal, 2000)
}

func TestEngine_Compute_Monotonicity(t *testing.T) {
	e := NewEngine([]float64{0, 5, 12, 18, 28})
	base := Input{
		Lines: []entities.LineItem{
			{ProductID: "p1", UnitPrice: 1234.56, Quantity: 3},
			{ProductID: "p2", UnitPrice: 99.99, Quantity: 7},
		},
		Params: entities.PricingParameters{GST: 12, Discount: 5, TransportCharges: 150},
	}

	grand := func(t *testing.T, in Input) decimal.Decimal {
		t.Helper()
		totals, err := e.Compute(in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return totals.GrandTotal
	}

	t.Run("discount never increases grand total", func(t *testing.T) {
		prev := grand(t, base)
		for d := 0.0; d <= 100; d += 2.5 {
			in := base
			in.Params.Discount = d
			cur := grand(t, in)
			if d > 0 && cur.GreaterThan(prev) {
				t.Fatalf("discount %.1f increased grand total from %s to %s", d, prev, cur)
			}
			prev = cur
		}
	})

	t.Run("gst never decreases grand total", func(t *testing.T) {
		var prev decimal.Decimal
		for i, rate := range []float64{0, 5, 12, 18, 28} {
			in := base
			in.Params.GST = rate
			cur := grand(t, in)
			if i > 0 && cur.LessThan(prev) {
				t.Fatalf("gst %.0f decreased grand total from %s to %s", rate, prev, cur)
			}
			prev = cur
		}
	})

	t.Run("transport never decreases grand total", func(t *testing.T) {
		var prev decimal.Decimal
		for i, tc := range []float64{0, 0.4, 0.6, 1, 250, 1000.5} {
			in := base
			in.Params.TransportCharges = tc
			cur := grand(t, in)
			if i > 0 && cur.LessThan(prev) {
				t.Fatalf("transport %.2f decreased grand total from %s to %s", tc, prev, cur)
			}
			prev = cur
		}
	})
}

func TestEngine_Compute_DepositSources(t *testing.T) {
	e := NewEngine(nil)
	in := Input{
		Lines: []entities.LineItem{
			{ProductID: "p1", UnitPrice: 500, Quantity: 2, DepositAmount: 1000},
			{ProductID: "p2", UnitPrice: 250, Quantity: 1, DepositAmount: 500},
		},
		Params:        entities.PricingParameters{GST: 0},
		ClientDeposit: 700,
	}

	cases := []struct {
		source  DepositSource
		deposit int64
		grand   int64
	}{
		{source: DepositNone, deposit: 0, grand: 1250},
		{source: "", deposit: 0, grand: 1250},
		{source: DepositLineItems, deposit: 1500, grand: 2750},
		{source: DepositClientFlat, deposit: 700, grand: 1950},
	}

	for _, tc := range cases {
		t.Run(string(tc.source), func(t *testing.T) {
			in.Deposit = tc.source
			totals, err := e.Compute(in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			requireEqual(t, "deposit", totals.DepositTotal, tc.deposit)
			requireEqual(t, "grand", totals.GrandTotal, tc.grand)
		})
	}
}

func TestEngine_Compute_RoundsOnlyGrandTotal(t *testing.T) {
	e := NewEngine(nil)
	in := Input{
		Lines:  []entities.LineItem{{ProductID: "p1", UnitPrice: 333.33, Quantity: 1}},
		Params: entities.PricingParameters{GST: 18, Discount: 0, TransportCharges: 0},
	}

	totals, err := e.Compute(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !totals.GSTAmount.Equal(decimal.RequireFromString("59.9994")) {
		t.Fatalf("gst amount should not be rounded, got %s", totals.GSTAmount)
	}
	requireEqual(t, "grand", totals.GrandTotal, 393)
}

func TestEngine_Validate(t *testing.T) {
	e := NewEngine(nil)
	cases := []struct {
		name  string
		mut   func(in *Input)
		field string
	}{
		{name: "negative price", mut: func(in *Input) { in.Lines[0].UnitPrice = -1 }, field: "products[0].unitPrice"},
		{name: "zero quantity", mut: func(in *Input) { in.Lines[0].Quantity = 0 }, field: "products[0].quantity"},
		{name: "negative quantity", mut: func(in *Input) { in.Lines[0].Quantity = -3 }, field: "products[0].quantity"},
		{name: "negative deposit", mut: func(in *Input) { in.Lines[0].DepositAmount = -5 }, field: "products[0].depositAmount"},
		{name: "over available", mut: func(in *Input) { in.Lines[0].AvailableQty = 1 }, field: "products[0].quantity"},
		{name: "gst not allowed", mut: func(in *Input) { in.Params.GST = 7 }, field: "gst"},
		{name: "discount above 100", mut: func(in *Input) { in.Params.Discount = 101 }, field: "discount"},
		{name: "negative discount", mut: func(in *Input) { in.Params.Discount = -1 }, field: "discount"},
		{name: "negative transport", mut: func(in *Input) { in.Params.TransportCharges = -10 }, field: "transportCharges"},
		{name: "negative client deposit", mut: func(in *Input) { in.ClientDeposit = -1 }, field: "clientDeposit"},
		{name: "unknown deposit source", mut: func(in *Input) { in.Deposit = "both" }, field: "deposit"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := scenarioA()
			tc.mut(&in)
			_, err := e.Compute(in)
			if !errors.Is(err, errs.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
			var ve *errs.ValidationError
			if !errors.As(err, &ve) || ve.Field != tc.field {
				t.Fatalf("expected field %q, got %v", tc.field, err)
			}
		})
	}
}

func TestEngine_EmptyLines(t *testing.T) {
	totals, err := NewEngine(nil).Compute(Input{Params: entities.PricingParameters{TransportCharges: 100}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	requireEqual(t, "subtotal", totals.Subtotal, 0)
	requireEqual(t, "grand", totals.GrandTotal, 100)
}

func TestTotals_Summary(t *testing.T) {
	totals, err := NewEngine(nil).Compute(scenarioA())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := totals.Summary()
	if s.Subtotal != 2000 || s.GSTAmount != 360 || s.DiscountAmount != 200 || s.TransportCharges != 200 || s.GrandTotal != 2360 {
		t.Fatalf("unexpected summary: %+v", s)
	}
}
