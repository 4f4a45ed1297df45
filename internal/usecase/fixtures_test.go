package usecase

import (
	"time"

	"rental_console/internal/domain/entities"
)

var (
	rentalStart = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	rentalEnd   = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
)

func acmeClient() entities.Client {
	return entities.Client{ID: "c1", ClientName: "Acme", PhoneNumber: "9876543210", Email: "ops@acme.in", GSTNo: "29ABCDE1234F1Z5", Amount: 700, IsActive: true}
}

func catalog() []entities.Product {
	return []entities.Product{
		{ID: "p1", ProductName: "ThinkPad T14", ProductType: "laptop", Price: 1000, DepositAmount: 500, Quantity: 10, AvailableQty: 5},
		{ID: "p2", ProductName: "OptiPlex", ProductType: "desktop", Price: 800, DepositAmount: 300, Quantity: 2, AvailableQty: 1},
	}
}

// pendingRental is scenario A: 2 x 1000 at 18% GST, 10% discount and 200
// transport, a grand total of 2360.
func pendingRental(id string) entities.Rental {
	c := acmeClient()
	return entities.Rental{
		ID:         id,
		ClientID:   c.ID,
		ClientName: c.ClientName,
		Client:     &c,
		Products: []entities.LineItem{
			{ID: "l1", ProductID: "p1", ProductName: "ThinkPad T14", UnitPrice: 1000, Quantity: 2, AvailableQty: 5, DepositAmount: 500, TotalPrice: 2000},
		},
		PricingParameters: entities.PricingParameters{GST: 18, Discount: 10, TransportCharges: 200},
		RentalType:        entities.RentalMonthly,
		StartDate:         rentalStart,
		EndDate:           rentalEnd,
		Status:            entities.StatusPending,
		GrandTotal:        2360,
	}
}

func quotationWith(status entities.Status) entities.Quotation {
	r := pendingRental("q1")
	r.Status = status
	return entities.Quotation{Rental: r}
}

func orderWith(status entities.Status) entities.Order {
	r := pendingRental("64f1a2b3c4d5e6f7a8b9c0d1")
	r.Status = status
	return entities.Order{Rental: r}
}

func scenarioAInput() RentalInput {
	return RentalInput{
		ClientID:   "c1",
		Lines:      []LineSelection{{ProductID: "p1", Quantity: 2}},
		Params:     entities.PricingParameters{GST: 18, Discount: 10, TransportCharges: 200},
		RentalType: entities.RentalMonthly,
		StartDate:  rentalStart,
		EndDate:    rentalEnd,
	}
}

func intPtr(v int) *int { return &v }
