package interfaces

import (
	"context"
	"rental_console/internal/domain/entities"
)

// The rental API owns every record the console shows. Each interface below is
// one resource group of that API; implementations return *errs.RemoteError on
// any non-success response.

type ITeamMemberAPI interface {
	Login(ctx context.Context, email, password string) (entities.TeamMember, error)
	List(ctx context.Context) ([]entities.TeamMember, error)
	Create(ctx context.Context, member entities.TeamMember) (entities.TeamMember, error)
	Update(ctx context.Context, id string, member entities.TeamMember) (entities.TeamMember, error)
	Delete(ctx context.Context, id string) error
}

type IClientAPI interface {
	List(ctx context.Context) ([]entities.Client, error)
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	Update(ctx context.Context, id string, c entities.Client) (entities.Client, error)
	Delete(ctx context.Context, id string) error
	ToggleActive(ctx context.Context, id string) (entities.Client, error)
}

type IProductAPI interface {
	List(ctx context.Context) ([]entities.Product, error)
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	Update(ctx context.Context, id string, p entities.Product) (entities.Product, error)
	Delete(ctx context.Context, id string) error
}

// IQuotationAPI has no per-line update endpoint; line edits go through a
// full Update.
type IQuotationAPI interface {
	List(ctx context.Context) ([]entities.Quotation, error)
	Get(ctx context.Context, id string) (entities.Quotation, error)
	Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error)
	Update(ctx context.Context, id string, q entities.Quotation) (entities.Quotation, error)
	DeleteProduct(ctx context.Context, id, lineKey string) error
	Cancel(ctx context.Context, id string) error
	GenerateOrder(ctx context.Context, id string) (entities.Order, error)
}

type IOrderAPI interface {
	List(ctx context.Context) ([]entities.Order, error)
	Get(ctx context.Context, id string) (entities.Order, error)
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	Update(ctx context.Context, id string, o entities.Order) (entities.Order, error)
	UpdateProduct(ctx context.Context, id, lineKey string, li entities.LineItem) error
	DeleteProduct(ctx context.Context, id, lineKey string) error
	Cancel(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	UpdateInvoiceNo(ctx context.Context, id, invoiceNo string) error
	UpdateChallanNo(ctx context.Context, id, challanNo string) error
}

type IPaymentAPI interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	Update(ctx context.Context, id string, p entities.Payment) (entities.Payment, error)
	List(ctx context.Context) ([]entities.Payment, error)
	// ListUpcoming returns the payments that carry a next payment date.
	ListUpcoming(ctx context.Context) ([]entities.Payment, error)
}

type ITermsAPI interface {
	List(ctx context.Context) ([]entities.Terms, error)
	GetByClient(ctx context.Context, clientID string) ([]entities.Terms, error)
	Create(ctx context.Context, t entities.Terms) (entities.Terms, error)
	Update(ctx context.Context, id string, t entities.Terms) (entities.Terms, error)
	Delete(ctx context.Context, id string) error
}

type IInvoiceNameAPI interface {
	List(ctx context.Context) ([]entities.InvoiceName, error)
	Update(ctx context.Context, id, name string) (entities.InvoiceName, error)
}
