package rentalapi

import (
	"encoding/json"
	"rental_console/internal/domain/entities"
)

type clientWire struct {
	ID          string    `json:"_id,omitempty"`
	ClientName  string    `json:"clientName"`
	PhoneNumber string    `json:"clientphoneNumber"`
	Email       string    `json:"email"`
	GSTNo       string    `json:"gstNo"`
	JoiningDate *apiTime  `json:"joiningdate,omitempty"`
	Address     string    `json:"address"`
	Amount      flexFloat `json:"amount"`
	IsActive    *bool     `json:"isActive,omitempty"`
}

func (w clientWire) toEntity() entities.Client {
	c := entities.Client{
		ID:          w.ID,
		ClientName:  w.ClientName,
		PhoneNumber: w.PhoneNumber,
		Email:       w.Email,
		GSTNo:       w.GSTNo,
		JoiningDate: w.JoiningDate.ptr(),
		Address:     w.Address,
		Amount:      float64(w.Amount),
		IsActive:    true,
	}
	if w.IsActive != nil {
		c.IsActive = *w.IsActive
	}
	return c
}

// fromClient leaves isActive out; only toggleactive changes it.
func fromClient(c entities.Client) clientWire {
	return clientWire{
		ClientName:  c.ClientName,
		PhoneNumber: c.PhoneNumber,
		Email:       c.Email,
		GSTNo:       c.GSTNo,
		JoiningDate: newAPITimePtr(c.JoiningDate),
		Address:     c.Address,
		Amount:      flexFloat(c.Amount),
	}
}

type productWire struct {
	ID            string    `json:"_id,omitempty"`
	ProductName   string    `json:"productName"`
	ProductType   string    `json:"productType"`
	BrandName     string    `json:"brandName"`
	Price         flexFloat `json:"price"`
	DepositAmount flexFloat `json:"depositAmount"`
	Quantity      flexInt   `json:"quantity"`
	AvailableQty  flexInt   `json:"availableQty"`
	SystemNumber  string    `json:"systemNumber,omitempty"`
	SerialNumber  string    `json:"serialNumber,omitempty"`
	Description   string    `json:"description,omitempty"`
}

func (w productWire) toEntity() entities.Product {
	return entities.Product{
		ID:            w.ID,
		ProductName:   w.ProductName,
		ProductType:   w.ProductType,
		BrandName:     w.BrandName,
		Price:         float64(w.Price),
		DepositAmount: float64(w.DepositAmount),
		Quantity:      int(w.Quantity),
		AvailableQty:  int(w.AvailableQty),
		SystemNumber:  w.SystemNumber,
		SerialNumber:  w.SerialNumber,
		Description:   w.Description,
	}
}

func fromProduct(p entities.Product) productWire {
	return productWire{
		ProductName:   p.ProductName,
		ProductType:   p.ProductType,
		BrandName:     p.BrandName,
		Price:         flexFloat(p.Price),
		DepositAmount: flexFloat(p.DepositAmount),
		Quantity:      flexInt(p.Quantity),
		AvailableQty:  flexInt(p.AvailableQty),
		SystemNumber:  p.SystemNumber,
		SerialNumber:  p.SerialNumber,
		Description:   p.Description,
	}
}

type lineItemWire struct {
	ID            string           `json:"_id,omitempty"`
	ProductID     ref[productWire] `json:"productId"`
	ProductName   string           `json:"productName"`
	ProductType   string           `json:"productType,omitempty"`
	UnitPrice     flexFloat        `json:"unitPrice"`
	Quantity      flexInt          `json:"quantity"`
	AvailableQty  flexInt          `json:"availableQty,omitempty"`
	DepositAmount flexFloat        `json:"depositAmount,omitempty"`
	TotalPrice    flexFloat        `json:"totalPrice"`
	StartDate     *apiTime         `json:"startDate,omitempty"`
	EndDate       *apiTime         `json:"endDate,omitempty"`
}

func (w lineItemWire) toEntity() entities.LineItem {
	return entities.LineItem{
		ID:            w.ID,
		ProductID:     w.ProductID.ID,
		ProductName:   w.ProductName,
		ProductType:   w.ProductType,
		UnitPrice:     float64(w.UnitPrice),
		Quantity:      int(w.Quantity),
		AvailableQty:  int(w.AvailableQty),
		DepositAmount: float64(w.DepositAmount),
		TotalPrice:    float64(w.TotalPrice),
		StartDate:     w.StartDate.ptr(),
		EndDate:       w.EndDate.ptr(),
	}
}

func fromLineItem(li entities.LineItem) lineItemWire {
	return lineItemWire{
		ID:            li.ID,
		ProductID:     idRef[productWire](li.ProductID),
		ProductName:   li.ProductName,
		ProductType:   li.ProductType,
		UnitPrice:     flexFloat(li.UnitPrice),
		Quantity:      flexInt(li.Quantity),
		AvailableQty:  flexInt(li.AvailableQty),
		DepositAmount: flexFloat(li.DepositAmount),
		TotalPrice:    flexFloat(li.TotalPrice),
		StartDate:     newAPITimePtr(li.StartDate),
		EndDate:       newAPITimePtr(li.EndDate),
	}
}

// lineUpdateWire is the body of the per-line order update endpoint.
type lineUpdateWire struct {
	ProductName string   `json:"productName"`
	Quantity    int      `json:"quantity"`
	StartDate   *apiTime `json:"startDate,omitempty"`
	EndDate     *apiTime `json:"endDate,omitempty"`
}

type rentalWire struct {
	ID               string          `json:"_id,omitempty"`
	ClientID         ref[clientWire] `json:"clientId"`
	ClientName       string          `json:"clientName"`
	Products         []lineItemWire  `json:"products"`
	GST              flexFloat       `json:"gst"`
	Discount         flexFloat       `json:"discount"`
	TransportCharges flexFloat       `json:"transportCharges"`
	RentalType       string          `json:"rentalType"`
	StartDate        *apiTime        `json:"startDate,omitempty"`
	EndDate          *apiTime        `json:"endDate,omitempty"`
	Status           string          `json:"status,omitempty"`
	GrandTotal       flexFloat       `json:"grandTotal"`
	CreatedAt        *apiTime        `json:"createdAt,omitempty"`
	UpdatedAt        *apiTime        `json:"updatedAt,omitempty"`
}

func (w rentalWire) toEntity() entities.Rental {
	r := entities.Rental{
		ID:         w.ID,
		ClientID:   w.ClientID.ID,
		ClientName: w.ClientName,
		Products:   make([]entities.LineItem, 0, len(w.Products)),
		PricingParameters: entities.PricingParameters{
			GST:              float64(w.GST),
			Discount:         float64(w.Discount),
			TransportCharges: float64(w.TransportCharges),
		},
		RentalType: entities.RentalType(w.RentalType),
		StartDate:  w.StartDate.value(),
		EndDate:    w.EndDate.value(),
		Status:     entities.Status(w.Status),
		GrandTotal: float64(w.GrandTotal),
		CreatedAt:  w.CreatedAt.value(),
		UpdatedAt:  w.UpdatedAt.value(),
	}
	if w.ClientID.Doc != nil {
		c := w.ClientID.Doc.toEntity()
		r.Client = &c
		if r.ClientName == "" {
			r.ClientName = c.ClientName
		}
	}
	for _, li := range w.Products {
		r.Products = append(r.Products, li.toEntity())
	}
	return r
}

func fromRental(r entities.Rental) rentalWire {
	w := rentalWire{
		ClientID:         idRef[clientWire](r.ClientID),
		ClientName:       r.ClientName,
		Products:         make([]lineItemWire, 0, len(r.Products)),
		GST:              flexFloat(r.GST),
		Discount:         flexFloat(r.Discount),
		TransportCharges: flexFloat(r.TransportCharges),
		RentalType:       string(r.RentalType),
		StartDate:        newAPITime(r.StartDate),
		EndDate:          newAPITime(r.EndDate),
		Status:           string(r.Status),
		GrandTotal:       flexFloat(r.GrandTotal),
	}
	for _, li := range r.Products {
		w.Products = append(w.Products, fromLineItem(li))
	}
	return w
}

type quotationWire struct {
	rentalWire
}

type orderWire struct {
	rentalWire
	QuotationID       *ref[rentalWire] `json:"quotationId,omitempty"`
	InvoiceNo         string           `json:"invoiceNo,omitempty"`
	DeliveryChallanNo string           `json:"deliveryChallanNo,omitempty"`
}

func (w orderWire) toEntity() entities.Order {
	o := entities.Order{
		Rental:            w.rentalWire.toEntity(),
		InvoiceNo:         w.InvoiceNo,
		DeliveryChallanNo: w.DeliveryChallanNo,
	}
	if w.QuotationID != nil {
		o.QuotationID = w.QuotationID.ID
	}
	return o
}

func fromOrder(o entities.Order) orderWire {
	w := orderWire{
		rentalWire:        fromRental(o.Rental),
		InvoiceNo:         o.InvoiceNo,
		DeliveryChallanNo: o.DeliveryChallanNo,
	}
	if o.QuotationID != "" {
		q := idRef[rentalWire](o.QuotationID)
		w.QuotationID = &q
	}
	return w
}

type paymentWire struct {
	ID                string          `json:"_id,omitempty"`
	OrderID           ref[orderWire]  `json:"orderId"`
	ClientID          ref[clientWire] `json:"clientId"`
	PaymentMethod     string          `json:"paymentMethod"`
	PaymentType       string          `json:"paymentType"`
	Amount            flexFloat       `json:"amount"`
	PaymentDate       *apiTime        `json:"paymentDate,omitempty"`
	NextPaymentDate   *apiTime        `json:"nextPaymentDate,omitempty"`
	PaymentStatus     string          `json:"paymentStatus"`
	ClientName        string          `json:"clientName,omitempty"`
	ClientPhone       string          `json:"clientphoneNumber,omitempty"`
	ProviderPaymentID string          `json:"providerPaymentId,omitempty"`
	ProviderStatus    string          `json:"providerStatus,omitempty"`
	ProviderPayload   json.RawMessage `json:"providerPayload,omitempty"`
	CreatedAt         *apiTime        `json:"createdAt,omitempty"`
}

func (w paymentWire) toEntity() entities.Payment {
	p := entities.Payment{
		ID:                w.ID,
		OrderID:           w.OrderID.ID,
		ClientID:          w.ClientID.ID,
		PaymentMethod:     entities.PaymentMethod(w.PaymentMethod),
		PaymentType:       entities.PaymentType(w.PaymentType),
		Amount:            float64(w.Amount),
		PaymentDate:       w.PaymentDate.value(),
		NextPaymentDate:   w.NextPaymentDate.ptr(),
		PaymentStatus:     entities.PaymentStatus(w.PaymentStatus),
		CreatedAt:         w.CreatedAt.value(),
		ProviderPaymentID: w.ProviderPaymentID,
		ProviderStatus:    w.ProviderStatus,
		ProviderPayload:   w.ProviderPayload,
		ClientName:        w.ClientName,
		ClientPhone:       w.ClientPhone,
	}
	if p.PaymentDate.IsZero() {
		p.PaymentDate = p.CreatedAt
	}
	if c := w.ClientID.Doc; c != nil {
		p.ClientName = c.ClientName
		p.ClientPhone = c.PhoneNumber
		p.ClientDeposit = float64(c.Amount)
	}
	if o := w.OrderID.Doc; o != nil {
		p.OrderGrandTotal = float64(o.GrandTotal)
	}
	return p
}

func fromPayment(p entities.Payment) paymentWire {
	return paymentWire{
		OrderID:           idRef[orderWire](p.OrderID),
		ClientID:          idRef[clientWire](p.ClientID),
		PaymentMethod:     string(p.PaymentMethod),
		PaymentType:       string(p.PaymentType),
		Amount:            flexFloat(p.Amount),
		PaymentDate:       newAPITime(p.PaymentDate),
		NextPaymentDate:   newAPITimePtr(p.NextPaymentDate),
		PaymentStatus:     string(p.PaymentStatus),
		ProviderPaymentID: p.ProviderPaymentID,
		ProviderStatus:    p.ProviderStatus,
		ProviderPayload:   p.ProviderPayload,
	}
}

// paymentUpdateWire is the body of the payment update endpoint; it only
// carries the editable fields.
type paymentUpdateWire struct {
	PaymentMethod   string    `json:"paymentMethod"`
	PaymentType     string    `json:"paymentType"`
	Amount          flexFloat `json:"amount"`
	NextPaymentDate *apiTime  `json:"nextPaymentDate,omitempty"`
}

// teamMemberWire carries the permission flags as top-level booleans.
type teamMemberWire struct {
	ID                string `json:"_id,omitempty"`
	Name              string `json:"name"`
	Email             string `json:"email"`
	Password          string `json:"password,omitempty"`
	User              bool   `json:"user"`
	Clients           bool   `json:"clients"`
	Orders            bool   `json:"orders"`
	Quotation         bool   `json:"quotation"`
	PaymentReports    bool   `json:"paymentreports"`
	TermsAndCondition bool   `json:"termsandcondition"`
	Product           bool   `json:"product"`
}

func (w teamMemberWire) toEntity() entities.TeamMember {
	return entities.TeamMember{
		ID:    w.ID,
		Name:  w.Name,
		Email: w.Email,
		Permissions: entities.Permissions{
			entities.PermissionUsers:      w.User,
			entities.PermissionClients:    w.Clients,
			entities.PermissionOrders:     w.Orders,
			entities.PermissionQuotations: w.Quotation,
			entities.PermissionPayments:   w.PaymentReports,
			entities.PermissionTerms:      w.TermsAndCondition,
			entities.PermissionProducts:   w.Product,
		},
	}
}

func fromTeamMember(m entities.TeamMember) teamMemberWire {
	return teamMemberWire{
		Name:              m.Name,
		Email:             m.Email,
		Password:          m.Password,
		User:              m.Permissions.Has(entities.PermissionUsers),
		Clients:           m.Permissions.Has(entities.PermissionClients),
		Orders:            m.Permissions.Has(entities.PermissionOrders),
		Quotation:         m.Permissions.Has(entities.PermissionQuotations),
		PaymentReports:    m.Permissions.Has(entities.PermissionPayments),
		TermsAndCondition: m.Permissions.Has(entities.PermissionTerms),
		Product:           m.Permissions.Has(entities.PermissionProducts),
	}
}

type termsPointWire struct {
	PointNumber flexInt `json:"pointNumber"`
	Description string  `json:"description"`
}

type termsWire struct {
	ID         string           `json:"_id,omitempty"`
	ClientID   ref[clientWire]  `json:"clientId"`
	ClientName string           `json:"clientName"`
	Title      string           `json:"title"`
	Points     []termsPointWire `json:"points"`
}

func (w termsWire) toEntity() entities.Terms {
	t := entities.Terms{
		ID:         w.ID,
		ClientID:   w.ClientID.ID,
		ClientName: w.ClientName,
		Title:      w.Title,
		Points:     make([]entities.TermsPoint, 0, len(w.Points)),
	}
	if t.ClientName == "" && w.ClientID.Doc != nil {
		t.ClientName = w.ClientID.Doc.ClientName
	}
	for _, p := range w.Points {
		t.Points = append(t.Points, entities.TermsPoint{PointNumber: int(p.PointNumber), Description: p.Description})
	}
	return t
}

func fromTerms(t entities.Terms) termsWire {
	w := termsWire{
		ClientID:   idRef[clientWire](t.ClientID),
		ClientName: t.ClientName,
		Title:      t.Title,
		Points:     make([]termsPointWire, 0, len(t.Points)),
	}
	for _, p := range t.Points {
		w.Points = append(w.Points, termsPointWire{PointNumber: flexInt(p.PointNumber), Description: p.Description})
	}
	return w
}

type invoiceNameWire struct {
	ID          string `json:"_id,omitempty"`
	InvoiceName string `json:"invoiceName"`
}

func (w invoiceNameWire) toEntity() entities.InvoiceName {
	return entities.InvoiceName{ID: w.ID, InvoiceName: w.InvoiceName}
}
