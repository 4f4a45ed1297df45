package usecase

import (
	"context"
	"errors"
	"fmt"
	"rental_console/internal/domain/entities"
	"rental_console/internal/domain/lifecycle"
	"rental_console/internal/domain/pricing"
	"rental_console/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

var ErrDocumentRendererNotConfigured = errors.New("document renderer not configured")

const contentTypePDF = "application/pdf"

// Document is a rendered file. ArchiveURL is set when a copy was archived.
type Document struct {
	Name        string
	ContentType string
	Data        []byte
	ArchiveURL  string
}

// IDocumentUseCase renders invoices and delivery challans for orders.
type IDocumentUseCase interface {
	Invoice(ctx context.Context, orderID string) (Document, error)
	Challan(ctx context.Context, orderID string) (Document, error)
}

type DocumentUseCase struct {
	orders   interfaces.IOrderAPI
	clients  interfaces.IClientAPI
	terms    interfaces.ITermsAPI
	names    interfaces.IInvoiceNameAPI
	renderer interfaces.IDocumentRenderer
	archive  interfaces.IDocumentArchive
	engine   *pricing.Engine
	deposit  pricing.DepositSource
	now      func() time.Time
	log      logrus.FieldLogger
}

var _ IDocumentUseCase = (*DocumentUseCase)(nil)

// NewDocumentUseCase builds the document usecase; archive may be nil.
// deposit is the same order context deposit term the order detail uses; an
// empty value means line item deposits.
func NewDocumentUseCase(orders interfaces.IOrderAPI, clients interfaces.IClientAPI, terms interfaces.ITermsAPI, names interfaces.IInvoiceNameAPI, renderer interfaces.IDocumentRenderer, archive interfaces.IDocumentArchive, engine *pricing.Engine, deposit pricing.DepositSource, logger logrus.FieldLogger) *DocumentUseCase {
	if engine == nil {
		engine = pricing.NewEngine(nil)
	}
	if deposit == "" {
		deposit = pricing.DepositLineItems
	}
	return &DocumentUseCase{
		orders:   orders,
		clients:  clients,
		terms:    terms,
		names:    names,
		renderer: renderer,
		archive:  archive,
		engine:   engine,
		deposit:  deposit,
		now:      time.Now,
		log:      loggerOrDiscard(logger),
	}
}

// Invoice renders the order's invoice. Its totals match the order detail.
func (u *DocumentUseCase) Invoice(ctx context.Context, orderID string) (Document, error) {
	order, client, err := u.prepare(ctx, orderID, lifecycle.ActionGenerateInvoice)
	if err != nil {
		return Document{}, err
	}

	totals, err := u.engine.Compute(pricing.Input{
		Lines:         order.Products,
		Params:        order.PricingParameters,
		Deposit:       u.deposit,
		ClientDeposit: client.Amount,
	})
	if err != nil {
		return Document{}, err
	}

	doc := entities.InvoiceDocument{
		BusinessName: u.businessName(ctx),
		InvoiceNo:    effectiveInvoiceNo(order),
		IssuedAt:     u.now(),
		Order:        order,
		Client:       client,
		Totals:       totals.Summary(),
		Terms:        u.termsFor(ctx, client.ID),
	}
	data, err := u.renderer.RenderInvoice(doc)
	if err != nil {
		u.log.WithFields(logrus.Fields{"order_id": order.ID, "err": err}).Error("[document][usecase] invoice render failed")
		return Document{}, err
	}
	out := Document{Name: fileName("invoice", doc.InvoiceNo), ContentType: contentTypePDF, Data: data}
	out.ArchiveURL = u.store(ctx, "invoices/"+out.Name, data)
	u.log.WithFields(logrus.Fields{"order_id": order.ID, "invoice_no": doc.InvoiceNo, "bytes": len(data)}).Info("[document][usecase] invoice rendered")
	return fresh(ctx, out, nil)
}

// Challan renders the order's delivery challan.
func (u *DocumentUseCase) Challan(ctx context.Context, orderID string) (Document, error) {
	order, client, err := u.prepare(ctx, orderID, lifecycle.ActionGenerateChallan)
	if err != nil {
		return Document{}, err
	}
	doc := entities.ChallanDocument{
		BusinessName: u.businessName(ctx),
		ChallanNo:    effectiveChallanNo(order),
		IssuedAt:     u.now(),
		Order:        order,
		Client:       client,
	}
	data, err := u.renderer.RenderChallan(doc)
	if err != nil {
		u.log.WithFields(logrus.Fields{"order_id": order.ID, "err": err}).Error("[document][usecase] challan render failed")
		return Document{}, err
	}
	out := Document{Name: fileName("challan", doc.ChallanNo), ContentType: contentTypePDF, Data: data}
	out.ArchiveURL = u.store(ctx, "challans/"+out.Name, data)
	u.log.WithFields(logrus.Fields{"order_id": order.ID, "challan_no": doc.ChallanNo, "bytes": len(data)}).Info("[document][usecase] challan rendered")
	return fresh(ctx, out, nil)
}

func (u *DocumentUseCase) prepare(ctx context.Context, orderID string, action lifecycle.Action) (entities.Order, entities.Client, error) {
	if u.renderer == nil {
		return entities.Order{}, entities.Client{}, ErrDocumentRendererNotConfigured
	}
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, entities.Client{}, ErrInvalidOrderID
	}
	order, err := u.orders.Get(ctx, orderID)
	if err != nil {
		return entities.Order{}, entities.Client{}, err
	}
	if order.ID == "" {
		return entities.Order{}, entities.Client{}, ErrOrderNotFound
	}
	if err := lifecycle.Guard(order.Status, action); err != nil {
		return entities.Order{}, entities.Client{}, err
	}

	if order.Client != nil {
		return order, *order.Client, nil
	}
	client := entities.Client{ID: order.ClientID, ClientName: order.ClientName}
	all, err := u.clients.List(ctx)
	if err != nil {
		u.log.WithFields(logrus.Fields{"order_id": orderID, "err": err}).Warn("[document][usecase] client lookup failed")
		return order, client, nil
	}
	for _, c := range all {
		if c.ID == order.ClientID {
			return order, c, nil
		}
	}
	return order, client, nil
}

func (u *DocumentUseCase) businessName(ctx context.Context) string {
	if u.names == nil {
		return ""
	}
	name, err := businessName(ctx, u.names)
	if err != nil {
		u.log.WithError(err).Warn("[document][usecase] invoice name lookup failed")
	}
	return name
}

// termsFor returns the points of the client's first terms sheet.
func (u *DocumentUseCase) termsFor(ctx context.Context, clientID string) []entities.TermsPoint {
	if u.terms == nil || clientID == "" {
		return nil
	}
	terms, err := clientTerms(ctx, u.terms, clientID)
	if err != nil {
		u.log.WithFields(logrus.Fields{"client_id": clientID, "err": err}).Warn("[document][usecase] terms lookup failed")
		return nil
	}
	for _, t := range terms {
		if len(t.Points) > 0 {
			return t.Points
		}
	}
	return nil
}

func (u *DocumentUseCase) store(ctx context.Context, name string, data []byte) string {
	if u.archive == nil {
		return ""
	}
	url, err := u.archive.Put(ctx, name, contentTypePDF, data)
	if err != nil {
		u.log.WithFields(logrus.Fields{"object": name, "err": err}).Warn("[document][usecase] archive failed")
		return ""
	}
	return url
}

func fileName(kind, number string) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, number)
	return fmt.Sprintf("%s-%s.pdf", kind, safe)
}
