package interfaces

import (
	"context"
	"rental_console/internal/domain/entities"
)

// IDocumentRenderer turns invoice and challan data into PDF bytes.
type IDocumentRenderer interface {
	RenderInvoice(doc entities.InvoiceDocument) ([]byte, error)
	RenderChallan(doc entities.ChallanDocument) ([]byte, error)
}

// IDocumentArchive keeps a copy of rendered documents. Put returns the
// object location.
type IDocumentArchive interface {
	Put(ctx context.Context, name, contentType string, data []byte) (string, error)
}

// IReportExporter writes payment rows as a spreadsheet.
type IReportExporter interface {
	PaymentReport(title string, rows []entities.Payment) ([]byte, error)
}
