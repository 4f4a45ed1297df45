// Package spreadsheet exports payment reports as xlsx workbooks.
package spreadsheet

import (
	"rental_console/internal/domain/entities"
	"rental_console/internal/usecase/interfaces"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	sheetName  = "Payments"
	headerRow  = 3
	dateLayout = "2006-01-02"
)

var headers = []string{"Payment date", "Order", "Client", "Method", "Type", "Amount", "Status", "Next payment", "Provider ref"}

// ExcelizeExporter writes one sheet per report: a title row, a header row,
// one row per payment and a total of the paid amounts.
type ExcelizeExporter struct {
	loc *time.Location
}

var _ interfaces.IReportExporter = (*ExcelizeExporter)(nil)

func NewExcelizeExporter(loc *time.Location) *ExcelizeExporter {
	if loc == nil {
		loc = time.UTC
	}
	return &ExcelizeExporter{loc: loc}
}

func (e *ExcelizeExporter) PaymentReport(title string, rows []entities.Payment) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)

	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return nil, err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D3D3D3"}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}

	if err := f.SetCellValue(sheetName, "A1", title); err != nil {
		return nil, err
	}
	_ = f.SetCellStyle(sheetName, "A1", "A1", titleStyle)

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, headerRow)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, err
		}
		_ = f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	paid := decimal.Zero
	for r, p := range rows {
		values := []any{
			e.day(&p.PaymentDate),
			p.OrderID,
			p.ClientID,
			string(p.PaymentMethod),
			string(p.PaymentType),
			p.Amount,
			string(p.PaymentStatus),
			e.day(p.NextPaymentDate),
			p.ProviderPaymentID,
		}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, headerRow+1+r)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, err
			}
		}
		if p.PaymentStatus == entities.PaymentStatusPaid {
			paid = paid.Add(decimal.NewFromFloat(p.Amount))
		}
	}

	totalRow := headerRow + len(rows) + 1
	labelCell, _ := excelize.CoordinatesToCellName(5, totalRow)
	amountCell, _ := excelize.CoordinatesToCellName(6, totalRow)
	_ = f.SetCellValue(sheetName, labelCell, "Total paid")
	_ = f.SetCellValue(sheetName, amountCell, paid.InexactFloat64())
	_ = f.SetCellStyle(sheetName, labelCell, amountCell, headerStyle)

	_ = f.SetColWidth(sheetName, "A", "I", 16)
	_ = f.DeleteSheet("Sheet1")

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *ExcelizeExporter) day(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	if t.Location() == time.UTC && t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
		return t.Format(dateLayout)
	}
	return t.In(e.loc).Format(dateLayout)
}
