package infra

// PDF rendering of the monthly drink report using go-pdf/fpdf.
// One A4 page per report: title, record count, then item rows grouped
// under bold category headers. The output file is saved to
// storagePath/report_{year}_{month}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/verumrexo/tip-harmony/internal/dto"

	"github.com/go-pdf/fpdf"
)

// GenerateReportPDF renders the monthly report and returns the path to the
// generated file. storagePath is created if needed.
func GenerateReportPDF(rep *dto.DrinkReportResponse, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("report_%d_%02d.pdf", rep.Year, rep.Month)
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	// Latvian item names need the Baltic code page; core fonts are cp1252.
	tr := pdf.UnicodeTranslatorFromDescriptor("cp1257")

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, tr(fmt.Sprintf("Dzērienu atskaite — %d/%d", rep.Month, rep.Year)), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, tr(fmt.Sprintf("Kopā ieraksti: %d", rep.TotalOrders)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	nameW := contentW * 0.7
	qtyW := contentW * 0.3

	currentCat := ""
	for _, item := range rep.Items {
		if item.Category != currentCat {
			currentCat = item.Category
			pdf.Ln(2)
			pdf.SetFont("Helvetica", "B", 10)
			pdf.CellFormat(contentW, 6, tr(currentCat), "B", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 9)
		}
		pdf.CellFormat(nameW, 5, tr(item.Name), "", 0, "L", false, 0, "")
		pdf.CellFormat(qtyW, 5, item.Display, "", 1, "R", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write %s: %w", filePath, err)
	}
	return filePath, nil
}
