package billing

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
	"github.com/legal-suite/backend/internal/models"
)

// RenderInvoicePDF writes an A4 invoice document to w.
func RenderInvoicePDF(w io.Writer, inv *models.Invoice) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	title := "INVOICE"
	if inv.DocType == models.DocTypeQuotation {
		title = "QUOTATION"
	}
	pdf.SetFont("Arial", "B", 20)
	pdf.Cell(0, 12, title)
	pdf.Ln(14)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 6, "Number: "+inv.InvoiceNumber)
	pdf.Ln(6)
	pdf.Cell(0, 6, "Date: "+inv.CreatedAt.Format("2006-01-02"))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Client: "+inv.ClientName)
	pdf.Ln(6)
	if inv.DueDate != nil {
		pdf.Cell(0, 6, "Due: "+inv.DueDate.Format("2006-01-02"))
		pdf.Ln(6)
	}
	pdf.Ln(6)

	// Line items table
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(90, 8, "Description", "1", 0, "L", false, 0, "")
	pdf.CellFormat(25, 8, "Qty", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, "Unit Price", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, "Amount", "1", 0, "R", false, 0, "")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 10)
	for _, item := range inv.Items {
		pdf.CellFormat(90, 8, item.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 8, fmt.Sprintf("%.2f", item.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, fmt.Sprintf("%.2f", item.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, fmt.Sprintf("%.2f", item.Amount), "1", 0, "R", false, 0, "")
		pdf.Ln(8)
	}
	pdf.Ln(4)

	// Totals block
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(150, 7, "Subtotal", "", 0, "R", false, 0, "")
	pdf.CellFormat(35, 7, fmt.Sprintf("%.2f", inv.Subtotal), "", 0, "R", false, 0, "")
	pdf.Ln(7)
	pdf.CellFormat(150, 7, fmt.Sprintf("VAT (%.0f%%)", inv.VATRate), "", 0, "R", false, 0, "")
	pdf.CellFormat(35, 7, fmt.Sprintf("%.2f", inv.VATAmount), "", 0, "R", false, 0, "")
	pdf.Ln(7)
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(150, 8, "Total", "", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, fmt.Sprintf("%.2f", inv.Total), "", 0, "R", false, 0, "")
	pdf.Ln(12)

	if inv.Notes != "" {
		pdf.SetFont("Arial", "I", 9)
		pdf.MultiCell(0, 5, "Notes: "+inv.Notes, "", "L", false)
	}

	return pdf.Output(w)
}
