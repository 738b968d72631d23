package banksim

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"
)

// Statement renders a PDF statement for the account: holder details followed
// by one row per transaction in insertion order.
func Statement(w io.Writer, acct Account) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Account Statement #%d", acct.Number()))
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Holder: %s", acct.Holder()))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Account Type: %s", acct.Type()))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Balance: $%s", acct.Balance()))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(60, 8, "Date", "1", 0, "", false, 0, "")
	pdf.CellFormat(45, 8, "Type", "1", 0, "", false, 0, "")
	pdf.CellFormat(45, 8, "Amount", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	for _, t := range acct.Transactions() {
		pdf.CellFormat(60, 8, t.Timestamp.Format(time.DateTime), "1", 0, "", false, 0, "")
		pdf.CellFormat(45, 8, string(t.Kind), "1", 0, "", false, 0, "")
		pdf.CellFormat(45, 8, "$"+t.Amount.String(), "1", 1, "R", false, 0, "")
	}

	return pdf.Output(w)
}
