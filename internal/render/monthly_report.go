// Package render lays out the monthly transaction report PDF with direct
// drawing primitives: absolute-positioned text, rules and manual page breaks.
package render

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/safa-edu/branch_transfer_app/internal/core/domain"
	"github.com/safa-edu/branch_transfer_app/internal/utils"
	"github.com/shopspring/decimal"
)

// Page geometry in points. A4 at 72 dpi with a uniform margin.
const (
	pageWidth  = 595.0
	pageHeight = 842.0
	margin     = 50.0

	rowPitch = 15.0
	// A row is not started once the cursor passes this line; the remainder of
	// the page is reserved for whatever follows the table.
	rowLimit = pageHeight - margin - 50.0
)

var (
	columnHeaders = [6]string{"Date", "TX #", "From - To", "Amount", "Method", "Status"}
	columnWidths  = [6]float64{60, 65, 140, 80, 80, 70}
)

// Renderer builds monthly report PDFs. It holds no state between calls other
// than the clock, which tests override to pin the footer.
type Renderer struct {
	now func() time.Time
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithClock overrides the wall clock used for the generation footer.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) {
		r.now = now
	}
}

// NewRenderer creates a Renderer.
func NewRenderer(options ...Option) *Renderer {
	r := &Renderer{now: time.Now}
	for _, option := range options {
		option(r)
	}
	return r
}

// Render produces the self-contained PDF for one period. It is a pure
// function of its inputs (plus the clock): no I/O, no retained state.
// Malformed fields degrade to placeholders rather than aborting.
func (r *Renderer) Render(txns []domain.Transaction, branchName, period string) ([]byte, error) {
	pdf := r.build(txns, branchName, period)
	if pdf.Err() {
		return nil, fmt.Errorf("rendering monthly report: %w", pdf.Error())
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("serializing monthly report: %w", err)
	}
	return buf.Bytes(), nil
}

// build assembles the document. Split from Render so tests can inspect page
// counts before serialization.
func (r *Renderer) build(txns []domain.Transaction, branchName, period string) *gofpdf.Fpdf {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: pageWidth, Ht: pageHeight},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	y := margin

	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(26, 26, 26)
	pdf.Text(margin, y, "Monthly Transaction Report")
	y += 30

	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(77, 77, 77)
	pdf.Text(margin, y, "Branch: "+branchName)
	y += 20
	pdf.Text(margin, y, "Period: "+period)
	y += 30

	totalAmount := SumAmounts(txns)
	currency := BatchCurrency(txns)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetTextColor(0, 0, 0)
	pdf.Text(margin, y, fmt.Sprintf("Total Transactions: %d", len(txns)))
	y += 18
	pdf.Text(margin, y, "Total Amount: "+utils.FormatAmountWithCurrency(totalAmount, currency))
	y += 35

	pdf.SetDrawColor(204, 204, 204)
	pdf.SetLineWidth(1)
	pdf.Line(margin, y, pageWidth-margin, y)
	y += 20

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(51, 51, 51)
	x := margin
	for i, header := range columnHeaders {
		pdf.Text(x, y, header)
		x += columnWidths[i]
	}
	y += 18

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(77, 77, 77)
	for _, txn := range txns {
		if y > rowLimit {
			pdf.AddPage()
			y = margin
		}

		x = margin
		for i, cell := range rowValues(txn) {
			pdf.Text(x, y, cell)
			x += columnWidths[i]
		}
		y += rowPitch
	}

	y += 10
	pdf.Line(margin, y, pageWidth-margin, y)
	y += 20

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(128, 128, 128)
	pdf.Text(margin, y, "Generated on: "+r.now().Format("02/01/2006, 15:04:05"))

	return pdf
}

// rowValues formats one table row. Truncation is by character count, not
// rendered width; the fixed column grid absorbs the slack.
func rowValues(t domain.Transaction) [6]string {
	fromTo := truncate(orNA(t.FromBranchName), 10) + " - " + truncate(orNA(t.ToBranchName), 10)
	if len([]rune(fromTo)) > 20 {
		fromTo = truncate(fromTo, 18) + "..."
	}

	return [6]string{
		t.TransactionDate.Format("02/01/2006"),
		truncate(t.TransactionNumber, 10),
		fromTo,
		utils.FormatAmountWithCurrency(t.Amount, t.Currency),
		truncate(string(t.TransferMethod), 12),
		strings.ToUpper(string(t.Status)),
	}
}

// SumAmounts totals the amounts of a transaction batch. The ledger records
// this exact figure; it is never re-derived from the database.
func SumAmounts(txns []domain.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txns {
		total = total.Add(t.Amount)
	}
	return total
}

// BatchCurrency returns the currency of the first transaction, the currency
// the whole report is labelled with. Defaults to AFN for an empty batch.
func BatchCurrency(txns []domain.Transaction) string {
	if len(txns) > 0 && txns[0].Currency != "" {
		return txns[0].Currency
	}
	return "AFN"
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
