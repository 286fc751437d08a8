package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"busbooking/internal/domain"
	"busbooking/internal/domain/models"
	"busbooking/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// ReceiptService renders a PDF receipt for a stored submission.
type ReceiptService struct {
	Loader    func(ctx context.Context, id int64) (models.Submission, error)
	Catalog   domain.Catalog
	RequestID string
}

func (s ReceiptService) Generate(ctx context.Context, submissionID int64) ([]byte, string, error) {
	sub, err := s.Loader(ctx, submissionID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "receipt", "generate", fmt.Sprintf("submission_id=%d", submissionID))
	return buildReceiptPDF(sub, s.Catalog)
}

func buildReceiptPDF(sub models.Submission, cat domain.Catalog) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Receipt", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING RECEIPT")
	pdf.Ln(12)

	price := int64(0)
	if svc, ok := cat.Service(sub.Bus); ok {
		price = svc.Price
	}

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking No : BK-%06d", sub.ID),
		fmt.Sprintf("Issued     : %s", utils.FormatDateTime(sub.CreatedAt)),
		fmt.Sprintf("Name       : %s", safe(sub.Name, "-")),
		fmt.Sprintf("Phone      : %s", safe(sub.Phone, "-")),
		fmt.Sprintf("Route      : %s -> %s", safe(sub.From, "-"), safe(sub.To, "-")),
		fmt.Sprintf("Date/Time  : %s %s", safe(sub.Date, "-"), safe(sub.Time, "-")),
		fmt.Sprintf("Bus        : %s", safe(sub.Bus, "-")),
		fmt.Sprintf("Seats      : %d male, %d female", sub.MaleSeats, sub.FemaleSeats),
		fmt.Sprintf("Fare/seat  : %s", utils.FormatRupees(price)),
	}
	for _, l := range lines {
		pdf.Cell(0, 7, l)
		pdf.Ln(7)
	}

	pdf.Ln(3)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Total: "+utils.FormatRupees(sub.Total))
	pdf.Ln(12)

	bank := cat.Bank()
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, fmt.Sprintf("Transfer to %s, %s branch. Account %s (%s).",
		bank.BankName, bank.Branch, bank.AccountNumber, bank.AccountName), "", "", false)
	pdf.Ln(2)

	status := "Payment slip not attached. Please send it on WhatsApp."
	if sub.HasSlip {
		status = "Payment slip received. Awaiting confirmation."
	}
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, status, "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("RECEIPT_%d_%s.pdf", sub.ID, utils.SafeFilenamePart(sub.Name))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}
