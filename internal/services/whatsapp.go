package services

import (
	"fmt"
	"net/url"
	"strings"

	"busbooking/internal/domain"
	"busbooking/internal/domain/models"
	"busbooking/internal/utils"
)

// WhatsAppComposer formats a submitted draft as a chat message for the operator.
type WhatsAppComposer struct {
	Number  string
	Catalog domain.Catalog
}

func (w WhatsAppComposer) Message(d models.BookingDraft, total int64) string {
	bank := w.Catalog.Bank()
	slip := "Not attached"
	if d.PaymentSlip != "" {
		slip = "Attached"
	}

	var b strings.Builder
	b.WriteString("*New Bus Booking*\n\n")
	fmt.Fprintf(&b, "Name: %s\n", utils.TrimOrEmpty(d.Name))
	fmt.Fprintf(&b, "Phone: %s\n", d.Phone)
	fmt.Fprintf(&b, "Route: %s -> %s\n", d.From, d.To)
	fmt.Fprintf(&b, "Date: %s\n", d.Date)
	fmt.Fprintf(&b, "Bus: %s (%s)\n", d.Bus, d.Time)
	fmt.Fprintf(&b, "Seats: %d male, %d female\n", d.MaleSeats, d.FemaleSeats)
	fmt.Fprintf(&b, "Total: %s\n", utils.FormatRupees(total))
	fmt.Fprintf(&b, "Payment slip: %s\n\n", slip)
	fmt.Fprintf(&b, "Pay to: %s, %s\nAccount: %s (%s branch)", bank.BankName, bank.AccountName, bank.AccountNumber, bank.Branch)
	return b.String()
}

// Link returns the wa.me click-to-chat URL carrying message.
func (w WhatsAppComposer) Link(message string) string {
	return "https://wa.me/" + utils.DigitsOnly(w.Number) + "?text=" + url.QueryEscape(message)
}
