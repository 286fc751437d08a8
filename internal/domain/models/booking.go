package models

import "time"

// DateLayout is the wire format of BookingDraft.Date.
const DateLayout = "2006-01-02"

// BookingDraft is the in-progress booking held for one form session.
type BookingDraft struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	From        string `json:"from"`
	To          string `json:"to"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Bus         string `json:"bus"`
	MaleSeats   int    `json:"maleSeats"`
	FemaleSeats int    `json:"femaleSeats"`
	PaymentSlip string `json:"paymentSlip"`

	// SlipGeneration increases on every slip selection or removal; a decode
	// result is only written when it still carries the newest generation.
	SlipGeneration uint64    `json:"-"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Seats returns the total number of seats requested.
func (d BookingDraft) Seats() int {
	return d.MaleSeats + d.FemaleSeats
}

// DraftUpdate supports PATCH-style updates via key presence.
type DraftUpdate struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
	From  *string `json:"from"`
	To    *string `json:"to"`
	Date  *string `json:"date"`
	Bus   *string `json:"bus"`
}

// DraftView is a draft plus its derived total.
type DraftView struct {
	BookingDraft
	Total int64 `json:"total"`
}

// Submission is the record kept once a draft passed validation and was handed off.
type Submission struct {
	ID          int64     `json:"id"`
	DraftID     string    `json:"draftId"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	From        string    `json:"from"`
	To          string    `json:"to"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Bus         string    `json:"bus"`
	MaleSeats   int       `json:"maleSeats"`
	FemaleSeats int       `json:"femaleSeats"`
	Total       int64     `json:"total"`
	HasSlip     bool      `json:"hasSlip"`
	SlipDigest  string    `json:"slipDigest,omitempty"`
	Message     string    `json:"message"`
	WhatsAppURL string    `json:"whatsappUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}
