package services

import (
	"strings"

	"busbooking/internal/domain"
	"busbooking/internal/domain/models"
)

// MinPhoneDigits is the shortest phone accepted at submit.
const MinPhoneDigits = 9

// ValidateRequired checks the fields the booking page marks as required.
func ValidateRequired(d models.BookingDraft) error {
	required := []struct {
		field string
		value string
	}{
		{"name", d.Name},
		{"from", d.From},
		{"to", d.To},
		{"date", d.Date},
		{"bus", d.Bus},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return domain.ValidationError{Field: r.field, Msg: "required"}
		}
	}
	return nil
}

// Validate is the submission gate. Checks run in order and the first
// failure wins; the draft is never modified.
func Validate(d models.BookingDraft) error {
	if err := ValidateRequired(d); err != nil {
		return err
	}
	if d.MaleSeats == 0 && d.FemaleSeats == 0 {
		return domain.Reject("seats", domain.NoticeSeatsRequired)
	}
	if len(d.Phone) < MinPhoneDigits {
		return domain.Reject("phone", domain.NoticeInvalidPhone)
	}
	return nil
}
