package services

import (
	"testing"
	"time"

	"busbooking/internal/domain"
	"busbooking/internal/domain/models"
	"busbooking/internal/repositories"
	"busbooking/internal/utils"
)

var fixedNow = time.Date(2026, time.March, 10, 9, 0, 0, 0, time.Local)

func fixedClock() utils.Clock {
	return func() time.Time { return fixedNow }
}

func newDraftService(t *testing.T) (DraftService, models.BookingDraft) {
	t.Helper()
	svc := DraftService{
		Store:   repositories.NewDraftStore(),
		Catalog: domain.DefaultCatalog(),
		Clock:   fixedClock(),
	}
	d, err := svc.Create()
	if err != nil {
		t.Fatalf("create draft: %v", err)
	}
	return svc, d
}

// completeDraft fills every field the submission gate checks.
func completeDraft(t *testing.T, svc DraftService, id string) models.BookingDraft {
	t.Helper()
	name, phone, from, to, bus := "Nimal Perera", "0771234567", "Colombo", "Kandy", "Night Express"
	if _, err := svc.Apply(id, models.DraftUpdate{Name: &name, Phone: &phone, From: &from, To: &to, Bus: &bus}); err != nil {
		t.Fatalf("apply: %v", err)
	}
	d, err := svc.UpdateSeats(id, domain.SeatMale, 2)
	if err != nil {
		t.Fatalf("seats: %v", err)
	}
	return d
}
