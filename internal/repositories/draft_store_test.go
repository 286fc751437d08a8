package repositories

import (
	"errors"
	"testing"
	"time"

	"busbooking/internal/domain"
	"busbooking/internal/domain/models"
)

func TestDraftStoreCreateRejectsDuplicateID(t *testing.T) {
	s := NewDraftStore()
	if err := s.Create(models.BookingDraft{ID: "a"}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if err := s.Create(models.BookingDraft{ID: "a"}); !domain.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestDraftStoreUpdateKeepsDraftOnError(t *testing.T) {
	s := NewDraftStore()
	_ = s.Create(models.BookingDraft{ID: "a", Name: "before"})

	boom := errors.New("boom")
	_, err := s.Update("a", func(d *models.BookingDraft) error {
		d.Name = "after"
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected fn error, got %v", err)
	}
	got, _ := s.Get("a")
	if got.Name != "before" {
		t.Fatalf("draft changed on failed update: %q", got.Name)
	}

	got, err = s.Update("a", func(d *models.BookingDraft) error {
		d.Name = "after"
		return nil
	})
	if err != nil || got.Name != "after" {
		t.Fatalf("update not applied: %v %q", err, got.Name)
	}
}

func TestDraftStoreMissingDraft(t *testing.T) {
	s := NewDraftStore()
	if _, err := s.Get("nope"); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := s.Update("nope", func(*models.BookingDraft) error { return nil }); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDraftStoreSweep(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	s := NewDraftStore()
	_ = s.Create(models.BookingDraft{ID: "old", UpdatedAt: now.Add(-3 * time.Hour)})
	_ = s.Create(models.BookingDraft{ID: "fresh", UpdatedAt: now.Add(-time.Minute)})

	if n := s.Sweep(now.Add(-2 * time.Hour)); n != 1 {
		t.Fatalf("swept %d drafts, want 1", n)
	}
	if s.Len() != 1 {
		t.Fatalf("store has %d drafts, want 1", s.Len())
	}
	if _, err := s.Get("fresh"); err != nil {
		t.Fatalf("fresh draft removed: %v", err)
	}
}
