package services

import (
	"context"
	"errors"
	"testing"

	"busbooking/internal/domain"
	"busbooking/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitBlocksZeroSeats(t *testing.T) {
	svc, d := newDraftService(t)
	completeDraft(t, svc, d.ID)
	_, err := svc.UpdateSeats(d.ID, domain.SeatMale, -10)
	require.NoError(t, err)

	calls := 0
	err = Submitter{Store: svc.Store}.Submit(context.Background(), d.ID, func(context.Context, models.BookingDraft) error {
		calls++
		return nil
	})
	require.Error(t, err)
	n, ok := domain.NoticeOf(err)
	require.True(t, ok)
	assert.Equal(t, "Seat selection required", n.Title)
	assert.Zero(t, calls)
}

func TestSubmitBlocksShortPhone(t *testing.T) {
	svc, d := newDraftService(t)
	completeDraft(t, svc, d.ID)
	_, err := svc.UpdatePhone(d.ID, "12345")
	require.NoError(t, err)

	calls := 0
	err = Submitter{Store: svc.Store}.Submit(context.Background(), d.ID, func(context.Context, models.BookingDraft) error {
		calls++
		return nil
	})
	n, ok := domain.NoticeOf(err)
	require.True(t, ok)
	assert.Equal(t, "Invalid phone number", n.Title)
	assert.Zero(t, calls)
}

func TestSubmitSeatsCheckedBeforePhone(t *testing.T) {
	d := models.BookingDraft{Name: "A", From: "Colombo", To: "Kandy", Date: "2026-03-11", Bus: "Night Express", Phone: "1"}
	n, ok := domain.NoticeOf(Validate(d))
	require.True(t, ok)
	assert.Equal(t, domain.NoticeSeatsRequired.Title, n.Title)
}

func TestSubmitRequiresName(t *testing.T) {
	svc, d := newDraftService(t)
	completeDraft(t, svc, d.ID)
	_, err := svc.UpdateName(d.ID, "   ")
	require.NoError(t, err)

	err = Submitter{Store: svc.Store}.Submit(context.Background(), d.ID, func(context.Context, models.BookingDraft) error {
		t.Fatal("onSubmit must not run")
		return nil
	})
	var verr domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.Field)
}

func TestSubmitHandsOffExactDraftOnce(t *testing.T) {
	svc, d := newDraftService(t)
	want := completeDraft(t, svc, d.ID)

	var got []models.BookingDraft
	err := Submitter{Store: svc.Store}.Submit(context.Background(), d.ID, func(_ context.Context, d models.BookingDraft) error {
		got = append(got, d)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, want, got[0])

	// the draft stays until the caller discards it
	_, err = svc.Get(d.ID)
	assert.NoError(t, err)
}

func TestSubmitReturnsCallbackError(t *testing.T) {
	svc, d := newDraftService(t)
	completeDraft(t, svc, d.ID)

	boom := errors.New("boom")
	err := Submitter{Store: svc.Store}.Submit(context.Background(), d.ID, func(context.Context, models.BookingDraft) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestSubmitUnknownDraft(t *testing.T) {
	svc, _ := newDraftService(t)
	err := Submitter{Store: svc.Store}.Submit(context.Background(), "missing", func(context.Context, models.BookingDraft) error {
		return nil
	})
	assert.True(t, domain.IsNotFound(err))
}
