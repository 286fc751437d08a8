package services

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"

	"busbooking/internal/domain"
	"busbooking/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSubmissions struct {
	saved []models.Submission
	err   error
}

func (f *fakeSubmissions) Insert(_ context.Context, s models.Submission) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.saved = append(f.saved, s)
	return int64(len(f.saved)), nil
}

func newBookingService(repo SubmissionWriter) BookingService {
	cat := domain.DefaultCatalog()
	return BookingService{
		Repo:     repo,
		Composer: WhatsAppComposer{Number: "+94 77 123 4567", Catalog: cat},
		Catalog:  cat,
		Clock:    fixedClock(),
	}
}

func sampleDraft() models.BookingDraft {
	return models.BookingDraft{
		ID:          "draft-1",
		Name:        "Nimal Perera",
		Phone:       "0771234567",
		From:        "Colombo",
		To:          "Jaffna",
		Date:        "2026-03-11",
		Time:        "08:30 PM",
		Bus:         "Night Express",
		MaleSeats:   2,
		FemaleSeats: 1,
	}
}

func TestRecordStoresSubmission(t *testing.T) {
	repo := &fakeSubmissions{}
	d := sampleDraft()
	d.PaymentSlip = "data:image/png;base64,AAAA"

	sub, err := newBookingService(repo).Record(context.Background(), d)
	require.NoError(t, err)
	require.Len(t, repo.saved, 1)

	assert.Equal(t, int64(1), sub.ID)
	assert.Equal(t, int64(7500), sub.Total)
	assert.True(t, sub.HasSlip)
	assert.Len(t, sub.SlipDigest, 64)
	assert.Equal(t, fixedNow, sub.CreatedAt)
	assert.True(t, strings.HasPrefix(sub.WhatsAppURL, "https://wa.me/94771234567?text="), sub.WhatsAppURL)

	u, err := url.Parse(sub.WhatsAppURL)
	require.NoError(t, err)
	assert.Equal(t, sub.Message, u.Query().Get("text"))
}

func TestOnSubmitPropagatesInsertError(t *testing.T) {
	boom := errors.New("db down")
	var out models.Submission
	err := newBookingService(&fakeSubmissions{err: boom}).OnSubmit(&out)(context.Background(), sampleDraft())
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, out.ID)
}

func TestSlipDigest(t *testing.T) {
	assert.Empty(t, SlipDigest(""))
	a := SlipDigest("data:image/png;base64,AAAA")
	assert.Len(t, a, 64)
	assert.Equal(t, a, SlipDigest("data:image/png;base64,AAAA"))
	assert.NotEqual(t, a, SlipDigest("data:image/png;base64,AAAB"))
}

func TestWhatsAppMessage(t *testing.T) {
	cat := domain.DefaultCatalog()
	msg := WhatsAppComposer{Catalog: cat}.Message(sampleDraft(), 7500)

	for _, want := range []string{
		"Name: Nimal Perera",
		"Route: Colombo -> Jaffna",
		"Bus: Night Express (08:30 PM)",
		"Seats: 2 male, 1 female",
		"Total: Rs. 7,500",
		"Payment slip: Not attached",
		"Bank of Ceylon",
		"0081234567",
	} {
		assert.Contains(t, msg, want)
	}
}
