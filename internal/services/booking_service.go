package services

import (
	"context"
	"encoding/hex"
	"fmt"

	"busbooking/internal/domain"
	"busbooking/internal/domain/models"
	"busbooking/internal/repositories"
	"busbooking/internal/utils"

	"golang.org/x/crypto/blake2b"
)

// SubmissionWriter persists submissions; satisfied by repositories.SubmissionRepository.
type SubmissionWriter interface {
	Insert(ctx context.Context, s models.Submission) (int64, error)
}

var _ SubmissionWriter = repositories.SubmissionRepository{}

// BookingService is the submit callback: it records a validated draft and
// composes the WhatsApp hand-off.
type BookingService struct {
	Repo      SubmissionWriter
	Composer  WhatsAppComposer
	Catalog   domain.Catalog
	Clock     utils.Clock
	RequestID string
}

// Record builds and stores the submission for d.
func (s BookingService) Record(ctx context.Context, d models.BookingDraft) (models.Submission, error) {
	total := Total(s.Catalog, d)
	msg := s.Composer.Message(d, total)
	sub := models.Submission{
		DraftID:     d.ID,
		Name:        d.Name,
		Phone:       d.Phone,
		From:        d.From,
		To:          d.To,
		Date:        d.Date,
		Time:        d.Time,
		Bus:         d.Bus,
		MaleSeats:   d.MaleSeats,
		FemaleSeats: d.FemaleSeats,
		Total:       total,
		HasSlip:     d.PaymentSlip != "",
		SlipDigest:  SlipDigest(d.PaymentSlip),
		Message:     msg,
		WhatsAppURL: s.Composer.Link(msg),
		CreatedAt:   s.Clock.Now(),
	}
	id, err := s.Repo.Insert(ctx, sub)
	if err != nil {
		return models.Submission{}, err
	}
	sub.ID = id
	utils.LogEvent(s.RequestID, "booking", "record", fmt.Sprintf("submission_id=%d draft_id=%s total=%d", id, d.ID, total))
	return sub, nil
}

// OnSubmit adapts Record to a SubmitFunc, writing the stored submission to out.
func (s BookingService) OnSubmit(out *models.Submission) SubmitFunc {
	return func(ctx context.Context, d models.BookingDraft) error {
		sub, err := s.Record(ctx, d)
		if err != nil {
			return err
		}
		*out = sub
		return nil
	}
}

// SlipDigest is the hex BLAKE2b-256 of the slip data URL, or "" when empty.
func SlipDigest(dataURL string) string {
	if dataURL == "" {
		return ""
	}
	sum := blake2b.Sum256([]byte(dataURL))
	return hex.EncodeToString(sum[:])
}
