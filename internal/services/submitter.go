package services

import (
	"context"

	"busbooking/internal/domain/models"
	"busbooking/internal/repositories"
	"busbooking/internal/utils"
)

// SubmitFunc receives a validated draft. What happens next is up to the caller.
type SubmitFunc func(ctx context.Context, d models.BookingDraft) error

// Submitter runs the submission gate and hands the draft to a callback.
type Submitter struct {
	Store     *repositories.DraftStore
	RequestID string
}

// Submit validates the current draft and, if it passes, calls onSubmit once
// with that exact draft. Validation failures are returned and onSubmit is not
// called. Errors from onSubmit are returned unchanged. The draft is left in
// the store either way.
func (s Submitter) Submit(ctx context.Context, id string, onSubmit SubmitFunc) error {
	d, err := s.Store.Get(id)
	if err != nil {
		return err
	}
	if err := Validate(d); err != nil {
		utils.LogEvent(s.RequestID, "submit", "validate", "draft_id="+id+" rejected: "+err.Error())
		return err
	}
	utils.LogEvent(s.RequestID, "submit", "handoff", "draft_id="+id)
	return onSubmit(ctx, d)
}
