package handlers

import (
	"net/http"

	"busbooking/internal/domain"
	"busbooking/internal/domain/models"

	"github.com/gin-gonic/gin"
)

type seatUpdateRequest struct {
	Kind  string `json:"kind" binding:"required"`
	Delta int    `json:"delta"`
}

// CreateDraft starts a booking draft and returns the token that unlocks it.
func (a *API) CreateDraft(c *gin.Context) {
	svc := a.draftService(c)
	d, err := svc.Create()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	token, err := a.Tokens.Issue(d.ID, a.Clock.Now())
	if err != nil {
		a.Drafts.Delete(d.ID)
		RespondDomainError(c, domain.DomainError{Code: "token_error", Err: err})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"draft": svc.View(d),
		"token": token,
	})
}

func (a *API) GetDraft(c *gin.Context) {
	svc := a.draftService(c)
	d, err := svc.Get(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc.View(d))
}

// PatchDraft applies the present fields of the body.
func (a *API) PatchDraft(c *gin.Context) {
	var req models.DraftUpdate
	if !BindJSONOrError(c, &req) {
		return
	}
	svc := a.draftService(c)
	d, err := svc.Apply(c.Param("id"), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc.View(d))
}

// UpdateSeats adds a signed delta to one seat counter.
func (a *API) UpdateSeats(c *gin.Context) {
	var req seatUpdateRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	kind, ok := domain.ParseSeatKind(req.Kind)
	if !ok {
		RespondDomainError(c, domain.ValidationError{Field: "kind", Msg: "kind must be male or female"})
		return
	}
	svc := a.draftService(c)
	d, err := svc.UpdateSeats(c.Param("id"), kind, req.Delta)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc.View(d))
}

// SubmitDraft validates the draft, records it and discards it. The returned
// token unlocks the stored submission and its receipt.
func (a *API) SubmitDraft(c *gin.Context) {
	id := c.Param("id")
	var sub models.Submission
	booking := a.bookingService(c)
	if err := a.submitter(c).Submit(c.Request.Context(), id, booking.OnSubmit(&sub)); err != nil {
		RespondDomainError(c, err)
		return
	}
	a.draftService(c).Discard(id)
	token, err := a.Tokens.IssueSubmission(sub.ID, a.Clock.Now())
	if err != nil {
		RespondDomainError(c, domain.DomainError{Code: "token_error", Err: err})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"submission": sub, "token": token})
}
