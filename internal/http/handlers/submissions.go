package handlers

import (
	"net/http"
	"strconv"

	"busbooking/internal/http/middleware"
	"busbooking/internal/services"

	"github.com/gin-gonic/gin"
)

func (a *API) GetSubmission(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "invalid_submission_id", "invalid submission id", nil)
		return
	}
	sub, err := a.Submissions.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

// GetReceipt returns the submission receipt as an inline PDF.
func (a *API) GetReceipt(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "invalid_submission_id", "invalid submission id", nil)
		return
	}
	svc := services.ReceiptService{
		Loader:    a.Submissions.GetByID,
		Catalog:   a.Env.Catalog,
		RequestID: middleware.GetRequestID(c),
	}
	pdfBytes, filename, err := svc.Generate(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
