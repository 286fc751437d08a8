package handlers

import (
	"net/http"

	"busbooking/internal/config"
	"busbooking/internal/http/middleware"
	"busbooking/internal/repositories"
	"busbooking/internal/services"
	"busbooking/internal/utils"

	"github.com/gin-gonic/gin"
)

// API carries the shared dependencies of all handlers.
type API struct {
	Env         config.Env
	Drafts      *repositories.DraftStore
	Submissions repositories.SubmissionRepository
	Tokens      services.DraftTokens
	Clock       utils.Clock
}

func (a *API) draftService(c *gin.Context) services.DraftService {
	return services.DraftService{
		Store:     a.Drafts,
		Catalog:   a.Env.Catalog,
		Clock:     a.Clock,
		RequestID: middleware.GetRequestID(c),
	}
}

func (a *API) slipLoader(c *gin.Context) services.SlipLoader {
	return services.SlipLoader{
		Store:     a.Drafts,
		MaxBytes:  a.Env.SlipMaxBytes,
		Clock:     a.Clock,
		RequestID: middleware.GetRequestID(c),
	}
}

func (a *API) submitter(c *gin.Context) services.Submitter {
	return services.Submitter{Store: a.Drafts, RequestID: middleware.GetRequestID(c)}
}

func (a *API) bookingService(c *gin.Context) services.BookingService {
	return services.BookingService{
		Repo:      a.Submissions,
		Composer:  services.WhatsAppComposer{Number: a.Env.WhatsAppNumber, Catalog: a.Env.Catalog},
		Catalog:   a.Env.Catalog,
		Clock:     a.Clock,
		RequestID: middleware.GetRequestID(c),
	}
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		respondError(c, http.StatusBadRequest, "empty_body", "request body is empty", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_json", "invalid payload: "+err.Error(), nil)
		return false
	}
	return true
}
