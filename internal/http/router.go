package api

import (
	stdhttp "net/http"

	h "busbooking/internal/http/handlers"
	"busbooking/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func NewRouter(a *h.API) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(a.Env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		logrus.WithError(err).Warn("failed to set trusted proxies")
	}
	// Multipart bodies beyond this spill to temp files; the slip cap is enforced by the loader.
	r.MaxMultipartMemory = a.Env.SlipMaxBytes + 1<<20

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)
		api.GET("/catalog", a.GetCatalog)

		api.POST("/drafts", a.CreateDraft)
		drafts := api.Group("/drafts/:id", middleware.DraftAuth(a.Tokens))
		mountDraft(drafts, a)

		submissions := api.Group("/submissions/:id", middleware.SubmissionAuth(a.Tokens))
		submissions.GET("", a.GetSubmission)
		submissions.GET("/receipt", a.GetReceipt)
	}

	h.SetRouter(r)
	return r
}

func mountDraft(g *gin.RouterGroup, a *h.API) {
	g.GET("", a.GetDraft)
	g.PATCH("", a.PatchDraft)
	g.POST("/seats", a.UpdateSeats)
	g.PUT("/slip", middleware.RateLimit(a.Env.UploadsPerMinute), a.UploadSlip)
	g.DELETE("/slip", a.RemoveSlip)
	g.POST("/submit", a.SubmitDraft)
}
