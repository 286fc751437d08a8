package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// TokenVerifier resolves a bearer token to the draft id it was issued for.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// SubmissionVerifier resolves a bearer token to the submission id it unlocks.
type SubmissionVerifier interface {
	VerifySubmission(token string) (string, error)
}

// DraftAuth requires a bearer token issued for the draft named by the :id param.
func DraftAuth(v TokenVerifier) gin.HandlerFunc {
	return bearerAuth("draft", v.Verify)
}

// SubmissionAuth requires a bearer token issued for the submission named by the :id param.
func SubmissionAuth(v SubmissionVerifier) gin.HandlerFunc {
	return bearerAuth("submission", v.VerifySubmission)
}

func bearerAuth(kind string, verify func(string) (string, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(raw) == "" {
			abortUnauthorized(c, "missing "+kind+" token")
			return
		}
		id, err := verify(strings.TrimSpace(raw))
		if err != nil || id != c.Param("id") {
			abortUnauthorized(c, kind+" token does not match")
			return
		}
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":      msg,
		"code":       "unauthorized",
		"request_id": GetRequestID(c),
	})
}
