package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// UploadSlip reads the multipart "slip" file into the draft's payment slip.
func (a *API) UploadSlip(c *gin.Context) {
	fh, err := c.FormFile("slip")
	if err != nil {
		respondError(c, http.StatusBadRequest, "missing_file", "slip file is required", nil)
		return
	}
	f, err := fh.Open()
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid_file", "failed to open slip file", nil)
		return
	}
	defer f.Close()

	loader := a.slipLoader(c)
	d, applied, err := loader.Load(c.Request.Context(), c.Param("id"), fh.Size, f)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"draft":    a.draftService(c).View(d),
		"applied":  applied,
		"fileName": fh.Filename,
	})
}

func (a *API) RemoveSlip(c *gin.Context) {
	d, err := a.slipLoader(c).Remove(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, a.draftService(c).View(d))
}
