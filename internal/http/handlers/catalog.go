package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetCatalog returns the bus services, cities and bank details the form offers.
func (a *API) GetCatalog(c *gin.Context) {
	cat := a.Env.Catalog
	c.JSON(http.StatusOK, gin.H{
		"services":     cat.Services(),
		"cities":       cat.Cities(),
		"bank":         cat.Bank(),
		"slipMaxBytes": a.Env.SlipMaxBytes,
	})
}
