package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h Handlers) registerHealthEndpoints(r *gin.Engine) {
	r.GET("/health", h.getHealth)
}

func (h Handlers) getHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "OK",
		"cards":  len(h.useCases.GetAllDefinitions()),
	})
}
