package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthCheck function handles health check.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
	})
}
