package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lablabs/storefront-client/internal/client"
	"github.com/lablabs/storefront-client/internal/logging"
	"github.com/lablabs/storefront-client/internal/storefront"
)

// StatusFor maps a fetch error to the HTTP status returned to callers.
func StatusFor(err error) int {
	var gqlErr *client.GraphQLError
	var trErr *client.TransportError
	switch {
	case errors.Is(err, storefront.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, storefront.ErrEmptyID):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, storefront.ErrMissingData), errors.As(err, &gqlErr), errors.As(err, &trErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// ErrorHandler middleware handles errors and logs them
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last()
			status := StatusFor(err.Err)
			logging.Error("Request error", map[string]interface{}{
				"method": c.Request.Method,
				"path":   c.Request.URL.Path,
				"status": status,
				"error":  err.Error(),
			})
			body := gin.H{"error": err.Error()}
			var gqlErr *client.GraphQLError
			if errors.As(err.Err, &gqlErr) {
				body["errors"] = gqlErr.Errors
			}
			c.JSON(status, body)
		}
	}
}
