package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/account-service/pkg/web"
)

// MIMEJSON is the only media type accepted for request bodies.
const MIMEJSON = "application/json"

// RequireContentType aborts with 415 unless the Content-Type header equals mediaType exactly.
func RequireContentType(mediaType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		contentType := c.GetHeader("Content-Type")
		if contentType == mediaType {
			c.Next()
			return
		}

		zerolog.Ctx(c.Request.Context()).Error().Str("content_type", contentType).Msg("invalid Content-Type")
		c.AbortWithStatusJSON(http.StatusUnsupportedMediaType, web.Message("Content-Type must be "+mediaType))
	}
}
