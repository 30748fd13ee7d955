package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"
)

// Values of the security headers attached to every response.
const (
	FrameOptions          = "SAMEORIGIN"
	ContentSecurityPolicy = "default-src 'self'; object-src 'none'"
	ReferrerPolicy        = "strict-origin-when-cross-origin"
)

// SecurityHeaders sets the standard security headers and, when forceHTTPS is
// true, redirects plain HTTP requests to HTTPS.
//
// The headers are written first so the redirect response carries them too.
func SecurityHeaders(forceHTTPS bool) gin.HandlerFunc {
	headers := secure.New(secure.Options{
		CustomFrameOptionsValue: FrameOptions,
		ContentTypeNosniff:      true,
		ContentSecurityPolicy:   ContentSecurityPolicy,
		ReferrerPolicy:          ReferrerPolicy,
	})

	redirect := secure.New(secure.Options{
		SSLRedirect:     true,
		SSLProxyHeaders: map[string]string{"X-Forwarded-Proto": "https"},
	})

	return func(c *gin.Context) {
		if err := headers.Process(c.Writer, c.Request); err != nil {
			c.Abort()
			return
		}

		if forceHTTPS {
			if err := redirect.Process(c.Writer, c.Request); err != nil {
				// Process has already written the redirect.
				c.Abort()
				return
			}
		}

		c.Next()
	}
}
