package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestSecurityHeaders(t *testing.T) {
	wantHeaders := map[string]string{
		"X-Frame-Options":         "SAMEORIGIN",
		"X-Content-Type-Options":  "nosniff",
		"Content-Security-Policy": "default-src 'self'; object-src 'none'",
		"Referrer-Policy":         "strict-origin-when-cross-origin",
	}

	testCases := []struct {
		name           string
		forceHTTPS     bool
		url            string
		header         map[string]string
		wantStatusCode int
		wantHeaders    bool
		wantLocation   string
	}{
		{
			name:           "HTTPSEnforced",
			forceHTTPS:     true,
			url:            "https://example.com/",
			wantStatusCode: http.StatusNoContent,
			wantHeaders:    true,
		},
		{
			name:           "HTTPSEnforcedBehindProxy",
			forceHTTPS:     true,
			url:            "http://example.com/",
			header:         map[string]string{"X-Forwarded-Proto": "https"},
			wantStatusCode: http.StatusNoContent,
			wantHeaders:    true,
		},
		{
			name:           "RedirectToHTTPS",
			forceHTTPS:     true,
			url:            "http://example.com/accounts",
			wantStatusCode: http.StatusMovedPermanently,
			wantHeaders:    true,
			wantLocation:   "https://example.com/accounts",
		},
		{
			name:           "RedirectToHTTPSWithQuery",
			forceHTTPS:     true,
			url:            "http://example.com/accounts/7?verbose=1",
			wantStatusCode: http.StatusMovedPermanently,
			wantHeaders:    true,
			wantLocation:   "https://example.com/accounts/7?verbose=1",
		},
		{
			name:           "HTTPAllowed",
			forceHTTPS:     false,
			url:            "http://example.com/",
			wantStatusCode: http.StatusNoContent,
			wantHeaders:    true,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			gin.SetMode(gin.ReleaseMode)
			server := gin.New()
			server.Use(SecurityHeaders(tc.forceHTTPS))
			server.GET("/*path", func(c *gin.Context) {
				c.Status(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, tc.url, nil)
			for k, v := range tc.header {
				req.Header.Set(k, v)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			if tc.wantLocation != "" {
				if got := recorder.Header().Get("Location"); got != tc.wantLocation {
					t.Errorf("Location: got %q, want %q", got, tc.wantLocation)
				}
			}

			if !tc.wantHeaders {
				return
			}

			for k, want := range wantHeaders {
				if got := recorder.Header().Get(k); got != want {
					t.Errorf("%s: got %q, want %q", k, got, want)
				}
			}
		})
	}
}
