package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func ipContext(t *testing.T, remoteAddr string, headers map[string]string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.RemoteAddr = remoteAddr
	for k, v := range headers {
		c.Request.Header.Set(k, v)
	}
	return c
}

func TestClientIP(t *testing.T) {
	cases := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{"forwarded chain takes first hop", "10.0.0.1:443",
			map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.2"}, "203.0.113.7"},
		{"single forwarded entry", "10.0.0.1:443",
			map[string]string{"X-Forwarded-For": "203.0.113.7"}, "203.0.113.7"},
		{"real ip when no forwarded", "10.0.0.1:443",
			map[string]string{"X-Real-IP": "203.0.113.9"}, "203.0.113.9"},
		{"empty forwarded falls through", "10.0.0.1:443",
			map[string]string{"X-Forwarded-For": " ", "X-Real-IP": "203.0.113.9"}, "203.0.113.9"},
		{"remote addr strips port", "192.0.2.4:51234", nil, "192.0.2.4"},
		{"remote addr without port", "192.0.2.4", nil, "192.0.2.4"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := ipContext(t, tc.remoteAddr, tc.headers)
			if got := clientIP(c); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}
