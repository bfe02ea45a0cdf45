package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"campus-assistant/pkg/log"
)

func newTestEngine(m Middleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", m.RateLimit(), func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return r
}

func TestRateLimit_Disabled(t *testing.T) {
	r := newTestEngine(New(log.NewNop(), RateLimitConfig{}))

	for i := 0; i < 50; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: status %d, want 200", i, w.Code)
		}
	}
}

func TestRateLimit_BlocksAfterBurst(t *testing.T) {
	// 60 req/min => 1 req/s with burst 6
	r := newTestEngine(New(log.NewNop(), RateLimitConfig{
		RequestsPerMin: 60,
		MaxClients:     10,
		TTL:            time.Minute,
	}))

	var blocked bool
	for i := 0; i < 20; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		if w.Code == http.StatusTooManyRequests {
			blocked = true
			break
		}
	}
	if !blocked {
		t.Error("expected a 429 once the burst is exhausted")
	}
}

func TestRateLimit_ClientsAreIndependent(t *testing.T) {
	r := newTestEngine(New(log.NewNop(), RateLimitConfig{
		RequestsPerMin: 60,
		MaxClients:     10,
		TTL:            time.Minute,
	}))

	// Exhaust the first client
	for i := 0; i < 20; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
	}

	// A different client is unaffected
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("fresh client got %d, want 200", w.Code)
	}
}
