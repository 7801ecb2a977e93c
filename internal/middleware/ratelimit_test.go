package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"smart-scheduler/internal/middleware"
	pkgLog "smart-scheduler/pkg/log"
)

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// 60 req/min gives a burst budget of 6.
	mw := middleware.New(pkgLog.NewNop(), 60)

	r := gin.New()
	r.GET("/ping", mw.RateLimit(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	do := func() int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.1.2.3:1234"
		r.ServeHTTP(w, req)
		return w.Code
	}

	for i := 0; i < 6; i++ {
		if code := do(); code != http.StatusOK {
			t.Fatalf("request %d: code = %d, want 200", i+1, code)
		}
	}
	if code := do(); code != http.StatusTooManyRequests {
		t.Errorf("request over budget: code = %d, want 429", code)
	}
}

func TestRateLimitPerClient(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mw := middleware.New(pkgLog.NewNop(), 10) // burst budget 1

	r := gin.New()
	r.GET("/ping", mw.RateLimit(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	do := func(addr string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = addr
		r.ServeHTTP(w, req)
		return w.Code
	}

	if code := do("10.0.0.1:1111"); code != http.StatusOK {
		t.Fatalf("first client: code = %d, want 200", code)
	}
	if code := do("10.0.0.1:1111"); code != http.StatusTooManyRequests {
		t.Errorf("first client second request: code = %d, want 429", code)
	}

	// A different client has its own budget.
	if code := do("10.0.0.2:2222"); code != http.StatusOK {
		t.Errorf("second client: code = %d, want 200", code)
	}
}
