package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func middlewareRouter(limiter *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Middleware(limiter))
	router.POST("/api/v1/checkout/submit", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func doRequest(router *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout/submit", nil)
	req.RemoteAddr = "10.20.30.40:5555"
	router.ServeHTTP(w, req)
	return w
}

func TestMiddlewareReturns429WhenSaturated(t *testing.T) {
	limiter := newTestLimiter(t, testConfig())
	router := middlewareRouter(limiter)

	for i := 0; i < 2; i++ {
		w := doRequest(router)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := doRequest(router)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.Contains(t, w.Body.String(), "Rate limit exceeded")
}

func TestMiddlewareFailsOpenOnRedisError(t *testing.T) {
	limiter := newTestLimiter(t, &Config{
		Enabled:          true,
		WindowDuration:   time.Minute,
		CheckoutRequests: 2,
	})
	// an unreachable redis must not take the API down
	limiter.client.Close()
	router := middlewareRouter(limiter)

	w := doRequest(router)
	assert.Equal(t, http.StatusOK, w.Code)
}
