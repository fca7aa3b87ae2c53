package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_BurstExhaustion(t *testing.T) {
	rl := NewRateLimiter(0.001, 3, nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow(ctx, "10.0.0.1"), "request %d within burst", i+1)
	}
	assert.False(t, rl.Allow(ctx, "10.0.0.1"), "burst exhausted")

	// A different client has its own bucket.
	assert.True(t, rl.Allow(ctx, "10.0.0.2"))
}

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RateLimit(NewRateLimiter(0.001, 1, nil)))
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	do := func() int {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		return resp.Code
	}

	require.Equal(t, http.StatusOK, do())
	require.Equal(t, http.StatusTooManyRequests, do())
}
