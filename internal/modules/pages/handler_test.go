package pages

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHandler("https://example.com/").RegisterRoutes(router)
	return router
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestHealthz(t *testing.T) {
	resp := get(setupRouter(), "/healthz")

	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"status":"ok"}`, resp.Body.String())
}

func TestRobots(t *testing.T) {
	resp := get(setupRouter(), "/robots.txt")

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Header().Get("Content-Type"), "text/plain")
	assert.Contains(t, resp.Body.String(), "User-agent: *")
	assert.Contains(t, resp.Body.String(), "Sitemap: https://example.com/sitemap.xml")
}

func TestSitemap(t *testing.T) {
	resp := get(setupRouter(), "/sitemap.xml")

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Header().Get("Content-Type"), "application/xml")

	body := resp.Body.String()
	assert.Contains(t, body, "<loc>https://example.com/</loc>")
	assert.Contains(t, body, "<loc>https://example.com/contact</loc>")
	assert.Contains(t, body, "<loc>https://example.com/terms</loc>")
	// the calculator page is served but kept out of the sitemap
	assert.False(t, strings.Contains(body, "/calculator"))
}
