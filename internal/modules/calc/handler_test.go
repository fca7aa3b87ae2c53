package calc

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func setupCalcRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api")
	NewHandler().RegisterRoutes(api)
	return router
}

func postCalc(router *gin.Engine, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/calc", &buf)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestCalcEndpoint(t *testing.T) {
	router := setupCalcRouter()

	resp := postCalc(router, map[string]any{"bill": 900})
	require.Equal(t, http.StatusOK, resp.Code)

	var payload struct {
		OK            bool    `json:"ok"`
		KW            float64 `json:"kw"`
		CostGross     int64   `json:"cost_gross"`
		CostNet       int64   `json:"cost_net"`
		YearlySavings int64   `json:"yearly_savings"`
		PaybackYears  float64 `json:"payback_years"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.True(t, payload.OK)
	require.Equal(t, 1.0, payload.KW)
	require.Equal(t, int64(70000), payload.CostGross)
	require.Equal(t, int64(70000), payload.CostNet)
	require.Equal(t, int64(9180), payload.YearlySavings)
	require.Equal(t, 7.63, payload.PaybackYears)
}

func TestCalcEndpoint_BadInput(t *testing.T) {
	router := setupCalcRouter()

	resp := postCalc(router, map[string]any{"bill": "not a number"})
	require.Equal(t, http.StatusBadRequest, resp.Code)

	var payload struct {
		OK    bool   `json:"ok"`
		Error string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.False(t, payload.OK)
	require.Equal(t, "Bad input", payload.Error)
}

func TestCalcEndpoint_EmptyBodyUsesDefaults(t *testing.T) {
	router := setupCalcRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/calc", nil)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
}
