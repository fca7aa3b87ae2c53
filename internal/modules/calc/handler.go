package calc

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"solarsite/internal/pkg/response"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/calc", h.Estimate)
}

// Estimate computes the solar estimate. Stateless: no storage, no
// notifications, every malformed input collapses to one generic reason.
func (h *Handler) Estimate(c *gin.Context) {
	raw := map[string]any{}
	if err := c.ShouldBindJSON(&raw); err != nil && err != io.EOF {
		response.Fail(c, http.StatusBadRequest, ErrBadInput.Error())
		return
	}

	in, err := parseRequest(raw)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, ErrBadInput.Error())
		return
	}

	est := EstimateSystem(in)
	response.OK(c, gin.H{
		"kw":             est.KW,
		"cost_gross":     est.CostGross,
		"cost_net":       est.CostNet,
		"yearly_savings": est.YearlySavings,
		"payback_years":  est.PaybackYears,
	})
}
