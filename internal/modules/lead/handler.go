package lead

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"solarsite/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/leads", h.Submit)
}

// Submit accepts a contact form submission as JSON or form-encoded body.
func (h *Handler) Submit(c *gin.Context) {
	sub := bindSubmission(c)

	l, err := h.service.Submit(c.Request.Context(), sub)
	if err != nil {
		if IsValidationError(err) {
			response.Fail(c, http.StatusBadRequest, err.Error())
			return
		}
		// Store failure: the lead was not durably recorded, so this must
		// surface as a hard failure rather than a fake success.
		_ = c.Error(err)
		response.Fail(c, http.StatusInternalServerError, "Failed to store lead")
		return
	}

	response.OK(c, gin.H{"leadId": l.ID})
}

// bindSubmission parses either body encoding into the raw field map.
// An unreadable body degrades to an empty submission, which the validator
// then rejects field by field.
func bindSubmission(c *gin.Context) Submission {
	contentType := c.ContentType()

	if strings.Contains(contentType, "json") {
		raw := map[string]any{}
		if err := c.ShouldBindJSON(&raw); err != nil {
			return Submission{}
		}
		return submissionFromMap(raw)
	}

	if err := c.Request.ParseForm(); err != nil {
		return Submission{}
	}
	raw := make(map[string]any, len(c.Request.PostForm))
	for key, values := range c.Request.PostForm {
		if len(values) > 0 {
			raw[key] = values[0]
		}
	}
	return submissionFromMap(raw)
}
