package handler

import (
	"github.com/gin-gonic/gin"

	"ndagen/internal/domain"
	"ndagen/internal/service"
)

// TemplateHandler exposes diagnostics about the loaded agreement template.
type TemplateHandler struct {
	templateService service.TemplateService
}

// NewTemplateHandler creates a new TemplateHandler.
func NewTemplateHandler(templateService service.TemplateService) *TemplateHandler {
	return &TemplateHandler{templateService: templateService}
}

// Status handles GET /api/v1/template
// @Summary Template status
// @Description Source, size, modification time and placeholder readiness of the template
// @Tags template
// @Produce json
// @Success 200 {object} Response{data=domain.TemplateStatus} "Template status"
// @Failure 503 {object} ErrorResponseBody "Template not available"
// @Router /template [get]
func (h *TemplateHandler) Status(c *gin.Context) {
	if h.templateService == nil {
		HandleError(c, domain.ErrTemplateNotAvailable)
		return
	}
	RespondOK(c, h.templateService.Status())
}

// Locate handles GET /api/v1/template/locate
// @Summary Locate text in the template
// @Description Lists the paragraphs containing text (the company placeholder by default) and previews the first paragraphs
// @Tags template
// @Produce json
// @Param text query string false "Text to search for"
// @Success 200 {object} Response{data=domain.PlaceholderReport} "Locate report"
// @Failure 503 {object} ErrorResponseBody "Template not available"
// @Router /template/locate [get]
func (h *TemplateHandler) Locate(c *gin.Context) {
	if h.templateService == nil {
		HandleError(c, domain.ErrTemplateNotAvailable)
		return
	}
	RespondOK(c, h.templateService.Locate(c.Query("text")))
}
