package handler

import (
	"mime"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ndagen/internal/service"
)

// SessionHandler handles the agreement form endpoints.
type SessionHandler struct {
	sessionService service.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessionService service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// Create handles POST /api/v1/sessions
// @Summary Start a form session
// @Description Create a new agreement form session in the name entry state
// @Tags sessions
// @Produce json
// @Success 201 {object} Response{data=domain.SessionView} "Session created"
// @Router /sessions [post]
func (h *SessionHandler) Create(c *gin.Context) {
	view, err := h.sessionService.Create(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, view)
}

// Get handles GET /api/v1/sessions/:id
// @Summary Get a form session
// @Description Current state, values, preview and last generated file of a session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Success 200 {object} Response{data=domain.SessionView} "Session"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 404 {object} ErrorResponseBody "Session not found"
// @Router /sessions/{id} [get]
func (h *SessionHandler) Get(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}

	view, err := h.sessionService.Get(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, view)
}

// SetCompany handles PUT /api/v1/sessions/:id/company
// @Summary Set the company name
// @Description Sets the company name and, in auto mode, looks up its registered address
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Param request body SetCompanyRequest true "Company name"
// @Success 200 {object} Response{data=domain.SessionView} "Session updated"
// @Failure 400 {object} ErrorResponseBody "Empty company name"
// @Failure 404 {object} ErrorResponseBody "Session not found"
// @Router /sessions/{id}/company [put]
func (h *SessionHandler) SetCompany(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}

	var req SetCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	view, err := h.sessionService.SetCompanyName(c.Request.Context(), id, req.CompanyName)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, view)
}

// SetAddress handles PUT /api/v1/sessions/:id/address
// @Summary Confirm or edit the address
// @Description Sets the registered address; a non-empty address makes the session ready
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Param request body SetAddressRequest true "Registered address"
// @Success 200 {object} Response{data=domain.SessionView} "Session updated"
// @Failure 400 {object} ErrorResponseBody "Company name not set"
// @Failure 404 {object} ErrorResponseBody "Session not found"
// @Router /sessions/{id}/address [put]
func (h *SessionHandler) SetAddress(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}

	var req SetAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	view, err := h.sessionService.SetAddress(c.Request.Context(), id, req.Address)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, view)
}

// Download handles GET /api/v1/sessions/:id/download
// @Summary Download the filled agreement
// @Description Fills the template with the session's company name and address
// @Tags sessions
// @Produce application/vnd.openxmlformats-officedocument.wordprocessingml.document
// @Param id path string true "Session ID (UUID)"
// @Success 200 {file} file "Filled agreement"
// @Failure 404 {object} ErrorResponseBody "Session not found"
// @Failure 409 {object} ErrorResponseBody "Session not ready"
// @Failure 500 {object} ErrorResponseBody "Generation failed"
// @Router /sessions/{id}/download [get]
func (h *SessionHandler) Download(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}

	doc, err := h.sessionService.Generate(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": doc.FileName}))
	c.Header("Content-Length", strconv.Itoa(len(doc.Data)))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, doc.ContentType, doc.Data)
}

// Delete handles DELETE /api/v1/sessions/:id
// @Summary Discard a form session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Success 200 {object} Response "Session deleted"
// @Failure 404 {object} ErrorResponseBody "Session not found"
// @Router /sessions/{id} [delete]
func (h *SessionHandler) Delete(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}

	if err := h.sessionService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "session deleted"})
}

// parseSessionID writes a 400 response and returns false when the path ID is
// not a UUID.
func parseSessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid session ID")
		return uuid.Nil, false
	}
	return id, true
}
