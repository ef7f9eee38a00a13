package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ndagen/internal/domain"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound, "SESSION_NOT_FOUND", "session not found or expired; start a new form"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "resource not found"
	case errors.Is(err, domain.ErrCompanyNameRequired):
		return http.StatusBadRequest, "COMPANY_NAME_REQUIRED", "请输入公司名称"
	case errors.Is(err, domain.ErrSessionNotReady):
		return http.StatusConflict, "SESSION_NOT_READY", "company name and address are both required before download"
	case errors.Is(err, domain.ErrGenerationFailed):
		return http.StatusInternalServerError, "GENERATION_FAILED", "document generation failed; please try again"
	case errors.Is(err, domain.ErrTemplateNotAvailable), errors.Is(err, domain.ErrTemplateNotFound):
		return http.StatusServiceUnavailable, "TEMPLATE_NOT_AVAILABLE", "agreement template is not available"
	case errors.Is(err, domain.ErrTemplateInvalid):
		return http.StatusServiceUnavailable, "TEMPLATE_INVALID", "agreement template is missing required placeholders"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		zap.L().Error("request failed",
			zap.Any("request_id", requestID),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
	}
	RespondError(c, status, code, msg)
}
