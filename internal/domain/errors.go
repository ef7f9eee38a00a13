package domain

import "errors"

var (
	ErrNotFound             = errors.New("resource not found")
	ErrSessionNotFound      = errors.New("session not found")
	ErrCompanyNameRequired  = errors.New("company name is required")
	ErrSessionNotReady      = errors.New("session is not ready for download")
	ErrTemplateNotFound     = errors.New("template file not found")
	ErrTemplateInvalid      = errors.New("template is missing required placeholders")
	ErrGenerationFailed     = errors.New("document generation failed")
	ErrInvalidAddressMode   = errors.New("invalid address mode")
	ErrTemplateNotAvailable = errors.New("template is not available")
)
