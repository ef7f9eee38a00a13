package handler

import (
	"github.com/gin-gonic/gin"

	"ndagen/internal/domain"
)

// CompanyLister lists the known companies of the local directory.
type CompanyLister interface {
	Entries() []domain.CompanyEntry
}

// DirectoryHandler serves the known-company directory.
type DirectoryHandler struct {
	directory CompanyLister
}

// NewDirectoryHandler creates a new DirectoryHandler. directory may be nil
// when no directory is configured.
func NewDirectoryHandler(directory CompanyLister) *DirectoryHandler {
	return &DirectoryHandler{directory: directory}
}

// List handles GET /api/v1/directory
// @Summary List known companies
// @Description Companies whose address is resolved from the local directory
// @Tags directory
// @Produce json
// @Success 200 {object} Response{data=[]domain.CompanyEntry} "Known companies"
// @Router /directory [get]
func (h *DirectoryHandler) List(c *gin.Context) {
	entries := []domain.CompanyEntry{}
	if h.directory != nil {
		entries = append(entries, h.directory.Entries()...)
	}
	RespondOK(c, entries)
}
