package router

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"ndagen/internal/handler"
	"ndagen/internal/middleware"
	"ndagen/web"
)

// Handlers groups the HTTP handlers mounted by Setup.
type Handlers struct {
	Session   *handler.SessionHandler
	Template  *handler.TemplateHandler
	Directory *handler.DirectoryHandler
	Health    *handler.HealthHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(h Handlers, allowedOrigins []string, logger *zap.Logger) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Form sessions
	sessions := v1.Group("/sessions")
	sessions.POST("", h.Session.Create)
	sessions.GET("/:id", h.Session.Get)
	sessions.PUT("/:id/company", h.Session.SetCompany)
	sessions.PUT("/:id/address", h.Session.SetAddress)
	sessions.GET("/:id/download", h.Session.Download)
	sessions.DELETE("/:id", h.Session.Delete)

	// Template diagnostics
	v1.GET("/template", h.Template.Status)
	v1.GET("/template/locate", h.Template.Locate)

	v1.GET("/directory", h.Directory.List)

	// Browser form
	page := gin.WrapH(web.Handler())
	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") || c.Request.Method != http.MethodGet {
			handler.RespondError(c, http.StatusNotFound, "NOT_FOUND", "route not found")
			return
		}
		page(c)
	})

	return r
}
