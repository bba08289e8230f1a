package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"cmcreport/internal/handler"
	"cmcreport/internal/middleware"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Report  *handler.ReportHandler
	Draft   *handler.DraftHandler
	Image   *handler.ImageHandler
	Catalog *handler.CatalogHandler
	Health  *handler.HealthHandler
}

// Options holds router-level settings.
type Options struct {
	AllowedOrigins []string
	AdminKeyHash   string
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(h Handlers, opts Options) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger("/healthz", "/readyz"))
	r.Use(middleware.CORS(opts.AllowedOrigins))

	// Health checks
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	// API docs
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	admin := middleware.RequireAdmin(opts.AdminKeyHash)

	// Report generation
	reports := v1.Group("/reports")
	reports.POST("", h.Report.Generate)
	reports.POST("/jobs", h.Report.Submit)
	reports.GET("/jobs/:id", h.Report.Job)
	reports.GET("/jobs/:id/download", h.Report.Download)

	// Drafts
	drafts := v1.Group("/drafts")
	drafts.POST("", h.Draft.Create)
	drafts.GET("/:id", h.Draft.Get)
	drafts.POST("/:id/slots", h.Draft.AddSlot)
	drafts.PATCH("/:id/slots/:slotId", h.Draft.UpdateSlot)
	drafts.PUT("/:id/slots/:slotId/file", h.Draft.AttachFile)
	drafts.DELETE("/:id/slots/:slotId", h.Draft.DeleteSlot)
	drafts.POST("/:id/report", h.Draft.Generate)

	// Image preview
	v1.POST("/images/process", h.Image.Process)

	// Catalog; writes require the admin key
	guides := v1.Group("/guides")
	guides.GET("", h.Catalog.ListGuides)
	guides.GET("/:name", h.Catalog.GetGuide)
	guides.PUT("/:name", admin, h.Catalog.SaveGuide)

	categories := v1.Group("/categories")
	categories.GET("", h.Catalog.ListCategories)
	categories.GET("/export", h.Catalog.ExportCategories)
	categories.GET("/:id", h.Catalog.GetCategory)
	categories.POST("", admin, h.Catalog.CreateCategory)
	categories.PUT("/:id", admin, h.Catalog.UpdateCategory)
	categories.DELETE("/:id", admin, h.Catalog.DeleteCategory)

	formulas := v1.Group("/formulas")
	formulas.GET("", h.Catalog.ListFormulas)
	formulas.POST("", admin, h.Catalog.CreateFormula)
	formulas.PUT("/:id", admin, h.Catalog.UpdateFormula)
	formulas.DELETE("/:id", admin, h.Catalog.DeleteFormula)

	return r
}
