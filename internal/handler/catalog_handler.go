package handler

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"cmcreport/internal/csvexport"
	"cmcreport/internal/domain"
	"cmcreport/internal/middleware"
	"cmcreport/internal/service"
)

// CatalogHandler serves guides, incident categories and formulas.
type CatalogHandler struct {
	catalogService service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListGuides handles GET /api/v1/guides
// @Summary List guides
// @Tags catalog
// @Produce json
// @Success 200 {object} Response{data=map[string]string} "Guide texts by incident name"
// @Router /guides [get]
func (h *CatalogHandler) ListGuides(c *gin.Context) {
	RespondOK(c, h.catalogService.ListGuides(c.Request.Context()))
}

// GetGuide handles GET /api/v1/guides/:name
// @Summary Resolve the guide for an incident
// @Description Exact match, then the longest guide name contained in the incident name, then the default guide
// @Tags catalog
// @Produce json
// @Param name path string true "Incident name"
// @Success 200 {object} Response{data=GuideResponse} "Guide"
// @Router /guides/{name} [get]
func (h *CatalogHandler) GetGuide(c *gin.Context) {
	name := c.Param("name")
	RespondOK(c, GuideResponse{
		Name:    name,
		Content: h.catalogService.GetGuide(c.Request.Context(), name),
	})
}

// SaveGuide handles PUT /api/v1/guides/:name
// @Summary Save a guide
// @Tags catalog
// @Accept json
// @Produce json
// @Security AdminKey
// @Param name path string true "Incident name"
// @Param body body SaveGuideRequest true "Guide content"
// @Success 200 {object} Response{data=domain.Guide} "Saved guide"
// @Failure 400 {object} ErrorResponseBody "Empty content"
// @Failure 403 {object} ErrorResponseBody "Invalid admin key"
// @Router /guides/{name} [put]
func (h *CatalogHandler) SaveGuide(c *gin.Context) {
	var req SaveGuideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	g, err := h.catalogService.SaveGuide(c.Request.Context(), c.Param("name"), req.Content, middleware.GetAdminUser(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, g)
}

// ListCategories handles GET /api/v1/categories
// @Summary List incident categories
// @Tags catalog
// @Produce json
// @Param active query bool false "Only active categories"
// @Success 200 {object} Response{data=[]domain.Category} "Categories"
// @Router /categories [get]
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	activeOnly, _ := strconv.ParseBool(c.Query("active"))
	RespondOK(c, h.catalogService.ListCategories(c.Request.Context(), activeOnly))
}

// ExportCategories handles GET /api/v1/categories/export
// @Summary Export incident categories as CSV
// @Description Columns match the Categorias sheet accepted by the catalog seeder
// @Tags catalog
// @Produce text/csv
// @Param active query bool false "Only active categories"
// @Success 200 {file} file "CSV file"
// @Router /categories/export [get]
func (h *CatalogHandler) ExportCategories(c *gin.Context) {
	activeOnly, _ := strconv.ParseBool(c.Query("active"))
	cats := h.catalogService.ListCategories(c.Request.Context(), activeOnly)

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", csvexport.BuildFilename("categorias", time.Now())))
	c.Status(http.StatusOK)

	if _, err := c.Writer.Write(csvexport.BOM); err != nil {
		log.Printf("CatalogHandler.ExportCategories: writing BOM: %v", err)
		return
	}
	w := csvexport.NewWriter(c.Writer)
	if err := w.WriteHeader(); err != nil {
		log.Printf("CatalogHandler.ExportCategories: writing header: %v", err)
		return
	}
	if err := w.WriteCategories(cats); err != nil {
		log.Printf("CatalogHandler.ExportCategories: writing rows: %v", err)
		return
	}
	w.Flush()
	if err := w.Error(); err != nil {
		log.Printf("CatalogHandler.ExportCategories: flushing: %v", err)
	}
}

// GetCategory handles GET /api/v1/categories/:id
// @Summary Get an incident category
// @Tags catalog
// @Produce json
// @Param id path string true "Category ID, slug or name"
// @Success 200 {object} Response{data=domain.Category} "Category"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Router /categories/{id} [get]
func (h *CatalogHandler) GetCategory(c *gin.Context) {
	cat, err := h.catalogService.GetCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, cat)
}

// CreateCategory handles POST /api/v1/categories
// @Summary Create an incident category
// @Tags catalog
// @Accept json
// @Produce json
// @Security AdminKey
// @Param body body CategoryRequest true "Category"
// @Success 201 {object} Response{data=domain.Category} "Created"
// @Router /categories [post]
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	saved, err := h.catalogService.SaveCategory(c.Request.Context(), req.toCategory(""), middleware.GetAdminUser(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, saved)
}

// UpdateCategory handles PUT /api/v1/categories/:id
// @Summary Update an incident category
// @Tags catalog
// @Accept json
// @Produce json
// @Security AdminKey
// @Param id path string true "Category ID"
// @Param body body CategoryRequest true "Category"
// @Success 200 {object} Response{data=domain.Category} "Updated"
// @Router /categories/{id} [put]
func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	saved, err := h.catalogService.SaveCategory(c.Request.Context(), req.toCategory(c.Param("id")), middleware.GetAdminUser(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, saved)
}

// DeleteCategory handles DELETE /api/v1/categories/:id
// @Summary Delete an incident category
// @Tags catalog
// @Produce json
// @Security AdminKey
// @Param id path string true "Category ID"
// @Success 200 {object} Response{data=MessageResponse} "Deleted"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Router /categories/{id} [delete]
func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	if err := h.catalogService.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, MessageResponse{Message: "category deleted"})
}

// ListFormulas handles GET /api/v1/formulas
// @Summary List formulas
// @Tags catalog
// @Produce json
// @Param active query bool false "Only active formulas"
// @Success 200 {object} Response{data=[]domain.Formula} "Formulas"
// @Router /formulas [get]
func (h *CatalogHandler) ListFormulas(c *gin.Context) {
	activeOnly, _ := strconv.ParseBool(c.Query("active"))
	RespondOK(c, h.catalogService.ListFormulas(c.Request.Context(), activeOnly))
}

// CreateFormula handles POST /api/v1/formulas
// @Summary Create a formula
// @Tags catalog
// @Accept json
// @Produce json
// @Security AdminKey
// @Param body body FormulaRequest true "Formula"
// @Success 201 {object} Response{data=domain.Formula} "Created"
// @Router /formulas [post]
func (h *CatalogHandler) CreateFormula(c *gin.Context) {
	var req FormulaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	saved, err := h.catalogService.SaveFormula(c.Request.Context(), req.toFormula(""), middleware.GetAdminUser(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, saved)
}

// UpdateFormula handles PUT /api/v1/formulas/:id
// @Summary Update a formula
// @Tags catalog
// @Accept json
// @Produce json
// @Security AdminKey
// @Param id path string true "Formula ID"
// @Param body body FormulaRequest true "Formula"
// @Success 200 {object} Response{data=domain.Formula} "Updated"
// @Router /formulas/{id} [put]
func (h *CatalogHandler) UpdateFormula(c *gin.Context) {
	var req FormulaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	saved, err := h.catalogService.SaveFormula(c.Request.Context(), req.toFormula(c.Param("id")), middleware.GetAdminUser(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, saved)
}

// DeleteFormula handles DELETE /api/v1/formulas/:id
// @Summary Delete a formula
// @Tags catalog
// @Produce json
// @Security AdminKey
// @Param id path string true "Formula ID"
// @Success 200 {object} Response{data=MessageResponse} "Deleted"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Router /formulas/{id} [delete]
func (h *CatalogHandler) DeleteFormula(c *gin.Context) {
	if err := h.catalogService.DeleteFormula(c.Request.Context(), c.Param("id")); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, MessageResponse{Message: "formula deleted"})
}

func (r CategoryRequest) toCategory(id string) domain.Category {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	items := r.Items
	if items == nil {
		items = []string{}
	}
	return domain.Category{
		ID:       id,
		Name:     r.Name,
		Slug:     r.Slug,
		Group:    r.Group,
		IsActive: active,
		Order:    r.Order,
		Items:    items,
		Warning:  r.Warning,
	}
}

func (r FormulaRequest) toFormula(id string) domain.Formula {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return domain.Formula{
		ID:          id,
		Name:        r.Name,
		Expression:  r.Expression,
		Description: r.Description,
		IsActive:    active,
	}
}
