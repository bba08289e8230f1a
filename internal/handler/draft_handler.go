package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"cmcreport/internal/domain"
	"cmcreport/internal/service"
)

// DraftHandler handles server-side report drafts.
type DraftHandler struct {
	draftService service.DraftService
	maxFileBytes int64
}

// NewDraftHandler creates a new DraftHandler.
func NewDraftHandler(draftService service.DraftService, maxFileBytes int64) *DraftHandler {
	return &DraftHandler{draftService: draftService, maxFileBytes: maxFileBytes}
}

// Create handles POST /api/v1/drafts
// @Summary Start a draft
// @Description Creates a draft with one slot per evidence item of the incident type
// @Tags drafts
// @Accept json
// @Produce json
// @Param body body CreateDraftRequest true "Draft"
// @Success 201 {object} Response{data=domain.Draft} "Draft created"
// @Failure 503 {object} ErrorResponseBody "Storage unavailable"
// @Router /drafts [post]
func (h *DraftHandler) Create(c *gin.Context) {
	var req CreateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	d, err := h.draftService.Create(c.Request.Context(), service.CreateDraftInput{
		IncidentName: req.IncidentName,
		Title:        req.Title,
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, d)
}

// Get handles GET /api/v1/drafts/:id
// @Summary Get a draft
// @Tags drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} Response{data=domain.Draft} "Draft"
// @Failure 404 {object} ErrorResponseBody "Draft not found"
// @Router /drafts/{id} [get]
func (h *DraftHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "draft")
	if !ok {
		return
	}

	d, err := h.draftService.Get(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, d)
}

// AddSlot handles POST /api/v1/drafts/:id/slots
// @Summary Add an evidence slot
// @Tags drafts
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param body body AddSlotRequest false "Slot"
// @Success 201 {object} Response{data=domain.EvidenceSlot} "Slot added"
// @Failure 404 {object} ErrorResponseBody "Draft not found"
// @Router /drafts/{id}/slots [post]
func (h *DraftHandler) AddSlot(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "draft")
	if !ok {
		return
	}
	var req AddSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	slot, err := h.draftService.AddSlot(c.Request.Context(), id, req.Title)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, slot)
}

// UpdateSlot handles PATCH /api/v1/drafts/:id/slots/:slotId
// @Summary Update an evidence slot
// @Description Changes title, rotation (multiple of 90), orientation or size class
// @Tags drafts
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param slotId path string true "Slot ID"
// @Param body body UpdateSlotRequest true "Fields to change"
// @Success 200 {object} Response{data=domain.EvidenceSlot} "Slot updated"
// @Failure 400 {object} ErrorResponseBody "Invalid rotation"
// @Failure 404 {object} ErrorResponseBody "Draft or slot not found"
// @Router /drafts/{id}/slots/{slotId} [patch]
func (h *DraftHandler) UpdateSlot(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "draft")
	if !ok {
		return
	}
	var req UpdateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	slot, err := h.draftService.UpdateSlot(c.Request.Context(), id, c.Param("slotId"), service.UpdateSlotInput{
		Title:       req.Title,
		Rotation:    req.Rotation,
		Orientation: req.Orientation,
		Size:        req.Size,
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, slot)
}

// AttachFile handles PUT /api/v1/drafts/:id/slots/:slotId/file
// @Summary Attach an image to a slot
// @Tags drafts
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Draft ID"
// @Param slotId path string true "Slot ID"
// @Param file formData file true "Image (jpg, png, gif, webp, bmp, tiff)"
// @Success 200 {object} Response{data=domain.EvidenceSlot} "Image attached"
// @Failure 400 {object} ErrorResponseBody "Missing file or unsupported type"
// @Failure 413 {object} ErrorResponseBody "File too large"
// @Router /drafts/{id}/slots/{slotId}/file [put]
func (h *DraftHandler) AttachFile(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "draft")
	if !ok {
		return
	}
	header, err := c.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	evidence, err := readEvidence(header, h.maxFileBytes)
	if err != nil {
		HandleError(c, err)
		return
	}

	slot, err := h.draftService.AttachFile(c.Request.Context(), id, c.Param("slotId"), service.AttachFileInput{
		Name: evidence.Name,
		Data: evidence.Data,
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, slot)
}

// DeleteSlot handles DELETE /api/v1/drafts/:id/slots/:slotId
// @Summary Delete an evidence slot
// @Description Deleting the only slot replaces it with an empty primary slot
// @Tags drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Param slotId path string true "Slot ID"
// @Success 200 {object} Response{data=domain.Draft} "Updated draft"
// @Failure 404 {object} ErrorResponseBody "Draft or slot not found"
// @Router /drafts/{id}/slots/{slotId} [delete]
func (h *DraftHandler) DeleteSlot(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "draft")
	if !ok {
		return
	}

	d, err := h.draftService.DeleteSlot(c.Request.Context(), id, c.Param("slotId"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, d)
}

// Generate handles POST /api/v1/drafts/:id/report
// @Summary Generate the draft's report
// @Tags drafts
// @Accept json
// @Produce application/vnd.openxmlformats-officedocument.wordprocessingml.document
// @Param id path string true "Draft ID"
// @Param body body domain.ReportMetadata false "Metadata overrides"
// @Success 200 {file} binary "Generated report"
// @Failure 400 {object} ErrorResponseBody "No evidence"
// @Failure 404 {object} ErrorResponseBody "Draft not found"
// @Router /drafts/{id}/report [post]
func (h *DraftHandler) Generate(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "draft")
	if !ok {
		return
	}
	var meta domain.ReportMetadata
	if err := c.ShouldBindJSON(&meta); err != nil && !errors.Is(err, io.EOF) {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	report, err := h.draftService.Generate(c.Request.Context(), id, meta)
	if err != nil {
		HandleError(c, err)
		return
	}
	sendReport(c, report)
}
