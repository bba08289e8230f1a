package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"cmcreport/internal/domain"
	"cmcreport/internal/service"
)

const (
	formMetadata   = "metadata"
	formSlots      = "slots"
	formFilePrefix = "file_"
	multipartMem   = 32 << 20
)

// ReportHandler handles synchronous and queued report generation.
type ReportHandler struct {
	reportService  service.ReportService
	maxUploadBytes int64
	maxFileBytes   int64
}

// NewReportHandler creates a new ReportHandler. Zero limits disable the
// corresponding check.
func NewReportHandler(reportService service.ReportService, maxUploadBytes, maxFileBytes int64) *ReportHandler {
	return &ReportHandler{
		reportService:  reportService,
		maxUploadBytes: maxUploadBytes,
		maxFileBytes:   maxFileBytes,
	}
}

// Generate handles POST /api/v1/reports
// @Summary Generate a report
// @Description Builds a .docx evidence report from slot definitions and their images
// @Tags reports
// @Accept multipart/form-data
// @Produce application/vnd.openxmlformats-officedocument.wordprocessingml.document
// @Param metadata formData string false "Report metadata JSON" example({"title":"REPORTE CMC HD","incident_name":"VIAJE REALIZADO"})
// @Param slots formData string true "Evidence slots JSON array"
// @Param file_{slotID} formData file false "Image for the slot with that ID"
// @Success 200 {file} binary "Generated report"
// @Failure 400 {object} ErrorResponseBody "No evidence or malformed request"
// @Failure 422 {object} ErrorResponseBody "Unreadable image"
// @Failure 500 {object} ErrorResponseBody "Report generation failed"
// @Router /reports [post]
func (h *ReportHandler) Generate(c *gin.Context) {
	input, ok := h.parseReportForm(c)
	if !ok {
		return
	}

	report, err := h.reportService.Generate(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	sendReport(c, report)
}

// Submit handles POST /api/v1/reports/jobs
// @Summary Queue a report
// @Description Same input as POST /reports; the report is generated in the background
// @Tags reports
// @Accept multipart/form-data
// @Produce json
// @Param metadata formData string false "Report metadata JSON"
// @Param slots formData string true "Evidence slots JSON array"
// @Success 202 {object} Response{data=domain.ReportJob} "Job queued"
// @Failure 400 {object} ErrorResponseBody "No evidence or malformed request"
// @Router /reports/jobs [post]
func (h *ReportHandler) Submit(c *gin.Context) {
	input, ok := h.parseReportForm(c)
	if !ok {
		return
	}

	job, err := h.reportService.Submit(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondAccepted(c, job)
}

// Job handles GET /api/v1/reports/jobs/:id
// @Summary Get report job status
// @Tags reports
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} Response{data=domain.ReportJob} "Job status"
// @Failure 404 {object} ErrorResponseBody "Job not found"
// @Router /reports/jobs/{id} [get]
func (h *ReportHandler) Job(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "job")
	if !ok {
		return
	}

	job, err := h.reportService.Job(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, job)
}

// Download handles GET /api/v1/reports/jobs/:id/download
// @Summary Download a finished report
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.wordprocessingml.document
// @Param id path string true "Job ID"
// @Success 200 {file} binary "Generated report"
// @Failure 404 {object} ErrorResponseBody "Job not found"
// @Failure 409 {object} ErrorResponseBody "Job not finished"
// @Router /reports/jobs/{id}/download [get]
func (h *ReportHandler) Download(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "job")
	if !ok {
		return
	}

	report, err := h.reportService.Download(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	sendReport(c, report)
}

// slotPayload is the wire form of one evidence slot.
type slotPayload struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Rotation    int    `json:"rotation"`
	Orientation string `json:"orientation"`
	Size        string `json:"size"`
}

// parseReportForm reads the multipart report request. On failure the error
// response has already been written.
func (h *ReportHandler) parseReportForm(c *gin.Context) (service.GenerateReportInput, bool) {
	var input service.GenerateReportInput

	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	}
	if err := c.Request.ParseMultipartForm(multipartMem); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			HandleError(c, domain.ErrFileTooLarge)
			return input, false
		}
		RespondError(c, http.StatusBadRequest, "INVALID_FORM", "expected multipart/form-data")
		return input, false
	}

	if raw := c.Request.FormValue(formMetadata); raw != "" {
		if err := json.Unmarshal([]byte(raw), &input.Metadata); err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_METADATA", "metadata must be a JSON object")
			return input, false
		}
	}

	var payload []slotPayload
	if raw := c.Request.FormValue(formSlots); raw != "" {
		if err := json.Unmarshal([]byte(raw), &payload); err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_SLOTS", "slots must be a JSON array")
			return input, false
		}
	}

	files := map[string]*multipart.FileHeader{}
	if c.Request.MultipartForm != nil {
		for field, headers := range c.Request.MultipartForm.File {
			if strings.HasPrefix(field, formFilePrefix) && len(headers) > 0 {
				files[strings.TrimPrefix(field, formFilePrefix)] = headers[0]
			}
		}
	}

	for _, p := range payload {
		slot := domain.NewSlot(p.Title)
		if p.ID != "" {
			slot.ID = p.ID
		}
		if err := domain.ValidateRotation(p.Rotation); err != nil {
			HandleError(c, err)
			return input, false
		}
		slot.Rotation = ((p.Rotation % 360) + 360) % 360
		slot.Orientation = domain.ParseOrientation(p.Orientation)
		slot.Size = domain.ParseSizeClass(p.Size)

		if header, ok := files[slot.ID]; ok {
			file, err := readEvidence(header, h.maxFileBytes)
			if err != nil {
				log.Printf("reportHandler.parseReportForm: slot %s: %v", slot.ID, err)
				HandleError(c, err)
				return input, false
			}
			slot.File = file
		}
		input.Slots = append(input.Slots, slot)
	}
	return input, true
}

func readEvidence(header *multipart.FileHeader, maxBytes int64) (*domain.EvidenceFile, error) {
	if maxBytes > 0 && header.Size > maxBytes {
		return nil, domain.ErrFileTooLarge
	}
	f, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", domain.ErrInput, header.Filename, err)
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", domain.ErrInput, header.Filename, err)
	}
	return service.NewEvidenceFile(header.Filename, data, maxBytes)
}

func sendReport(c *gin.Context, report *domain.GeneratedReport) {
	contentType := report.ContentType
	if contentType == "" {
		contentType = domain.MimeDocx
	}
	if report.Location != "" {
		c.Header("X-Report-Location", report.Location)
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.Filename))
	c.Data(http.StatusOK, contentType, report.Bytes)
}

func parseUUIDParam(c *gin.Context, param, what string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid "+what+" ID")
		return uuid.Nil, false
	}
	return id, true
}
