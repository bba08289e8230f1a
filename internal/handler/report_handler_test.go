package handler_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"cmcreport/internal/domain"
	"cmcreport/internal/handler"
	"cmcreport/internal/service"
	"cmcreport/mocks"
)

func newReportHandler() (*handler.ReportHandler, *mocks.MockReportService) {
	mockSvc := new(mocks.MockReportService)
	return handler.NewReportHandler(mockSvc, 0, 1<<20), mockSvc
}

func TestReportHandler_Generate_Success(t *testing.T) {
	h, mockSvc := newReportHandler()
	img := pngBytes(t, 4, 3)

	report := &domain.GeneratedReport{
		Bytes:       []byte("PK-docx"),
		Filename:    "REPORTE_VIAJE_REALIZADO_1.docx",
		ContentType: domain.MimeDocx,
		Location:    "https://bucket/reports/REPORTE_VIAJE_REALIZADO_1.docx",
	}
	mockSvc.On("Generate", mock.Anything, mock.MatchedBy(func(in service.GenerateReportInput) bool {
		if len(in.Slots) != 2 || in.Metadata.IncidentName != "VIAJE REALIZADO" {
			return false
		}
		first, second := in.Slots[0], in.Slots[1]
		return first.ID == "s1" && first.Rotation == 270 &&
			first.Orientation == domain.OrientationVertical && first.Size == domain.SizeGrande &&
			first.File != nil && first.File.ContentType == domain.MimePNG && string(first.File.Data) == string(img) &&
			second.ID == "s2" && second.File == nil && second.Size == domain.SizeNormal
	})).Return(report, nil)

	body, ct := multipartBody(t, map[string]string{
		"metadata": `{"title":"REPORTE","incident_name":"VIAJE REALIZADO"}`,
		"slots":    `[{"id":"s1","title":"Captura","rotation":-90,"orientation":"vertical","size":"grande"},{"id":"s2","title":"Otra"}]`,
	}, formFile{field: "file_s1", name: "captura.png", data: img})
	c, w := newContext(http.MethodPost, "/api/v1/reports", body, ct)

	h.Generate(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.MimeDocx, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), `filename="REPORTE_VIAJE_REALIZADO_1.docx"`)
	assert.Equal(t, report.Location, w.Header().Get("X-Report-Location"))
	assert.Equal(t, "PK-docx", w.Body.String())
	mockSvc.AssertExpectations(t)
}

func TestReportHandler_Generate_NoEvidence(t *testing.T) {
	h, mockSvc := newReportHandler()
	mockSvc.On("Generate", mock.Anything, mock.Anything).Return(nil, domain.ErrNoEvidence)

	body, ct := multipartBody(t, map[string]string{"slots": `[{"id":"s1"}]`})
	c, w := newContext(http.MethodPost, "/api/v1/reports", body, ct)

	h.Generate(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, "NO_EVIDENCE", resp.Error.Code)
	assert.Equal(t, "upload at least one image", resp.Error.Message)
}

func TestReportHandler_Generate_BadInput(t *testing.T) {
	tests := []struct {
		name   string
		fields map[string]string
		files  []formFile
		status int
		code   string
	}{
		{"bad metadata", map[string]string{"metadata": "{", "slots": "[]"}, nil, http.StatusBadRequest, "INVALID_METADATA"},
		{"bad slots", map[string]string{"slots": `{"id":"x"}`}, nil, http.StatusBadRequest, "INVALID_SLOTS"},
		{"bad rotation", map[string]string{"slots": `[{"id":"s1","rotation":45}]`}, nil, http.StatusBadRequest, "INVALID_SLOT"},
		{
			"not an image",
			map[string]string{"slots": `[{"id":"s1"}]`},
			[]formFile{{field: "file_s1", name: "notes.txt", data: []byte("hello world")}},
			http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mockSvc := newReportHandler()
			body, ct := multipartBody(t, tt.fields, tt.files...)
			c, w := newContext(http.MethodPost, "/api/v1/reports", body, ct)

			h.Generate(c)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.code, decode(t, w).Error.Code)
			mockSvc.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
		})
	}
}

func TestReportHandler_Generate_NotMultipart(t *testing.T) {
	h, _ := newReportHandler()
	c, w := newContext(http.MethodPost, "/api/v1/reports", jsonBody(t, map[string]any{}), "application/json")

	h.Generate(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_FORM", decode(t, w).Error.Code)
}

func TestReportHandler_Submit(t *testing.T) {
	h, mockSvc := newReportHandler()
	job := &domain.ReportJob{ID: uuid.New(), State: domain.ReportStateIdle, Total: 1}
	mockSvc.On("Submit", mock.Anything, mock.AnythingOfType("service.GenerateReportInput")).Return(job, nil)

	body, ct := multipartBody(t, map[string]string{"slots": `[{"id":"s1"}]`},
		formFile{field: "file_s1", name: "a.png", data: pngBytes(t, 2, 2)})
	c, w := newContext(http.MethodPost, "/api/v1/reports/jobs", body, ct)

	h.Submit(c)

	assert.Equal(t, http.StatusAccepted, w.Code)
	resp := decode(t, w)
	assert.True(t, resp.Success)
	data := resp.Data.(map[string]any)
	assert.Equal(t, job.ID.String(), data["id"])
	assert.Equal(t, "idle", data["state"])
	mockSvc.AssertExpectations(t)
}

func TestReportHandler_Job(t *testing.T) {
	h, mockSvc := newReportHandler()
	id := uuid.New()
	mockSvc.On("Job", mock.Anything, id).Return(&domain.ReportJob{ID: id, State: domain.ReportStateProcessing, Done: 1, Total: 2}, nil)

	c, w := newContext(http.MethodGet, "/api/v1/reports/jobs/"+id.String(), nil, "")
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	h.Job(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w).Data.(map[string]any)
	assert.Equal(t, "processing", data["state"])
	assert.Equal(t, float64(1), data["done"])
}

func TestReportHandler_Job_InvalidID(t *testing.T) {
	h, mockSvc := newReportHandler()

	c, w := newContext(http.MethodGet, "/api/v1/reports/jobs/nope", nil, "")
	c.Params = gin.Params{{Key: "id", Value: "nope"}}

	h.Job(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_ID", decode(t, w).Error.Code)
	mockSvc.AssertNotCalled(t, "Job", mock.Anything, mock.Anything)
}

func TestReportHandler_Download(t *testing.T) {
	h, mockSvc := newReportHandler()
	ready, pending := uuid.New(), uuid.New()
	mockSvc.On("Download", mock.Anything, ready).Return(&domain.GeneratedReport{Bytes: []byte("docx"), Filename: "r.docx"}, nil)
	mockSvc.On("Download", mock.Anything, pending).Return(nil, domain.ErrJobNotReady)

	c, w := newContext(http.MethodGet, "/", nil, "")
	c.Params = gin.Params{{Key: "id", Value: ready.String()}}
	h.Download(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.MimeDocx, w.Header().Get("Content-Type"))
	assert.Equal(t, "docx", w.Body.String())

	c, w = newContext(http.MethodGet, "/", nil, "")
	c.Params = gin.Params{{Key: "id", Value: pending.String()}}
	h.Download(c)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "JOB_NOT_READY", decode(t, w).Error.Code)
}
