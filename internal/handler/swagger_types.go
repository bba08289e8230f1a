package handler

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// --- Request Types ---

// CreateDraftRequest represents the create draft request body.
type CreateDraftRequest struct {
	IncidentName string `json:"incident_name" example:"VIAJE REALIZADO"`
	Title        string `json:"title" example:"REPORTE CMC HD"`
}

// AddSlotRequest represents the add slot request body.
type AddSlotRequest struct {
	Title string `json:"title" example:"Captura del viaje"`
}

// UpdateSlotRequest represents the update slot request body. Omitted fields
// are left unchanged.
type UpdateSlotRequest struct {
	Title       *string `json:"title" example:"Comprobante #4411"`
	Rotation    *int    `json:"rotation" example:"90"`
	Orientation *string `json:"orientation" example:"vertical"`
	Size        *string `json:"size" example:"grande"`
}

// ReportSlotRequest documents one element of the multipart "slots" field.
type ReportSlotRequest struct {
	ID          string `json:"id" example:"9b2f0c1e-5d0a-4b8e-9a51-0d7f3c2e6a10"`
	Title       string `json:"title" example:"Captura del viaje"`
	Rotation    int    `json:"rotation" example:"0"`
	Orientation string `json:"orientation" example:"horizontal"`
	Size        string `json:"size" example:"normal"`
}

// SaveGuideRequest represents the save guide request body.
type SaveGuideRequest struct {
	Content string `json:"content" binding:"required" example:"1. Verificar el viaje en el panel..."`
}

// CategoryRequest represents the create/update category request body.
type CategoryRequest struct {
	Name     string   `json:"name" binding:"required" example:"VIAJE REALIZADO"`
	Slug     string   `json:"slug" example:"viaje-realizado"`
	Group    string   `json:"group" example:"Viajes"`
	IsActive *bool    `json:"is_active" example:"true"`
	Order    int      `json:"order" example:"1"`
	Items    []string `json:"items"`
	Warning  string   `json:"warning"`
}

// FormulaRequest represents the create/update formula request body.
type FormulaRequest struct {
	Name        string `json:"name" binding:"required" example:"Tarifa dinámica"`
	Expression  string `json:"expression" binding:"required" example:"base * multiplicador"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active" example:"true"`
}

// --- Response Types ---

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string            `json:"status" example:"degraded"`
	Checks map[string]string `json:"checks,omitempty"`
	Error  string            `json:"error,omitempty" example:"database not reachable"`
}

// MessageResponse represents a simple message response.
type MessageResponse struct {
	Message string `json:"message" example:"operation completed successfully"`
}

// GuideResponse represents a resolved guide.
type GuideResponse struct {
	Name    string `json:"name" example:"VIAJE REALIZADO - COBRO DOBLE"`
	Content string `json:"content" example:"1. Verificar el viaje en el panel..."`
}

// --- Generic Response Wrappers ---

// Response wraps a successful response with data.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
