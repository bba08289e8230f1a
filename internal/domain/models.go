package domain

import (
	"time"

	"github.com/google/uuid"
)

// EvidenceFile is the binary image attached to a slot. Data may be empty when
// the bytes live in object storage under StorageKey and have not been loaded.
type EvidenceFile struct {
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	StorageKey  string `json:"storage_key,omitempty"`
	Data        []byte `json:"-"`
}

// EvidenceSlot is one image placeholder in a report.
type EvidenceSlot struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Rotation    int           `json:"rotation"`
	Orientation Orientation   `json:"orientation"`
	Size        SizeClass     `json:"size"`
	File        *EvidenceFile `json:"file,omitempty"`
}

// HasFile reports whether the slot takes part in report generation.
func (s *EvidenceSlot) HasFile() bool {
	return s.File != nil
}

// ProcessedImage is a document-ready image plus the pixel size it should be
// displayed at.
type ProcessedImage struct {
	Buffer        []byte `json:"-"`
	MimeType      string `json:"mime_type"`
	DisplayWidth  int    `json:"display_width"`
	DisplayHeight int    `json:"display_height"`
}

// Defaults applied by TargetDimensions.WithDefaults.
const (
	DefaultRenderScale = 1.0
	DefaultQuality     = 0.8
)

// TargetDimensions describes the box a single image must fit into. All sizes
// are pixels; RenderScale multiplies the internal render resolution.
type TargetDimensions struct {
	DisplayWidth  int     `json:"display_width"`
	DisplayHeight int     `json:"display_height"`
	RenderScale   float64 `json:"render_scale"`
	MinWidth      int     `json:"min_width"`
	MinHeight     int     `json:"min_height"`
	Quality       float64 `json:"quality"`
}

// WithDefaults fills zero fields with the documented defaults and clamps
// invalid values.
func (t TargetDimensions) WithDefaults() TargetDimensions {
	if t.DisplayWidth < 1 {
		t.DisplayWidth = 1
	}
	if t.DisplayHeight < 1 {
		t.DisplayHeight = 1
	}
	if t.RenderScale < 1 {
		t.RenderScale = DefaultRenderScale
	}
	if t.MinWidth < 0 {
		t.MinWidth = 0
	}
	if t.MinHeight < 0 {
		t.MinHeight = 0
	}
	if t.Quality <= 0 || t.Quality > 1 {
		t.Quality = DefaultQuality
	}
	return t
}

// ReportMetadata carries the header fields of a report.
type ReportMetadata struct {
	Title        string `json:"title"`
	IncidentName string `json:"incident_name"`
	TicketID     string `json:"ticket_id,omitempty"`
}

// GeneratedReport is a serialized report ready to be saved or downloaded.
type GeneratedReport struct {
	Bytes       []byte `json:"-"`
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	ImageCount  int    `json:"image_count"`
	Location    string `json:"location,omitempty"`
}

// ReportJob tracks an asynchronous report generation.
type ReportJob struct {
	ID         uuid.UUID   `json:"id"`
	State      ReportState `json:"state"`
	Done       int         `json:"done"`
	Total      int         `json:"total"`
	Error      string      `json:"error,omitempty"`
	Filename   string      `json:"filename,omitempty"`
	Location   string      `json:"location,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
	FinishedAt *time.Time  `json:"finished_at,omitempty"`
}

// Draft is a server-held report in progress.
type Draft struct {
	ID           uuid.UUID `json:"id"`
	IncidentName string    `json:"incident_name"`
	Title        string    `json:"title"`
	Slots        *SlotList `json:"slots"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// StoredDocument is a schemaless record in the document store.
type StoredDocument struct {
	Collection string         `db:"collection" json:"collection"`
	ID         string         `db:"id" json:"id"`
	Fields     map[string]any `db:"-" json:"fields"`
	UpdatedAt  time.Time      `db:"updated_at" json:"updated_at"`
}

// Guide is an editable procedure text for an incident type.
type Guide struct {
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Category    string    `json:"category"`
	Audiences   []string  `json:"audiences"`
	IsPublished bool      `json:"is_published"`
	UpdatedAt   time.Time `json:"updated_at"`
	UpdatedBy   string    `json:"updated_by"`
}

// Category is an incident type selectable by agents.
type Category struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Slug     string   `json:"slug"`
	Group    string   `json:"group"`
	IsActive bool     `json:"is_active"`
	Order    int      `json:"order"`
	Items    []string `json:"items"`
	Warning  string   `json:"warning,omitempty"`
}

// Formula is a stored calculator expression.
type Formula struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Expression  string `json:"expression"`
	Description string `json:"description"`
	IsActive    bool   `json:"is_active"`
}
