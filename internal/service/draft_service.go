package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"cmcreport/internal/domain"
	"cmcreport/internal/port"
)

// CollectionDrafts holds server-side drafts in the document store.
const CollectionDrafts = "drafts"

// CategoryLookup resolves an incident type to its catalog entry.
type CategoryLookup interface {
	Category(key string) (*domain.Category, error)
}

// CreateDraftInput is the DTO for starting a draft.
type CreateDraftInput struct {
	IncidentName string
	Title        string
}

// UpdateSlotInput patches a slot; nil fields are left unchanged.
type UpdateSlotInput struct {
	Title       *string
	Rotation    *int
	Orientation *string
	Size        *string
}

// AttachFileInput is the DTO for uploading a slot image.
type AttachFileInput struct {
	Name string
	Data []byte
}

// DraftService manages reports that are assembled over several requests.
type DraftService interface {
	Create(ctx context.Context, input CreateDraftInput) (*domain.Draft, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Draft, error)
	AddSlot(ctx context.Context, id uuid.UUID, title string) (*domain.EvidenceSlot, error)
	UpdateSlot(ctx context.Context, id uuid.UUID, slotID string, input UpdateSlotInput) (*domain.EvidenceSlot, error)
	AttachFile(ctx context.Context, id uuid.UUID, slotID string, input AttachFileInput) (*domain.EvidenceSlot, error)
	DeleteSlot(ctx context.Context, id uuid.UUID, slotID string) (*domain.Draft, error)
	Generate(ctx context.Context, id uuid.UUID, meta domain.ReportMetadata) (*domain.GeneratedReport, error)
}

type draftService struct {
	docs       port.DocumentStore
	storage    port.ObjectStorage
	categories CategoryLookup
	reports    ReportService
	bucket     string
	maxBytes   int64
	now        func() time.Time

	// mu serializes read-modify-write cycles on draft documents.
	mu sync.Mutex
}

// NewDraftService creates a new DraftService implementation.
func NewDraftService(
	docs port.DocumentStore,
	storage port.ObjectStorage,
	categories CategoryLookup,
	reports ReportService,
	bucket string,
	maxBytes int64,
) DraftService {
	return &draftService{
		docs:       docs,
		storage:    storage,
		categories: categories,
		reports:    reports,
		bucket:     bucket,
		maxBytes:   maxBytes,
		now:        time.Now,
	}
}

// SlotFileKey is the object key of a draft slot image.
func SlotFileKey(draftID uuid.UUID, slotID string) string {
	return fmt.Sprintf("drafts/%s/slots/%s", draftID, slotID)
}

func (s *draftService) Create(ctx context.Context, input CreateDraftInput) (*domain.Draft, error) {
	incident := strings.TrimSpace(input.IncidentName)
	var items []string
	if incident != "" && s.categories != nil {
		if c, err := s.categories.Category(incident); err == nil {
			items = c.Items
		} else if !errors.Is(err, domain.ErrNotFound) {
			log.Printf("draftService.Create: category lookup for %q failed: %v", incident, err)
		}
	}

	now := s.now().UTC()
	d := &domain.Draft{
		ID:           uuid.New(),
		IncidentName: incident,
		Title:        strings.TrimSpace(input.Title),
		Slots:        domain.NewSlotList(items),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.save(ctx, d, false); err != nil {
		return nil, err
	}
	log.Printf("draftService.Create: draft %s for %q with %d slots", d.ID, incident, d.Slots.Len())
	return d, nil
}

func (s *draftService) Get(ctx context.Context, id uuid.UUID) (*domain.Draft, error) {
	return s.load(ctx, id)
}

func (s *draftService) AddSlot(ctx context.Context, id uuid.UUID, title string) (*domain.EvidenceSlot, error) {
	var added domain.EvidenceSlot
	err := s.modify(ctx, id, func(d *domain.Draft) error {
		added = d.Slots.Add(strings.TrimSpace(title))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &added, nil
}

func (s *draftService) UpdateSlot(ctx context.Context, id uuid.UUID, slotID string, input UpdateSlotInput) (*domain.EvidenceSlot, error) {
	var updated domain.EvidenceSlot
	err := s.modify(ctx, id, func(d *domain.Draft) error {
		slot, err := d.Slots.Get(slotID)
		if err != nil {
			return err
		}
		if input.Title != nil {
			slot.Title = strings.TrimSpace(*input.Title)
		}
		if input.Rotation != nil {
			if err := domain.ValidateRotation(*input.Rotation); err != nil {
				return err
			}
			slot.Rotation = ((*input.Rotation % 360) + 360) % 360
		}
		if input.Orientation != nil {
			slot.Orientation = domain.Orientation(*input.Orientation)
		}
		if input.Size != nil {
			slot.Size = domain.SizeClass(*input.Size)
		}
		if err := d.Slots.Update(slot); err != nil {
			return err
		}
		updated, _ = d.Slots.Get(slotID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *draftService) AttachFile(ctx context.Context, id uuid.UUID, slotID string, input AttachFileInput) (*domain.EvidenceSlot, error) {
	file, err := NewEvidenceFile(input.Name, input.Data, s.maxBytes)
	if err != nil {
		return nil, err
	}
	file.StorageKey = SlotFileKey(id, slotID)

	var updated domain.EvidenceSlot
	err = s.modify(ctx, id, func(d *domain.Draft) error {
		slot, err := d.Slots.Get(slotID)
		if err != nil {
			return err
		}
		if _, err := s.storage.Upload(ctx, port.UploadInput{
			Bucket:      s.bucket,
			Key:         file.StorageKey,
			Body:        bytes.NewReader(file.Data),
			ContentType: file.ContentType,
			Size:        file.Size,
		}); err != nil {
			log.Printf("draftService.AttachFile: upload %s failed: %v", file.StorageKey, err)
			return fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
		}
		stored := *file
		stored.Data = nil
		slot.File = &stored
		if err := d.Slots.Update(slot); err != nil {
			return err
		}
		updated = slot
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Printf("draftService.AttachFile: %s (%s, %d bytes) attached to %s/%s",
		file.Name, file.ContentType, file.Size, id, slotID)
	return &updated, nil
}

func (s *draftService) DeleteSlot(ctx context.Context, id uuid.UUID, slotID string) (*domain.Draft, error) {
	var removed *domain.EvidenceFile
	var out *domain.Draft
	err := s.modify(ctx, id, func(d *domain.Draft) error {
		slot, err := d.Slots.Get(slotID)
		if err != nil {
			return err
		}
		removed = slot.File
		if err := d.Slots.Delete(slotID); err != nil {
			return err
		}
		out = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	if removed != nil && removed.StorageKey != "" {
		if err := s.storage.Delete(ctx, s.bucket, removed.StorageKey); err != nil {
			log.Printf("draftService.DeleteSlot: removing %s failed: %v", removed.StorageKey, err)
		}
	}
	return out, nil
}

// Generate loads every attached image and builds the report. Metadata fields
// left empty fall back to the draft's own title and incident.
func (s *draftService) Generate(ctx context.Context, id uuid.UUID, meta domain.ReportMetadata) (*domain.GeneratedReport, error) {
	d, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(meta.Title) == "" {
		meta.Title = d.Title
	}
	if strings.TrimSpace(meta.IncidentName) == "" {
		meta.IncidentName = d.IncidentName
	}

	slots := d.Slots.Slots()
	for i := range slots {
		f := slots[i].File
		if f == nil || f.StorageKey == "" {
			slots[i].File = nil
			continue
		}
		data, err := s.storage.Download(ctx, s.bucket, f.StorageKey)
		if err != nil {
			log.Printf("draftService.Generate: loading %s failed: %v", f.StorageKey, err)
			return nil, fmt.Errorf("%w: slot %q: %v", domain.ErrInput, slots[i].Title, err)
		}
		loaded := *f
		loaded.Data = data
		slots[i].File = &loaded
	}

	return s.reports.Generate(ctx, GenerateReportInput{Slots: slots, Metadata: meta})
}

func (s *draftService) modify(ctx context.Context, id uuid.UUID, fn func(d *domain.Draft) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if err := fn(d); err != nil {
		return err
	}
	d.UpdatedAt = s.now().UTC()
	return s.save(ctx, d, true)
}

func (s *draftService) load(ctx context.Context, id uuid.UUID) (*domain.Draft, error) {
	doc, err := s.docs.Get(ctx, CollectionDrafts, id.String())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrDraftNotFound
		}
		log.Printf("draftService.load: %s: %v", id, err)
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	d, err := draftFromFields(doc.Fields)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding draft %s: %v", domain.ErrPersistence, id, err)
	}
	d.ID = id
	return d, nil
}

func (s *draftService) save(ctx context.Context, d *domain.Draft, merge bool) error {
	fields, err := draftFields(d)
	if err != nil {
		return fmt.Errorf("encoding draft %s: %w", d.ID, err)
	}
	if err := s.docs.Save(ctx, CollectionDrafts, d.ID.String(), fields, port.SaveOptions{Merge: merge}); err != nil {
		log.Printf("draftService.save: %s: %v", d.ID, err)
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return nil
}

// draftFields flattens a draft into JSON-compatible document fields.
func draftFields(d *domain.Draft) (map[string]any, error) {
	raw, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	delete(fields, "id")
	return fields, nil
}

func draftFromFields(fields map[string]any) (*domain.Draft, error) {
	raw, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}
	d := &domain.Draft{Slots: domain.NewSlotList(nil)}
	if err := json.Unmarshal(raw, d); err != nil {
		return nil, err
	}
	return d, nil
}
