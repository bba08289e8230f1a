package domain

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Default slot captions.
const (
	DefaultSlotTitle    = "Evidencia"
	PrimarySlotTitle    = "Evidencia Principal"
	AdditionalSlotTitle = "Nueva Evidencia"
)

// NewSlot returns an empty horizontal/normal slot with a fresh ID.
func NewSlot(title string) EvidenceSlot {
	if title == "" {
		title = DefaultSlotTitle
	}
	return EvidenceSlot{
		ID:          uuid.NewString(),
		Title:       title,
		Orientation: OrientationHorizontal,
		Size:        SizeNormal,
	}
}

// SlotList is an ordered list of evidence slots that is never empty.
// It is not safe for concurrent use.
type SlotList struct {
	slots []EvidenceSlot
}

// NewSlotList creates one slot per required item, or a single primary slot
// when the incident type lists none.
func NewSlotList(items []string) *SlotList {
	l := &SlotList{}
	for _, item := range items {
		l.slots = append(l.slots, NewSlot(item))
	}
	if len(l.slots) == 0 {
		l.slots = append(l.slots, NewSlot(PrimarySlotTitle))
	}
	return l
}

// Len returns the number of slots.
func (l *SlotList) Len() int { return len(l.slots) }

// Slots returns a copy of the slots in order.
func (l *SlotList) Slots() []EvidenceSlot {
	out := make([]EvidenceSlot, len(l.slots))
	copy(out, l.slots)
	return out
}

// Add appends a new empty slot and returns it.
func (l *SlotList) Add(title string) EvidenceSlot {
	if title == "" {
		title = AdditionalSlotTitle
	}
	s := NewSlot(title)
	l.slots = append(l.slots, s)
	return s
}

// Get returns the slot with the given ID.
func (l *SlotList) Get(id string) (EvidenceSlot, error) {
	i := l.index(id)
	if i < 0 {
		return EvidenceSlot{}, ErrSlotNotFound
	}
	return l.slots[i], nil
}

// Update replaces the slot with the same ID in place.
func (l *SlotList) Update(s EvidenceSlot) error {
	i := l.index(s.ID)
	if i < 0 {
		return ErrSlotNotFound
	}
	if err := ValidateRotation(s.Rotation); err != nil {
		return err
	}
	s.Orientation = ParseOrientation(string(s.Orientation))
	s.Size = ParseSizeClass(string(s.Size))
	l.slots[i] = s
	return nil
}

// Delete removes a slot. Deleting the last remaining slot replaces it with a
// fresh empty primary slot.
func (l *SlotList) Delete(id string) error {
	i := l.index(id)
	if i < 0 {
		return ErrSlotNotFound
	}
	if len(l.slots) == 1 {
		l.slots = []EvidenceSlot{NewSlot(PrimarySlotTitle)}
		return nil
	}
	l.slots = append(l.slots[:i:i], l.slots[i+1:]...)
	return nil
}

func (l *SlotList) index(id string) int {
	for i := range l.slots {
		if l.slots[i].ID == id {
			return i
		}
	}
	return -1
}

// MarshalJSON encodes the list as a JSON array.
func (l *SlotList) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.slots)
}

// UnmarshalJSON decodes a JSON array, keeping the non-empty invariant.
func (l *SlotList) UnmarshalJSON(data []byte) error {
	var slots []EvidenceSlot
	if err := json.Unmarshal(data, &slots); err != nil {
		return err
	}
	if len(slots) == 0 {
		slots = []EvidenceSlot{NewSlot(PrimarySlotTitle)}
	}
	l.slots = slots
	return nil
}

// ValidateRotation accepts right-angle rotations only.
func ValidateRotation(deg int) error {
	if deg%90 != 0 {
		return fmt.Errorf("%w: rotation %d is not a multiple of 90", ErrInvalidSlot, deg)
	}
	return nil
}
