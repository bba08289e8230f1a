package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cmcreport/internal/domain"
)

func TestNewSlotList_FromRequiredItems(t *testing.T) {
	l := domain.NewSlotList([]string{"Ticket", "Viaje Admin"})

	slots := l.Slots()
	require.Len(t, slots, 2)
	assert.Equal(t, "Ticket", slots[0].Title)
	assert.Equal(t, "Viaje Admin", slots[1].Title)
	assert.Equal(t, domain.OrientationHorizontal, slots[0].Orientation)
	assert.Equal(t, domain.SizeNormal, slots[0].Size)
	assert.NotEqual(t, slots[0].ID, slots[1].ID)
}

func TestNewSlotList_NoItemsGivesPrimarySlot(t *testing.T) {
	l := domain.NewSlotList(nil)

	require.Equal(t, 1, l.Len())
	assert.Equal(t, domain.PrimarySlotTitle, l.Slots()[0].Title)
}

func TestSlotList_DeleteLastSlotLeavesOneEmptySlot(t *testing.T) {
	l := domain.NewSlotList([]string{"Ticket"})
	only := l.Slots()[0]
	only.File = &domain.EvidenceFile{Name: "a.png", Data: []byte{1}}
	require.NoError(t, l.Update(only))

	require.NoError(t, l.Delete(only.ID))

	slots := l.Slots()
	require.Len(t, slots, 1)
	assert.NotEqual(t, only.ID, slots[0].ID)
	assert.Nil(t, slots[0].File)
	assert.Equal(t, domain.PrimarySlotTitle, slots[0].Title)
}

func TestSlotList_DeleteKeepsOrder(t *testing.T) {
	l := domain.NewSlotList([]string{"A", "B", "C"})
	b := l.Slots()[1]

	require.NoError(t, l.Delete(b.ID))

	slots := l.Slots()
	require.Len(t, slots, 2)
	assert.Equal(t, "A", slots[0].Title)
	assert.Equal(t, "C", slots[1].Title)
}

func TestSlotList_DeleteUnknown(t *testing.T) {
	l := domain.NewSlotList(nil)
	assert.ErrorIs(t, l.Delete("missing"), domain.ErrSlotNotFound)
	assert.Equal(t, 1, l.Len())
}

func TestSlotList_UpdateNormalizesEnums(t *testing.T) {
	l := domain.NewSlotList(nil)
	s := l.Slots()[0]
	s.Orientation = "VERTICAL"
	s.Size = "enorme"
	s.Rotation = 270

	require.NoError(t, l.Update(s))

	got, err := l.Get(s.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrientationVertical, got.Orientation)
	assert.Equal(t, domain.SizeNormal, got.Size)
	assert.Equal(t, 270, got.Rotation)
}

func TestSlotList_UpdateRejectsOddRotation(t *testing.T) {
	l := domain.NewSlotList(nil)
	s := l.Slots()[0]
	s.Rotation = 45

	assert.ErrorIs(t, l.Update(s), domain.ErrInvalidSlot)
}

func TestSlotList_AddUsesDefaultTitle(t *testing.T) {
	l := domain.NewSlotList(nil)
	s := l.Add("")

	assert.Equal(t, domain.AdditionalSlotTitle, s.Title)
	assert.Equal(t, 2, l.Len())
}

func TestSlotList_UnmarshalEmptyArrayKeepsInvariant(t *testing.T) {
	var l domain.SlotList
	require.NoError(t, json.Unmarshal([]byte(`[]`), &l))
	assert.Equal(t, 1, l.Len())
}

func TestTargetDimensions_WithDefaults(t *testing.T) {
	got := domain.TargetDimensions{DisplayWidth: 200, DisplayHeight: 100}.WithDefaults()

	assert.Equal(t, 1.0, got.RenderScale)
	assert.Equal(t, 0.8, got.Quality)
	assert.Equal(t, 0, got.MinWidth)
	assert.Equal(t, 0, got.MinHeight)
}
