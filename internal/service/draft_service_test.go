package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cmcreport/internal/domain"
	"cmcreport/internal/service"
	storagelocal "cmcreport/internal/storage/local"
	"cmcreport/internal/store/local"
	"cmcreport/mocks"
)

type fakeCategories map[string]domain.Category

func (f fakeCategories) Category(key string) (*domain.Category, error) {
	c, ok := f[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

type draftFixture struct {
	svc     service.DraftService
	docs    *local.DocumentStore
	reports *mocks.MockReportService
	ctx     context.Context
}

func newDraftFixture(t *testing.T) *draftFixture {
	t.Helper()
	docs, err := local.NewDocumentStore("")
	require.NoError(t, err)
	objects, err := storagelocal.NewDiskStorage(t.TempDir())
	require.NoError(t, err)

	cats := fakeCategories{
		"VIAJE REALIZADO": {Name: "VIAJE REALIZADO", Items: []string{"Captura del viaje", "Comprobante de pago"}},
	}
	reports := new(mocks.MockReportService)
	return &draftFixture{
		svc:     service.NewDraftService(docs, objects, cats, reports, "evidence", 1<<20),
		docs:    docs,
		reports: reports,
		ctx:     context.Background(),
	}
}

func TestDraftService_Create(t *testing.T) {
	f := newDraftFixture(t)

	d, err := f.svc.Create(f.ctx, service.CreateDraftInput{IncidentName: " VIAJE REALIZADO ", Title: "Reporte"})
	require.NoError(t, err)
	assert.Equal(t, "VIAJE REALIZADO", d.IncidentName)
	slots := d.Slots.Slots()
	require.Len(t, slots, 2)
	assert.Equal(t, "Captura del viaje", slots[0].Title)
	assert.Equal(t, "Comprobante de pago", slots[1].Title)

	got, err := f.svc.Get(f.ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, d.ID, got.ID)
	assert.Equal(t, "Reporte", got.Title)
	assert.Equal(t, slots[0].ID, got.Slots.Slots()[0].ID)
}

func TestDraftService_Create_UnknownIncident(t *testing.T) {
	f := newDraftFixture(t)

	d, err := f.svc.Create(f.ctx, service.CreateDraftInput{IncidentName: "OTRO"})
	require.NoError(t, err)
	slots := d.Slots.Slots()
	require.Len(t, slots, 1)
	assert.Equal(t, domain.PrimarySlotTitle, slots[0].Title)
}

func TestDraftService_GetUnknown(t *testing.T) {
	f := newDraftFixture(t)

	_, err := f.svc.Get(f.ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrDraftNotFound)

	_, err = f.svc.AddSlot(f.ctx, uuid.New(), "x")
	assert.ErrorIs(t, err, domain.ErrDraftNotFound)
}

func TestDraftService_AddAndUpdateSlot(t *testing.T) {
	f := newDraftFixture(t)
	d, err := f.svc.Create(f.ctx, service.CreateDraftInput{})
	require.NoError(t, err)

	added, err := f.svc.AddSlot(f.ctx, d.ID, "")
	require.NoError(t, err)
	assert.Equal(t, domain.AdditionalSlotTitle, added.Title)

	title := "Captura #4411"
	rotation := 450
	orientation := "VERTICAL"
	size := "grande"
	updated, err := f.svc.UpdateSlot(f.ctx, d.ID, added.ID, service.UpdateSlotInput{
		Title:       &title,
		Rotation:    &rotation,
		Orientation: &orientation,
		Size:        &size,
	})
	require.NoError(t, err)
	assert.Equal(t, title, updated.Title)
	assert.Equal(t, 90, updated.Rotation)
	assert.Equal(t, domain.OrientationVertical, updated.Orientation)
	assert.Equal(t, domain.SizeGrande, updated.Size)

	got, err := f.svc.Get(f.ctx, d.ID)
	require.NoError(t, err)
	require.Equal(t, 2, got.Slots.Len())
	assert.Equal(t, *updated, got.Slots.Slots()[1])
}

func TestDraftService_UpdateSlot_Errors(t *testing.T) {
	f := newDraftFixture(t)
	d, err := f.svc.Create(f.ctx, service.CreateDraftInput{})
	require.NoError(t, err)
	slotID := d.Slots.Slots()[0].ID

	bad := 45
	_, err = f.svc.UpdateSlot(f.ctx, d.ID, slotID, service.UpdateSlotInput{Rotation: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidSlot)

	_, err = f.svc.UpdateSlot(f.ctx, d.ID, "missing", service.UpdateSlotInput{})
	assert.ErrorIs(t, err, domain.ErrSlotNotFound)
}

func TestDraftService_AttachDeleteAndGenerate(t *testing.T) {
	f := newDraftFixture(t)
	d, err := f.svc.Create(f.ctx, service.CreateDraftInput{IncidentName: "VIAJE REALIZADO", Title: "Reporte"})
	require.NoError(t, err)
	slots := d.Slots.Slots()
	img := pngBytes(t, 6, 4)

	attached, err := f.svc.AttachFile(f.ctx, d.ID, slots[0].ID, service.AttachFileInput{Name: "viaje.png", Data: img})
	require.NoError(t, err)
	require.NotNil(t, attached.File)
	assert.Equal(t, service.SlotFileKey(d.ID, slots[0].ID), attached.File.StorageKey)
	assert.Equal(t, domain.MimePNG, attached.File.ContentType)
	assert.Nil(t, attached.File.Data)

	stored, err := f.docs.Get(f.ctx, service.CollectionDrafts, d.ID.String())
	require.NoError(t, err)
	assert.NotContains(t, stored.Fields, "id")

	report := &domain.GeneratedReport{Filename: "Reporte_VIAJE_REALIZADO_1.docx"}
	f.reports.On("Generate", f.ctx, mock.MatchedBy(func(in service.GenerateReportInput) bool {
		return len(in.Slots) == 2 &&
			in.Slots[0].File != nil && string(in.Slots[0].File.Data) == string(img) &&
			in.Slots[1].File == nil &&
			in.Metadata.Title == "Reporte" &&
			in.Metadata.IncidentName == "VIAJE REALIZADO" &&
			in.Metadata.TicketID == "#77"
	})).Return(report, nil)

	got, err := f.svc.Generate(f.ctx, d.ID, domain.ReportMetadata{TicketID: "#77"})
	require.NoError(t, err)
	assert.Same(t, report, got)

	after, err := f.svc.DeleteSlot(f.ctx, d.ID, slots[0].ID)
	require.NoError(t, err)
	require.Equal(t, 1, after.Slots.Len())
	assert.Equal(t, slots[1].ID, after.Slots.Slots()[0].ID)
}

func TestDraftService_DeleteLastSlotKeepsOne(t *testing.T) {
	f := newDraftFixture(t)
	d, err := f.svc.Create(f.ctx, service.CreateDraftInput{})
	require.NoError(t, err)
	only := d.Slots.Slots()[0]

	after, err := f.svc.DeleteSlot(f.ctx, d.ID, only.ID)
	require.NoError(t, err)
	require.Equal(t, 1, after.Slots.Len())
	assert.NotEqual(t, only.ID, after.Slots.Slots()[0].ID)
}

func TestDraftService_AttachFile_Rejected(t *testing.T) {
	f := newDraftFixture(t)
	d, err := f.svc.Create(f.ctx, service.CreateDraftInput{})
	require.NoError(t, err)
	slotID := d.Slots.Slots()[0].ID

	_, err = f.svc.AttachFile(f.ctx, d.ID, slotID, service.AttachFileInput{Name: "a.txt", Data: []byte("plain text")})
	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)

	_, err = f.svc.AttachFile(f.ctx, d.ID, "missing", service.AttachFileInput{Name: "a.png", Data: pngBytes(t, 2, 2)})
	assert.ErrorIs(t, err, domain.ErrSlotNotFound)
}
