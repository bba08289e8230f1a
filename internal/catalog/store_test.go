package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cmcreport/internal/domain"
	"cmcreport/internal/port"
	"cmcreport/internal/store/local"
	"cmcreport/mocks"
)

func newStarted(t *testing.T) (*Store, *local.DocumentStore) {
	t.Helper()
	docs, err := local.NewDocumentStore("")
	require.NoError(t, err)
	s := NewStore(docs)
	require.NoError(t, s.Start(context.Background()))
	t.Cleanup(s.Close)
	return s, docs
}

func TestSynced(t *testing.T) {
	s, _ := newStarted(t)
	assert.True(t, s.Synced())

	s.Close()
	assert.False(t, s.Synced())
}

func TestGuide_Lookup(t *testing.T) {
	s, _ := newStarted(t)

	assert.Equal(t, DefaultGuides["VIAJE REALIZADO"], s.Guide("VIAJE REALIZADO"))
	// Longest contained key wins over "VIAJE REALIZADO".
	assert.Equal(t, DefaultGuides["VIAJE REALIZADO CASH"], s.Guide("viaje realizado cash urgente"))
	assert.Equal(t, DefaultGuides["MOVIMIENTO CERO"], s.Guide("Reporte movimiento cero"))
	assert.Equal(t, DefaultGuides[DefaultGuideKey], s.Guide("algo desconocido"))
	assert.Equal(t, DefaultGuides[DefaultGuideKey], s.Guide(""))
}

func TestGuide_StoredOverridesDefaultThroughSubscription(t *testing.T) {
	s, docs := newStarted(t)

	err := docs.Save(context.Background(), domain.CollectionGuides, "viaje-realizado",
		map[string]any{"title": "VIAJE REALIZADO", "content": "nueva guía"}, port.SaveOptions{})
	require.NoError(t, err)

	assert.Equal(t, "nueva guía", s.Guide("VIAJE REALIZADO"))
	assert.Equal(t, DefaultGuides["MOVIMIENTO CERO"], s.Guide("MOVIMIENTO CERO"))
}

func TestSaveGuide_UsesFixedSlug(t *testing.T) {
	s, docs := newStarted(t)

	g, err := s.SaveGuide(context.Background(), "RECÁLCULO", "texto", "")
	require.NoError(t, err)
	assert.Equal(t, "recalculo", g.Slug)
	assert.Equal(t, DefaultUpdatedBy, g.UpdatedBy)

	stored, err := docs.Get(context.Background(), domain.CollectionGuides, "recalculo")
	require.NoError(t, err)
	assert.Equal(t, "RECÁLCULO", stored.Fields["title"])
	assert.Equal(t, "incidencias", stored.Fields["category"])
	assert.Equal(t, true, stored.Fields["isPublished"])
	assert.Equal(t, "texto", s.Guide("RECÁLCULO"))
}

func TestSaveGuide_RequiresName(t *testing.T) {
	s, _ := newStarted(t)
	_, err := s.SaveGuide(context.Background(), "  ", "x", "")
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestSaveGuide_PersistenceError(t *testing.T) {
	docs := new(mocks.MockDocumentStore)
	docs.On("Save", mock.Anything, domain.CollectionGuides, "viaje-realizado", mock.Anything, port.SaveOptions{Merge: true}).
		Return(errors.New("connection refused"))
	s := NewStore(docs)

	_, err := s.SaveGuide(context.Background(), "VIAJE REALIZADO", "x", "ops")
	assert.ErrorIs(t, err, domain.ErrPersistence)
	assert.Equal(t, DefaultGuides["VIAJE REALIZADO"], s.Guide("VIAJE REALIZADO"))
}

func TestCategories_DefaultsUntilStored(t *testing.T) {
	s, _ := newStarted(t)
	ctx := context.Background()

	assert.Equal(t, DefaultCategories, s.Categories())
	c, err := s.Category("viaje realizado")
	require.NoError(t, err)
	assert.Equal(t, []string{"Ticket", "Viaje Admin", "Mapa"}, c.Items)

	created, err := s.SaveCategory(ctx, domain.Category{Name: "", Order: 2, Items: []string{"Ticket"}}, "")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, UntitledCategory, created.Name)

	_, err = s.SaveCategory(ctx, domain.Category{Name: "Primera", Order: 1, IsActive: true}, "ops")
	require.NoError(t, err)

	cats := s.Categories()
	require.Len(t, cats, 2)
	assert.Equal(t, "Primera", cats[0].Name)

	require.NoError(t, s.DeleteCategory(ctx, created.ID))
	assert.Len(t, s.Categories(), 1)
	assert.ErrorIs(t, s.DeleteCategory(ctx, created.ID), domain.ErrNotFound)
}

func TestFormulas_CRUD(t *testing.T) {
	s, docs := newStarted(t)
	ctx := context.Background()

	f, err := s.SaveFormula(ctx, domain.Formula{Name: "Recalculo", Expression: "amountReal - amountAdmin", IsActive: true}, "")
	require.NoError(t, err)

	f.Description = "diferencia"
	_, err = s.SaveFormula(ctx, *f, "ops")
	require.NoError(t, err)

	stored, err := docs.Get(ctx, domain.CollectionFormulas, f.ID)
	require.NoError(t, err)
	assert.Equal(t, "diferencia", stored.Fields["description"])
	assert.Equal(t, "ops", stored.Fields["updatedBy"])

	require.Len(t, s.Formulas(), 1)
	require.NoError(t, s.DeleteFormula(ctx, f.ID))
	assert.Empty(t, s.Formulas())
}

func TestClose_StopsUpdates(t *testing.T) {
	docs, _ := local.NewDocumentStore("")
	s := NewStore(docs)
	require.NoError(t, s.Start(context.Background()))
	s.Close()

	require.NoError(t, docs.Save(context.Background(), domain.CollectionGuides, "x", map[string]any{"title": "X", "content": "x"}, port.SaveOptions{}))
	assert.NotContains(t, s.Guides(), "X")
}

func TestStart_FallsBackToListWhenSubscribeFails(t *testing.T) {
	docs := new(mocks.MockDocumentStore)
	docs.On("Subscribe", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("listen failed"))
	docs.On("List", mock.Anything, domain.CollectionGuides, "").
		Return([]domain.StoredDocument{{ID: "g", Fields: map[string]any{"title": "G", "content": "guía g"}}}, nil)
	docs.On("List", mock.Anything, domain.CollectionCategories, "").Return(nil, errors.New("down"))
	docs.On("List", mock.Anything, domain.CollectionFormulas, "").Return([]domain.StoredDocument{}, nil)

	s := NewStore(docs)
	err := s.Start(context.Background())

	assert.ErrorIs(t, err, domain.ErrPersistence)
	assert.False(t, s.Synced())
	assert.Equal(t, "guía g", s.Guide("G"))
	assert.Equal(t, DefaultCategories, s.Categories())
}

func TestListOrdered_RetriesOnceWithoutOrder(t *testing.T) {
	docs := new(mocks.MockDocumentStore)
	docs.On("List", mock.Anything, "categories", "name").Return(nil, domain.ErrIndexUnavailable).Once()
	docs.On("List", mock.Anything, "categories", "").Return([]domain.StoredDocument{{ID: "a"}}, nil).Once()

	out, err := ListOrdered(context.Background(), docs, "categories", "name")
	require.NoError(t, err)
	assert.Len(t, out, 1)
	docs.AssertExpectations(t)
}

func TestListOrdered_SurfacesSecondFailure(t *testing.T) {
	docs := new(mocks.MockDocumentStore)
	docs.On("List", mock.Anything, "categories", "order").Return(nil, domain.ErrIndexUnavailable).Once()
	docs.On("List", mock.Anything, "categories", "").Return(nil, errors.New("timeout")).Once()

	_, err := ListOrdered(context.Background(), docs, "categories", "order")
	assert.ErrorIs(t, err, domain.ErrPersistence)
	docs.AssertNumberOfCalls(t, "List", 2)
}

func TestListOrdered_OtherErrorsAreNotRetried(t *testing.T) {
	docs := new(mocks.MockDocumentStore)
	docs.On("List", mock.Anything, "categories", "order").Return(nil, errors.New("boom")).Once()

	_, err := ListOrdered(context.Background(), docs, "categories", "order")
	assert.ErrorIs(t, err, domain.ErrPersistence)
	docs.AssertNumberOfCalls(t, "List", 1)
}
