package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cmcreport/internal/catalog"
	"cmcreport/internal/domain"
	"cmcreport/internal/service"
	"cmcreport/internal/store/local"
)

func newCatalogService(t *testing.T) (service.CatalogService, context.Context) {
	t.Helper()
	docs, err := local.NewDocumentStore("")
	require.NoError(t, err)
	store := catalog.NewStore(docs)
	ctx := context.Background()
	require.NoError(t, store.Start(ctx))
	t.Cleanup(store.Close)
	return service.NewCatalogService(store), ctx
}

func TestCatalogService_Guides(t *testing.T) {
	svc, ctx := newCatalogService(t)

	assert.Equal(t, catalog.DefaultGuides[catalog.DefaultGuideKey], svc.GetGuide(ctx, "  "))

	_, err := svc.SaveGuide(ctx, "VIAJE REALIZADO", "   ", "ops")
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)

	g, err := svc.SaveGuide(ctx, "VIAJE REALIZADO", "Nuevo procedimiento", "ops")
	require.NoError(t, err)
	assert.Equal(t, "ops", g.UpdatedBy)
	assert.Equal(t, "Nuevo procedimiento", svc.GetGuide(ctx, "viaje realizado urgente"))
	assert.Equal(t, "Nuevo procedimiento", svc.ListGuides(ctx)["VIAJE REALIZADO"])
}

func TestCatalogService_Categories(t *testing.T) {
	svc, ctx := newCatalogService(t)

	c, err := svc.SaveCategory(ctx, domain.Category{Name: "Cobro doble", IsActive: true, Items: []string{" Captura "}}, "ops")
	require.NoError(t, err)
	assert.Equal(t, []string{"Captura"}, c.Items)
	_, err = svc.SaveCategory(ctx, domain.Category{Name: "Inactiva", Order: 1}, "ops")
	require.NoError(t, err)

	assert.Len(t, svc.ListCategories(ctx, false), 2)
	active := svc.ListCategories(ctx, true)
	require.Len(t, active, 1)
	assert.Equal(t, "Cobro doble", active[0].Name)

	got, err := svc.GetCategory(ctx, "cobro doble")
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)

	require.NoError(t, svc.DeleteCategory(ctx, c.ID))
	_, err = svc.GetCategory(ctx, c.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, svc.DeleteCategory(ctx, c.ID), domain.ErrNotFound)
}

func TestCatalogService_Formulas(t *testing.T) {
	svc, ctx := newCatalogService(t)

	_, err := svc.SaveFormula(ctx, domain.Formula{Name: "Sin expresión"}, "ops")
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)

	f, err := svc.SaveFormula(ctx, domain.Formula{Name: "Diferencia", Expression: "cobrado - real", IsActive: true}, "ops")
	require.NoError(t, err)
	_, err = svc.SaveFormula(ctx, domain.Formula{Name: "Borrador", Expression: "a + b"}, "ops")
	require.NoError(t, err)

	assert.Len(t, svc.ListFormulas(ctx, false), 2)
	active := svc.ListFormulas(ctx, true)
	require.Len(t, active, 1)
	assert.Equal(t, f.ID, active[0].ID)

	require.NoError(t, svc.DeleteFormula(ctx, f.ID))
	assert.Len(t, svc.ListFormulas(ctx, false), 1)
}
