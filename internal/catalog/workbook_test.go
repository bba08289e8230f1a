package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"cmcreport/internal/domain"
)

func workbook(t *testing.T, sheets map[string][][]string) *excelize.File {
	t.Helper()
	f := excelize.NewFile()
	t.Cleanup(func() { _ = f.Close() })
	for name, rows := range sheets {
		_, err := f.NewSheet(name)
		require.NoError(t, err)
		for i, row := range rows {
			cellRef, err := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, err)
			values := make([]any, len(row))
			for j, v := range row {
				values[j] = v
			}
			require.NoError(t, f.SetSheetRow(name, cellRef, &values))
		}
	}
	return f
}

func TestImportWorkbook(t *testing.T) {
	s, docs := newStarted(t)
	ctx := context.Background()

	f := workbook(t, map[string][][]string{
		SheetGuides: {
			{"Incidente", "Guía"},
			{"VIAJE REALIZADO", "revisar el viaje"},
			{"", "sin nombre"},
		},
		SheetCategories: {
			{"Nombre", "Grupo", "Orden", "Evidencias", "Aviso", "Activo"},
			{"Cobro Doble", "Cobros", "2", "Captura del cobro; Estado de cuenta\nComprobante", "", "si"},
			{"Recálculo", "Viajes", "1", "", "revisar tarifa", "no"},
		},
	})

	res, err := ImportWorkbook(ctx, f, s, "seed")
	require.NoError(t, err)
	assert.Equal(t, ImportResult{Guides: 1, Categories: 2, Skipped: 1}, res)

	assert.Equal(t, "revisar el viaje", s.Guide("VIAJE REALIZADO"))

	cats := s.Categories()
	require.Len(t, cats, 2)
	assert.Equal(t, "Recálculo", cats[0].Name)
	assert.Equal(t, "recalculo", cats[0].ID)
	assert.False(t, cats[0].IsActive)
	assert.Empty(t, cats[0].Items)
	assert.Equal(t, "cobro-doble", cats[1].ID)
	assert.Equal(t, []string{"Captura del cobro", "Estado de cuenta", "Comprobante"}, cats[1].Items)
	assert.True(t, cats[1].IsActive)

	stored, err := docs.Get(ctx, domain.CollectionCategories, "cobro-doble")
	require.NoError(t, err)
	assert.Equal(t, "seed", stored.Fields["updatedBy"])
}

func TestImportWorkbook_IsIdempotent(t *testing.T) {
	s, docs := newStarted(t)
	ctx := context.Background()
	f := workbook(t, map[string][][]string{
		SheetCategories: {
			{"Nombre"},
			{"Movimiento Cero"},
		},
	})

	_, err := ImportWorkbook(ctx, f, s, "seed")
	require.NoError(t, err)
	_, err = ImportWorkbook(ctx, f, s, "seed")
	require.NoError(t, err)

	listed, err := docs.List(ctx, domain.CollectionCategories, "")
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestImportWorkbook_MissingSheets(t *testing.T) {
	s, _ := newStarted(t)

	res, err := ImportWorkbook(context.Background(), workbook(t, nil), s, "")
	require.NoError(t, err)
	assert.Equal(t, ImportResult{}, res)
}
