package csvexport

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cmcreport/internal/domain"
)

func TestWriteHeader(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	w.Flush()
	require.NoError(t, w.Error())

	row, err := csv.NewReader(&buf).Read()
	require.NoError(t, err)

	assert.Len(t, row, 6)
	assert.Equal(t, "Nombre", row[0])
	assert.Equal(t, "Activo", row[5])
}

func TestWriteCategories(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteCategories([]domain.Category{
		{Name: "Sin servicio", Group: "Red", Order: 2, Items: []string{"Captura del modem", "Prueba de velocidad"}, Warning: "Incluir fecha", IsActive: true},
		{Name: "Facturacion", Order: 5, IsActive: false},
	}))
	w.Flush()
	require.NoError(t, w.Error())

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, []string{"Sin servicio", "Red", "2", "Captura del modem\nPrueba de velocidad", "Incluir fecha", "si"}, rows[0])
	assert.Equal(t, []string{"Facturacion", "", "5", "", "", "no"}, rows[1])
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"categorias", "categorias"},
		{"Categorías CMC", "Categor_as_CMC"},
		{"  a//b  ", "a_b"},
		{"___", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFilename(tt.in))
		})
	}

	long := SanitizeFilename(string(bytes.Repeat([]byte("x"), 150)))
	assert.Len(t, long, 100)
}

func TestBuildFilename(t *testing.T) {
	now := time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "categorias_2025-03-09.csv", BuildFilename("categorias", now))
}
