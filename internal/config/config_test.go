package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cmcreport/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Store.Backend)
	assert.Equal(t, "local", cfg.Storage.Backend)
	assert.Equal(t, 3, cfg.Report.Columns)
	assert.Equal(t, 3, cfg.Report.Concurrency)
	assert.Equal(t, 720, cfg.Report.MarginTwips)
	assert.InDelta(t, 4.0, cfg.Report.RenderScale, 1e-9)
	assert.InDelta(t, 0.8, cfg.Report.Quality, 1e-9)
	assert.Equal(t, "REPORTE CMC HD", cfg.Report.Title)
	assert.False(t, cfg.Image.AllowUpscale)
	assert.Equal(t, 4096, cfg.Image.MaxDimension)
	assert.Equal(t, 5, cfg.Image.MaxAttempts)
	assert.Equal(t, 120*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, "noop", cfg.Email.Provider)
	assert.NotEmpty(t, cfg.CORS.AllowedOrigins)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CMC_STORE_BACKEND", "POSTGRES")
	t.Setenv("CMC_REPORT_COLUMNS", "4")
	t.Setenv("CMC_IMAGE_ALLOW_UPSCALE", "true")
	t.Setenv("CMC_CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("CMC_DB_HOST", "db")
	t.Setenv("CMC_DB_NAME", "reports")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Store.Backend)
	assert.Equal(t, 4, cfg.Report.Columns)
	assert.True(t, cfg.Image.AllowUpscale)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "postgres://cmc:cmc_secret@db:5432/reports?sslmode=disable", cfg.DB.DSN())
}

func TestLoad_PortFallback(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("CMC_SERVER_PORT", "")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Server.Port)
}

func TestLoad_UnknownBackend(t *testing.T) {
	t.Setenv("CMC_STORAGE_BACKEND", "ftp")

	_, err := config.Load()
	assert.Error(t, err)
}
