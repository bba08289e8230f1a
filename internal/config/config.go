package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Store   StoreConfig
	S3      S3Config
	Storage StorageConfig
	Report  ReportConfig
	Image   ImageConfig
	Queue   QueueConfig
	Email   EmailConfig
	Admin   AdminConfig
	CORS    CORSConfig
	Log     LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port           string        `mapstructure:"port"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
	Environment    string        `mapstructure:"environment"`
	MaxUploadBytes int64         `mapstructure:"max_upload_bytes"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
	// MigrationsDir is read by cmd/migrate.
	MigrationsDir string `mapstructure:"migrations_dir"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// Backend names accepted by StoreConfig and StorageConfig.
const (
	StoreBackendPostgres = "postgres"
	StoreBackendLocal    = "local"
	StorageBackendS3     = "s3"
	StorageBackendLocal  = "local"
)

// StoreConfig selects the document store backing the catalog.
type StoreConfig struct {
	Backend   string `mapstructure:"backend"` // postgres | local
	LocalPath string `mapstructure:"local_path"`
}

// S3Config holds AWS S3 settings.
type S3Config struct {
	Region        string        `mapstructure:"region"`
	Bucket        string        `mapstructure:"bucket"`
	Endpoint      string        `mapstructure:"endpoint"`
	AccessKey     string        `mapstructure:"access_key"`
	SecretKey     string        `mapstructure:"secret_key"`
	PresignExpiry time.Duration `mapstructure:"presign_expiry"`
	// Multipart settings for the uploader; reports and screenshots rarely
	// exceed one part.
	PartSizeMB        int64 `mapstructure:"part_size_mb"`
	UploadConcurrency int   `mapstructure:"upload_concurrency"`
}

// StorageConfig selects where generated reports and draft evidence live.
type StorageConfig struct {
	Backend       string `mapstructure:"backend"` // s3 | local
	LocalDir      string `mapstructure:"local_dir"`
	ReportsPrefix string `mapstructure:"reports_prefix"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
}

// ReportConfig holds document layout settings.
type ReportConfig struct {
	Columns     int     `mapstructure:"columns"`
	Concurrency int     `mapstructure:"concurrency"`
	MarginTwips int     `mapstructure:"margin_twips"`
	CellScale   float64 `mapstructure:"cell_scale"`
	RenderScale float64 `mapstructure:"render_scale"`
	MinWidth    int     `mapstructure:"min_width"`
	MinHeight   int     `mapstructure:"min_height"`
	Quality     float64 `mapstructure:"quality"`
	Title       string  `mapstructure:"title"`
	Creator     string  `mapstructure:"creator"`
}

// ImageConfig holds image normalizer settings.
type ImageConfig struct {
	AllowUpscale bool    `mapstructure:"allow_upscale"`
	MaxDimension int     `mapstructure:"max_dimension"`
	Lossless     bool    `mapstructure:"lossless"`
	MaxBytes     int     `mapstructure:"max_bytes"`
	QualityStep  float64 `mapstructure:"quality_step"`
	MaxAttempts  int     `mapstructure:"max_attempts"`
	MinQuality   float64 `mapstructure:"min_quality"`
}

// QueueConfig holds report job worker settings.
type QueueConfig struct {
	PollIntervalMillis int `mapstructure:"poll_interval_millis"`
	Concurrency        int `mapstructure:"concurrency"`
	JobTimeoutSecs     int `mapstructure:"job_timeout_secs"`
	RetentionMins      int `mapstructure:"retention_mins"`
}

// EmailConfig holds report notification delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
	OpsAddress  string `mapstructure:"ops_address"`
}

// AdminConfig holds the shared admin key used for catalog writes.
type AdminConfig struct {
	KeyHash string `mapstructure:"key_hash"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the CMC_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("CMC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "120s")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.max_upload_bytes", 100<<20)

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "cmc")
	v.SetDefault("db.password", "cmc_secret")
	v.SetDefault("db.name", "cmc_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 10)
	v.SetDefault("db.max_idle", 5)
	v.SetDefault("db.migrations_dir", "db/migrations")

	// Document store defaults
	v.SetDefault("store.backend", "local")
	v.SetDefault("store.local_path", "data/catalog.json")

	// S3 defaults
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "cmc-reports")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.presign_expiry", "1h")
	v.SetDefault("s3.part_size_mb", 8)
	v.SetDefault("s3.upload_concurrency", 3)

	// Storage defaults
	v.SetDefault("storage.backend", "local")
	v.SetDefault("storage.local_dir", "data/objects")
	v.SetDefault("storage.reports_prefix", "reports")
	v.SetDefault("storage.max_file_size_mb", 20)

	// Report defaults
	v.SetDefault("report.columns", 3)
	v.SetDefault("report.concurrency", 3)
	v.SetDefault("report.margin_twips", 720)
	v.SetDefault("report.cell_scale", 1.0)
	v.SetDefault("report.render_scale", 4.0)
	v.SetDefault("report.min_width", 0)
	v.SetDefault("report.min_height", 0)
	v.SetDefault("report.quality", 0.8)
	v.SetDefault("report.title", "REPORTE CMC HD")
	v.SetDefault("report.creator", "cmcreport")

	// Image defaults
	v.SetDefault("image.allow_upscale", false)
	v.SetDefault("image.max_dimension", 4096)
	v.SetDefault("image.lossless", false)
	v.SetDefault("image.max_bytes", 0)
	v.SetDefault("image.quality_step", 0.85)
	v.SetDefault("image.max_attempts", 5)
	v.SetDefault("image.min_quality", 0.4)

	// Queue defaults
	v.SetDefault("queue.poll_interval_millis", 500)
	v.SetDefault("queue.concurrency", 2)
	v.SetDefault("queue.job_timeout_secs", 300)
	v.SetDefault("queue.retention_mins", 60)

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "us-east-1")
	v.SetDefault("email.from_address", "noreply@cmc.local")
	v.SetDefault("email.from_name", "Reportes CMC")
	v.SetDefault("email.ops_address", "")

	// Admin defaults
	v.SetDefault("admin.key_hash", "")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                "CMC_SERVER_PORT",
		"server.read_timeout":        "CMC_SERVER_READ_TIMEOUT",
		"server.write_timeout":       "CMC_SERVER_WRITE_TIMEOUT",
		"server.environment":         "CMC_SERVER_ENVIRONMENT",
		"server.max_upload_bytes":    "CMC_SERVER_MAX_UPLOAD_BYTES",
		"db.host":                    "CMC_DB_HOST",
		"db.port":                    "CMC_DB_PORT",
		"db.user":                    "CMC_DB_USER",
		"db.password":                "CMC_DB_PASSWORD",
		"db.name":                    "CMC_DB_NAME",
		"db.sslmode":                 "CMC_DB_SSLMODE",
		"db.max_open":                "CMC_DB_MAX_OPEN",
		"db.max_idle":                "CMC_DB_MAX_IDLE",
		"db.migrations_dir":          "CMC_DB_MIGRATIONS_DIR",
		"store.backend":              "CMC_STORE_BACKEND",
		"store.local_path":           "CMC_STORE_LOCAL_PATH",
		"s3.region":                  "CMC_S3_REGION",
		"s3.bucket":                  "CMC_S3_BUCKET",
		"s3.endpoint":                "CMC_S3_ENDPOINT",
		"s3.access_key":              "CMC_S3_ACCESS_KEY",
		"s3.secret_key":              "CMC_S3_SECRET_KEY",
		"s3.presign_expiry":          "CMC_S3_PRESIGN_EXPIRY",
		"s3.part_size_mb":            "CMC_S3_PART_SIZE_MB",
		"s3.upload_concurrency":      "CMC_S3_UPLOAD_CONCURRENCY",
		"storage.backend":            "CMC_STORAGE_BACKEND",
		"storage.local_dir":          "CMC_STORAGE_LOCAL_DIR",
		"storage.reports_prefix":     "CMC_STORAGE_REPORTS_PREFIX",
		"storage.max_file_size_mb":   "CMC_STORAGE_MAX_FILE_SIZE_MB",
		"report.columns":             "CMC_REPORT_COLUMNS",
		"report.concurrency":         "CMC_REPORT_CONCURRENCY",
		"report.margin_twips":        "CMC_REPORT_MARGIN_TWIPS",
		"report.cell_scale":          "CMC_REPORT_CELL_SCALE",
		"report.render_scale":        "CMC_REPORT_RENDER_SCALE",
		"report.min_width":           "CMC_REPORT_MIN_WIDTH",
		"report.min_height":          "CMC_REPORT_MIN_HEIGHT",
		"report.quality":             "CMC_REPORT_QUALITY",
		"report.title":               "CMC_REPORT_TITLE",
		"report.creator":             "CMC_REPORT_CREATOR",
		"image.allow_upscale":        "CMC_IMAGE_ALLOW_UPSCALE",
		"image.max_dimension":        "CMC_IMAGE_MAX_DIMENSION",
		"image.lossless":             "CMC_IMAGE_LOSSLESS",
		"image.max_bytes":            "CMC_IMAGE_MAX_BYTES",
		"image.quality_step":         "CMC_IMAGE_QUALITY_STEP",
		"image.max_attempts":         "CMC_IMAGE_MAX_ATTEMPTS",
		"image.min_quality":          "CMC_IMAGE_MIN_QUALITY",
		"queue.poll_interval_millis": "CMC_QUEUE_POLL_INTERVAL_MILLIS",
		"queue.concurrency":          "CMC_QUEUE_CONCURRENCY",
		"queue.job_timeout_secs":     "CMC_QUEUE_JOB_TIMEOUT_SECS",
		"queue.retention_mins":       "CMC_QUEUE_RETENTION_MINS",
		"email.provider":             "CMC_EMAIL_PROVIDER",
		"email.region":               "CMC_EMAIL_REGION",
		"email.from_address":         "CMC_EMAIL_FROM_ADDRESS",
		"email.from_name":            "CMC_EMAIL_FROM_NAME",
		"email.ops_address":          "CMC_EMAIL_OPS_ADDRESS",
		"admin.key_hash":             "CMC_ADMIN_KEY_HASH",
		"log.level":                  "CMC_LOG_LEVEL",
		"log.format":                 "CMC_LOG_FORMAT",
		"cors.allowed_origins":       "CMC_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if CMC_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("CMC_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:           serverPort,
		ReadTimeout:    v.GetDuration("server.read_timeout"),
		WriteTimeout:   v.GetDuration("server.write_timeout"),
		Environment:    v.GetString("server.environment"),
		MaxUploadBytes: v.GetInt64("server.max_upload_bytes"),
	}
	cfg.DB = DBConfig{
		Host:          v.GetString("db.host"),
		Port:          v.GetInt("db.port"),
		User:          v.GetString("db.user"),
		Password:      v.GetString("db.password"),
		Name:          v.GetString("db.name"),
		SSLMode:       v.GetString("db.sslmode"),
		MaxOpen:       v.GetInt("db.max_open"),
		MaxIdle:       v.GetInt("db.max_idle"),
		MigrationsDir: v.GetString("db.migrations_dir"),
	}
	cfg.Store = StoreConfig{
		Backend:   strings.ToLower(v.GetString("store.backend")),
		LocalPath: v.GetString("store.local_path"),
	}
	cfg.S3 = S3Config{
		Region:            v.GetString("s3.region"),
		Bucket:            v.GetString("s3.bucket"),
		Endpoint:          v.GetString("s3.endpoint"),
		AccessKey:         v.GetString("s3.access_key"),
		SecretKey:         v.GetString("s3.secret_key"),
		PresignExpiry:     v.GetDuration("s3.presign_expiry"),
		PartSizeMB:        v.GetInt64("s3.part_size_mb"),
		UploadConcurrency: v.GetInt("s3.upload_concurrency"),
	}
	cfg.Storage = StorageConfig{
		Backend:       strings.ToLower(v.GetString("storage.backend")),
		LocalDir:      v.GetString("storage.local_dir"),
		ReportsPrefix: v.GetString("storage.reports_prefix"),
		MaxFileSizeMB: v.GetInt64("storage.max_file_size_mb"),
	}
	cfg.Report = ReportConfig{
		Columns:     v.GetInt("report.columns"),
		Concurrency: v.GetInt("report.concurrency"),
		MarginTwips: v.GetInt("report.margin_twips"),
		CellScale:   v.GetFloat64("report.cell_scale"),
		RenderScale: v.GetFloat64("report.render_scale"),
		MinWidth:    v.GetInt("report.min_width"),
		MinHeight:   v.GetInt("report.min_height"),
		Quality:     v.GetFloat64("report.quality"),
		Title:       v.GetString("report.title"),
		Creator:     v.GetString("report.creator"),
	}
	cfg.Image = ImageConfig{
		AllowUpscale: v.GetBool("image.allow_upscale"),
		MaxDimension: v.GetInt("image.max_dimension"),
		Lossless:     v.GetBool("image.lossless"),
		MaxBytes:     v.GetInt("image.max_bytes"),
		QualityStep:  v.GetFloat64("image.quality_step"),
		MaxAttempts:  v.GetInt("image.max_attempts"),
		MinQuality:   v.GetFloat64("image.min_quality"),
	}
	cfg.Queue = QueueConfig{
		PollIntervalMillis: v.GetInt("queue.poll_interval_millis"),
		Concurrency:        v.GetInt("queue.concurrency"),
		JobTimeoutSecs:     v.GetInt("queue.job_timeout_secs"),
		RetentionMins:      v.GetInt("queue.retention_mins"),
	}
	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
		OpsAddress:  v.GetString("email.ops_address"),
	}
	cfg.Admin = AdminConfig{
		KeyHash: v.GetString("admin.key_hash"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	if cfg.Store.Backend != StoreBackendPostgres && cfg.Store.Backend != StoreBackendLocal {
		return nil, fmt.Errorf("config: unknown store backend %q", cfg.Store.Backend)
	}
	if cfg.Storage.Backend != StorageBackendS3 && cfg.Storage.Backend != StorageBackendLocal {
		return nil, fmt.Errorf("config: unknown storage backend %q", cfg.Storage.Backend)
	}

	return cfg, nil
}
