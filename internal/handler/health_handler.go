package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether the database behind the document store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// SyncReporter reports whether the catalog follows remote changes.
type SyncReporter interface {
	Synced() bool
}

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	db      Pinger
	catalog SyncReporter
}

// NewHealthHandler creates a new HealthHandler. A nil db (local store) is
// always ready; a nil catalog is not reported.
func NewHealthHandler(db Pinger, catalog SyncReporter) *HealthHandler {
	return &HealthHandler{db: db, catalog: catalog}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz. An unreachable database fails readiness; a
// catalog without live subscriptions only marks it degraded.
func (h *HealthHandler) Readiness(c *gin.Context) {
	checks := gin.H{"database": "ok"}
	if h.db == nil {
		checks["database"] = "local"
	} else if err := h.db.PingContext(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "database not reachable"})
		return
	}

	status := "ok"
	if h.catalog != nil {
		checks["catalog"] = "synced"
		if !h.catalog.Synced() {
			checks["catalog"] = "snapshot"
			status = "degraded"
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": status, "checks": checks})
}
