package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/credport/credport/internal/audit"
	dbaudit "github.com/credport/credport/internal/database/audit"
	"github.com/credport/credport/internal/entities"
)

func setupAuditTest(t *testing.T) (*gin.Engine, *audit.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.AuditEvent{}))
	auditService := audit.NewService(dbaudit.NewRepository(db))

	controller := NewAuditController(auditService)
	router := gin.New()
	router.GET("/api/audit", controller.GetAuditEvents)
	router.GET("/api/audit/:import_id", controller.GetAuditEvent)
	return router, auditService
}

func TestAuditController_GetAuditEvents(t *testing.T) {
	router, auditService := setupAuditTest(t)

	for i, format := range []string{"lastpass", "nordpass", "lastpass"} {
		require.NoError(t, auditService.Log(&entities.AuditEvent{
			ImportID:   fmt.Sprintf("00000000-0000-0000-0000-%012d", i+1),
			EventType:  entities.AuditEventImport,
			Action:     format + "_import",
			Format:     format,
			EntryCount: i + 1,
			Status:     entities.AuditStatusSuccess,
		}))
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/audit", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response PaginatedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, int64(3), response.Total)
	assert.False(t, response.HasMore)

	// Format filter
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/audit?format=nordpass", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, int64(1), response.Total)
}

func TestAuditController_GetAuditEventsByType(t *testing.T) {
	router, auditService := setupAuditTest(t)

	require.NoError(t, auditService.Log(&entities.AuditEvent{
		EventType: entities.AuditEventCleanup,
		Action:    "audit_cleanup",
		Status:    entities.AuditStatusSuccess,
	}))
	require.NoError(t, auditService.Log(&entities.AuditEvent{
		EventType: entities.AuditEventImport,
		Action:    "kdbx_import",
		Format:    "kdbx",
		Status:    entities.AuditStatusSuccess,
	}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/audit?type=cleanup", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response PaginatedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, int64(1), response.Total)
}

func TestAuditController_GetAuditEvent(t *testing.T) {
	router, auditService := setupAuditTest(t)

	importID := "a1e8fc2d-64f5-4b2a-97ab-7d4f5d2b1c3e"
	require.NoError(t, auditService.Log(&entities.AuditEvent{
		ImportID:   importID,
		EventType:  entities.AuditEventImport,
		Action:     "kdbx_import",
		Format:     "kdbx",
		EntryCount: 4,
		Status:     entities.AuditStatusSuccess,
	}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/audit/"+importID, nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var event entities.AuditEvent
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &event))
	assert.Equal(t, "kdbx_import", event.Action)
	assert.Equal(t, 4, event.EntryCount)
}

func TestAuditController_GetAuditEventNotFound(t *testing.T) {
	router, _ := setupAuditTest(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/audit/does-not-exist", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
