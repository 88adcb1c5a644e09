package audit

import (
	"encoding/json"
	"log"
	"strconv"
	"time"

	"github.com/credport/credport/internal/database/audit"
	"github.com/credport/credport/internal/entities"
)

// Service provides high-level audit logging functionality.
type Service struct {
	repo *audit.Repository
}

// NewService creates a new audit service.
func NewService(repo *audit.Repository) *Service {
	return &Service{repo: repo}
}

// Log records a generic audit event.
func (s *Service) Log(event *entities.AuditEvent) error {
	return s.repo.LogEvent(event)
}

// LogAsync records an audit event in the background (non-blocking).
func (s *Service) LogAsync(event *entities.AuditEvent) {
	go func() {
		if err := s.repo.LogEvent(event); err != nil {
			log.Printf("Failed to log audit event: %v", err)
		}
	}()
}

// LogImport records the outcome of one import run. Only counts and
// metadata are persisted, never the parsed credential values.
func (s *Service) LogImport(importID, format string, entryCount int, countsByType map[string]int, duration time.Duration, err error) {
	event := &entities.AuditEvent{
		ImportID:   importID,
		EventType:  entities.AuditEventImport,
		Action:     format + "_import",
		Format:     format,
		EntryCount: entryCount,
		DurationMs: duration.Milliseconds(),
		Status:     entities.AuditStatusSuccess,
	}

	if len(countsByType) > 0 {
		if mdBytes, e := json.Marshal(map[string]any{"counts_by_type": countsByType}); e == nil {
			event.Metadata = string(mdBytes)
		}
	}

	if err != nil {
		event.Status = entities.AuditStatusFailed
		event.ErrorMsg = truncate(err.Error(), 500)
		event.Description = "Import failed"
	} else {
		event.Description = "Imported " + formatCount(entryCount) + " from " + format + " export"
	}

	s.LogAsync(event)
}

// LogCleanup records a retention cleanup run.
func (s *Service) LogCleanup(deleted int64, retentionDays int, err error) {
	event := &entities.AuditEvent{
		EventType:   entities.AuditEventCleanup,
		Action:      "audit_cleanup",
		Description: "Removed expired audit events",
		EntryCount:  int(deleted),
		Status:      entities.AuditStatusSuccess,
	}

	if mdBytes, e := json.Marshal(map[string]any{"retention_days": retentionDays}); e == nil {
		event.Metadata = string(mdBytes)
	}

	if err != nil {
		event.Status = entities.AuditStatusFailed
		event.ErrorMsg = truncate(err.Error(), 500)
	}

	s.LogAsync(event)
}

// GetEvents retrieves paginated audit events, optionally filtered by format.
func (s *Service) GetEvents(format string, limit, offset int) ([]entities.AuditEvent, int64, error) {
	return s.repo.GetEvents(format, limit, offset)
}

// GetEventsByType retrieves audit events filtered by type.
func (s *Service) GetEventsByType(eventType entities.AuditEventType, limit, offset int) ([]entities.AuditEvent, int64, error) {
	return s.repo.GetEventsByType(eventType, limit, offset)
}

// GetEventByImportID retrieves the audit record for a single import run.
func (s *Service) GetEventByImportID(importID string) (*entities.AuditEvent, error) {
	return s.repo.GetEventByImportID(importID)
}

// DeleteOldEvents removes events older than the specified duration.
func (s *Service) DeleteOldEvents(retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)
	return s.repo.DeleteOldEvents(cutoff)
}

func formatCount(n int) string {
	if n == 1 {
		return "1 entry"
	}
	return strconv.Itoa(n) + " entries"
}

// truncate shortens a string to max length.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
