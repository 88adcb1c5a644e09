package entities

import "time"

type AuditEventType string

const (
	AuditEventImport   AuditEventType = "import"
	AuditEventCleanup  AuditEventType = "cleanup"
	AuditEventSettings AuditEventType = "settings"
)

type AuditStatus string

const (
	AuditStatusSuccess AuditStatus = "success"
	AuditStatusFailed  AuditStatus = "failed"
)

// AuditEvent records operation metadata for an import run. It never stores
// credential values, only counts and outcome.
type AuditEvent struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	ImportID    string         `gorm:"index;size:36" json:"import_id,omitempty"` // UUID assigned per import run
	EventType   AuditEventType `gorm:"index;size:50" json:"event_type"`
	Action      string         `gorm:"size:100" json:"action"`      // e.g., "lastpass_import"
	Description string         `gorm:"size:500" json:"description"` // Human-readable summary
	Format      string         `gorm:"index;size:50" json:"format,omitempty"`
	EntryCount  int            `json:"entry_count"`
	Metadata    string         `gorm:"type:text" json:"metadata,omitempty"` // JSON for extra data (per-type counts)
	DurationMs  int64          `json:"duration_ms,omitempty"`
	Status      AuditStatus    `gorm:"size:20" json:"status"`
	ErrorMsg    string         `gorm:"size:500" json:"error_msg,omitempty"`
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`
}

func (AuditEvent) TableName() string {
	return "audit_events"
}
