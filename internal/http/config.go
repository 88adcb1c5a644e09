package http

import (
	"github.com/credport/credport/internal/audit"
	"github.com/credport/credport/internal/database"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router. This replaces a long parameter list
// in NewRouter for better maintainability.
type RouterConfig struct {
	// Core dependencies
	Database     *database.Database
	AuditService *audit.Service

	// bcrypt hash guarding the API; empty disables auth
	APIPasswordHash string

	// Upper bound for uploaded export files
	MaxUploadSizeMB int64

	// Application info
	Version string
}
