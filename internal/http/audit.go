package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/credport/credport/internal/audit"
	"github.com/credport/credport/internal/entities"
)

// AuditController exposes the import audit trail as JSON.
type AuditController struct {
	auditService *audit.Service
}

func NewAuditController(auditService *audit.Service) *AuditController {
	return &AuditController{
		auditService: auditService,
	}
}

// GetAuditEvents returns paginated audit events.
// GET /api/audit?limit=25&offset=0&format=lastpass&type=import
func (ac *AuditController) GetAuditEvents(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "25"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	if limit < 1 || limit > 100 {
		limit = 25
	}
	if offset < 0 {
		offset = 0
	}

	var events []entities.AuditEvent
	var total int64
	var err error

	if eventType := c.Query("type"); eventType != "" {
		events, total, err = ac.auditService.GetEventsByType(entities.AuditEventType(eventType), limit, offset)
	} else {
		events, total, err = ac.auditService.GetEvents(c.Query("format"), limit, offset)
	}

	if err != nil {
		respondInternalError(c, err, "list audit events")
		return
	}

	c.JSON(http.StatusOK, PaginatedResponse{
		Data:    events,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasMore: int64(offset+len(events)) < total,
	})
}

// GetAuditEvent returns the audit record for a single import run.
// GET /api/audit/:import_id
func (ac *AuditController) GetAuditEvent(c *gin.Context) {
	importID := c.Param("import_id")

	event, err := ac.auditService.GetEventByImportID(importID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "import not found", "not_found")
			return
		}
		respondInternalError(c, err, "get audit event")
		return
	}

	c.JSON(http.StatusOK, event)
}
