package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/credport/credport/internal/audit"
	"github.com/credport/credport/internal/entities"
	"github.com/credport/credport/internal/importers"
)

// ImportResponse is the response for a successful import.
type ImportResponse struct {
	ImportID     string           `json:"import_id"`
	Format       string           `json:"format"`
	Count        int              `json:"count"`
	CountsByType map[string]int   `json:"counts_by_type"`
	Entries      []entities.Entry `json:"entries"`
}

// ImportController handles password manager export uploads.
type ImportController struct {
	auditService   *audit.Service
	maxUploadBytes int64
}

// NewImportController creates a new ImportController. maxUploadSizeMB
// bounds the accepted file size; zero or negative disables the check.
func NewImportController(auditService *audit.Service, maxUploadSizeMB int64) *ImportController {
	return &ImportController{
		auditService:   auditService,
		maxUploadBytes: maxUploadSizeMB << 20,
	}
}

// Import handles POST /api/import.
//
// Expects a multipart form with an "export_file" file field, a "format"
// field naming one of the supported formats, and an optional "password"
// field for encrypted formats. Responds with the parsed entries; nothing
// credential-shaped is persisted server side.
func (ic *ImportController) Import(c *gin.Context) {
	format := c.PostForm("format")
	if format == "" {
		respondBadRequest(c, "format is required")
		return
	}

	fileHeader, err := c.FormFile("export_file")
	if err != nil {
		respondBadRequest(c, "export_file is required")
		return
	}

	if ic.maxUploadBytes > 0 && fileHeader.Size > ic.maxUploadBytes {
		respondError(c, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("export file exceeds the %d MB limit", ic.maxUploadBytes>>20),
			"file_too_large")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondInternalError(c, err, "open uploaded file")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		respondInternalError(c, err, "read uploaded file")
		return
	}

	importID := uuid.NewString()
	started := time.Now()

	entries, err := importers.Parse(importers.Request{
		Format:   importers.Format(format),
		Content:  content,
		Password: c.PostForm("password"),
	})
	if err != nil {
		ic.logAudit(importID, format, nil, time.Since(started), err)
		respondImportError(c, err)
		return
	}

	counts := importers.CountByType(entries)
	ic.logAudit(importID, format, counts, time.Since(started), nil)

	c.JSON(http.StatusOK, ImportResponse{
		ImportID:     importID,
		Format:       format,
		Count:        len(entries),
		CountsByType: counts,
		Entries:      entries,
	})
}

func (ic *ImportController) logAudit(importID, format string, counts map[string]int, duration time.Duration, err error) {
	if ic.auditService == nil {
		return
	}
	total := 0
	for _, n := range counts {
		total += n
	}
	ic.auditService.LogImport(importID, format, total, counts, duration, err)
}

// respondImportError maps the import error taxonomy onto HTTP statuses:
// bad requests for caller mistakes, 401 for a wrong decryption password,
// and 422 for files that do not parse as the declared format.
func respondImportError(c *gin.Context, err error) {
	var inputErr *importers.InputError
	var formatErr *importers.UnsupportedFormatError
	var authErr *importers.AuthenticationError
	var corruptErr *importers.CorruptInputError

	switch {
	case errors.As(err, &inputErr):
		respondError(c, http.StatusBadRequest, inputErr.Error(), "invalid_input")
	case errors.As(err, &formatErr):
		respondError(c, http.StatusBadRequest, formatErr.Error(), "unsupported_format")
	case errors.As(err, &authErr):
		respondError(c, http.StatusUnauthorized, authErr.Error(), "incorrect_password")
	case errors.As(err, &corruptErr):
		respondError(c, http.StatusUnprocessableEntity, corruptErr.Error(), "corrupt_input")
	default:
		respondInternalError(c, err, "import")
	}
}
