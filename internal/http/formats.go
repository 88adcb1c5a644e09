package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/credport/credport/internal/importers"
)

// FormatInfo describes one supported source export format.
type FormatInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Encrypted   bool   `json:"encrypted"`
}

// FormatsResponse is the response for GET /api/formats.
type FormatsResponse struct {
	Formats []FormatInfo `json:"formats"`
}

var formatDescriptions = map[string]FormatInfo{
	string(importers.FormatKeePassCSV): {
		Description: "KeePass CSV export (current and legacy column layouts)",
	},
	string(importers.FormatKeePassXML): {
		Description: "KeePass 2.x unencrypted XML export",
	},
	string(importers.FormatKDBX): {
		Description: "KeePass encrypted database (.kdbx), requires the master password",
		Encrypted:   true,
	},
	string(importers.FormatLastPass): {
		Description: "LastPass CSV export including typed secure notes",
	},
	string(importers.FormatNordPass): {
		Description: "NordPass CSV export",
	},
}

// FormatsController lists the supported import formats.
type FormatsController struct{}

func NewFormatsController() *FormatsController {
	return &FormatsController{}
}

// List handles GET /api/formats.
func (fc *FormatsController) List(c *gin.Context) {
	formats := make([]FormatInfo, 0, len(formatDescriptions))
	for _, name := range importers.SupportedFormats() {
		info := formatDescriptions[name]
		info.Name = name
		formats = append(formats, info)
	}
	c.JSON(http.StatusOK, FormatsResponse{Formats: formats})
}
