// Package handlers provides HTTP request handlers for the site pages and JSON API.
package handlers

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oszuidwest/zwfm-beacon/internal/clock"
	"github.com/oszuidwest/zwfm-beacon/internal/config"
	"github.com/oszuidwest/zwfm-beacon/internal/transmission"
	"github.com/oszuidwest/zwfm-beacon/pkg/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

// TransmissionLog is the subset of the transmission manager the handlers use.
type TransmissionLog interface {
	Refresh(trigger string) bool
	Snapshot() []transmission.Entry
	State() transmission.State
	Clock() clock.Clock
}

// Handlers contains all the dependencies needed by the HTTP handlers.
type Handlers struct {
	transmissions TransmissionLog
	config        *config.Config
	pages         *template.Template
}

// NewHandlers creates a new Handlers instance and parses the embedded page templates.
func NewHandlers(transmissions TransmissionLog, cfg *config.Config) (*Handlers, error) {
	pages, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page templates: %w", err)
	}
	return &Handlers{
		transmissions: transmissions,
		config:        cfg,
		pages:         pages,
	}, nil
}

// pageData is the view model shared by all page templates.
type pageData struct {
	Title         string
	CurrentPath   string
	CurrentYear   int
	Transmissions []transmission.Entry
}

func (h *Handlers) newPage(title, path string) pageData {
	return pageData{
		Title:       title,
		CurrentPath: path,
		CurrentYear: clock.CurrentYear(h.transmissions.Clock()),
	}
}

// renderPage executes a template into a buffer so a failure can still produce a clean 500.
func (h *Handlers) renderPage(c *gin.Context, status int, name string, data pageData) {
	var buf bytes.Buffer
	if err := h.pages.ExecuteTemplate(&buf, name, data); err != nil {
		logger.Error("Failed to render template %s: %v", name, err)
		c.String(http.StatusInternalServerError, "template render error: %v", err)
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}
