package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oszuidwest/zwfm-beacon/internal/metrics"
	"github.com/oszuidwest/zwfm-beacon/internal/utils"
)

// Index renders the home page. The transmission log is refreshed before it is read.
func (h *Handlers) Index(c *gin.Context) {
	h.transmissions.Refresh(metrics.TriggerRequest)

	page := h.newPage("Home", "/")
	page.Transmissions = h.transmissions.Snapshot()
	h.renderPage(c, http.StatusOK, "index.html", page)
}

// Software renders the software page.
func (h *Handlers) Software(c *gin.Context) {
	h.renderPage(c, http.StatusOK, "software.html", h.newPage("Software", "/software"))
}

// AboutRedirect permanently moves /about to /software.
func (h *Handlers) AboutRedirect(c *gin.Context) {
	c.Redirect(http.StatusPermanentRedirect, "/software")
}

// NotFound answers unknown API paths with a problem document and everything else with the HTML 404 page.
func (h *Handlers) NotFound(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		utils.ProblemNotFound(c, "Endpoint")
		return
	}
	h.renderPage(c, http.StatusNotFound, "404.html", h.newPage("404 Not Found", ""))
}
