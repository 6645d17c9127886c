package handlers

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPageFailureReturns500(t *testing.T) {
	gin.SetMode(gin.TestMode)
	pages := template.Must(template.New("broken.html").Parse(`<p>{{.NoSuchField}}</p>`))
	h := &Handlers{pages: pages}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	h.renderPage(c, http.StatusOK, "broken.html", pageData{Title: "Home"})

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "template render error")
	assert.NotContains(t, w.Body.String(), "<p>")
}

func TestRenderPageWritesHTML(t *testing.T) {
	gin.SetMode(gin.TestMode)
	pages := template.Must(template.New("ok.html").Parse(`<h1>{{.Title}}</h1>`))
	h := &Handlers{pages: pages}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	h.renderPage(c, http.StatusNotFound, "ok.html", pageData{Title: "Signal lost"})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Equal(t, "<h1>Signal lost</h1>", w.Body.String())
}
