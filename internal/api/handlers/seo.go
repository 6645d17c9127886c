package handlers

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// sitemapPaths lists the public pages in sitemap order.
var sitemapPaths = []string{"/", "/software"}

type sitemapURL struct {
	Loc string `xml:"loc"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// Robots serves robots.txt pointing crawlers at the sitemap.
func (h *Handlers) Robots(c *gin.Context) {
	body := fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", h.siteURL())
	c.String(http.StatusOK, body)
}

// Sitemap serves sitemap.xml for the public pages.
func (h *Handlers) Sitemap(c *gin.Context) {
	set := sitemapURLSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	base := h.siteURL()
	for _, p := range sitemapPaths {
		set.URLs = append(set.URLs, sitemapURL{Loc: base + p})
	}
	c.XML(http.StatusOK, set)
}

func (h *Handlers) siteURL() string {
	return strings.TrimRight(h.config.Site.URL, "/")
}
