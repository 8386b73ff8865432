// Package menu_controller renders the public menu pages. Pages fetch
// through the catalog read layer and render locale-aware cards; every
// failure degrades to an error or not-found page, never a blank crash.
package menu_controller

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/apenara/cafe-menu-digital/catalog"
	"github.com/apenara/cafe-menu-digital/middleware"
	"github.com/apenara/cafe-menu-digital/models"
)

var store *catalog.Store

// Init wires the catalog store the page handlers read from.
func Init(s *catalog.Store) {
	store = s
}

// LocaleLink is one entry of the locale switcher: the same path with
// the locale segment rewritten.
type LocaleLink struct {
	Code   models.Locale
	Path   string
	Active bool
}

// localeLinks rewrites the current path's locale segment for every
// supported locale, preserving the remaining path.
func localeLinks(path string, active models.Locale) []LocaleLink {
	rest := ""
	trimmed := strings.TrimPrefix(path, "/")
	if i := strings.Index(trimmed, "/"); i >= 0 {
		rest = trimmed[i:]
	}

	links := make([]LocaleLink, 0, len(models.Locales()))
	for _, l := range models.Locales() {
		links = append(links, LocaleLink{
			Code:   l,
			Path:   "/" + string(l) + rest,
			Active: l == active,
		})
	}
	return links
}

// NotFound is the catch-all for unmatched paths, including unsupported
// locale prefixes.
func NotFound(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Not found"))
		return
	}
	renderNotFound(c, middleware.GetLocaleFromContext(c))
}

func renderNotFound(c *gin.Context, locale models.Locale) {
	c.HTML(http.StatusNotFound, "not_found.html", gin.H{
		"Locale":      locale,
		"LocaleLinks": localeLinks(c.Request.URL.Path, locale),
	})
}

func renderError(c *gin.Context, locale models.Locale, err error) {
	log.Printf("[site] render failed on %s: %v", c.Request.URL.Path, err)
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{
		"Locale":      locale,
		"LocaleLinks": localeLinks(c.Request.URL.Path, locale),
	})
}
