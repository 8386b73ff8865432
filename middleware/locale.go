package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/apenara/cafe-menu-digital/models"
)

// SetLocale pins the active locale for a locale-prefixed route group.
// The supported set is closed: each locale gets its own group, and any
// other prefix falls through to the not-found handler with nothing else
// rendered.
func SetLocale(locale models.Locale) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("locale", locale)
		c.Next()
	}
}

// GetLocaleFromContext returns the active locale, defaulting when no
// locale group matched.
func GetLocaleFromContext(c *gin.Context) models.Locale {
	if v, exists := c.Get("locale"); exists {
		if l, ok := v.(models.Locale); ok {
			return l
		}
	}
	return models.DefaultLocale
}
