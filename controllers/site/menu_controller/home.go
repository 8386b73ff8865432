package menu_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/apenara/cafe-menu-digital/config"
	"github.com/apenara/cafe-menu-digital/middleware"
	"github.com/apenara/cafe-menu-digital/models"
)

// Home renders the category grid for the active locale.
func Home(c *gin.Context) {
	locale := middleware.GetLocaleFromContext(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	categories, err := store.ListCategories(ctx)
	if err != nil {
		renderError(c, locale, err)
		return
	}

	c.HTML(http.StatusOK, "home.html", gin.H{
		"Locale":      locale,
		"Categories":  categories,
		"LocaleLinks": localeLinks(c.Request.URL.Path, locale),
	})
}

// RedirectToDefaultLocale sends the bare root to the default locale.
func RedirectToDefaultLocale(c *gin.Context) {
	c.Redirect(http.StatusFound, "/"+string(models.DefaultLocale))
}
