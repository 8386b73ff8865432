package menu_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/apenara/cafe-menu-digital/catalog"
	"github.com/apenara/cafe-menu-digital/config"
	"github.com/apenara/cafe-menu-digital/middleware"
)

// ProductPage renders a single product card in full.
func ProductPage(c *gin.Context) {
	locale := middleware.GetLocaleFromContext(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	product, err := store.GetProduct(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			renderNotFound(c, locale)
		} else {
			renderError(c, locale, err)
		}
		return
	}

	// The back link needs the category name; a dangling reference just
	// drops the link.
	category, err := store.GetCategory(ctx, product.CategoryID.String())
	if err != nil && !errors.Is(err, catalog.ErrNotFound) {
		renderError(c, locale, err)
		return
	}

	c.HTML(http.StatusOK, "product.html", gin.H{
		"Locale":      locale,
		"Product":     product,
		"Category":    category,
		"LocaleLinks": localeLinks(c.Request.URL.Path, locale),
	})
}
