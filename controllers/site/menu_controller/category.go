package menu_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/apenara/cafe-menu-digital/catalog"
	"github.com/apenara/cafe-menu-digital/config"
	"github.com/apenara/cafe-menu-digital/middleware"
)

// CategoryPage renders one category's product grid. An unresolved id is
// terminal: the not-found page renders and nothing else does.
func CategoryPage(c *gin.Context) {
	locale := middleware.GetLocaleFromContext(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	category, err := store.GetCategory(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			renderNotFound(c, locale)
		} else {
			renderError(c, locale, err)
		}
		return
	}

	products, err := store.ListProducts(ctx, category.ID.String())
	if err != nil {
		renderError(c, locale, err)
		return
	}

	c.HTML(http.StatusOK, "category.html", gin.H{
		"Locale":      locale,
		"Category":    category,
		"Products":    products,
		"LocaleLinks": localeLinks(c.Request.URL.Path, locale),
	})
}
