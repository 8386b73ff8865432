package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/apenara/cafe-menu-digital/controllers/site/menu_controller"
	"github.com/apenara/cafe-menu-digital/middleware"
	"github.com/apenara/cafe-menu-digital/models"
)

// SetupSiteRoutes registers the public, locale-prefixed menu pages. The
// locale set is closed, so each supported locale gets its own group;
// everything else lands on the not-found page.
func SetupSiteRoutes(router *gin.Engine) {
	router.GET("/", menu_controller.RedirectToDefaultLocale)

	for _, locale := range models.Locales() {
		site := router.Group("/" + string(locale))
		site.Use(middleware.SetLocale(locale))
		{
			site.GET("", menu_controller.Home)
			site.GET("/category/:id", menu_controller.CategoryPage)
			site.GET("/product/:id", menu_controller.ProductPage)
		}
	}

	router.NoRoute(menu_controller.NotFound)
}
