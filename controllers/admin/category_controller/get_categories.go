package category_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	menu_cache "github.com/apenara/cafe-menu-digital/cache"
	"github.com/apenara/cafe-menu-digital/config"
	"github.com/apenara/cafe-menu-digital/models"
)

// GetCategories godoc
// @Summary List categories for the admin panel
// @Description Return the remembered category list, refreshing from the store on first read or when refresh=true
// @Tags Admin - Categories
// @Produce json
// @Param refresh query bool false "Force a refresh from the store"
// @Success 200 {object} models.ApiResponse{data=[]models.Category}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/categories [get]
func GetCategories(c *gin.Context) {
	refresh := c.Query("refresh") == "true"

	list, ok := menu_cache.Categories()
	if refresh || !ok {
		ctx, cancel := config.WithTimeout()
		defer cancel()

		var fresh []models.Category
		if err := config.MenuGorm.WithContext(ctx).
			Order("sort_order ASC").
			Find(&fresh).Error; err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch categories"))
			return
		}
		menu_cache.RefreshCategories(fresh)
		list = fresh
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched", list))
}
