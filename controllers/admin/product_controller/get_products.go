package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	menu_cache "github.com/apenara/cafe-menu-digital/cache"
	"github.com/apenara/cafe-menu-digital/config"
	"github.com/apenara/cafe-menu-digital/models"
)

// GetProducts godoc
// @Summary List products for the admin panel
// @Description Return the full remembered product list with resolved category names, refreshing from the store on first read or when refresh=true
// @Tags Admin - Products
// @Produce json
// @Param refresh query bool false "Force a refresh from the store"
// @Success 200 {object} models.ApiResponse{data=[]models.ProductRow}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/products [get]
func GetProducts(c *gin.Context) {
	refresh := c.Query("refresh") == "true"

	// The panel loads its full list eagerly; no pagination.
	list, ok := menu_cache.Products()
	if refresh || !ok {
		ctx, cancel := config.WithTimeout()
		defer cancel()

		var fresh []models.Product
		if err := config.MenuGorm.WithContext(ctx).
			Order("sort_order ASC").
			Find(&fresh).Error; err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
			return
		}
		menu_cache.RefreshProducts(fresh)
		list = fresh
	}

	if err := ensureCategoriesRemembered(); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch categories"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Products fetched", productRows(list)))
}
