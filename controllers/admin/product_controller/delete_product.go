package product_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	menu_cache "github.com/apenara/cafe-menu-digital/cache"
	"github.com/apenara/cafe-menu-digital/config"
	"github.com/apenara/cafe-menu-digital/models"
	"github.com/apenara/cafe-menu-digital/services"
)

// DeleteProduct godoc
// @Summary Delete a product
// @Description Delete a product and best-effort delete its stored image
// @Tags Admin - Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/products/{id} [delete]
func DeleteProduct(c *gin.Context) {
	// Step 1: Parse product ID
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Step 2: Check if product exists
	var product models.Product
	if err := config.MenuGorm.WithContext(ctx).First(&product, "id = ?", productID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	// Step 3: Delete the document
	if err := config.MenuGorm.WithContext(ctx).Delete(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete product"))
		return
	}

	// Step 4: Best-effort image cleanup. A failure is logged, never
	// surfaced, and does not block removal from the remembered list.
	if product.Image != "" {
		if err := services.GetCloudinaryService().DeleteImageByURL(ctx, product.Image); err != nil {
			log.Printf("[product.delete] image cleanup failed for %s: %v", productID, err)
		}
	}

	// Step 5: Remove from the remembered list
	menu_cache.RemoveProduct(productID)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product deleted successfully", nil))
}
