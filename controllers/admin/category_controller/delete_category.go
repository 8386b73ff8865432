package category_controller

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

// DeleteCategory godoc
// @Summary Delete a category
// @Description Delete a category and best-effort delete its stored image. Products keep their category reference
// @Tags Admin - Categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/categories/{id} [delete]
func DeleteCategory(c *gin.Context) {
	// Step 1: Parse category ID
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Step 2: Check if category exists
	var category models.Category
	if err := config.MenuGorm.WithContext(ctx).First(&category, "id = ?", categoryID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Category not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	// Step 3: Delete the document. There is no FK constraint: products
	// referencing this category are left dangling and render their
	// category cell empty.
	if err := config.MenuGorm.WithContext(ctx).Delete(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete category"))
		return
	}

	// Step 4: Best-effort image cleanup. A failure is logged, never
	// surfaced, and does not block removal from the remembered list.
	if category.Image != "" {
		if err := services.GetCloudinaryService().DeleteImageByURL(ctx, category.Image); err != nil {
			log.Printf("[category.delete] image cleanup failed for %s: %v", categoryID, err)
		}
	}

	// Step 5: Remove from the remembered list
	menu_cache.RemoveCategory(categoryID)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category deleted successfully", nil))
}
