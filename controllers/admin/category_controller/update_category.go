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
)

// UpdateCategory godoc
// @Summary Update a category
// @Description Overwrite the full category document from the admin form. Without a new image file the previous URL is kept
// @Tags Admin - Categories
// @Accept mpfd
// @Produce json
// @Param id path string true "Category ID"
// @Param category formData models.CategoryForm true "Category fields"
// @Param image formData file false "Replacement image"
// @Success 200 {object} models.ApiResponse{data=models.Category}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/categories/{id} [put]
func UpdateCategory(c *gin.Context) {
	// Step 1: Parse category ID
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category ID"))
		return
	}

	// Step 2: Bind the form
	var form models.CategoryForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Step 3: Find existing category
	var existing models.Category
	if err := config.MenuGorm.WithContext(ctx).First(&existing, "id = ?", categoryID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Category not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	// Step 4: Upload replacement image, or keep the previous URL
	imageURL, err := uploadedImageURL(c)
	if err != nil {
		log.Printf("[category.update] image upload failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to upload image"))
		return
	}
	if imageURL == "" {
		imageURL = existing.Image
	}

	// Step 5: Build the full replacement document and overwrite.
	// Edits set every field, not a partial patch.
	doc := form.Document(imageURL)
	doc.ID = existing.ID
	doc.CreatedAt = existing.CreatedAt
	if err := config.MenuGorm.WithContext(ctx).Save(&doc).Error; err != nil {
		log.Printf("[category.update] overwrite failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update category"))
		return
	}

	// Step 6: Merge into the remembered list
	menu_cache.UpsertCategory(doc)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category updated successfully", doc))
}
