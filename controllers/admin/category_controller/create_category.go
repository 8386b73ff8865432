package category_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	menu_cache "github.com/apenara/cafe-menu-digital/cache"
	"github.com/apenara/cafe-menu-digital/config"
	"github.com/apenara/cafe-menu-digital/models"
)

// CreateCategory godoc
// @Summary Create a category
// @Description Create a category from the admin form. An image file part, when present, is uploaded first
// @Tags Admin - Categories
// @Accept mpfd
// @Produce json
// @Param category formData models.CategoryForm true "Category fields"
// @Param image formData file false "Category image"
// @Success 201 {object} models.ApiResponse{data=models.Category}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/categories [post]
func CreateCategory(c *gin.Context) {
	// Step 1: Bind and validate required form fields
	var form models.CategoryForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	// Step 2: Upload the image first. A failure here aborts the write.
	imageURL, err := uploadedImageURL(c)
	if err != nil {
		log.Printf("[category.create] image upload failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to upload image"))
		return
	}

	// Step 3: Insert the document and adopt the generated id
	category := form.Document(imageURL)

	ctx, cancel := config.WithTimeout()
	defer cancel()
	if err := config.MenuGorm.WithContext(ctx).Create(&category).Error; err != nil {
		// An already-uploaded image is not rolled back here.
		log.Printf("[category.create] insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create category"))
		return
	}

	// Step 4: Merge into the remembered list
	menu_cache.UpsertCategory(category)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Category created successfully", category))
}
