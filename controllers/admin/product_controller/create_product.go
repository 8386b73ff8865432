package product_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	menu_cache "github.com/apenara/cafe-menu-digital/cache"
	"github.com/apenara/cafe-menu-digital/config"
	"github.com/apenara/cafe-menu-digital/models"
)

// CreateProduct godoc
// @Summary Create a product
// @Description Create a product from the admin form. An image file part, when present, is uploaded first
// @Tags Admin - Products
// @Accept mpfd
// @Produce json
// @Param product formData models.ProductForm true "Product fields"
// @Param image formData file false "Product image"
// @Success 201 {object} models.ApiResponse{data=models.Product}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/products [post]
func CreateProduct(c *gin.Context) {
	// Step 1: Bind and validate required form fields
	var form models.ProductForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	// Step 2: Upload the image first. A failure here aborts the write.
	imageURL, err := uploadedImageURL(c)
	if err != nil {
		log.Printf("[product.create] image upload failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to upload image"))
		return
	}

	// Step 3: Insert the document and adopt the generated id
	product := form.Document(imageURL)

	ctx, cancel := config.WithTimeout()
	defer cancel()
	if err := config.MenuGorm.WithContext(ctx).Create(&product).Error; err != nil {
		// An already-uploaded image is not rolled back here.
		log.Printf("[product.create] insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create product"))
		return
	}

	// Step 4: Merge into the remembered list
	menu_cache.UpsertProduct(product)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Product created successfully", product))
}
