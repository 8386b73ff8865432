package product_controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	menu_cache "github.com/apenara/cafe-menu-digital/cache"
	"github.com/apenara/cafe-menu-digital/config"
	"github.com/apenara/cafe-menu-digital/models"
	"github.com/apenara/cafe-menu-digital/services"
)

// uploadedImageURL extracts the optional image file part from the form
// and uploads it, returning its public URL. Returns "" when the form
// carried no file.
func uploadedImageURL(c *gin.Context) (string, error) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", nil
		}
		return "", err
	}
	defer file.Close()

	ctx, cancel := config.WithCustomTimeout(30 * time.Second)
	defer cancel()
	return services.GetCloudinaryService().UploadImage(ctx, file, header.Filename, "products")
}

// ensureCategoriesRemembered loads the category list into the cache when
// it has not been read yet, so product rows can resolve category names.
func ensureCategoriesRemembered() error {
	if _, ok := menu_cache.Categories(); ok {
		return nil
	}
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var categories []models.Category
	if err := config.MenuGorm.WithContext(ctx).
		Order("sort_order ASC").
		Find(&categories).Error; err != nil {
		return err
	}
	menu_cache.RefreshCategories(categories)
	return nil
}

// productRows resolves each product's category name against the
// remembered category list. A dangling reference resolves to an empty
// mapping, not an error.
func productRows(products []models.Product) []models.ProductRow {
	rows := make([]models.ProductRow, len(products))
	for i, p := range products {
		rows[i] = models.ProductRow{
			Product:      p,
			CategoryName: menu_cache.CategoryName(p.CategoryID),
		}
	}
	return rows
}
