package category_controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/apenara/cafe-menu-digital/config"
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
	return services.GetCloudinaryService().UploadImage(ctx, file, header.Filename, "categories")
}
