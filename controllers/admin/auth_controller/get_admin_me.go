package auth_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/apenara/cafe-menu-digital/config"
	"github.com/apenara/cafe-menu-digital/middleware"
	"github.com/apenara/cafe-menu-digital/models"
)

// GetAdminMe godoc
// @Summary Get current admin
// @Description Return the account of the authenticated admin
// @Tags Admin - Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.AdminPublic}
// @Failure 401 {object} models.ApiResponse
// @Router /admin/me [get]
func GetAdminMe(c *gin.Context) {
	adminID, ok := middleware.GetAdminIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var admin models.Admin
	if err := config.MenuGorm.WithContext(ctx).
		First(&admin, "id = ?", adminID).Error; err != nil {
		log.Printf("[admin.me] failed to fetch admin %s: %v", adminID, err)
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - admin not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Admin fetched", admin.Public()))
}
