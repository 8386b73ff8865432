package auth_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/apenara/cafe-menu-digital/middleware"
	"github.com/apenara/cafe-menu-digital/models"
)

// AdminLogout godoc
// @Summary Logout admin
// @Description Clear the admin token cookie
// @Tags Admin - Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Router /admin/logout [post]
func AdminLogout(c *gin.Context) {
	if adminID, ok := middleware.GetAdminIDFromContext(c); ok {
		log.Printf("[admin.logout] admin logging out: %s", adminID)
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		"admin_token",
		"",
		-1,
		"/",
		"",
		false,
		true,
	)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logout successful", nil))
}
