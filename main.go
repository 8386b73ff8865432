// @title Cafe Menu Digital API
// @version 1.0
// @description Bilingual restaurant menu with an admin console API
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"html/template"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/apenara/cafe-menu-digital/catalog"
	"github.com/apenara/cafe-menu-digital/config"
	"github.com/apenara/cafe-menu-digital/controllers/site/menu_controller"
	_ "github.com/apenara/cafe-menu-digital/docs"
	"github.com/apenara/cafe-menu-digital/i18n"
	"github.com/apenara/cafe-menu-digital/middleware"
	"github.com/apenara/cafe-menu-digital/models"
	"github.com/apenara/cafe-menu-digital/routes"
	"github.com/apenara/cafe-menu-digital/services"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Connect to DB and Redis
	config.InitDB()
	config.ConnectRedis()

	// Initialize Cloudinary for admin image uploads
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")
	if err := services.InitCloudinary(cloudName, apiKey, apiSecret); err != nil {
		log.Fatalf("Failed to initialize Cloudinary: %v", err)
	}

	// Initialize JWT service for admin auth
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable not set")
	}
	if err := services.InitJWTService(jwtSecret); err != nil {
		log.Fatalf("Failed to initialize JWT service: %v", err)
	}

	// Public pages read through the catalog layer on the raw pool
	menu_controller.Init(catalog.NewStore(config.MenuDB))

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Templates for the public site
	router.SetFuncMap(template.FuncMap{
		"t": i18n.T,
		"formatPrice": func(price float64) string {
			return fmt.Sprintf("$%.2f", price)
		},
	})
	router.LoadHTMLGlob("web/templates/*.html")
	router.Static("/static", "./web/static")

	// Admin API
	api := router.Group("/api/v1")
	api.Use(middleware.RateLimiter(100, time.Minute))
	routes.SetupAdminRoutes(api)

	// Public menu pages
	routes.SetupSiteRoutes(router)

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	fmt.Printf("Server is running on http://localhost:%s/%s\n", port, models.DefaultLocale)
	router.Run(":" + port)
}
