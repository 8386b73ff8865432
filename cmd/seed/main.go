package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/apenara/cafe-menu-digital/config"
	"github.com/apenara/cafe-menu-digital/models"
	"github.com/apenara/cafe-menu-digital/services"
)

// Seeds the database: runs migrations, creates the first admin account and,
// with -sample, a small bilingual menu to click around in.
func main() {
	sample := flag.Bool("sample", false, "also seed a sample bilingual menu")
	flag.Parse()

	_ = godotenv.Load()

	config.InitDB()
	defer config.CloseDB()

	log.Println("[seed] Running migrations...")
	if err := config.MenuGorm.AutoMigrate(&models.Admin{}, &models.Category{}, &models.Product{}); err != nil {
		log.Fatalf("[seed] Migration failed: %v", err)
	}

	if err := seedAdmin(); err != nil {
		log.Fatalf("[seed] Admin seeding failed: %v", err)
	}

	if *sample {
		if err := seedSampleMenu(); err != nil {
			log.Fatalf("[seed] Sample menu seeding failed: %v", err)
		}
	}

	log.Println("[seed] Done")
}

func seedAdmin() error {
	email := strings.TrimSpace(os.Getenv("SEED_ADMIN_EMAIL"))
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	name := strings.TrimSpace(os.Getenv("SEED_ADMIN_NAME"))

	reader := bufio.NewReader(os.Stdin)
	if email == "" {
		fmt.Print("Admin email: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		email = strings.TrimSpace(line)
	}
	if name == "" {
		fmt.Print("Admin name: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		name = strings.TrimSpace(line)
	}
	if password == "" {
		fmt.Print("Admin password: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		password = strings.TrimRight(line, "\r\n")
	}

	auth := services.GetAdminAuthService()
	if !auth.ValidatePassword(password) {
		return fmt.Errorf("password must be at least 8 characters")
	}

	var existing models.Admin
	err := config.MenuGorm.Where("email = ?", email).First(&existing).Error
	if err == nil {
		log.Printf("[seed] Admin %s already exists, skipping", email)
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	admin := models.Admin{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
	}
	if err := config.MenuGorm.Create(&admin).Error; err != nil {
		return err
	}
	log.Printf("[seed] Created admin %s (%s)", admin.Email, admin.ID)
	return nil
}

func seedSampleMenu() error {
	var count int64
	if err := config.MenuGorm.Model(&models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("[seed] Categories already present, skipping sample menu")
		return nil
	}

	categories := []models.Category{
		{
			Name:        models.LocalizedText{models.LocaleES: "Cafés", models.LocaleEN: "Coffee"},
			Description: models.LocalizedText{models.LocaleES: "Granos tostados en casa", models.LocaleEN: "Beans roasted in-house"},
			SortOrder:   1,
		},
		{
			Name:        models.LocalizedText{models.LocaleES: "Postres", models.LocaleEN: "Desserts"},
			Description: models.LocalizedText{models.LocaleES: "Hechos cada mañana", models.LocaleEN: "Made fresh every morning"},
			SortOrder:   2,
		},
	}
	for i := range categories {
		if err := config.MenuGorm.Create(&categories[i]).Error; err != nil {
			return err
		}
	}

	products := []models.Product{
		{
			CategoryID:  categories[0].ID,
			Name:        models.LocalizedText{models.LocaleES: "Café con leche", models.LocaleEN: "Latte"},
			Description: models.LocalizedText{models.LocaleES: "Espresso doble con leche vaporizada", models.LocaleEN: "Double espresso with steamed milk"},
			Price:       4.50,
			Available:   true,
			SortOrder:   1,
			Ingredients: models.LocalizedList{
				models.LocaleES: {"espresso", "leche"},
				models.LocaleEN: {"espresso", "milk"},
			},
			Allergens: models.StringList{"lactose"},
		},
		{
			CategoryID:  categories[0].ID,
			Name:        models.LocalizedText{models.LocaleES: "Americano", models.LocaleEN: "Americano"},
			Description: models.LocalizedText{models.LocaleES: "Espresso con agua caliente", models.LocaleEN: "Espresso with hot water"},
			Price:       3.00,
			Available:   true,
			SortOrder:   2,
		},
		{
			CategoryID:  categories[1].ID,
			Name:        models.LocalizedText{models.LocaleES: "Tres leches", models.LocaleEN: "Tres leches cake"},
			Description: models.LocalizedText{models.LocaleES: "Bizcocho bañado en tres leches", models.LocaleEN: "Sponge cake soaked in three milks"},
			Price:       5.75,
			Available:   true,
			SortOrder:   1,
			Ingredients: models.LocalizedList{
				models.LocaleES: {"bizcocho", "leche condensada", "crema"},
				models.LocaleEN: {"sponge cake", "condensed milk", "cream"},
			},
			Allergens: models.StringList{"gluten", "lactose", "egg"},
		},
	}
	for i := range products {
		if err := config.MenuGorm.Create(&products[i]).Error; err != nil {
			return err
		}
	}

	log.Printf("[seed] Seeded %d categories and %d products", len(categories), len(products))
	return nil
}
