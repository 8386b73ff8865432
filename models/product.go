package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product is a menu item belonging to a category. CategoryID carries no
// foreign-key constraint: deleting a category can leave products with a
// dangling reference, which renders as an empty category name rather
// than an error.
type Product struct {
	ID          uuid.UUID     `json:"id" gorm:"type:uuid;primaryKey"`
	CategoryID  uuid.UUID     `json:"category_id" gorm:"type:uuid;not null;index"`
	Name        LocalizedText `json:"name" gorm:"type:jsonb;not null"`
	Description LocalizedText `json:"description,omitempty" gorm:"type:jsonb;not null;default:'{}'"`
	Price       float64       `json:"price" gorm:"type:numeric(12,2);not null;check:price >= 0"`
	Image       string        `json:"image,omitempty" gorm:"type:text"`
	// No default tag: GORM drops zero-valued fields that carry one from
	// the INSERT, which would turn available=false into the column default.
	Available   bool          `json:"available" gorm:"not null"`
	SortOrder   int           `json:"order" gorm:"column:sort_order;not null;default:0;index"`
	Ingredients LocalizedList `json:"ingredients,omitempty" gorm:"type:jsonb;not null;default:'{}'"`
	Allergens   StringList    `json:"allergens,omitempty" gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt   time.Time     `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time     `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Product) TableName() string {
	return "products"
}

// Validate enforces the document shape at the data-access boundary.
func (p *Product) Validate() error {
	if !p.Name.HasAllLocales() {
		return &SchemaError{Collection: "products", ID: p.ID.String(), Reason: "name must carry all locales"}
	}
	if p.Price < 0 {
		return &SchemaError{Collection: "products", ID: p.ID.String(), Reason: "price must be non-negative"}
	}
	return nil
}

// ProductForm is the admin panel's create/edit form. List fields arrive
// comma-separated; the image as a separate multipart file part.
type ProductForm struct {
	CategoryID    string  `form:"category_id" binding:"required,uuid" example:"018d6cc9-94b0-450f-8ce3-a7892c1752c7"`
	NameES        string  `form:"name_es" binding:"required" example:"Tortilla de patatas"`
	NameEN        string  `form:"name_en" binding:"required" example:"Spanish omelette"`
	DescriptionES string  `form:"description_es"`
	DescriptionEN string  `form:"description_en"`
	Price         float64 `form:"price" binding:"min=0" example:"9.5"`
	Available     bool    `form:"available"`
	SortOrder     int     `form:"order" example:"1"`
	IngredientsES string  `form:"ingredients_es" example:"patata, huevo, cebolla"`
	IngredientsEN string  `form:"ingredients_en" example:"potato, egg, onion"`
	Allergens     string  `form:"allergens" example:"egg"`
}

// Document builds the full replacement document from the form.
func (f *ProductForm) Document(imageURL string) Product {
	return Product{
		CategoryID: uuid.MustParse(f.CategoryID),
		Name: LocalizedText{
			LocaleES: f.NameES,
			LocaleEN: f.NameEN,
		},
		Description: LocalizedText{
			LocaleES: f.DescriptionES,
			LocaleEN: f.DescriptionEN,
		},
		Price:     f.Price,
		Image:     imageURL,
		Available: f.Available,
		SortOrder: f.SortOrder,
		Ingredients: LocalizedList{
			LocaleES: SplitList(f.IngredientsES),
			LocaleEN: SplitList(f.IngredientsEN),
		},
		Allergens: SplitList(f.Allergens),
	}
}

// ProductRow is an admin list row: the product plus its category name
// resolved against the remembered category list. A dangling reference
// resolves to an empty string.
type ProductRow struct {
	Product
	CategoryName LocalizedText `json:"category_name"`
}

// SplitList parses a comma-separated form field into an ordered list,
// trimming whitespace and dropping empty entries.
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
