package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is a top-level menu grouping with localized text and a
// display order. `order` is an author-supplied sort key with no
// uniqueness guarantee; ties keep store order.
type Category struct {
	ID          uuid.UUID     `json:"id" gorm:"type:uuid;primaryKey"`
	Name        LocalizedText `json:"name" gorm:"type:jsonb;not null"`
	Description LocalizedText `json:"description,omitempty" gorm:"type:jsonb;not null;default:'{}'"`
	Image       string        `json:"image,omitempty" gorm:"type:text"`
	SortOrder   int           `json:"order" gorm:"column:sort_order;not null;default:0;index"`
	CreatedAt   time.Time     `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time     `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Category) TableName() string {
	return "categories"
}

// Validate enforces the document shape the store itself does not:
// a name variant for every supported locale.
func (c *Category) Validate() error {
	if !c.Name.HasAllLocales() {
		return &SchemaError{Collection: "categories", ID: c.ID.String(), Reason: "name must carry all locales"}
	}
	return nil
}

// CategoryForm is the admin panel's create/edit form. Image arrives as a
// separate multipart file part, not a form field.
type CategoryForm struct {
	NameES        string `form:"name_es" binding:"required" example:"Entradas"`
	NameEN        string `form:"name_en" binding:"required" example:"Starters"`
	DescriptionES string `form:"description_es"`
	DescriptionEN string `form:"description_en"`
	SortOrder     int    `form:"order" example:"1"`
}

// Document builds the full replacement document from the form. Updates
// overwrite every field, so the form is the single source of truth for
// everything except the image URL.
func (f *CategoryForm) Document(imageURL string) Category {
	return Category{
		Name: LocalizedText{
			LocaleES: f.NameES,
			LocaleEN: f.NameEN,
		},
		Description: LocalizedText{
			LocaleES: f.DescriptionES,
			LocaleEN: f.DescriptionEN,
		},
		Image:     imageURL,
		SortOrder: f.SortOrder,
	}
}
