package models

import (
	"reflect"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"patata", "huevo", "cebolla"}, SplitList("patata, huevo, cebolla"))
	assert.Equal(t, []string{"egg"}, SplitList("  egg  "))
	assert.Empty(t, SplitList(""))
	assert.Empty(t, SplitList(" , , "))
}

func TestProductFormDocumentOverwritesEveryField(t *testing.T) {
	catID := uuid.Must(uuid.NewV7())
	form := ProductForm{
		CategoryID:    catID.String(),
		NameES:        "Tortilla de patatas",
		NameEN:        "Spanish omelette",
		DescriptionES: "Con cebolla",
		Price:         9.5,
		Available:     true,
		SortOrder:     3,
		IngredientsES: "patata, huevo, cebolla",
		IngredientsEN: "potato, egg, onion",
		Allergens:     "egg",
	}

	doc := form.Document("https://res.cloudinary.com/demo/image/upload/v1/products/x.jpg")

	assert.Equal(t, catID, doc.CategoryID)
	assert.Equal(t, "Spanish omelette", doc.Name.Get(LocaleEN))
	assert.Equal(t, "Con cebolla", doc.Description.Get(LocaleEN))
	assert.Equal(t, 9.5, doc.Price)
	assert.True(t, doc.Available)
	assert.Equal(t, 3, doc.SortOrder)
	assert.Equal(t, []string{"potato", "egg", "onion"}, doc.Ingredients.Get(LocaleEN))
	assert.Equal(t, StringList{"egg"}, doc.Allergens)
	assert.NotEmpty(t, doc.Image)

	// The document is a full replacement: id and timestamps are zero
	// until the caller carries them over from the stored row.
	assert.Equal(t, uuid.Nil, doc.ID)
	assert.True(t, doc.CreatedAt.IsZero())
}

func TestAvailableColumnCarriesNoDefault(t *testing.T) {
	// GORM omits zero-valued fields with a default tag from the INSERT,
	// so a column default would silently flip available=false to true on
	// create.
	field, ok := reflect.TypeOf(Product{}).FieldByName("Available")
	require.True(t, ok)
	assert.NotContains(t, field.Tag.Get("gorm"), "default")
}

func TestProductValidate(t *testing.T) {
	p := Product{
		ID:    uuid.Must(uuid.NewV7()),
		Name:  LocalizedText{LocaleES: "Tortilla", LocaleEN: "Omelette"},
		Price: 9.5,
	}
	require.NoError(t, p.Validate())

	missing := p
	missing.Name = LocalizedText{LocaleES: "Tortilla"}
	err := missing.Validate()
	require.Error(t, err)
	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "products", schemaErr.Collection)

	negative := p
	negative.Price = -1
	assert.Error(t, negative.Validate())
}

func TestCategoryValidate(t *testing.T) {
	c := Category{
		ID:   uuid.Must(uuid.NewV7()),
		Name: LocalizedText{LocaleES: "Entradas", LocaleEN: "Starters"},
	}
	assert.NoError(t, c.Validate())

	c.Name = LocalizedText{LocaleEN: "Starters"}
	err := c.Validate()
	require.Error(t, err)
	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "categories", schemaErr.Collection)
}
