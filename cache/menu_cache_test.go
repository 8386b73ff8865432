package menu_cache

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apenara/cafe-menu-digital/models"
)

func category(nameES, nameEN string) models.Category {
	return models.Category{
		ID:   uuid.Must(uuid.NewV7()),
		Name: models.LocalizedText{models.LocaleES: nameES, models.LocaleEN: nameEN},
	}
}

func TestCategoriesNotLoadedUntilFirstRefresh(t *testing.T) {
	Invalidate()

	_, ok := Categories()
	assert.False(t, ok)

	RefreshCategories([]models.Category{category("Entradas", "Starters")})
	list, ok := Categories()
	require.True(t, ok)
	assert.Len(t, list, 1)
}

func TestRefreshCategoriesReplacesRememberedList(t *testing.T) {
	Invalidate()

	RefreshCategories([]models.Category{category("Entradas", "Starters"), category("Postres", "Desserts")})
	RefreshCategories([]models.Category{category("Bebidas", "Drinks")})

	list, ok := Categories()
	require.True(t, ok)
	require.Len(t, list, 1)
	assert.Equal(t, "Drinks", list[0].Name.Get(models.LocaleEN))
}

func TestUpsertCategoryUpdatesInPlaceOrAppends(t *testing.T) {
	Invalidate()

	first := category("Entradas", "Starters")
	second := category("Postres", "Desserts")
	RefreshCategories([]models.Category{first, second})

	first.Name = models.LocalizedText{models.LocaleES: "Tapas", models.LocaleEN: "Tapas"}
	UpsertCategory(first)

	list, _ := Categories()
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, "Tapas", list[0].Name.Get(models.LocaleEN))

	UpsertCategory(category("Bebidas", "Drinks"))
	list, _ = Categories()
	assert.Len(t, list, 3)
}

func TestRemoveCategory(t *testing.T) {
	Invalidate()

	first := category("Entradas", "Starters")
	second := category("Postres", "Desserts")
	RefreshCategories([]models.Category{first, second})

	RemoveCategory(first.ID)
	list, _ := Categories()
	require.Len(t, list, 1)
	assert.Equal(t, second.ID, list[0].ID)

	// Removing an unknown id is a no-op.
	RemoveCategory(uuid.Must(uuid.NewV7()))
	list, _ = Categories()
	assert.Len(t, list, 1)
}

func TestCategoryNameDanglingReferenceResolvesEmpty(t *testing.T) {
	Invalidate()

	known := category("Entradas", "Starters")
	RefreshCategories([]models.Category{known})

	assert.Equal(t, "Starters", CategoryName(known.ID).Get(models.LocaleEN))
	assert.Equal(t, "", CategoryName(uuid.Must(uuid.NewV7())).Get(models.LocaleEN))
}

func TestCategoriesReturnsSnapshot(t *testing.T) {
	Invalidate()

	RefreshCategories([]models.Category{category("Entradas", "Starters")})
	list, _ := Categories()
	list[0].Name = models.LocalizedText{models.LocaleES: "x", models.LocaleEN: "x"}

	fresh, _ := Categories()
	assert.Equal(t, "Starters", fresh[0].Name.Get(models.LocaleEN))
}

func TestProductListLifecycle(t *testing.T) {
	Invalidate()

	_, ok := Products()
	assert.False(t, ok)

	p := models.Product{
		ID:   uuid.Must(uuid.NewV7()),
		Name: models.LocalizedText{models.LocaleES: "Tortilla", models.LocaleEN: "Omelette"},
	}
	RefreshProducts([]models.Product{p})

	list, ok := Products()
	require.True(t, ok)
	require.Len(t, list, 1)

	p.Price = 9.5
	UpsertProduct(p)
	list, _ = Products()
	assert.Equal(t, 9.5, list[0].Price)

	RemoveProduct(p.ID)
	list, ok = Products()
	require.True(t, ok)
	assert.Empty(t, list)
}

func TestInvalidateDropsBothLists(t *testing.T) {
	RefreshCategories([]models.Category{category("Entradas", "Starters")})
	RefreshProducts([]models.Product{{ID: uuid.Must(uuid.NewV7())}})

	Invalidate()

	_, ok := Categories()
	assert.False(t, ok)
	_, ok = Products()
	assert.False(t, ok)
}
