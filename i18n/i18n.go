// Package i18n holds the static UI strings of the public site. Menu
// content itself is localized in the documents; only chrome lives here.
package i18n

import "github.com/apenara/cafe-menu-digital/models"

var messages = map[models.Locale]map[string]string{
	models.LocaleES: {
		"site.title":       "Nuestra Carta",
		"site.tagline":     "Cocina de casa, todos los días",
		"nav.back":         "Volver",
		"card.available":   "Disponible",
		"card.unavailable": "No disponible",
		"card.ingredients": "Ingredientes",
		"card.allergens":   "Alérgenos",
		"notfound.title":   "Página no encontrada",
		"notfound.body":    "La página que buscas no existe.",
		"error.title":      "Algo salió mal",
		"error.body":       "Inténtalo de nuevo en unos minutos.",
		"home.empty":       "La carta está vacía por ahora.",
		"category.empty":   "No hay platos en esta categoría.",
	},
	models.LocaleEN: {
		"site.title":       "Our Menu",
		"site.tagline":     "Home cooking, every day",
		"nav.back":         "Back",
		"card.available":   "Available",
		"card.unavailable": "Not available",
		"card.ingredients": "Ingredients",
		"card.allergens":   "Allergens",
		"notfound.title":   "Page not found",
		"notfound.body":    "The page you are looking for does not exist.",
		"error.title":      "Something went wrong",
		"error.body":       "Please try again in a few minutes.",
		"home.empty":       "The menu is empty for now.",
		"category.empty":   "No dishes in this category yet.",
	},
}

// T renders the UI string identified by key for the given locale,
// falling back to the default locale when the key is missing.
func T(locale models.Locale, key string) string {
	if m, ok := messages[locale]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	return messages[models.DefaultLocale][key]
}
