package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/apenara/cafe-menu-digital/models"
)

func TestTReturnsLocaleVariant(t *testing.T) {
	assert.Equal(t, "Our Menu", T(models.LocaleEN, "site.title"))
	assert.Equal(t, "Nuestra Carta", T(models.LocaleES, "site.title"))
}

func TestTUnknownLocaleFallsBackToDefault(t *testing.T) {
	assert.Equal(t, "Nuestra Carta", T(models.Locale("fr"), "site.title"))
}

func TestEveryKeyExistsInEveryLocale(t *testing.T) {
	for key := range messages[models.DefaultLocale] {
		for _, locale := range models.Locales() {
			assert.NotEmpty(t, messages[locale][key], "missing %s in %s", key, locale)
		}
	}
}
