package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLocale(t *testing.T) {
	if l, ok := ParseLocale("es"); !ok || l != LocaleES {
		t.Errorf("ParseLocale(es) = %v, %v", l, ok)
	}
	if l, ok := ParseLocale("en"); !ok || l != LocaleEN {
		t.Errorf("ParseLocale(en) = %v, %v", l, ok)
	}
	for _, bad := range []string{"", "fr", "ES", "es-MX"} {
		if _, ok := ParseLocale(bad); ok {
			t.Errorf("ParseLocale(%q) accepted", bad)
		}
	}
}

func TestLocalizedTextGetFallsBackToDefault(t *testing.T) {
	full := LocalizedText{LocaleES: "Entradas", LocaleEN: "Starters"}
	assert.Equal(t, "Starters", full.Get(LocaleEN))
	assert.Equal(t, "Entradas", full.Get(LocaleES))

	esOnly := LocalizedText{LocaleES: "Entradas"}
	assert.Equal(t, "Entradas", esOnly.Get(LocaleEN))

	emptyVariant := LocalizedText{LocaleES: "Entradas", LocaleEN: ""}
	assert.Equal(t, "Entradas", emptyVariant.Get(LocaleEN))

	var none LocalizedText
	assert.Equal(t, "", none.Get(LocaleEN))
}

func TestLocalizedTextHasAllLocales(t *testing.T) {
	assert.True(t, LocalizedText{LocaleES: "a", LocaleEN: "b"}.HasAllLocales())
	assert.False(t, LocalizedText{LocaleES: "a"}.HasAllLocales())
	assert.False(t, LocalizedText{LocaleES: "a", LocaleEN: ""}.HasAllLocales())
	assert.False(t, LocalizedText{}.HasAllLocales())
}

func TestLocalizedListGetFallsBackToDefault(t *testing.T) {
	l := LocalizedList{LocaleES: {"patata", "huevo"}}
	assert.Equal(t, []string{"patata", "huevo"}, l.Get(LocaleEN))

	both := LocalizedList{LocaleES: {"patata"}, LocaleEN: {"potato"}}
	assert.Equal(t, []string{"potato"}, both.Get(LocaleEN))
}

func TestLocalizedTextScanNullBecomesEmpty(t *testing.T) {
	var lt LocalizedText
	assert.NoError(t, lt.Scan(nil))
	assert.NotNil(t, lt)
	assert.Equal(t, "", lt.Get(LocaleES))
}

func TestLocalizedTextScanRejectsNonBytes(t *testing.T) {
	var lt LocalizedText
	assert.Error(t, lt.Scan(42))
}

func TestNilJSONBValuesEncodeAsEmpty(t *testing.T) {
	var lt LocalizedText
	v, err := lt.Value()
	assert.NoError(t, err)
	assert.JSONEq(t, `{}`, string(v.([]byte)))

	var sl StringList
	v, err = sl.Value()
	assert.NoError(t, err)
	assert.JSONEq(t, `[]`, string(v.([]byte)))
}
