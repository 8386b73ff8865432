package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// Locale is a supported display language. The set is closed: the public
// routes only accept these two values.
type Locale string

const (
	LocaleES Locale = "es"
	LocaleEN Locale = "en"

	// DefaultLocale is the fallback used when a document is missing a
	// variant for the requested locale.
	DefaultLocale = LocaleES
)

// Locales returns the supported locales in display order.
func Locales() []Locale {
	return []Locale{LocaleES, LocaleEN}
}

// ParseLocale validates a route segment against the supported set.
func ParseLocale(s string) (Locale, bool) {
	switch Locale(s) {
	case LocaleES, LocaleEN:
		return Locale(s), true
	}
	return "", false
}

// ═══════════════════════════════════════════════════════════
// JSONB Types
// ═══════════════════════════════════════════════════════════

// LocalizedText maps a locale to a display string. Stored as JSONB.
type LocalizedText map[Locale]string

// Get returns the variant for the requested locale, falling back to the
// default locale when the key is missing or empty.
func (t LocalizedText) Get(locale Locale) string {
	if v, ok := t[locale]; ok && v != "" {
		return v
	}
	return t[DefaultLocale]
}

// HasAllLocales reports whether every supported locale has a non-empty
// variant. Required for names at the data-access boundary.
func (t LocalizedText) HasAllLocales() bool {
	for _, l := range Locales() {
		if t[l] == "" {
			return false
		}
	}
	return true
}

func (t *LocalizedText) Scan(value interface{}) error {
	if value == nil {
		*t = make(LocalizedText)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan LocalizedText")
	}
	return json.Unmarshal(bytes, t)
}

func (t LocalizedText) Value() (driver.Value, error) {
	if t == nil {
		return json.Marshal(LocalizedText{})
	}
	return json.Marshal(t)
}

// LocalizedList maps a locale to an ordered list of free-text strings,
// e.g. per-locale ingredient lists. Stored as JSONB.
type LocalizedList map[Locale][]string

// Get returns the list for the requested locale, falling back to the
// default locale when the key is missing.
func (l LocalizedList) Get(locale Locale) []string {
	if v, ok := l[locale]; ok && len(v) > 0 {
		return v
	}
	return l[DefaultLocale]
}

func (l *LocalizedList) Scan(value interface{}) error {
	if value == nil {
		*l = make(LocalizedList)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan LocalizedList")
	}
	return json.Unmarshal(bytes, l)
}

func (l LocalizedList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal(LocalizedList{})
	}
	return json.Marshal(l)
}

// StringList is an ordered, non-localized list of free-text strings,
// e.g. allergens. Stored as JSONB.
type StringList []string

func (s *StringList) Scan(value interface{}) error {
	if value == nil {
		*s = make(StringList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan StringList")
	}
	return json.Unmarshal(bytes, s)
}

func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(s)
}
