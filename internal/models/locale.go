package models

import "strings"

// Locale selects display text and layout direction.
type Locale string

const (
	LocaleAR Locale = "ar"
	LocaleEN Locale = "en"

	DefaultLocale = LocaleAR
)

// ParseLocale returns the locale for s, or false if s names neither locale.
func ParseLocale(s string) (Locale, bool) {
	switch Locale(strings.ToLower(strings.TrimSpace(s))) {
	case LocaleAR:
		return LocaleAR, true
	case LocaleEN:
		return LocaleEN, true
	}
	return "", false
}

// Dir returns the text direction for the locale.
func (l Locale) Dir() string {
	if l == LocaleAR {
		return "rtl"
	}
	return "ltr"
}

// Other returns the opposite locale.
func (l Locale) Other() Locale {
	if l == LocaleEN {
		return LocaleAR
	}
	return LocaleEN
}

// Pick returns ar or en depending on the locale.
func (l Locale) Pick(ar, en string) string {
	if l == LocaleEN {
		return en
	}
	return ar
}

// PickWithFallback is Pick, falling back to the other text when the preferred one is empty.
func (l Locale) PickWithFallback(ar, en string) string {
	if l == LocaleEN {
		if en != "" {
			return en
		}
		return ar
	}
	if ar != "" {
		return ar
	}
	return en
}
