package types

// Locale is a language/country tag controlling response localization.
type Locale string

var locales = []Locale{
	"en_US", "es_MX", "pt_BR", "en_GB", "es_ES", "fr_FR",
	"ru_RU", "de_DE", "it_IT", "ko_KR", "zh_TW", "zh_CN",
}

// IsLocale reports whether l is one of the supported locale tags.
func IsLocale(l Locale) bool {
	for _, known := range locales {
		if known == l {
			return true
		}
	}
	return false
}

// Locales returns a copy of the supported locale tags.
func Locales() []Locale {
	out := make([]Locale, len(locales))
	copy(out, locales)
	return out
}
