// Package i18n resolves bilingual (English/Arabic) record fields.
//
// Every translatable column F has an optional sibling F_ar holding the
// Arabic text. Resolution prefers the Arabic variant only when the
// requested locale is Arabic AND the variant is non-empty; everything
// else falls back to the base English value.
package i18n

// Locale is a normalized request language.
type Locale string

const (
	English Locale = "en"
	Arabic  Locale = "ar"
)

// Normalize maps an arbitrary language string to a supported locale.
// Only the exact string "ar" selects Arabic; anything else (including
// "AR", "ar-SA", empty) is English.
func Normalize(s string) Locale {
	if s == string(Arabic) {
		return Arabic
	}
	return English
}

// IsArabic reports whether the locale is Arabic.
func (l Locale) IsArabic() bool {
	return l == Arabic
}

// Resolve picks the locale-appropriate value for a scalar field.
// An empty-string Arabic variant never overrides the base value.
func Resolve(loc Locale, base string, variant *string) string {
	if loc == Arabic && variant != nil && *variant != "" {
		return *variant
	}
	return base
}

// ResolveList picks the locale-appropriate value for a list field.
// The Arabic variant is a whole alternate list: it wins only when
// non-empty, and there is no per-element merge.
func ResolveList(loc Locale, base, variant []string) []string {
	if loc == Arabic && len(variant) > 0 {
		return variant
	}
	return base
}
