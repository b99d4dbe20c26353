package locales

// Per-locale seed data for a brand-new profile. The first time a user's
// allergen record is read, it is seeded with two example allergens so the
// profile screen is not empty.

const DefaultLocale = "en"

var defaultAllergens = map[string][]string{
	"en": {"milk", "peanuts"},
	"ru": {"молоко", "арахис"},
}

// DefaultAllergens returns the seed allergen list for a locale, falling
// back to English for unknown locales.
func DefaultAllergens(locale string) []string {
	if list, ok := defaultAllergens[locale]; ok {
		out := make([]string, len(list))
		copy(out, list)
		return out
	}
	out := make([]string, len(defaultAllergens[DefaultLocale]))
	copy(out, defaultAllergens[DefaultLocale])
	return out
}
