// locale/plural.go
package locale

import "strings"

// PluralForm represents a CLDR plural category.
type PluralForm string

const (
	PluralZero  PluralForm = "zero"
	PluralOne   PluralForm = "one"
	PluralTwo   PluralForm = "two"
	PluralFew   PluralForm = "few"
	PluralMany  PluralForm = "many"
	PluralOther PluralForm = "other"
)

// PluralFunc selects the plural form for a quantity. Quantities with a
// fractional part always select "other" in the languages we carry rules for,
// except French-style rules where [0,2) selects "one".
type PluralFunc func(n float64) PluralForm

// PluralRules returns the plural selector for a locale. Unknown locales get
// the English rule (1 vs other), which is also CLDR's root behavior for the
// unit names we ship.
func PluralRules(locale string) PluralFunc {
	locale = strings.ToLower(locale)
	if idx := strings.IndexAny(locale, "-_"); idx > 0 {
		locale = locale[:idx]
	}

	switch locale {
	// Germanic and most Romance languages: 1 vs other.
	case "en", "de", "nl", "sv", "da", "no", "nb", "nn", "es", "it", "ca":
		return pluralOne

	// French, Portuguese: [0,2) vs other.
	case "fr", "pt":
		return pluralZeroThroughOne

	// East Slavic: one/few/many by last digits.
	case "ru", "uk", "be":
		return pluralEastSlavic

	// Polish.
	case "pl":
		return pluralPolish

	// Arabic: six forms.
	case "ar":
		return pluralArabic

	// No grammatical plural.
	case "ja", "zh", "ko", "vi", "th", "id", "ms", "tr":
		return pluralNone
	}

	return pluralOne
}

func pluralOne(n float64) PluralForm {
	if n == 1 {
		return PluralOne
	}
	return PluralOther
}

func pluralZeroThroughOne(n float64) PluralForm {
	if n >= 0 && n < 2 {
		return PluralOne
	}
	return PluralOther
}

func pluralNone(float64) PluralForm { return PluralOther }

func pluralEastSlavic(n float64) PluralForm {
	if n != float64(int64(n)) || n < 0 {
		return PluralOther
	}
	i := int64(n)
	mod10 := i % 10
	mod100 := i % 100

	switch {
	case mod10 == 1 && mod100 != 11:
		return PluralOne
	case mod10 >= 2 && mod10 <= 4 && (mod100 < 12 || mod100 > 14):
		return PluralFew
	default:
		return PluralMany
	}
}

func pluralPolish(n float64) PluralForm {
	if n != float64(int64(n)) || n < 0 {
		return PluralOther
	}
	i := int64(n)
	if i == 1 {
		return PluralOne
	}
	mod10 := i % 10
	mod100 := i % 100
	if mod10 >= 2 && mod10 <= 4 && (mod100 < 12 || mod100 > 14) {
		return PluralFew
	}
	return PluralMany
}

func pluralArabic(n float64) PluralForm {
	if n != float64(int64(n)) || n < 0 {
		return PluralOther
	}
	i := int64(n)
	switch {
	case i == 0:
		return PluralZero
	case i == 1:
		return PluralOne
	case i == 2:
		return PluralTwo
	}
	mod100 := i % 100
	switch {
	case mod100 >= 3 && mod100 <= 10:
		return PluralFew
	case mod100 >= 11:
		return PluralMany
	default:
		return PluralOther
	}
}
