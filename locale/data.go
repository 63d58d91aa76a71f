// locale/data.go
package locale

// Signs holds the sign characters used by fallback passes. They are the
// characters the native layer emits for the locale, so post-processing a
// natively formatted string stays byte-exact.
type Signs struct {
	Plus     string
	Minus    string
	Approx   string // prefix for collapsed ranges, e.g. "~"
	Infinity string
	NaN      string
}

// RangeFormat holds the locale's range separator conventions.
type RangeFormat struct {
	Separator string // placed between the two endpoints
	Spaced    bool   // thin-space padding around the separator
}

// CompactSuffixes holds the suffixes for powers 10^3, 10^6, 10^9, 10^12.
type CompactSuffixes [4]string

// CurrencyFormat holds symbol placement for the manual currency branch.
type CurrencyFormat struct {
	SymbolPosition string // "before" or "after"
	SymbolSpace    bool   // space between symbol and number
}

// Data holds the presentation data for one locale that the native formatting
// primitive does not expose: range separators, compact suffixes, unit names,
// and currency symbol placement.
type Data struct {
	Tag          string
	Signs        Signs
	Range        RangeFormat
	CompactShort CompactSuffixes
	CompactLong  CompactSuffixes
	Currency     CurrencyFormat
	Units        map[string]UnitNames
	Plural       PluralFunc
}

var defaultSigns = Signs{Plus: "+", Minus: "-", Approx: "~", Infinity: "∞", NaN: "NaN"}

// localeData contains presentation data keyed by base language. Locales not
// present here resolve to "en" (see Lookup).
var localeData = map[string]*Data{
	"en": {
		Tag:          "en",
		Signs:        defaultSigns,
		Range:        RangeFormat{Separator: "–"},
		CompactShort: CompactSuffixes{"K", "M", "B", "T"},
		CompactLong:  CompactSuffixes{"thousand", "million", "billion", "trillion"},
		Currency:     CurrencyFormat{SymbolPosition: "before"},
		Units:        unitNamesEN,
	},
	"de": {
		Tag:          "de",
		Signs:        defaultSigns,
		Range:        RangeFormat{Separator: "–"},
		CompactShort: CompactSuffixes{"Tsd.", "Mio.", "Mrd.", "Bio."},
		CompactLong:  CompactSuffixes{"Tausend", "Millionen", "Milliarden", "Billionen"},
		Currency:     CurrencyFormat{SymbolPosition: "after", SymbolSpace: true},
		Units:        unitNamesDE,
	},
	"fr": {
		Tag:          "fr",
		Signs:        defaultSigns,
		Range:        RangeFormat{Separator: "–", Spaced: true},
		CompactShort: CompactSuffixes{"k", "M", "Md", "Bn"},
		CompactLong:  CompactSuffixes{"mille", "millions", "milliards", "billions"},
		Currency:     CurrencyFormat{SymbolPosition: "after", SymbolSpace: true},
		Units:        unitNamesFR,
	},
	"es": {
		Tag:          "es",
		Signs:        defaultSigns,
		Range:        RangeFormat{Separator: "–"},
		CompactShort: CompactSuffixes{"mil", "M", "mil M", "B"},
		CompactLong:  CompactSuffixes{"mil", "millones", "mil millones", "billones"},
		Currency:     CurrencyFormat{SymbolPosition: "after", SymbolSpace: true},
	},
	"it": {
		Tag:          "it",
		Signs:        defaultSigns,
		Range:        RangeFormat{Separator: "–"},
		CompactShort: CompactSuffixes{"mila", "Mln", "Mld", "Bln"},
		CompactLong:  CompactSuffixes{"mila", "milioni", "miliardi", "bilioni"},
		Currency:     CurrencyFormat{SymbolPosition: "after", SymbolSpace: true},
	},
	"pt": {
		Tag:          "pt",
		Signs:        defaultSigns,
		Range:        RangeFormat{Separator: "–"},
		CompactShort: CompactSuffixes{"mil", "mi", "bi", "tri"},
		CompactLong:  CompactSuffixes{"mil", "milhões", "bilhões", "trilhões"},
		Currency:     CurrencyFormat{SymbolPosition: "before", SymbolSpace: true},
	},
	"ja": {
		// Japanese compact notation groups by myriads (万/億); we keep the
		// Latin suffix table and let callers opt out of compact for ja.
		Tag:          "ja",
		Signs:        defaultSigns,
		Range:        RangeFormat{Separator: "～"},
		CompactShort: CompactSuffixes{"K", "M", "B", "T"},
		CompactLong:  CompactSuffixes{"K", "M", "B", "T"},
		Currency:     CurrencyFormat{SymbolPosition: "before"},
	},
	"zh": {
		Tag:          "zh",
		Signs:        defaultSigns,
		Range:        RangeFormat{Separator: "-"},
		CompactShort: CompactSuffixes{"K", "M", "B", "T"},
		CompactLong:  CompactSuffixes{"K", "M", "B", "T"},
		Currency:     CurrencyFormat{SymbolPosition: "before"},
	},
	"ko": {
		Tag:          "ko",
		Signs:        defaultSigns,
		Range:        RangeFormat{Separator: "~"},
		CompactShort: CompactSuffixes{"K", "M", "B", "T"},
		CompactLong:  CompactSuffixes{"K", "M", "B", "T"},
		Currency:     CurrencyFormat{SymbolPosition: "before"},
	},
	"ru": {
		Tag:          "ru",
		Signs:        defaultSigns,
		Range:        RangeFormat{Separator: "–"},
		CompactShort: CompactSuffixes{"тыс.", "млн", "млрд", "трлн"},
		CompactLong:  CompactSuffixes{"тысяч", "миллионов", "миллиардов", "триллионов"},
		Currency:     CurrencyFormat{SymbolPosition: "after", SymbolSpace: true},
	},
	"nl": {
		Tag:          "nl",
		Signs:        defaultSigns,
		Range:        RangeFormat{Separator: "–"},
		CompactShort: CompactSuffixes{"K", "mln.", "mld.", "bln."},
		CompactLong:  CompactSuffixes{"duizend", "miljoen", "miljard", "biljoen"},
		Currency:     CurrencyFormat{SymbolPosition: "before", SymbolSpace: true},
	},
	"pl": {
		Tag:          "pl",
		Signs:        defaultSigns,
		Range:        RangeFormat{Separator: "–"},
		CompactShort: CompactSuffixes{"tys.", "mln", "mld", "bln"},
		CompactLong:  CompactSuffixes{"tysięcy", "milionów", "miliardów", "bilionów"},
		Currency:     CurrencyFormat{SymbolPosition: "after", SymbolSpace: true},
	},
	"tr": {
		Tag:          "tr",
		Signs:        defaultSigns,
		Range:        RangeFormat{Separator: "–"},
		CompactShort: CompactSuffixes{"B", "Mn", "Mr", "Tn"},
		CompactLong:  CompactSuffixes{"bin", "milyon", "milyar", "trilyon"},
		Currency:     CurrencyFormat{SymbolPosition: "before"},
	},
	"sv": {
		Tag:          "sv",
		Signs:        Signs{Plus: "+", Minus: "−", Approx: "~", Infinity: "∞", NaN: "NaN"},
		Range:        RangeFormat{Separator: "–"},
		CompactShort: CompactSuffixes{"tn", "mn", "md", "bn"},
		CompactLong:  CompactSuffixes{"tusen", "miljoner", "miljarder", "biljoner"},
		Currency:     CurrencyFormat{SymbolPosition: "after", SymbolSpace: true},
	},
	"ar": {
		Tag:          "ar",
		Signs:        defaultSigns,
		Range:        RangeFormat{Separator: "–", Spaced: true},
		CompactShort: CompactSuffixes{"ألف", "مليون", "مليار", "ترليون"},
		CompactLong:  CompactSuffixes{"ألف", "مليون", "مليار", "ترليون"},
		Currency:     CurrencyFormat{SymbolPosition: "after", SymbolSpace: true},
	},
	"hi": {
		Tag:          "hi",
		Signs:        defaultSigns,
		Range:        RangeFormat{Separator: "–"},
		CompactShort: CompactSuffixes{"हज़ार", "लाख", "अरब", "खरब"},
		CompactLong:  CompactSuffixes{"हज़ार", "लाख", "अरब", "खरब"},
		Currency:     CurrencyFormat{SymbolPosition: "before"},
	},
}

func init() {
	for tag, d := range localeData {
		d.Plural = PluralRules(tag)
		if d.Units == nil {
			d.Units = unitNamesEN
		}
	}
}
