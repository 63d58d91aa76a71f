// locale/units.go
package locale

// UnitNames holds the display names for one measurement unit. Long names are
// keyed by plural form and must at least carry "other"; "one" is used for
// singular quantities where the locale distinguishes it.
type UnitNames struct {
	Long   map[PluralForm]string
	Short  string
	Narrow string
}

// LongName returns the long display name for a quantity, falling back from
// the selected plural form to "other" and then to the short name.
func (u UnitNames) LongName(form PluralForm) string {
	if name, ok := u.Long[form]; ok {
		return name
	}
	if name, ok := u.Long[PluralOther]; ok {
		return name
	}
	return u.Short
}

var unitNamesEN = map[string]UnitNames{
	"second": {
		Long:   map[PluralForm]string{PluralOne: "second", PluralOther: "seconds"},
		Short:  "sec",
		Narrow: "s",
	},
	"minute": {
		Long:   map[PluralForm]string{PluralOne: "minute", PluralOther: "minutes"},
		Short:  "min",
		Narrow: "m",
	},
	"hour": {
		Long:   map[PluralForm]string{PluralOne: "hour", PluralOther: "hours"},
		Short:  "hr",
		Narrow: "h",
	},
	"day": {
		Long:   map[PluralForm]string{PluralOne: "day", PluralOther: "days"},
		Short:  "day",
		Narrow: "d",
	},
	"week": {
		Long:   map[PluralForm]string{PluralOne: "week", PluralOther: "weeks"},
		Short:  "wk",
		Narrow: "w",
	},
	"year": {
		Long:   map[PluralForm]string{PluralOne: "year", PluralOther: "years"},
		Short:  "yr",
		Narrow: "y",
	},
	"byte": {
		Long:   map[PluralForm]string{PluralOne: "byte", PluralOther: "bytes"},
		Short:  "byte",
		Narrow: "B",
	},
	"kilobyte": {
		Long:   map[PluralForm]string{PluralOne: "kilobyte", PluralOther: "kilobytes"},
		Short:  "kB",
		Narrow: "kB",
	},
	"megabyte": {
		Long:   map[PluralForm]string{PluralOne: "megabyte", PluralOther: "megabytes"},
		Short:  "MB",
		Narrow: "MB",
	},
	"gigabyte": {
		Long:   map[PluralForm]string{PluralOne: "gigabyte", PluralOther: "gigabytes"},
		Short:  "GB",
		Narrow: "GB",
	},
	"terabyte": {
		Long:   map[PluralForm]string{PluralOne: "terabyte", PluralOther: "terabytes"},
		Short:  "TB",
		Narrow: "TB",
	},
	"meter": {
		Long:   map[PluralForm]string{PluralOne: "meter", PluralOther: "meters"},
		Short:  "m",
		Narrow: "m",
	},
	"kilometer": {
		Long:   map[PluralForm]string{PluralOne: "kilometer", PluralOther: "kilometers"},
		Short:  "km",
		Narrow: "km",
	},
	"centimeter": {
		Long:   map[PluralForm]string{PluralOne: "centimeter", PluralOther: "centimeters"},
		Short:  "cm",
		Narrow: "cm",
	},
	"gram": {
		Long:   map[PluralForm]string{PluralOne: "gram", PluralOther: "grams"},
		Short:  "g",
		Narrow: "g",
	},
	"kilogram": {
		Long:   map[PluralForm]string{PluralOne: "kilogram", PluralOther: "kilograms"},
		Short:  "kg",
		Narrow: "kg",
	},
	"celsius": {
		Long:   map[PluralForm]string{PluralOne: "degree Celsius", PluralOther: "degrees Celsius"},
		Short:  "°C",
		Narrow: "°C",
	},
	"fahrenheit": {
		Long:   map[PluralForm]string{PluralOne: "degree Fahrenheit", PluralOther: "degrees Fahrenheit"},
		Short:  "°F",
		Narrow: "°F",
	},
}

var unitNamesDE = map[string]UnitNames{
	"second": {
		Long:   map[PluralForm]string{PluralOne: "Sekunde", PluralOther: "Sekunden"},
		Short:  "Sek.",
		Narrow: "s",
	},
	"minute": {
		Long:   map[PluralForm]string{PluralOne: "Minute", PluralOther: "Minuten"},
		Short:  "Min.",
		Narrow: "m",
	},
	"hour": {
		Long:   map[PluralForm]string{PluralOne: "Stunde", PluralOther: "Stunden"},
		Short:  "Std.",
		Narrow: "h",
	},
	"day": {
		Long:   map[PluralForm]string{PluralOne: "Tag", PluralOther: "Tage"},
		Short:  "Tg.",
		Narrow: "d",
	},
	"week": {
		Long:   map[PluralForm]string{PluralOne: "Woche", PluralOther: "Wochen"},
		Short:  "Wo.",
		Narrow: "w",
	},
	"year": {
		Long:   map[PluralForm]string{PluralOne: "Jahr", PluralOther: "Jahre"},
		Short:  "J",
		Narrow: "a",
	},
	"byte": {
		Long:   map[PluralForm]string{PluralOther: "Byte"},
		Short:  "Byte",
		Narrow: "B",
	},
	"meter": {
		Long:   map[PluralForm]string{PluralOne: "Meter", PluralOther: "Meter"},
		Short:  "m",
		Narrow: "m",
	},
	"kilometer": {
		Long:   map[PluralForm]string{PluralOne: "Kilometer", PluralOther: "Kilometer"},
		Short:  "km",
		Narrow: "km",
	},
	"gram": {
		Long:   map[PluralForm]string{PluralOne: "Gramm", PluralOther: "Gramm"},
		Short:  "g",
		Narrow: "g",
	},
	"kilogram": {
		Long:   map[PluralForm]string{PluralOne: "Kilogramm", PluralOther: "Kilogramm"},
		Short:  "kg",
		Narrow: "kg",
	},
	"celsius": {
		Long:   map[PluralForm]string{PluralOne: "Grad Celsius", PluralOther: "Grad Celsius"},
		Short:  "°C",
		Narrow: "°C",
	},
}

var unitNamesFR = map[string]UnitNames{
	"second": {
		Long:   map[PluralForm]string{PluralOne: "seconde", PluralOther: "secondes"},
		Short:  "s",
		Narrow: "s",
	},
	"minute": {
		Long:   map[PluralForm]string{PluralOne: "minute", PluralOther: "minutes"},
		Short:  "min",
		Narrow: "min",
	},
	"hour": {
		Long:   map[PluralForm]string{PluralOne: "heure", PluralOther: "heures"},
		Short:  "h",
		Narrow: "h",
	},
	"day": {
		Long:   map[PluralForm]string{PluralOne: "jour", PluralOther: "jours"},
		Short:  "j",
		Narrow: "j",
	},
	"week": {
		Long:   map[PluralForm]string{PluralOne: "semaine", PluralOther: "semaines"},
		Short:  "sem.",
		Narrow: "sem.",
	},
	"year": {
		Long:   map[PluralForm]string{PluralOne: "an", PluralOther: "ans"},
		Short:  "an",
		Narrow: "a",
	},
	"byte": {
		Long:   map[PluralForm]string{PluralOne: "octet", PluralOther: "octets"},
		Short:  "o",
		Narrow: "o",
	},
	"meter": {
		Long:   map[PluralForm]string{PluralOne: "mètre", PluralOther: "mètres"},
		Short:  "m",
		Narrow: "m",
	},
	"kilometer": {
		Long:   map[PluralForm]string{PluralOne: "kilomètre", PluralOther: "kilomètres"},
		Short:  "km",
		Narrow: "km",
	},
	"gram": {
		Long:   map[PluralForm]string{PluralOne: "gramme", PluralOther: "grammes"},
		Short:  "g",
		Narrow: "g",
	},
	"kilogram": {
		Long:   map[PluralForm]string{PluralOne: "kilogramme", PluralOther: "kilogrammes"},
		Short:  "kg",
		Narrow: "kg",
	},
	"celsius": {
		Long:   map[PluralForm]string{PluralOne: "degré Celsius", PluralOther: "degrés Celsius"},
		Short:  "°C",
		Narrow: "°C",
	},
}
