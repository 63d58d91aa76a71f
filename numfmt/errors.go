// numfmt/errors.go
package numfmt

import "errors"

var (
	// ErrBadLocale is returned when a non-empty locale identifier cannot be
	// parsed as BCP-47. An empty identifier is not an error; it resolves to
	// the default locale chain.
	ErrBadLocale = errors.New("numfmt: invalid locale identifier")

	// ErrBadOptions is returned when merged options are contradictory or out
	// of range.
	ErrBadOptions = errors.New("numfmt: invalid options")

	// ErrBadRange is returned by FormatRange when the upper endpoint is
	// smaller than the lower endpoint or an endpoint is NaN.
	ErrBadRange = errors.New("numfmt: invalid range")
)
