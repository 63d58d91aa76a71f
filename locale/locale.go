// Package locale resolves BCP-47 locale identifiers and carries the small
// presentation tables the native formatting primitive does not expose:
// range separators, compact-notation suffixes, unit display names, plural
// selection, and currency symbol placement.
//
// Resolution follows a fixed fallback chain: exact language match, then base
// language ("en" for "en-US"), then the package default. Unknown locales
// never fail a lookup; they degrade to the default data so formatting can
// always proceed.
package locale

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// Default is the locale used when resolution fails entirely.
const Default = "en"

var (
	mu      sync.RWMutex
	matcher language.Matcher
	tags    []language.Tag
)

func init() {
	rebuildMatcher()
}

// rebuildMatcher recomputes the language matcher. Called at init and after
// overrides introduce new locales. Default must stay first: the matcher
// prefers earlier tags on equal confidence.
func rebuildMatcher() {
	tags = tags[:0]
	tags = append(tags, language.Make(Default))
	for key := range localeData {
		if key == Default {
			continue
		}
		tags = append(tags, language.Make(key))
	}
	matcher = language.NewMatcher(tags)
}

// Parse parses a BCP-47 identifier ("de", "en-US", "pt_BR"). Underscores are
// accepted as separators. An empty or unparseable identifier returns an
// error along with the default tag so callers can degrade.
func Parse(locale string) (language.Tag, error) {
	locale = strings.TrimSpace(strings.ReplaceAll(locale, "_", "-"))
	if locale == "" {
		return language.Make(Default), fmt.Errorf("locale: empty identifier")
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return language.Make(Default), fmt.Errorf("locale: parse %q: %w", locale, err)
	}
	return tag, nil
}

// Base returns the base-language key for an identifier: "en" for "en-US",
// lowercased, with region and script stripped.
func Base(locale string) string {
	locale = strings.ReplaceAll(locale, "_", "-")
	if idx := strings.Index(locale, "-"); idx > 0 {
		locale = locale[:idx]
	}
	return strings.ToLower(strings.TrimSpace(locale))
}

// Lookup returns the presentation data for a locale, falling back to the
// base language and then the default. The returned Data is shared; callers
// must not mutate it.
func Lookup(locale string) *Data {
	mu.RLock()
	defer mu.RUnlock()

	if d, ok := localeData[strings.ToLower(locale)]; ok {
		return d
	}
	if d, ok := localeData[Base(locale)]; ok {
		return d
	}
	return localeData[Default]
}

// Match maps an arbitrary parsed tag onto the closest locale we carry data
// for, using the x/text matcher. Low-confidence matches degrade to Default.
func Match(tag language.Tag) *Data {
	// One lock acquisition: the matcher and the tags slice it indexes are
	// rebuilt together, so the index must resolve against the same snapshot.
	mu.RLock()
	defer mu.RUnlock()

	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return localeData[Default]
	}

	base, _ := tags[idx].Base()
	if d, ok := localeData[base.String()]; ok {
		return d
	}
	return localeData[Default]
}

// Supported returns the base-language keys that have presentation data.
func Supported() []string {
	mu.RLock()
	defer mu.RUnlock()

	keys := make([]string, 0, len(localeData))
	for key := range localeData {
		keys = append(keys, key)
	}
	return keys
}

// HasData reports whether a locale (or its base language) has its own
// presentation data rather than the default fallback.
func HasData(locale string) bool {
	mu.RLock()
	defer mu.RUnlock()

	if _, ok := localeData[strings.ToLower(locale)]; ok {
		return true
	}
	_, ok := localeData[Base(locale)]
	return ok
}
