// Package value coerces raw description-file strings into booleans and
// numbered lists.
package value

import (
	"strconv"
	"strings"

	"fcitx-scanner/internal/desktop"
)

// Token sets accepted by ParseBool.
var (
	FalseTokens = []string{"off", "false", "no", "0"}
	TrueTokens  = []string{"on", "true", "yes", "1"}
)

// StripMatch reports whether text, once surrounding blanks are ignored,
// consists of exactly one of the candidates. Candidates are tried in order
// and the first one that prefixes the stripped text is the only one
// considered. It returns the length of the matched candidate, or 0.
func StripMatch(text string, ignoreCase bool, candidates []string) int {
	text = strings.TrimLeft(text, desktop.Blank)
	if text == "" {
		return 0
	}

	matched := 0

	for _, cand := range candidates {
		if cand != "" && hasPrefix(text, cand, ignoreCase) {
			matched = len(cand)
			break
		}
	}

	if matched == 0 {
		return 0
	}

	if strings.TrimLeft(text[matched:], desktop.Blank) != "" {
		return 0
	}

	return matched
}

func hasPrefix(s, prefix string, ignoreCase bool) bool {
	if len(s) < len(prefix) {
		return false
	}

	if ignoreCase {
		return strings.EqualFold(s[:len(prefix)], prefix)
	}

	return s[:len(prefix)] == prefix
}

// ParseBool interprets value with the given default polarity.
//
// With defaultTrue set, only an explicit false token turns the result off.
// Otherwise only an explicit true token turns it on. An empty value yields
// the default in both cases.
func ParseBool(value string, defaultTrue bool) bool {
	if defaultTrue {
		return StripMatch(value, true, FalseTokens) == 0
	}

	return StripMatch(value, true, TrueTokens) > 0
}

// Bool reads key from g as a boolean. A missing entry behaves like an empty
// value.
func Bool(g *desktop.Group, key string, defaultTrue bool) bool {
	v, _ := g.Value(key)
	return ParseBool(v, defaultTrue)
}

// Has reports whether g carries an entry for key, empty or not.
func Has(g *desktop.Group, key string) bool {
	_, ok := g.FindEntry(key)
	return ok
}

// NumberedList collects the values of prefix0, prefix1, ... from g.
//
// Enumeration always ends at the first missing key. An empty value ends it
// too when stopAtEmpty is set; otherwise empty values are skipped. Each kept
// value goes through mapFn when it is non-nil.
func NumberedList(g *desktop.Group, prefix string, stopAtEmpty bool, mapFn func(string) string) []string {
	var out []string

	for i := 0; ; i++ {
		v, ok := g.Value(prefix + strconv.Itoa(i))
		if !ok {
			break
		}

		if v == "" {
			if stopAtEmpty {
				break
			}

			continue
		}

		if mapFn != nil {
			v = mapFn(v)
		}

		out = append(out, v)
	}

	return out
}
