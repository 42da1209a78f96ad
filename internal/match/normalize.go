package match

import (
	"strings"
	"unicode"
)

// NormalizeName folds a brick UI name for fuzzy matching: lower case,
// separators and quotes removed. "1x1F Round" and "1x1f_round" normalize to
// the same string.
func NormalizeName(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) || isQuote(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

// TokenizeName splits a UI name into lower case words. Quotes are dropped
// and a trailing "." is trimmed, so "4x Ramp Inv." yields
// ["4x", "ramp", "inv"].
func TokenizeName(s string) []string {
	fields := strings.FieldsFunc(s, isSeparator)

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Map(func(r rune) rune {
			if isQuote(r) {
				return -1
			}

			return unicode.ToLower(r)
		}, f)
		f = strings.TrimRight(f, ".")

		if f != "" {
			tokens = append(tokens, f)
		}
	}

	return tokens
}

// TokenOverlap returns the Jaccard index of the token sets of a and b.
func TokenOverlap(a, b string) float64 {
	ta, tb := tokenSet(a), tokenSet(b)
	if len(ta) == 0 && len(tb) == 0 {
		return 1.0
	}

	shared := 0

	for t := range ta {
		if _, ok := tb[t]; ok {
			shared++
		}
	}

	return float64(shared) / float64(len(ta)+len(tb)-shared)
}

func tokenSet(s string) map[string]struct{} {
	tokens := TokenizeName(s)

	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}

	return set
}

// isSeparator returns true if the rune separates words in a UI name.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == '/' || unicode.IsSpace(r)
}

func isQuote(r rune) bool {
	return r == '"' || r == '\''
}
