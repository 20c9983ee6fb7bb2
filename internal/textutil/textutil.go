// Package textutil provides the text cleanup primitives used across the
// extraction engine: whitespace normalization, lookup-key folding, and
// price parsing.
//
// Everything here is total: malformed input degrades to an empty string or
// a zero value, never an error. Supplier markup is too inconsistent to make
// per-field failures worth surfacing.
package textutil

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Pre-compiled regexes avoid recompilation on every call.
var (
	reNonPrice = regexp.MustCompile(`[^0-9.,]`)
	reNumToken = regexp.MustCompile(`[0-9][0-9.,]*`)
)

// keyFolder strips combining marks so accented finish labels fold to the
// same key as their ASCII spelling ("Brossé" -> "brosse").
var keyFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize trims raw and collapses internal whitespace runs to single
// spaces. It always returns a string, never an error; whitespace-only input
// yields "".
func Normalize(raw string) string {
	return strings.Join(strings.Fields(raw), " ")
}

// FoldKey converts a display label into a lookup key: diacritics stripped,
// lower-cased, all whitespace removed. "Matt  Black" and "matt black" fold
// to the same key.
func FoldKey(label string) string {
	folded, _, err := transform.String(keyFolder, label)
	if err != nil {
		folded = label
	}
	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range strings.ToLower(folded) {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ParsePrice extracts the first numeric token from price-like text and
// returns it as a decimal.
//
// Behavior:
//   - All characters except digits, comma, and period are stripped first,
//     so "$1,234.50 inc GST" and "AUD 1.234,50" both parse.
//   - Thousands separators are removed; when both separators appear, the
//     one occurring last is taken as the decimal point.
//   - A lone comma followed by one or two trailing digits is treated as a
//     decimal point; otherwise it is a thousands separator.
//   - Input with no numeric token returns zero. ParsePrice never errors.
func ParsePrice(raw string) decimal.Decimal {
	cleaned := reNonPrice.ReplaceAllString(raw, "")
	token := reNumToken.FindString(cleaned)
	if token == "" {
		return decimal.Zero
	}
	token = strings.TrimRight(token, ".,")

	lastDot := strings.LastIndex(token, ".")
	lastComma := strings.LastIndex(token, ",")

	switch {
	case lastDot >= 0 && lastComma >= 0:
		if lastComma > lastDot {
			// European style: 1.234,50
			token = strings.ReplaceAll(token, ".", "")
			token = strings.Replace(token, ",", ".", 1)
		} else {
			token = strings.ReplaceAll(token, ",", "")
		}
	case lastComma >= 0:
		frac := len(token) - lastComma - 1
		if strings.Count(token, ",") == 1 && (frac == 1 || frac == 2) {
			token = strings.Replace(token, ",", ".", 1)
		} else {
			token = strings.ReplaceAll(token, ",", "")
		}
	case strings.Count(token, ".") > 1:
		// Multiple dots are thousands separators ("1.234.567") unless the
		// last group doesn't have three digits, in which case the final dot
		// is the decimal point.
		if len(token)-lastDot-1 == 3 {
			token = strings.ReplaceAll(token, ".", "")
		} else {
			head := strings.ReplaceAll(token[:lastDot], ".", "")
			token = head + token[lastDot:]
		}
	}

	d, err := decimal.NewFromString(token)
	if err != nil {
		return decimal.Zero
	}
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
