package main

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// StringTransformer defines the contract for a function that can transform a string.
type StringTransformer interface {
	TransformString(t transform.Transformer, s string) (string, int, error)
}

// defaultTransformer is the production implementation of our interface.
type defaultTransformer struct{}

// TransformString calls the actual transform.String function.
func (dt defaultTransformer) TransformString(t transform.Transformer, s string) (string, int, error) {
	return transform.String(t, s)
}

// Use a variable of the interface type. This is our "injection point".
var transformer StringTransformer = defaultTransformer{}

// specialReplacements covers characters that survive Unicode decomposition
// because they are standalone letters rather than letter+combining-mark pairs.
var specialReplacements = strings.NewReplacer(
	"ß", "ss",
	"ẞ", "ss",
	"ł", "l",
	"Ł", "l",
	"đ", "d",
	"Đ", "d",
	"ø", "o",
	"Ø", "o",
	"æ", "ae",
	"Æ", "ae",
	"œ", "oe",
	"Œ", "oe",
	"þ", "th",
	"Þ", "th",
)

// normalizeName standardizes a free-text place or event string for matching:
// it lowercases, removes diacritical marks ("Wrocław" becomes "wroclaw"),
// replaces non-decomposing special letters, collapses whitespace runs to a
// single space and trims the result.
//
// The function is total: it never fails, and any input (including garbage
// that is not valid UTF-8) produces a defined, idempotent result. Matching
// code all over the pipeline relies on that.
func normalizeName(s string) string {
	if s == "" {
		return ""
	}
	if !utf8.ValidString(s) {
		return strings.Join(strings.Fields(lowerASCII(s)), " ")
	}

	s = specialReplacements.Replace(s)

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transformer.TransformString(t, s)
	if err != nil {
		result = s
	}

	return strings.Join(strings.Fields(strings.ToLower(result)), " ")
}

// lowerASCII lowercases A-Z byte-wise without decoding, so bytes that are
// not valid UTF-8 pass through untouched instead of becoming U+FFFD.
func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
