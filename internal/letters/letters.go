// internal/letters/letters.go
//
// Letter normalization for Azerbaijani word lists and grids.
//
// Rules (applied per rune):
//   - Special letters (Ə, I, Ö, Ü, Ç, Ğ, Ş and their lowercase forms) map through
//     an explicit table. Plain "I" folds to dotless "ı", not "i".
//   - Any other letter is lowercased with Azerbaijani casing (İ → i). Capitals with
//     no lowercase form (ℂ, mathematical capitals) are dropped.
//   - Everything else (digits, punctuation, whitespace, marks) is dropped.
//
// Normalize is total, pure and idempotent.

package letters

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// special holds letters whose case pairs are not simple ASCII shifts.
var special = map[rune]rune{
	'ə': 'ə', 'ı': 'ı', 'ö': 'ö', 'ü': 'ü', 'ç': 'ç', 'ğ': 'ğ', 'ş': 'ş',
	'Ə': 'ə', 'I': 'ı', 'Ö': 'ö', 'Ü': 'ü', 'Ç': 'ç', 'Ğ': 'ğ', 'Ş': 'ş',
}

// display is the reverse of special for presentation.
var display = map[rune]string{
	'ə': "Ə", 'ı': "I", 'i': "İ", 'ö': "Ö", 'ü': "Ü", 'ç': "Ç", 'ğ': "Ğ", 'ş': "Ş",
}

// Normalize maps text to the canonical lowercase alphabet.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if c, ok := special[r]; ok {
			b.WriteRune(c)
			continue
		}
		switch {
		case unicode.IsLower(r):
			b.WriteRune(r)
		case unicode.IsLetter(r):
			b.WriteString(lower(r))
		}
	}
	return b.String()
}

// lower folds a single generic letter. A Caser is stateful, so one is made per call.
func lower(r rune) string {
	out := cases.Lower(language.Azerbaijani).String(string(r))
	// Full case mappings may emit combining marks; keep lowercase-able letters only.
	return strings.Map(func(c rune) rune {
		if unicode.IsLetter(c) && !unicode.IsUpper(c) && !unicode.IsTitle(c) {
			return c
		}
		return -1
	}, out)
}

// Count returns the number of letters Normalize would keep.
func Count(text string) int {
	return len([]rune(Normalize(text)))
}

// Upper returns the display form of a canonical letter.
func Upper(r rune) string {
	if s, ok := display[r]; ok {
		return s
	}
	return string(unicode.ToUpper(r))
}
