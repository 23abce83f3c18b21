// Package arabic folds Arabic text to a canonical comparison form.
//
// Fee ledger rows record the collector as free text which may spell the same
// teacher name with different alef/hamza/taa-marbuta variants. Normalize is a
// pure function: equal inputs always produce equal outputs regardless of
// record order, so identity matching stays deterministic.
package arabic

import (
	"strings"
	"unicode"
)

var letterFolds = map[rune]rune{
	// alef variants
	'أ': 'ا', // أ
	'إ': 'ا', // إ
	'آ': 'ا', // آ
	'ٱ': 'ا', // ٱ
	// taa marbuta -> haa
	'ة': 'ه', // ة -> ه
	// alef maksura -> yaa
	'ى': 'ي', // ى -> ي
	// hamza carriers
	'ؤ': 'و', // ؤ -> و
	'ئ': 'ي', // ئ -> ي
}

// Normalize returns the canonical form of s: alef variants unified, taa-marbuta
// folded to haa, alef-maksura to yaa, hamza carriers folded and the standalone
// hamza dropped, diacritics (tashkeel) and tatweel stripped, all whitespace
// removed and ASCII lowercased.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			continue
		case r == 'ء': // standalone hamza ء
			continue
		case r == 'ـ': // tatweel ـ
			continue
		case isTashkeel(r):
			continue
		}
		if folded, ok := letterFolds[r]; ok {
			r = folded
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// Equivalent reports whether a and b normalize to the same canonical string.
func Equivalent(a, b string) bool {
	return Normalize(a) == Normalize(b)
}

func isTashkeel(r rune) bool {
	switch {
	case r >= 'ؐ' && r <= 'ؚ':
		return true
	case r >= 'ً' && r <= 'ٟ':
		return true
	case r == 'ٰ': // superscript alef
		return true
	}
	return false
}
