package unravel

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Heuristic thresholds.
const (
	// ValidityThreshold is the share of readable characters above which text
	// counts as a successful decode.
	ValidityThreshold = 0.6

	// MinEncodedLength is the length text must exceed before CouldBeEncoded
	// considers it worth another round.
	MinEncodedLength = 10
)

var (
	percentPattern = regexp.MustCompile(`%[0-9A-Fa-f]{2}`)
	unicodePattern = regexp.MustCompile(`\\u[0-9A-Fa-f]{4}`)
	base64Pattern  = regexp.MustCompile(`^[A-Za-z0-9+/=]+$`)
	hexPattern     = regexp.MustCompile(`^[0-9A-Fa-f]+$`)

	// wrappedBase64Pattern also admits line breaks and spaces between groups.
	wrappedBase64Pattern = regexp.MustCompile(`^[A-Za-z0-9+/=\s]+$`)
)

// isReadable reports whether r counts toward IsValidDecode: printable ASCII,
// whitespace, CJK/fullwidth punctuation or a CJK ideograph.
func isReadable(r rune) bool {
	switch {
	case r >= 0x20 && r <= 0x7E:
		return true
	case r == '\t' || r == '\n' || r == '\r':
		return true
	case r >= 0x3000 && r <= 0x303F: // CJK symbols and punctuation
		return true
	case r >= 0xFF00 && r <= 0xFFEF: // halfwidth and fullwidth forms
		return true
	case r >= 0x2000 && r <= 0x206F: // general punctuation
		return true
	case r >= 0x4E00 && r <= 0x9FFF: // CJK unified ideographs
		return true
	case r >= 0x3400 && r <= 0x4DBF: // CJK extension A
		return true
	}
	return false
}

// IsValidDecode reports whether s looks like successfully decoded text:
// more than ValidityThreshold of its characters must be readable.
func IsValidDecode(s string) bool {
	if s == "" {
		return false
	}
	var total, readable int
	for _, r := range s {
		total++
		if isReadable(r) {
			readable++
		}
	}
	return float64(readable)/float64(total) > ValidityThreshold
}

// CouldBeEncoded reports whether s still matches one of the encoded shapes
// the resolver knows and is long enough to be worth another round.
func CouldBeEncoded(s string) bool {
	if utf8.RuneCountInString(s) <= MinEncodedLength {
		return false
	}
	return percentPattern.MatchString(s) ||
		unicodePattern.MatchString(s) ||
		base64Pattern.MatchString(s) ||
		hexPattern.MatchString(s)
}

// isControl reports whether r is a control character other than tab, LF or CR.
func isControl(r rune) bool {
	return (r >= 0x00 && r <= 0x08) ||
		r == 0x0B || r == 0x0C ||
		(r >= 0x0E && r <= 0x1F) ||
		r == 0x7F
}

// ControlRatio returns the share of characters in s that are control
// characters. Lower is better. Empty input reports 0.
func ControlRatio(s string) float64 {
	var total, control int
	for _, r := range s {
		total++
		if isControl(r) {
			control++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(control) / float64(total)
}

// hasNUL reports whether s contains a NUL character.
func hasNUL(s string) bool {
	return strings.ContainsRune(s, 0)
}
