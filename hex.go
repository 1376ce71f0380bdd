package unravel

import (
	"encoding/hex"
	"fmt"
	"regexp"
)

const (
	// MinHexDigits is the number of cleaned digits the resolver requires
	// before trying hex.
	MinHexDigits = 6

	// maxContinuationSkip bounds how many leading UTF-8 continuation bytes
	// are dropped from a selection that starts mid-codepoint.
	maxContinuationSkip = 3
)

// hexNoise matches whitespace and the 0x / \x byte prefixes.
var hexNoise = regexp.MustCompile(`(?i)\s+|0x|\\x`)

// hexDigits matches a string made only of hex digits.
var hexDigits = regexp.MustCompile(`^[0-9A-Fa-f]*$`)

// hexDecoder decodes hexadecimal digit pairs as UTF-8.
type hexDecoder struct{}

// HexDecoder returns a decoder for hex dumps. Whitespace and 0x / \x
// prefixes are ignored, so "48 65 6c", "0x480x65" and "\x48\x65" all decode.
// Odd-length input loses its last digit and input that starts inside a
// multi-byte UTF-8 sequence loses its leading continuation bytes; both are
// reported in a warning banner.
func HexDecoder() Decoder {
	return &hexDecoder{}
}

func (d *hexDecoder) Decode(text string) (string, error) {
	body, warnings, err := decodeHex(text)
	if err != nil {
		return "", err
	}
	return FormatWarning(warnings, body), nil
}

// cleanHex strips whitespace and byte prefixes.
func cleanHex(text string) string {
	return hexNoise.ReplaceAllString(text, "")
}

// decodeHex returns the decoded text and any lossy-decode warnings.
func decodeHex(text string) (string, []string, error) {
	clean := cleanHex(text)
	if !hexDigits.MatchString(clean) {
		return "", nil, newTransformError(ErrInvalidFormat, TransformHex, "input contains non-hex characters", nil)
	}
	if len(clean) < 2 {
		return "", nil, newTransformError(ErrTooShort, TransformHex, "need at least 2 hex digits", nil)
	}

	var warnings []string
	if len(clean)%2 != 0 {
		clean = clean[:len(clean)-1]
		warnings = append(warnings, "odd number of hex digits, last digit truncated")
	}

	b, err := hex.DecodeString(clean)
	if err != nil {
		return "", nil, newTransformError(ErrDecode, TransformHex, "", err)
	}

	skip := 0
	for skip < len(b) && skip < maxContinuationSkip && b[skip]&0xC0 == 0x80 {
		skip++
	}
	if skip > 0 {
		b = b[skip:]
		warnings = append(warnings, fmt.Sprintf("skipped %d leading UTF-8 continuation byte(s)", skip))
	}

	return decodeUTF8(b), warnings, nil
}
