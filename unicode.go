package unravel

import (
	"encoding/json"
	"regexp"
	"strconv"
	"unicode/utf16"
)

// unicodeRun matches one or more consecutive \uXXXX escapes, so surrogate
// pairs are decoded together.
var unicodeRun = regexp.MustCompile(`(?:\\u[0-9A-Fa-f]{4})+`)

// unicodeDecoder resolves \uXXXX escapes.
type unicodeDecoder struct{}

// UnicodeDecoder returns a decoder for \uXXXX escapes. The input is first read
// as the body of a JSON string literal, which also resolves \n, \" and \\.
// When that fails (a bare quote, a raw control character) only the \uXXXX
// escapes are replaced and everything else is left as-is.
func UnicodeDecoder() Decoder {
	return &unicodeDecoder{}
}

func (d *unicodeDecoder) Decode(text string) (string, error) {
	if !unicodePattern.MatchString(text) {
		return "", newTransformError(ErrInvalidFormat, TransformUnicode, `no \uXXXX escape found`, nil)
	}

	var out string
	if err := json.Unmarshal([]byte(`"`+text+`"`), &out); err == nil {
		return out, nil
	}
	return replaceUnicodeEscapes(text), nil
}

// replaceUnicodeEscapes substitutes each \uXXXX run with the characters it
// encodes. Unpaired surrogates become U+FFFD.
func replaceUnicodeEscapes(text string) string {
	return unicodeRun.ReplaceAllStringFunc(text, func(run string) string {
		units := make([]uint16, 0, len(run)/6)
		for i := 0; i+6 <= len(run); i += 6 {
			v, err := strconv.ParseUint(run[i+2:i+6], 16, 16)
			if err != nil {
				return run
			}
			units = append(units, uint16(v))
		}
		return string(utf16.Decode(units))
	})
}
