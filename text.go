package unravel

import (
	"encoding/binary"
	"strings"
	"unicode/utf16"

	xunicode "golang.org/x/text/encoding/unicode"
)

// decodeUTF8 decodes b as UTF-8, substituting U+FFFD for invalid sequences.
func decodeUTF8(b []byte) string {
	out, err := xunicode.UTF8.NewDecoder().Bytes(b)
	if err != nil {
		return strings.ToValidUTF8(string(b), "�")
	}
	return string(out)
}

// decodeUTF16LE decodes b as little-endian UTF-16, substituting U+FFFD for
// unpaired surrogates. b must have even length.
func decodeUTF16LE(b []byte) string {
	dec := xunicode.UTF16(xunicode.LittleEndian, xunicode.IgnoreBOM).NewDecoder()
	out, err := dec.Bytes(b)
	if err == nil {
		return string(out)
	}
	units := make([]uint16, len(b)/2)
	for i := range units {
		units[i] = binary.LittleEndian.Uint16(b[2*i:])
	}
	return string(utf16.Decode(units))
}
