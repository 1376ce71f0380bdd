package unravel

import (
	"encoding/base64"
	"regexp"
	"strings"
)

// MinBase64Chars is the number of cleaned characters the resolver requires
// before trying the Base64 family.
const MinBase64Chars = 8

// minBase64Input is the fewest cleaned characters a direct Base64 call accepts.
const minBase64Input = 4

// base64Noise matches everything outside the standard Base64 alphabet.
var base64Noise = regexp.MustCompile(`[^A-Za-z0-9+/=]`)

// cleanBase64 strips characters outside the Base64 alphabet.
func cleanBase64(text string) string {
	return base64Noise.ReplaceAllString(text, "")
}

// base64Bytes cleans, pads and decodes text into raw bytes.
func base64Bytes(t Transform, text string) ([]byte, error) {
	clean := cleanBase64(text)
	if len(clean) < minBase64Input {
		return nil, newTransformError(ErrInvalidFormat, t, "need at least 4 Base64 characters", nil)
	}

	switch len(clean) % 4 {
	case 1:
		return nil, newTransformError(ErrDecode, t, "malformed length, one character past a full block", nil)
	case 2:
		clean += "=="
	case 3:
		clean += "="
	}

	b, err := base64.StdEncoding.DecodeString(clean)
	if err != nil {
		return nil, newTransformError(ErrDecode, t, "", err)
	}
	return b, nil
}

// base64Decoder decodes standard Base64 as UTF-8.
type base64Decoder struct{}

// Base64Decoder returns a decoder for standard Base64. Characters outside the
// alphabet (line breaks, quotes) are dropped and missing padding is restored.
func Base64Decoder() Decoder {
	return &base64Decoder{}
}

func (d *base64Decoder) Decode(text string) (string, error) {
	b, err := base64Bytes(TransformBase64, text)
	if err != nil {
		return "", err
	}
	return decodeUTF8(b), nil
}

// psBase64Decoder decodes Base64 carrying UTF-16LE text.
type psBase64Decoder struct{}

// PSBase64Decoder returns a decoder for Base64-encoded UTF-16LE, the format
// PowerShell's -EncodedCommand expects. A leading byte-order mark is skipped
// and an odd trailing byte is dropped.
func PSBase64Decoder() Decoder {
	return &psBase64Decoder{}
}

func (d *psBase64Decoder) Decode(text string) (string, error) {
	b, err := base64Bytes(TransformPSBase64, text)
	if err != nil {
		return "", err
	}
	if len(b) >= 2 && b[0] == 0xFF && b[1] == 0xFE {
		b = b[2:]
	}
	if len(b)%2 != 0 {
		b = b[:len(b)-1]
	}
	return decodeUTF16LE(b), nil
}

// looksBase64 is the resolver's pre-check for the Base64 family.
func looksBase64(text string) bool {
	trimmed := strings.TrimSpace(text)
	return wrappedBase64Pattern.MatchString(trimmed) && len(cleanBase64(trimmed)) >= MinBase64Chars
}
