package unravel

import (
	"net/url"
	"strings"
)

// maxURLRounds bounds repeated percent-decoding of multiply-encoded input.
const maxURLRounds = 10

// urlDecoder reverses percent-encoding.
type urlDecoder struct{}

// URLDecoder returns a decoder for percent-encoded text. Input encoded
// several times over is decoded until it stops changing. A malformed escape
// ends decoding and keeps the last good value. '+' is left alone.
func URLDecoder() Decoder {
	return &urlDecoder{}
}

func (d *urlDecoder) Decode(text string) (string, error) {
	if !percentPattern.MatchString(text) {
		return "", newTransformError(ErrInvalidFormat, TransformURL, "no %XX escape found", nil)
	}

	current := text
	for i := 0; i < maxURLRounds; i++ {
		next, err := url.PathUnescape(current)
		if err != nil || next == current {
			break
		}
		current = next
	}
	return strings.ToValidUTF8(current, "�"), nil
}
