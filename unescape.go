package unravel

import (
	"regexp"
	"strings"
)

// escapeReplacer resolves backslash escapes in one left-to-right pass. A
// literal \\ is consumed before the character after it is looked at, so \\n
// becomes a backslash followed by n.
var escapeReplacer = strings.NewReplacer(
	`\\`, `\`,
	`\n`, "\n",
	`\t`, "\t",
	`\r`, "\r",
	`\"`, `"`,
	`\'`, `'`,
)

// escapeSequence detects text the resolver should unescape after its loop.
var escapeSequence = regexp.MustCompile(`\\[ntr"']`)

// unescapeDecoder resolves common backslash escapes.
type unescapeDecoder struct{}

// UnescapeDecoder returns a decoder for \n, \t, \r, \", \' and \\. It never
// fails; text without escapes is returned unchanged.
func UnescapeDecoder() Decoder {
	return &unescapeDecoder{}
}

func (d *unescapeDecoder) Decode(text string) (string, error) {
	return escapeReplacer.Replace(text), nil
}

// hasEscapes reports whether text contains an escape the resolver unescapes.
func hasEscapes(text string) bool {
	return escapeSequence.MatchString(text)
}
