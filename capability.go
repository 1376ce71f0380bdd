package unravel

import "fmt"

// Transform names a supported decode operation.
// Use these constants with Decode and in struct tags: `decode:"base64"`
type Transform string

const (
	// TransformHex decodes hexadecimal digit pairs as UTF-8.
	TransformHex Transform = "hex"

	// TransformURL reverses (possibly repeated) percent-encoding.
	TransformURL Transform = "url"

	// TransformBase64 decodes standard Base64 as UTF-8.
	TransformBase64 Transform = "base64"

	// TransformPSBase64 decodes Base64 as UTF-16LE, the PowerShell -EncodedCommand format.
	TransformPSBase64 Transform = "psBase64"

	// TransformUnicode resolves \uXXXX escapes.
	TransformUnicode Transform = "unicode"

	// TransformUnescape resolves \n, \t, \r, \", \' and \\ escapes.
	TransformUnescape Transform = "unescape"

	// TransformBeautify indents JSON, or breaks code-like text at brackets.
	TransformBeautify Transform = "beautify"

	// TransformSmart runs the iterative resolver.
	TransformSmart Transform = "smart"
)

// transformLabels holds the human-readable names recorded in smart traces.
var transformLabels = map[Transform]string{
	TransformHex:      "Hex",
	TransformURL:      "URL",
	TransformBase64:   "Base64",
	TransformPSBase64: "PS Base64",
	TransformUnicode:  "Unicode",
	TransformUnescape: "Unescape",
	TransformBeautify: "Beautify",
	TransformSmart:    "Smart",
}

// transformOrder lists every transform in display order.
var transformOrder = []Transform{
	TransformHex,
	TransformURL,
	TransformBase64,
	TransformPSBase64,
	TransformUnicode,
	TransformUnescape,
	TransformBeautify,
	TransformSmart,
}

// Label returns the display name used in smart traces.
func (t Transform) Label() string {
	if l, ok := transformLabels[t]; ok {
		return l
	}
	return string(t)
}

// IsValidTransform returns true if the name is a known transform.
func IsValidTransform(t Transform) bool {
	_, ok := transformLabels[t]
	return ok
}

// Transforms returns all known transforms in display order.
func Transforms() []Transform {
	out := make([]Transform, len(transformOrder))
	copy(out, transformOrder)
	return out
}

// ParseTransform converts a name into a Transform.
func ParseTransform(name string) (Transform, error) {
	t := Transform(name)
	if !IsValidTransform(t) {
		return "", fmt.Errorf("%w: %q", ErrUnknownTransform, name)
	}
	return t, nil
}
