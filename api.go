// Package unravel recovers plaintext from strings that have been wrapped in one
// or more layers of common encodings.
//
// The package offers a fixed set of named transforms, a scorer that judges
// whether decoded text looks like plaintext, and a "smart" resolver that chains
// transforms until the text stops looking encoded.
//
// # Transforms
//
// Each transform validates its input shape and fails fast on mismatch:
//
//	hex       48656c6c6f             -> Hello
//	url       %E4%BD%A0%E5%A5%BD     -> 你好
//	base64    SGVsbG8                -> Hello   (padding restored)
//	psBase64  SABpAA==               -> Hi      (UTF-16LE, PowerShell -EncodedCommand)
//	unicode   \u4f60\u597d           -> 你好
//	unescape  a\nb                   -> a<newline>b
//	beautify  {"a":1}                -> indented JSON
//	smart     %5Cu4f60%5Cu597d       -> URL → Unicode → 你好
//
// # Basic Usage
//
//	out, err := unravel.Decode(unravel.TransformHex, "48656c6c6f")
//	// out == "Hello"
//
//	text := unravel.SmartDecode("%5Cu4f60%5Cu597d")
//	// [*] Smart decode: URL → Unicode
//	// ────────────────────────────────────────
//	// 你好
//
//	body := unravel.StripAnnotation(text)
//	// body == "你好"
//
// # Engine
//
// The package-level functions use a default Engine. Build your own to change
// the beautify indentation or to pass a context through to emitted signals:
//
//	eng := unravel.New(unravel.WithIndent(4))
//	res := eng.Smart(ctx, input)
//	fmt.Println(res.Trace, res.Body)
//
// # Annotations
//
// Lossy decodes (odd-length hex, skipped UTF-8 continuation bytes) and smart
// decodes prefix their output with a one-line banner and a divider. The banner
// uses one of two markers, "[!] " for warnings and "[*] " for smart traces.
// StripAnnotation removes exactly those banners and nothing else.
//
// # Records
//
// Processor applies transforms to tagged fields of structured records read
// through a Codec:
//
//	type Event struct {
//	    ID      string `json:"id"`
//	    Payload string `json:"payload" decode:"smart"`
//	    Command string `json:"command" decode:"psBase64"`
//	}
//
//	func (e Event) Clone() Event { return e }
//
//	proc, _ := unravel.NewProcessor[Event](json.New())
//	event, _ := proc.Load(ctx, raw)
//
// Codec implementations live in the json, xml, yaml, msgpack and bson
// subpackages.
package unravel

// Decoder applies a single transform to text.
type Decoder interface {
	// Decode returns the transformed text, or a *TransformError describing
	// why the input does not fit this transform.
	Decode(text string) (string, error)
}
