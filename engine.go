package unravel

import (
	"context"
	"time"
)

// Option configures an Engine.
type Option func(*Engine)

// WithIndent sets the number of spaces the beautify transform indents by.
func WithIndent(spaces int) Option {
	return func(e *Engine) {
		e.indent = spaces
	}
}

// Engine runs transforms and the smart resolver.
//
// An Engine holds no per-call state and is safe for concurrent use.
type Engine struct {
	indent   int
	decoders map[Transform]Decoder
}

// New creates an Engine with the builtin transforms.
func New(opts ...Option) *Engine {
	e := &Engine{indent: DefaultIndent}
	for _, opt := range opts {
		opt(e)
	}
	e.decoders = builtinDecoders(e.indent)
	return e
}

// builtinDecoders returns the fixed transform table.
func builtinDecoders(indent int) map[Transform]Decoder {
	return map[Transform]Decoder{
		TransformHex:      HexDecoder(),
		TransformURL:      URLDecoder(),
		TransformBase64:   Base64Decoder(),
		TransformPSBase64: PSBase64Decoder(),
		TransformUnicode:  UnicodeDecoder(),
		TransformUnescape: UnescapeDecoder(),
		TransformBeautify: BeautifyDecoder(indent),
	}
}

// Decode applies exactly one named transform to text.
// TransformSmart runs the resolver and never fails.
func (e *Engine) Decode(ctx context.Context, name Transform, text string) (string, error) {
	if name == TransformSmart {
		return e.Smart(ctx, text).Text, nil
	}

	dec, ok := e.decoders[name]
	if !ok {
		return "", &TransformError{Err: ErrUnknownTransform, Transform: name}
	}

	start := time.Now()
	emitDecodeStart(ctx, name, len(text))

	out, err := dec.Decode(text)
	emitDecodeComplete(ctx, name, len(out), time.Since(start), err)
	if err != nil {
		return "", err
	}
	return out, nil
}

var defaultEngine = New()

// Decode applies one named transform using the default Engine.
func Decode(name Transform, text string) (string, error) {
	return defaultEngine.Decode(context.Background(), name, text)
}

// SmartDecode runs the resolver using the default Engine and returns the
// annotated output, or text unchanged when nothing decoded.
func SmartDecode(text string) string {
	return defaultEngine.Smart(context.Background(), text).Text
}
