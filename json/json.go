// Package json reads and writes JSON records for unravel processors, such as
// alert exports or log lines whose fields carry encoded command lines.
//
//	proc, _ := unravel.Use[Alert](json.New())
//	alert, err := proc.Load(ctx, line)
package json

import (
	"encoding/json"

	"github.com/zoobzio/unravel"
)

// jsonCodec implements unravel.Codec for JSON.
type jsonCodec struct{}

// New returns a JSON codec.
func New() unravel.Codec {
	return &jsonCodec{}
}

// ContentType returns the MIME type for JSON.
func (c *jsonCodec) ContentType() string {
	return "application/json"
}

// Marshal writes a decoded record as JSON.
func (c *jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal reads a JSON record before its fields are decoded.
func (c *jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
