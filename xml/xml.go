// Package xml reads and writes XML records for unravel processors, such as
// Windows event log exports.
// Record types need xml struct tags; maps are not supported by encoding/xml.
package xml

import (
	"encoding/xml"

	"github.com/zoobzio/unravel"
)

type xmlCodec struct{}

// New returns an XML codec.
func New() unravel.Codec {
	return &xmlCodec{}
}

func (c *xmlCodec) ContentType() string {
	return "application/xml"
}

func (c *xmlCodec) Marshal(v any) ([]byte, error) {
	return xml.Marshal(v)
}

func (c *xmlCodec) Unmarshal(data []byte, v any) error {
	return xml.Unmarshal(data, v)
}
