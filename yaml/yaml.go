// Package yaml reads and writes YAML records for unravel processors, such as
// hand-written incident notes with encoded indicators.
package yaml

import (
	"github.com/zoobzio/unravel"
	"gopkg.in/yaml.v3"
)

type yamlCodec struct{}

// New returns a YAML codec.
func New() unravel.Codec {
	return &yamlCodec{}
}

func (c *yamlCodec) ContentType() string {
	return "application/yaml"
}

func (c *yamlCodec) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

func (c *yamlCodec) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}
