// Package msgpack reads and writes MessagePack records for unravel
// processors. Fields tagged decode are decoded after the record is read;
// struct fields use msgpack tags for their wire names.
package msgpack

import (
	"github.com/vmihailenco/msgpack/v5"
	"github.com/zoobzio/unravel"
)

type msgpackCodec struct{}

// New returns a MessagePack codec.
func New() unravel.Codec {
	return &msgpackCodec{}
}

func (c *msgpackCodec) ContentType() string {
	return "application/msgpack"
}

func (c *msgpackCodec) Marshal(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

func (c *msgpackCodec) Unmarshal(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}
