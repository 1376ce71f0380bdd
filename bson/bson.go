// Package bson reads and writes BSON records for unravel processors, such as
// documents pulled from an event store.
// Records must marshal to documents; top-level scalars are rejected by BSON.
package bson

import (
	"github.com/zoobzio/unravel"
	"go.mongodb.org/mongo-driver/bson"
)

type bsonCodec struct{}

// New returns a BSON codec.
func New() unravel.Codec {
	return &bsonCodec{}
}

func (c *bsonCodec) ContentType() string {
	return "application/bson"
}

func (c *bsonCodec) Marshal(v any) ([]byte, error) {
	return bson.Marshal(v)
}

func (c *bsonCodec) Unmarshal(data []byte, v any) error {
	return bson.Unmarshal(data, v)
}
