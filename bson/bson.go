// Package bson provides a BSON codec for library snapshots.
package bson

import (
	"github.com/zoobzio/folio"
	"go.mongodb.org/mongo-driver/bson"
)

// bsonCodec implements folio.Codec for BSON.
type bsonCodec struct{}

// New returns a BSON codec. Values must marshal to a document, which
// every snapshot does.
func New() folio.Codec {
	return &bsonCodec{}
}

// ContentType returns the MIME type for BSON.
func (c *bsonCodec) ContentType() string {
	return "application/bson"
}

// Marshal encodes v as a BSON document.
func (c *bsonCodec) Marshal(v any) ([]byte, error) {
	return bson.Marshal(v)
}

// Unmarshal decodes a BSON document into v.
func (c *bsonCodec) Unmarshal(data []byte, v any) error {
	return bson.Unmarshal(data, v)
}
