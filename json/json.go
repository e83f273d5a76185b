// Package json provides a JSON codec for library snapshots.
package json

import (
	"bytes"
	"encoding/json"

	"github.com/zoobzio/folio"
)

// jsonCodec implements folio.Codec for JSON.
type jsonCodec struct {
	indent string
}

// New returns a compact JSON codec.
func New() folio.Codec {
	return &jsonCodec{}
}

// NewIndented returns a JSON codec that indents nested values with indent,
// for snapshots meant to be diffed or read.
func NewIndented(indent string) folio.Codec {
	return &jsonCodec{indent: indent}
}

// ContentType returns the MIME type for JSON.
func (c *jsonCodec) ContentType() string {
	return "application/json"
}

// Marshal encodes v as JSON. Markup characters such as < and & are not
// escaped.
func (c *jsonCodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if c.indent != "" {
		enc.SetIndent("", c.indent)
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Unmarshal decodes JSON data into v.
func (c *jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
