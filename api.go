// Package folio provides bibliography middlewares that rewrite field values
// between LaTeX markup and plain text.
//
// A middleware is one stage of a larger pipeline that parses, transforms,
// and re-serializes bibliography libraries. This package defines the
// traversal contract and two concrete transformations; it never parses
// BibTeX syntax and does not decide pipeline order.
//
// # Traversal
//
// A FieldWalker locates every transformable string in a block and applies
// a Transformer to it:
//
//   - Text field values are transformed directly.
//   - NameParts values have every element of First, Last, Von and Jr
//     transformed, in that order, preserving list lengths.
//   - Opaque values are transformed when their payload implements
//     Transformable and skipped with a diagnostic otherwise.
//
// String blocks (@string macros) are handled like a single text field.
//
// # Ownership
//
// Every middleware is built with an explicit Ownership. InPlace mutates the
// block it is given; Copy clones it first and leaves the argument untouched.
//
// # Basic Usage
//
//	enc, err := folio.NewLatexEncoding(folio.Copy)
//	if err != nil {
//	    return err
//	}
//	out, err := folio.Apply(ctx, library, enc, folio.WithWorkers(8))
//
//	dec, err := folio.NewLatexDecoding(folio.InPlace,
//	    folio.KeepMathMode(false),
//	    folio.OnMalformed(folio.MalformedKeep),
//	)
//
// # Options
//
// Encoding takes either KeepMath/EncloseURLs or a complete WithEncoder;
// decoding takes either KeepBracedGroups/KeepMathMode or a complete
// WithDecoder. Mixing the two groups fails at construction with a
// *ConfigError wrapping ErrConflictingOptions.
//
// # Diagnostics
//
// Non-fatal conditions (skipped value types, malformed strings kept as-is)
// are emitted as capitan signals and passed to the optional
// WithDiagnostics sink. They never surface as errors.
//
// # Codec Providers
//
// Libraries can be persisted between pipeline stages with Marshal and
// Unmarshal. Codec implementations are available as submodules:
//
//   - json - JSON encoding (application/json)
//   - xml - XML encoding (application/xml)
//   - yaml - YAML encoding (application/yaml)
//   - msgpack - MessagePack encoding (application/msgpack)
//   - bson - BSON encoding (application/bson)
package folio

import "context"

// Transformer rewrites one string value.
// Implementations must not retain or mutate shared state; the same
// Transformer is applied concurrently across blocks.
type Transformer interface {
	// Transform returns the new value for s. Errors wrapping
	// ErrMalformedMarkup mark input that could not be interpreted.
	Transform(s string) (string, error)
}

// TransformerFunc adapts a function to Transformer.
type TransformerFunc func(s string) (string, error)

// Transform calls f(s).
func (f TransformerFunc) Transform(s string) (string, error) { return f(s) }

// Encoder converts plain text into markup. *latex.Encoder satisfies it.
type Encoder interface {
	Encode(s string) string
}

// Decoder converts markup into plain text. *latex.TextRenderer satisfies it.
type Decoder interface {
	Decode(s string) (string, error)
}

// BlockMiddleware is the contract between a middleware and the pipeline
// that runs it.
type BlockMiddleware interface {
	// MetadataKey identifies the middleware in diagnostics and provenance.
	MetadataKey() string

	// AllowsParallelExecution reports whether distinct blocks of one
	// library may be transformed concurrently.
	AllowsParallelExecution() bool

	// TransformEntry transforms one entry. The library is the collection
	// the entry belongs to and is read-only.
	TransformEntry(ctx context.Context, e *Entry, lib *Library) (Block, error)

	// TransformString transforms one @string definition.
	TransformString(ctx context.Context, s *String, lib *Library) (Block, error)
}
