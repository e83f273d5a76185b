package folio

import (
	"context"
	"errors"
)

// FieldWalker applies a Transformer to every string value of the entries
// and @string blocks it is given. It decouples where strings live in a
// record from how a string is transformed.
//
// A FieldWalker holds no mutable state and is safe for concurrent use
// across distinct blocks.
type FieldWalker struct {
	key         string
	transformer Transformer
	ownership   Ownership
	malformed   MalformedPolicy
	diagnostics DiagnosticFunc
}

var _ BlockMiddleware = (*FieldWalker)(nil)

// NewFieldWalker returns a middleware identified by key that applies t.
// Accepted options are OnMalformed and WithDiagnostics.
func NewFieldWalker(key string, t Transformer, own Ownership, opts ...Option) (*FieldWalker, error) {
	o := collect(opts)
	if err := o.allowOnly(key, optOnMalformed, optWithDiagnostics); err != nil {
		return nil, err
	}

	w, err := newFieldWalker(key, t, own, o)
	if err != nil {
		return nil, err
	}

	emitMiddlewareCreated(context.Background(), key, own)
	return w, nil
}

func newFieldWalker(key string, t Transformer, own Ownership, o *options) (*FieldWalker, error) {
	if t == nil {
		return nil, newConfigError(ErrMissingTransformer, key, "Transformer")
	}
	if !IsValidOwnership(own) {
		return nil, newConfigError(ErrInvalidOwnership, key, string(own))
	}
	if !IsValidMalformedPolicy(o.malformed) {
		return nil, newConfigError(ErrInvalidPolicy, key, string(o.malformed))
	}

	return &FieldWalker{
		key:         key,
		transformer: t,
		ownership:   own,
		malformed:   o.malformed,
		diagnostics: o.diagnostics,
	}, nil
}

// MetadataKey identifies the middleware.
func (w *FieldWalker) MetadataKey() string {
	return w.key
}

// AllowsParallelExecution is always true: each call touches only its own
// block.
func (w *FieldWalker) AllowsParallelExecution() bool {
	return true
}

// Ownership reports whether blocks are modified in place or copied.
func (w *FieldWalker) Ownership() Ownership {
	return w.ownership
}

// TransformEntry transforms every text and name value of e, field by field
// in order. Opaque payloads implementing Transformable are transformed too;
// other value types, nil names included, are skipped with a diagnostic.
//
// On error nothing is returned; with InPlace ownership the fields before
// the failing one have already been rewritten.
func (w *FieldWalker) TransformEntry(ctx context.Context, e *Entry, _ *Library) (Block, error) {
	if w.ownership == Copy {
		e = e.Clone()
	}

	for i := range e.Fields {
		f := &e.Fields[i]

		switch v := f.Value.(type) {
		case Text:
			out, err := w.apply(ctx, e.Key, f.Key, string(v))
			if err != nil {
				return nil, err
			}
			f.Value = Text(out)

		case *NameParts:
			if v == nil {
				w.skip(ctx, e.Key, f.Key, f.Value)
				continue
			}
			if err := w.applyNames(ctx, e.Key, f.Key, v); err != nil {
				return nil, err
			}

		case Opaque:
			out, ok, err := w.transformOpaque(ctx, e.Key, f.Key, v)
			if err != nil {
				return nil, err
			}
			if !ok {
				w.skip(ctx, e.Key, f.Key, f.Value)
				continue
			}
			f.Value = out

		default:
			w.skip(ctx, e.Key, f.Key, f.Value)
		}
	}

	return e, nil
}

// TransformString transforms the value of an @string definition.
func (w *FieldWalker) TransformString(ctx context.Context, s *String, _ *Library) (Block, error) {
	if w.ownership == Copy {
		s = s.Clone()
	}

	v, ok := s.Value.(Text)
	if !ok {
		w.skip(ctx, s.Key, "", s.Value)
		return s, nil
	}

	out, err := w.apply(ctx, s.Key, "", string(v))
	if err != nil {
		return nil, err
	}
	s.Value = Text(out)

	return s, nil
}

// applyNames transforms the four name lists in order. A list is replaced
// only once all of its elements succeeded.
func (w *FieldWalker) applyNames(ctx context.Context, block, field string, n *NameParts) error {
	for _, list := range []*[]string{&n.First, &n.Last, &n.Von, &n.Jr} {
		if *list == nil {
			continue
		}
		out := make([]string, len(*list))
		for i, s := range *list {
			t, err := w.apply(ctx, block, field, s)
			if err != nil {
				return err
			}
			out[i] = t
		}
		*list = out
	}
	return nil
}

// apply runs the transformer on one string and enforces the malformed
// markup policy.
func (w *FieldWalker) apply(ctx context.Context, block, field, s string) (string, error) {
	out, err := w.transformer.Transform(s)
	if err == nil {
		return out, nil
	}

	if w.malformed == MalformedKeep && errors.Is(err, ErrMalformedMarkup) {
		emitStringKept(ctx, w.key, block, field, err)
		w.report(Diagnostic{Middleware: w.key, Block: block, Field: field, ValueType: "text", Err: err})
		return s, nil
	}

	return "", newTransformError(w.key, block, field, err)
}

// skip records a value the walker does not know how to transform.
func (w *FieldWalker) skip(ctx context.Context, block, field string, v Value) {
	typ := valueTypeName(v)
	emitFieldSkipped(ctx, w.key, block, field, typ)
	w.report(Diagnostic{Middleware: w.key, Block: block, Field: field, ValueType: typ})
}

func (w *FieldWalker) report(d Diagnostic) {
	if w.diagnostics != nil {
		w.diagnostics(d)
	}
}
