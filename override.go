package folio

import (
	"context"
	"errors"
)

// Transformable lets an Opaque payload expose its strings to a walker.
// Payloads that do not implement it are skipped with a diagnostic.
//
// TransformStrings must apply fn to each of the payload's strings and
// return a new payload; it must not modify the receiver, which may be
// shared with the block a Copy walker was given.
type Transformable interface {
	TransformStrings(fn func(string) (string, error)) (any, error)
}

// transformOpaque runs the walker over a Transformable payload. The bool
// result is false when the payload does not implement Transformable.
func (w *FieldWalker) transformOpaque(ctx context.Context, block, field string, o Opaque) (Value, bool, error) {
	tr, ok := o.Payload.(Transformable)
	if !ok {
		return nil, false, nil
	}

	payload, err := tr.TransformStrings(func(s string) (string, error) {
		return w.apply(ctx, block, field, s)
	})
	if err != nil {
		var te *TransformError
		if errors.As(err, &te) {
			return nil, true, err
		}
		return nil, true, newTransformError(w.key, block, field, err)
	}
	return Opaque{Payload: payload}, true, nil
}
