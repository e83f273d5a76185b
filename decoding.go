package folio

import (
	"context"

	"github.com/zoobzio/folio/latex"
)

// LatexDecoding converts every string value from LaTeX markup to Unicode.
type LatexDecoding struct {
	*FieldWalker
	decoder Decoder
}

// contextCategory names the macro overrides searched before the defaults.
const contextCategory = "folio-default-context"

// NewLatexDecoding returns a decoding middleware.
//
// Without WithDecoder the decoder uses latex.DefaultContext with \url{x}
// rendering as its bare argument, drops literal braces unless
// KeepBracedGroups(true), and keeps math verbatim unless
// KeepMathMode(false). Combining WithDecoder with either flag fails with
// ErrConflictingOptions.
//
// Strings that are not valid markup fail their block unless
// OnMalformed(MalformedKeep) is given.
func NewLatexDecoding(own Ownership, opts ...Option) (*LatexDecoding, error) {
	o := collect(opts)
	if err := o.allowOnly(KeyLatexDecoding,
		optKeepBracedGroups, optKeepMathMode, optWithDecoder, optOnMalformed, optWithDiagnostics,
	); err != nil {
		return nil, err
	}
	if err := o.exclusive(KeyLatexDecoding, optWithDecoder, optKeepBracedGroups, optKeepMathMode); err != nil {
		return nil, err
	}

	dec := o.decoder
	if o.has(optWithDecoder) && dec == nil {
		return nil, newConfigError(ErrMissingTransformer, KeyLatexDecoding, optWithDecoder)
	}
	if dec == nil {
		dec = defaultDecoder(boolOr(o.keepBraced, false), boolOr(o.keepMathMode, true))
	}

	m := &LatexDecoding{decoder: dec}
	w, err := newFieldWalker(KeyLatexDecoding, TransformerFunc(dec.Decode), own, o)
	if err != nil {
		return nil, err
	}
	m.FieldWalker = w

	emitMiddlewareCreated(context.Background(), KeyLatexDecoding, own)
	return m, nil
}

// Decode converts one string with the configured decoder.
func (m *LatexDecoding) Decode(s string) (string, error) {
	return m.decoder.Decode(s)
}

func defaultDecoder(keepBraced, keepMath bool) *latex.TextRenderer {
	ctx := latex.DefaultContext().With(contextCategory, true,
		latex.Macro("url", 1, "%s"),
	)

	mode := latex.MathText
	if keepMath {
		mode = latex.MathVerbatim
	}

	return latex.NewTextRenderer(
		latex.WithContext(ctx),
		latex.KeepBracedGroups(keepBraced),
		latex.WithMathMode(mode),
	)
}
