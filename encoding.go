package folio

import (
	"context"

	"github.com/zoobzio/folio/latex"
)

// LatexEncoding converts every string value from Unicode to LaTeX markup.
type LatexEncoding struct {
	*FieldWalker
	encoder Encoder
}

// Default encoding rules.
var (
	mathRule = latex.PatternRule{keepMathPattern()}

	// urlRule wraps URLs in \url{}.
	urlRule = latex.PatternRule{
		latex.MustPattern(`(https?://\S*\.\S*)`, `\url{${1}}`),
		latex.MustPattern(`(www\.\S*\.\S*)`, `\url{${1}}`),
	}
)

// keepMathPattern matches a $...$ span whose content does not end in an
// escaped character and which does not follow a backslash, and emits it
// as written.
func keepMathPattern() latex.Pattern {
	p := latex.MustPattern(`(\$.*?[^\\]\$)`, "${1}")
	p.NotAfter = `\`
	return p
}

// NewLatexEncoding returns an encoding middleware.
//
// Without WithEncoder the rule table is, in priority order: math spans kept
// verbatim (KeepMath, default true), URLs enclosed in \url{} (EncloseURLs,
// default true), then latex.Defaults. Combining WithEncoder with either
// flag fails with ErrConflictingOptions.
func NewLatexEncoding(own Ownership, opts ...Option) (*LatexEncoding, error) {
	o := collect(opts)
	if err := o.allowOnly(KeyLatexEncoding,
		optKeepMath, optEncloseURLs, optWithEncoder, optOnMalformed, optWithDiagnostics,
	); err != nil {
		return nil, err
	}
	if err := o.exclusive(KeyLatexEncoding, optWithEncoder, optKeepMath, optEncloseURLs); err != nil {
		return nil, err
	}

	enc := o.encoder
	if o.has(optWithEncoder) && enc == nil {
		return nil, newConfigError(ErrMissingTransformer, KeyLatexEncoding, optWithEncoder)
	}
	if enc == nil {
		enc = defaultEncoder(boolOr(o.keepMath, true), boolOr(o.encloseURLs, true))
	}

	m := &LatexEncoding{encoder: enc}
	w, err := newFieldWalker(KeyLatexEncoding, TransformerFunc(m.transform), own, o)
	if err != nil {
		return nil, err
	}
	m.FieldWalker = w

	emitMiddlewareCreated(context.Background(), KeyLatexEncoding, own)
	return m, nil
}

// Encode converts one string with the configured rules.
func (m *LatexEncoding) Encode(s string) string {
	return m.encoder.Encode(s)
}

func (m *LatexEncoding) transform(s string) (string, error) {
	return m.encoder.Encode(s), nil
}

func defaultEncoder(keepMath, encloseURLs bool) *latex.Encoder {
	var rules []latex.Rule
	if keepMath {
		rules = append(rules, mathRule)
	}
	if encloseURLs {
		rules = append(rules, urlRule)
	}
	rules = append(rules, latex.Defaults)
	return latex.NewEncoder(rules...)
}

func boolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}
