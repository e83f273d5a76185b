// Package latex converts text between Unicode and LaTeX markup.
//
// # Encoding
//
// An Encoder scans its input left to right. At every position the configured
// rules are tried in order and the first one that matches consumes a run of
// input and emits its replacement. Runes no rule covers pass through as-is.
//
//	enc := latex.NewEncoder(
//	    latex.PatternRule{latex.MustPattern(`(\$.*?[^\\]\$)`, "${1}")},
//	    latex.Defaults,
//	)
//	enc.Encode("Café & $x_1$") // Caf\'e \& $x_1$
//
// Defaults escapes the characters that are significant to TeX, maps named
// symbols and typographic punctuation, and spells accented letters with
// accent macros by decomposing them.
//
// # Decoding
//
// Parse turns markup into a flat node list; a TextRenderer walks the nodes
// and produces plain text using a Context, an ordered database of macro
// specifications.
//
//	r := latex.NewTextRenderer(latex.WithMathMode(latex.MathVerbatim))
//	s, err := r.Decode(`Caf{\'e} \& $x_1$`) // Café & $x_1$
//
// Malformed markup (unbalanced braces, unterminated math, a trailing
// backslash) is reported as a *ParseError wrapping ErrMalformed.
package latex
