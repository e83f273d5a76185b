package latex

import (
	"strings"
	"unicode/utf8"
)

// MathMode selects how math spans render as text.
type MathMode int

const (
	// MathText renders math content like ordinary text, without delimiters.
	MathText MathMode = iota
	// MathVerbatim keeps the span exactly as written, delimiters included.
	MathVerbatim
	// MathWithDelimiters renders math content as text inside its delimiters.
	MathWithDelimiters
	// MathRemove drops math spans.
	MathRemove
)

var specialText = map[string]string{
	"~":   "\u00a0",
	"--":  "–",
	"---": "—",
	"``":  "“",
	"''":  "”",
}

// TextRenderer converts parsed markup into plain text.
// A TextRenderer is immutable and safe for concurrent use.
type TextRenderer struct {
	ctx        *Context
	keepBraced bool
	math       MathMode
}

// TextOption configures a TextRenderer.
type TextOption func(*TextRenderer)

// WithContext sets the macro database. The default is DefaultContext().
func WithContext(c *Context) TextOption {
	return func(r *TextRenderer) {
		r.ctx = c
	}
}

// KeepBracedGroups keeps the braces of literal groups in the output.
func KeepBracedGroups(keep bool) TextOption {
	return func(r *TextRenderer) {
		r.keepBraced = keep
	}
}

// WithMathMode sets how math spans render. The default is MathText.
func WithMathMode(m MathMode) TextOption {
	return func(r *TextRenderer) {
		r.math = m
	}
}

// NewTextRenderer returns a renderer configured by opts.
func NewTextRenderer(opts ...TextOption) *TextRenderer {
	r := &TextRenderer{math: MathText}
	for _, opt := range opts {
		opt(r)
	}
	if r.ctx == nil {
		r.ctx = DefaultContext()
	}
	return r
}

// Decode parses s and renders it as text.
func (r *TextRenderer) Decode(s string) (string, error) {
	nodes, err := Parse(s)
	if err != nil {
		return "", err
	}
	return r.Render(nodes), nil
}

// Render converts nodes into text.
func (r *TextRenderer) Render(nodes []Node) string {
	var b strings.Builder
	r.render(nodes, &b)
	return b.String()
}

func (r *TextRenderer) render(nodes []Node, b *strings.Builder) {
	rest := nodes
	for len(rest) > 0 {
		n := rest[0]
		rest = rest[1:]

		switch n := n.(type) {
		case Chars:
			b.WriteString(n.Text)
		case Specials:
			b.WriteString(specialText[n.Chars])
		case Comment:
		case Group:
			if r.keepBraced {
				b.WriteByte('{')
				r.render(n.Nodes, b)
				b.WriteByte('}')
			} else {
				r.render(n.Nodes, b)
			}
		case Math:
			r.renderMath(n, b)
		case Command:
			spec, ok := r.ctx.Lookup(n.Name)
			if !ok {
				// Unknown macros take no arguments and render as nothing.
				continue
			}
			args := make([]string, spec.Args)
			for i := range args {
				var arg Node
				arg, rest = takeArg(rest)
				if arg != nil {
					args[i] = r.renderArg(arg)
				}
			}
			b.WriteString(spec.render(args))
		}
	}
}

func (r *TextRenderer) renderMath(m Math, b *strings.Builder) {
	switch r.math {
	case MathVerbatim:
		b.WriteString(m.Open)
		b.WriteString(m.Raw)
		b.WriteString(m.Close)
	case MathWithDelimiters:
		b.WriteString(m.Open)
		r.render(m.Nodes, b)
		b.WriteString(m.Close)
	case MathRemove:
	default:
		r.render(m.Nodes, b)
	}
}

// renderArg renders a macro argument. Braces delimiting an argument are
// never kept.
func (r *TextRenderer) renderArg(n Node) string {
	if g, ok := n.(Group); ok {
		return r.Render(g.Nodes)
	}
	return r.Render([]Node{n})
}

// takeArg removes the next argument from nodes: a group, a control
// sequence, or the first non-blank rune of a text run.
func takeArg(nodes []Node) (Node, []Node) {
	for len(nodes) > 0 {
		c, ok := nodes[0].(Chars)
		if !ok {
			return nodes[0], nodes[1:]
		}

		text := strings.TrimLeft(c.Text, " \t\n")
		if text == "" {
			nodes = nodes[1:]
			continue
		}

		_, size := utf8.DecodeRuneInString(text)
		arg := Chars{Text: text[:size]}
		if size == len(text) {
			return arg, nodes[1:]
		}
		rest := make([]Node, 0, len(nodes))
		rest = append(rest, Chars{Text: text[size:]})
		rest = append(rest, nodes[1:]...)
		return arg, rest
	}
	return nil, nil
}
