package latex

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrMalformed indicates markup that cannot be parsed.
var ErrMalformed = errors.New("malformed markup")

// ParseError reports where and why parsing failed.
type ParseError struct {
	Pos int    // byte offset into the input
	Msg string // what went wrong
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at offset %d: %s", ErrMalformed.Error(), e.Pos, e.Msg)
}

func (e *ParseError) Unwrap() error {
	return ErrMalformed
}

// Parse splits markup into nodes.
func Parse(s string) ([]Node, error) {
	p := &parser{src: s}
	return p.sequence("", 0, false)
}

type parser struct {
	src string
	pos int
}

func (p *parser) errorf(pos int, format string, args ...any) error {
	return &ParseError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// sequence parses nodes until end is found, or until the input runs out
// when end is empty. start is the offset of the opening delimiter.
func (p *parser) sequence(end string, start int, math bool) ([]Node, error) {
	var nodes []Node
	var text strings.Builder
	flush := func() {
		if text.Len() > 0 {
			nodes = append(nodes, Chars{Text: text.String()})
			text.Reset()
		}
	}

	for p.pos < len(p.src) {
		rest := p.src[p.pos:]
		if end != "" && strings.HasPrefix(rest, end) {
			flush()
			p.pos += len(end)
			return nodes, nil
		}

		switch c := rest[0]; {
		case c == '\\':
			flush()
			n, err := p.control()
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, n)
			if cmd, ok := n.(Command); ok && verbatimArgs[cmd.Name] > 0 {
				args, err := p.verbatim(verbatimArgs[cmd.Name])
				if err != nil {
					return nil, err
				}
				nodes = append(nodes, args...)
			}

		case c == '{':
			flush()
			open := p.pos
			p.pos++
			inner, err := p.sequence("}", open, math)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, Group{Nodes: inner})

		case c == '}':
			return nil, p.errorf(p.pos, "unexpected closing brace")

		case c == '$':
			if math {
				return nil, p.errorf(p.pos, "unexpected math delimiter")
			}
			flush()
			delim := "$"
			if strings.HasPrefix(rest, "$$") {
				delim = "$$"
			}
			m, err := p.math(delim, delim)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, m)

		case c == '%':
			flush()
			nodes = append(nodes, p.comment())

		case math:
			text.WriteByte(c)
			p.pos++

		case c == '~':
			flush()
			nodes = append(nodes, Specials{Chars: "~"})
			p.pos++

		case strings.HasPrefix(rest, "---"), strings.HasPrefix(rest, "--"),
			strings.HasPrefix(rest, "``"), strings.HasPrefix(rest, "''"):
			flush()
			n := 2
			if strings.HasPrefix(rest, "---") {
				n = 3
			}
			nodes = append(nodes, Specials{Chars: rest[:n]})
			p.pos += n

		default:
			text.WriteByte(c)
			p.pos++
		}
	}

	if end != "" {
		if end == "}" {
			return nil, p.errorf(start, "unclosed group")
		}
		return nil, p.errorf(start, "unterminated math")
	}
	flush()
	return nodes, nil
}

// verbatimArgs lists macros whose leading arguments are read as raw text,
// with the number of such arguments.
var verbatimArgs = map[string]int{
	"url":  1,
	"href": 1,
}

// verbatim reads up to n braced arguments as raw text; p.pos is just past
// the macro name. Only braces are significant inside them.
func (p *parser) verbatim(n int) ([]Node, error) {
	var args []Node
	for i := 0; i < n; i++ {
		if p.pos >= len(p.src) || p.src[p.pos] != '{' {
			break
		}
		open := p.pos
		depth := 0
		end := -1
		for j := open; j < len(p.src); j++ {
			switch p.src[j] {
			case '{':
				depth++
			case '}':
				depth--
			}
			if depth == 0 {
				end = j
				break
			}
		}
		if end < 0 {
			return nil, p.errorf(open, "unclosed group")
		}

		g := Group{}
		if raw := p.src[open+1 : end]; raw != "" {
			g.Nodes = []Node{Chars{Text: raw}}
		}
		args = append(args, g)
		p.pos = end + 1
	}
	return args, nil
}

// control parses a control sequence; p.pos is at the backslash.
func (p *parser) control() (Node, error) {
	start := p.pos
	if start+1 >= len(p.src) {
		return nil, p.errorf(start, "dangling backslash")
	}

	if isLetter(p.src[start+1]) {
		end := start + 1
		for end < len(p.src) && isLetter(p.src[end]) {
			end++
		}
		p.pos = end
		return Command{Name: p.src[start+1 : end]}, nil
	}

	r, size := utf8.DecodeRuneInString(p.src[start+1:])
	switch r {
	case '(':
		return p.math(`\(`, `\)`)
	case '[':
		return p.math(`\[`, `\]`)
	}
	p.pos = start + 1 + size
	return Command{Name: string(r)}, nil
}

// math parses a math span; p.pos is at the opening delimiter.
func (p *parser) math(open, closer string) (Node, error) {
	start := p.pos
	p.pos += len(open)
	contentStart := p.pos

	nodes, err := p.sequence(closer, start, true)
	if err != nil {
		return nil, err
	}

	return Math{
		Open:  open,
		Close: closer,
		Raw:   p.src[contentStart : p.pos-len(closer)],
		Nodes: nodes,
	}, nil
}

// comment consumes a %-comment, its newline, and the leading blanks of the
// following line.
func (p *parser) comment() Node {
	p.pos++
	start := p.pos
	nl := strings.IndexByte(p.src[start:], '\n')
	if nl < 0 {
		p.pos = len(p.src)
		return Comment{Text: p.src[start:]}
	}

	text := p.src[start : start+nl]
	p.pos = start + nl + 1
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
	return Comment{Text: text}
}
