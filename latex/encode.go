package latex

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Rule converts a run of input starting at a given position.
// Rules are sealed; build them from PatternRule, DictRule, or Defaults.
type Rule interface {
	apply(s string, pos int) (out string, n int, ok bool)
}

// Pattern is a regular expression and its replacement template.
// The expression must match starting at the scan position; Replacement
// is expanded with regexp.Regexp.ExpandString, so ${1} names a group.
type Pattern struct {
	Regexp      *regexp.Regexp
	Replacement string

	// NotAfter lists bytes that must not immediately precede a match.
	NotAfter string
}

// NewPattern compiles expr anchored at the scan position.
func NewPattern(expr, replacement string) (Pattern, error) {
	re, err := regexp.Compile(`^(?:` + expr + `)`)
	if err != nil {
		return Pattern{}, fmt.Errorf("compile pattern %q: %w", expr, err)
	}
	return Pattern{Regexp: re, Replacement: replacement}, nil
}

// MustPattern is like NewPattern but panics on an invalid expression.
func MustPattern(expr, replacement string) Pattern {
	p, err := NewPattern(expr, replacement)
	if err != nil {
		panic(err)
	}
	return p
}

// PatternRule tries its patterns in order.
type PatternRule []Pattern

func (r PatternRule) apply(s string, pos int) (string, int, bool) {
	for _, p := range r {
		if p.NotAfter != "" && pos > 0 && strings.IndexByte(p.NotAfter, s[pos-1]) >= 0 {
			continue
		}
		rest := s[pos:]
		loc := p.Regexp.FindStringSubmatchIndex(rest)
		if loc == nil || loc[0] != 0 || loc[1] == 0 {
			continue
		}
		out := p.Regexp.ExpandString(nil, p.Replacement, rest, loc)
		return string(out), loc[1], true
	}
	return "", 0, false
}

// DictRule replaces single runes.
type DictRule map[rune]string

func (r DictRule) apply(s string, pos int) (string, int, bool) {
	c, size := utf8.DecodeRuneInString(s[pos:])
	out, ok := r[c]
	if !ok {
		return "", 0, false
	}
	return out, size, true
}

type defaultsRule struct{}

// Defaults is the general-purpose rule set: TeX special characters,
// typographic punctuation, named symbols, and accented letters.
var Defaults Rule = defaultsRule{}

func (defaultsRule) apply(s string, pos int) (string, int, bool) {
	c, size := utf8.DecodeRuneInString(s[pos:])
	if out, ok := escapes[c]; ok {
		return out, size, true
	}
	if c < utf8.RuneSelf {
		return "", 0, false
	}
	if out, ok := punctuation[c]; ok {
		return out, size, true
	}
	if macro, ok := encodeSymbols[c]; ok {
		return `{\` + macro + `}`, size, true
	}
	if out, ok := encodeAccented(c); ok {
		return out, size, true
	}
	return "", 0, false
}

// Encoder converts Unicode text into LaTeX markup.
// An Encoder is immutable and safe for concurrent use.
type Encoder struct {
	rules []Rule
}

// NewEncoder returns an encoder applying rules in order.
// With no rules it applies Defaults.
func NewEncoder(rules ...Rule) *Encoder {
	if len(rules) == 0 {
		rules = []Rule{Defaults}
	}
	return &Encoder{rules: append([]Rule(nil), rules...)}
}

// Encode returns s with every covered run replaced by its markup.
func (e *Encoder) Encode(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	pos := 0
scan:
	for pos < len(s) {
		for _, r := range e.rules {
			if out, n, ok := r.apply(s, pos); ok {
				b.WriteString(out)
				pos += n
				continue scan
			}
		}
		_, size := utf8.DecodeRuneInString(s[pos:])
		b.WriteString(s[pos : pos+size])
		pos += size
	}

	return b.String()
}
