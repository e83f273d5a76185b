package latex

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// accent pairs an accent macro with the combining mark it stands for.
type accent struct {
	macro string
	mark  rune
}

// accents lists the accent macros understood in both directions. Macros with
// a single symbol name take a bare one-letter argument when encoding
// (\'e); letter-named macros always brace their argument (\c{c}).
var accents = []accent{
	{"`", '\u0300'},
	{"'", '\u0301'},
	{"^", '\u0302'},
	{"~", '\u0303'},
	{"=", '\u0304'},
	{"u", '\u0306'},
	{".", '\u0307'},
	{`"`, '\u0308'},
	{"r", '\u030a'},
	{"H", '\u030b'},
	{"v", '\u030c'},
	{"d", '\u0323'},
	{"c", '\u0327'},
	{"k", '\u0328'},
	{"b", '\u0331'},
}

var accentByMark = make(map[rune]string, len(accents))

func init() {
	for _, a := range accents {
		accentByMark[a.mark] = a.macro
	}
}

// encodeAccented spells r with accent macros when it decomposes into an
// ASCII letter followed only by known combining marks.
func encodeAccented(r rune) (string, bool) {
	d := norm.NFD.String(string(r))
	base, size := utf8.DecodeRuneInString(d)
	if size == len(d) || base >= utf8.RuneSelf || !isLetter(byte(base)) {
		return "", false
	}

	out := string(base)

	for _, mark := range d[size:] {
		macro, ok := accentByMark[mark]
		if !ok {
			return "", false
		}
		out = wrapAccent(macro, out)
	}
	return out, true
}

// wrapAccent applies one accent macro to an already encoded argument.
func wrapAccent(macro, arg string) string {
	if isLetter(macro[0]) || len(arg) != 1 {
		return `\` + macro + "{" + arg + "}"
	}
	return `\` + macro + arg
}

// applyAccent combines the first rune of arg with mark and recomposes it.
func applyAccent(mark rune, arg string) string {
	if arg == "" {
		return string(mark)
	}
	first, size := utf8.DecodeRuneInString(arg)
	switch first {
	case 'ı':
		first = 'i'
	case 'ȷ':
		first = 'j'
	}
	var b strings.Builder
	b.WriteRune(first)
	b.WriteRune(mark)
	b.WriteString(arg[size:])
	return norm.NFC.String(b.String())
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
