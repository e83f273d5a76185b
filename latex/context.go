package latex

import "strings"

// MacroSpec describes how a macro renders as text.
//
// The renderer consumes Args argument nodes following the macro, renders
// each to text, and either calls Func with them or substitutes them in
// order for the %s verbs of Repl ("%%" is a literal percent sign).
type MacroSpec struct {
	Name string
	Args int
	Repl string
	Func func(args []string) string
}

// Macro returns a spec substituting args into repl.
func Macro(name string, args int, repl string) MacroSpec {
	return MacroSpec{Name: name, Args: args, Repl: repl}
}

func (m MacroSpec) render(args []string) string {
	if m.Func != nil {
		return m.Func(args)
	}
	return expand(m.Repl, args)
}

// expand substitutes args for the %s verbs of repl.
func expand(repl string, args []string) string {
	if !strings.Contains(repl, "%") {
		return repl
	}
	var b strings.Builder
	next := 0
	for i := 0; i < len(repl); i++ {
		if repl[i] != '%' || i+1 >= len(repl) {
			b.WriteByte(repl[i])
			continue
		}
		switch repl[i+1] {
		case 's':
			if next < len(args) {
				b.WriteString(args[next])
			}
			next++
			i++
		case '%':
			b.WriteByte('%')
			i++
		default:
			b.WriteByte('%')
		}
	}
	return b.String()
}

type category struct {
	name   string
	macros map[string]MacroSpec
}

// Context is an ordered database of macro specifications, searched
// category by category. A Context is never modified after construction;
// With returns an extended copy.
type Context struct {
	categories []category
}

// NewContext returns an empty context.
func NewContext() *Context {
	return &Context{}
}

// With returns a copy of c extended by a category holding specs. When
// prepend is true the category is searched before every existing one.
func (c *Context) With(name string, prepend bool, specs ...MacroSpec) *Context {
	cat := category{name: name, macros: make(map[string]MacroSpec, len(specs))}
	for _, s := range specs {
		cat.macros[s.Name] = s
	}

	cats := make([]category, 0, len(c.categories)+1)
	if prepend {
		cats = append(cats, cat)
		cats = append(cats, c.categories...)
	} else {
		cats = append(cats, c.categories...)
		cats = append(cats, cat)
	}
	return &Context{categories: cats}
}

// Lookup finds the first spec named name.
func (c *Context) Lookup(name string) (MacroSpec, bool) {
	for _, cat := range c.categories {
		if s, ok := cat.macros[name]; ok {
			return s, true
		}
	}
	return MacroSpec{}, false
}

// Categories lists category names in search order.
func (c *Context) Categories() []string {
	names := make([]string, len(c.categories))
	for i, cat := range c.categories {
		names[i] = cat.name
	}
	return names
}

// DefaultContext returns the built-in macro database: accents, text
// symbols, escaped specials, font and formatting commands, and math
// symbols.
func DefaultContext() *Context {
	return NewContext().
		With("accents", false, accentSpecs()...).
		With("symbols", false, symbolSpecs(textSymbols)...).
		With("specials", false, specialSpecs()...).
		With("formatting", false, formattingSpecs()...).
		With("math", false, symbolSpecs(mathSymbols)...)
}

func accentSpecs() []MacroSpec {
	specs := make([]MacroSpec, 0, len(accents))
	for _, a := range accents {
		mark := a.mark
		specs = append(specs, MacroSpec{
			Name: a.macro,
			Args: 1,
			Func: func(args []string) string { return applyAccent(mark, args[0]) },
		})
	}
	return specs
}

func symbolSpecs(symbols []symbol) []MacroSpec {
	specs := make([]MacroSpec, 0, len(symbols))
	for _, s := range symbols {
		specs = append(specs, Macro(s.macro, 0, string(s.r)))
	}
	return specs
}

func specialSpecs() []MacroSpec {
	return []MacroSpec{
		Macro("&", 0, "&"),
		Macro("%", 0, "%%"),
		Macro("$", 0, "$"),
		Macro("#", 0, "#"),
		Macro("_", 0, "_"),
		Macro("{", 0, "{"),
		Macro("}", 0, "}"),
		Macro(" ", 0, " "),
		Macro(",", 0, " "),
		Macro("-", 0, ""),
		Macro("/", 0, ""),
		Macro("@", 0, ""),
		Macro("\\", 0, "\n"),
		Macro("textbackslash", 0, `\`),
		Macro("textasciitilde", 0, "~"),
		Macro("textasciicircum", 0, "^"),
		Macro("textendash", 0, "–"),
		Macro("textemdash", 0, "—"),
		Macro("textquoteleft", 0, "‘"),
		Macro("textquoteright", 0, "’"),
		Macro("textquotedblleft", 0, "“"),
		Macro("textquotedblright", 0, "”"),
		Macro("textless", 0, "<"),
		Macro("textgreater", 0, ">"),
		Macro("dots", 0, "…"),
		Macro("TeX", 0, "TeX"),
		Macro("LaTeX", 0, "LaTeX"),
		Macro("BibTeX", 0, "BibTeX"),
	}
}

func formattingSpecs() []MacroSpec {
	specs := []MacroSpec{
		Macro("url", 1, "<%s>"),
		Macro("footnote", 1, " (%s)"),
		{Name: "href", Args: 2, Func: func(args []string) string { return args[1] }},
	}
	for _, name := range []string{
		"textbf", "textit", "textsl", "textsc", "textrm", "textsf", "texttt",
		"textup", "textmd", "textnormal", "emph", "underline", "mbox", "hbox",
		"text", "ensuremath", "mathrm", "mathbf", "mathit", "mathsf", "mathtt",
		"mathcal", "operatorname",
	} {
		specs = append(specs, Macro(name, 1, "%s"))
	}
	return specs
}
