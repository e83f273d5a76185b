package latex

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextRenderer_Decode(t *testing.T) {
	r := NewTextRenderer()

	tests := []struct {
		input    string
		expected string
	}{
		{"plain text", "plain text"},
		{`Caf{\'e}`, "Café"},
		{`Caf\'e`, "Café"},
		{`M\"{u}ller`, "Müller"},
		{`\c{c}a`, "ça"},
		{`\c c`, "ç"},
		{`\'\i`, "í"},
		{`\'{\"u}`, "ǘ"},
		{`Stra{\ss}e`, "Straße"},
		{`\textbf{Bold} and \emph{em}`, "Bold and em"},
		{`100\% \& more`, "100% & more"},
		{`\textbackslash{}`, `\`},
		{`\{x\}`, "{x}"},
		{"a--b---c", "a–b—c"},
		{"``q''", "“q”"},
		{"a~b", "a\u00a0b"},
		{`\unknown{x}`, "x"},
		{"a % comment\n   b", "a b"},
		{`\href{http://x.org}{site}`, "site"},
		{`\url{http://x.org}`, "<http://x.org>"},
		{`\url{https://x.org/a%20b~c}`, "<https://x.org/a%20b~c>"},
		{`\href{http://x.org/%7e}{50\% off}`, "50% off"},
		{`{The {B}ayesian} way`, "The Bayesian way"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := r.Decode(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestTextRenderer_KeepBracedGroups(t *testing.T) {
	r := NewTextRenderer(KeepBracedGroups(true))

	got, err := r.Decode(`{Bayesian} \textbf{Methods}`)
	require.NoError(t, err)
	assert.Equal(t, "{Bayesian} Methods", got)
}

func TestTextRenderer_MathModes(t *testing.T) {
	input := `Energy $\alpha + 1$ here`

	tests := []struct {
		mode     MathMode
		expected string
	}{
		{MathVerbatim, `Energy $\alpha + 1$ here`},
		{MathText, "Energy α + 1 here"},
		{MathWithDelimiters, "Energy $α + 1$ here"},
		{MathRemove, "Energy  here"},
	}

	for _, tt := range tests {
		r := NewTextRenderer(WithMathMode(tt.mode))
		got, err := r.Decode(input)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, got, "mode %d", tt.mode)
	}
}

func TestTextRenderer_ContextOverride(t *testing.T) {
	ctx := DefaultContext().With("custom", true, Macro("url", 1, "%s"))
	r := NewTextRenderer(WithContext(ctx))

	got, err := r.Decode(`see \url{http://x.org}`)
	require.NoError(t, err)
	assert.Equal(t, "see http://x.org", got)

	// The default database is untouched by With.
	got, err = NewTextRenderer().Decode(`\url{http://x.org}`)
	require.NoError(t, err)
	assert.Equal(t, "<http://x.org>", got)
}

func TestTextRenderer_Malformed(t *testing.T) {
	r := NewTextRenderer()

	_, err := r.Decode(`{\'e`)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformed))
}

func TestContext_With(t *testing.T) {
	base := NewContext().With("a", false, Macro("x", 0, "1"))
	appended := base.With("b", false, Macro("x", 0, "2"))
	prepended := base.With("c", true, Macro("x", 0, "3"))

	spec, ok := appended.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, "1", spec.Repl)

	spec, ok = prepended.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, "3", spec.Repl)

	assert.Equal(t, []string{"a"}, base.Categories())
	assert.Equal(t, []string{"a", "b"}, appended.Categories())
	assert.Equal(t, []string{"c", "a"}, prepended.Categories())

	_, ok = base.Lookup("missing")
	assert.False(t, ok)
}

func TestExpand(t *testing.T) {
	tests := []struct {
		repl     string
		args     []string
		expected string
	}{
		{"plain", nil, "plain"},
		{"<%s>", []string{"a"}, "<a>"},
		{"%s and %s", []string{"a", "b"}, "a and b"},
		{"%s%%", []string{"5"}, "5%"},
		{"%s %s", []string{"a"}, "a "},
		{"100%", nil, "100%"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, expand(tt.repl, tt.args), "expand(%q)", tt.repl)
	}
}

func TestRoundTrip_PlainASCII(t *testing.T) {
	enc := NewEncoder()
	dec := NewTextRenderer()

	inputs := []string{
		"Hello World",
		"Proceedings of the 3rd Conference (Vol. 2): pages 1-10!",
		"A study, in parts; with questions?",
	}

	for _, s := range inputs {
		decoded, err := dec.Decode(enc.Encode(s))
		require.NoError(t, err)
		assert.Equal(t, s, decoded)

		decoded, err = dec.Decode(s)
		require.NoError(t, err)
		assert.Equal(t, s, enc.Encode(decoded))
	}
}

func TestRoundTrip_Unicode(t *testing.T) {
	enc := NewEncoder()
	dec := NewTextRenderer()

	s := "Café Müller, Straße & Ørsted: 50% ǘ"
	decoded, err := dec.Decode(enc.Encode(s))
	require.NoError(t, err)
	assert.Equal(t, s, decoded)
}
