package latex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	enc := NewEncoder()

	tests := []struct {
		input    string
		expected string
	}{
		{"plain text", "plain text"},
		{"100% & more", `100\% \& more`},
		{"a_b#c", `a\_b\#c`},
		{"{x}", `\{x\}`},
		{"$5", `\$5`},
		{"~^", `\textasciitilde{}\textasciicircum{}`},
		{`a\b`, `a\textbackslash{}b`},
		{"Café", `Caf\'e`},
		{"Müller", `M\"uller`},
		{"Ça là", "\\c{C}a l\\`a"},
		{"señor", `se\~nor`},
		{"ǘ", `\'{\"u}`},
		{"Straße", `Stra{\ss}e`},
		{"Øresund", `{\O}resund`},
		{"Ångström", `{\AA}ngstr\"om`},
		{"1–2 — end", "1--2 --- end"},
		{"“quoted”", "``quoted''"},
		{"a\u00a0b", "a~b"},
		{"日本", "日本"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, enc.Encode(tt.input))
		})
	}
}

func TestEncoder_RuleOrder(t *testing.T) {
	enc := NewEncoder(
		DictRule{'&': "and"},
		Defaults,
	)
	assert.Equal(t, `Smith and Wesson \#1`, enc.Encode("Smith & Wesson #1"))
}

func TestEncoder_UncoveredRunesPassThrough(t *testing.T) {
	enc := NewEncoder(DictRule{'x': "y"})
	assert.Equal(t, "y & é", enc.Encode("x & é"))
}

func TestPatternRule(t *testing.T) {
	enc := NewEncoder(
		PatternRule{MustPattern(`(\$.*?[^\\]\$)`, "${1}")},
		PatternRule{MustPattern(`(https?://\S*\.\S*)`, `\url{${1}}`)},
		Defaults,
	)

	t.Run("math kept verbatim", func(t *testing.T) {
		out := enc.Encode("Energy: $E=mc^2$ is famous")
		assert.Equal(t, "Energy: $E=mc^2$ is famous", out)
	})

	t.Run("text between math spans escaped", func(t *testing.T) {
		out := enc.Encode("$a$ & $b$")
		assert.Equal(t, `$a$ \& $b$`, out)
	})

	t.Run("url wrapped", func(t *testing.T) {
		out := enc.Encode("see https://example.com/x_y for details")
		assert.Equal(t, `see \url{https://example.com/x_y} for details`, out)
	})

	t.Run("lone dollar escaped", func(t *testing.T) {
		assert.Equal(t, `costs \$5`, enc.Encode("costs $5"))
	})
}

func TestPattern_NotAfter(t *testing.T) {
	p := MustPattern(`(\$.*?[^\\]\$)`, "${1}")
	p.NotAfter = `\`
	enc := NewEncoder(PatternRule{p}, Defaults)

	assert.Equal(t, `\textbackslash{}\$x\$`, enc.Encode(`\$x$`))
	assert.Equal(t, "$x$", enc.Encode("$x$"))
}

func TestNewPattern_Invalid(t *testing.T) {
	_, err := NewPattern(`(unclosed`, "")
	require.Error(t, err)

	assert.Panics(t, func() { MustPattern(`(unclosed`, "") })
}

func TestPattern_EmptyMatchIgnored(t *testing.T) {
	enc := NewEncoder(PatternRule{MustPattern(`x*`, "!")}, Defaults)
	assert.Equal(t, "!a!", enc.Encode("xaxx"))
}

func TestEncode_NotIdempotent(t *testing.T) {
	enc := NewEncoder()

	once := enc.Encode("50% off")
	twice := enc.Encode(once)

	assert.Equal(t, `50\% off`, once)
	assert.Equal(t, `50\textbackslash{}\% off`, twice)
	assert.NotEqual(t, once, twice)
}
