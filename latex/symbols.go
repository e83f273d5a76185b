package latex

// symbol pairs a Unicode rune with the LaTeX control word that spells it.
type symbol struct {
	r     rune
	macro string
}

// textSymbols are text-mode control words with a single-rune rendering.
// Encoding and decoding share this table.
var textSymbols = []symbol{
	{'ß', "ss"},
	{'æ', "ae"},
	{'Æ', "AE"},
	{'œ', "oe"},
	{'Œ', "OE"},
	{'ø', "o"},
	{'Ø', "O"},
	{'å', "aa"},
	{'Å', "AA"},
	{'ł', "l"},
	{'Ł', "L"},
	{'ı', "i"},
	{'ȷ', "j"},
	{'đ', "dj"},
	{'Đ', "DJ"},
	{'ð', "dh"},
	{'Ð', "DH"},
	{'þ', "th"},
	{'Þ', "TH"},
	{'§', "S"},
	{'¶', "P"},
	{'©', "textcopyright"},
	{'®', "textregistered"},
	{'™', "texttrademark"},
	{'€', "texteuro"},
	{'£', "pounds"},
	{'°', "textdegree"},
	{'…', "ldots"},
	{'†', "dag"},
	{'‡', "ddag"},
	{'•', "textbullet"},
	{'¡', "textexclamdown"},
	{'¿', "textquestiondown"},
	{'«', "guillemotleft"},
	{'»', "guillemotright"},
}

// mathSymbols render only when math content is converted to text.
var mathSymbols = []symbol{
	{'α', "alpha"},
	{'β', "beta"},
	{'γ', "gamma"},
	{'δ', "delta"},
	{'ε', "epsilon"},
	{'ζ', "zeta"},
	{'η', "eta"},
	{'θ', "theta"},
	{'ι', "iota"},
	{'κ', "kappa"},
	{'λ', "lambda"},
	{'μ', "mu"},
	{'ν', "nu"},
	{'ξ', "xi"},
	{'π', "pi"},
	{'ρ', "rho"},
	{'σ', "sigma"},
	{'τ', "tau"},
	{'υ', "upsilon"},
	{'φ', "phi"},
	{'χ', "chi"},
	{'ψ', "psi"},
	{'ω', "omega"},
	{'Γ', "Gamma"},
	{'Δ', "Delta"},
	{'Θ', "Theta"},
	{'Λ', "Lambda"},
	{'Ξ', "Xi"},
	{'Π', "Pi"},
	{'Σ', "Sigma"},
	{'Φ', "Phi"},
	{'Ψ', "Psi"},
	{'Ω', "Omega"},
	{'∞', "infty"},
	{'±', "pm"},
	{'×', "times"},
	{'·', "cdot"},
	{'≤', "leq"},
	{'≥', "geq"},
	{'≠', "neq"},
	{'≈', "approx"},
	{'→', "rightarrow"},
	{'→', "to"},
	{'←', "leftarrow"},
	{'∑', "sum"},
	{'∫', "int"},
	{'∂', "partial"},
	{'∇', "nabla"},
	{'∈', "in"},
	{'∀', "forall"},
	{'∃', "exists"},
}

// escapes maps characters that are significant to TeX onto their escaped
// spelling.
var escapes = map[rune]string{
	'#':  `\#`,
	'$':  `\$`,
	'%':  `\%`,
	'&':  `\&`,
	'_':  `\_`,
	'{':  `\{`,
	'}':  `\}`,
	'~':  `\textasciitilde{}`,
	'^':  `\textasciicircum{}`,
	'\\': `\textbackslash{}`,
}

// punctuation maps typographic characters onto their TeX ligature input.
var punctuation = map[rune]string{
	' ': "~",
	'–':      "--",
	'—':      "---",
	'‘':      "`",
	'’':      "'",
	'“':      "``",
	'”':      "''",
}

// encodeSymbols is textSymbols indexed by rune.
var encodeSymbols = func() map[rune]string {
	m := make(map[rune]string, len(textSymbols))
	for _, s := range textSymbols {
		m[s.r] = s.macro
	}
	return m
}()
