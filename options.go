package folio

// Diagnostic describes a non-fatal condition met while walking a block.
type Diagnostic struct {
	Middleware string
	Block      string // entry or @string key
	Field      string // field key; empty for @string values
	ValueType  string // variant or dynamic type of a skipped value
	Err        error  // set when malformed markup was kept unchanged
}

// DiagnosticFunc receives diagnostics synchronously. It may be called
// concurrently when blocks are processed in parallel.
type DiagnosticFunc func(Diagnostic)

// Option configures a middleware at construction.
type Option func(*options)

// options collects every option; each constructor validates which of them
// apply to it.
type options struct {
	set []string

	keepMath    *bool
	encloseURLs *bool
	encoder     Encoder

	keepBraced   *bool
	keepMathMode *bool
	decoder      Decoder

	malformed   MalformedPolicy
	diagnostics DiagnosticFunc
}

func (o *options) mark(name string) {
	o.set = append(o.set, name)
}

func (o *options) has(name string) bool {
	for _, s := range o.set {
		if s == name {
			return true
		}
	}
	return false
}

func collect(opts []Option) *options {
	o := &options{malformed: MalformedFail}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Option names used in configuration errors.
const (
	optKeepMath         = "KeepMath"
	optEncloseURLs      = "EncloseURLs"
	optWithEncoder      = "WithEncoder"
	optKeepBracedGroups = "KeepBracedGroups"
	optKeepMathMode     = "KeepMathMode"
	optWithDecoder      = "WithDecoder"
	optOnMalformed      = "OnMalformed"
	optWithDiagnostics  = "WithDiagnostics"
)

// allowOnly rejects every option that was set but is not listed.
func (o *options) allowOnly(middleware string, allowed ...string) error {
	for _, s := range o.set {
		ok := false
		for _, a := range allowed {
			if s == a {
				ok = true
				break
			}
		}
		if !ok {
			return newConfigError(ErrUnsupportedOption, middleware, s)
		}
	}
	return nil
}

// exclusive rejects custom together with any of the simple options.
func (o *options) exclusive(middleware, custom string, simple ...string) error {
	if !o.has(custom) {
		return nil
	}
	for _, s := range simple {
		if o.has(s) {
			return newConfigError(ErrConflictingOptions, middleware, custom+" with "+s)
		}
	}
	return nil
}

// KeepMath leaves $...$ spans untouched when encoding. Default true.
func KeepMath(keep bool) Option {
	return func(o *options) {
		o.keepMath = &keep
		o.mark(optKeepMath)
	}
}

// EncloseURLs wraps http(s):// and www. URLs in \url{} when encoding.
// Default true.
func EncloseURLs(enclose bool) Option {
	return func(o *options) {
		o.encloseURLs = &enclose
		o.mark(optEncloseURLs)
	}
}

// WithEncoder replaces the default encoding rule table entirely.
// It cannot be combined with KeepMath or EncloseURLs.
func WithEncoder(e Encoder) Option {
	return func(o *options) {
		o.encoder = e
		o.mark(optWithEncoder)
	}
}

// KeepBracedGroups keeps literal {...} groups when decoding. Default false.
func KeepBracedGroups(keep bool) Option {
	return func(o *options) {
		o.keepBraced = &keep
		o.mark(optKeepBracedGroups)
	}
}

// KeepMathMode keeps math spans verbatim when decoding; false converts
// them to approximate text. Default true.
func KeepMathMode(keep bool) Option {
	return func(o *options) {
		o.keepMathMode = &keep
		o.mark(optKeepMathMode)
	}
}

// WithDecoder replaces the default decoder entirely.
// It cannot be combined with KeepBracedGroups or KeepMathMode.
func WithDecoder(d Decoder) Option {
	return func(o *options) {
		o.decoder = d
		o.mark(optWithDecoder)
	}
}

// OnMalformed sets the policy for strings that fail with
// ErrMalformedMarkup. Default MalformedFail.
func OnMalformed(p MalformedPolicy) Option {
	return func(o *options) {
		o.malformed = p
		o.mark(optOnMalformed)
	}
}

// WithDiagnostics registers a sink for non-fatal diagnostics.
func WithDiagnostics(fn DiagnosticFunc) Option {
	return func(o *options) {
		o.diagnostics = fn
		o.mark(optWithDiagnostics)
	}
}
