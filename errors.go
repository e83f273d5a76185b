package folio

import (
	"errors"
	"fmt"

	"github.com/zoobzio/folio/latex"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrConflictingOptions indicates that simple option flags were combined
	// with a fully custom encoder or decoder.
	ErrConflictingOptions = errors.New("conflicting options")

	// ErrUnsupportedOption indicates an option that does not apply to the
	// middleware being built.
	ErrUnsupportedOption = errors.New("unsupported option")

	// ErrInvalidOwnership indicates an unknown Ownership value.
	ErrInvalidOwnership = errors.New("invalid ownership")

	// ErrInvalidPolicy indicates an unknown MalformedPolicy value.
	ErrInvalidPolicy = errors.New("invalid malformed policy")

	// ErrMissingTransformer indicates a nil Transformer, Encoder or Decoder.
	ErrMissingTransformer = errors.New("missing transformer")

	// ErrMalformedMarkup indicates a string that could not be interpreted
	// as markup.
	ErrMalformedMarkup = latex.ErrMalformed

	// ErrTransform indicates that transforming a value failed.
	ErrTransform = errors.New("transform failed")

	// ErrUnknownMiddleware indicates a registry lookup for an unregistered key.
	ErrUnknownMiddleware = errors.New("unknown middleware")

	// ErrBind indicates a struct could not be bound to or from an entry.
	ErrBind = errors.New("bind failed")

	// ErrUnmarshal indicates the codec failed to unmarshal input data.
	ErrUnmarshal = errors.New("unmarshal failed")

	// ErrMarshal indicates the codec failed to marshal output data.
	ErrMarshal = errors.New("marshal failed")
)

// ConfigError represents a middleware configuration error.
// It wraps a sentinel error with the middleware and option involved.
type ConfigError struct {
	Err        error  // Underlying sentinel error (ErrConflictingOptions, etc.)
	Middleware string // Metadata key of the middleware being built
	Option     string // Option that triggered the error
}

func (e *ConfigError) Error() string {
	if e.Middleware != "" && e.Option != "" {
		return fmt.Sprintf("%s: %s (middleware %s)", e.Err.Error(), e.Option, e.Middleware)
	}
	if e.Option != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Option)
	}
	if e.Middleware != "" {
		return fmt.Sprintf("%s (middleware %s)", e.Err.Error(), e.Middleware)
	}
	return e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// TransformError represents a failure while transforming one value.
// It matches ErrTransform and, through Cause, the underlying error.
type TransformError struct {
	Err        error  // Underlying sentinel error (ErrTransform)
	Middleware string // Metadata key of the middleware
	Block      string // Key of the entry or @string
	Field      string // Field key; empty for @string values
	Cause      error  // Original error from the transformer
}

func (e *TransformError) Error() string {
	loc := e.Block
	if e.Field != "" {
		loc = e.Block + "." + e.Field
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s %s: %v", e.Middleware, e.Err.Error(), loc, e.Cause)
	}
	return fmt.Sprintf("%s: %s %s", e.Middleware, e.Err.Error(), loc)
}

func (e *TransformError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// CodecError represents a marshal/unmarshal error.
type CodecError struct {
	Err   error // Underlying sentinel error (ErrMarshal, ErrUnmarshal)
	Cause error // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// newConfigError creates a ConfigError for a rejected option.
func newConfigError(sentinel error, middleware, option string) error {
	return &ConfigError{
		Err:        sentinel,
		Middleware: middleware,
		Option:     option,
	}
}

// newTransformError creates a TransformError for a failed value.
func newTransformError(middleware, block, field string, cause error) error {
	return &TransformError{
		Err:        ErrTransform,
		Middleware: middleware,
		Block:      block,
		Field:      field,
		Cause:      cause,
	}
}

// newCodecError creates a CodecError for marshal/unmarshal failures.
func newCodecError(sentinel error, cause error) error {
	return &CodecError{
		Err:   sentinel,
		Cause: cause,
	}
}
