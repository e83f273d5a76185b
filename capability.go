package folio

// Ownership states whether a middleware may modify the blocks it is given.
type Ownership string

const (
	// InPlace mutates the argument block and returns it.
	InPlace Ownership = "in_place"

	// Copy transforms a deep copy and leaves the argument untouched.
	Copy Ownership = "copy"
)

// MalformedPolicy decides what happens when a string cannot be interpreted
// as markup.
type MalformedPolicy string

const (
	// MalformedFail propagates the error, aborting the block.
	MalformedFail MalformedPolicy = "fail"

	// MalformedKeep leaves the string unchanged, emits a diagnostic, and
	// continues with the next string.
	MalformedKeep MalformedPolicy = "keep"
)

// Metadata keys of the built-in middlewares.
const (
	KeyLatexEncoding = "latex_encoding"
	KeyLatexDecoding = "latex_decoding"
)

// validOwnerships contains all valid ownership modes.
var validOwnerships = map[Ownership]bool{
	InPlace: true,
	Copy:    true,
}

// validMalformedPolicies contains all valid malformed-markup policies.
var validMalformedPolicies = map[MalformedPolicy]bool{
	MalformedFail: true,
	MalformedKeep: true,
}

// IsValidOwnership returns true if o is a known ownership mode.
func IsValidOwnership(o Ownership) bool {
	return validOwnerships[o]
}

// IsValidMalformedPolicy returns true if p is a known policy.
func IsValidMalformedPolicy(p MalformedPolicy) bool {
	return validMalformedPolicies[p]
}
