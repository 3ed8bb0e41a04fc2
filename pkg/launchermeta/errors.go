package launchermeta

import "errors"

// Decode errors wrap one of these sentinels together with the path of the
// offending field, e.g. `libraries[3].downloads.artifact: missing field "sha1"`.
// Match with errors.Is.
var (
	// ErrMalformedInput means the raw bytes are not well-formed JSON.
	ErrMalformedInput = errors.New("malformed input")

	// ErrTypeMismatch means a field's shape matches none of its permitted
	// encodings (e.g. an argument that is neither a string nor an object).
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrMissingField means a required key is absent from an object.
	ErrMissingField = errors.New("missing field")

	// ErrDuplicateField means a key appeared twice in one object.
	ErrDuplicateField = errors.New("duplicate field")

	// ErrUnknownField means an object carries a key the schema does not know.
	// Unknown keys fail the decode instead of being skipped, so a changed
	// manifest format cannot be silently mis-read.
	ErrUnknownField = errors.New("unknown field")

	// ErrInvalidEnumValue means a closed enum field (version type, rule
	// action) holds a value outside the known set.
	ErrInvalidEnumValue = errors.New("invalid enum value")
)
