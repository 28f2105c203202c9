package fqdn

import "errors"

// Validation errors returned by Parse, ParseLabel and FromWire.
//
// All errors are sentinel values so callers can branch with errors.Is.
// Parsing wraps them with positional context using fmt.Errorf("...: %w", ...)
// to preserve the chain while saying which label was at fault.
var (
	// ErrEmptyLabel reports a zero-length label inside a name, such as the
	// one produced by "github..com." or a bare separator run.
	ErrEmptyLabel = errors.New("fqdn: empty label")

	// ErrLabelTooLong reports a label exceeding the active length cap
	// (63 octets under the strict rule set, RFC 1035 Section 2.3.4).
	ErrLabelTooLong = errors.New("fqdn: label too long")

	// ErrNameTooLong reports a name whose encoded form exceeds the active
	// total length cap (255 octets including the terminal zero octet).
	ErrNameTooLong = errors.New("fqdn: name too long")

	// ErrInvalidCharacter reports a byte outside the permitted label
	// charset for the active rule set.
	ErrInvalidCharacter = errors.New("fqdn: invalid character in label")

	// ErrHyphenPlacement reports a label starting or ending with a hyphen
	// while the edge-hyphen rule is active.
	ErrHyphenPlacement = errors.New("fqdn: label starts or ends with hyphen")

	// ErrCodecFailure reports that an internationalized label could not be
	// transcoded to its ASCII-compatible form.
	ErrCodecFailure = errors.New("fqdn: punycode transcoding failed")

	// ErrMalformedSeparators reports consecutive or misplaced dots outside
	// the single trailing-root case, e.g. ".github.com." or "github.com..".
	ErrMalformedSeparators = errors.New("fqdn: malformed label separators")

	// ErrBadWireFormat reports a byte sequence that is not a well-formed
	// length-prefixed name encoding (a length octet overrunning the buffer,
	// or trailing garbage after the terminal zero octet).
	ErrBadWireFormat = errors.New("fqdn: malformed wire-format name")
)
