package fqdn

// Rules is an immutable bundle of validation toggles applied while parsing
// and encoding names. The zero value disables every restriction.
//
// The package-level functions (Parse, ParseLabel, FromWire) use a bundle
// fixed at build time: Default normally, Strict when the "fqdnstrict" build
// tag is set. Code that needs a different policy at runtime carries a Rules
// value explicitly and calls its methods instead; values produced under
// different bundles are ordinary FQDNs and compare normally, since the
// canonical encoding does not depend on the rule set.
type Rules struct {
	// LabelLength63 caps each label at 63 octets (RFC 1035 Section 2.3.4).
	// When unset, labels are bounded only by the length octet (255).
	LabelLength63 bool

	// NameLength255 caps the encoded name, terminal zero octet included,
	// at 255 octets (RFC 1035 Section 3.1 wire-format accounting).
	NameLength255 bool

	// StrictCharset restricts labels to letters, digits and hyphen.
	// When unset, underscore is also accepted; many deployed names
	// (service discovery, Kubernetes) depend on it.
	StrictCharset bool

	// TrailingDot makes the canonical text rendering end with a dot.
	// Parsing tolerates a missing trailing dot either way: most user
	// input omits it, so it is treated as implicit rather than rejected.
	TrailingDot bool

	// NoEdgeHyphen forbids labels that start or end with a hyphen
	// (RFC 952 host name rule).
	NoEdgeHyphen bool
}

// Default is the lenient bundle: only the edge-hyphen rule is active, so
// underscores and long labels found in real-world non-conformant names
// still parse.
var Default = Rules{NoEdgeHyphen: true}

// Strict enables every restriction the governing RFCs specify.
var Strict = Rules{
	LabelLength63: true,
	NameLength255: true,
	StrictCharset: true,
	TrailingDot:   true,
	NoEdgeHyphen:  true,
}

// Implementation ceilings applied when the corresponding rule is inactive.
// Labels can never exceed the length octet; names are bounded to keep a
// hostile input from forcing unbounded allocation.
const (
	maxLabelOctets = 255
	maxNameOctets  = 1 << 16
)

func (r Rules) labelCap() int {
	if r.LabelLength63 {
		return 63
	}
	return maxLabelOctets
}

func (r Rules) nameCap() int {
	if r.NameLength255 {
		return 255
	}
	return maxNameOctets
}
