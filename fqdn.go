// Package fqdn provides an immutable value type for fully qualified domain
// names, with parsing, validation, normalization, comparison and hierarchy
// queries.
//
// Standards Compliance:
//
//   - RFC 1035: Domain Names - Implementation and Specification (label and
//     name length limits, wire-format name encoding)
//   - RFC 952 / RFC 1123: host name syntax (charset, hyphen placement)
//   - RFC 4343: case-insensitivity of domain name comparisons
//   - RFC 3490: internationalized labels via their ASCII-compatible encoding
//
// Canonical Form:
//
// An FQDN is held as its RFC 1035 wire-format encoding, lowercased over the
// ASCII range: each label prefixed by a length octet, the sequence closed by
// a zero octet. "GitHub.COM." and "github.com" collapse to the same value,
// "\x06github\x03com\x00". Because the buffer is an ordinary Go string, the
// type is comparable with ==, usable as a map key, and hashes on the
// canonical bytes only.
//
// Rule Sets:
//
// Validation strictness is a build-time choice (see Rules): the package
// default is lenient, and the "fqdnstrict" build tag switches every
// package-level function to the full RFC rule bundle. A Rules value can
// also be carried explicitly for per-call policy.
package fqdn

import (
	"fmt"
	"strings"
)

// FQDN is a fully qualified domain name in canonical form.
//
// The zero value is the root domain. FQDN values are immutable and safely
// shareable across goroutines; equal names are == regardless of the casing
// or trailing dot of the text they were parsed from.
type FQDN struct {
	// wire is the lowercase length-prefixed encoding with its terminal
	// zero octet, or "" for the root domain.
	wire string
}

// Root is the top of the domain hierarchy, rendered as ".".
var Root = FQDN{}

// Parse converts dotted text into an FQDN under the build-time rule set.
func Parse(s string) (FQDN, error) {
	return activeRules.Parse(s)
}

// MustParse is Parse for statically known names; it panics on invalid input.
func MustParse(s string) FQDN {
	f, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return f
}

// Parse converts dotted text into an FQDN under this rule set.
//
// A single trailing dot marks the root and is always accepted. A missing
// trailing dot is treated as implicit even when the TrailingDot rule is
// active: rejecting it would refuse most user input for no safety gain.
// Any other empty segment is a separator error.
func (r Rules) Parse(s string) (FQDN, error) {
	if s == "" || s == "." {
		return Root, nil
	}
	s = strings.TrimSuffix(s, ".")

	wire := make([]byte, 0, len(s)+2)
	rest := s
	for {
		label, tail, more := strings.Cut(rest, ".")
		if label == "" {
			return Root, fmt.Errorf("%w: empty label in %q", ErrMalformedSeparators, s)
		}
		if !isASCII(label) {
			ascii, err := encodeLabel(label)
			if err != nil {
				return Root, err
			}
			label = ascii
		}
		if err := r.checkLabel(label); err != nil {
			return Root, err
		}
		wire = appendLabel(wire, label)
		if !more {
			break
		}
		rest = tail
	}
	wire = append(wire, 0)

	if limit := r.nameCap(); len(wire) > limit {
		return Root, fmt.Errorf("%w: encodes to %d octets (limit %d)", ErrNameTooLong, len(wire), limit)
	}
	return FQDN{wire: string(wire)}, nil
}

// FromLabels builds an FQDN from individual labels, most specific first,
// under the build-time rule set. No labels yields the root.
func FromLabels(labels ...string) (FQDN, error) {
	return activeRules.FromLabels(labels...)
}

// FromLabels builds an FQDN from individual labels under this rule set.
func (r Rules) FromLabels(labels ...string) (FQDN, error) {
	if len(labels) == 0 {
		return Root, nil
	}
	wire := make([]byte, 0, 16)
	for _, label := range labels {
		if !isASCII(label) {
			ascii, err := encodeLabel(label)
			if err != nil {
				return Root, err
			}
			label = ascii
		}
		if err := r.checkLabel(label); err != nil {
			return Root, err
		}
		wire = appendLabel(wire, label)
	}
	wire = append(wire, 0)
	if limit := r.nameCap(); len(wire) > limit {
		return Root, fmt.Errorf("%w: encodes to %d octets (limit %d)", ErrNameTooLong, len(wire), limit)
	}
	return FQDN{wire: string(wire)}, nil
}

// IsRoot reports whether this is the root domain.
func (f FQDN) IsRoot() bool { return f.wire == "" }

// Depth counts the non-root labels. The root has depth 0.
func (f FQDN) Depth() int {
	n := 0
	for off := 0; off < len(f.wire) && f.wire[off] != 0; off += 1 + int(f.wire[off]) {
		n++
	}
	return n
}

// Labels returns the labels most specific first, as views into the
// canonical buffer. The root has no labels.
func (f FQDN) Labels() []Label {
	if f.IsRoot() {
		return nil
	}
	labels := make([]Label, 0, 4)
	for off := 0; f.wire[off] != 0; {
		n := int(f.wire[off])
		labels = append(labels, Label(f.wire[off+1:off+1+n]))
		off += 1 + n
	}
	return labels
}

// Hierarchy returns the chain of domains from this name up to (and
// excluding) the root: the name itself, its parent, and so on down to the
// top-level domain. Every element shares the canonical buffer.
//
// The root has an empty hierarchy.
func (f FQDN) Hierarchy() []FQDN {
	if f.IsRoot() {
		return nil
	}
	chain := make([]FQDN, 0, 4)
	rest := f
	for !rest.IsRoot() {
		chain = append(chain, rest)
		rest, _ = rest.Parent()
	}
	return chain
}

// Parent strips the leftmost label. The second return is false only for
// the root, which has no parent.
func (f FQDN) Parent() (FQDN, bool) {
	if f.IsRoot() {
		return Root, false
	}
	rest := f.wire[1+int(f.wire[0]):]
	if rest == "\x00" {
		return Root, true
	}
	return FQDN{wire: rest}, true
}

// TLD returns the top-level domain, e.g. "com." for "go-gin.github.com.".
// The second return is false for the root.
func (f FQDN) TLD() (FQDN, bool) {
	if f.IsRoot() {
		return Root, false
	}
	chain := f.Hierarchy()
	return chain[len(chain)-1], true
}

// IsTLD reports whether the name consists of a single label.
func (f FQDN) IsTLD() bool {
	return !f.IsRoot() && f.wire[1+int(f.wire[0])] == 0
}

// IsSubdomainOf reports whether other's canonical encoding is a suffix of
// this name's, aligned on a label boundary. Every name is a subdomain of
// itself and of the root.
//
// Plain byte-suffix comparison is not enough: the length octets overlap the
// digit and hyphen code points, so an unaligned suffix of one valid name
// can spell out another valid name. The walk below only accepts a match
// that starts exactly where a label does.
func (f FQDN) IsSubdomainOf(other FQDN) bool {
	if other.IsRoot() {
		return true
	}
	diff := len(f.wire) - len(other.wire)
	if diff < 0 {
		return false
	}
	off := 0
	for off < diff {
		off += 1 + int(f.wire[off])
	}
	return off == diff && f.wire[diff:] == other.wire
}

// Equal reports whether two names have the same canonical encoding.
// Since FQDN is comparable this is the same as ==.
func (f FQDN) Equal(other FQDN) bool {
	return f.wire == other.wire
}

// Compare orders two names by their canonical encodings. It returns
// -1, 0 or +1 in the manner of strings.Compare; equal names are exactly
// those for which == holds.
func (f FQDN) Compare(other FQDN) int {
	return strings.Compare(f.wire, other.wire)
}

// String renders the dotted text form from the canonical (lowercase)
// labels. The root is ".". A trailing dot is appended iff the build-time
// rule set has TrailingDot active.
func (f FQDN) String() string {
	return f.StringWithRules(activeRules)
}

// StringWithRules renders the dotted text form under an explicit rule
// set, honoring its TrailingDot toggle instead of the build-time one.
func (f FQDN) StringWithRules(r Rules) string {
	if f.IsRoot() {
		return "."
	}
	var b strings.Builder
	b.Grow(len(f.wire))
	for off := 0; f.wire[off] != 0; {
		n := int(f.wire[off])
		if off > 0 {
			b.WriteByte('.')
		}
		b.WriteString(f.wire[off+1 : off+1+n])
		off += 1 + n
	}
	if r.TrailingDot {
		b.WriteByte('.')
	}
	return b.String()
}

// Unicode renders the dotted text form with internationalized labels
// decoded from their ASCII-compatible encoding. Trailing-dot handling
// matches String.
func (f FQDN) Unicode() (string, error) {
	if f.IsRoot() {
		return ".", nil
	}
	parts := make([]string, 0, 4)
	for _, label := range f.Labels() {
		u, err := label.Unicode()
		if err != nil {
			return "", err
		}
		parts = append(parts, u)
	}
	s := strings.Join(parts, ".")
	if activeRules.TrailingDot {
		s += "."
	}
	return s, nil
}
