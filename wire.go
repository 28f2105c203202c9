package fqdn

import "fmt"

// Wire-format boundary. The canonical buffer already is the RFC 1035
// Section 3.1 encoding of the name, so exposing it is a copy, and accepting
// one is a structural walk plus the usual per-label validation. Message
// compression pointers are out of scope here: a canonical name is always
// the uncompressed sequence.

// Bytes returns a copy of the wire-format encoding, terminal zero octet
// included. The root encodes as a single zero octet.
func (f FQDN) Bytes() []byte {
	return f.AppendWire(nil)
}

// AppendWire appends the wire-format encoding to dst and returns the
// extended slice.
func (f FQDN) AppendWire(dst []byte) []byte {
	if f.IsRoot() {
		return append(dst, 0)
	}
	return append(dst, f.wire...)
}

// FromWire validates a wire-format name under the build-time rule set and
// returns its canonical FQDN.
func FromWire(b []byte) (FQDN, error) {
	return activeRules.FromWire(b)
}

// FromWire validates a wire-format name under this rule set.
//
// A missing terminal zero octet is tolerated and treated as implicit,
// mirroring the trailing-dot relaxation on the text side. Uppercase ASCII
// in label bytes is accepted and folded during canonicalization.
func (r Rules) FromWire(b []byte) (FQDN, error) {
	if len(b) > 0 && b[len(b)-1] == 0 {
		b = b[:len(b)-1]
	}
	if len(b) == 0 {
		return Root, nil
	}

	wire := make([]byte, 0, len(b)+1)
	for off := 0; off < len(b); {
		n := int(b[off])
		if n == 0 {
			return Root, fmt.Errorf("%w: empty label at offset %d", ErrBadWireFormat, off)
		}
		if off+1+n > len(b) {
			return Root, fmt.Errorf("%w: label length %d overruns buffer at offset %d", ErrBadWireFormat, n, off)
		}
		label := string(b[off+1 : off+1+n])
		if err := r.checkLabel(label); err != nil {
			return Root, err
		}
		wire = appendLabel(wire, label)
		off += 1 + n
	}
	wire = append(wire, 0)

	if limit := r.nameCap(); len(wire) > limit {
		return Root, fmt.Errorf("%w: %d octets (limit %d)", ErrNameTooLong, len(wire), limit)
	}
	return FQDN{wire: string(wire)}, nil
}
