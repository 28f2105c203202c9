package fqdn

import "fmt"

// Label is one dot-separated segment of a domain name, held in its
// canonical ASCII-lowercase form.
//
// Labels obtained from FQDN.Labels are substrings of the parent's canonical
// buffer: they share its backing storage and stay valid for as long as any
// reference to them does, Go strings being immutable.
type Label string

// ParseLabel validates a single label under the build-time rule set.
// Non-ASCII input is transcoded to its ASCII-compatible form first.
func ParseLabel(s string) (Label, error) {
	return activeRules.ParseLabel(s)
}

// ParseLabel validates a single label under this rule set.
func (r Rules) ParseLabel(s string) (Label, error) {
	if !isASCII(s) {
		ascii, err := encodeLabel(s)
		if err != nil {
			return "", err
		}
		s = ascii
	}
	if err := r.checkLabel(s); err != nil {
		return "", err
	}
	return Label(lowerASCII(s)), nil
}

func (l Label) String() string { return string(l) }

// Unicode transcodes the label back to its internationalized form.
// Labels without the ACE prefix come back unchanged.
func (l Label) Unicode() (string, error) {
	return decodeLabel(string(l))
}

// checkLabel validates one ASCII label against the rule set. The caller is
// responsible for transcoding internationalized input beforehand.
func (r Rules) checkLabel(s string) error {
	if len(s) == 0 {
		return ErrEmptyLabel
	}
	if limit := r.labelCap(); len(s) > limit {
		return fmt.Errorf("%w: %q is %d octets (limit %d)", ErrLabelTooLong, s, len(s), limit)
	}
	if r.NoEdgeHyphen && (s[0] == '-' || s[len(s)-1] == '-') {
		return fmt.Errorf("%w: %q", ErrHyphenPlacement, s)
	}
	for i := 0; i < len(s); i++ {
		if !r.validByte(s[i]) {
			return fmt.Errorf("%w: %q in label %q", ErrInvalidCharacter, s[i], s)
		}
	}
	return nil
}

// validByte reports whether c is allowed inside a label. Letters, digits
// and hyphen are always allowed; underscore only outside the strict charset.
func (r Rules) validByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-':
		return true
	case c == '_':
		return !r.StrictCharset
	default:
		return false
	}
}

// appendLabel appends the length-prefixed, case-folded encoding of an
// already validated ASCII label.
func appendLabel(dst []byte, label string) []byte {
	dst = append(dst, byte(len(label)))
	for i := 0; i < len(label); i++ {
		dst = append(dst, lowerByte(label[i]))
	}
	return dst
}

// lowerByte folds a single ASCII letter; every other byte passes through.
// Locale-sensitive casing never applies: the buffer is ASCII by invariant.
func lowerByte(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c | 0x20
	}
	return c
}

func lowerASCII(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			b := make([]byte, len(s))
			for j := 0; j < len(s); j++ {
				b[j] = lowerByte(s[j])
			}
			return string(b)
		}
	}
	return s
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7F {
			return false
		}
	}
	return true
}
