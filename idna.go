package fqdn

import (
	"fmt"
	"strings"

	"golang.org/x/net/idna"
)

// Internationalized labels are bridged to their ASCII-compatible encoding
// (RFC 3490 "ACE", the xn-- form) through golang.org/x/net/idna. The codec
// is only consulted for labels that actually carry non-ASCII bytes; the
// result then goes through the ordinary ASCII validation like any other
// label, so the rule set still has the final word.

// encodeLabel transcodes one Unicode label to its ACE form. The label is
// case-folded first so that the ACE output is already canonical.
func encodeLabel(label string) (string, error) {
	ascii, err := idna.ToASCII(strings.ToLower(label))
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrCodecFailure, label, err)
	}
	if !isASCII(ascii) {
		return "", fmt.Errorf("%w: %q did not encode to ASCII", ErrCodecFailure, label)
	}
	return ascii, nil
}

// decodeLabel transcodes one ACE label back to Unicode. Labels without the
// ACE prefix are returned unchanged.
func decodeLabel(label string) (string, error) {
	unicode, err := idna.ToUnicode(label)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrCodecFailure, label, err)
	}
	return unicode, nil
}
