package fqdn

// Text marshaling uses the dotted rendering, so FQDN values embed directly
// in JSON documents, map keys and flag values. Unmarshaling re-validates
// under the build-time rule set: a decoded FQDN is never less checked than
// a parsed one.

// MarshalText implements encoding.TextMarshaler.
func (f FQDN) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *FQDN) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
