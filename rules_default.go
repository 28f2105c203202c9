//go:build !fqdnstrict

package fqdn

// activeRules backs the package-level Parse, ParseLabel and FromWire.
// Build with -tags fqdnstrict to switch them to the Strict bundle.
var activeRules = Default
