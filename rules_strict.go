//go:build fqdnstrict

package fqdn

// activeRules backs the package-level Parse, ParseLabel and FromWire.
// The fqdnstrict build tag pins them to the Strict bundle.
var activeRules = Strict
