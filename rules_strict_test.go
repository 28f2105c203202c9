//go:build fqdnstrict

package fqdn_test

import (
	"testing"

	"github.com/jroosing/fqdn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Exercised with: go test -tags fqdnstrict

// canonical renders a dotted name the way the package-level functions do.
// The strict build appends the trailing dot.
func canonical(s string) string {
	if s == "." {
		return s
	}
	return s + "."
}

func TestStrictBuild_PackageDefaultIsStrict(t *testing.T) {
	_, err := fqdn.Parse("ab_c.com.")
	assert.ErrorIs(t, err, fqdn.ErrInvalidCharacter)

	_, err = fqdn.ParseLabel("ab_c")
	assert.ErrorIs(t, err, fqdn.ErrInvalidCharacter)
}

func TestStrictBuild_RenderingKeepsTrailingDot(t *testing.T) {
	f, err := fqdn.Parse("GitHub.COM")
	require.NoError(t, err)
	assert.Equal(t, "github.com.", f.String())
}
