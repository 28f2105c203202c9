package fqdn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringWithRules_TrailingDot(t *testing.T) {
	f, err := Strict.Parse("github.com")
	require.NoError(t, err)

	assert.Equal(t, "github.com.", f.StringWithRules(Strict))
	assert.Equal(t, "github.com", f.StringWithRules(Default))
	assert.Equal(t, ".", Root.StringWithRules(Strict))
	assert.Equal(t, ".", Root.StringWithRules(Default))
}

func TestCanonicalBuffer(t *testing.T) {
	f, err := Parse("GitHub.COM.")
	require.NoError(t, err)
	assert.Equal(t, "\x06github\x03com\x00", f.wire)
	assert.Equal(t, "", Root.wire)
}

func TestLowerByte(t *testing.T) {
	assert.Equal(t, byte('a'), lowerByte('A'))
	assert.Equal(t, byte('z'), lowerByte('Z'))
	assert.Equal(t, byte('a'), lowerByte('a'))
	assert.Equal(t, byte('-'), lowerByte('-'))
	assert.Equal(t, byte('1'), lowerByte('1'))
}
