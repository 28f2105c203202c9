package fqdn_test

import (
	"encoding/json"
	"testing"

	"github.com/jroosing/fqdn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSON_RoundTrip(t *testing.T) {
	f := fqdn.MustParse("foo.bar.")

	data, err := json.Marshal(f)
	require.NoError(t, err)
	assert.JSONEq(t, `"`+canonical("foo.bar")+`"`, string(data))

	var back fqdn.FQDN
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, f, back)
}

func TestJSON_StructField(t *testing.T) {
	type record struct {
		Origin fqdn.FQDN `json:"origin"`
		TTL    int       `json:"ttl"`
	}

	var rec record
	require.NoError(t, json.Unmarshal([]byte(`{"origin":"Example.COM.","ttl":300}`), &rec))
	assert.Equal(t, fqdn.MustParse("example.com."), rec.Origin)

	out, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.JSONEq(t, `{"origin":"`+canonical("example.com")+`","ttl":300}`, string(out))
}

func TestJSON_InvalidNameRejected(t *testing.T) {
	var f fqdn.FQDN
	err := json.Unmarshal([]byte(`"git@ub.com"`), &f)
	require.ErrorIs(t, err, fqdn.ErrInvalidCharacter)
}

func TestJSON_Root(t *testing.T) {
	data, err := json.Marshal(fqdn.Root)
	require.NoError(t, err)
	assert.Equal(t, `"."`, string(data))

	var back fqdn.FQDN
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, back.IsRoot())
}
