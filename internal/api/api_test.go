// Package api_test provides behavior tests for the API package.
package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jroosing/fqdn"
	"github.com/jroosing/fqdn/internal/api"
	"github.com/jroosing/fqdn/internal/api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(cfg api.Config) *api.Server {
	if cfg.Host == "" {
		cfg.Host = "127.0.0.1"
	}
	if cfg.Port == 0 {
		cfg.Port = 8053
	}
	return api.New(cfg, nil)
}

func performRequest(r http.Handler, method, path, body string, header map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestNew_CreatesServer(t *testing.T) {
	server := newTestServer(api.Config{Rules: fqdn.Default})
	require.NotNil(t, server)
	assert.Equal(t, "127.0.0.1:8053", server.Addr())
	assert.NotNil(t, server.Engine())
}

func TestHealth(t *testing.T) {
	server := newTestServer(api.Config{Rules: fqdn.Strict})

	w := performRequest(server.Engine(), http.MethodGet, "/api/v1/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.StatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.True(t, resp.Strict)
}

func TestParseName_Valid(t *testing.T) {
	server := newTestServer(api.Config{Rules: fqdn.Default})

	w := performRequest(server.Engine(), http.MethodPost, "/api/v1/parse",
		`{"name":"GitHub.COM."}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ParseResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "github.com", resp.Canonical)
	assert.Equal(t, []string{"github", "com"}, resp.Labels)
	assert.Equal(t, 2, resp.Depth)
	assert.Equal(t, "0667697468756203636f6d00", resp.WireHex)
	assert.Equal(t, "com", resp.TLD)
	assert.False(t, resp.Root)
}

func TestParseName_StrictRendersTrailingDot(t *testing.T) {
	server := newTestServer(api.Config{Rules: fqdn.Strict})

	w := performRequest(server.Engine(), http.MethodPost, "/api/v1/parse",
		`{"name":"GitHub.COM"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ParseResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "github.com.", resp.Canonical)
	assert.Equal(t, "com.", resp.TLD)
}

func TestParseName_Invalid(t *testing.T) {
	server := newTestServer(api.Config{Rules: fqdn.Strict})

	tests := []struct {
		name     string
		body     string
		wantKind string
	}{
		{"bad character", `{"name":"git@ub.com."}`, "invalid_character"},
		{"underscore under strict", `{"name":"ab_c.com."}`, "invalid_character"},
		{"empty interior label", `{"name":"github..com."}`, "malformed_separators"},
		{"edge hyphen", `{"name":"-abc.com."}`, "hyphen_placement"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(server.Engine(), http.MethodPost, "/api/v1/parse", tt.body, nil)
			require.Equal(t, http.StatusUnprocessableEntity, w.Code)

			var resp models.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantKind, resp.Kind)
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestParseName_MissingBody(t *testing.T) {
	server := newTestServer(api.Config{Rules: fqdn.Default})
	w := performRequest(server.Engine(), http.MethodPost, "/api/v1/parse", `{}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCompareNames(t *testing.T) {
	server := newTestServer(api.Config{Rules: fqdn.Default})

	w := performRequest(server.Engine(), http.MethodPost, "/api/v1/compare",
		`{"name":"www.example.com.","other":"Example.COM"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.CompareResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Equal)
	assert.True(t, resp.SubdomainOfOther)
	assert.False(t, resp.OtherSubdomain)
}

func TestAPIKey_Enforced(t *testing.T) {
	server := newTestServer(api.Config{Rules: fqdn.Default, APIKey: "sekrit"})

	// Health stays open.
	w := performRequest(server.Engine(), http.MethodGet, "/api/v1/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Parse requires the key.
	w = performRequest(server.Engine(), http.MethodPost, "/api/v1/parse", `{"name":"a.fr"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = performRequest(server.Engine(), http.MethodPost, "/api/v1/parse", `{"name":"a.fr"}`,
		map[string]string{"X-API-Key": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = performRequest(server.Engine(), http.MethodPost, "/api/v1/parse", `{"name":"a.fr"}`,
		map[string]string{"X-API-Key": "sekrit"})
	assert.Equal(t, http.StatusOK, w.Code)
}
