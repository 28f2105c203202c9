// Package models defines request and response types for the fqdnd REST API.
// All types are JSON-serializable.
package models

// ErrorResponse represents an API error response. Kind carries the
// validation error class (e.g. "label_too_long") so clients can branch
// without parsing message text.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// StatusResponse represents a simple status response.
type StatusResponse struct {
	Status        string `json:"status"`
	UptimeSeconds int64  `json:"uptime_seconds"`
	Strict        bool   `json:"strict"`
}

// ParseRequest asks for one name to be validated and normalized.
type ParseRequest struct {
	Name string `json:"name" binding:"required"`
}

// ParseResponse is the canonical breakdown of a valid name.
type ParseResponse struct {
	Canonical string   `json:"canonical"`
	Unicode   string   `json:"unicode"`
	Labels    []string `json:"labels"`
	Depth     int      `json:"depth"`
	WireHex   string   `json:"wire_hex"`
	Root      bool     `json:"root"`
	TLD       string   `json:"tld,omitempty"`
}

// CompareRequest asks for the relation between two names.
type CompareRequest struct {
	Name  string `json:"name" binding:"required"`
	Other string `json:"other" binding:"required"`
}

// CompareResponse describes how two names relate. SubdomainOfOther is true
// when Name sits underneath Other in the hierarchy (equality included).
type CompareResponse struct {
	Equal            bool `json:"equal"`
	SubdomainOfOther bool `json:"subdomain_of_other"`
	OtherSubdomain   bool `json:"other_subdomain_of_name"`
	Order            int  `json:"order"` // -1, 0, +1 over canonical encodings
}
