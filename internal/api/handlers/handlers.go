// Package handlers implements the REST API endpoint handlers for fqdnd.
//
// Endpoints:
//   - GET  /api/v1/health  - liveness plus the active rule bundle
//   - POST /api/v1/parse   - validate and normalize one name
//   - POST /api/v1/compare - equality / subdomain relation of two names
//
// All endpoints except /health honor the optional X-API-Key header when a
// key is configured.
package handlers

import (
	"encoding/hex"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/fqdn"
	"github.com/jroosing/fqdn/internal/api/models"
)

// Handler contains dependencies for API handlers. The rule set is fixed at
// construction; fqdnd processes never mix differently-validated names.
type Handler struct {
	rules     fqdn.Rules
	logger    *slog.Logger
	startTime time.Time
}

// New creates a Handler validating under the given rule set.
func New(rules fqdn.Rules, logger *slog.Logger) *Handler {
	return &Handler{
		rules:     rules,
		logger:    logger,
		startTime: time.Now(),
	}
}

// Health reports liveness and the active rule bundle.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, models.StatusResponse{
		Status:        "ok",
		UptimeSeconds: int64(time.Since(h.startTime).Seconds()),
		Strict:        h.rules == fqdn.Strict,
	})
}

// ParseName validates one name and returns its canonical breakdown.
func (h *Handler) ParseName(c *gin.Context) {
	var req models.ParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	name, err := h.rules.Parse(req.Name)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error: err.Error(),
			Kind:  errorKind(err),
		})
		return
	}

	resp := models.ParseResponse{
		Canonical: name.StringWithRules(h.rules),
		Labels:    labelStrings(name),
		Depth:     name.Depth(),
		WireHex:   hex.EncodeToString(name.Bytes()),
		Root:      name.IsRoot(),
	}
	if u, err := name.Unicode(); err == nil {
		resp.Unicode = u
	}
	if tld, ok := name.TLD(); ok {
		resp.TLD = tld.StringWithRules(h.rules)
	}
	c.JSON(http.StatusOK, resp)
}

// CompareNames reports the relation between two names.
func (h *Handler) CompareNames(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	name, err := h.rules.Parse(req.Name)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{Error: err.Error(), Kind: errorKind(err)})
		return
	}
	other, err := h.rules.Parse(req.Other)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{Error: err.Error(), Kind: errorKind(err)})
		return
	}

	c.JSON(http.StatusOK, models.CompareResponse{
		Equal:            name == other,
		SubdomainOfOther: name.IsSubdomainOf(other),
		OtherSubdomain:   other.IsSubdomainOf(name),
		Order:            name.Compare(other),
	})
}

func labelStrings(f fqdn.FQDN) []string {
	labels := f.Labels()
	out := make([]string, len(labels))
	for i, l := range labels {
		out[i] = l.String()
	}
	return out
}

// errorKind maps the library's sentinel errors to stable wire identifiers.
func errorKind(err error) string {
	switch {
	case errors.Is(err, fqdn.ErrEmptyLabel):
		return "empty_label"
	case errors.Is(err, fqdn.ErrLabelTooLong):
		return "label_too_long"
	case errors.Is(err, fqdn.ErrNameTooLong):
		return "name_too_long"
	case errors.Is(err, fqdn.ErrInvalidCharacter):
		return "invalid_character"
	case errors.Is(err, fqdn.ErrHyphenPlacement):
		return "hyphen_placement"
	case errors.Is(err, fqdn.ErrCodecFailure):
		return "codec_failure"
	case errors.Is(err, fqdn.ErrMalformedSeparators):
		return "malformed_separators"
	case errors.Is(err, fqdn.ErrBadWireFormat):
		return "bad_wire_format"
	default:
		return "invalid"
	}
}
