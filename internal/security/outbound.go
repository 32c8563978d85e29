// Package security provides the safe outbound HTTP client and the caption
// text sanitizer used by the pipeline clients.
package security

import (
	"net/http"
	"time"

	"github.com/doyensec/safeurl"
)

// NewOutboundClient builds an HTTP client for third-party API calls.
// safeurl blocks requests resolving to private, loopback, link-local and
// metadata addresses at the dialer level, so DNS rebinding cannot reach
// internal services through attacker-supplied video or channel ids.
func NewOutboundClient(timeout time.Duration) *http.Client {
	config := safeurl.GetConfigBuilder().
		SetTimeout(timeout).
		SetAllowedSchemes("https").
		SetAllowedPorts(443).
		Build()

	return safeurl.Client(config).Client
}
