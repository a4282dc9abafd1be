// Package handler holds the gin route handlers for the scheduling API.
package handler

import (
	"errors"
	"net/http"

	"github.com/edirooss/zmux-server/internal/sim"
)

// statusFor maps the core's error taxonomy (§7) to an HTTP status:
// validation/config errors are the caller's fault (400), an invariant
// violation is the engine's fault (500). Compare wraps per-algorithm
// errors with fmt.Errorf("%w", ...), so this unwraps via errors.As rather
// than a direct type switch.
func statusFor(err error) int {
	var verr *sim.ValidationError
	var cerr *sim.ConfigError
	if errors.As(err, &verr) || errors.As(err, &cerr) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
