package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edirooss/zmux-server/internal/sim"
)

func TestStatusFor_ValidationAndConfigErrorsAre400(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, statusFor(&sim.ValidationError{Field: "pid", Reason: "x"}))
	assert.Equal(t, http.StatusBadRequest, statusFor(&sim.ConfigError{Reason: "x"}))
}

func TestStatusFor_InvariantErrorIs500(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, statusFor(&sim.InvariantError{PID: "P1", Reason: "x"}))
}

func TestStatusFor_UnwrapsWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("algorithm %s: %w", "RR", &sim.ConfigError{Reason: "time_slice required"})
	assert.Equal(t, http.StatusBadRequest, statusFor(wrapped))
}
