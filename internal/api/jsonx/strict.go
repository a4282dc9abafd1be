// Package jsonx provides strict JSON body decoding for the scheduling API,
// adapted from the teacher's pkg/jsonx — same shape, rewired for
// scheduling request bodies instead of channel DTOs.
package jsonx

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

var (
	ErrEmptyBody    = errors.New("empty body")
	ErrTrailingJSON = errors.New("trailing data")
)

// ParseStrictJSONBody reads and strictly decodes a JSON HTTP request body
// into dst: rejects empty bodies, unknown fields, and trailing JSON values.
// Intended HTTP mapping is 400 Bad Request on any returned error.
func ParseStrictJSONBody[T any](r *http.Request, dst *T) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20)) // 1MB cap
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return ErrEmptyBody
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return ErrTrailingJSON
	}
	return nil
}
