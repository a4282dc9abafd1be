package sim

import "fmt"

// ValidationError covers malformed input: negative arrival, non-positive
// burst, empty/unknown algorithm. Surfaced by the HTTP layer as 400.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// ConfigError covers policy misconfiguration: RR without a time slice, RR
// quantum <= 0 (including an RR sub-queue of MLQ/MLFQ), MLFQ with no
// time_slice to derive quanta from, or missing level 0..2 quanta. MLQ/MLFQ
// queue lists of the wrong length are not errors: they fall back to
// defaults with a warning. Surfaced by the HTTP layer as 400.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string { return e.Reason }

// InvariantError reports a simulation invariant violation — per §7 this
// "should be unreachable"; its presence indicates an engine or policy bug,
// not a bad request. Surfaced by the HTTP layer as 500.
type InvariantError struct {
	PID    string
	Reason string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("process %q: %s", e.PID, e.Reason)
}
