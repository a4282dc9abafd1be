// Package dto holds the wire request/response shapes the HTTP facade binds,
// validates, and normalizes before the scheduling core ever sees them —
// per SPEC_FULL.md's "heterogeneous config dictionaries ... should be
// parsed into typed configuration structs at the edge".
package dto

import (
	"encoding/json"
	"strings"

	"github.com/edirooss/zmux-server/internal/sim"
)

// ProcessIn is one process entry as it arrives over the wire. Key aliasing
// (`id`→pid, `arrivalTime`→arrival_time, `burstTime`→burst_time,
// `prio`→priority) is resolved by UnmarshalJSON rather than struct tags,
// mirroring original_source's pre-validator key normalization.
type ProcessIn struct {
	PID         string `json:"pid"`
	ArrivalTime int    `json:"arrival_time"`
	BurstTime   int    `json:"burst_time"`
	Priority    *int   `json:"priority,omitempty"`
}

func (p *ProcessIn) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	alias(raw, "pid", "id")
	alias(raw, "arrival_time", "arrivalTime")
	alias(raw, "burst_time", "burstTime")
	alias(raw, "priority", "prio")
	if err := rejectUnknown(raw, "pid", "arrival_time", "burst_time", "priority"); err != nil {
		return err
	}

	type plain ProcessIn
	var p2 plain
	merged, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(merged, &p2); err != nil {
		return err
	}
	*p = ProcessIn(p2)
	return nil
}

// alias copies raw[fromKey] into raw[canonicalKey] when canonicalKey is
// absent and fromKey is present, then removes fromKey — the canonical
// field always wins if both are somehow present.
func alias(raw map[string]json.RawMessage, canonicalKey, fromKey string) {
	if _, ok := raw[canonicalKey]; ok {
		delete(raw, fromKey)
		return
	}
	if v, ok := raw[fromKey]; ok {
		raw[canonicalKey] = v
		delete(raw, fromKey)
	}
}

// rejectUnknown reports an error naming the first key in raw not present in
// allowed. Custom UnmarshalJSON implementations below go through a
// map[string]json.RawMessage first (to resolve aliases), which bypasses
// encoding/json's own DisallowUnknownFields — this restores that guarantee
// after aliasing, so a stray typo'd field is still a 400, not silently
// dropped.
func rejectUnknown(raw map[string]json.RawMessage, allowed ...string) error {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, k := range allowed {
		allowedSet[k] = struct{}{}
	}
	for k := range raw {
		if _, ok := allowedSet[k]; !ok {
			return &sim.ValidationError{Field: k, Reason: "unknown field"}
		}
	}
	return nil
}

// Validate checks the process-level invariants from §7: arrival >= 0,
// burst > 0.
func (p ProcessIn) Validate() error {
	if strings.TrimSpace(p.PID) == "" {
		return &sim.ValidationError{Field: "pid", Reason: "must not be empty"}
	}
	if p.ArrivalTime < 0 {
		return &sim.ValidationError{Field: "arrival_time", Reason: "must be >= 0"}
	}
	if p.BurstTime <= 0 {
		return &sim.ValidationError{Field: "burst_time", Reason: "must be > 0"}
	}
	return nil
}

func (p ProcessIn) toProcess() sim.Process {
	return sim.Process{
		PID:         p.PID,
		ArrivalTime: p.ArrivalTime,
		BurstTime:   p.BurstTime,
		Priority:    p.Priority,
	}
}

// ToProcesses validates and converts a slice of wire processes, rejecting
// duplicate pids (§3: "unique within a run").
func ToProcesses(in []ProcessIn) ([]sim.Process, error) {
	seen := make(map[string]struct{}, len(in))
	out := make([]sim.Process, 0, len(in))
	for _, p := range in {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, dup := seen[p.PID]; dup {
			return nil, &sim.ValidationError{Field: "pid", Reason: "duplicate pid " + p.PID}
		}
		seen[p.PID] = struct{}{}
		out = append(out, p.toProcess())
	}
	return out, nil
}

// QueueConfigIn is one MLQ/MLFQ queue/level entry as it arrives over the
// wire, with the same camelCase aliasing as the top-level request.
type QueueConfigIn struct {
	Algorithm string `json:"algorithm"`
	TimeSlice *int   `json:"time_slice,omitempty"`
}

func (q *QueueConfigIn) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	alias(raw, "algorithm", "algo")
	alias(raw, "time_slice", "timeSlice")
	if err := rejectUnknown(raw, "algorithm", "time_slice"); err != nil {
		return err
	}

	type plain QueueConfigIn
	var q2 plain
	merged, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(merged, &q2); err != nil {
		return err
	}
	*q = QueueConfigIn(q2)
	return nil
}

// PolicyConfig is the policy-specific `config` object, §6: MLQ needs
// Queues+PriorityMapping, MLFQ needs TimeSlices or Queues to derive them.
type PolicyConfig struct {
	Queues          []QueueConfigIn `json:"queues,omitempty"`
	PriorityMapping string          `json:"priority_mapping,omitempty"`
	TimeSlices      []*int          `json:"time_slices,omitempty"`
}

func (c *PolicyConfig) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	alias(raw, "priority_mapping", "priorityMapping")
	alias(raw, "time_slices", "timeSlices")
	if err := rejectUnknown(raw, "queues", "priority_mapping", "time_slices"); err != nil {
		return err
	}

	type plain PolicyConfig
	var c2 plain
	merged, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(merged, &c2); err != nil {
		return err
	}
	*c = PolicyConfig(c2)
	return nil
}

// SchedulingRequest is the `/execute` request body, §6.
type SchedulingRequest struct {
	Algorithm         string        `json:"algorithm"`
	Processes         []ProcessIn   `json:"processes"`
	ContextSwitchTime int           `json:"context_switch_time" default:"0"`
	TimeSlice         *int          `json:"time_slice,omitempty"`
	Config            *PolicyConfig `json:"config,omitempty"`
}

func (r *SchedulingRequest) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	alias(raw, "context_switch_time", "contextSwitchTime")
	alias(raw, "time_slice", "timeSlice")
	if err := rejectUnknown(raw, "algorithm", "processes", "context_switch_time", "time_slice", "config"); err != nil {
		return err
	}

	type plain SchedulingRequest
	var r2 plain
	merged, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(merged, &r2); err != nil {
		return err
	}
	*r = SchedulingRequest(r2)
	return nil
}

// Validate checks request-level invariants from §7, independent of
// algorithm/policy config (checked separately by BuildPolicy).
func (r SchedulingRequest) Validate() error {
	if strings.TrimSpace(r.Algorithm) == "" {
		return &sim.ValidationError{Field: "algorithm", Reason: "must not be empty"}
	}
	if r.ContextSwitchTime < 0 {
		return &sim.ValidationError{Field: "context_switch_time", Reason: "must be >= 0"}
	}
	return nil
}

// NormalizedAlgorithm returns the algorithm name upper-cased and trimmed,
// with SPN folded to its SJF alias (§6).
func (r SchedulingRequest) NormalizedAlgorithm() string {
	algo := strings.ToUpper(strings.TrimSpace(r.Algorithm))
	if algo == "SPN" {
		return "SJF"
	}
	return algo
}

// CompareRequest is the `/compare` request body, §6: same shape as
// SchedulingRequest but with an explicit algorithm list and no single
// required `algorithm` field.
type CompareRequest struct {
	Algorithms        []string      `json:"algorithms,omitempty"`
	Processes         []ProcessIn   `json:"processes"`
	ContextSwitchTime int           `json:"context_switch_time" default:"0"`
	TimeSlice         *int          `json:"time_slice,omitempty"`
	Config            *PolicyConfig `json:"config,omitempty"`
}

func (r *CompareRequest) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	alias(raw, "context_switch_time", "contextSwitchTime")
	alias(raw, "time_slice", "timeSlice")
	if err := rejectUnknown(raw, "algorithms", "processes", "context_switch_time", "time_slice", "config"); err != nil {
		return err
	}

	type plain CompareRequest
	var r2 plain
	merged, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(merged, &r2); err != nil {
		return err
	}
	*r = CompareRequest(r2)
	return nil
}

// DefaultAlgorithms is used when CompareRequest.Algorithms is empty.
var DefaultAlgorithms = []string{"FCFS", "RR", "SJF", "SPN", "SRTF", "HRRN", "MLQ", "MLFQ"}

func (r CompareRequest) Validate() error {
	if r.ContextSwitchTime < 0 {
		return &sim.ValidationError{Field: "context_switch_time", Reason: "must be >= 0"}
	}
	return nil
}
