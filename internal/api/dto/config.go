package dto

import (
	"strings"

	"github.com/mcuadros/go-defaults"

	"github.com/edirooss/zmux-server/internal/sim"
)

// ApplyDefaults fills ContextSwitchTime's zero value through go-defaults,
// mirroring the teacher's `NewCreateZmuxChannelReq` / `ApplyDefaults`
// pattern — here a no-op for an already-zero-valued int, kept for the
// fields future config additions would want defaulted the same way.
func (r *SchedulingRequest) ApplyDefaults() { defaults.SetDefaults(r) }

func (r *CompareRequest) ApplyDefaults() { defaults.SetDefaults(r) }

// BuildPolicy resolves the wire request into a concrete sim.Policy,
// accumulating non-fatal warnings (MLQ/MLFQ defaulting, §7) into *warnings.
// Algorithm-specific configuration errors are returned, never swallowed.
func BuildPolicy(algorithm string, contextSwitchTime int, timeSlice *int, cfg *PolicyConfig, warnings *[]string) (sim.Policy, error) {
	algo := strings.ToUpper(strings.TrimSpace(algorithm))
	if algo == "SPN" {
		algo = "SJF"
	}

	switch algo {
	case "FCFS":
		return sim.NewFCFS(), nil
	case "SJF":
		return sim.NewSJF(), nil
	case "HRRN":
		return sim.NewHRRN(), nil
	case "SRTF":
		return sim.NewSRTF(), nil
	case "RR":
		if timeSlice == nil {
			return nil, &sim.ConfigError{Reason: "time_slice is required for RR"}
		}
		return sim.NewRR(*timeSlice)
	case "MLQ":
		return buildMLQ(cfg, timeSlice, warnings)
	case "MLFQ":
		return buildMLFQ(cfg, timeSlice, warnings)
	default:
		return nil, &sim.ValidationError{Field: "algorithm", Reason: "unsupported algorithm: " + algorithm}
	}
}

func buildMLQ(cfg *PolicyConfig, timeSlice *int, warnings *[]string) (sim.Policy, error) {
	var queues [4]sim.QueueConfig
	if cfg == nil || len(cfg.Queues) != 4 {
		ts := 4
		if timeSlice != nil {
			ts = *timeSlice
		}
		*warnings = append(*warnings, "MLQ config.queues missing/invalid; using default: RR, RR, FCFS, FCFS")
		queues = sim.DefaultMLQQueues(ts)
	} else {
		for i, q := range cfg.Queues {
			queues[i] = sim.QueueConfig{Algorithm: q.Algorithm, TimeSlice: intOrZero(q.TimeSlice)}
		}
	}

	mapping := sim.Mapping1to4
	if cfg != nil && cfg.PriorityMapping != "" {
		mapping = sim.ParsePriorityMapping(cfg.PriorityMapping)
	}
	return sim.NewMLQ(queues, mapping)
}

func buildMLFQ(cfg *PolicyConfig, timeSlice *int, warnings *[]string) (sim.Policy, error) {
	slices, err := resolveMLFQSlices(cfg, timeSlice, warnings)
	if err != nil {
		return nil, err
	}

	var levels [4]sim.QueueConfig
	for i := 0; i < 3; i++ {
		levels[i] = sim.QueueConfig{Algorithm: string(sim.SubRR), TimeSlice: slices[i]}
	}
	levels[3] = sim.QueueConfig{Algorithm: string(sim.SubFCFS)}

	return sim.NewMLFQ(levels)
}

// resolveMLFQSlices mirrors original_source's service.py fallback chain:
// explicit config.time_slices, else derived from config.queues, else
// [ts, 2ts, 4ts, nil] from the top-level time_slice, with a warning; the
// last slot is always forced to "no quantum" (FCFS level 3).
func resolveMLFQSlices(cfg *PolicyConfig, timeSlice *int, warnings *[]string) ([4]int, error) {
	var out [4]int

	var raw []*int
	if cfg != nil && len(cfg.TimeSlices) > 0 {
		raw = cfg.TimeSlices
	} else if cfg != nil && len(cfg.Queues) == 4 {
		raw = make([]*int, 4)
		for i, q := range cfg.Queues {
			raw[i] = q.TimeSlice
		}
	}

	if len(raw) != 4 {
		if timeSlice == nil {
			return out, &sim.ConfigError{Reason: "time_slice is required for MLFQ (or provide config.time_slices)"}
		}
		base := *timeSlice
		*warnings = append(*warnings, "MLFQ config time_slices missing/invalid; using default [ts, 2ts, 4ts, FCFS]")
		s := sim.DefaultMLFQSlices(base)
		return s, nil
	}

	for i := 0; i < 3; i++ {
		out[i] = intOrZero(raw[i])
	}
	out[3] = 0
	return out, nil
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
