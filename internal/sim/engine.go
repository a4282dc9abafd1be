package sim

import (
	"sort"

	"go.uber.org/zap"
)

// Engine drives simulated time forward for one run: it owns the canonical
// ProcState storage, the arrival cursor, and the segment buffer, and
// delegates every selection/preemption decision to a Policy. See
// SPEC_FULL.md §4.2 for the step-by-step contract this implements.
type Engine struct {
	log               *zap.Logger
	contextSwitchTime int
}

// NewEngine constructs an Engine. log may be nil, in which case a no-op
// logger is used (matches the teacher's pattern of threading *zap.Logger
// through constructors rather than reaching for a global).
func NewEngine(log *zap.Logger, contextSwitchTime int) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{log: log, contextSwitchTime: contextSwitchTime}
}

// Result is the engine's output: the merged Gantt segments and the ProcState
// records built from the input processes, now carrying FirstStart/Completion.
type Result struct {
	Segments []Segment
	Procs    []*ProcState
}

// Simulate runs one scheduling policy over processes to completion. It is
// synchronous, mutates only the ProcState records it builds from
// processes, and is safe to call concurrently from multiple goroutines as
// long as they operate on disjoint arguments (§5).
func (e *Engine) Simulate(processes []Process, policy Policy) (*Result, error) {
	n := len(processes)
	if n == 0 {
		return &Result{}, nil
	}

	procs := make([]*ProcState, n)
	for i, p := range processes {
		procs[i] = newProcState(p)
	}

	byArrival := append([]*ProcState(nil), procs...)
	sort.Slice(byArrival, func(i, j int) bool {
		return lessArrivalKey(byArrival[i], byArrival[j])
	})

	var (
		time       int
		cursor     int
		current    *ProcState
		segments   []Segment
		lastRunPID string
		haveLast   bool
		lastRunEnd int
		done       int
	)

	nextArrivalTime := func() (int, bool) {
		if cursor < n {
			return byArrival[cursor].ArrivalTime, true
		}
		return 0, false
	}

	pushArrivals := func(upTo int) {
		for cursor < n && byArrival[cursor].ArrivalTime <= upTo {
			p := byArrival[cursor]
			policy.OnArrival(p, p.ArrivalTime)
			cursor++
		}
	}

	emitIdleTo := func(until int) {
		segments = append(segments, Segment{Start: time, End: until, Label: IdleLabel})
		time = until
		haveLast = false
	}

	firstArrival := byArrival[0].ArrivalTime
	if firstArrival > 0 {
		segments = append(segments, Segment{Start: 0, End: firstArrival, Label: IdleLabel})
		time = firstArrival
	}

	for done < n {
		pushArrivals(time)

		selected := policy.Select(time, current)
		if selected == nil {
			na, ok := nextArrivalTime()
			if !ok {
				break
			}
			if na > time {
				emitIdleTo(na)
			}
			current = nil
			continue
		}

		if current != nil && selected.PID != current.PID {
			current = nil
		}

		if e.contextSwitchTime > 0 &&
			haveLast && lastRunPID != selected.PID &&
			lastRunEnd == time &&
			len(segments) > 0 &&
			segments[len(segments)-1].Label.Kind == LabelPID {

			csEnd := time + e.contextSwitchTime
			segments = append(segments, Segment{Start: time, End: csEnd, Label: CSLabel})
			time = csEnd
			pushArrivals(time)
			haveLast = false
		}

		if selected.FirstStart == nil {
			fs := time
			selected.FirstStart = &fs
		}

		maxRun := policy.MaxContinuousRun(selected, time)
		if maxRun < 0 {
			maxRun = selected.Remaining
		}
		if selected.Remaining < maxRun {
			maxRun = selected.Remaining
		}

		var stopAtArrival int
		stopping := false
		if policy.PreemptOnArrival() {
			if na, ok := nextArrivalTime(); ok && na > time {
				stopAtArrival = na
				stopping = true
				if na-time < maxRun {
					maxRun = na - time
				}
			}
		}

		if maxRun <= 0 {
			na, ok := nextArrivalTime()
			if !ok {
				break
			}
			if na > time {
				emitIdleTo(na)
			}
			current = nil
			continue
		}

		start := time
		end := time + maxRun
		segments = append(segments, Segment{Start: start, End: end, Label: pidLabel(selected.PID)})
		lastRunPID = selected.PID
		lastRunEnd = end
		haveLast = true

		time = end
		selected.Remaining -= maxRun
		policy.OnRun(selected, maxRun, time)
		pushArrivals(time)

		if selected.Remaining == 0 {
			ct := time
			selected.Completion = &ct
			done++
			current = nil
			continue
		}

		if policy.PreemptOnArrival() && stopping && time == stopAtArrival {
			current = selected
			continue
		}

		policy.OnTimesliceExpired(selected, time)
		current = nil
	}

	segments = trimTrailingSynthetic(segments)
	segments = mergeSegments(segments)

	if err := e.verifyCompletion(procs); err != nil {
		return nil, err
	}

	return &Result{Segments: segments, Procs: procs}, nil
}

// trimTrailingSynthetic folds a trailing "..., CS, IDLE" pair into one IDLE
// segment, and drops a lone trailing CS — a run can't end mid-switch.
func trimTrailingSynthetic(segments []Segment) []Segment {
	if len(segments) >= 2 {
		cs := segments[len(segments)-2]
		idle := segments[len(segments)-1]
		if cs.Label.Kind == LabelContextSwitch && idle.Label.Kind == LabelIdle {
			segments = segments[:len(segments)-2]
			segments = append(segments, Segment{Start: cs.Start, End: idle.End, Label: IdleLabel})
			return segments
		}
	}
	if len(segments) >= 1 && segments[len(segments)-1].Label.Kind == LabelContextSwitch {
		segments = segments[:len(segments)-1]
	}
	return segments
}

func (e *Engine) verifyCompletion(procs []*ProcState) error {
	for _, p := range procs {
		if p.Completion == nil || p.FirstStart == nil {
			e.log.Error("simulation invariant violation: process did not complete",
				zap.String("pid", p.PID))
			return &InvariantError{PID: p.PID, Reason: "did not complete"}
		}
	}
	return nil
}
