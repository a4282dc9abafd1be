package sim

import "strings"

// PriorityMapping selects how a process's user-supplied Priority maps to one
// of MLQ's 4 fixed queue indices (0 highest .. 3 lowest).
type PriorityMapping string

const (
	Mapping1to4 PriorityMapping = "1-4"
	Mapping0to3 PriorityMapping = "0-3"
)

// QueueConfig describes one of MLQ/MLFQ's 4 fixed queues/levels.
type QueueConfig struct {
	Algorithm string
	TimeSlice int // 0 means "not set"
}

// MLQ dispatches strict priority across exactly 4 fixed queues, each with
// its own internal discipline. A process's queue is fixed at admission by
// PriorityMapping and never ages. Preemption: a newly-runnable higher
// queue displaces the running process, which is re-admitted to the tail of
// its own queue; the bottom queue (index 3) is self-non-preemptive.
type MLQ struct {
	queues   [4]*queueAlgo
	mapping  PriorityMapping
}

// NewMLQ builds an MLQ policy from exactly 4 queue configs.
func NewMLQ(queues [4]QueueConfig, mapping PriorityMapping) (*MLQ, error) {
	if mapping != Mapping0to3 {
		mapping = Mapping1to4
	}
	m := &MLQ{mapping: mapping}
	for i, cfg := range queues {
		qa, err := newQueueAlgo(cfg.Algorithm, cfg.TimeSlice)
		if err != nil {
			return nil, err
		}
		m.queues[i] = qa
	}
	return m, nil
}

func (*MLQ) Name() string           { return "MLQ" }
func (*MLQ) PreemptOnArrival() bool { return false }

func (m *MLQ) mapPriority(priority *int) int {
	if priority == nil {
		return 3
	}
	p := *priority
	if m.mapping == Mapping0to3 {
		return clamp(p, 0, 3)
	}
	return clamp(p-1, 0, 3)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (m *MLQ) OnArrival(p *ProcState, now int) {
	lvl := m.mapPriority(p.Priority)
	p.Level = lvl
	m.queues[lvl].add(p, now)
}

func (m *MLQ) PutBack(p *ProcState, now int) {
	lvl := clamp(p.Level, 0, 3)
	m.queues[lvl].add(p, now)
}

func (m *MLQ) Select(now int, current *ProcState) *ProcState {
	if current != nil && current.Level == 3 {
		return current
	}
	if current == nil {
		return m.pickHighest(now)
	}

	for q := 0; q < current.Level; q++ {
		if !m.queues[q].empty() {
			m.queues[current.Level].add(current, now)
			return m.pickHighest(now)
		}
	}
	return current
}

func (m *MLQ) pickHighest(now int) *ProcState {
	for q := 0; q < 4; q++ {
		if !m.queues[q].empty() {
			p := m.queues[q].pick(now)
			if p != nil {
				p.Level = q
			}
			return p
		}
	}
	return nil
}

func (m *MLQ) MaxContinuousRun(p *ProcState, now int) int {
	return m.queues[p.Level].maxRun(p)
}

func (m *MLQ) OnRun(p *ProcState, ranFor int, now int) {}

func (m *MLQ) OnTimesliceExpired(p *ProcState, now int) {
	m.queues[p.Level].onTimesliceExpired(p, now)
}

// DefaultMLQQueues returns the §6 fallback: [RR, RR, FCFS, FCFS] with both
// RR queues at the given time slice.
func DefaultMLQQueues(timeSlice int) [4]QueueConfig {
	return [4]QueueConfig{
		{Algorithm: string(SubRR), TimeSlice: timeSlice},
		{Algorithm: string(SubRR), TimeSlice: timeSlice},
		{Algorithm: string(SubFCFS)},
		{Algorithm: string(SubFCFS)},
	}
}

// ParsePriorityMapping normalizes a raw config string, defaulting to "1-4"
// for anything other than an exact "0-3" match.
func ParsePriorityMapping(raw string) PriorityMapping {
	if strings.TrimSpace(raw) == string(Mapping0to3) {
		return Mapping0to3
	}
	return Mapping1to4
}
