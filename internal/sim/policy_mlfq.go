package sim

// MLFQ dispatches strict priority across exactly 4 levels: levels 0..2 are
// RR queues with mandatory quanta, level 3 is FCFS with no quantum. A
// process is admitted at level 0 and demotes when its quantum is exhausted
// with work remaining; there is no promotion (§1 Non-goals). Higher-level
// arrivals preempt a lower-level runner at the next engine step.
type MLFQ struct {
	levels       [4]*queueAlgo
	demoteSlices [4]int // levels 0..2 hold the configured quantum; level 3 unused
}

// NewMLFQ builds an MLFQ policy from exactly 4 level configs; levels 0..2
// must carry a positive TimeSlice.
func NewMLFQ(levels [4]QueueConfig) (*MLFQ, error) {
	m := &MLFQ{}
	for i, cfg := range levels {
		if i < 3 {
			if cfg.TimeSlice <= 0 {
				return nil, &ConfigError{Reason: "MLFQ levels 0..2 require time_slice > 0"}
			}
			m.demoteSlices[i] = cfg.TimeSlice
		}
		qa, err := newQueueAlgo(cfg.Algorithm, cfg.TimeSlice)
		if err != nil {
			return nil, err
		}
		m.levels[i] = qa
	}
	return m, nil
}

func (*MLFQ) Name() string           { return "MLFQ" }
func (*MLFQ) PreemptOnArrival() bool { return false }

func (m *MLFQ) OnArrival(p *ProcState, now int) {
	p.Level = 0
	p.QuantumLeft = 0
	m.levels[0].add(p, now)
}

func (m *MLFQ) PutBack(p *ProcState, now int) {
	lvl := clamp(p.Level, 0, 3)
	m.levels[lvl].add(p, now)
}

func (m *MLFQ) Select(now int, current *ProcState) *ProcState {
	if current != nil && current.Level == 3 {
		return current
	}
	if current == nil {
		return m.pickHighest(now)
	}

	for lvl := 0; lvl < current.Level; lvl++ {
		if !m.levels[lvl].empty() {
			m.levels[current.Level].add(current, now)
			return m.pickHighest(now)
		}
	}
	return current
}

func (m *MLFQ) pickHighest(now int) *ProcState {
	for lvl := 0; lvl < 4; lvl++ {
		if m.levels[lvl].empty() {
			continue
		}
		p := m.levels[lvl].pick(now)
		if p == nil {
			continue
		}
		p.Level = lvl
		if lvl < 3 && p.QuantumLeft <= 0 {
			p.QuantumLeft = m.demoteSlices[lvl]
		}
		return p
	}
	return nil
}

func (m *MLFQ) MaxContinuousRun(p *ProcState, now int) int {
	if p.Level == 3 {
		return p.Remaining
	}
	ql := p.QuantumLeft
	if ql <= 0 {
		ql = m.demoteSlices[p.Level]
	}
	if p.Remaining < ql {
		return p.Remaining
	}
	return ql
}

func (m *MLFQ) OnRun(p *ProcState, ranFor int, now int) {
	if p.Level >= 3 {
		return
	}
	if p.QuantumLeft <= 0 {
		p.QuantumLeft = m.demoteSlices[p.Level]
	}
	p.QuantumLeft -= ranFor
}

func (m *MLFQ) OnTimesliceExpired(p *ProcState, now int) {
	if p.Level == 3 {
		m.levels[3].onTimesliceExpired(p, now)
		return
	}
	if p.QuantumLeft <= 0 {
		newLvl := p.Level + 1
		if newLvl > 3 {
			newLvl = 3
		}
		p.Level = newLvl
		p.QuantumLeft = 0
		m.levels[newLvl].add(p, now)
		return
	}
	m.levels[p.Level].onTimesliceExpired(p, now)
}

// DefaultMLFQSlices returns the §6 fallback: [ts, 2·ts, 4·ts, nil] given a
// base time slice.
func DefaultMLFQSlices(ts int) [4]int {
	return [4]int{ts, ts * 2, ts * 4, 0}
}
