package sim

// SJF (aka SPN — Shortest Process Next) dispatches the ready process with
// the least remaining time, ties broken by arrival then pid. Non-preemptive:
// once dispatched a process runs to completion.
type SJF struct {
	h procHeap
}

func NewSJF() *SJF {
	return &SJF{h: *newProcHeap()}
}

func (*SJF) Name() string           { return "SJF" }
func (*SJF) PreemptOnArrival() bool { return false }

func (s *SJF) OnArrival(p *ProcState, now int) {
	p.markReady(now)
	s.h.push(p)
}

func (s *SJF) PutBack(p *ProcState, now int) { s.OnArrival(p, now) }

func (s *SJF) Select(now int, current *ProcState) *ProcState {
	if current != nil {
		return current
	}
	return s.h.pop()
}

func (*SJF) MaxContinuousRun(p *ProcState, now int) int { return p.Remaining }

func (*SJF) OnRun(p *ProcState, ranFor int, now int) {}

func (*SJF) OnTimesliceExpired(p *ProcState, now int) {
	panic("SJF has no time slice")
}
