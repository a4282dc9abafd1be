package sim

// SRTF (Shortest Remaining Time First) is SJF's preemptive sibling: a new
// arrival with less remaining time than the running process displaces it
// immediately. Ties broken by (remaining, arrival, pid), same as SJF.
type SRTF struct {
	h procHeap
}

func NewSRTF() *SRTF {
	return &SRTF{h: *newProcHeap()}
}

func (*SRTF) Name() string           { return "SRTF" }
func (*SRTF) PreemptOnArrival() bool { return true }

func (s *SRTF) OnArrival(p *ProcState, now int) {
	p.markReady(now)
	s.h.push(p)
}

func (s *SRTF) PutBack(p *ProcState, now int) { s.OnArrival(p, now) }

func (s *SRTF) Select(now int, current *ProcState) *ProcState {
	if current == nil {
		return s.h.pop()
	}
	top := s.h.peek()
	if top == nil {
		return current
	}
	if lessRemainingKey(top, current) {
		s.h.push(current)
		return s.h.pop()
	}
	return current
}

func (*SRTF) MaxContinuousRun(p *ProcState, now int) int { return p.Remaining }

func (*SRTF) OnRun(p *ProcState, ranFor int, now int) {}

func (*SRTF) OnTimesliceExpired(p *ProcState, now int) {
	panic("SRTF does not use fixed time slices")
}
