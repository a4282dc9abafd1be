package sim

// HRRN (Highest Response Ratio Next) picks, among ready processes, the one
// maximizing (waiting + service) / service, ties broken by (arrival, pid).
// Non-preemptive. The ready set is a flat slice since every Select scans it
// in full regardless of backing structure.
type HRRN struct {
	ready []*ProcState
}

func NewHRRN() *HRRN { return &HRRN{} }

func (*HRRN) Name() string           { return "HRRN" }
func (*HRRN) PreemptOnArrival() bool { return false }

func (h *HRRN) OnArrival(p *ProcState, now int) {
	p.markReady(now)
	h.ready = append(h.ready, p)
}

func (h *HRRN) PutBack(p *ProcState, now int) { h.OnArrival(p, now) }

func (h *HRRN) Select(now int, current *ProcState) *ProcState {
	if current != nil {
		return current
	}
	if len(h.ready) == 0 {
		return nil
	}

	bestIdx := 0
	bestNum, bestDen := responseRatio(h.ready[0], now)
	for i := 1; i < len(h.ready); i++ {
		num, den := responseRatio(h.ready[i], now)
		// Compare num/den against bestNum/bestDen without floating point:
		// num*bestDen vs bestNum*den (both den are >= 1).
		cmp := num*bestDen - bestNum*den
		if cmp > 0 || (cmp == 0 && lessArrivalKey(h.ready[i], h.ready[bestIdx])) {
			bestIdx = i
			bestNum, bestDen = num, den
		}
	}

	p := h.ready[bestIdx]
	h.ready = append(h.ready[:bestIdx], h.ready[bestIdx+1:]...)
	return p
}

// responseRatio returns the ratio's numerator/denominator as integers:
// waiting = max(0, now-ReadySince); service = max(1, remaining).
func responseRatio(p *ProcState, now int) (waitingPlusService, service int) {
	waiting := now - p.ReadySince
	if waiting < 0 {
		waiting = 0
	}
	service = p.Remaining
	if service < 1 {
		service = 1
	}
	return waiting + service, service
}

func (*HRRN) MaxContinuousRun(p *ProcState, now int) int { return p.Remaining }

func (*HRRN) OnRun(p *ProcState, ranFor int, now int) {}

func (*HRRN) OnTimesliceExpired(p *ProcState, now int) {
	panic("HRRN has no time slice")
}
