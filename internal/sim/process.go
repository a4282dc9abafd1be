package sim

// Process is the immutable input describing a single schedulable unit of
// work. PID must be unique within a run; ArrivalTime is non-negative;
// BurstTime is positive; Priority is only meaningful to MLQ (its queue
// mapping).
type Process struct {
	PID         string
	ArrivalTime int
	BurstTime   int
	Priority    *int
}

// ProcState is the mutable runtime record the engine and policies share.
// A policy never owns a ProcState; it only holds references into the
// engine's canonical slice while the process sits in its ready set.
type ProcState struct {
	Process

	Remaining   int
	FirstStart  *int
	Completion  *int
	ReadySince  int
	Level       int
	QuantumLeft int
}

func newProcState(p Process) *ProcState {
	return &ProcState{
		Process:   p,
		Remaining: p.BurstTime,
	}
}

func (p *ProcState) markReady(now int) {
	p.ReadySince = now
}

// arrivalKey is the (arrival_time, pid) tuple used for deterministic
// tie-breaking of admissions (and so FCFS order) and HRRN ratio ties.
func (p *ProcState) arrivalKey() (int, string) {
	return p.ArrivalTime, p.PID
}

// remainingKey is the (remaining, arrival_time, pid) tuple SJF/SRTF order by.
func (p *ProcState) remainingKey() (int, int, string) {
	return p.Remaining, p.ArrivalTime, p.PID
}

func lessRemainingKey(a, b *ProcState) bool {
	ar, aa, ap := a.remainingKey()
	br, ba, bp := b.remainingKey()
	if ar != br {
		return ar < br
	}
	if aa != ba {
		return aa < ba
	}
	return ap < bp
}

func lessArrivalKey(a, b *ProcState) bool {
	aa, ap := a.arrivalKey()
	ba, bp := b.arrivalKey()
	if aa != ba {
		return aa < ba
	}
	return ap < bp
}
