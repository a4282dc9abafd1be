package sim

// unbounded signals "run until completion or arrival-driven preemption"
// from MaxContinuousRun; the engine caps it against Remaining regardless.
const unbounded = -1

// Policy owns the ready set for one scheduling discipline and answers the
// three questions the engine needs each step: who runs next, for how long
// continuously, and what to do when a slice expires. See SPEC_FULL.md §4.1.
type Policy interface {
	// Name identifies the policy for logging and the response's "algorithm"
	// field.
	Name() string

	// PreemptOnArrival reports whether a new arrival may displace the
	// running process (true only for SRTF among the built-ins).
	PreemptOnArrival() bool

	// OnArrival admits a newly arrived process into the ready set, stamping
	// ReadySince.
	OnArrival(p *ProcState, now int)

	// PutBack re-admits a process the engine displaced (arrival-driven
	// preemption or a queue-level bump). The single-queue built-ins treat it
	// as OnArrival; MLQ and MLFQ re-admit to the process's current level.
	PutBack(p *ProcState, now int)

	// Select returns the process that should hold the CPU at now. current,
	// when non-nil, is the presently running process; a preemption-capable
	// policy may displace it (re-admitting it via PutBack) in favor of a
	// better ready candidate. Returns nil when nothing is runnable.
	Select(now int, current *ProcState) *ProcState

	// MaxContinuousRun returns the longest run length before the engine
	// must consult the policy again, or unbounded.
	MaxContinuousRun(p *ProcState, now int) int

	// OnRun notifies the policy that p ran for ranFor units ending at now.
	OnRun(p *ProcState, ranFor int, now int)

	// OnTimesliceExpired re-admits p (possibly to a different queue) after
	// its slice ended with work remaining.
	OnTimesliceExpired(p *ProcState, now int)
}
