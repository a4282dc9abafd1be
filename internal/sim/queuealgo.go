package sim

import "strings"

// SubAlgo is a per-level/per-queue discipline string as accepted in
// MLQ/MLFQ config: FCFS, SJF/SPN, RR, or HRRN. Unrecognized strings fall
// back to FCFS silently — a documented design choice, §7.
type SubAlgo string

const (
	SubFCFS SubAlgo = "FCFS"
	SubSJF  SubAlgo = "SJF"
	SubRR   SubAlgo = "RR"
	SubHRRN SubAlgo = "HRRN"
)

func normalizeSubAlgo(raw string) SubAlgo {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "RR":
		return SubRR
	case "SJF", "SPN":
		return SubSJF
	case "HRRN":
		return SubHRRN
	case "FCFS":
		return SubFCFS
	default:
		return SubFCFS
	}
}

// queueAlgo is the restricted-interface sub-policy MLQ and MLFQ embed for
// each of their 4 internal queues/levels. It is not a Policy: it has no
// notion of preemption or arrival timing beyond add/pick, matching §9's
// design note that this should be "an embedded policy with a restricted
// interface, not a parallel hierarchy".
type queueAlgo struct {
	algo    SubAlgo
	quantum int // only meaningful when algo == SubRR

	fifo  fcfsQueue
	heap  procHeap
	ready []*ProcState
}

// newQueueAlgo builds a sub-queue for one MLQ/MLFQ level. quantum is
// required (>0) when algo resolves to RR; pass 0 otherwise.
func newQueueAlgo(rawAlgo string, quantum int) (*queueAlgo, error) {
	algo := normalizeSubAlgo(rawAlgo)
	if algo == SubRR && quantum <= 0 {
		return nil, &ConfigError{Reason: "RR queue requires time_slice > 0"}
	}
	qa := &queueAlgo{algo: algo, quantum: quantum}
	if algo == SubSJF {
		qa.heap = *newProcHeap()
	}
	return qa, nil
}

func (q *queueAlgo) add(p *ProcState, now int) {
	p.markReady(now)
	switch q.algo {
	case SubRR, SubFCFS:
		q.fifo.add(p)
	case SubSJF:
		q.heap.push(p)
	default: // SubHRRN
		q.ready = append(q.ready, p)
	}
}

func (q *queueAlgo) empty() bool {
	switch q.algo {
	case SubRR, SubFCFS:
		return q.fifo.empty()
	case SubSJF:
		return q.heap.empty()
	default:
		return len(q.ready) == 0
	}
}

func (q *queueAlgo) pick(now int) *ProcState {
	switch q.algo {
	case SubRR, SubFCFS:
		return q.fifo.pop()
	case SubSJF:
		return q.heap.pop()
	default:
		return q.pickHRRN(now)
	}
}

func (q *queueAlgo) pickHRRN(now int) *ProcState {
	if len(q.ready) == 0 {
		return nil
	}
	bestIdx := 0
	bestNum, bestDen := responseRatio(q.ready[0], now)
	for i := 1; i < len(q.ready); i++ {
		num, den := responseRatio(q.ready[i], now)
		cmp := num*bestDen - bestNum*den
		if cmp > 0 || (cmp == 0 && lessArrivalKey(q.ready[i], q.ready[bestIdx])) {
			bestIdx = i
			bestNum, bestDen = num, den
		}
	}
	p := q.ready[bestIdx]
	q.ready = append(q.ready[:bestIdx], q.ready[bestIdx+1:]...)
	return p
}

func (q *queueAlgo) maxRun(p *ProcState) int {
	if q.algo == SubRR {
		if p.Remaining < q.quantum {
			return p.Remaining
		}
		return q.quantum
	}
	return p.Remaining
}

func (q *queueAlgo) onTimesliceExpired(p *ProcState, now int) {
	q.add(p, now)
}
