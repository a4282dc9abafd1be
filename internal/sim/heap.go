package sim

import "container/heap"

// procHeap is a min-heap of *ProcState ordered by (remaining, arrival, pid),
// the key SJF/SPN and SRTF (and their MLQ/MLFQ sub-queue equivalents) pick
// by. Shaped after the scheduler's internal event heap: a slice-backed
// container/heap.Interface. Elements carry no index field, since the
// simulation core only ever pushes and pops — no mid-heap removal is needed.
type procHeap []*ProcState

func (h procHeap) Len() int { return len(h) }

func (h procHeap) Less(i, j int) bool {
	return lessRemainingKey(h[i], h[j])
}

func (h procHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *procHeap) Push(x any) {
	*h = append(*h, x.(*ProcState))
}

func (h *procHeap) Pop() any {
	old := *h
	n := len(old)
	p := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return p
}

// newProcHeap returns an initialized, empty heap ready for Push/Pop.
func newProcHeap() *procHeap {
	h := &procHeap{}
	heap.Init(h)
	return h
}

func (h *procHeap) push(p *ProcState) { heap.Push(h, p) }

func (h *procHeap) pop() *ProcState {
	if h.Len() == 0 {
		return nil
	}
	return heap.Pop(h).(*ProcState)
}

func (h *procHeap) peek() *ProcState {
	if h.Len() == 0 {
		return nil
	}
	return (*h)[0]
}

func (h *procHeap) empty() bool { return h.Len() == 0 }
