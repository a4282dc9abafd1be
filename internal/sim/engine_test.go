package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitingTimes(t *testing.T, result *Result, order []string) []int {
	t.Helper()
	byPID := make(map[string]*ProcState, len(result.Procs))
	for _, p := range result.Procs {
		byPID[p.PID] = p
	}
	out := make([]int, len(order))
	for i, pid := range order {
		p := byPID[pid]
		require.NotNil(t, p)
		require.NotNil(t, p.Completion)
		out[i] = (*p.Completion - p.ArrivalTime) - p.BurstTime
	}
	return out
}

func segmentStrings(segments []Segment) []string {
	out := make([]string, len(segments))
	for i, s := range segments {
		out[i] = s.Label.String()
	}
	return out
}

func TestEngine_FCFS_NoContextSwitch(t *testing.T) {
	processes := []Process{
		{PID: "P1", ArrivalTime: 0, BurstTime: 5},
		{PID: "P2", ArrivalTime: 0, BurstTime: 3},
		{PID: "P3", ArrivalTime: 0, BurstTime: 8},
	}
	engine := NewEngine(nil, 0)
	result, err := engine.Simulate(processes, NewFCFS())
	require.NoError(t, err)

	require.Len(t, result.Segments, 3)
	assert.Equal(t, Segment{Start: 0, End: 5, Label: pidLabel("P1")}, result.Segments[0])
	assert.Equal(t, Segment{Start: 5, End: 8, Label: pidLabel("P2")}, result.Segments[1])
	assert.Equal(t, Segment{Start: 8, End: 16, Label: pidLabel("P3")}, result.Segments[2])

	wt := waitingTimes(t, result, []string{"P1", "P2", "P3"})
	assert.Equal(t, []int{0, 5, 8}, wt)
}

func TestEngine_SJF(t *testing.T) {
	processes := []Process{
		{PID: "P1", ArrivalTime: 0, BurstTime: 6},
		{PID: "P2", ArrivalTime: 0, BurstTime: 8},
		{PID: "P3", ArrivalTime: 0, BurstTime: 7},
		{PID: "P4", ArrivalTime: 0, BurstTime: 3},
	}
	engine := NewEngine(nil, 0)
	result, err := engine.Simulate(processes, NewSJF())
	require.NoError(t, err)

	assert.Equal(t, []string{"P4", "P1", "P3", "P2"}, segmentStrings(result.Segments))

	wt := waitingTimes(t, result, []string{"P1", "P2", "P3", "P4"})
	var sum int
	for _, w := range wt {
		sum += w
	}
	assert.InDelta(t, 7.0, float64(sum)/4.0, 1e-9)
}

func TestEngine_RR_Quantum4(t *testing.T) {
	processes := []Process{
		{PID: "P1", ArrivalTime: 0, BurstTime: 24},
		{PID: "P2", ArrivalTime: 0, BurstTime: 3},
		{PID: "P3", ArrivalTime: 0, BurstTime: 3},
	}
	rr, err := NewRR(4)
	require.NoError(t, err)

	engine := NewEngine(nil, 0)
	result, err := engine.Simulate(processes, rr)
	require.NoError(t, err)

	wt := waitingTimes(t, result, []string{"P1", "P2", "P3"})
	assert.Equal(t, []int{6, 4, 7}, wt)
}

func TestEngine_SRTF_PreemptsOnArrival(t *testing.T) {
	processes := []Process{
		{PID: "P1", ArrivalTime: 0, BurstTime: 8},
		{PID: "P2", ArrivalTime: 1, BurstTime: 4},
		{PID: "P3", ArrivalTime: 2, BurstTime: 9},
		{PID: "P4", ArrivalTime: 3, BurstTime: 5},
	}
	engine := NewEngine(nil, 0)
	result, err := engine.Simulate(processes, NewSRTF())
	require.NoError(t, err)

	byPID := make(map[string]*ProcState, len(result.Procs))
	for _, p := range result.Procs {
		byPID[p.PID] = p
	}
	assert.Equal(t, 17, *byPID["P1"].Completion)
	assert.Equal(t, 5, *byPID["P2"].Completion)
	assert.Equal(t, 26, *byPID["P3"].Completion)
	assert.Equal(t, 10, *byPID["P4"].Completion)
}

func TestEngine_FCFS_ContextSwitch(t *testing.T) {
	processes := []Process{
		{PID: "A", ArrivalTime: 0, BurstTime: 3},
		{PID: "B", ArrivalTime: 0, BurstTime: 2},
	}
	engine := NewEngine(nil, 2)
	result, err := engine.Simulate(processes, NewFCFS())
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "CS", "B"}, segmentStrings(result.Segments))
	assert.Equal(t, Segment{Start: 3, End: 5, Label: CSLabel}, result.Segments[1])
	assert.Equal(t, Segment{Start: 5, End: 7, Label: pidLabel("B")}, result.Segments[2])

	wt := waitingTimes(t, result, []string{"A", "B"})
	assert.InDelta(t, 2.5, float64(wt[0]+wt[1])/2.0, 1e-9)
}

func TestEngine_MLFQ_SingleProcessDemotesThenFinishes(t *testing.T) {
	levels := [4]QueueConfig{
		{Algorithm: "RR", TimeSlice: 2},
		{Algorithm: "RR", TimeSlice: 4},
		{Algorithm: "RR", TimeSlice: 8},
		{Algorithm: "FCFS"},
	}
	mlfq, err := NewMLFQ(levels)
	require.NoError(t, err)

	engine := NewEngine(nil, 0)
	result, err := engine.Simulate([]Process{{PID: "P1", ArrivalTime: 0, BurstTime: 10}}, mlfq)
	require.NoError(t, err)

	// Runs [0,2) at L0, [2,6) at L1 and [6,10) at L2 are adjacent with the
	// same label, so they merge into one segment; the demotions show in Level.
	require.Len(t, result.Segments, 1)
	assert.Equal(t, Segment{Start: 0, End: 10, Label: pidLabel("P1")}, result.Segments[0])
	assert.Equal(t, 2, result.Procs[0].Level)
	assert.Equal(t, 10, *result.Procs[0].Completion)
}

func TestEngine_EmptyProcessList(t *testing.T) {
	engine := NewEngine(nil, 0)
	result, err := engine.Simulate(nil, NewFCFS())
	require.NoError(t, err)
	assert.Empty(t, result.Segments)
	assert.Empty(t, result.Procs)
}

func TestEngine_IdleGapBeforeFirstArrival(t *testing.T) {
	processes := []Process{{PID: "P1", ArrivalTime: 5, BurstTime: 2}}
	engine := NewEngine(nil, 0)
	result, err := engine.Simulate(processes, NewFCFS())
	require.NoError(t, err)

	require.Len(t, result.Segments, 2)
	assert.Equal(t, IdleLabel, result.Segments[0].Label)
	assert.Equal(t, 0, result.Segments[0].Start)
	assert.Equal(t, 5, result.Segments[0].End)
	assert.Equal(t, pidLabel("P1"), result.Segments[1].Label)
}
