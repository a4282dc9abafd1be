package dto

import "github.com/edirooss/zmux-server/internal/sim"

// GanttEntry is one wire Gantt segment, §6 — sentinel pids "IDLE"/"CS"
// appear literally here, rendered from sim.Label.String().
type GanttEntry struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	PID   string `json:"pid"`
}

// ProcessMetricsOut is one process's timing figures, §6.
type ProcessMetricsOut struct {
	PID            string `json:"pid"`
	WaitingTime    int    `json:"waiting_time"`
	TurnaroundTime int    `json:"turnaround_time"`
	ResponseTime   int    `json:"response_time"`
	CompletionTime int    `json:"completion_time"`
}

// SchedulingResponse is the `/execute` response body, §6.
type SchedulingResponse struct {
	Algorithm string              `json:"algorithm"`
	Gantt     []GanttEntry        `json:"gantt"`
	Metrics   []ProcessMetricsOut `json:"metrics"`

	AvgWaitingTime    float64 `json:"avg_waiting_time"`
	AvgTurnaroundTime float64 `json:"avg_turnaround_time"`
	AvgResponseTime   float64 `json:"avg_response_time"`

	CPUUtilization *float64 `json:"cpu_utilization"`
	Throughput     *float64 `json:"throughput"`

	Warnings []string `json:"warnings"`
}

// CompareRow is one algorithm's summary line in the `/compare` response.
type CompareRow struct {
	Algorithm         string   `json:"algorithm"`
	AvgWaitingTime    float64  `json:"avg_waiting_time"`
	AvgTurnaroundTime float64  `json:"avg_turnaround_time"`
	AvgResponseTime   float64  `json:"avg_response_time"`
	CPUUtilization    *float64 `json:"cpu_utilization"`
	Throughput        *float64 `json:"throughput"`
}

// NewSchedulingResponse assembles the wire response from the core's
// outputs, in the pid order processes were requested in.
func NewSchedulingResponse(algorithm string, result *sim.Result, metrics *sim.Metrics, warnings []string) SchedulingResponse {
	gantt := make([]GanttEntry, 0, len(result.Segments))
	for _, s := range result.Segments {
		gantt = append(gantt, GanttEntry{Start: s.Start, End: s.End, PID: s.Label.String()})
	}

	pm := make([]ProcessMetricsOut, 0, len(metrics.Processes))
	for _, m := range metrics.Processes {
		pm = append(pm, ProcessMetricsOut{
			PID:            m.PID,
			WaitingTime:    m.WaitingTime,
			TurnaroundTime: m.TurnaroundTime,
			ResponseTime:   m.ResponseTime,
			CompletionTime: m.CompletionTime,
		})
	}

	if warnings == nil {
		warnings = []string{}
	}

	return SchedulingResponse{
		Algorithm:         algorithm,
		Gantt:             gantt,
		Metrics:           pm,
		AvgWaitingTime:    metrics.Averages.AvgWaitingTime,
		AvgTurnaroundTime: metrics.Averages.AvgTurnaroundTime,
		AvgResponseTime:   metrics.Averages.AvgResponseTime,
		CPUUtilization:    metrics.System.CPUUtilization,
		Throughput:        metrics.System.Throughput,
		Warnings:          warnings,
	}
}

func (r SchedulingResponse) ToCompareRow() CompareRow {
	return CompareRow{
		Algorithm:         r.Algorithm,
		AvgWaitingTime:    r.AvgWaitingTime,
		AvgTurnaroundTime: r.AvgTurnaroundTime,
		AvgResponseTime:   r.AvgResponseTime,
		CPUUtilization:    r.CPUUtilization,
		Throughput:        r.Throughput,
	}
}
