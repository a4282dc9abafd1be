package sim

// ProcessMetrics holds the four per-process timing figures derived from a
// completed run, §4.3.
type ProcessMetrics struct {
	PID             string
	WaitingTime     int
	TurnaroundTime  int
	ResponseTime    int
	CompletionTime  int
}

// Averages holds the arithmetic means of the three per-process metrics.
type Averages struct {
	AvgWaitingTime    float64
	AvgTurnaroundTime float64
	AvgResponseTime   float64
}

// SystemMetrics holds the aggregate figures derived from the segment
// timeline: CPU utilization and throughput are nil when not meaningful
// (zero total time / zero makespan respectively).
type SystemMetrics struct {
	CPUUtilization *float64
	Throughput     *float64
}

// Metrics is the full output of the metrics builder for one run.
type Metrics struct {
	Processes []ProcessMetrics
	Averages  Averages
	System    SystemMetrics
}

// BuildMetrics derives per-process and aggregate metrics from a completed
// Result. The input order of `order` controls the order of the returned
// per-process slice (callers typically pass the original request order).
func BuildMetrics(result *Result, order []string) (*Metrics, error) {
	byPID := make(map[string]*ProcState, len(result.Procs))
	for _, p := range result.Procs {
		byPID[p.PID] = p
	}

	procMetrics := make([]ProcessMetrics, 0, len(order))
	var sumWT, sumTAT, sumRT int
	for _, pid := range order {
		p, ok := byPID[pid]
		if !ok {
			return nil, &InvariantError{PID: pid, Reason: "unknown process in metrics order"}
		}
		if p.Completion == nil || p.FirstStart == nil {
			return nil, &InvariantError{PID: pid, Reason: "did not complete"}
		}
		ct := *p.Completion
		tat := ct - p.ArrivalTime
		wt := tat - p.BurstTime
		rt := *p.FirstStart - p.ArrivalTime

		procMetrics = append(procMetrics, ProcessMetrics{
			PID:            pid,
			WaitingTime:    wt,
			TurnaroundTime: tat,
			ResponseTime:   rt,
			CompletionTime: ct,
		})
		sumWT += wt
		sumTAT += tat
		sumRT += rt
	}

	n := len(procMetrics)
	divisor := n
	if divisor == 0 {
		divisor = 1
	}
	averages := Averages{
		AvgWaitingTime:    float64(sumWT) / float64(divisor),
		AvgTurnaroundTime: float64(sumTAT) / float64(divisor),
		AvgResponseTime:   float64(sumRT) / float64(divisor),
	}

	system := buildSystemMetrics(result.Segments, result.Procs)

	return &Metrics{Processes: procMetrics, Averages: averages, System: system}, nil
}

func buildSystemMetrics(segments []Segment, procs []*ProcState) SystemMetrics {
	if len(segments) == 0 {
		return SystemMetrics{}
	}

	totalTime := segments[len(segments)-1].End - segments[0].Start
	idleTime := 0
	for _, s := range segments {
		if s.Label.Kind == LabelIdle {
			idleTime += s.End - s.Start
		}
	}

	var sys SystemMetrics
	if totalTime > 0 {
		u := float64(totalTime-idleTime) / float64(totalTime)
		sys.CPUUtilization = &u
	}

	if len(procs) > 0 {
		minArrival := procs[0].ArrivalTime
		maxCompletion := 0
		for _, p := range procs {
			if p.ArrivalTime < minArrival {
				minArrival = p.ArrivalTime
			}
			if p.Completion != nil && *p.Completion > maxCompletion {
				maxCompletion = *p.Completion
			}
		}
		makespan := maxCompletion - minArrival
		if makespan > 0 {
			t := float64(len(procs)) / float64(makespan)
			sys.Throughput = &t
		}
	}

	return sys
}
