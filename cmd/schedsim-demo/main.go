package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/edirooss/zmux-server/internal/api/dto"
	"github.com/edirooss/zmux-server/internal/service"
)

// Demo processes, used when -file is not given.
var sampleProcesses = []dto.ProcessIn{
	{PID: "P1", ArrivalTime: 0, BurstTime: 7},
	{PID: "P2", ArrivalTime: 2, BurstTime: 4},
	{PID: "P3", ArrivalTime: 4, BurstTime: 1},
	{PID: "P4", ArrivalTime: 5, BurstTime: 4},
}

func main() {
	algorithm := flag.String("algorithm", "FCFS", "scheduling algorithm (FCFS, SJF, SPN, SRTF, HRRN, RR, MLQ, MLFQ)")
	file := flag.String("file", "", "path to a JSON process list; defaults to a built-in sample")
	contextSwitch := flag.Int("context-switch", 0, "context switch time")
	timeSlice := flag.Int("time-slice", 0, "time slice, for RR/MLQ/MLFQ")
	flag.Parse()

	log := buildLogger()
	log = log.Named("main")

	processes := sampleProcesses
	if *file != "" {
		data, err := os.ReadFile(*file)
		if err != nil {
			log.Fatal("failed to read process file", zap.String("file", *file), zap.Error(err))
		}
		if err := json.Unmarshal(data, &processes); err != nil {
			log.Fatal("failed to parse process file", zap.String("file", *file), zap.Error(err))
		}
	}

	req := dto.SchedulingRequest{
		Algorithm:         *algorithm,
		Processes:         processes,
		ContextSwitchTime: *contextSwitch,
	}
	if *timeSlice > 0 {
		ts := *timeSlice
		req.TimeSlice = &ts
	}
	req.ApplyDefaults()

	svc := service.NewSimulationService(log, nil)
	resp, err := svc.Execute(req)
	if err != nil {
		log.Fatal("simulation failed", zap.String("algorithm", *algorithm), zap.Error(err))
	}

	printReport(resp)
}

func printReport(resp *dto.SchedulingResponse) {
	fmt.Printf("algorithm: %s\n\n", resp.Algorithm)

	fmt.Println("gantt chart:")
	for _, seg := range resp.Gantt {
		fmt.Printf("  [%3d, %3d)  %s\n", seg.Start, seg.End, seg.PID)
	}

	fmt.Println("\nper-process metrics:")
	for _, m := range resp.Metrics {
		fmt.Printf("  %-8s waiting=%-4d turnaround=%-4d response=%-4d completion=%-4d\n",
			m.PID, m.WaitingTime, m.TurnaroundTime, m.ResponseTime, m.CompletionTime)
	}

	fmt.Printf("\naverages: waiting=%.2f turnaround=%.2f response=%.2f\n",
		resp.AvgWaitingTime, resp.AvgTurnaroundTime, resp.AvgResponseTime)

	if resp.CPUUtilization != nil {
		fmt.Printf("cpu utilization: %.2f%%\n", *resp.CPUUtilization*100)
	}
	if resp.Throughput != nil {
		fmt.Printf("throughput: %.4f processes/unit-time\n", *resp.Throughput)
	}
	for _, w := range resp.Warnings {
		fmt.Printf("warning: %s\n", w)
	}
}

func buildLogger() *zap.Logger {
	logConfig := zap.NewDevelopmentConfig()
	logConfig.EncoderConfig.TimeKey = ""
	logConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	logConfig.DisableStacktrace = true
	logConfig.DisableCaller = true
	logConfig.Level.SetLevel(zap.InfoLevel)
	return zap.Must(logConfig.Build())
}
