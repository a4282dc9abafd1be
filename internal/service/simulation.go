// Package service glues the validated wire DTOs to the scheduling core and
// back, the way the teacher's ChannelService glues HTTP DTOs to the
// datastore and process manager.
package service

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/edirooss/zmux-server/internal/api/dto"
	"github.com/edirooss/zmux-server/internal/sim"
	"github.com/edirooss/zmux-server/internal/telemetry"
)

// SimulationService runs one scheduling policy per request and turns the
// core's output into a wire response.
type SimulationService struct {
	log *zap.Logger
	rec *telemetry.Recorder
}

// NewSimulationService wires a logger and an optional telemetry recorder
// (nil disables /metrics observation).
func NewSimulationService(log *zap.Logger, rec *telemetry.Recorder) *SimulationService {
	if log == nil {
		log = zap.NewNop()
	}
	return &SimulationService{log: log.Named("simulation-service"), rec: rec}
}

// Execute runs req and returns the wire response, or a *sim.ValidationError
// / *sim.ConfigError / *sim.InvariantError on failure.
func (s *SimulationService) Execute(req dto.SchedulingRequest) (*dto.SchedulingResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	processes, err := dto.ToProcesses(req.Processes)
	if err != nil {
		return nil, err
	}

	var warnings []string
	algo := req.NormalizedAlgorithm()
	policy, err := dto.BuildPolicy(algo, req.ContextSwitchTime, req.TimeSlice, req.Config, &warnings)
	if err != nil {
		s.log.Warn("policy configuration rejected", zap.String("algorithm", algo), zap.Error(err))
		return nil, err
	}

	start := time.Now()
	engine := sim.NewEngine(s.log.Named("engine"), req.ContextSwitchTime)
	result, err := engine.Simulate(processes, policy)
	if err != nil {
		s.log.Error("simulation invariant violation", zap.String("algorithm", algo), zap.Error(err))
		return nil, err
	}

	order := make([]string, 0, len(req.Processes))
	for _, p := range req.Processes {
		order = append(order, p.PID)
	}

	metrics, err := sim.BuildMetrics(result, order)
	if err != nil {
		return nil, err
	}

	elapsed := time.Since(start)
	s.log.Info("simulation completed",
		zap.String("algorithm", algo),
		zap.Int("processes", len(processes)),
		zap.Duration("elapsed", elapsed),
	)
	if s.rec != nil {
		s.rec.Observe(algo, elapsed.Seconds(), metrics.System.CPUUtilization)
	}

	resp := dto.NewSchedulingResponse(algo, result, metrics, warnings)
	return &resp, nil
}

// Compare runs every algorithm in req.Algorithms (defaulting to
// dto.DefaultAlgorithms) over the same process set and returns one summary
// row per algorithm, in the order requested.
func (s *SimulationService) Compare(req dto.CompareRequest) ([]dto.CompareRow, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	algorithms := req.Algorithms
	if len(algorithms) == 0 {
		algorithms = dto.DefaultAlgorithms
	}

	rows := make([]dto.CompareRow, 0, len(algorithms))
	for _, algo := range algorithms {
		sreq := dto.SchedulingRequest{
			Algorithm:         algo,
			Processes:         req.Processes,
			ContextSwitchTime: req.ContextSwitchTime,
			TimeSlice:         req.TimeSlice,
			Config:            req.Config,
		}
		resp, err := s.Execute(sreq)
		if err != nil {
			return nil, fmt.Errorf("algorithm %s: %w", algo, err)
		}
		rows = append(rows, resp.ToCompareRow())
	}
	return rows, nil
}
