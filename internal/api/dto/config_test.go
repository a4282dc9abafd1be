package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edirooss/zmux-server/internal/sim"
)

func TestBuildPolicy_RR_RequiresTimeSlice(t *testing.T) {
	var warnings []string
	_, err := BuildPolicy("RR", 0, nil, nil, &warnings)
	require.Error(t, err)
	var cerr *sim.ConfigError
	assert.ErrorAs(t, err, &cerr)
}

func TestBuildPolicy_SPNFoldsToSJF(t *testing.T) {
	var warnings []string
	p, err := BuildPolicy("SPN", 0, nil, nil, &warnings)
	require.NoError(t, err)
	assert.Equal(t, "SJF", p.Name())
}

func TestBuildPolicy_UnsupportedAlgorithm(t *testing.T) {
	var warnings []string
	_, err := BuildPolicy("NOSUCH", 0, nil, nil, &warnings)
	require.Error(t, err)
	var verr *sim.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestBuildPolicy_MLQ_MissingQueuesWarnsAndDefaults(t *testing.T) {
	var warnings []string
	ts := 4
	p, err := BuildPolicy("MLQ", 0, &ts, nil, &warnings)
	require.NoError(t, err)
	assert.Equal(t, "MLQ", p.Name())
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "default")
}

func TestBuildPolicy_MLQ_ExplicitQueuesNoWarning(t *testing.T) {
	var warnings []string
	cfg := &PolicyConfig{
		Queues: []QueueConfigIn{
			{Algorithm: "RR", TimeSlice: intPtr(2)},
			{Algorithm: "RR", TimeSlice: intPtr(4)},
			{Algorithm: "FCFS"},
			{Algorithm: "FCFS"},
		},
		PriorityMapping: "0-3",
	}
	p, err := BuildPolicy("MLQ", 0, nil, cfg, &warnings)
	require.NoError(t, err)
	assert.Equal(t, "MLQ", p.Name())
	assert.Empty(t, warnings)
}

func TestBuildPolicy_MLFQ_RequiresTimeSliceOrSlices(t *testing.T) {
	var warnings []string
	_, err := BuildPolicy("MLFQ", 0, nil, nil, &warnings)
	require.Error(t, err)
	var cerr *sim.ConfigError
	assert.ErrorAs(t, err, &cerr)
}

func TestBuildPolicy_MLFQ_DerivesDefaultSlicesWithWarning(t *testing.T) {
	var warnings []string
	ts := 2
	p, err := BuildPolicy("MLFQ", 0, &ts, nil, &warnings)
	require.NoError(t, err)
	assert.Equal(t, "MLFQ", p.Name())
	require.Len(t, warnings, 1)
}

func TestBuildPolicy_MLFQ_ExplicitTimeSlicesNoWarning(t *testing.T) {
	var warnings []string
	cfg := &PolicyConfig{TimeSlices: []*int{intPtr(2), intPtr(4), intPtr(8), nil}}
	p, err := BuildPolicy("MLFQ", 0, nil, cfg, &warnings)
	require.NoError(t, err)
	assert.Equal(t, "MLFQ", p.Name())
	assert.Empty(t, warnings)
}

func intPtr(v int) *int { return &v }
