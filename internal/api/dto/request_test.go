package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edirooss/zmux-server/internal/sim"
)

func TestProcessIn_AliasResolution(t *testing.T) {
	var p ProcessIn
	err := json.Unmarshal([]byte(`{"id":"P1","arrivalTime":2,"burstTime":5,"prio":3}`), &p)
	require.NoError(t, err)

	assert.Equal(t, "P1", p.PID)
	assert.Equal(t, 2, p.ArrivalTime)
	assert.Equal(t, 5, p.BurstTime)
	require.NotNil(t, p.Priority)
	assert.Equal(t, 3, *p.Priority)
}

func TestProcessIn_CanonicalKeyWinsOverAlias(t *testing.T) {
	var p ProcessIn
	err := json.Unmarshal([]byte(`{"pid":"canonical","id":"aliased","arrival_time":0,"burst_time":1}`), &p)
	require.NoError(t, err)
	assert.Equal(t, "canonical", p.PID)
}

func TestProcessIn_UnknownFieldRejected(t *testing.T) {
	var p ProcessIn
	err := json.Unmarshal([]byte(`{"pid":"P1","arrival_time":0,"burst_time":1,"nonsense":true}`), &p)
	require.Error(t, err)
	var verr *sim.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestProcessIn_Validate(t *testing.T) {
	tests := []struct {
		name    string
		p       ProcessIn
		wantErr bool
	}{
		{"valid", ProcessIn{PID: "P1", ArrivalTime: 0, BurstTime: 1}, false},
		{"empty pid", ProcessIn{PID: "", ArrivalTime: 0, BurstTime: 1}, true},
		{"negative arrival", ProcessIn{PID: "P1", ArrivalTime: -1, BurstTime: 1}, true},
		{"zero burst", ProcessIn{PID: "P1", ArrivalTime: 0, BurstTime: 0}, true},
		{"negative burst", ProcessIn{PID: "P1", ArrivalTime: 0, BurstTime: -1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.p.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestToProcesses_RejectsDuplicatePIDs(t *testing.T) {
	_, err := ToProcesses([]ProcessIn{
		{PID: "P1", ArrivalTime: 0, BurstTime: 1},
		{PID: "P1", ArrivalTime: 1, BurstTime: 1},
	})
	require.Error(t, err)
	var verr *sim.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestSchedulingRequest_AliasAndUnknownField(t *testing.T) {
	var r SchedulingRequest
	err := json.Unmarshal([]byte(`{"algorithm":"RR","processes":[],"contextSwitchTime":2,"timeSlice":4}`), &r)
	require.NoError(t, err)
	assert.Equal(t, 2, r.ContextSwitchTime)
	require.NotNil(t, r.TimeSlice)
	assert.Equal(t, 4, *r.TimeSlice)

	err = json.Unmarshal([]byte(`{"algorithm":"RR","processes":[],"bogus":1}`), &r)
	require.Error(t, err)
}

func TestSchedulingRequest_NormalizedAlgorithm(t *testing.T) {
	r := SchedulingRequest{Algorithm: " spn "}
	assert.Equal(t, "SJF", r.NormalizedAlgorithm())

	r = SchedulingRequest{Algorithm: "rr"}
	assert.Equal(t, "RR", r.NormalizedAlgorithm())
}

func TestSchedulingRequest_Validate(t *testing.T) {
	r := SchedulingRequest{Algorithm: "", ContextSwitchTime: 0}
	assert.Error(t, r.Validate())

	r = SchedulingRequest{Algorithm: "FCFS", ContextSwitchTime: -1}
	assert.Error(t, r.Validate())

	r = SchedulingRequest{Algorithm: "FCFS", ContextSwitchTime: 0}
	assert.NoError(t, r.Validate())
}

func TestPolicyConfig_AliasResolution(t *testing.T) {
	var c PolicyConfig
	err := json.Unmarshal([]byte(`{"priorityMapping":"0-3","timeSlices":[1,2,3,null]}`), &c)
	require.NoError(t, err)
	assert.Equal(t, "0-3", c.PriorityMapping)
	require.Len(t, c.TimeSlices, 4)
	assert.Nil(t, c.TimeSlices[3])
}
