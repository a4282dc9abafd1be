package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edirooss/zmux-server/internal/api/dto"
)

func TestCompareCache_NilRedisAlwaysComputes(t *testing.T) {
	c := NewCompareCache(nil, nil, CompareOptions{})

	calls := 0
	compute := func() ([]dto.CompareRow, error) {
		calls++
		return []dto.CompareRow{{Algorithm: "FCFS"}}, nil
	}

	rows, err := c.Get(context.Background(), dto.CompareRequest{}, compute)
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	_, err = c.Get(context.Background(), dto.CompareRequest{}, compute)
	require.NoError(t, err)
	assert.Equal(t, 2, calls, "with no Redis configured, every call recomputes")
}

func TestCompareCache_NilRedisPropagatesComputeError(t *testing.T) {
	c := NewCompareCache(nil, nil, CompareOptions{})
	wantErr := errors.New("boom")

	_, err := c.Get(context.Background(), dto.CompareRequest{}, func() ([]dto.CompareRow, error) {
		return nil, wantErr
	})
	assert.ErrorIs(t, err, wantErr)
}
