package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AK-1225/SPONproject/internal/repository"
)

func TestReplicatorLandsFanRedundancy(t *testing.T) {
	db := newTestDB(t)
	fanRepo := repository.NewFanRepository(db)
	rep := NewFanReplicator(fanRepo, 128)
	stop := rep.Start(2)
	defer func() { _ = stop(context.Background()) }()

	rep.EnqueueAdd("a1", "f1")
	assert.Eventually(t, func() bool {
		fans, err := fanRepo.ListFans(context.Background(), "a1", 0, 10)
		return err == nil && len(fans) == 1
	}, 2*time.Second, 10*time.Millisecond)

	rep.EnqueueRemove("a1", "f1")
	assert.Eventually(t, func() bool {
		fans, err := fanRepo.ListFans(context.Background(), "a1", 0, 10)
		return err == nil && len(fans) == 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestReplicatorStopReturns(t *testing.T) {
	db := newTestDB(t)
	rep := NewFanReplicator(repository.NewFanRepository(db), 16)
	stop := rep.Start(1)
	require.NoError(t, stop(context.Background()))
}
