package progress

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgress_Update(t *testing.T) {
	var snapshots []Progress
	ctx, tracker := WithNewTracker(context.Background(), "batch-1", func(p Progress) {
		snapshots = append(snapshots, p)
	})

	UpdateCtx(ctx, Delta{Total: 2})
	UpdateCtx(ctx, Delta{Running: 1})
	UpdateCtx(ctx, Delta{Running: -1, Succeeded: 1})
	UpdateCtx(ctx, Delta{Running: 1})
	UpdateCtx(ctx, Delta{Running: -1, Failed: 1})

	snapshot, ok := GetSnapshot(ctx)
	require.True(t, ok)
	assert.Equal(t, "batch-1", snapshot.BatchID)
	assert.Equal(t, 2, snapshot.TotalJobs)
	assert.Equal(t, 1, snapshot.SucceededJobs)
	assert.Equal(t, 1, snapshot.FailedJobs)
	assert.Equal(t, 0, snapshot.RunningJobs)
	assert.True(t, snapshot.Done())
	assert.Len(t, snapshots, 5)
	assert.Equal(t, tracker.Snapshot().TotalJobs, 2)
}

func TestProgress_Concurrent(t *testing.T) {
	_, tracker := WithNewTracker(context.Background(), "batch", nil)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tracker.Update(Delta{Total: 1, Succeeded: 1})
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, tracker.Snapshot().SucceededJobs)
}

func TestProgress_DoneWhileUpdating(t *testing.T) {
	_, tracker := WithNewTracker(context.Background(), "batch", nil)
	tracker.Update(Delta{Total: 100})
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			tracker.Update(Delta{Running: 1})
			tracker.Update(Delta{Running: -1, Succeeded: 1})
		}()
		go func() {
			defer wg.Done()
			_ = tracker.Done()
		}()
	}
	wg.Wait()
	assert.True(t, tracker.Done())
	var empty *Progress
	assert.True(t, empty.Done())
}

func TestProgress_NoTracker(t *testing.T) {
	UpdateCtx(context.Background(), Delta{Total: 1})
	_, ok := GetSnapshot(context.Background())
	assert.False(t, ok)
	var tracker *Progress
	tracker.Update(Delta{Total: 1})
	assert.Equal(t, Progress{}, tracker.Snapshot())
}
