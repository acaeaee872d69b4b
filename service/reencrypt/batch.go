package reencrypt

import (
	"context"

	"github.com/viant/recrypt/model/job"
	"github.com/viant/recrypt/progress"
	"go.uber.org/zap"
)

// RunAll runs requests one after another and returns their results in the
// same order. When ctx carries a progress tracker it is updated per job;
// otherwise a tracker is created for the batch. A cancelled context fails the
// remaining jobs without touching their files.
func (s *Service) RunAll(ctx context.Context, requests ...*job.Request) []*job.Result {
	if _, ok := progress.FromContext(ctx); !ok {
		ctx, _ = progress.WithNewTracker(ctx, s.ids.Generate(), nil)
	}
	progress.UpdateCtx(ctx, progress.Delta{Total: len(requests)})

	results := make([]*job.Result, 0, len(requests))
	for _, request := range requests {
		var result *job.Result
		if err := ctx.Err(); err != nil {
			result = s.complete(ctx, nil, s.newResult(request), err)
		} else {
			progress.UpdateCtx(ctx, progress.Delta{Running: 1})
			result = s.Run(ctx, request)
			progress.UpdateCtx(ctx, progress.Delta{Running: -1})
		}
		if result.Succeeded() {
			progress.UpdateCtx(ctx, progress.Delta{Succeeded: 1})
		} else {
			progress.UpdateCtx(ctx, progress.Delta{Failed: 1})
		}
		results = append(results, result)
	}

	if snapshot, ok := progress.GetSnapshot(ctx); ok {
		s.logger.Info("batch completed",
			zap.String("batch", snapshot.BatchID),
			zap.Int("total", snapshot.TotalJobs),
			zap.Int("succeeded", snapshot.SucceededJobs),
			zap.Int("failed", snapshot.FailedJobs))
	}
	return results
}
