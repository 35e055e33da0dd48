package worker

import (
	"context"
	"time"

	"github.com/superfeelapi/goEngageMeter/business/engage"
	"github.com/superfeelapi/goEngageMeter/foundation/state"
)

// samplingOperation drives the whole pipeline: one classifier call per tick,
// strictly sequential, fanning the snapshot out through the broker. The
// sampling flag is observed at the top of each iteration, so pausing stops
// classifier calls after the in-flight tick completes.
func (w *Worker) samplingOperation() {
	w.logger.Infow("worker: samplingOperation: G started")
	defer w.logger.Infow("worker: samplingOperation: G completed")

	var sampler engage.Sampler

	ticker := time.NewTicker(w.config.SamplePeriod)
	defer ticker.Stop()

	w.logger.Infow("worker: samplingOperation: G listening")
	for {
		select {
		case <-ticker.C:
			if !w.state.Get(state.Sampling) {
				sampler.Rebase(time.Now())
				continue
			}

			ctx, cancel := context.WithTimeout(context.Background(), w.config.ClassifyTimeout)
			scores, detected, err := w.source.Classify(ctx)
			cancel()

			if err != nil {
				w.logger.Errorw("worker: samplingOperation", "ERROR", err)
				sampler.Rebase(time.Now())
				continue
			}
			if !detected {
				w.logger.Infow("worker: samplingOperation: no subject detected")
				sampler.Rebase(time.Now())
				continue
			}

			now := time.Now()
			elapsed := sampler.Success(now)
			snapshot := w.pipeline.ProcessTick(now, scores, elapsed)

			if err := w.broker.Publish(engagementTopic, snapshot); err != nil {
				w.logger.Errorw("worker: samplingOperation", "ERROR", err)
			}

		case <-w.shut:
			w.logger.Infow("worker: samplingOperation: received shut signal")
			return
		}
	}
}
