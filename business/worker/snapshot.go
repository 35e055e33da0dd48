package worker

import (
	"github.com/superfeelapi/goEngageMeter/foundation/pubsub"
	"github.com/superfeelapi/goEngageMeter/foundation/state"
)

// snapshotOperation publishes every tick snapshot to the redis snapshot
// channel for downstream reporting. The first publish failure degrades the
// redis flag; the pipeline keeps running without it.
func (w *Worker) snapshotOperation() {
	w.logger.Infow("worker: snapshotOperation: G started")
	defer w.logger.Infow("worker: snapshotOperation: G completed")

	sub := pubsub.NewSubscriber(10)
	w.broker.Subscribe(engagementTopic, sub)
	defer w.broker.Unsubscribe(engagementTopic, sub)

	snapshotCh := sub.Channel()

	w.logger.Infow("worker: snapshotOperation: G listening")
	for {
		select {
		case snapshot := <-snapshotCh:
			if !w.state.Get(state.Redis) {
				continue
			}
			if err := w.redis.Produce(snapshot); err != nil {
				w.state.Set(state.Redis, false)
				w.logger.Errorw("worker: snapshotOperation", "ERROR", err)
			}

		case <-w.shut:
			w.logger.Infow("worker: snapshotOperation: received shut signal")
			return
		}
	}
}
