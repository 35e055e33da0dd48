package worker

import (
	"time"

	"github.com/google/uuid"
	"github.com/superfeelapi/goEngageMeter/business/engage"
	"github.com/superfeelapi/goEngageMeter/foundation/external/supercall"
	"github.com/superfeelapi/goEngageMeter/foundation/pubsub"
	"github.com/superfeelapi/goEngageMeter/foundation/state"
)

// dashboardOperation forwards every tick snapshot to the Supercall dashboard
// and keeps the polling connection alive. Send failures degrade the
// dashboard flag instead of stopping the pipeline.
func (w *Worker) dashboardOperation() {
	w.logger.Infow("worker: dashboardOperation: G started")
	defer w.logger.Infow("worker: dashboardOperation: G completed")

	sub := pubsub.NewSubscriber(10)
	w.broker.Subscribe(engagementTopic, sub)
	defer w.broker.Unsubscribe(engagementTopic, sub)

	snapshotCh := sub.Channel()

	if w.state.Get(state.Dashboard) {
		err := w.supercall.SendData(supercall.SessionEvent, supercall.SessionData{
			RoomId:    w.config.RoomID,
			SessionId: w.config.SessionID,
		})
		if err != nil {
			w.logger.Errorw("worker: dashboardOperation", "ERROR", err)
			w.state.Set(state.Dashboard, false)
		}
	}

	keepAlive := time.NewTicker(10 * time.Second)
	defer keepAlive.Stop()

	w.logger.Infow("worker: dashboardOperation: G listening")
	for {
		select {
		case data := <-snapshotCh:
			if !w.state.Get(state.Dashboard) {
				continue
			}

			snapshot := data.(engage.Snapshot)

			err := w.supercall.SendData(supercall.EngagementEvent, supercall.EngagementData{
				RoomId:          w.config.RoomID,
				SessionId:       w.config.SessionID,
				DataId:          uuid.New().String(),
				State:           snapshot.State,
				Dominant:        string(snapshot.Dominant),
				DominantScore:   snapshot.DominantScore,
				OverallDominant: snapshot.OverallDominant,
				Dwell:           snapshot.OverallDwell,
				Smoothed:        smoothedByName(snapshot.Smoothed),
				HistorySize:     len(snapshot.History),
			})
			if err != nil {
				w.logger.Errorw("worker: dashboardOperation", "ERROR", err)
			}

		case <-keepAlive.C:
			if !w.state.Get(state.Dashboard) {
				continue
			}
			if err := w.supercall.SendData(supercall.KeepAliveEvent, nil); err != nil {
				w.logger.Errorw("worker: dashboardOperation", "ERROR", err)
				w.state.Set(state.Dashboard, false)
			}

		case <-w.shut:
			w.logger.Infow("worker: dashboardOperation: received shut signal")
			return
		}
	}
}

// =====================================================================================================================

func smoothedByName(smoothed map[engage.Category]float64) map[string]float64 {
	byName := make(map[string]float64, len(smoothed))
	for c, v := range smoothed {
		byName[string(c)] = v
	}
	return byName
}
