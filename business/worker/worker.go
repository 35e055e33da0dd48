package worker

import (
	"sync"

	"github.com/superfeelapi/goEngageMeter/business/engage"
	"github.com/superfeelapi/goEngageMeter/foundation/external/supercall"
	"github.com/superfeelapi/goEngageMeter/foundation/pubsub"
	"github.com/superfeelapi/goEngageMeter/foundation/redis"
	"github.com/superfeelapi/goEngageMeter/foundation/state"
	"go.uber.org/zap"
)

const engagementTopic = "engagement"

type Worker struct {
	config Config
	state  *state.State
	logger *zap.SugaredLogger

	source    ScoreSource
	redis     *redis.Redis
	supercall *supercall.Polling
	pipeline  *engage.Pipeline
	broker    *pubsub.Broker

	wg    sync.WaitGroup
	shut  chan struct{}
	error chan error
}

func Run(s Settings) (*Worker, <-chan error) {
	w := &Worker{
		config:    s.Config,
		state:     state.NewState(),
		logger:    s.Logger,
		source:    s.Source,
		redis:     s.Redis,
		supercall: s.Supercall,
		pipeline:  s.Pipeline,
		broker:    pubsub.NewBroker(),
		shut:      make(chan struct{}),
		error:     make(chan error),
	}

	if w.redis == nil {
		w.state.Set(state.Redis, false)
	}
	if w.supercall == nil {
		w.state.Set(state.Dashboard, false)
	}

	operations := []func(){
		w.dashboardOperation,
		w.snapshotOperation,
		w.controlOperation,
		w.samplingOperation,
	}

	g := len(operations)
	w.wg.Add(g)

	hasStarted := make(chan bool)

	for _, op := range operations {
		go func(op func()) {
			defer w.wg.Done()
			hasStarted <- true
			op()
		}(op)
	}

	for i := 0; i < g; i++ {
		<-hasStarted
	}

	return w, w.error
}

func (w *Worker) Shutdown(err error) {
	w.logger.Infow("worker: shutdown: started")
	defer w.logger.Infow("worker: shutdown: completed")

	w.logger.Errorw("worker: shutdown", "ERROR", err)
	w.logger.Infow("worker: shutdown: terminate goroutines")
	close(w.shut)

	w.wg.Wait()

	if err != nil {
		w.error <- err
	}
}

// =====================================================================================================================
// Control surface for the presentation layer.

// Pause suspends sampling after the current tick completes. No classifier
// calls happen while paused.
func (w *Worker) Pause() {
	w.state.Set(state.Sampling, false)
	w.logger.Infow("worker: control: sampling paused")
}

// Resume re-enables sampling. The dwell baseline is rebased inside the
// sampling loop, so time spent paused never counts as dwell.
func (w *Worker) Resume() {
	w.state.Set(state.Sampling, true)
	w.logger.Infow("worker: control: sampling resumed")
}

// Reset clears session totals, the smoothed state, the history window and
// the engagement label.
func (w *Worker) Reset() {
	w.pipeline.Reset()
	w.logger.Infow("worker: control: session reset")
}

// Snapshot returns a point-in-time copy of every derived view.
func (w *Worker) Snapshot() engage.Snapshot {
	return w.pipeline.Snapshot()
}

// Latest returns the dominant category and raw score of the latest tick.
func (w *Worker) Latest() (engage.Category, float64, bool) {
	return w.pipeline.Latest()
}

// OverallDominant returns the category with the most ticks this session.
func (w *Worker) OverallDominant() (engage.Category, bool) {
	return w.pipeline.OverallDominant()
}

// DwellTime returns the formatted dwell time of one category.
func (w *Worker) DwellTime(c engage.Category) string {
	return engage.FormatDwell(w.pipeline.Dwell(c))
}

// State returns the current engagement label.
func (w *Worker) State() string {
	return w.pipeline.State()
}

// History returns the ordered history snapshot for charting.
func (w *Worker) History() []engage.HistoryPoint {
	return w.pipeline.Snapshot().History
}
