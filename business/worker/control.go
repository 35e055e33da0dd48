package worker

import (
	"encoding/json"

	"github.com/superfeelapi/goEngageMeter/foundation/state"
)

const (
	pauseCommand  = "pause"
	resumeCommand = "resume"
	resetCommand  = "reset"
)

// controlOperation applies remote pause/resume/reset commands consumed from
// the redis control channel.
func (w *Worker) controlOperation() {
	w.logger.Infow("worker: controlOperation: G started")
	defer w.logger.Infow("worker: controlOperation: G completed")

	if !w.state.Get(state.Redis) {
		w.logger.Infow("worker: controlOperation: redis unavailable, remote control disabled")
		<-w.shut
		w.logger.Infow("worker: controlOperation: received shut signal")
		return
	}

	msgCh := w.redis.ConsumeControlChannel()

	w.logger.Infow("worker: controlOperation: G listening")
	for {
		select {
		case message := <-msgCh:
			var cmd Command
			if err := json.Unmarshal([]byte(message.Payload), &cmd); err != nil {
				w.logger.Errorw("worker: controlOperation", "ERROR", err)
				continue
			}

			switch cmd.Command {
			case pauseCommand:
				w.Pause()

			case resumeCommand:
				w.Resume()

			case resetCommand:
				w.Reset()

			default:
				w.logger.Errorw("worker: controlOperation: unknown command", "command", cmd.Command)
			}

		case <-w.shut:
			w.logger.Infow("worker: controlOperation: received shut signal")
			return
		}
	}
}
