package worker

import (
	"context"
	"time"

	"github.com/superfeelapi/goEngageMeter/business/engage"
	"github.com/superfeelapi/goEngageMeter/foundation/external/supercall"
	"github.com/superfeelapi/goEngageMeter/foundation/redis"
	"go.uber.org/zap"
)

// ScoreSource is the external expression classifier. Classify returns the
// per-category scores for the current frame; detected is false when no
// subject is in view. Errors are transient and never fatal to the loop.
type ScoreSource interface {
	Classify(ctx context.Context) (engage.ScoreVector, bool, error)
}

type Settings struct {
	Config
	Logger    *zap.SugaredLogger
	Source    ScoreSource
	Redis     *redis.Redis
	Supercall *supercall.Polling
	Pipeline  *engage.Pipeline
}

type Config struct {
	RoomID          string
	SessionID       string
	SamplePeriod    time.Duration
	ClassifyTimeout time.Duration
}

// =====================================================================================================================

// Command is a remote control message consumed from the control channel.
type Command struct {
	Command string `json:"command"`
}
