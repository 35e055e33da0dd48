package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ardanlabs/conf/v3"
	"github.com/google/uuid"
	"github.com/superfeelapi/goEngageMeter/business/engage"
	"github.com/superfeelapi/goEngageMeter/business/worker"
	"github.com/superfeelapi/goEngageMeter/foundation/config"
	"github.com/superfeelapi/goEngageMeter/foundation/external/expressai"
	"github.com/superfeelapi/goEngageMeter/foundation/external/supercall"
	"github.com/superfeelapi/goEngageMeter/foundation/logger"
	"github.com/superfeelapi/goEngageMeter/foundation/redis"
)

var (
	version   string
	buildTime string
)

func main() {
	// =================================================================================================================
	// Configuration

	cfg := struct {
		conf.Version
		Engage struct {
			RoomID          string        `conf:"default:demo-room"`
			SessionID       string
			ConfigFilePath  string        `conf:"default:/etc/engagemeter/rooms.json,noprint"`
			ClassifyTimeout time.Duration `conf:"default:10s"`
		}
		ExpressAI struct {
			Scheme string `conf:"default:ws"`
			Host   string `conf:"default:127.0.0.1:8089"`
			Path   string `conf:"default:/classify"`
			ApiKey string `conf:"default:ea132465,noprint"`
		}
		Supercall struct {
			ApiEndpoint string `conf:"default:https://ticket-api.superceed.com:9000/socket.io/?EIO=4&transport=polling,noprint"`
			ApiToken    string `conf:"noprint"`
		}
		Redis struct {
			Address         string `conf:"default:127.0.0.1:6379"`
			Password        string `conf:"noprint"`
			SnapshotChannel string `conf:"default:engageMeter:snapshot"`
			ControlChannel  string `conf:"default:engageMeter:control:"`
		}
		Logger struct {
			LogDirectory string `conf:"default:/var/log/engagemeter/rooms/,noprint"`
		}
	}{
		Version: conf.Version{
			Build: version,
			Desc:  buildTime,
		},
	}

	// Configuration Parsing
	_, err := conf.Parse("", &cfg)
	if err != nil {
		os.Exit(1)
	}

	// =================================================================================================================
	// Session ID and Version Checking Support

	if cfg.Engage.SessionID == "" {
		cfg.Engage.SessionID = uuid.New().String()
	}

	displayVersion := flag.Bool("version", false, "Display version and exit")
	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		fmt.Printf("Build time:\t%s\n", buildTime)
		os.Exit(0)
	}

	// =================================================================================================================
	// Application Logger

	log, err := logger.New(cfg.Logger.LogDirectory, cfg.Engage.RoomID, cfg.Engage.SessionID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// =================================================================================================================
	// Room Configuration

	room, err := config.GetRoom(cfg.Engage.ConfigFilePath, cfg.Engage.RoomID)
	if err != nil {
		log.Errorw("startup", "ERROR", err)
	}

	// =================================================================================================================
	// Configuration Stringify

	out, err := conf.String(&cfg)
	if err != nil {
		log.Errorw("startup", "ERROR", err)
	}
	log.Infow("startup", "config", out)

	// =================================================================================================================
	// Pipeline

	profiles := make([]engage.Profile, 0, len(config.GetProfiles(room)))
	for _, p := range config.GetProfiles(room) {
		profile, err := engage.NewProfile(p.Name, p.Targets)
		if err != nil {
			log.Errorw("startup", "ERROR", err)
			continue
		}
		profiles = append(profiles, profile)
	}
	if len(profiles) == 0 {
		profiles = engage.DefaultProfiles()
	}

	pipeline := engage.NewPipeline(engage.Config{
		Alpha:    config.GetSmoothingAlpha(room),
		Window:   config.GetHistoryWindow(room),
		Profiles: profiles,
	})

	// =================================================================================================================
	// Redis

	cfg.Redis.ControlChannel = fmt.Sprintf("%s%s", cfg.Redis.ControlChannel, cfg.Engage.SessionID)

	redisClient, err := redis.New(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.SnapshotChannel, cfg.Redis.ControlChannel, log)
	if err != nil {
		log.Errorw("startup", "ERROR", err)
	}

	// =================================================================================================================
	// Supercall

	superCall := supercall.New(cfg.Supercall.ApiEndpoint, cfg.Supercall.ApiToken)
	if err := superCall.SetupConnection(); err != nil {
		log.Errorw("startup", "ERROR", err)
		superCall = nil
	}

	// =================================================================================================================
	// Expression Classifier

	classifier, err := expressai.Dial(cfg.ExpressAI.Scheme, cfg.ExpressAI.Host, cfg.ExpressAI.Path, cfg.ExpressAI.ApiKey)
	if err != nil {
		log.Errorw("startup", "ERROR", err)
		os.Exit(1)
	}
	defer classifier.Close()

	// =================================================================================================================
	// Run Worker

	_, workerCh := worker.Run(worker.Settings{
		Logger:    log,
		Source:    worker.NewExpressSource(classifier),
		Redis:     redisClient,
		Supercall: superCall,
		Pipeline:  pipeline,
		Config: worker.Config{
			RoomID:          cfg.Engage.RoomID,
			SessionID:       cfg.Engage.SessionID,
			SamplePeriod:    config.GetSamplePeriod(room),
			ClassifyTimeout: cfg.Engage.ClassifyTimeout,
		},
	})

	// Blocking main and waiting for error or shutdown.
	err = <-workerCh

	log.Infow("shutdown", "status", "shutdown started")
	defer log.Infow("shutdown", "status", "shutdown complete")

	if err != nil {
		log.Errorw("shutdown", "ERROR", err)
	}
}
