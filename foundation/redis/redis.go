package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Redis struct {
	Client          *redis.Client
	Logger          *zap.SugaredLogger
	SnapshotChannel string
	ControlChannel  string
}

func New(host, password, snapshotChannel, controlChannel string, logger *zap.SugaredLogger) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     host,
		Password: password,
	})

	_, err := client.Ping(context.Background()).Result()
	if err != nil {
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	return &Redis{
		Client:          client,
		Logger:          logger,
		SnapshotChannel: snapshotChannel,
		ControlChannel:  controlChannel,
	}, nil
}

// Produce publishes data to the snapshot channel as JSON.
func (r *Redis) Produce(data interface{}) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}

	err = r.Client.Publish(context.Background(), r.SnapshotChannel, jsonData).Err()
	if err != nil {
		return err
	}

	r.Logger.Infow("redis: Produce", "channel", r.SnapshotChannel)

	return nil
}

// ConsumeControlChannel subscribes to the control channel and returns its
// message stream.
func (r *Redis) ConsumeControlChannel() <-chan *redis.Message {
	sub := r.Client.Subscribe(context.Background(), r.ControlChannel)
	return sub.Channel()
}
