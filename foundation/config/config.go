package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

// Reference values applied when a room's meter section leaves a field unset.
const (
	defaultSamplePeriodMs  = 300
	defaultSmoothingAlpha  = 0.1
	defaultHistoryWindowMs = 15000
)

func GetRoom(configPath string, roomID string) (Room, error) {
	file, err := os.Open(configPath)
	if err != nil {
		return Room{}, err
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Room{}, err
	}

	var config Config

	if err := json.Unmarshal(bytes, &config); err != nil {
		return Room{}, err
	}

	room, exists := roomExists(config.Rooms, roomID)
	if !exists {
		return Room{}, fmt.Errorf("room[%s] does not exist", roomID)
	}

	return room, nil
}

func GetRoomName(r Room) string {
	return r.Name
}

func GetSamplePeriod(r Room) time.Duration {
	ms := r.Meter.SamplePeriodMs
	if ms <= 0 {
		ms = defaultSamplePeriodMs
	}
	return time.Duration(ms) * time.Millisecond
}

func GetSmoothingAlpha(r Room) float64 {
	alpha := r.Meter.SmoothingAlpha
	if alpha <= 0 || alpha >= 1 {
		alpha = defaultSmoothingAlpha
	}
	return alpha
}

func GetHistoryWindow(r Room) time.Duration {
	ms := r.Meter.HistoryWindowMs
	if ms <= 0 {
		ms = defaultHistoryWindowMs
	}
	return time.Duration(ms) * time.Millisecond
}

func GetProfiles(r Room) []Profile {
	return r.Profiles
}

func roomExists(rooms []Room, roomID string) (Room, bool) {
	for _, room := range rooms {
		if room.ID == roomID {
			return room, true
		}
	}
	return Room{}, false
}
