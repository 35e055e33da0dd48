package config_test

import (
	"testing"
	"time"

	"github.com/superfeelapi/goEngageMeter/foundation/config"
)

const (
	filepath = "config.json"
	roomID   = "1"
)

func TestGetRoom(t *testing.T) {
	t.Run("room exists", func(t *testing.T) {
		t.Parallel()
		room, err := config.GetRoom(filepath, roomID)
		if err != nil {
			t.Fatal(err)
		}

		if config.GetRoomName(room) != "Demo Room" {
			t.Fatalf("got %q", config.GetRoomName(room))
		}
		if got := config.GetSamplePeriod(room); got != 300*time.Millisecond {
			t.Fatalf("sample period: got %v", got)
		}
		if got := config.GetSmoothingAlpha(room); got != 0.1 {
			t.Fatalf("alpha: got %v", got)
		}
		if got := config.GetHistoryWindow(room); got != 15*time.Second {
			t.Fatalf("window: got %v", got)
		}
		if got := len(config.GetProfiles(room)); got != 5 {
			t.Fatalf("profiles: got %d", got)
		}
	})

	t.Run("room does not exist", func(t *testing.T) {
		t.Parallel()
		_, err := config.GetRoom(filepath, "0")
		if err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("unset meter fields fall back to defaults", func(t *testing.T) {
		t.Parallel()
		room, err := config.GetRoom(filepath, "2")
		if err != nil {
			t.Fatal(err)
		}

		if got := config.GetSamplePeriod(room); got != 300*time.Millisecond {
			t.Fatalf("sample period: got %v", got)
		}
		if got := config.GetSmoothingAlpha(room); got != 0.1 {
			t.Fatalf("alpha: got %v", got)
		}
		if got := config.GetHistoryWindow(room); got != 15*time.Second {
			t.Fatalf("window: got %v", got)
		}
	})
}
