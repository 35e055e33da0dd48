package config

type Config struct {
	Rooms []Room `json:"rooms"`
}

type Room struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Meter    Meter     `json:"meter"`
	Profiles []Profile `json:"profiles"`
}

type Meter struct {
	SamplePeriodMs  int     `json:"sample_period_ms"`
	SmoothingAlpha  float64 `json:"smoothing_alpha"`
	HistoryWindowMs int     `json:"history_window_ms"`
}

type Profile struct {
	Name    string             `json:"name"`
	Targets map[string]float64 `json:"targets"`
}
