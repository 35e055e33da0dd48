package supercall

type SessionData struct {
	RoomId    string `json:"room_id"`
	SessionId string `json:"session_id"`
}

type EngagementData struct {
	RoomId          string             `json:"room_id"`
	SessionId       string             `json:"session_id"`
	DataId          string             `json:"data_id"`
	State           string             `json:"state"`
	Dominant        string             `json:"dominant"`
	DominantScore   float64            `json:"dominant_score"`
	OverallDominant string             `json:"overall_dominant"`
	Dwell           string             `json:"dwell"`
	Smoothed        map[string]float64 `json:"smoothed"`
	HistorySize     int                `json:"history_size"`
}
