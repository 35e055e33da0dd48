package expressai

type classifyRequest struct {
	Type string `json:"type"`
}

type classifyResponse struct {
	Detected bool               `json:"detected"`
	Scores   map[string]float64 `json:"scores"`
	Error    string             `json:"error,omitempty"`
}
