package types

import "mindmate/mindmate/services/suggest"

type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// MoodResponse is the render surface after a mood submission: the detected
// sentiment plus the suggestion block.
type MoodResponse struct {
	Sentiment   string              `json:"sentiment"`
	Suggestions suggest.Suggestions `json:"suggestions"`
}

// MoodStateResponse mirrors the mood sub-state for re-rendering.
type MoodStateResponse struct {
	Submitted bool   `json:"submitted"`
	Sentiment string `json:"sentiment,omitempty"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

type ScreeningResponse struct {
	TotalScore     int      `json:"total_score"`
	PredictedLevel string   `json:"predicted_level"`
	SupportPlan    []string `json:"support_plan"`
}
