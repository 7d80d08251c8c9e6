package types

type SignupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type MoodRequest struct {
	Note string `json:"note"`
}

type ChatRequest struct {
	Message string `json:"message"`
}

type ScreeningRequest struct {
	Answers []int `json:"answers"`
}

type UpliftRequest struct {
	JournalText string `json:"journal_text,omitempty"`
}
