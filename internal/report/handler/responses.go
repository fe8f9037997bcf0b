package handler

// analysisSuccessMessage is the envelope message for successful analyses.
const analysisSuccessMessage = "큐모발검사 종합멘트가 성공적으로 생성되었습니다."

// HealthResponse is the body for GET /health.
type HealthResponse struct {
	Status      string `json:"status"`
	Message     string `json:"message"`
	NotesLoaded int    `json:"notes_loaded"`
}
