package assistreq

// DebugRequest carries the code to analyze.
type DebugRequest struct {
	Code string `json:"code"`
}

// ChatRequest carries one freeform chat message.
type ChatRequest struct {
	Message string `json:"message"`
}

// RunCodeRequest carries the code to simulate and an optional language hint.
type RunCodeRequest struct {
	Code     string `json:"code"`
	Language string `json:"language"`
}
