package http

type createReq struct {
	Prompt string `json:"prompt"`
}

type feedbackReq struct {
	Text string `json:"text"`
}
