package dto

type ChatRequest struct {
	Message     string `json:"message" validate:"required,min=1"`
	Personality string `json:"personality" validate:"omitempty,oneof=formal friendly professional teacher dc-mode"`
	Context     string `json:"context"`
}

type ChatResponse struct {
	Response string `json:"response"`
}
