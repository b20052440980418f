package dto

type RefineIdeaRequest struct {
	Idea string `json:"idea" validate:"required"`
}

type RefineIdeaResponse struct {
	RefinedIdea string `json:"refinedIdea"`
}

type PublicChatRequest struct {
	Message     string              `json:"message" validate:"required"`
	ChatHistory []HistoryMessageDTO `json:"chatHistory,omitempty" validate:"dive"`
}

type PublicChatResponse struct {
	Response string `json:"response"`
}
