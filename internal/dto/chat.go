package dto

// ChatRequest is the JSON body for POST /chat.
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// ChatResponse carries the assistant's text back.
type ChatResponse struct {
	Response string `json:"response"`
}

// ConversationMessage is one prior turn of a conversation.
// Role "user" maps to the user turn, anything else to the model turn.
type ConversationMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ConversationRequest is the body for POST /speech/conversation.
type ConversationRequest struct {
	Message      string                `json:"message" binding:"required"`
	Conversation []ConversationMessage `json:"conversation"`
}

// ConversationResponse mirrors the original wire format.
type ConversationResponse struct {
	Response string `json:"response"`
	Status   string `json:"status"`
}
