package dto

// TTSRequest is the body for POST /speech/tts.
type TTSRequest struct {
	Text  string `json:"text" binding:"required,min=1,max=4096"`
	Voice string `json:"voice" binding:"omitempty,oneof=alloy echo fable onyx nova shimmer"`
}

// STTResponse is the transcription result.
type STTResponse struct {
	Text string `json:"text"`
}

// SpeechConversationResponse is the combined transcribe-then-chat result.
type SpeechConversationResponse struct {
	Transcript string `json:"transcript"`
	Response   string `json:"response"`
	Status     string `json:"status"`
}
