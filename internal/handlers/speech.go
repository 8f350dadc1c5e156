package handlers

import (
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"Assistant/internal/clients/gemini"
	"Assistant/internal/clients/openai"
	"Assistant/internal/dto"
	"Assistant/internal/httperr"

	"github.com/gin-gonic/gin"
)

// maxAudioBytes caps uploaded audio at 10MB.
const maxAudioBytes = 10 << 20

type SpeechHandler struct {
	openai *openai.Client
	gemini *gemini.Client
}

func NewSpeechHandler(openaiClient *openai.Client, geminiClient *gemini.Client) *SpeechHandler {
	return &SpeechHandler{openai: openaiClient, gemini: geminiClient}
}

// STT godoc
// @Summary      Transcribe an uploaded audio file
// @Tags         speech
// @Accept       multipart/form-data
// @Produce      json
// @Param        audio  formData  file  true  "Audio file (max 10MB)"
// @Success      200  {object}  dto.STTResponse
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /speech/stt [post]
func (h *SpeechHandler) STT(c *gin.Context) {
	filename, audio, ok := h.readAudio(c)
	if !ok {
		return
	}
	text, err := h.openai.Transcribe(c.Request.Context(), filename, audio)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.STTResponse{Text: text})
}

// TTS godoc
// @Summary      Synthesize speech from text
// @Tags         speech
// @Accept       json
// @Produce      audio/mpeg
// @Param        body  body  dto.TTSRequest  true  "Text to speak"
// @Success      200  {string}  binary
// @Failure      400  {object}  map[string]string
// @Router       /speech/tts [post]
func (h *SpeechHandler) TTS(c *gin.Context) {
	var req dto.TTSRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, httperr.Validation(err.Error()))
		return
	}
	audio, err := h.openai.Speak(c.Request.Context(), req.Text, req.Voice)
	if err != nil {
		fail(c, err)
		return
	}
	c.Data(http.StatusOK, "audio/mpeg", audio)
}

// Conversation godoc
// @Summary      Chat with role-tagged history
// @Tags         speech
// @Accept       json
// @Produce      json
// @Param        body  body      dto.ConversationRequest  true  "Message and prior turns"
// @Success      200   {object}  dto.ConversationResponse
// @Failure      400   {object}  map[string]string
// @Router       /speech/conversation [post]
func (h *SpeechHandler) Conversation(c *gin.Context) {
	var req dto.ConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, httperr.Validation("Message is required and must be a string"))
		return
	}
	text, err := h.gemini.Converse(c.Request.Context(), req.Conversation, req.Message)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ConversationResponse{Response: text, Status: "success"})
}

// SpeechConversation transcribes the uploaded audio, then feeds the
// transcript through the conversation flow.
func (h *SpeechHandler) SpeechConversation(c *gin.Context) {
	filename, audio, ok := h.readAudio(c)
	if !ok {
		return
	}
	var history []dto.ConversationMessage
	if raw := c.PostForm("conversation"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &history); err != nil {
			fail(c, httperr.Validation("conversation must be a JSON array of {role, content}"))
			return
		}
	}

	transcript, err := h.openai.Transcribe(c.Request.Context(), filename, audio)
	if err != nil {
		fail(c, err)
		return
	}
	response, err := h.gemini.Converse(c.Request.Context(), history, transcript)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SpeechConversationResponse{
		Transcript: transcript,
		Response:   response,
		Status:     "success",
	})
}

// Health godoc
// @Summary      Speech service availability report
// @Tags         speech
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /speech/health [get]
func (h *SpeechHandler) Health(c *gin.Context) {
	stt := "not configured"
	tts := "not configured"
	if h.openai.Configured() {
		stt = "available"
		tts = "available"
	}
	ai := "not configured"
	if h.gemini.Configured() {
		ai = "available"
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"services": gin.H{
			"stt": stt,
			"tts": tts,
			"ai":  ai,
		},
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *SpeechHandler) readAudio(c *gin.Context) (string, []byte, bool) {
	file, err := c.FormFile("audio")
	if err != nil {
		fail(c, httperr.Validation("audio file is required"))
		return "", nil, false
	}
	if file.Size > maxAudioBytes {
		fail(c, httperr.Validation("audio file exceeds the 10MB limit"))
		return "", nil, false
	}
	if !allowedAudioType(file) {
		fail(c, httperr.Validation("Only audio files are allowed"))
		return "", nil, false
	}
	f, err := file.Open()
	if err != nil {
		fail(c, httperr.Service("Failed to read audio upload", err))
		return "", nil, false
	}
	defer f.Close()
	audio, err := io.ReadAll(io.LimitReader(f, maxAudioBytes))
	if err != nil {
		fail(c, httperr.Service("Failed to read audio upload", err))
		return "", nil, false
	}
	return file.Filename, audio, true
}

func allowedAudioType(file *multipart.FileHeader) bool {
	ct := file.Header.Get("Content-Type")
	return strings.HasPrefix(ct, "audio/") || ct == "application/octet-stream"
}
