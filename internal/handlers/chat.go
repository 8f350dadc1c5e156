package handlers

import (
	"net/http"

	"Assistant/internal/clients/gemini"
	"Assistant/internal/dto"
	"Assistant/internal/httperr"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	client *gemini.Client
}

func NewChatHandler(client *gemini.Client) *ChatHandler {
	return &ChatHandler{client: client}
}

// Chat godoc
// @Summary      Send a message to the assistant
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        body  body      dto.ChatRequest  true  "Message"
// @Success      200   {object}  dto.ChatResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /chat [post]
func (h *ChatHandler) Chat(c *gin.Context) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, httperr.Validation("Message is required"))
		return
	}
	text, err := h.client.Generate(c.Request.Context(), req.Message)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ChatResponse{Response: text})
}

// Test godoc
// @Summary      Chat route liveness
// @Tags         chat
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /chat/test [get]
func (h *ChatHandler) Test(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Chat route is working!"})
}
