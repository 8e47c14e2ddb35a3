package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ideahub/models"
	"ideahub/services"
)

type ChatbotHandler struct {
	chatbotService services.ChatbotService
}

func NewChatbotHandler(chatbotService services.ChatbotService) *ChatbotHandler {
	return &ChatbotHandler{chatbotService: chatbotService}
}

func (h *ChatbotHandler) Chat(c *gin.Context) {
	// A malformed body binds as an empty message and gets the fallback reply.
	var req models.ChatRequest
	_ = c.ShouldBindJSON(&req)

	c.JSON(http.StatusOK, models.ChatResponse{
		Reply: h.chatbotService.Reply(req.Message),
	})
}
