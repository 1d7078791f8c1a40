package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mwagner82/parrotbox/pkg/rotation"
)

type QueueHandler struct{}

type queueRequest struct {
	Text  string `json:"text"`
	Voice string `json:"voice"`
	Type  string `json:"type"`
}

func (h *QueueHandler) List(c *gin.Context) {
	items, err := rotation.Pending()
	if err != nil {
		slog.Error("Failed to read queue", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read queue"})
		return
	}
	if items == nil {
		items = []rotation.Item{}
	}
	c.JSON(http.StatusOK, items)
}

func (h *QueueHandler) Add(c *gin.Context) {
	var req queueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}
	if req.Type == "" {
		req.Type = rotation.TypePhrase
	}
	if req.Type != rotation.TypePhrase && req.Type != rotation.TypeSound {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be phrase or sound"})
		return
	}

	item := rotation.Item{Text: req.Text, Voice: req.Voice, Type: req.Type}
	if err := rotation.Enqueue(item); err != nil {
		slog.Error("Failed to add to queue", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to queue announcement"})
		return
	}

	slog.Info("Queued announcement", "type", item.Type, "text", item.Text)
	c.JSON(http.StatusCreated, item)
}
