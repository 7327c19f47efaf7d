package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mahmoodiftee/Learn-server/internal/logger"
	"github.com/mahmoodiftee/Learn-server/internal/store"
)

type TutorialHandler struct {
	tutorials store.Tutorials
	log       *logger.Logger
}

func NewTutorialHandler(tutorials store.Tutorials, log *logger.Logger) *TutorialHandler {
	return &TutorialHandler{tutorials: tutorials, log: log}
}

func (h *TutorialHandler) List(c *gin.Context) {
	links, err := h.tutorials.List(c.Request.Context())
	if err != nil {
		h.log.Errorw("failed to list tutorials", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tutorials"})
		return
	}
	c.JSON(http.StatusOK, links)
}
