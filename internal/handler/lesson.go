package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mahmoodiftee/Learn-server/internal/logger"
	"github.com/mahmoodiftee/Learn-server/internal/model"
	"github.com/mahmoodiftee/Learn-server/internal/store"
)

type LessonHandler struct {
	lessons store.Lessons
	log     *logger.Logger
}

func NewLessonHandler(lessons store.Lessons, log *logger.Logger) *LessonHandler {
	return &LessonHandler{lessons: lessons, log: log}
}

type CreateLessonRequest struct {
	LessonNumber int    `json:"lessonNumber" binding:"required"`
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description" binding:"required"`
}

type UpdateLessonRequest struct {
	LessonNumber int    `json:"lessonNumber" binding:"required"`
	Title        string `json:"title" binding:"required"`
}

func (h *LessonHandler) List(c *gin.Context) {
	lessons, err := h.lessons.List(c.Request.Context())
	if err != nil {
		h.log.Errorw("failed to list lessons", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch lessons"})
		return
	}
	c.JSON(http.StatusOK, lessons)
}

func (h *LessonHandler) Get(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lesson ID"})
		return
	}

	lesson, err := h.lessons.Get(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lesson not found"})
		return
	}
	if err != nil {
		h.log.Errorw("failed to fetch lesson", "id", id.Hex(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch lesson"})
		return
	}
	c.JSON(http.StatusOK, lesson)
}

func (h *LessonHandler) Create(c *gin.Context) {
	var req CreateLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lessonNumber, title and description are required"})
		return
	}

	lesson := &model.Lesson{
		LessonNumber: req.LessonNumber,
		Title:        req.Title,
		Description:  req.Description,
		Vocabulary:   []model.VocabEntry{},
	}

	created, err := h.lessons.Create(c.Request.Context(), lesson)
	if errors.Is(err, store.ErrDuplicateLessonNumber) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Lesson already exists"})
		return
	}
	if err != nil {
		h.log.Errorw("failed to create lesson", "lessonNumber", req.LessonNumber, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add lesson"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *LessonHandler) Update(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lesson ID"})
		return
	}

	var req UpdateLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lessonNumber and title are required"})
		return
	}

	lesson, err := h.lessons.Update(c.Request.Context(), id, req.LessonNumber, req.Title)
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Lesson not found"})
	case errors.Is(err, store.ErrDuplicateLessonNumber):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Lesson number already exists"})
	case err != nil:
		h.log.Errorw("failed to update lesson", "id", id.Hex(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update lesson"})
	default:
		c.JSON(http.StatusOK, lesson)
	}
}

func (h *LessonHandler) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lesson ID"})
		return
	}

	err = h.lessons.Delete(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lesson not found"})
		return
	}
	if err != nil {
		h.log.Errorw("failed to delete lesson", "id", id.Hex(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete lesson"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Lesson deleted successfully"})
}
