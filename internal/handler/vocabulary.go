package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mahmoodiftee/Learn-server/internal/model"
	"github.com/mahmoodiftee/Learn-server/internal/store"
)

type AddVocabRequest struct {
	Word          string `json:"word" binding:"required"`
	Pronunciation string `json:"pronunciation" binding:"required"`
	Meaning       string `json:"meaning" binding:"required"`
	DateAdded     string `json:"dateAdded" binding:"required"`
	AuthorEmail   string `json:"authorEmail" binding:"required"`
}

type UpdateVocabRequest struct {
	Word         string `json:"word" binding:"required"`
	Meaning      string `json:"meaning" binding:"required"`
	DateAdded    string `json:"dateAdded" binding:"required"`
	LessonNumber int    `json:"lessonNumber" binding:"required"`
	AuthorEmail  string `json:"authorEmail" binding:"required"`
}

// AddVocab appends an entry to the lesson addressed by lesson number in the
// path, not by document ID.
func (h *LessonHandler) AddVocab(c *gin.Context) {
	lessonNumber, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lesson number"})
		return
	}

	var req AddVocabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "word, pronunciation, meaning, dateAdded and authorEmail are required"})
		return
	}

	entry := model.VocabEntry{
		Word:          req.Word,
		Pronunciation: req.Pronunciation,
		Meaning:       req.Meaning,
		DateAdded:     req.DateAdded,
		LessonNumber:  lessonNumber,
		AuthorEmail:   req.AuthorEmail,
	}

	lesson, err := h.lessons.AddVocab(c.Request.Context(), lessonNumber, entry)
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Lesson not found"})
	case errors.Is(err, store.ErrDuplicatePronunciation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Pronunciation already exists in this lesson"})
	case errors.Is(err, store.ErrNoEffect):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to add vocabulary"})
	case err != nil:
		h.log.Errorw("failed to add vocabulary", "lessonNumber", lessonNumber, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add vocabulary"})
	default:
		c.JSON(http.StatusOK, lesson)
	}
}

// UpdateVocab replaces the entry addressed by pronunciation. The
// pronunciation itself is the path key and stays unchanged.
func (h *LessonHandler) UpdateVocab(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lesson ID"})
		return
	}
	pronunciation := c.Param("pronunciation")

	var req UpdateVocabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "word, meaning, dateAdded, lessonNumber and authorEmail are required"})
		return
	}

	entry := model.VocabEntry{
		Word:          req.Word,
		Pronunciation: pronunciation,
		Meaning:       req.Meaning,
		DateAdded:     req.DateAdded,
		LessonNumber:  req.LessonNumber,
		AuthorEmail:   req.AuthorEmail,
	}

	lesson, err := h.lessons.UpdateVocab(c.Request.Context(), id, pronunciation, entry)
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Lesson not found"})
	case errors.Is(err, store.ErrVocabNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Vocabulary not found"})
	case err != nil:
		h.log.Errorw("failed to update vocabulary", "id", id.Hex(), "pronunciation", pronunciation, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update vocabulary"})
	default:
		c.JSON(http.StatusOK, lesson)
	}
}

func (h *LessonHandler) DeleteVocab(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lesson ID"})
		return
	}
	pronunciation := c.Param("pronunciation")

	lesson, err := h.lessons.DeleteVocab(c.Request.Context(), id, pronunciation)
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Lesson not found"})
	case errors.Is(err, store.ErrVocabNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Vocabulary not found"})
	case err != nil:
		h.log.Errorw("failed to delete vocabulary", "id", id.Hex(), "pronunciation", pronunciation, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete vocabulary"})
	default:
		c.JSON(http.StatusOK, lesson)
	}
}
