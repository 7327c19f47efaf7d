package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mahmoodiftee/Learn-server/internal/auth"
	"github.com/mahmoodiftee/Learn-server/internal/logger"
	"github.com/mahmoodiftee/Learn-server/internal/model"
	"github.com/mahmoodiftee/Learn-server/internal/store"
)

type AuthHandler struct {
	users     store.Users
	jwtSecret string
	log       *logger.Logger
}

func NewAuthHandler(users store.Users, jwtSecret string, log *logger.Logger) *AuthHandler {
	return &AuthHandler{users: users, jwtSecret: jwtSecret, log: log}
}

type RegisterRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required"`
	ProfileImage string `json:"profileImage"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, email and password are required"})
		return
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		h.log.Errorw("failed to hash password", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred during registration."})
		return
	}

	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		Password:     hashed,
		ProfileImage: req.ProfileImage,
		Role:         model.RoleUser,
	}

	id, err := h.users.Create(c.Request.Context(), user)
	if errors.Is(err, store.ErrDuplicateEmail) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists. Please use a different email."})
		return
	}
	if err != nil {
		h.log.Errorw("failed to register user", "email", req.Email, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred during registration."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"userId":  id.Hex(),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	user, err := h.users.FindByEmail(c.Request.Context(), req.Email)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		h.log.Errorw("failed to look up user", "email", req.Email, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred during login"})
		return
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
		return
	}

	token, err := auth.GenerateToken(user, h.jwtSecret)
	if err != nil {
		h.log.Errorw("failed to generate token", "email", req.Email, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred during login"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user":    user.Public(),
	})
}
