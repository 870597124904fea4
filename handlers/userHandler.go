package handlers

import (
	"NileDialysis/models"
	"NileDialysis/services"
	"NileDialysis/utils"
	"strconv"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	service *services.UserService
}

func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Login authenticates a user and returns a PASETO token pair.
func (h *UserHandler) Login(c *gin.Context) {
	var credentials struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&credentials); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	user, err := h.service.GetByUsername(c, credentials.Username)
	if err != nil || !user.IsActive || !utils.CheckPassword(user.PasswordHash, credentials.Password) {
		c.JSON(401, gin.H{"error": "Invalid username or password"})
		return
	}

	accessToken, refreshToken, err := utils.GenerateTokens(strconv.FormatUint(uint64(user.ID), 10), user.Role)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to generate tokens"})
		return
	}
	c.JSON(200, gin.H{
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
		"user":         user,
	})
}

// RefreshToken exchanges a still-valid token for a fresh access token.
func (h *UserHandler) RefreshToken(c *gin.Context) {
	var req struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}
	claims, err := utils.ValidateToken(req.Token, utils.AllRoles...)
	if err != nil {
		c.JSON(401, gin.H{"error": "Invalid or expired token"})
		return
	}
	accessToken, err := utils.GenerateAccessToken(claims.UserID, claims.Role)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to generate access token"})
		return
	}
	c.JSON(200, gin.H{"accessToken": accessToken})
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.service.List(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, users)
}

type userRequest struct {
	models.User
	Password string `json:"password"`
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateUserData(req.User, req.Password); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to hash password"})
		return
	}
	req.User.PasswordHash = hash
	if err := h.service.Create(c, &req.User); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(201, req.User)
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := uintParam(c, "user_id")
	if !ok {
		return
	}
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	req.User.ID = id
	// An empty password keeps the stored hash.
	if req.Password != "" {
		if err := utils.ValidateUserData(req.User, req.Password); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		hash, err := utils.HashPassword(req.Password)
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to hash password"})
			return
		}
		req.User.PasswordHash = hash
	}
	if err := h.service.Update(c, &req.User); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, req.User)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := uintParam(c, "user_id")
	if !ok {
		return
	}
	if err := h.service.Delete(c, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "User deleted"})
}
