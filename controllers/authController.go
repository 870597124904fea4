package controllers

import (
	"NileDialysis/handlers"
	"NileDialysis/middlewares"
	"NileDialysis/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Handler *handlers.UserHandler
}

func NewAuthController(userHandler *handlers.UserHandler) *AuthController {
	return &AuthController{Handler: userHandler}
}

// RegisterRoutes wires the authentication and account management routes.
// Account management is restricted to administrators.
func (ac *AuthController) RegisterRoutes(router *gin.Engine) {
	// Public routes: no access token required
	router.POST("/auth/login", ac.Handler.Login)
	router.POST("/auth/refresh-token", ac.Handler.RefreshToken)

	adminGroup := router.Group("/users").Use(
		middlewares.TokenAuthMiddleware(),
		middlewares.RoleAuthMiddleware(utils.RoleAdmin),
	)
	{
		adminGroup.GET("", ac.Handler.ListUsers)
		adminGroup.POST("", ac.Handler.CreateUser)
		adminGroup.PUT("/:user_id", ac.Handler.UpdateUser)
		adminGroup.DELETE("/:user_id", ac.Handler.DeleteUser)
	}
}
