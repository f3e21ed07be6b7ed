package auth

import (
	"github.com/gin-gonic/gin"
)

func SetupAuthRoutes(router *gin.RouterGroup, controller *Controller) {
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", controller.Register) // POST /api/v1/auth/register
		authGroup.POST("/login", controller.Login)       // POST /api/v1/auth/login
		authGroup.POST("/refresh", controller.Refresh)   // POST /api/v1/auth/refresh
	}
}
