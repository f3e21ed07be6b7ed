package checkout

import (
	"beeos/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupCheckoutRoutes(router *gin.RouterGroup, controller *Controller, authMiddleware gin.HandlerFunc) {
	RegisterValidations()

	checkoutGroup := router.Group("/checkout")
	checkoutGroup.Use(authMiddleware)
	{
		checkoutGroup.POST("/session", controller.StartSession) // POST /api/v1/checkout/session
		checkoutGroup.GET("/session", controller.GetSession)    // GET /api/v1/checkout/session
		checkoutGroup.POST("/submit", controller.Submit)        // POST /api/v1/checkout/submit
	}

	transactionGroup := router.Group("/transactions")
	transactionGroup.Use(authMiddleware)
	{
		transactionGroup.GET("", controller.GetUserTransactions) // GET /api/v1/transactions
		transactionGroup.GET("/:id", controller.GetTransaction)  // GET /api/v1/transactions/:id
	}

	adminGroup := router.Group("/admin/transactions")
	adminGroup.Use(authMiddleware, middleware.RequireAdmin())
	{
		adminGroup.GET("", controller.ListAllTransactions)              // GET /api/v1/admin/transactions
		adminGroup.GET("/code/:code", controller.GetTransactionByCode)  // GET /api/v1/admin/transactions/code/:code
		adminGroup.PATCH("/:id/status", controller.UpdatePaymentStatus) // PATCH /api/v1/admin/transactions/:id/status
	}
}
