package routes

import (
	"atelie_crm/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathClients  = "/clients"
	PathServices = "/services"
	PathOrders   = "/orders"
	PathFinance  = "/finance"
	PathCashbook = "/cashbook"
)

func addCRMRoutes(
	rg *gin.RouterGroup,
	clientHandler *handlers.ClientHandler,
	serviceHandler *handlers.ServiceHandler,
	orderHandler *handlers.ServiceOrderHandler,
	financeHandler *handlers.FinanceHandler,
	cashbookHandler *handlers.CashbookHandler,
	sessionHandler *handlers.SessionHandler,
) {
	rg.POST("/refresh", sessionHandler.Refresh)
	rg.GET("/dashboard", sessionHandler.Dashboard)

	clients := rg.Group(PathClients)
	{
		clients.GET("", clientHandler.ListClients)
		clients.POST("", clientHandler.CreateClient)
		clients.PATCH("/:id", clientHandler.UpdateClient)
		clients.DELETE("/:id", clientHandler.DeleteClient)
	}

	services := rg.Group(PathServices)
	{
		services.GET("", serviceHandler.ListServices)
		services.POST("", serviceHandler.CreateService)
		services.PATCH("/:id", serviceHandler.UpdateService)
		services.DELETE("/:id", serviceHandler.DeleteService)
	}

	orders := rg.Group(PathOrders)
	{
		orders.GET("", orderHandler.ListOrders)
		orders.POST("", orderHandler.CreateOrder)
		orders.PATCH("/:id", orderHandler.UpdateOrder)
		orders.DELETE("/:id", orderHandler.DeleteOrder)
	}

	finance := rg.Group(PathFinance)
	{
		finance.GET("/entries", financeHandler.ListEntries)
		finance.POST("/entries", financeHandler.CreateEntry)
		finance.PATCH("/entries/:id", financeHandler.UpdateEntry)
		finance.DELETE("/entries/:id", financeHandler.DeleteEntry)
		finance.POST("/entries/:id/pay", financeHandler.PayEntry)
		finance.GET("/overdue", financeHandler.ListOverdue)
		finance.GET("/summary", financeHandler.PendingSummary)
	}

	cashbook := rg.Group(PathCashbook)
	{
		cashbook.GET("/movements", cashbookHandler.ListMovements)
		cashbook.POST("/movements", cashbookHandler.CreateMovement)
		cashbook.GET("/balance", cashbookHandler.GetBalance)
		cashbook.GET("/summary", cashbookHandler.GetSummary)
		cashbook.GET("/categories", cashbookHandler.ListCategories)
	}
}
