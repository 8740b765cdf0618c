package handler

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers the transaction routes
func (h *TransactionHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/v1")

	g.GET("/transactions", h.GetTransactions)
	g.GET("/statistics", h.GetStatistics)
	g.GET("/barchart", h.GetBarChart)
	g.GET("/piechart", h.GetPieChart)
	g.GET("/combined", h.GetCombined)
	g.GET("/init", h.Init)
}
