package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/salesdash/salesdash/internal/pkg/models"
	"github.com/salesdash/salesdash/internal/utils"
	"github.com/salesdash/salesdash/services/transactions"
)

// TransactionHandler handles HTTP requests for transaction queries
type TransactionHandler struct {
	transactionUC transactions.TransactionUC
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionUC transactions.TransactionUC) *TransactionHandler {
	return &TransactionHandler{
		transactionUC: transactionUC,
	}
}

// mapError translates use case failures to the JSON error envelope:
// invalid month is the caller's fault, everything else is ours.
func mapError(c echo.Context, err error) error {
	if errors.Is(err, models.ErrInvalidMonth) {
		return utils.BadRequestResponse(c, "month must be one of the twelve English month names")
	}
	return utils.InternalServerErrorResponse(c, "failed to process request", err.Error())
}

// intQueryParam parses an integer query parameter, falling back to the
// default when absent or malformed.
func intQueryParam(c echo.Context, name string, defaultValue int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return value
}

// GetTransactions handles GET /transactions
func (h *TransactionHandler) GetTransactions(c echo.Context) error {
	month := c.QueryParam("month")
	search := c.QueryParam("search")
	page := intQueryParam(c, "page", 1)
	perPage := intQueryParam(c, "perPage", 0)

	list, err := h.transactionUC.ListTransactions(c.Request().Context(), month, search, page, perPage)
	if err != nil {
		return mapError(c, err)
	}

	return c.JSON(http.StatusOK, list)
}

// GetStatistics handles GET /statistics
func (h *TransactionHandler) GetStatistics(c echo.Context) error {
	stats, err := h.transactionUC.Statistics(c.Request().Context(), c.QueryParam("month"))
	if err != nil {
		return mapError(c, err)
	}

	return c.JSON(http.StatusOK, stats)
}

// GetBarChart handles GET /barchart
func (h *TransactionHandler) GetBarChart(c echo.Context) error {
	slices, err := h.transactionUC.BarChart(c.Request().Context(), c.QueryParam("month"))
	if err != nil {
		return mapError(c, err)
	}

	return c.JSON(http.StatusOK, slices)
}

// GetPieChart handles GET /piechart
func (h *TransactionHandler) GetPieChart(c echo.Context) error {
	slices, err := h.transactionUC.PieChart(c.Request().Context(), c.QueryParam("month"))
	if err != nil {
		return mapError(c, err)
	}

	return c.JSON(http.StatusOK, slices)
}

// GetCombined handles GET /combined
func (h *TransactionHandler) GetCombined(c echo.Context) error {
	combined, err := h.transactionUC.Combined(c.Request().Context(), c.QueryParam("month"))
	if err != nil {
		return mapError(c, err)
	}

	return c.JSON(http.StatusOK, combined)
}

// Init handles GET /init, the manual destructive reseed trigger
func (h *TransactionHandler) Init(c echo.Context) error {
	count, err := h.transactionUC.Reseed(c.Request().Context())
	if err != nil {
		return utils.InternalServerErrorResponse(c, "failed to reseed transactions", err.Error())
	}

	return c.JSON(http.StatusOK, models.ReseedResult{
		Message:       "database seeded successfully",
		DocumentCount: count,
	})
}
