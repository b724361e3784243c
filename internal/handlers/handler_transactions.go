package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mdrafsun/Advance-tracker/internal/apperrors"
	"github.com/mdrafsun/Advance-tracker/internal/core/domain"
	portssvc "github.com/mdrafsun/Advance-tracker/internal/core/ports/services"
	"github.com/mdrafsun/Advance-tracker/internal/dto"
	"github.com/mdrafsun/Advance-tracker/internal/middleware"
)

// transactionHandler handles HTTP requests for recording and managing the
// four transaction kinds plus the per-user summary.
type transactionHandler struct {
	financeService portssvc.FinanceSvcFacade
}

func newTransactionHandler(fs portssvc.FinanceSvcFacade) *transactionHandler {
	return &transactionHandler{financeService: fs}
}

// registerTransactionRoutes registers transaction and summary routes.
func registerTransactionRoutes(rg *gin.RouterGroup, fs portssvc.FinanceSvcFacade) {
	h := newTransactionHandler(fs)

	rg.POST("/income", h.record(domain.KindIncome))
	rg.POST("/expense", h.record(domain.KindExpense))
	rg.POST("/savings", h.record(domain.KindSavings))
	rg.POST("/loan", h.record(domain.KindLoan))

	txns := rg.Group("/transactions")
	{
		txns.GET("/:kind/:id", h.getTransaction)
		txns.PUT("/:kind/:id", h.updateTransaction)
		txns.DELETE("/:kind/:id", h.deleteTransaction)
	}

	rg.GET("/summary", h.getSummary)
}

func parseKind(raw string) (domain.TransactionKind, error) {
	switch domain.TransactionKind(raw) {
	case domain.KindIncome, domain.KindExpense, domain.KindSavings, domain.KindLoan:
		return domain.TransactionKind(raw), nil
	default:
		return "", fmt.Errorf("%w: unknown transaction kind %q", apperrors.ErrValidation, raw)
	}
}

func (h *transactionHandler) record(kind domain.TransactionKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		var req dto.RecordTransactionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Warn("Failed to bind transaction request", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
			return
		}

		created, err := h.financeService.Record(c.Request.Context(), kind, req)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, dto.ToTransactionResponse(created))
	}
}

func (h *transactionHandler) getTransaction(c *gin.Context) {
	kind, err := parseKind(c.Param("kind"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	txn, err := h.financeService.GetTransaction(c.Request.Context(), kind, c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	kind, err := parseKind(c.Param("kind"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind transaction update", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.financeService.UpdateTransaction(c.Request.Context(), kind, c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(updated))
}

func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	kind, err := parseKind(c.Param("kind"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if err := h.financeService.DeleteTransaction(c.Request.Context(), kind, c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *transactionHandler) getSummary(c *gin.Context) {
	summary, err := h.financeService.GetUserSummary(c.Request.Context(), c.Query("userId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
