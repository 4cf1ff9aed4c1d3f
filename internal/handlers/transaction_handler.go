package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "github.com/taniteam/catatan/internal/errors"
	"github.com/taniteam/catatan/internal/format"
	"github.com/taniteam/catatan/internal/models"
	"github.com/taniteam/catatan/internal/services"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
	auditService       services.AuditServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer, auditService services.AuditServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService, auditService: auditService}
}

// CreateTransactionRequest represents the request payload for recording a
// transaction. The amount is signed: positive for inflow, negative for
// outflow.
type CreateTransactionRequest struct {
	Code         string          `json:"code" binding:"required,max=100"`
	Date         string          `json:"date" binding:"required"`
	CustomerName string          `json:"customerName" binding:"required,max=200"`
	CustomerUser string          `json:"customerUser" binding:"required,max=100"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	Description  string          `json:"description" binding:"max=500"`
	AccountID    string          `json:"accountId" binding:"required,max=100"`
}

// List returns the displayed transaction sequence for the active filter
// inputs (account scope, date range, search query, tab mode).
func (h *TransactionHandler) List(c *gin.Context) {
	filter, err := parseViewFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": h.transactionService.List(filter)})
}

// Summary returns the three aggregate figures over the entire transaction
// collection, regardless of any active filter.
func (h *TransactionHandler) Summary(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"summary": h.transactionService.Summary()})
}

// Create records a new transaction and audits it.
func (h *TransactionHandler) Create(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date, err := models.ParseDateTime(req.Date)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	transaction, err := h.transactionService.Create(actor, services.TransactionCreateFields{
		Code:         req.Code,
		Date:         date,
		CustomerName: req.CustomerName,
		CustomerUser: req.CustomerUser,
		Amount:       req.Amount,
		Description:  req.Description,
		AccountID:    req.AccountID,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Record(&actor, models.AuditCreate,
		fmt.Sprintf("Input transaksi baru %s senilai %s", transaction.Code, format.SignedRupiah(transaction.Amount)),
		transaction.ID)

	c.JSON(http.StatusCreated, gin.H{"transaction": transaction})
}

// UpdateTransactionRequest represents the request payload for editing a
// transaction; absent fields are left unchanged.
type UpdateTransactionRequest struct {
	Code         *string          `json:"code" binding:"omitempty,max=100"`
	Date         *string          `json:"date"`
	CustomerName *string          `json:"customerName" binding:"omitempty,max=200"`
	CustomerUser *string          `json:"customerUser" binding:"omitempty,max=100"`
	Amount       *decimal.Decimal `json:"amount"`
	Description  *string          `json:"description" binding:"omitempty,max=500"`
	AccountID    *string          `json:"accountId" binding:"omitempty,max=100"`
}

// Update merges partial fields into an existing transaction. The final
// balance snapshot is never recomputed.
func (h *TransactionHandler) Update(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	fields := services.TransactionUpdateFields{
		Code:         req.Code,
		CustomerName: req.CustomerName,
		CustomerUser: req.CustomerUser,
		Amount:       req.Amount,
		Description:  req.Description,
		AccountID:    req.AccountID,
	}

	if req.Date != nil && *req.Date != "" {
		parsed, parseErr := models.ParseDateTime(*req.Date)
		if parseErr != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, parseErr.Error()))
			return
		}
		fields.Date = &parsed
	}

	transaction, err := h.transactionService.Update(actor, c.Param("id"), fields)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Record(&actor, models.AuditUpdate,
		fmt.Sprintf("Mengedit transaksi %s (Pelanggan: %s)", transaction.Code, transaction.CustomerName),
		transaction.ID)

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// Delete removes a transaction using the two-step confirmation protocol:
// without confirm=true it returns the delete intent and changes nothing;
// with it, the transaction is removed and the deletion audited. Only an
// administrator or the recording staff member may delete.
func (h *TransactionHandler) Delete(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id := c.Param("id")
	if c.Query("confirm") != "true" {
		intent, err := h.transactionService.RequestDelete(actor, id)
		if err != nil {
			respondWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"requiresConfirmation": true, "intent": intent})
		return
	}

	deleted, err := h.transactionService.Delete(actor, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Record(&actor, models.AuditDelete,
		fmt.Sprintf("Menghapus transaksi %s", deleted.Code), deleted.ID)

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}
