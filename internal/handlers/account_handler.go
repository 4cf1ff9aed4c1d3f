package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/taniteam/catatan/internal/errors"
	"github.com/taniteam/catatan/internal/models"
	"github.com/taniteam/catatan/internal/services"
)

// AccountHandler handles chart-of-accounts requests.
type AccountHandler struct {
	accountService services.AccountServicer
	auditService   services.AuditServicer
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountService services.AccountServicer, auditService services.AuditServicer) *AccountHandler {
	return &AccountHandler{accountService: accountService, auditService: auditService}
}

// List returns the accounts with derived balances.
func (h *AccountHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"accounts": h.accountService.List()})
}

// CreateAccountRequest represents the request payload for adding an
// account; the caller supplies its own account id.
type CreateAccountRequest struct {
	ID   string             `json:"id" binding:"required,max=100"`
	Name string             `json:"name" binding:"required,max=200"`
	Type models.AccountType `json:"type" binding:"required,account_type"`
}

// Create adds an account to the chart (administrator only).
func (h *AccountHandler) Create(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	account, err := h.accountService.Create(actor, req.ID, req.Name, req.Type)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Record(&actor, models.AuditCreate,
		fmt.Sprintf("Menambahkan rekening baru: %s (%s)", account.Name, account.ID), "")

	c.JSON(http.StatusCreated, gin.H{"account": account})
}

// UpdateAccountRequest represents the request payload for editing an
// account; absent fields are left unchanged.
type UpdateAccountRequest struct {
	Name *string             `json:"name" binding:"omitempty,max=200"`
	Type *models.AccountType `json:"type" binding:"omitempty,account_type"`
}

// Update merges partial fields into an existing account (administrator only).
func (h *AccountHandler) Update(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	account, err := h.accountService.Update(actor, c.Param("id"), services.AccountUpdateFields{
		Name: req.Name,
		Type: req.Type,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Record(&actor, models.AuditUpdate,
		fmt.Sprintf("Memperbarui detail rekening %s", account.ID), "")

	c.JSON(http.StatusOK, gin.H{"account": account})
}

// Delete removes an account (administrator only). Deletion does not
// cascade: transactions referencing the removed account are kept and
// still render with the stored account id as their label.
func (h *AccountHandler) Delete(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	deleted, err := h.accountService.Delete(actor, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Record(&actor, models.AuditDelete,
		fmt.Sprintf("Menghapus rekening %s", deleted.ID), "")

	c.JSON(http.StatusOK, gin.H{"message": "Account deleted successfully"})
}
