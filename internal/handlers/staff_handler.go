package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/taniteam/catatan/internal/errors"
	"github.com/taniteam/catatan/internal/models"
	"github.com/taniteam/catatan/internal/services"
)

// StaffHandler handles staff administration requests.
type StaffHandler struct {
	staffService services.StaffServicer
	auditService services.AuditServicer
}

// NewStaffHandler creates a new StaffHandler.
func NewStaffHandler(staffService services.StaffServicer, auditService services.AuditServicer) *StaffHandler {
	return &StaffHandler{staffService: staffService, auditService: auditService}
}

// List returns the staff roster.
func (h *StaffHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"staff": h.staffService.List()})
}

// CreateStaffRequest represents the request payload for registering a
// staff member. The role defaults to Staff when omitted.
type CreateStaffRequest struct {
	Name     string      `json:"name" binding:"required,max=200"`
	Username string      `json:"username" binding:"required,max=100"`
	Role     models.Role `json:"role" binding:"omitempty,staff_role"`
}

// Create registers a new staff member (administrator only).
func (h *StaffHandler) Create(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	member, err := h.staffService.Create(actor, req.Name, req.Username, req.Role)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Record(&actor, models.AuditCreate,
		fmt.Sprintf("Daftar staff baru: %s (%s)", member.Name, member.Role), "")

	c.JSON(http.StatusCreated, gin.H{"staff": member})
}

// UpdateRoleRequest represents the request payload for a role change.
type UpdateRoleRequest struct {
	Role models.Role `json:"role" binding:"required,staff_role"`
}

// UpdateRole changes a staff member's role (administrator only).
func (h *StaffHandler) UpdateRole(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	member, err := h.staffService.UpdateRole(actor, c.Param("id"), req.Role)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Record(&actor, models.AuditUpdate,
		fmt.Sprintf("Mengubah akses staff %s menjadi %s", member.Name, member.Role), "")

	c.JSON(http.StatusOK, gin.H{"staff": member})
}

// Delete removes a staff member using the two-step confirmation protocol.
// The reserved admin username is rejected regardless of caller.
func (h *StaffHandler) Delete(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id := c.Param("id")
	if c.Query("confirm") != "true" {
		intent, err := h.staffService.RequestDelete(actor, id)
		if err != nil {
			respondWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"requiresConfirmation": true, "intent": intent})
		return
	}

	deleted, err := h.staffService.Delete(actor, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Record(&actor, models.AuditDelete,
		fmt.Sprintf("Menonaktifkan staff: %s", deleted.Name), "")

	c.JSON(http.StatusOK, gin.H{"message": "Staff member deleted successfully"})
}
