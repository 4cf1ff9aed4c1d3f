package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/taniteam/catatan/internal/errors"
	"github.com/taniteam/catatan/internal/middleware"
	"github.com/taniteam/catatan/internal/models"
	"github.com/taniteam/catatan/internal/services"
)

// AuthHandler handles the login surface.
type AuthHandler struct {
	staffService services.StaffServicer
	auditService services.AuditServicer
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(staffService services.StaffServicer, auditService services.AuditServicer) *AuthHandler {
	return &AuthHandler{staffService: staffService, auditService: auditService}
}

// LoginRequest represents the login request payload. The password field
// is accepted for form parity and never verified.
type LoginRequest struct {
	Username string `json:"username" binding:"required,max=100"`
	Password string `json:"password" binding:"required"`
}

// StaffResponse represents a staff member in responses.
type StaffResponse struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
}

// AuthResponse represents the authentication response with a session token.
type AuthResponse struct {
	Token string        `json:"token"`
	User  StaffResponse `json:"user"`
}

// Login matches the username case-insensitively against the staff roster,
// issues a session token, and records a LOGIN audit entry. An unknown
// username changes no state.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	staff, err := h.staffService.Login(req.Username)
	if err != nil {
		respondWithError(c, err)
		return
	}

	token, err := middleware.GenerateSessionToken(staff)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	h.auditService.Record(staff, models.AuditLogin,
		fmt.Sprintf("User @%s berhasil masuk ke sistem", staff.Username), "")

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": StaffResponse{
			ID:       staff.ID,
			Name:     staff.Name,
			Username: staff.Username,
			Role:     staff.Role,
		},
	})
}

// Logout records the end of a session. The session token itself is not
// revoked; it simply expires.
func (h *AuthHandler) Logout(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Record(&actor, models.AuditLogin,
		fmt.Sprintf("User @%s keluar dari sistem", actor.Username), "")

	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
