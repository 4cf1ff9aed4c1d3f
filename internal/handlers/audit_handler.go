package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taniteam/catatan/internal/services"
)

// AuditHandler serves the audit log view.
type AuditHandler struct {
	auditService services.AuditServicer
}

// NewAuditHandler creates a new AuditHandler.
func NewAuditHandler(auditService services.AuditServicer) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// List returns the audit entries in storage order, newest first.
func (h *AuditHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"logs": h.auditService.List()})
}
