package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/taniteam/catatan/internal/models"
	"github.com/taniteam/catatan/internal/report"
	"github.com/taniteam/catatan/internal/services"
)

// ReportHandler serves the CSV export of the displayed transaction view.
type ReportHandler struct {
	transactionService services.TransactionServicer
	auditService       services.AuditServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(transactionService services.TransactionServicer, auditService services.AuditServicer) *ReportHandler {
	return &ReportHandler{transactionService: transactionService, auditService: auditService}
}

// ExportTransactionsCSV renders the post-filter transaction sequence as a
// CSV attachment. The export itself is an audited action.
func (h *ReportHandler) ExportTransactionsCSV(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	filter, err := parseViewFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactions := h.transactionService.List(filter)
	body := report.TransactionsCSV(transactions)
	filename := report.Filename(time.Now(), filter.AccountID, filter.Query)

	h.auditService.Record(&actor, models.AuditCreate,
		fmt.Sprintf("Mengunduh laporan (%d data) dalam format CSV", len(transactions)), "")

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", body)
}
