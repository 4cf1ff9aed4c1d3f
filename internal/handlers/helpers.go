package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "github.com/taniteam/catatan/internal/errors"
	"github.com/taniteam/catatan/internal/logger"
	"github.com/taniteam/catatan/internal/middleware"
	"github.com/taniteam/catatan/internal/models"
	"github.com/taniteam/catatan/internal/view"
)

// getActor extracts the authenticated staff member from the Gin context.
// Returns ErrUnauthorized if not present.
func getActor(c *gin.Context) (models.Staff, error) {
	actor, ok := middleware.Actor(c)
	if !ok {
		return models.Staff{}, apperrors.ErrUnauthorized
	}
	return actor, nil
}

// parseViewFilter builds the transaction view filter from query
// parameters. The tab defaults to the recent view when absent.
func parseViewFilter(c *gin.Context) (view.Filter, error) {
	filter := view.Filter{
		AccountID: c.Query("account_id"),
		Query:     c.Query("q"),
		Tab:       view.TabRecent,
	}

	if v := c.Query("tab"); v != "" {
		tab := view.Tab(v)
		if !tab.IsValid() {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid tab, must be RECENT, ALL, ACCOUNTS, or LOGS")
		}
		filter.Tab = tab
	}

	if v := c.Query("start_date"); v != "" {
		dt, err := models.ParseDateTime(v)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid start_date format, use YYYY-MM-DD")
		}
		filter.StartDate = &dt
	}

	if v := c.Query("end_date"); v != "" {
		dt, err := models.ParseDateTime(v)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid end_date format, use YYYY-MM-DD")
		}
		filter.EndDate = &dt
	}

	return filter, nil
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, gin.H{
		"error": gin.H{
			"code":    apperrors.ErrInternalServer.Code,
			"message": apperrors.ErrInternalServer.Message,
		},
	})
}

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}
