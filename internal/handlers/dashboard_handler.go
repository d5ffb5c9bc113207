package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fintrack/internal/analytics"
	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/services"
)

// DashboardHandler serves the aggregated dashboard views.
type DashboardHandler struct {
	transactionService services.TransactionServicer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(transactionService services.TransactionServicer) *DashboardHandler {
	return &DashboardHandler{transactionService: transactionService}
}

// SummaryQuery holds the optional filter parameters for the summary view.
// Filters compose by AND; omitted values mean no restriction.
type SummaryQuery struct {
	Search string `form:"search"`
	Type   string `form:"type" binding:"omitempty,direction_filter"`
	Range  string `form:"range" binding:"omitempty,time_range"`
}

// GetSummary computes the dashboard aggregates over the authenticated
// user's transactions, after applying the requested filters. Time windows
// are relative to the moment of the request.
// @Summary     Dashboard summary
// @Description Totals, category breakdown, and monthly series over the filtered transaction set
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       search query string false "Case-insensitive substring match on title or category"
// @Param       type   query string false "Direction filter (all, income, expense)"
// @Param       range  query string false "Time range (all, week, month, quarter)"
// @Success     200 {object} map[string]interface{} "Summary, by_category, by_month, count"
// @Failure     400 {object} ErrorResponse "Invalid filter"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/summary [get]
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var q SummaryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	transactions, err := h.transactionService.GetUserTransactions(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	criteria := analytics.Criteria{
		Search:    q.Search,
		Direction: analytics.DirectionFilter(q.Type),
		Range:     analytics.TimeRange(q.Range),
	}
	filtered := analytics.Apply(transactions, criteria, time.Now())

	c.JSON(http.StatusOK, gin.H{
		"summary":     analytics.Summarize(filtered),
		"by_category": analytics.ByCategory(filtered),
		"by_month":    analytics.ByMonth(filtered),
		"count":       len(filtered),
	})
}

// GetCategories returns the suggested transaction categories.
// @Summary     Suggested categories
// @Description The fixed category set offered at creation time; free-form values are still accepted
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "Category list"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /categories [get]
func (h *DashboardHandler) GetCategories(c *gin.Context) {
	if _, err := getUserID(c); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": models.SuggestedCategories})
}
