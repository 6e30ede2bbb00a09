package handlers

import (
	"net/http"

	"carmart/internal/analytics"
	"carmart/internal/common"
	"carmart/internal/models"

	"github.com/labstack/echo/v4"
)

// AnalyticsHandlers handles HTTP requests for dealer analytics
type AnalyticsHandlers struct {
	analyticsService *analytics.AnalyticsService
}

func NewAnalyticsHandlers(analyticsService *analytics.AnalyticsService) *AnalyticsHandlers {
	return &AnalyticsHandlers{analyticsService: analyticsService}
}

// GetAnalytics handles GET /analytics/:dealerId?period=daily|weekly|monthly
func (h *AnalyticsHandlers) GetAnalytics(c echo.Context) error {
	dealerID, err := common.ValidateUUID(c.Param("dealerId"), "dealerId")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	period := c.QueryParam("period")
	if period == "" {
		period = models.PeriodDaily
	}

	snapshot, err := h.analyticsService.Snapshot(c.Request().Context(), dealerID, period)
	if err != nil {
		return common.SendClientError(c, err.Error())
	}
	return c.JSON(http.StatusOK, snapshot)
}

// GetAnalyticsHistory handles GET /analytics/:dealerId/history?period=...
func (h *AnalyticsHandlers) GetAnalyticsHistory(c echo.Context) error {
	dealerID, err := common.ValidateUUID(c.Param("dealerId"), "dealerId")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	period := c.QueryParam("period")
	if period == "" {
		period = models.PeriodDaily
	}

	history, err := h.analyticsService.History(c.Request().Context(), dealerID, period)
	if err != nil {
		return common.SendClientError(c, err.Error())
	}
	return c.JSON(http.StatusOK, history)
}
