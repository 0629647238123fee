package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hrdash/hr-dashboard-api/internal/domain"
	"github.com/hrdash/hr-dashboard-api/internal/service"
)

type StatsHandler struct {
	stats *service.StatsService
}

func RegisterStats(e *echo.Echo, auth *service.AuthService, stats *service.StatsService) {
	handler := &StatsHandler{stats: stats}

	g := e.Group("/api/v1/stats", RequireAuth(auth))
	g.GET("", handler.dashboard, RequireCapability(domain.CapabilityViewRecords))
}

func (h *StatsHandler) dashboard(c echo.Context) error {
	stats, err := h.stats.Dashboard(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}
