package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BarbeariaNavalha/booking-engine/internal/domain/booking"
	"github.com/BarbeariaNavalha/booking-engine/internal/httperr"
	"github.com/BarbeariaNavalha/booking-engine/internal/httpresp"
	"github.com/BarbeariaNavalha/booking-engine/internal/timezone"
	"github.com/BarbeariaNavalha/booking-engine/internal/usecase/booking"
)

type DashboardHandler struct {
	stats   *booking.GetDashboardStats
	clients *booking.ListClients
}

func NewDashboardHandler(
	stats *booking.GetDashboardStats,
	clients *booking.ListClients,
) *DashboardHandler {
	return &DashboardHandler{
		stats:   stats,
		clients: clients,
	}
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	period := domain.Period(c.DefaultQuery("period", string(domain.PeriodDay)))

	switch period {
	case domain.PeriodDay, domain.PeriodWeek, domain.PeriodMonth:
	default:
		httperr.BadRequest(c, "invalid_period", "Período deve ser day, week ou month.")
		return
	}

	stats, err := h.stats.Execute(c.Request.Context(), period, timezone.Now())
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, stats)
}

func (h *DashboardHandler) Clients(c *gin.Context) {
	clients, err := h.clients.Execute(c.Request.Context())
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.List(c, clients)
}
