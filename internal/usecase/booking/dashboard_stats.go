package booking

import (
	"context"
	"time"

	domain "github.com/BarbeariaNavalha/booking-engine/internal/domain/booking"
)

type GetDashboardStats struct {
	repo domain.Repository
}

func NewGetDashboardStats(repo domain.Repository) *GetDashboardStats {
	return &GetDashboardStats{repo: repo}
}

func (uc *GetDashboardStats) Execute(
	ctx context.Context,
	period domain.Period,
	now time.Time,
) (domain.DashboardStats, error) {

	from := domain.WindowStart(period, now)

	raw, err := uc.repo.ListBookingsSince(ctx, from)
	if err != nil {
		return domain.DashboardStats{}, err
	}

	records, report := domain.Clean(raw)
	observeScrub("dashboard_stats", report)

	// Fallback de preço para registros antigos gravados sem price.
	services, err := uc.repo.ListServices(ctx)
	if err != nil {
		return domain.DashboardStats{}, err
	}

	listPrice := make(map[string]float64, len(services))
	for _, s := range services {
		listPrice[s.ID] = s.Price
	}

	priceOf := func(serviceID string) float64 {
		return listPrice[serviceID]
	}

	return domain.BuildDashboardStats(records, from, priceOf), nil
}
