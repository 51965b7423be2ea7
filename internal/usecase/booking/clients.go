package booking

import (
	"context"
	"time"

	domain "github.com/BarbeariaNavalha/booking-engine/internal/domain/booking"
)

type ListClients struct {
	repo domain.Repository
}

func NewListClients(repo domain.Repository) *ListClients {
	return &ListClients{repo: repo}
}

func (uc *ListClients) Execute(
	ctx context.Context,
) ([]domain.ClientStat, error) {

	raw, err := uc.repo.ListBookingsSince(ctx, time.Time{})
	if err != nil {
		return nil, err
	}

	records, report := domain.Clean(raw)
	observeScrub("clients", report)

	return domain.BuildClientStats(records), nil
}
