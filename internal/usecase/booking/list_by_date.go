package booking

import (
	"context"
	"time"

	domain "github.com/BarbeariaNavalha/booking-engine/internal/domain/booking"
	"github.com/BarbeariaNavalha/booking-engine/internal/models"
)

type ListBookingsByDate struct {
	repo domain.Repository
}

func NewListBookingsByDate(repo domain.Repository) *ListBookingsByDate {
	return &ListBookingsByDate{repo: repo}
}

func (uc *ListBookingsByDate) Execute(
	ctx context.Context,
	day time.Time,
) ([]models.Booking, error) {

	dayStart := midnightOf(day)
	dayEnd := dayStart.AddDate(0, 0, 1)

	raw, err := uc.repo.ListBookingsForDay(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	records, report := domain.Clean(raw)
	observeScrub("list_by_date", report)

	return records, nil
}
