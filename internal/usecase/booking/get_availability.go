package booking

import (
	"context"
	"time"

	"github.com/BarbeariaNavalha/booking-engine/internal/cache"
	domain "github.com/BarbeariaNavalha/booking-engine/internal/domain/booking"
	"github.com/BarbeariaNavalha/booking-engine/internal/httperr"
)

type AvailabilityInput struct {
	BarberID  string
	ServiceID string
	Date      time.Time
}

type GetAvailability struct {
	repo  domain.Repository
	hours domain.WorkingHours
	cache *cache.AvailabilityCache
}

func NewGetAvailability(
	repo domain.Repository,
	hours domain.WorkingHours,
	availCache *cache.AvailabilityCache,
) *GetAvailability {
	return &GetAvailability{
		repo:  repo,
		hours: hours,
		cache: availCache,
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) ([]time.Time, error) {

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	barber, err := uc.repo.GetBarber(ctx, in.BarberID)
	if err != nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}
	if !barber.Active {
		return []time.Time{}, nil
	}

	if uc.cache != nil {
		if slots, ok := uc.cache.Get(ctx, in.BarberID, in.ServiceID, in.Date); ok {
			return slots, nil
		}
	}

	dayStart := midnightOf(in.Date)
	dayEnd := dayStart.AddDate(0, 0, 1)

	raw, err := uc.repo.ListBookingsForBarberDay(ctx, in.BarberID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	// O snapshot do store pode chegar com duplicatas ou registros
	// malformados; limpamos em TODA leitura, não só no boot.
	records, report := domain.Clean(raw)
	observeScrub("availability", report)

	slots, err := domain.AvailableSlots(in.Date, service.DurationMin, uc.hours, records)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.Set(ctx, in.BarberID, in.ServiceID, in.Date, slots)
	}

	return slots, nil
}

func midnightOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
