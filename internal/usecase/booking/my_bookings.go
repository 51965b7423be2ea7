package booking

import (
	"context"

	domain "github.com/BarbeariaNavalha/booking-engine/internal/domain/booking"
	"github.com/BarbeariaNavalha/booking-engine/internal/httperr"
	"github.com/BarbeariaNavalha/booking-engine/internal/models"
	"github.com/BarbeariaNavalha/booking-engine/internal/validators"
)

type ListMyBookings struct {
	repo domain.Repository
}

func NewListMyBookings(repo domain.Repository) *ListMyBookings {
	return &ListMyBookings{repo: repo}
}

func (uc *ListMyBookings) Execute(
	ctx context.Context,
	phone string,
) ([]models.Booking, error) {

	// a busca usa a mesma normalização da escrita, então a formatação
	// digitada pelo cliente não importa
	phone = validators.NormalizePhone(phone)
	if phone == "" {
		return nil, httperr.ErrBusiness("missing_phone")
	}

	raw, err := uc.repo.ListBookingsByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}

	records, report := domain.Clean(raw)
	observeScrub("my_bookings", report)

	return records, nil
}
