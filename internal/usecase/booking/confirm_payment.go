package booking

import (
	"context"
	"time"

	"github.com/BarbeariaNavalha/booking-engine/internal/audit"
	domain "github.com/BarbeariaNavalha/booking-engine/internal/domain/booking"
	"github.com/BarbeariaNavalha/booking-engine/internal/httperr"
	"github.com/BarbeariaNavalha/booking-engine/internal/models"
)

type ConfirmPayment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewConfirmPayment(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *ConfirmPayment {
	return &ConfirmPayment{
		repo:  repo,
		audit: auditDispatcher,
	}
}

func (uc *ConfirmPayment) Execute(
	ctx context.Context,
	bookingID string,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	domain.ConfirmPayment(b, time.Now())

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "payment_confirmed",
		Entity:   "booking",
		EntityID: b.ID,
	})

	return b, nil
}
