package booking

import (
	"context"
	"time"

	"github.com/BarbeariaNavalha/booking-engine/internal/audit"
	domain "github.com/BarbeariaNavalha/booking-engine/internal/domain/booking"
	"github.com/BarbeariaNavalha/booking-engine/internal/httperr"
	"github.com/BarbeariaNavalha/booking-engine/internal/models"
)

type CompleteBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCompleteBooking(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *CompleteBooking {
	return &CompleteBooking{
		repo:  repo,
		audit: auditDispatcher,
	}
}

func (uc *CompleteBooking) Execute(
	ctx context.Context,
	bookingID string,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	domain.Complete(b, time.Now())

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_completed",
		Entity:   "booking",
		EntityID: b.ID,
	})

	return b, nil
}
