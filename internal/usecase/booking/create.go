package booking

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/BarbeariaNavalha/booking-engine/internal/audit"
	"github.com/BarbeariaNavalha/booking-engine/internal/cache"
	domain "github.com/BarbeariaNavalha/booking-engine/internal/domain/booking"
	"github.com/BarbeariaNavalha/booking-engine/internal/httperr"
	"github.com/BarbeariaNavalha/booking-engine/internal/metrics"
	"github.com/BarbeariaNavalha/booking-engine/internal/models"
	"github.com/BarbeariaNavalha/booking-engine/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	UserID    string
	ServiceID string
	BarberID  string

	Date      time.Time
	StartTime time.Time

	ClientName  string
	ClientPhone string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	hours domain.WorkingHours
	audit *audit.Dispatcher
	cache *cache.AvailabilityCache
}

func NewCreateBooking(
	repo domain.Repository,
	hours domain.WorkingHours,
	auditDispatcher *audit.Dispatcher,
	availCache *cache.AvailabilityCache,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		hours: hours,
		audit: auditDispatcher,
		cache: availCache,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// 1. Dados do cliente (sempre recuperável: corrigir e reenviar)
	// --------------------------------------------------
	if strings.TrimSpace(in.ClientName) == "" || strings.TrimSpace(in.ClientPhone) == "" {
		return nil, httperr.ErrBusiness("missing_client_info")
	}

	// --------------------------------------------------
	// 2. Serviço e barbeiro
	// --------------------------------------------------
	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	barber, err := uc.repo.GetBarber(ctx, in.BarberID)
	if err != nil || !barber.Active {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	// --------------------------------------------------
	// 3. O slot escolhido ainda está na oferta mais recente?
	// --------------------------------------------------
	dayStart := midnightOf(in.Date)
	dayEnd := dayStart.AddDate(0, 0, 1)

	raw, err := uc.repo.ListBookingsForBarberDay(ctx, in.BarberID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	records, report := domain.Clean(raw)
	observeScrub("create_booking", report)

	slots, err := domain.AvailableSlots(in.Date, service.DurationMin, uc.hours, records)
	if err != nil {
		return nil, err
	}

	if !containsSlot(slots, in.StartTime) {
		metrics.SlotConflicts.Inc()
		return nil, httperr.ErrBusiness("time_conflict")
	}

	// --------------------------------------------------
	// 4. Montagem do registro (preço/duração congelados aqui)
	// --------------------------------------------------
	now := time.Now()
	end := domain.SlotEnd(in.StartTime, service.DurationMin)

	b := &models.Booking{
		ID:     uuid.NewString(),
		UserID: in.UserID,

		ServiceID:   service.ID,
		ServiceName: service.Name,
		Duration:    service.DurationMin,
		Price:       service.Price,

		BarberID:   barber.ID,
		BarberName: barber.Name,

		Date:      dayStart,
		StartTime: in.StartTime,
		EndTime:   end,

		ClientName: strings.TrimSpace(in.ClientName),
		// só dígitos: "(11) 98765-4321" e "11987654321" são o mesmo cliente
		ClientPhone: validators.NormalizePhone(in.ClientPhone),

		Status:    string(domain.InitialStatus()),
		CreatedAt: now,
	}

	// --------------------------------------------------
	// 5. Escrita atômica (recheck de conflito na transação)
	// --------------------------------------------------
	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		if httperr.IsBusiness(err, "time_conflict") {
			metrics.SlotConflicts.Inc()
		}
		return nil, err
	}

	metrics.BookingsCreated.Inc()

	if uc.cache != nil {
		uc.cache.InvalidateDay(ctx, b.BarberID, b.Date)
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: b.ID,
	})

	return b, nil
}

func containsSlot(slots []time.Time, start time.Time) bool {
	for _, s := range slots {
		if s.Equal(start) {
			return true
		}
	}
	return false
}
