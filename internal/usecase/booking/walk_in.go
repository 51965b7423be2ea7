package booking

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/BarbeariaNavalha/booking-engine/internal/audit"
	domain "github.com/BarbeariaNavalha/booking-engine/internal/domain/booking"
	"github.com/BarbeariaNavalha/booking-engine/internal/httperr"
	"github.com/BarbeariaNavalha/booking-engine/internal/metrics"
	"github.com/BarbeariaNavalha/booking-engine/internal/models"
)

type CreateWalkInInput struct {
	UserID    string
	ServiceID string
	BarberID  string

	// Preço cobrado no balcão; pode divergir do preço de tabela.
	Price float64

	ClientName string
}

// CreateWalkIn registra um corte avulso feito na hora, sem agendamento.
// Entra direto como completed; o pagamento ainda passa pelo fluxo normal
// de confirmação antes de contar no dashboard.
type CreateWalkIn struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateWalkIn(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *CreateWalkIn {
	return &CreateWalkIn{
		repo:  repo,
		audit: auditDispatcher,
	}
}

func (uc *CreateWalkIn) Execute(
	ctx context.Context,
	in CreateWalkInInput,
) (*models.Booking, error) {

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	barber, err := uc.repo.GetBarber(ctx, in.BarberID)
	if err != nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	clientName := strings.TrimSpace(in.ClientName)
	if clientName == "" {
		clientName = "Cliente Avulso"
	}

	price := in.Price
	if price <= 0 {
		price = service.Price
	}

	now := time.Now()

	b := &models.Booking{
		ID:     uuid.NewString(),
		UserID: in.UserID,

		ServiceID:   service.ID,
		ServiceName: service.Name,
		Duration:    service.DurationMin,
		Price:       price,

		BarberID:   barber.ID,
		BarberName: barber.Name,

		Date:      midnightOf(now),
		StartTime: now,
		EndTime:   domain.SlotEnd(now, service.DurationMin),

		ClientName:  clientName,
		ClientPhone: "N/A",

		Status:      string(domain.StatusCompleted),
		CompletedAt: &now,
		CreatedAt:   now,
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	metrics.BookingsCreated.Inc()

	uc.audit.Dispatch(audit.Event{
		Action:   "walk_in_created",
		Entity:   "booking",
		EntityID: b.ID,
	})

	return b, nil
}
