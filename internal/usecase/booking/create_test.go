package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BarbeariaNavalha/booking-engine/internal/audit"
	domain "github.com/BarbeariaNavalha/booking-engine/internal/domain/booking"
	"github.com/BarbeariaNavalha/booking-engine/internal/httperr"
	"github.com/BarbeariaNavalha/booking-engine/internal/models"
)

// ======================================================
// FAKES
// ======================================================

type fakeRepo struct {
	services map[string]models.Service
	barbers  map[string]models.Barber
	bookings []models.Booking
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		services: map[string]models.Service{
			"cut":       {ID: "cut", Name: "Corte Social", DurationMin: 30, Price: 50, Active: true},
			"cut_beard": {ID: "cut_beard", Name: "Corte + Barba", DurationMin: 60, Price: 85, Active: true},
		},
		barbers: map[string]models.Barber{
			"b1": {ID: "b1", Name: "Enzo", Active: true},
			"b2": {ID: "b2", Name: "Gustavo", Active: false},
		},
	}
}

func (r *fakeRepo) GetService(_ context.Context, id string) (*models.Service, error) {
	svc, ok := r.services[id]
	if !ok {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	return &svc, nil
}

func (r *fakeRepo) ListServices(_ context.Context) ([]models.Service, error) {
	out := make([]models.Service, 0, len(r.services))
	for _, svc := range r.services {
		out = append(out, svc)
	}
	return out, nil
}

func (r *fakeRepo) GetBarber(_ context.Context, id string) (*models.Barber, error) {
	barber, ok := r.barbers[id]
	if !ok {
		return nil, httperr.ErrBusiness("barber_not_found")
	}
	return &barber, nil
}

func (r *fakeRepo) ListActiveBarbers(_ context.Context) ([]models.Barber, error) {
	out := []models.Barber{}
	for _, b := range r.barbers {
		if b.Active {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeRepo) UpdateBarber(_ context.Context, barber *models.Barber) error {
	r.barbers[barber.ID] = *barber
	return nil
}

func (r *fakeRepo) CreateBooking(_ context.Context, b *models.Booking) error {
	for _, existing := range r.bookings {
		if existing.BarberID == b.BarberID &&
			b.StartTime.Before(existing.EndTime) && b.EndTime.After(existing.StartTime) {
			return httperr.ErrBusiness("time_conflict")
		}
	}
	r.bookings = append(r.bookings, *b)
	return nil
}

func (r *fakeRepo) GetBooking(_ context.Context, id string) (*models.Booking, error) {
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			b := r.bookings[i]
			return &b, nil
		}
	}
	return nil, httperr.ErrBusiness("booking_not_found")
}

func (r *fakeRepo) UpdateBooking(_ context.Context, b *models.Booking) error {
	for i := range r.bookings {
		if r.bookings[i].ID == b.ID {
			r.bookings[i] = *b
			return nil
		}
	}
	return httperr.ErrBusiness("booking_not_found")
}

func (r *fakeRepo) ListBookingsForBarberDay(_ context.Context, barberID string, dayStart, dayEnd time.Time) ([]models.Booking, error) {
	out := []models.Booking{}
	for _, b := range r.bookings {
		if b.BarberID == barberID && !b.StartTime.Before(dayStart) && b.StartTime.Before(dayEnd) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListBookingsForDay(_ context.Context, dayStart, dayEnd time.Time) ([]models.Booking, error) {
	out := []models.Booking{}
	for _, b := range r.bookings {
		if !b.StartTime.Before(dayStart) && b.StartTime.Before(dayEnd) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListBookingsSince(_ context.Context, from time.Time) ([]models.Booking, error) {
	out := []models.Booking{}
	for _, b := range r.bookings {
		if !b.StartTime.Before(from) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListBookingsByPhone(_ context.Context, phone string) ([]models.Booking, error) {
	out := []models.Booking{}
	for _, b := range r.bookings {
		if b.ClientPhone == phone {
			out = append(out, b)
		}
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

type nopAuditLogger struct{}

func (nopAuditLogger) Log(action, entity, entityID string, metadata any) error {
	return nil
}

// ======================================================
// FIXTURES
// ======================================================

func testHours() domain.WorkingHours {
	return domain.WorkingHours{
		Start:      "09:00",
		End:        "18:00",
		BreakStart: "12:00",
		BreakEnd:   "13:00",
		Weekdays: map[time.Weekday]bool{
			time.Monday:    true,
			time.Tuesday:   true,
			time.Wednesday: true,
			time.Thursday:  true,
			time.Friday:    true,
			time.Saturday:  true,
		},
	}
}

// segunda-feira
func testDay() time.Time {
	return time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
}

func at(day time.Time, hour, min int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, min, 0, 0, day.Location())
}

func newCreateUC(repo *fakeRepo) *CreateBooking {
	dispatcher := audit.NewDispatcher(nopAuditLogger{})
	return NewCreateBooking(repo, testHours(), dispatcher, nil)
}

// ======================================================
// TESTS
// ======================================================

func TestCreateBooking_Success(t *testing.T) {
	repo := newFakeRepo()
	uc := newCreateUC(repo)
	day := testDay()

	b, err := uc.Execute(context.Background(), CreateBookingInput{
		UserID:      "u1",
		ServiceID:   "cut",
		BarberID:    "b1",
		Date:        day,
		StartTime:   at(day, 10, 0),
		ClientName:  "Ana",
		ClientPhone: "11987654321",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, b.ID)
	assert.Equal(t, "Corte Social", b.ServiceName)
	assert.Equal(t, "Enzo", b.BarberName)
	assert.Equal(t, 50.0, b.Price)
	assert.Equal(t, 30, b.Duration)
	assert.Equal(t, at(day, 10, 30), b.EndTime, "endTime = startTime + duração, exatamente")
	assert.Equal(t, day, b.Date)
	assert.Equal(t, string(domain.StatusConfirmed), b.Status)
	assert.False(t, b.PaymentConfirmed)
	assert.False(t, b.AddedToDashboard)

	require.Len(t, repo.bookings, 1)
}

func TestCreateBooking_MissingClientInfo(t *testing.T) {
	uc := newCreateUC(newFakeRepo())
	day := testDay()

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		ServiceID:   "cut",
		BarberID:    "b1",
		Date:        day,
		StartTime:   at(day, 10, 0),
		ClientName:  "  ",
		ClientPhone: "11987654321",
	})

	assert.True(t, httperr.IsBusiness(err, "missing_client_info"))
}

func TestCreateBooking_SlotNoLongerAvailable(t *testing.T) {
	repo := newFakeRepo()
	uc := newCreateUC(repo)
	day := testDay()

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		ServiceID:   "cut",
		BarberID:    "b1",
		Date:        day,
		StartTime:   at(day, 10, 0),
		ClientName:  "Ana",
		ClientPhone: "11987654321",
	})
	require.NoError(t, err)

	// segundo cliente tenta o mesmo horário
	_, err = uc.Execute(context.Background(), CreateBookingInput{
		ServiceID:   "cut",
		BarberID:    "b1",
		Date:        day,
		StartTime:   at(day, 10, 0),
		ClientName:  "Bia",
		ClientPhone: "11912345678",
	})

	assert.True(t, httperr.IsBusiness(err, "time_conflict"))
	assert.Len(t, repo.bookings, 1)
}

func TestCreateBooking_UnalignedSlotRejected(t *testing.T) {
	uc := newCreateUC(newFakeRepo())
	day := testDay()

	// 10:15 nunca está na oferta (cadência de 30min)
	_, err := uc.Execute(context.Background(), CreateBookingInput{
		ServiceID:   "cut",
		BarberID:    "b1",
		Date:        day,
		StartTime:   at(day, 10, 15),
		ClientName:  "Ana",
		ClientPhone: "11987654321",
	})

	assert.True(t, httperr.IsBusiness(err, "time_conflict"))
}

func TestCreateBooking_InactiveBarber(t *testing.T) {
	uc := newCreateUC(newFakeRepo())
	day := testDay()

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		ServiceID:   "cut",
		BarberID:    "b2",
		Date:        day,
		StartTime:   at(day, 10, 0),
		ClientName:  "Ana",
		ClientPhone: "11987654321",
	})

	assert.True(t, httperr.IsBusiness(err, "barber_not_found"))
}

func TestCreateBooking_DifferentBarbersSameSlot(t *testing.T) {
	repo := newFakeRepo()
	repo.barbers["b2"] = models.Barber{ID: "b2", Name: "Gustavo", Active: true}
	uc := newCreateUC(repo)
	day := testDay()

	for _, barberID := range []string{"b1", "b2"} {
		_, err := uc.Execute(context.Background(), CreateBookingInput{
			ServiceID:   "cut",
			BarberID:    barberID,
			Date:        day,
			StartTime:   at(day, 10, 0),
			ClientName:  "Ana",
			ClientPhone: "11987654321",
		})
		require.NoError(t, err, "agendas são independentes por barbeiro")
	}
}
