package booking

import (
	"context"
	"time"

	"github.com/BarbeariaNavalha/booking-engine/internal/models"
)

type Repository interface {
	// -------- Service --------
	GetService(
		ctx context.Context,
		id string,
	) (*models.Service, error)

	ListServices(
		ctx context.Context,
	) ([]models.Service, error)

	// -------- Barber --------
	GetBarber(
		ctx context.Context,
		id string,
	) (*models.Barber, error)

	ListActiveBarbers(
		ctx context.Context,
	) ([]models.Barber, error)

	UpdateBarber(
		ctx context.Context,
		barber *models.Barber,
	) error

	// -------- Booking (create / conflict) --------
	// CreateBooking é atômico: revalida a sobreposição contra o
	// snapshot mais recente dentro da mesma transação do insert.
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (state change) --------
	GetBooking(
		ctx context.Context,
		id string,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (reads) --------
	ListBookingsForBarberDay(
		ctx context.Context,
		barberID string,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]models.Booking, error)

	ListBookingsForDay(
		ctx context.Context,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]models.Booking, error)

	ListBookingsSince(
		ctx context.Context,
		from time.Time,
	) ([]models.Booking, error)

	ListBookingsByPhone(
		ctx context.Context,
		phone string,
	) ([]models.Booking, error)
}
