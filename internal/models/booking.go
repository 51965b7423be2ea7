package models

import "time"

// Booking é a entidade central do sistema. Nome, duração e preço do
// serviço são copiados no momento da reserva — edições posteriores no
// catálogo não alteram reservas já feitas.
type Booking struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	UserID string `gorm:"size:64" json:"user_id"`

	ServiceID   string  `gorm:"size:40;not null" json:"service_id"`
	ServiceName string  `gorm:"size:100;not null" json:"service_name"`
	Duration    int     `json:"duration"`
	Price       float64 `json:"price"`

	BarberID   string `gorm:"size:40;not null;index:idx_bookings_barber_day" json:"barber_id"`
	BarberName string `gorm:"size:100;not null" json:"barber_name"`

	Date      time.Time `gorm:"index:idx_bookings_barber_day" json:"date"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	ClientName  string `gorm:"size:100;not null" json:"client_name"`
	ClientPhone string `gorm:"size:20;not null" json:"client_phone"`

	Status             string     `gorm:"size:20;default:'confirmed'" json:"status"`
	PaymentConfirmed   bool       `gorm:"default:false" json:"payment_confirmed"`
	PaymentConfirmedAt *time.Time `json:"payment_confirmed_at"`

	// Só vira true quando status = completed E pagamento confirmado.
	// Uma vez true, nunca volta a false (ver domain/booking).
	AddedToDashboard bool `gorm:"default:false" json:"added_to_dashboard"`

	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
