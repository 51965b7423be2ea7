package dto

import "time"

type BookingListDTO struct {
	ID               string    `json:"id"`
	StartTime        time.Time `json:"start_time"`
	EndTime          time.Time `json:"end_time"`
	Status           string    `json:"status"`
	PaymentConfirmed bool      `json:"payment_confirmed"`
	AddedToDashboard bool      `json:"added_to_dashboard"`
	ClientName       string    `json:"client_name"`
	ServiceName      string    `json:"service_name"`
	BarberName       string    `json:"barber_name"`
	Price            float64   `json:"price"`
}
