package booking

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
)

// InitialStatus define o status de uma reserva recém-criada.
func InitialStatus() Status {
	return StatusConfirmed
}
