package booking

import (
	"time"

	"github.com/BarbeariaNavalha/booking-engine/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Complete marca a reserva como concluída. Chamada repetida é no-op:
// o timestamp original é preservado e o gate não muda mais uma vez setado.
func Complete(b *models.Booking, now time.Time) {
	if b.Status != string(StatusCompleted) {
		b.Status = string(StatusCompleted)
		b.CompletedAt = &now
	}
	syncDashboardGate(b)
}

// ConfirmPayment registra a confirmação do pagamento. Operação de mão
// única: não existe "desconfirmar". Chamada repetida é no-op.
func ConfirmPayment(b *models.Booking, now time.Time) {
	if !b.PaymentConfirmed {
		b.PaymentConfirmed = true
		b.PaymentConfirmedAt = &now
	}
	syncDashboardGate(b)
}

// O gate é avaliado na transição (e não a cada leitura) para que um
// update avulso em status/payment fora dessas duas operações não
// adicione registros históricos aos agregados. Uma vez true, fica true.
func syncDashboardGate(b *models.Booking) {
	if b.AddedToDashboard {
		return
	}
	if b.Status == string(StatusCompleted) && b.PaymentConfirmed {
		b.AddedToDashboard = true
	}
}
